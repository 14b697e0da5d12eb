// Package service contains the application services built on the store
// interfaces: the enrollment allocation engine, the lesson access guard,
// the public catalog, and the statistics projector. Services own all
// business rules; handlers only translate HTTP to service calls.
package service
