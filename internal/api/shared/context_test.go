package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTraceIDProducesUniqueIDs(t *testing.T) {
	t.Parallel()

	ctx1 := SetTraceID(context.Background())
	ctx2 := SetTraceID(context.Background())

	id1 := GetTraceID(ctx1)
	id2 := GetTraceID(ctx2)

	assert.NotEmpty(t, id1)
	assert.NotEmpty(t, id2)
	assert.NotEqual(t, id1, id2)
}

func TestGetTraceIDWithoutValue(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))
}
