// Package main implements a development seeding tool that fills the
// database with a demo teacher, a few purchasable products with lessons,
// and a handful of students to purchase them with.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/shopspring/decimal"

	"github.com/phrazzld/enroll-api/internal/config"
	"github.com/phrazzld/enroll-api/internal/domain"
	"github.com/phrazzld/enroll-api/internal/platform/logger"
	"github.com/phrazzld/enroll-api/internal/platform/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("failed to close database", "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	teachers := postgres.NewPostgresTeacherStore(db, appLogger)
	students := postgres.NewPostgresStudentStore(db, appLogger)
	products := postgres.NewPostgresProductStore(db, appLogger)
	lessons := postgres.NewPostgresLessonStore(db, appLogger)

	teacher, err := domain.NewTeacher("Nina", "Petrova", "nina.petrova@example.com", 34)
	if err != nil {
		return err
	}
	if err := teachers.Create(ctx, teacher); err != nil {
		return fmt.Errorf("failed to create teacher: %w", err)
	}

	seedProducts := []struct {
		name      string
		startIn   time.Duration
		price     string
		minSize   int
		maxSize   int
		lessonMax int
	}{
		{name: "Go Basics", startIn: 30 * 24 * time.Hour, price: "199.90", minSize: 3, maxSize: 10, lessonMax: 5},
		{name: "Advanced SQL", startIn: 14 * 24 * time.Hour, price: "249.00", minSize: 2, maxSize: 6, lessonMax: 4},
		{name: "Intro to Testing", startIn: -24 * time.Hour, price: "99.00", minSize: 1, maxSize: 8, lessonMax: 3},
	}

	for _, sp := range seedProducts {
		price, err := decimal.NewFromString(sp.price)
		if err != nil {
			return err
		}

		product, err := domain.NewProduct(
			teacher.ID,
			sp.name,
			time.Now().UTC().Add(sp.startIn),
			price,
			sp.minSize,
			sp.maxSize,
		)
		if err != nil {
			return err
		}
		if err := products.Create(ctx, product); err != nil {
			return fmt.Errorf("failed to create product %q: %w", sp.name, err)
		}

		for i := 1; i <= sp.lessonMax; i++ {
			lesson, err := domain.NewLesson(
				product.ID,
				fmt.Sprintf("Lesson %d", i),
				fmt.Sprintf("https://videos.example.com/%d/%d", product.ID, i),
			)
			if err != nil {
				return err
			}
			if err := lessons.Create(ctx, lesson); err != nil {
				return fmt.Errorf("failed to create lesson for %q: %w", sp.name, err)
			}
		}

		appLogger.Info("seeded product",
			"product_id", product.ID,
			"name", product.Name,
			"lessons", sp.lessonMax)
	}

	seedStudents := []struct {
		firstName string
		lastName  string
		email     string
		age       int
	}{
		{firstName: "Alice", lastName: "Morgan", email: "alice.morgan@example.com", age: 24},
		{firstName: "Boris", lastName: "Ivanov", email: "boris.ivanov@example.com", age: 31},
		{firstName: "Carmen", lastName: "Diaz", email: "carmen.diaz@example.com", age: 27},
	}

	for _, ss := range seedStudents {
		student, err := domain.NewStudent(ss.firstName, ss.lastName, ss.email, ss.age)
		if err != nil {
			return err
		}
		if err := students.Create(ctx, student); err != nil {
			return fmt.Errorf("failed to create student %q: %w", ss.email, err)
		}
	}

	appLogger.Info("seeding completed",
		"teachers", 1,
		"products", len(seedProducts),
		"students", len(seedStudents))
	return nil
}
