package domain

import (
	"errors"
	"net/url"
	"time"
)

// Lesson-specific validation errors
var (
	// ErrLessonProductIDEmpty is returned when a lesson has no parent product.
	ErrLessonProductIDEmpty = errors.New("lesson product ID cannot be empty")

	// ErrEmptyLessonName is returned when a lesson name is empty.
	ErrEmptyLessonName = errors.New("lesson name cannot be empty")

	// ErrLessonNameTooLong is returned when a lesson name exceeds 60 characters.
	ErrLessonNameTooLong = errors.New("lesson name cannot exceed 60 characters")

	// ErrInvalidVideoURL is returned when a lesson's video link is not a
	// valid absolute http(s) URL.
	ErrInvalidVideoURL = errors.New("lesson video link must be a valid http(s) URL")
)

const maxLessonNameLength = 60

// Lesson represents a single lesson of a product. Lesson names are unique
// within their product; lessons are served to students in creation order.
type Lesson struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	VideoURL  string    `json:"video_url"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLesson creates a new Lesson under the given product.
// The ID is assigned by the store on insert.
// Returns an error if validation fails.
func NewLesson(productID int64, name, videoURL string) (*Lesson, error) {
	lesson := &Lesson{
		ProductID: productID,
		Name:      name,
		VideoURL:  videoURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := lesson.Validate(); err != nil {
		return nil, err
	}

	return lesson, nil
}

// Validate checks if the Lesson has valid data.
// Returns an error if any field fails validation.
func (l *Lesson) Validate() error {
	if l.ProductID <= 0 {
		return ErrLessonProductIDEmpty
	}
	if l.Name == "" {
		return ErrEmptyLessonName
	}
	if len(l.Name) > maxLessonNameLength {
		return ErrLessonNameTooLong
	}
	u, err := url.Parse(l.VideoURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidVideoURL
	}
	return nil
}
