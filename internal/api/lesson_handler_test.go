package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/enroll-api/internal/domain"
	"github.com/phrazzld/enroll-api/internal/service"
)

func newLessonRouter(svc service.LessonService) http.Handler {
	r := chi.NewRouter()
	handler := NewLessonHandler(svc)
	r.Get("/api/students/{studentID}/products/{productID}/lessons", handler.ListLessons)
	return r
}

func TestListLessonsEndpointSuccess(t *testing.T) {
	t.Parallel()

	svc := new(MockLessonService)
	svc.On("ListLessons", mock.Anything, int64(10), int64(1)).Return([]*domain.Lesson{
		{ID: 1, ProductID: 1, Name: "Introduction", VideoURL: "https://videos.example.com/1"},
		{ID: 2, ProductID: 1, Name: "Interfaces", VideoURL: "https://videos.example.com/2"},
	}, nil)

	req := httptest.NewRequest(
		http.MethodGet, "/api/students/10/products/1/lessons", nil)
	rec := httptest.NewRecorder()
	newLessonRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LessonListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ProductID)
	require.Len(t, resp.Lessons, 2)
	assert.Equal(t, "Introduction", resp.Lessons[0].Name)
	assert.Equal(t, "https://videos.example.com/2", resp.Lessons[1].VideoURL)
}

func TestListLessonsEndpointEmptyList(t *testing.T) {
	t.Parallel()

	svc := new(MockLessonService)
	svc.On("ListLessons", mock.Anything, int64(10), int64(1)).Return([]*domain.Lesson{}, nil)

	req := httptest.NewRequest(
		http.MethodGet, "/api/students/10/products/1/lessons", nil)
	rec := httptest.NewRecorder()
	newLessonRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// The payload carries an empty array, not null.
	assert.Contains(t, rec.Body.String(), `"lessons":[]`)
}

func TestListLessonsEndpointAccessDenied(t *testing.T) {
	t.Parallel()

	svc := new(MockLessonService)
	svc.On("ListLessons", mock.Anything, int64(10), int64(1)).
		Return(nil, service.ErrAccessDenied)

	req := httptest.NewRequest(
		http.MethodGet, "/api/students/10/products/1/lessons", nil)
	rec := httptest.NewRecorder()
	newLessonRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
