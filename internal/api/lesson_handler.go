package api

import (
	"net/http"

	"github.com/phrazzld/enroll-api/internal/api/shared"
	"github.com/phrazzld/enroll-api/internal/service"
)

// LessonHandler handles lesson listing HTTP requests
type LessonHandler struct {
	lessonService service.LessonService
}

// NewLessonHandler creates a new LessonHandler
func NewLessonHandler(lessonService service.LessonService) *LessonHandler {
	return &LessonHandler{
		lessonService: lessonService,
	}
}

// ListLessons handles GET /api/students/{studentID}/products/{productID}/lessons
// requests. Lessons are only returned when the student has purchased the
// product; otherwise the request fails with 403.
func (h *LessonHandler) ListLessons(w http.ResponseWriter, r *http.Request) {
	studentID, err := getPathID(r, "studentID")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	productID, err := getPathID(r, "productID")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	lessons, err := h.lessonService.ListLessons(r.Context(), studentID, productID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	response := LessonListResponse{
		ProductID: productID,
		Lessons:   make([]LessonResponse, 0, len(lessons)),
	}
	for _, lesson := range lessons {
		response.Lessons = append(response.Lessons, lessonToResponse(lesson))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
