package api

import (
	"net/http"

	"github.com/phrazzld/enroll-api/internal/api/shared"
	"github.com/phrazzld/enroll-api/internal/service"
)

// EnrollmentHandler handles purchase HTTP requests
type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
}

// NewEnrollmentHandler creates a new EnrollmentHandler
func NewEnrollmentHandler(enrollmentService service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		enrollmentService: enrollmentService,
	}
}

// Purchase handles POST /api/students/{studentID}/products/{productID}/purchase
// requests. A successful purchase responds 201 with the group the student
// was placed into.
func (h *EnrollmentHandler) Purchase(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.enrollmentService.Purchase(r.Context(), studentID, productID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated,
		purchaseToResponse(studentID, productID, result))
}
