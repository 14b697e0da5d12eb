package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/enroll-api/internal/api/shared"
	"github.com/phrazzld/enroll-api/internal/domain"
)

// getPathID extracts a numeric entity ID from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed ID if valid
//   - (0, error): Zero and an appropriate error if the parameter is
//     missing or not a positive integer
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// HandleAPIError writes the sanitized error response for a failed
// operation. Validation errors become 400s with their own message; every
// other error goes through the status and message mapping so internal
// details never reach the client.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		shared.RespondWithError(w, r, http.StatusBadRequest, validationErr.Error())
		return
	}

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
