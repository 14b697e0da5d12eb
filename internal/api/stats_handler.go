package api

import (
	"net/http"

	"github.com/phrazzld/enroll-api/internal/api/shared"
	"github.com/phrazzld/enroll-api/internal/service"
)

// StatsHandler handles statistics HTTP requests
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// ProductStats handles GET /api/products/stats requests. The service
// already shapes the page, so the payload is passed through as is.
func (h *StatsHandler) ProductStats(w http.ResponseWriter, r *http.Request) {
	pagination := shared.ParsePagination(r)

	page, err := h.statsService.ProductStats(r.Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, page)
}
