package api

import (
	"net/http"
	"time"

	"github.com/phrazzld/enroll-api/internal/api/shared"
	"github.com/phrazzld/enroll-api/internal/service"
)

// CatalogHandler handles catalog HTTP requests
type CatalogHandler struct {
	catalogService service.CatalogService
	displayTZ      *time.Location
}

// NewCatalogHandler creates a new CatalogHandler. Product start dates in
// responses are rendered in the given display timezone.
func NewCatalogHandler(catalogService service.CatalogService, displayTZ *time.Location) *CatalogHandler {
	if displayTZ == nil {
		displayTZ = time.UTC
	}
	return &CatalogHandler{
		catalogService: catalogService,
		displayTZ:      displayTZ,
	}
}

// ListProducts handles GET /api/products requests. It returns the page of
// products whose enrollment window is still open, with teacher names and
// lesson counts.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	pagination := shared.ParsePagination(r)

	page, err := h.catalogService.ListPurchasable(r.Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	response := CatalogResponse{
		Products: make([]ProductResponse, 0, len(page.Listings)),
		Total:    page.Total,
		Page:     page.Page,
		PageSize: page.PageSize,
	}
	for _, listing := range page.Listings {
		response.Products = append(response.Products, productListingToResponse(listing, h.displayTZ))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
