package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/enroll-api/internal/domain"
	"github.com/phrazzld/enroll-api/internal/service"
	"github.com/phrazzld/enroll-api/internal/store"
)

func TestListProductsEndpoint(t *testing.T) {
	t.Parallel()

	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	svc := new(MockCatalogService)
	svc.On("ListPurchasable", mock.Anything, 0, 0).Return(&service.CatalogPage{
		Listings: []*store.ProductListing{
			{
				Product: domain.Product{
					ID:        1,
					TeacherID: 1,
					Name:      "Go Basics",
					// 07:00 UTC renders as 10:00 in Moscow.
					StartDate:    time.Date(2026, 9, 1, 7, 0, 0, 0, time.UTC),
					Price:        decimal.RequireFromString("199.90"),
					MinGroupSize: 3,
					MaxGroupSize: 10,
				},
				Teacher:     domain.Teacher{ID: 1, FirstName: "Nina", LastName: "Petrova"},
				LessonCount: 12,
			},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}, nil)

	r := chi.NewRouter()
	r.Get("/api/products", NewCatalogHandler(svc, moscow).ListProducts)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)

	product := resp.Products[0]
	assert.Equal(t, "Go Basics", product.Name)
	assert.Equal(t, "Nina Petrova", product.TeacherName)
	assert.Equal(t, "01.09.2026 10:00 MSK", product.StartDate)
	assert.Equal(t, "199.90", product.Price)
	assert.Equal(t, 12, product.LessonCount)
	assert.Equal(t, int64(1), resp.Total)
}

func TestListProductsEndpointForwardsPagination(t *testing.T) {
	t.Parallel()

	svc := new(MockCatalogService)
	svc.On("ListPurchasable", mock.Anything, 3, 50).Return(&service.CatalogPage{
		Listings: []*store.ProductListing{},
		Total:    120,
		Page:     3,
		PageSize: 50,
	}, nil)

	r := chi.NewRouter()
	r.Get("/api/products", NewCatalogHandler(svc, time.UTC).ListProducts)

	req := httptest.NewRequest(http.MethodGet, "/api/products?page=3&page_size=50", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestProductStatsEndpoint(t *testing.T) {
	t.Parallel()

	svc := new(MockStatsService)
	svc.On("ProductStats", mock.Anything, 0, 0).Return(&service.StatsPage{
		Stats: []*service.ProductStats{
			{
				ProductID:        1,
				ProductName:      "Go Basics",
				StudentCount:     5,
				GroupCount:       2,
				OccupancyPercent: 83.33,
				PurchasePercent:  62.5,
			},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}, nil)

	r := chi.NewRouter()
	r.Get("/api/products/stats", NewStatsHandler(svc).ProductStats)

	req := httptest.NewRequest(http.MethodGet, "/api/products/stats", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp service.StatsPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Stats, 1)
	assert.InDelta(t, 83.33, resp.Stats[0].OccupancyPercent, 0.001)
	assert.InDelta(t, 62.5, resp.Stats[0].PurchasePercent, 0.001)
}
