package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/enroll-api/internal/store"
)

// Catalog pagination bounds.
const (
	defaultCatalogPageSize = 20
	maxCatalogPageSize     = 100
)

// CatalogPage is one page of the purchasable-product catalog.
type CatalogPage struct {
	Listings []*store.ProductListing
	Total    int64
	Page     int
	PageSize int
}

// CatalogService serves the public catalog of products whose enrollment
// window is still open.
type CatalogService interface {
	// ListPurchasable returns the page of products that can still be
	// purchased right now, each joined with its teacher and lesson count.
	// Page is 1-based; out-of-range pages yield an empty listing with the
	// correct total. Invalid page or pageSize values fall back to sane
	// defaults rather than erroring.
	ListPurchasable(ctx context.Context, page, pageSize int) (*CatalogPage, error)
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	productStore store.ProductStore
	logger       *slog.Logger

	now func() time.Time
}

// NewCatalogService creates a new CatalogService.
// It returns an error if any of the required dependencies are nil.
func NewCatalogService(
	productStore store.ProductStore,
	logger *slog.Logger,
) (CatalogService, error) {
	if productStore == nil {
		return nil, &EnrollmentError{
			Operation: "create_service",
			Message:   "productStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &catalogServiceImpl{
		productStore: productStore,
		logger:       logger.With("component", "catalog_service"),
		now:          time.Now,
	}, nil
}

// normalizePage clamps page and pageSize to valid values.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultCatalogPageSize
	}
	if pageSize > maxCatalogPageSize {
		pageSize = maxCatalogPageSize
	}
	return page, pageSize
}

// ListPurchasable implements CatalogService.ListPurchasable.
func (s *catalogServiceImpl) ListPurchasable(
	ctx context.Context,
	page, pageSize int,
) (*CatalogPage, error) {
	page, pageSize = normalizePage(page, pageSize)
	now := s.now()

	total, err := s.productStore.CountPurchasable(ctx, now)
	if err != nil {
		return nil, NewEnrollmentError("list_purchasable", "failed to count products", err)
	}

	offset := (page - 1) * pageSize
	listings, err := s.productStore.ListPurchasable(ctx, now, offset, pageSize)
	if err != nil {
		return nil, NewEnrollmentError("list_purchasable", "failed to list products", err)
	}

	s.logger.Debug("served catalog page",
		"page", page,
		"page_size", pageSize,
		"returned", len(listings),
		"total", total)

	return &CatalogPage{
		Listings: listings,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
