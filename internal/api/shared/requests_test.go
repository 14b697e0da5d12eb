package shared

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		url          string
		wantPage     int
		wantPageSize int
	}{
		{name: "both present", url: "/?page=2&page_size=50", wantPage: 2, wantPageSize: 50},
		{name: "missing values", url: "/", wantPage: 0, wantPageSize: 0},
		{name: "malformed values", url: "/?page=abc&page_size=1.5", wantPage: 0, wantPageSize: 0},
		{name: "negative passes through", url: "/?page=-1", wantPage: -1, wantPageSize: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			got := ParsePagination(req)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}
