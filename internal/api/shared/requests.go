package shared

import (
	"net/http"
	"strconv"
)

// Pagination is the parsed page selection of a list endpoint. Values are
// raw; services clamp them to their own bounds.
type Pagination struct {
	Page     int
	PageSize int
}

// ParsePagination reads the page and page_size query parameters. Missing
// or malformed values come back as zero, which services replace with
// their defaults.
func ParsePagination(r *http.Request) Pagination {
	return Pagination{
		Page:     parseIntParam(r, "page"),
		PageSize: parseIntParam(r, "page_size"),
	}
}

func parseIntParam(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return v
}
