package utils

import (
	"net/http"
	"strconv"
)

// ParsePagination reads skip/limit query params, falling back to 0/100.
func ParsePagination(r *http.Request) (skip, limit int) {
	skip, limit = 0, 100
	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return skip, limit
}
