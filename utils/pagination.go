package utils

import (
	"net/http"
	"strconv"
)

// HasPaginationParams reports whether the request asked for a paginated
// listing at all.
func HasPaginationParams(r *http.Request) bool {
	q := r.URL.Query()
	return q.Get("page") != "" || q.Get("limit") != ""
}

// GetPaginationParams parses page and limit query parameters from a request.
// Returns page (default 1) and limit (default 20, max 100).
func GetPaginationParams(r *http.Request) (page, limit int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
