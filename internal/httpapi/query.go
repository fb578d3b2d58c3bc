package httpapi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"svokit/internal/pagination"
)

func parseLimit(r *http.Request, def, min, max int) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if n < min {
		n = min
	}
	if n > max {
		n = max
	}
	return n, true
}

// parseCursor returns nil when no cursor was sent.
func parseCursor(r *http.Request) (*pagination.Cursor, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("cursor"))
	if raw == "" {
		return nil, nil
	}
	c, err := pagination.Decode(raw)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// emailParam returns the {email} path segment, percent-decoded.
func emailParam(r *http.Request) string {
	raw := chi.URLParam(r, "email")
	if s, err := url.PathUnescape(raw); err == nil {
		return s
	}
	return raw
}
