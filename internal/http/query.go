package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// queryInstant parses an ISO-8601 instant. An absent parameter yields the zero time so the
// service decides whether the window is usable.
func queryInstant(r *http.Request, name string) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, errInvalidQueryParam(name, err)
	}
	return t, nil
}

// queryInt parses an integer parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidQueryParam(name, err)
	}
	return v, nil
}

func queryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}
