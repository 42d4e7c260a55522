package http

import "net/http"

// queryParam returns a pointer to the named query value, nil when absent.
func queryParam(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}
