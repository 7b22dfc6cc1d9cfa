package journal

import (
	"net/http"
)

// Register registers the journal article routes with the given mux.
// "/journal/" itself is routed with an empty handle, which resolves to the
// not-found fallback.
func Register(mux *http.ServeMux, h GetHandler) {
	mux.Handle("GET /journal/{handle}", h)
	mux.Handle("GET /journal/{$}", h)
}
