// Package swaggerkit provides helpers to mount Swagger UI and JSON spec
package swaggerkit

import (
	"net/http"

	phttp "tzdetect/internal/platform/net/http"
)

// Prefix is where the UI and doc.json live
const Prefix = "/docs"

// Mount the Swagger UI and JSON spec if enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(Prefix, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, Prefix+"/", http.StatusPermanentRedirect)
	})
	// registered before the UI wildcard so chi prefers it
	r.Get(Prefix+"/doc.json", serveDocJSON())
	phttp.MountSwagger(r, Prefix, true)
}
