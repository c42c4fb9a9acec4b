package http

import (
	stdhttp "net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// MountSwagger mounts the swagger UI under prefix if enabled by caller.
// The UI fetches doc.json relative to prefix, so serve the spec there
func MountSwagger(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	r.Get(prefix+"/*", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		httpSwagger.WrapHandler(w, req)
	})
}
