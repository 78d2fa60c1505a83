// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant to be registered via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers a matched path with an unsupported method with HTTP 405.
// This override responds with 404 Not Found instead, so that callers
// probing routes with the wrong method cannot tell them apart from
// routes that do not exist. If the method turns out to be registered
// for the matched pattern, the request is handed back to the router's
// normal pipeline.
//
// Only exact pattern matches against the raw request path are checked;
// parameterised segments are not expanded here.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := r.URL.Path
		requestedHTTPMethod := r.Method

		allRoutes := router.Routes()
		var foundRoute chi.Route
		for _, route := range allRoutes {
			if route.Pattern == requestedURL {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[requestedHTTPMethod]; !ok {
			writeError(w, "Not found", http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
