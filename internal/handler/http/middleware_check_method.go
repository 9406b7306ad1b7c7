// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-api/internal/utils"
	"github.com/MKhiriev/go-auth-api/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Instead of chi's default 405 it answers 404 with a JSON message when the
// route registered under the exact request path does not handle the request
// method, so unsupported methods look like unknown routes. Requests whose
// method is registered are handed back to the router.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !routeHandlesMethod(router.Routes(), r.URL.Path, r.Method) {
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// routeHandlesMethod reports whether the route whose pattern equals path
// has a handler for method. Parameterised patterns are not expanded.
func routeHandlesMethod(routes []chi.Route, path, method string) bool {
	for _, route := range routes {
		if route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
