// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
)

// knownMethods are probed when building the Allow header.
var knownMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CheckHTTPMethod returns an [http.HandlerFunc] to be registered as the
// router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// It answers 405 Method Not Allowed with an empty body and an Allow header
// listing every method router would accept for the requested path.
// Mounted sub-routers answer any method on their mount path, so the lookup
// runs against a flat copy of the route table built with [chi.Walk] on the
// first 405.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(router))
//	// ... register routes ...
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	var (
		once  sync.Once
		table *chi.Mux
	)

	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() { table = routeTable(router) })

		if allowed := allowedMethods(table, r.URL.Path); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// routeTable registers every endpoint of router on a new mux without
// sub-routers. A route ending in "/" also matches without the slash, the
// way a mounted sub-router serves its root.
func routeTable(router chi.Routes) *chi.Mux {
	table := chi.NewRouter()
	noop := func(http.ResponseWriter, *http.Request) {}

	_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		table.MethodFunc(method, route, noop)
		if len(route) > 1 && strings.HasSuffix(route, "/") {
			table.MethodFunc(method, strings.TrimSuffix(route, "/"), noop)
		}
		return nil
	})

	return table
}

func allowedMethods(table *chi.Mux, path string) []string {
	var allowed []string
	for _, method := range knownMethods {
		if table.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
