// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/edsc-portals/internal/utils"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
// Every API route is read-only, so the Allow header is fixed.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET")
	utils.WriteError(w, "", http.StatusMethodNotAllowed)
}

// notFound is registered as the router's NotFound handler so unknown paths
// get the same JSON error body as handler failures.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "", http.StatusNotFound)
}
