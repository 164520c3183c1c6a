package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/edsc-portals/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrPortalNotFound: http.StatusNotFound,
	service.ErrConfiguration:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
