package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/internal/mock"
	"github.com/MKhiriev/edsc-portals/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newHandlerWithAppInfo(t *testing.T, version string) *Handler {
	t.Helper()
	ctrl := gomock.NewController(t)

	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(version).AnyTimes()

	return NewHandler(&service.Services{AppInfoService: appInfo}, logger.Nop())
}

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semantic version", version: "1.2.3"},
		{name: "pre-release with build metadata", version: "v2.0.0-beta+build.42"},
		{name: "empty", version: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAppInfo(t, tt.version)

			req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
			rec := httptest.NewRecorder()

			h.getServerVersion(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.version, rec.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		})
	}
}

func TestGetServerVersion_ViaRouter(t *testing.T) {
	h := newHandlerWithAppInfo(t, "3.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "3.0.0", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
