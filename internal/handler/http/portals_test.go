package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/internal/mock"
	"github.com/MKhiriev/edsc-portals/internal/service"
	"github.com/MKhiriev/edsc-portals/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPortalHandler(t *testing.T) (*Handler, *mock.MockPortalService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	portals := mock.NewMockPortalService(ctrl)

	return NewHandler(&service.Services{PortalService: portals}, logger.Nop()), portals
}

func serve(h *Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

// ── GET /api/portals ─────────────────────────────────────────────────────────

func TestListPortals_Success(t *testing.T) {
	h, portals := newPortalHandler(t)

	summaries := []models.PortalSummary{
		{PortalID: "edsc", Title: "Earthdata Search", IsDefault: true},
		{PortalID: "idn", Title: "IDN"},
	}
	portals.EXPECT().ListPortals(gomock.Any()).Return(summaries, nil)

	rec := serve(h, http.MethodGet, "/api/portals")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[
		{"portalId":"edsc","title":"Earthdata Search","isDefault":true},
		{"portalId":"idn","title":"IDN","isDefault":false}
	]`, rec.Body.String())
}

func TestListPortals_ServiceError(t *testing.T) {
	h, portals := newPortalHandler(t)

	portals.EXPECT().ListPortals(gomock.Any()).
		Return(nil, fmt.Errorf("portal %q: %w", "broken", service.ErrMissingPortalID))

	rec := serve(h, http.MethodGet, "/api/portals")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

// ── GET /api/portals/{portalID} ──────────────────────────────────────────────

func TestGetPortal_Success(t *testing.T) {
	h, portals := newPortalHandler(t)

	resolved := models.PortalConfig{
		PortalID:     "idn",
		ParentConfig: "edsc",
		HasLogo:      models.Some(true),
		Query:        models.Some(models.Query{"hasGranulesOrCwic": nil}),
		UI:           models.UI{ShowTophat: models.Some(true), ShowOnlyGranulesCheckbox: models.Some(false)},
		Footer: models.Footer{
			SecondaryLinks: models.Some(models.Links{{Title: "Earthdata Access", Href: "https://access.earthdata.nasa.gov/"}}),
		},
	}
	portals.EXPECT().ResolvePortal(gomock.Any(), "idn").Return(resolved, nil)

	rec := serve(h, http.MethodGet, "/api/portals/idn")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"portalId": "idn",
		"parentConfig": "edsc",
		"hasLogo": true,
		"footer": {"secondaryLinks": [{"title": "Earthdata Access", "href": "https://access.earthdata.nasa.gov/"}]},
		"query": {"hasGranulesOrCwic": null},
		"ui": {"showOnlyGranulesCheckbox": false, "showTophat": true}
	}`, rec.Body.String())
}

func TestGetPortal_PassesRequestContext(t *testing.T) {
	h, portals := newPortalHandler(t)

	portals.EXPECT().ResolvePortal(gomock.Any(), "edsc").DoAndReturn(
		func(ctx context.Context, portalID string) (models.PortalConfig, error) {
			// the trace middleware must have attached a logger
			assert.NotNil(t, logger.FromContext(ctx))
			return models.PortalConfig{PortalID: portalID}, nil
		},
	)

	rec := serve(h, http.MethodGet, "/api/portals/edsc")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetPortal_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "unknown portal",
			err:        fmt.Errorf("%w: %q", service.ErrPortalNotFound, "nope"),
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"portal not found: \"nope\""}`,
		},
		{
			name:       "configuration defect",
			err:        service.ErrBasePortalNotFound,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
		{
			name:       "unclassified error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, portals := newPortalHandler(t)
			portals.EXPECT().ResolvePortal(gomock.Any(), "nope").Return(models.PortalConfig{}, tt.err)

			rec := serve(h, http.MethodGet, "/api/portals/nope")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

// ── GET /api/portals/{portalID}/default ──────────────────────────────────────

func TestIsDefaultPortal(t *testing.T) {
	tests := []struct {
		portalID string
		want     bool
	}{
		{portalID: "edsc", want: true},
		{portalID: "idn", want: false},
		{portalID: "edsc-test", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.portalID, func(t *testing.T) {
			h, portals := newPortalHandler(t)
			portals.EXPECT().IsDefaultPortal(tt.portalID).Return(tt.want)

			rec := serve(h, http.MethodGet, "/api/portals/"+tt.portalID+"/default")

			require.Equal(t, http.StatusOK, rec.Code)

			var body models.DefaultPortalResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, models.DefaultPortalResponse{PortalID: tt.portalID, IsDefault: tt.want}, body)
		})
	}
}

// ── statusFromError ──────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"portal not found", service.ErrPortalNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("lookup: %w", service.ErrPortalNotFound), http.StatusNotFound},
		{"missing portal id", service.ErrMissingPortalID, http.StatusInternalServerError},
		{"default portal missing", service.ErrDefaultPortalNotFound, http.StatusInternalServerError},
		{"unknown", errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}
