package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/edsc-portals/internal/adapter"
	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/MKhiriev/edsc-portals/internal/mock"
	"github.com/MKhiriev/edsc-portals/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T) (*App, *mock.MockPortalAdapter, *bytes.Buffer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	portalAdapter := mock.NewMockPortalAdapter(ctrl)
	out := &bytes.Buffer{}

	c, err := NewApp(portalAdapter, out, logger.Nop())
	require.NoError(t, err)

	return c.(*App), portalAdapter, out
}

func TestNewApp_NilAdapter(t *testing.T) {
	c, err := NewApp(nil, &bytes.Buffer{}, logger.Nop())

	assert.ErrorIs(t, err, ErrNoAdapter)
	assert.Nil(t, c)
}

func TestRun_ListPortals(t *testing.T) {
	app, portalAdapter, out := newTestApp(t)

	portalAdapter.EXPECT().ListPortals(gomock.Any()).Return([]models.PortalSummary{
		{PortalID: "edsc", Title: "Earthdata Search", IsDefault: true},
		{PortalID: "idn", Title: "IDN"},
	}, nil)

	require.NoError(t, app.Run(context.Background(), nil))

	rendered := out.String()
	assert.Contains(t, rendered, "PORTAL")
	assert.Contains(t, rendered, "TITLE")
	assert.Contains(t, rendered, "DEFAULT")
	assert.Contains(t, rendered, "edsc")
	assert.Contains(t, rendered, "Earthdata Search")
	assert.Contains(t, rendered, "idn")
	assert.Contains(t, rendered, "true")
	assert.Contains(t, rendered, "false")
}

func TestRun_ListPortalsError(t *testing.T) {
	app, portalAdapter, out := newTestApp(t)

	portalAdapter.EXPECT().ListPortals(gomock.Any()).Return(nil, adapter.ErrUnavailable)

	err := app.Run(context.Background(), []string{})

	assert.ErrorIs(t, err, adapter.ErrUnavailable)
	assert.Empty(t, out.String())
}

func TestRun_ShowPortal(t *testing.T) {
	app, portalAdapter, out := newTestApp(t)

	portal := models.PortalConfig{
		PortalID:     "idn",
		ParentConfig: "edsc",
		PageTitle:    models.Some("IDN"),
		Title:        models.Title{Primary: models.Some("IDN")},
		Footer: models.Footer{
			PrimaryLinks: models.Some(models.Links{{Title: "NASA", Href: "https://www.nasa.gov"}}),
		},
	}

	gomock.InOrder(
		portalAdapter.EXPECT().GetPortal(gomock.Any(), "idn").Return(portal, nil),
		portalAdapter.EXPECT().IsDefaultPortal(gomock.Any(), "idn").Return(false, nil),
	)

	require.NoError(t, app.Run(context.Background(), []string{"idn"}))

	var got models.PortalConfig
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, portal, got)
}

func TestRun_ShowPortalNotFound(t *testing.T) {
	app, portalAdapter, out := newTestApp(t)

	portalAdapter.EXPECT().GetPortal(gomock.Any(), "missing").
		Return(models.PortalConfig{}, adapter.ErrNotFound)

	err := app.Run(context.Background(), []string{"missing"})

	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Contains(t, err.Error(), `"missing"`)
	assert.Empty(t, out.String())
}

func TestRun_ShowPortalDefaultCheckFails(t *testing.T) {
	app, portalAdapter, out := newTestApp(t)
	boom := errors.New("boom")

	portalAdapter.EXPECT().GetPortal(gomock.Any(), "edsc").
		Return(models.PortalConfig{PortalID: "edsc"}, nil)
	portalAdapter.EXPECT().IsDefaultPortal(gomock.Any(), "edsc").Return(false, boom)

	err := app.Run(context.Background(), []string{"edsc"})

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, out.String())
}

func TestRun_TooManyArguments(t *testing.T) {
	app, _, out := newTestApp(t)

	err := app.Run(context.Background(), []string{"edsc", "idn"})

	assert.ErrorIs(t, err, ErrTooManyArguments)
	assert.Empty(t, out.String())
}

func TestRenderPortalTable_Empty(t *testing.T) {
	rendered := renderPortalTable(nil)

	assert.Contains(t, rendered, "PORTAL")
	assert.NotContains(t, rendered, "edsc")
}
