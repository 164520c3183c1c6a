package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/edsc-portals/internal/config"
	"github.com/MKhiriev/edsc-portals/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_Bundled(t *testing.T) {
	storages, err := NewStorages(config.Portals{}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, storages.PortalRegistry)

	_, ok := storages.PortalRegistry.Get("edsc")
	assert.True(t, ok)
}

func TestNewStorages_FromDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "custom"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "custom", "config.yaml"),
		[]byte("pageTitle: Custom\n"),
		0o600,
	))

	storages, err := NewStorages(config.Portals{Dir: dir}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, []string{"custom"}, storages.PortalRegistry.IDs())
}

func TestNewStorages_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	storages, err := NewStorages(config.Portals{Dir: dir}, logger.Nop())
	require.Error(t, err)
	assert.Nil(t, storages)
	assert.ErrorIs(t, err, ErrEmptyRegistry)
	assert.Contains(t, err.Error(), dir)
}
