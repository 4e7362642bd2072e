package main

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gamemenu/internal/application/system"
	"github.com/younwookim/gamemenu/internal/infrastructure/config"
)

func TestEmbeddedConfig_Loads(t *testing.T) {
	fsys, err := fs.Sub(configFS, "configs")
	require.NoError(t, err)

	cfg, err := config.NewFSLoader(fsys, "configs").LoadApp()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, "gamemenu", cfg.Storage.AppName)
}

func TestEmbeddedConfig_FontLoadsWithoutFallback(t *testing.T) {
	fsys, err := fs.Sub(configFS, "configs")
	require.NoError(t, err)
	cfg, err := config.NewFSLoader(fsys, "configs").LoadApp()
	require.NoError(t, err)

	source, err := system.LoadFontSource(cfg.Assets.Font)
	require.NoError(t, err, "default font path must be loadable")
	assert.NotNil(t, source)
}
