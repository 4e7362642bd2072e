package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/gamemenu/internal/application/game"
	"github.com/younwookim/gamemenu/internal/infrastructure/config"
)

// runner adds window-level hotkeys on top of the game
type runner struct {
	*game.Game
	store  *config.SettingsStore
	logger *log.Logger
}

func newRunner(g *game.Game, store *config.SettingsStore, logger *log.Logger) *runner {
	return &runner{Game: g, store: store, logger: logger}
}

// Update handles hotkeys, then runs the game frame
func (r *runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(r.toggleFullscreen())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		r.toggleSound()
	}
	return r.Game.Update()
}

func (r *runner) toggleFullscreen() bool {
	s := r.store.Settings()
	s.Fullscreen = !s.Fullscreen
	r.logger.Info("fullscreen", "on", s.Fullscreen)
	return s.Fullscreen
}

func (r *runner) toggleSound() bool {
	s := r.store.Settings()
	s.SoundEnabled = !s.SoundEnabled
	r.logger.Info("sound", "on", s.SoundEnabled)
	return s.SoundEnabled
}
