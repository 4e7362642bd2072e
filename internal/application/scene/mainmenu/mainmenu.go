// Package mainmenu provides the main menu scene: a centered panel of
// Start, Help and Quit buttons shown while the app is in state.MainMenu.
package mainmenu

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/younwookim/gamemenu/internal/application/state"
	"github.com/younwookim/gamemenu/internal/ecs"
	"github.com/younwookim/gamemenu/internal/infrastructure/config"
)

// ErrNotImplemented is returned when a menu action has no behavior yet
var ErrNotImplemented = errors.New("not implemented")

// Exiter receives application termination requests
type Exiter interface {
	RequestExit()
}

// Clicker plays the activation sound
type Clicker interface {
	PlayClick()
}

// Scene is the main menu
type Scene struct {
	world   *ecs.World
	machine *state.Machine
	exiter  Exiter
	clicker Clicker
	target  config.Target
	logger  *log.Logger

	root ecs.EntityID // 0 while the menu is not built
}

// New creates the main menu scene. clicker may be nil.
func New(w *ecs.World, exiter Exiter, clicker Clicker, target config.Target, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.Default()
	}
	return &Scene{
		world:   w,
		exiter:  exiter,
		clicker: clicker,
		target:  target,
		logger:  logger,
	}
}

// Register implements scene.Scene
func (s *Scene) Register(m *state.Machine) {
	s.machine = m
	m.OnEnter(state.MainMenu, s.setup)
	m.WhileIn(state.MainMenu, s.updateButtonColors)
	m.WhileIn(state.MainMenu, s.handlePress)
	m.OnExit(state.MainMenu, s.teardown)
}

// Root returns the menu's root entity, or 0 if the menu is not built
func (s *Scene) Root() ecs.EntityID {
	return s.root
}

// setup builds root -> panel -> buttons
func (s *Scene) setup() {
	w := s.world
	s.root = w.CreateNode(0, ecs.Node{
		Width:  ecs.Percent(100),
		Height: ecs.Percent(100),
	}, ecs.Style{Background: BackgroundColor})

	menu := s.createMenu(s.root)
	s.createButton(menu, "Start", ecs.MenuButtonStart)
	s.createButton(menu, "Help", ecs.MenuButtonHelp)
	if s.target.QuitAvailable() {
		s.createButton(menu, "Quit", ecs.MenuButtonQuit)
	}

	s.logger.Debug("main menu built", "root", s.root, "buttons", len(w.Buttons()))
}

func (s *Scene) createMenu(parent ecs.EntityID) ecs.EntityID {
	return s.world.CreateNode(parent, ecs.Node{
		Padding:   MenuPadding,
		Border:    BorderWidth,
		Gap:       MenuGap,
		Direction: ecs.Column,
	}, ecs.Style{
		Background:  MenuColor,
		BorderColor: BorderColor,
		Radius:      BorderRadius,
		Shadow:      menuShadow(),
	})
}

func (s *Scene) createButton(parent ecs.EntityID, label string, kind ecs.MenuButton) ecs.EntityID {
	w := s.world
	id := w.CreateButton(parent, ecs.Node{
		Width:  ecs.Px(ButtonWidth),
		Height: ecs.Px(ButtonHeight),
		Border: BorderWidth,
	}, ecs.Style{
		Background:  ButtonColor,
		BorderColor: BorderColor,
		Radius:      BorderRadius,
		Shadow:      buttonShadow(),
	})
	w.MenuButton[id] = kind
	w.CreateText(id, ecs.Text{Content: label, Size: FontSize, Color: TextColor})
	return id
}

// ButtonBackground maps an interaction to a background color.
// Pressed keeps the current color.
func ButtonBackground(i ecs.Interaction, current color.RGBA) color.RGBA {
	switch i {
	case ecs.InteractionHovered:
		return ButtonHoverColor
	case ecs.InteractionNone:
		return ButtonColor
	default:
		return current
	}
}

// updateButtonColors recolors buttons whose interaction changed this frame
func (s *Scene) updateButtonColors() error {
	w := s.world
	for _, id := range w.InteractionChanged() {
		style := w.Style[id]
		style.Background = ButtonBackground(w.Interaction[id], style.Background)
		w.Style[id] = style
	}
	return nil
}

// handlePress dispatches buttons that became pressed this frame
func (s *Scene) handlePress() error {
	w := s.world
	for _, id := range w.InteractionChanged() {
		if w.Interaction[id] != ecs.InteractionPressed {
			continue
		}
		kind, ok := w.MenuButton[id]
		if !ok {
			continue
		}

		if s.clicker != nil {
			s.clicker.PlayClick()
		}
		s.logger.Info("menu button pressed", "button", kind)

		switch kind {
		case ecs.MenuButtonStart:
			if err := s.machine.Set(state.InGame); err != nil {
				return fmt.Errorf("start button: %w", err)
			}
		case ecs.MenuButtonHelp:
			s.logger.Error("help screen is not built")
			return fmt.Errorf("help button: %w", ErrNotImplemented)
		case ecs.MenuButtonQuit:
			s.exiter.RequestExit()
		}
	}
	return nil
}

// teardown despawns the menu's own subtree
func (s *Scene) teardown() {
	if s.root == 0 {
		return
	}
	s.world.DespawnRecursive(s.root)
	s.logger.Debug("main menu torn down", "root", s.root)
	s.root = 0
}
