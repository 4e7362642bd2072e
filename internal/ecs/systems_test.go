package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTestMenu builds root -> panel -> three 120x60 buttons with labels
func buildTestMenu(w *World) (root, panel EntityID, buttons []EntityID) {
	root = w.CreateNode(0, Node{Width: Percent(100), Height: Percent(100)}, Style{})
	panel = w.CreateNode(root, Node{
		Padding:   40,
		Border:    3,
		Gap:       30,
		Direction: Column,
	}, Style{})
	for i := 0; i < 3; i++ {
		b := w.CreateButton(panel, Node{Width: Px(120), Height: Px(60), Border: 3}, Style{})
		w.CreateText(b, Text{Content: "label", Size: 33})
		buttons = append(buttons, b)
	}
	return root, panel, buttons
}

func fixedMeasure(Text) (float64, float64) { return 40, 20 }

func TestUpdateLayout_Menu(t *testing.T) {
	w := NewWorld()
	root, panel, buttons := buildTestMenu(w)

	UpdateLayout(w, 800, 600, fixedMeasure)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 800, H: 600}, w.Rect[root])
	// 120 + 2*(40+3) wide, 3*60 + 2*30 + 2*(40+3) tall
	assert.Equal(t, Rect{X: 297, Y: 137, W: 206, H: 326}, w.Rect[panel])

	assert.Equal(t, Rect{X: 340, Y: 180, W: 120, H: 60}, w.Rect[buttons[0]])
	assert.Equal(t, Rect{X: 340, Y: 270, W: 120, H: 60}, w.Rect[buttons[1]])
	assert.Equal(t, Rect{X: 340, Y: 360, W: 120, H: 60}, w.Rect[buttons[2]])

	label := w.Children[buttons[0]][0]
	assert.Equal(t, Rect{X: 380, Y: 200, W: 40, H: 20}, w.Rect[label])
}

func TestUpdateLayout_NilMeasurer(t *testing.T) {
	w := NewWorld()
	_, _, buttons := buildTestMenu(w)

	UpdateLayout(w, 800, 600, nil)

	label := w.Children[buttons[0]][0]
	r := w.Rect[label]
	assert.Equal(t, 0.0, r.W)
	assert.Equal(t, 0.0, r.H)
	assert.Equal(t, Rect{X: 340, Y: 180, W: 120, H: 60}, w.Rect[buttons[0]])
}

func TestUpdateLayout_Row(t *testing.T) {
	w := NewWorld()
	row := w.CreateNode(0, Node{Gap: 10}, Style{})
	a := w.CreateNode(row, Node{Width: Px(20), Height: Px(10)}, Style{})
	b := w.CreateNode(row, Node{Width: Px(30), Height: Px(40)}, Style{})

	UpdateLayout(w, 100, 100, nil)

	assert.Equal(t, Rect{X: 20, Y: 30, W: 60, H: 40}, w.Rect[row])
	assert.Equal(t, Rect{X: 20, Y: 45, W: 20, H: 10}, w.Rect[a])
	assert.Equal(t, Rect{X: 50, Y: 30, W: 30, H: 40}, w.Rect[b])
}

func TestUpdateLayout_FollowsResize(t *testing.T) {
	w := NewWorld()
	root, panel, _ := buildTestMenu(w)

	UpdateLayout(w, 800, 600, nil)
	UpdateLayout(w, 1024, 768, nil)

	assert.Equal(t, Rect{X: 0, Y: 0, W: 1024, H: 768}, w.Rect[root])
	assert.Equal(t, Rect{X: 409, Y: 221, W: 206, H: 326}, w.Rect[panel])
}

func TestUpdateInteraction(t *testing.T) {
	w := NewWorld()
	btn := w.CreateButton(0, Node{Width: Px(100), Height: Px(50)}, Style{})
	UpdateLayout(w, 100, 50, nil)
	require.Equal(t, Rect{X: 0, Y: 0, W: 100, H: 50}, w.Rect[btn])

	inside := Cursor{X: 10, Y: 10}
	outside := Cursor{X: 500, Y: 500}

	t.Run("hover", func(t *testing.T) {
		UpdateInteraction(w, inside)
		assert.Equal(t, InteractionHovered, w.Interaction[btn])
		assert.Equal(t, []EntityID{btn}, w.InteractionChanged())
		w.ClearChanged()
	})

	t.Run("hover held is not a change", func(t *testing.T) {
		UpdateInteraction(w, inside)
		assert.Equal(t, InteractionHovered, w.Interaction[btn])
		assert.Empty(t, w.InteractionChanged())
	})

	t.Run("press edge", func(t *testing.T) {
		UpdateInteraction(w, Cursor{X: 10, Y: 10, Down: true, JustPressed: true})
		assert.Equal(t, InteractionPressed, w.Interaction[btn])
		assert.Equal(t, []EntityID{btn}, w.InteractionChanged())
		w.ClearChanged()
	})

	t.Run("held press keeps pressed after leaving", func(t *testing.T) {
		UpdateInteraction(w, Cursor{X: 10, Y: 10, Down: true})
		UpdateInteraction(w, Cursor{X: 500, Y: 500, Down: true})
		assert.Equal(t, InteractionPressed, w.Interaction[btn])
		assert.Empty(t, w.InteractionChanged())
	})

	t.Run("release outside", func(t *testing.T) {
		UpdateInteraction(w, outside)
		assert.Equal(t, InteractionNone, w.Interaction[btn])
		w.ClearChanged()
	})

	t.Run("release inside goes to hovered", func(t *testing.T) {
		UpdateInteraction(w, Cursor{X: 10, Y: 10, Down: true, JustPressed: true})
		w.ClearChanged()
		UpdateInteraction(w, inside)
		assert.Equal(t, InteractionHovered, w.Interaction[btn])
		w.ClearChanged()
	})

	t.Run("press outside does not press", func(t *testing.T) {
		UpdateInteraction(w, outside)
		w.ClearChanged()
		UpdateInteraction(w, Cursor{X: 500, Y: 500, Down: true, JustPressed: true})
		assert.Equal(t, InteractionNone, w.Interaction[btn])
		assert.Empty(t, w.InteractionChanged())
	})
}

func TestUpdateInteraction_ClickWithinOneFrame(t *testing.T) {
	w := NewWorld()
	btn := w.CreateButton(0, Node{Width: Px(100), Height: Px(50)}, Style{})
	UpdateLayout(w, 100, 50, nil)

	// Pressed and released between two ticks
	UpdateInteraction(w, Cursor{X: 10, Y: 10, JustPressed: true})
	assert.Equal(t, InteractionPressed, w.Interaction[btn])
	w.ClearChanged()

	UpdateInteraction(w, Cursor{X: 10, Y: 10})
	assert.Equal(t, InteractionHovered, w.Interaction[btn])
}

func TestUpdateInteraction_NoRectNeverHovered(t *testing.T) {
	w := NewWorld()
	btn := w.CreateButton(0, Node{Width: Px(100), Height: Px(50)}, Style{})

	UpdateInteraction(w, Cursor{X: 0, Y: 0, Down: true, JustPressed: true})

	assert.Equal(t, InteractionNone, w.Interaction[btn])
}
