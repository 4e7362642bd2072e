package ecs

import "image/color"

// Unit selects how a Val is resolved
type Unit int

const (
	UnitAuto Unit = iota
	UnitPx
	UnitPercent
)

// Val is a UI length: auto, pixels, or percent of the parent's content box
type Val struct {
	Unit  Unit
	Value float64
}

// Auto sizes a node to fit its content
var Auto = Val{}

// Px returns a length in pixels
func Px(v float64) Val { return Val{Unit: UnitPx, Value: v} }

// Percent returns a length relative to the parent (0-100)
func Percent(v float64) Val { return Val{Unit: UnitPercent, Value: v} }

// Resolve returns the length in pixels given the parent length.
// ok is false for Auto.
func (v Val) Resolve(parent float64) (px float64, ok bool) {
	switch v.Unit {
	case UnitPx:
		return v.Value, true
	case UnitPercent:
		return parent * v.Value / 100, true
	default:
		return 0, false
	}
}

// FlexDirection is the main axis children are stacked along
type FlexDirection int

const (
	Row FlexDirection = iota
	Column
)

// Node is a UI layout box. Children are always centered on both axes.
type Node struct {
	Width, Height Val
	Padding       float64 // all sides
	Border        float64 // all sides
	Gap           float64 // between children along the main axis
	Direction     FlexDirection
}

// Rect is a laid-out box in screen pixels
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point is inside r (right/bottom edges excluded)
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by d on every side
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// BoxShadow is a drop shadow behind a node.
// Offsets are percentages of the node size.
type BoxShadow struct {
	Color      color.RGBA
	OffsetXPct float64
	OffsetYPct float64
	Blur       float64 // pixels
}

// Style holds the visual properties of a UI node
type Style struct {
	Background  color.RGBA
	BorderColor color.RGBA
	Radius      float64
	Shadow      *BoxShadow
}

// Text is a label drawn centered in its rect
type Text struct {
	Content string
	Size    float64 // points
	Color   color.RGBA
}

// Interaction is the pointer state of a button
type Interaction int

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

// String returns the string representation of the interaction
func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "None"
	case InteractionHovered:
		return "Hovered"
	case InteractionPressed:
		return "Pressed"
	default:
		return "Unknown"
	}
}

// MenuButton tags a main menu button with its role
type MenuButton int

const (
	MenuButtonHelp MenuButton = iota
	MenuButtonStart
	MenuButtonQuit
)

// String returns the string representation of the menu button
func (b MenuButton) String() string {
	switch b {
	case MenuButtonHelp:
		return "Help"
	case MenuButtonStart:
		return "Start"
	case MenuButtonQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Transform places a world-space entity.
// The origin is the camera center and y points up.
type Transform struct {
	X, Y           float64
	ScaleX, ScaleY float64
}

// Mesh is a filled rectangle primitive, Width x Height before scaling
type Mesh struct {
	Width, Height float64
	Color         color.RGBA
}

// Camera2D maps world space onto the screen
type Camera2D struct {
	X, Y float64 // world position shown at the screen center
}
