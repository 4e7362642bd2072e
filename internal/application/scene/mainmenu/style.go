package mainmenu

import (
	"image/color"

	"github.com/younwookim/gamemenu/internal/ecs"
)

// Layout constants
const (
	BorderRadius = 25.0
	BorderWidth  = 3.0

	ButtonWidth  = 120.0
	ButtonHeight = 60.0
	FontSize     = 33.0

	MenuPadding = 40.0
	MenuGap     = 30.0
)

// Colors
var (
	BorderColor      = color.RGBA{0, 0, 0, 255}       // black
	TextColor        = color.RGBA{0, 0, 0, 255}       // black
	ButtonColor      = color.RGBA{245, 245, 220, 255} // beige
	ButtonHoverColor = color.RGBA{255, 250, 240, 255} // floral white
	MenuColor        = color.RGBA{255, 228, 196, 255} // bisque
	BackgroundColor  = color.RGBA{128, 128, 128, 255}
	ShadowColor      = color.RGBA{0, 0, 0, 204} // black, 80% alpha
)

func menuShadow() *ecs.BoxShadow {
	return &ecs.BoxShadow{Color: ShadowColor, OffsetXPct: 5, OffsetYPct: 5, Blur: 5}
}

func buttonShadow() *ecs.BoxShadow {
	return &ecs.BoxShadow{Color: ShadowColor, OffsetXPct: 5, OffsetYPct: 10, Blur: 5}
}
