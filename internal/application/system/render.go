package system

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/gamemenu/internal/ecs"
)

// cornerSegments is the number of polygon edges per rounded corner
const cornerSegments = 8

// LoadFontSource loads a TrueType font from path.
// An empty path selects the bundled font.
func LoadFontSource(path string) (*text.GoTextFaceSource, error) {
	data := fonts.MPlus1pRegular_ttf
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		data = b
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %q: %w", path, err)
	}
	return source, nil
}

// Renderer draws world meshes and the UI tree
type Renderer struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
	clear  color.RGBA

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a renderer. source may be nil, in which case
// labels are neither measured nor drawn.
func NewRenderer(source *text.GoTextFaceSource, clear color.RGBA) *Renderer {
	return &Renderer{
		source: source,
		faces:  make(map[float64]*text.GoTextFace),
		clear:  clear,
	}
}

func (r *Renderer) face(size float64) *text.GoTextFace {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source:    r.source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	r.faces[size] = f
	return f
}

// Measure returns the rendered size of a label (implements ecs.TextMeasurer)
func (r *Renderer) Measure(t ecs.Text) (float64, float64) {
	if r.source == nil {
		return 0, 0
	}
	f := r.face(t.Size)
	return text.Measure(t.Content, f, f.Size*1.2)
}

// Draw renders one frame: clear color, meshes, then the UI on top
func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	screen.Fill(r.clear)

	b := screen.Bounds()
	sw, sh := float64(b.Dx()), float64(b.Dy())
	for _, id := range w.Meshes() {
		rect := MeshScreenRect(w, id, sw, sh)
		r.fillPolygon(screen, RoundedRectPolygon(rect, 0), w.Mesh[id].Color)
	}

	for _, root := range w.UIRoots() {
		r.drawNode(screen, w, root)
	}
}

func (r *Renderer) drawNode(screen *ebiten.Image, w *ecs.World, id ecs.EntityID) {
	rect, ok := w.Rect[id]
	if !ok {
		return
	}

	if style, ok := w.Style[id]; ok {
		border := w.Node[id].Border
		if s := style.Shadow; s != nil {
			shadow := rect
			shadow.X += rect.W * s.OffsetXPct / 100
			shadow.Y += rect.H * s.OffsetYPct / 100
			if s.Blur > 0 {
				faded := s.Color
				faded.A /= 2
				r.fillPolygon(screen, RoundedRectPolygon(shadow.Inset(-s.Blur/2), style.Radius+s.Blur/2), faded)
			}
			r.fillPolygon(screen, RoundedRectPolygon(shadow, style.Radius), s.Color)
		}
		if border > 0 {
			r.fillPolygon(screen, RoundedRectPolygon(rect, style.Radius), style.BorderColor)
			r.fillPolygon(screen, RoundedRectPolygon(rect.Inset(border), math.Max(style.Radius-border, 0)), style.Background)
		} else {
			r.fillPolygon(screen, RoundedRectPolygon(rect, style.Radius), style.Background)
		}
	}

	if t, ok := w.Text[id]; ok && r.source != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(rect.X+rect.W/2, rect.Y+rect.H/2)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(t.Color)
		text.Draw(screen, t.Content, r.face(t.Size), op)
	}

	for _, child := range w.Children[id] {
		r.drawNode(screen, w, child)
	}
}

// fillPolygon fills a convex polygon as a triangle fan
func (r *Renderer) fillPolygon(screen *ebiten.Image, pts [][2]float64, c color.RGBA) {
	if c.A == 0 || len(pts) < 3 {
		return
	}
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	cr, cg, cb, ca := c.RGBA()
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, p := range pts {
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX:   float32(p[0]),
			DstY:   float32(p[1]),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(cr) / 0xffff,
			ColorG: float32(cg) / 0xffff,
			ColorB: float32(cb) / 0xffff,
			ColorA: float32(ca) / 0xffff,
		})
	}
	for i := 1; i+1 < len(pts); i++ {
		r.indices = append(r.indices, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true, ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	screen.DrawTriangles(r.vertices, r.indices, r.white, op)
}

// RoundedRectPolygon returns the outline of r with rounded corners,
// clockwise from the top-left corner. The radius is clamped to half the
// shorter side; a zero radius yields the four corners.
func RoundedRectPolygon(r ecs.Rect, radius float64) [][2]float64 {
	radius = math.Min(radius, math.Min(r.W, r.H)/2)
	if radius <= 0 {
		return [][2]float64{
			{r.X, r.Y},
			{r.X + r.W, r.Y},
			{r.X + r.W, r.Y + r.H},
			{r.X, r.Y + r.H},
		}
	}

	corners := [4]struct {
		cx, cy, start float64
	}{
		{r.X + radius, r.Y + radius, math.Pi},             // top-left
		{r.X + r.W - radius, r.Y + radius, 1.5 * math.Pi}, // top-right
		{r.X + r.W - radius, r.Y + r.H - radius, 0},       // bottom-right
		{r.X + radius, r.Y + r.H - radius, 0.5 * math.Pi}, // bottom-left
	}

	pts := make([][2]float64, 0, 4*(cornerSegments+1))
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := c.start + float64(i)/cornerSegments*(math.Pi/2)
			pts = append(pts, [2]float64{c.cx + radius*math.Cos(a), c.cy + radius*math.Sin(a)})
		}
	}
	return pts
}

// MeshScreenRect projects a mesh through the camera onto the screen.
// World y points up; the camera position maps to the screen center.
func MeshScreenRect(w *ecs.World, id ecs.EntityID, screenW, screenH float64) ecs.Rect {
	t := w.Transform[id]
	m := w.Mesh[id]
	cam := w.Camera[w.CameraID]

	width := m.Width * t.ScaleX
	height := m.Height * t.ScaleY
	return ecs.Rect{
		X: screenW/2 + (t.X - cam.X) - width/2,
		Y: screenH/2 - (t.Y - cam.Y) - height/2,
		W: width,
		H: height,
	}
}
