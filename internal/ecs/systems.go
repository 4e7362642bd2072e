package ecs

// Cursor is the pointer state sampled once per frame
type Cursor struct {
	X, Y        float64
	Down        bool // primary button held
	JustPressed bool // primary button went down this frame
}

// TextMeasurer returns the rendered size of a label.
// A nil measurer sizes every label as 0x0.
type TextMeasurer func(t Text) (w, h float64)

// UpdateLayout computes Rect for every UI node.
// Roots are sized against the screen and centered in it.
func UpdateLayout(w *World, screenW, screenH float64, measure TextMeasurer) {
	for _, id := range w.UIRoots() {
		rw, rh := measureNode(w, id, screenW, screenH, measure)
		placeNode(w, id, Rect{
			X: (screenW - rw) / 2,
			Y: (screenH - rh) / 2,
			W: rw,
			H: rh,
		}, measure)
	}
}

// measureNode returns the outer size of id given the parent's content box
func measureNode(w *World, id EntityID, availW, availH float64, measure TextMeasurer) (float64, float64) {
	if t, ok := w.Text[id]; ok {
		if measure == nil {
			return 0, 0
		}
		return measure(t)
	}

	node := w.Node[id]
	edge := 2 * (node.Padding + node.Border)

	width, hasW := node.Width.Resolve(availW)
	height, hasH := node.Height.Resolve(availH)
	if hasW && hasH {
		return width, height
	}

	innerW, innerH := availW-edge, availH-edge
	if hasW {
		innerW = width - edge
	}
	if hasH {
		innerH = height - edge
	}
	contentW, contentH := measureContent(w, id, node, innerW, innerH, measure)

	if !hasW {
		width = contentW + edge
	}
	if !hasH {
		height = contentH + edge
	}
	return width, height
}

// measureContent stacks the children of id along the node's main axis
func measureContent(w *World, id EntityID, node Node, innerW, innerH float64, measure TextMeasurer) (float64, float64) {
	var main, cross float64
	kids := w.Children[id]
	for i, child := range kids {
		cw, ch := measureNode(w, child, innerW, innerH, measure)
		if node.Direction == Column {
			cw, ch = ch, cw
		}
		main += cw
		if ch > cross {
			cross = ch
		}
		if i > 0 {
			main += node.Gap
		}
	}
	if node.Direction == Column {
		return cross, main
	}
	return main, cross
}

// placeNode stores r for id and centers its children inside the content box
func placeNode(w *World, id EntityID, r Rect, measure TextMeasurer) {
	w.Rect[id] = r

	node, ok := w.Node[id]
	if !ok {
		return
	}
	inner := r.Inset(node.Padding + node.Border)

	kids := w.Children[id]
	sizes := make([][2]float64, len(kids))
	var total float64
	for i, child := range kids {
		cw, ch := measureNode(w, child, inner.W, inner.H, measure)
		sizes[i] = [2]float64{cw, ch}
		if node.Direction == Column {
			total += ch
		} else {
			total += cw
		}
		if i > 0 {
			total += node.Gap
		}
	}

	if node.Direction == Column {
		y := inner.Y + (inner.H-total)/2
		for i, child := range kids {
			cw, ch := sizes[i][0], sizes[i][1]
			placeNode(w, child, Rect{X: inner.X + (inner.W-cw)/2, Y: y, W: cw, H: ch}, measure)
			y += ch + node.Gap
		}
		return
	}

	x := inner.X + (inner.W-total)/2
	for i, child := range kids {
		cw, ch := sizes[i][0], sizes[i][1]
		placeNode(w, child, Rect{X: x, Y: inner.Y + (inner.H-ch)/2, W: cw, H: ch}, measure)
		x += cw + node.Gap
	}
}

// UpdateInteraction derives each button's Interaction from the cursor.
//
// Releasing the button clears every Pressed. A hovered button becomes
// Pressed on a press edge and Hovered otherwise; Pressed survives the
// cursor leaving until release. Buttons without a Rect are never hovered.
func UpdateInteraction(w *World, c Cursor) {
	for _, id := range w.Buttons() {
		next := w.Interaction[id]
		if !c.Down && next == InteractionPressed {
			next = InteractionNone
		}

		r, laidOut := w.Rect[id]
		if laidOut && r.Contains(c.X, c.Y) {
			if c.JustPressed {
				next = InteractionPressed
			} else if next == InteractionNone {
				next = InteractionHovered
			}
		} else if next == InteractionHovered {
			next = InteractionNone
		}

		w.SetInteraction(id, next)
	}
}
