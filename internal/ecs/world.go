package ecs

import "sort"

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID
	alive  map[EntityID]struct{}

	// Hierarchy
	Parent   map[EntityID]EntityID
	Children map[EntityID][]EntityID

	// UI components
	Node        map[EntityID]Node
	Rect        map[EntityID]Rect // computed by UpdateLayout
	Style       map[EntityID]Style
	Text        map[EntityID]Text
	Interaction map[EntityID]Interaction
	MenuButton  map[EntityID]MenuButton

	// World-space components
	Transform map[EntityID]Transform
	Mesh      map[EntityID]Mesh
	Camera    map[EntityID]Camera2D

	// Tags
	IsButton map[EntityID]struct{}

	// Buttons whose Interaction changed this frame
	changed map[EntityID]struct{}

	// Singleton references
	CameraID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:      1, // 0 is "nil"
		alive:       make(map[EntityID]struct{}),
		Parent:      make(map[EntityID]EntityID),
		Children:    make(map[EntityID][]EntityID),
		Node:        make(map[EntityID]Node),
		Rect:        make(map[EntityID]Rect),
		Style:       make(map[EntityID]Style),
		Text:        make(map[EntityID]Text),
		Interaction: make(map[EntityID]Interaction),
		MenuButton:  make(map[EntityID]MenuButton),
		Transform:   make(map[EntityID]Transform),
		Mesh:        make(map[EntityID]Mesh),
		Camera:      make(map[EntityID]Camera2D),
		IsButton:    make(map[EntityID]struct{}),
		changed:     make(map[EntityID]struct{}),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = struct{}{}
	return id
}

// DestroyEntity removes all components for an entity and detaches it from
// its parent. Children are left in place; use DespawnRecursive for subtrees.
func (w *World) DestroyEntity(id EntityID) {
	if parent, ok := w.Parent[id]; ok {
		w.removeChild(parent, id)
	}
	for _, child := range w.Children[id] {
		delete(w.Parent, child)
	}

	delete(w.alive, id)
	delete(w.Parent, id)
	delete(w.Children, id)
	delete(w.Node, id)
	delete(w.Rect, id)
	delete(w.Style, id)
	delete(w.Text, id)
	delete(w.Interaction, id)
	delete(w.MenuButton, id)
	delete(w.Transform, id)
	delete(w.Mesh, id)
	delete(w.Camera, id)
	delete(w.IsButton, id)
	delete(w.changed, id)

	if w.CameraID == id {
		w.CameraID = 0
	}
}

// DespawnRecursive destroys id and every descendant
func (w *World) DespawnRecursive(id EntityID) {
	children := append([]EntityID(nil), w.Children[id]...)
	for _, child := range children {
		w.DespawnRecursive(child)
	}
	w.DestroyEntity(id)
}

// Exists checks if an entity is alive
func (w *World) Exists(id EntityID) bool {
	_, ok := w.alive[id]
	return ok
}

// CountEntities returns the number of live entities
func (w *World) CountEntities() int {
	return len(w.alive)
}

// SetParent attaches child under parent, detaching it from any previous parent
func (w *World) SetParent(child, parent EntityID) {
	if old, ok := w.Parent[child]; ok {
		w.removeChild(old, child)
	}
	w.Parent[child] = parent
	w.Children[parent] = append(w.Children[parent], child)
}

func (w *World) removeChild(parent, child EntityID) {
	kids := w.Children[parent]
	for i, k := range kids {
		if k == child {
			w.Children[parent] = append(kids[:i:i], kids[i+1:]...)
			break
		}
	}
	if len(w.Children[parent]) == 0 {
		delete(w.Children, parent)
	}
}

// IsUI reports whether id is part of a UI tree (has a Node or Text)
func (w *World) IsUI(id EntityID) bool {
	if _, ok := w.Node[id]; ok {
		return true
	}
	_, ok := w.Text[id]
	return ok
}

// CountUI returns the number of UI entities
func (w *World) CountUI() int {
	n := 0
	for id := range w.alive {
		if w.IsUI(id) {
			n++
		}
	}
	return n
}

// UIRoots returns UI entities without a parent, in creation order
func (w *World) UIRoots() []EntityID {
	var roots []EntityID
	for id := range w.alive {
		if _, hasParent := w.Parent[id]; !hasParent && w.IsUI(id) {
			roots = append(roots, id)
		}
	}
	sortIDs(roots)
	return roots
}

// Buttons returns all button entities in creation order
func (w *World) Buttons() []EntityID {
	return sortedKeys(w.IsButton)
}

// Meshes returns all mesh entities in creation order
func (w *World) Meshes() []EntityID {
	ids := make([]EntityID, 0, len(w.Mesh))
	for id := range w.Mesh {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// FindMenuButton returns the button tagged with kind, if any
func (w *World) FindMenuButton(kind MenuButton) (EntityID, bool) {
	for _, id := range w.Buttons() {
		if k, ok := w.MenuButton[id]; ok && k == kind {
			return id, true
		}
	}
	return 0, false
}

// CreateNode creates a UI box. parent 0 makes it a root.
func (w *World) CreateNode(parent EntityID, node Node, style Style) EntityID {
	id := w.NewEntity()
	w.Node[id] = node
	w.Style[id] = style
	if parent != 0 {
		w.SetParent(id, parent)
	}
	return id
}

// CreateButton creates a UI box that receives pointer interaction
func (w *World) CreateButton(parent EntityID, node Node, style Style) EntityID {
	id := w.CreateNode(parent, node, style)
	w.IsButton[id] = struct{}{}
	w.Interaction[id] = InteractionNone
	return id
}

// CreateText creates a label under parent
func (w *World) CreateText(parent EntityID, text Text) EntityID {
	id := w.NewEntity()
	w.Text[id] = text
	if parent != 0 {
		w.SetParent(id, parent)
	}
	return id
}

// CreateCamera creates the 2D camera at the world origin
func (w *World) CreateCamera() EntityID {
	id := w.NewEntity()
	w.Camera[id] = Camera2D{}
	w.CameraID = id
	return id
}

// CreateMesh creates a world-space rectangle
func (w *World) CreateMesh(t Transform, m Mesh) EntityID {
	id := w.NewEntity()
	w.Transform[id] = t
	w.Mesh[id] = m
	return id
}

// SetInteraction updates a button's interaction and records the change
func (w *World) SetInteraction(id EntityID, i Interaction) {
	if prev, ok := w.Interaction[id]; ok && prev == i {
		return
	}
	w.Interaction[id] = i
	w.changed[id] = struct{}{}
}

// InteractionChanged returns buttons whose interaction changed this frame
func (w *World) InteractionChanged() []EntityID {
	return sortedKeys(w.changed)
}

// ClearChanged resets change tracking. Called once at the end of each frame.
func (w *World) ClearChanged() {
	clear(w.changed)
}

func sortedKeys(m map[EntityID]struct{}) []EntityID {
	ids := make([]EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
