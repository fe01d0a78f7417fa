package engine

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// spawnHeight lifts new shapes so a unit-sized primitive rests on the grid.
const spawnHeight float32 = 0.5

// Scene owns the placed objects. Objects live in an arena keyed by ID;
// everything outside the scene, the selection included, refers to them by ID.
type Scene struct {
	Name string

	order    []ID
	objects  map[ID]*SceneObject
	counters map[Kind]int
	nextID   ID
	selected ID
	colorIdx int
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:     name,
		order:    make([]ID, 0),
		objects:  make(map[ID]*SceneObject),
		counters: make(map[Kind]int),
		nextID:   1,
	}
}

// Add places a new object of the given kind with default geometry and material.
// Names are "{kind}_{n}" with n counting up per kind; numbers are never reused.
func (s *Scene) Add(kind Kind) (*SceneObject, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("add shape: unknown kind %q", kind)
	}
	s.counters[kind]++

	obj := &SceneObject{
		ID:        s.nextID,
		Kind:      kind,
		Name:      fmt.Sprintf("%s_%d", kind, s.counters[kind]),
		Transform: NewTransform(),
		Material: Material{
			Color: Palette[s.colorIdx%len(Palette)],
			Kind:  MaterialStandard,
		},
	}
	obj.Transform.Position = rl.Vector3{Y: spawnHeight}
	s.nextID++
	s.colorIdx++

	s.order = append(s.order, obj.ID)
	s.objects[obj.ID] = obj
	return obj, nil
}

// Remove deletes the object and drops the selection if it pointed at it.
func (s *Scene) Remove(id ID) bool {
	if _, ok := s.objects[id]; !ok {
		return false
	}
	delete(s.objects, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.selected == id {
		s.selected = 0
	}
	return true
}

// Get resolves an ID. The returned pointer is only valid until the next
// Remove or Restore.
func (s *Scene) Get(id ID) *SceneObject {
	return s.objects[id]
}

// List returns the live objects in insertion order.
func (s *Scene) List() []*SceneObject {
	out := make([]*SceneObject, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.objects[id])
	}
	return out
}

func (s *Scene) Len() int {
	return len(s.order)
}

// Select makes id the single selected object. Unknown ids are ignored.
func (s *Scene) Select(id ID) bool {
	if _, ok := s.objects[id]; !ok {
		return false
	}
	s.selected = id
	return true
}

func (s *Scene) ClearSelection() {
	s.selected = 0
}

// SelectedID returns the selection, if any.
func (s *Scene) SelectedID() (ID, bool) {
	return s.selected, s.selected != 0
}

// Selected resolves the selection through the arena.
func (s *Scene) Selected() *SceneObject {
	if s.selected == 0 {
		return nil
	}
	return s.objects[s.selected]
}

// Snapshot deep-copies the object list in order.
func (s *Scene) Snapshot() []SceneObject {
	out := make([]SceneObject, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.objects[id])
	}
	return out
}

// Restore replaces the object list with copies of objects and clears the
// selection. Name counters and the ID allocator only move forward.
func (s *Scene) Restore(objects []SceneObject) {
	s.order = make([]ID, 0, len(objects))
	s.objects = make(map[ID]*SceneObject, len(objects))
	for _, o := range objects {
		obj := o
		s.order = append(s.order, obj.ID)
		s.objects[obj.ID] = &obj
		if obj.ID >= s.nextID {
			s.nextID = obj.ID + 1
		}
	}
	s.selected = 0
}
