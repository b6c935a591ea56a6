package object

import (
	"fmt"
	"sort"
)

// Scene owns every entity and text label of a running session.
type Scene struct {
	entities  []*Entity
	labels    map[LabelID]*Label
	player    ID
	hasPlayer bool
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{
		labels: make(map[LabelID]*Label),
	}
}

// Add inserts an entity and returns its handle. The ID field of e is
// overwritten. Adding a RolePlayer entity makes it the scene's player.
func (s *Scene) Add(e Entity) ID {
	id := ID(len(s.entities))
	e.ID = id
	s.entities = append(s.entities, &e)

	if e.Role == RolePlayer {
		s.player = id
		s.hasPlayer = true
	}
	return id
}

// Entity looks up an entity by handle.
func (s *Scene) Entity(id ID) (*Entity, bool) {
	if id < 0 || int(id) >= len(s.entities) {
		return nil, false
	}
	return s.entities[id], true
}

// MustEntity looks up an entity and panics if the handle is unknown.
func (s *Scene) MustEntity(id ID) *Entity {
	e, ok := s.Entity(id)
	if !ok {
		panic(fmt.Sprintf("object: no entity with id %d", id))
	}
	return e
}

// PlayerID returns the handle of the player entity.
// Panics if no player was added; scene setup must provide one.
func (s *Scene) PlayerID() ID {
	if !s.hasPlayer {
		panic("object: scene has no player")
	}
	return s.player
}

// Player returns the player entity. See PlayerID.
func (s *Scene) Player() *Entity {
	return s.MustEntity(s.PlayerID())
}

// Entities returns all entities in insertion order.
// The slice is owned by the scene and must not be modified.
func (s *Scene) Entities() []*Entity {
	return s.entities
}

// Len returns the number of entities.
func (s *Scene) Len() int {
	return len(s.entities)
}

// Each calls fn for every entity with the given role.
func (s *Scene) Each(role Role, fn func(e *Entity)) {
	for _, e := range s.entities {
		if e.Role == role {
			fn(e)
		}
	}
}

// DrawOrder returns the entities sorted by layer, lowest first.
// Entities on the same layer keep insertion order.
func (s *Scene) DrawOrder() []*Entity {
	out := make([]*Entity, len(s.entities))
	copy(out, s.entities)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Layer < out[j].Layer
	})
	return out
}
