package physics

import (
	"sort"

	"github.com/tomz197/roadrush/internal/object"
)

// pair is an ordered key for an unordered entity pair (A < B).
type pair struct {
	a, b object.ID
}

func makePair(x, y object.ID) pair {
	if x > y {
		x, y = y, x
	}
	return pair{a: x, b: y}
}

// ContactTracker finds overlapping collidable entities each frame and emits
// a Begin notification when a pair starts touching and an End notification
// when it stops. A pair that stays in contact produces nothing.
type ContactTracker struct {
	grid    *SpatialGrid
	active  map[pair]struct{}
	current map[pair]struct{}
	bodies  []*object.Entity
	boxes   [][4]float64
	changed []object.Collision
}

// NewContactTracker creates a tracker whose broad phase covers the given
// region. cellSize must be >= the largest collidable entity extent.
func NewContactTracker(minX, minY, maxX, maxY, cellSize float64) *ContactTracker {
	return &ContactTracker{
		grid:    NewSpatialGrid(minX, minY, maxX, maxY, cellSize),
		active:  make(map[pair]struct{}),
		current: make(map[pair]struct{}),
	}
}

// Detect compares the scene against the previous frame and pushes contact
// transitions onto q. Begin notifications come before End notifications,
// each group ordered by entity handle.
func (t *ContactTracker) Detect(scene *object.Scene, q *object.CollisionQueue) {
	t.grid.Clear()
	t.bodies = t.bodies[:0]
	t.boxes = t.boxes[:0]
	clear(t.current)

	for _, e := range scene.Entities() {
		if !e.Collision {
			continue
		}
		minX, minY, maxX, maxY := e.Bounds()
		t.grid.Insert(e.X, e.Y, len(t.bodies))
		t.bodies = append(t.bodies, e)
		t.boxes = append(t.boxes, [4]float64{minX, minY, maxX, maxY})
	}

	for i, e := range t.bodies {
		box := t.boxes[i]
		t.grid.QueryAround(e.X, e.Y, func(j int) bool {
			if j <= i {
				return false
			}
			other := t.boxes[j]
			if RectsOverlap(box[0], box[1], box[2], box[3], other[0], other[1], other[2], other[3]) {
				t.current[makePair(e.ID, t.bodies[j].ID)] = struct{}{}
			}
			return false
		})
	}

	t.changed = t.changed[:0]
	for p := range t.current {
		if _, before := t.active[p]; !before {
			t.changed = append(t.changed, object.Collision{A: p.a, B: p.b, Phase: object.PhaseBegin})
		}
	}
	for p := range t.active {
		if _, still := t.current[p]; !still {
			t.changed = append(t.changed, object.Collision{A: p.a, B: p.b, Phase: object.PhaseEnd})
		}
	}
	sort.Slice(t.changed, func(i, j int) bool {
		ci, cj := t.changed[i], t.changed[j]
		if ci.Phase != cj.Phase {
			return ci.Phase < cj.Phase
		}
		if ci.A != cj.A {
			return ci.A < cj.A
		}
		return ci.B < cj.B
	})
	q.Push(t.changed...)

	t.active, t.current = t.current, t.active
}

// Active returns the number of pairs currently in contact.
func (t *ContactTracker) Active() int {
	return len(t.active)
}
