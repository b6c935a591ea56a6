package physics

import (
	"sort"
	"testing"

	"github.com/tomz197/roadrush/internal/object"
)

func TestRectsOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b [4]float64
		want bool
	}{
		{"separate", [4]float64{0, 0, 10, 10}, [4]float64{20, 0, 30, 10}, false},
		{"touching edge", [4]float64{0, 0, 10, 10}, [4]float64{10, 0, 20, 10}, false},
		{"overlap", [4]float64{0, 0, 10, 10}, [4]float64{5, 5, 15, 15}, true},
		{"contained", [4]float64{0, 0, 10, 10}, [4]float64{2, 2, 3, 3}, true},
		{"vertical gap", [4]float64{0, 0, 10, 10}, [4]float64{0, 11, 10, 20}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RectsOverlap(tt.a[0], tt.a[1], tt.a[2], tt.a[3], tt.b[0], tt.b[1], tt.b[2], tt.b[3])
			if got != tt.want {
				t.Errorf("RectsOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpatialGridQueryAround(t *testing.T) {
	g := NewSpatialGrid(-100, -100, 100, 100, 50)
	g.Insert(-90, -90, 0) // bottom-left cell
	g.Insert(10, 10, 1)   // center
	g.Insert(40, 10, 2)   // neighbor of center
	g.Insert(500, 500, 3) // clamped to top-right cell

	var found []int
	g.QueryAround(10, 10, func(i int) bool {
		found = append(found, i)
		return false
	})
	sort.Ints(found)
	if len(found) != 3 || found[0] != 1 || found[1] != 2 || found[2] != 3 {
		t.Errorf("QueryAround(10,10) = %v, want [1 2 3]", found)
	}

	found = found[:0]
	g.QueryAround(-95, -95, func(i int) bool {
		found = append(found, i)
		return false
	})
	if len(found) != 1 || found[0] != 0 {
		t.Errorf("QueryAround(-95,-95) = %v, want [0]", found)
	}

	g.Clear()
	calls := 0
	g.QueryAround(0, 0, func(int) bool { calls++; return false })
	if calls != 0 {
		t.Errorf("QueryAround after Clear visited %d items", calls)
	}
}

func TestSpatialGridEarlyStop(t *testing.T) {
	g := NewSpatialGrid(0, 0, 10, 10, 10)
	g.Insert(1, 1, 0)
	g.Insert(2, 2, 1)

	calls := 0
	g.QueryAround(1, 1, func(int) bool {
		calls++
		return true
	})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func newScene() (*object.Scene, object.ID, object.ID, object.ID) {
	s := object.NewScene()
	player := s.Add(object.Entity{Role: object.RolePlayer, X: 0, Y: 0, Width: 100, Height: 50, Collision: true})
	s.Add(object.Entity{Role: object.RoleRoad, X: 0, Y: 0, Width: 100, Height: 10})
	car := s.Add(object.Entity{Role: object.RoleObstacle, X: 1000, Y: 0, Width: 100, Height: 50, Collision: true})
	cone := s.Add(object.Entity{Role: object.RoleObstacle, X: 1000, Y: 200, Width: 40, Height: 40, Collision: true})
	return s, player, car, cone
}

func TestContactTrackerTransitions(t *testing.T) {
	scene, player, car, _ := newScene()
	tracker := NewContactTracker(-1000, -500, 2000, 500, 200)
	var q object.CollisionQueue

	tracker.Detect(scene, &q)
	if q.Len() != 0 {
		t.Fatalf("initial frame produced %v", q.Drain())
	}

	scene.MustEntity(car).X = 60
	tracker.Detect(scene, &q)
	got := q.Drain()
	if len(got) != 1 {
		t.Fatalf("begin frame produced %v", got)
	}
	if got[0].Phase != object.PhaseBegin || !got[0].Involves(player) || !got[0].Involves(car) {
		t.Errorf("begin notification = %+v", got[0])
	}

	// Staying in contact is silent.
	scene.MustEntity(car).X = 50
	tracker.Detect(scene, &q)
	if q.Len() != 0 {
		t.Errorf("sustained contact produced %v", q.Drain())
	}
	if tracker.Active() != 1 {
		t.Errorf("Active() = %d, want 1", tracker.Active())
	}

	scene.MustEntity(car).X = -500
	tracker.Detect(scene, &q)
	got = q.Drain()
	if len(got) != 1 || got[0].Phase != object.PhaseEnd || !got[0].Involves(car) {
		t.Fatalf("end frame produced %v", got)
	}
	if tracker.Active() != 0 {
		t.Errorf("Active() = %d, want 0", tracker.Active())
	}
}

func TestContactTrackerIgnoresNonCollidable(t *testing.T) {
	scene, _, _, _ := newScene()
	tracker := NewContactTracker(-1000, -500, 2000, 500, 200)
	var q object.CollisionQueue

	// The road marking overlaps the player but has collision disabled.
	tracker.Detect(scene, &q)
	if q.Len() != 0 {
		t.Errorf("non-collidable overlap produced %v", q.Drain())
	}
}

func TestContactTrackerOrdering(t *testing.T) {
	scene, player, car, cone := newScene()
	tracker := NewContactTracker(-1000, -500, 2000, 500, 200)
	var q object.CollisionQueue

	scene.MustEntity(car).X = 30
	scene.MustEntity(cone).X = -30
	scene.MustEntity(cone).Y = 10
	tracker.Detect(scene, &q)

	got := q.Drain()
	if len(got) != 3 {
		t.Fatalf("got %d notifications, want 3: %v", len(got), got)
	}
	want := []object.Collision{
		{A: player, B: car},
		{A: player, B: cone},
		{A: car, B: cone},
	}
	for i, c := range got {
		if c != want[i] {
			t.Errorf("notification %d = %+v, want %+v", i, c, want[i])
		}
	}
}
