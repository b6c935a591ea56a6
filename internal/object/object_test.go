package object

import (
	"math"
	"testing"
)

func TestSceneAddAssignsHandles(t *testing.T) {
	s := NewScene()
	road := s.Add(Entity{Role: RoleRoad, X: -600})
	player := s.Add(Entity{Role: RolePlayer, X: -500, ID: 99})
	obstacle := s.Add(Entity{Role: RoleObstacle})

	if road != 0 || player != 1 || obstacle != 2 {
		t.Fatalf("handles = %d,%d,%d, want 0,1,2", road, player, obstacle)
	}
	if got := s.PlayerID(); got != player {
		t.Errorf("PlayerID() = %d, want %d", got, player)
	}
	if got := s.Player(); got.ID != player || got.X != -500 {
		t.Errorf("Player() = %+v", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSceneEachFiltersByRole(t *testing.T) {
	s := NewScene()
	for i := 0; i < 4; i++ {
		s.Add(Entity{Role: RoleRoad})
	}
	s.Add(Entity{Role: RoleObstacle})

	count := 0
	s.Each(RoleRoad, func(e *Entity) {
		if e.Role != RoleRoad {
			t.Errorf("Each(RoleRoad) visited %v", e.Role)
		}
		count++
	})
	if count != 4 {
		t.Errorf("visited %d road entities, want 4", count)
	}
}

func TestSceneMustEntityPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustEntity did not panic")
		}
	}()
	NewScene().MustEntity(3)
}

func TestScenePlayerPanicsWithoutPlayer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("PlayerID did not panic")
		}
	}()
	s := NewScene()
	s.Add(Entity{Role: RoleObstacle})
	s.PlayerID()
}

func TestSceneDrawOrder(t *testing.T) {
	s := NewScene()
	s.Add(Entity{Role: RolePlayer, Layer: 10})
	s.Add(Entity{Role: RoleRoad, Layer: 0})
	s.Add(Entity{Role: RoleObstacle, Layer: 5})
	s.Add(Entity{Role: RoleRoad, Layer: 0})

	order := s.DrawOrder()
	want := []ID{1, 3, 2, 0}
	for i, e := range order {
		if e.ID != want[i] {
			t.Fatalf("DrawOrder()[%d] = %d, want %d", i, e.ID, want[i])
		}
	}
}

func TestLabels(t *testing.T) {
	s := NewScene()
	if _, ok := s.Label(LabelHealth); ok {
		t.Fatal("unexpected health label in empty scene")
	}

	s.SetLabel(LabelGameOver, Label{Text: "Game Over!", FontSize: 128})
	l := s.SetLabel(LabelHealth, Label{Text: "Health: 5", X: 550, Y: 320})
	if l.FontSize != DefaultFontSize {
		t.Errorf("FontSize = %v, want default %v", l.FontSize, DefaultFontSize)
	}

	l.Text = "Health: 4"
	if got := s.MustLabel(LabelHealth).Text; got != "Health: 4" {
		t.Errorf("label text = %q, want mutation through returned pointer", got)
	}

	ids := s.LabelIDs()
	if len(ids) != 2 || ids[0] != LabelHealth || ids[1] != LabelGameOver {
		t.Errorf("LabelIDs() = %v", ids)
	}
}

func TestMustLabelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustLabel did not panic")
		}
	}()
	NewScene().MustLabel(LabelHealth)
}

func TestCollisionQueueDrain(t *testing.T) {
	var q CollisionQueue
	q.Push(Collision{A: 1, B: 2}, Collision{A: 2, B: 3, Phase: PhaseEnd})
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}

	got := q.Drain()
	if len(got) != 2 || got[0].B != 2 || got[1].Phase != PhaseEnd {
		t.Fatalf("Drain() = %+v", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len() after drain = %d, want 0", q.Len())
	}
	if again := q.Drain(); len(again) != 0 {
		t.Errorf("second Drain() = %+v, want empty", again)
	}

	q.Push(Collision{A: 7, B: 8})
	if got := q.Drain(); len(got) != 1 || got[0].A != 7 {
		t.Errorf("Drain() after reuse = %+v", got)
	}
}

func TestCollisionInvolves(t *testing.T) {
	c := Collision{A: 4, B: 9}
	if !c.Involves(4) || !c.Involves(9) {
		t.Error("Involves should match both parties")
	}
	if c.Involves(5) {
		t.Error("Involves(5) = true")
	}
}

func TestEntityBounds(t *testing.T) {
	e := Entity{X: 10, Y: -5, Width: 100, Height: 50}
	minX, minY, maxX, maxY := e.Bounds()
	if minX != -40 || maxX != 60 || minY != -30 || maxY != 20 {
		t.Errorf("Bounds() = %v,%v,%v,%v", minX, minY, maxX, maxY)
	}

	e.Rotation = math.Pi / 2
	minX, minY, maxX, maxY = e.Bounds()
	if math.Abs(maxX-minX-50) > 1e-9 || math.Abs(maxY-minY-100) > 1e-9 {
		t.Errorf("rotated Bounds() size = %v x %v, want 50 x 100", maxX-minX, maxY-minY)
	}
}

func TestEntityCorners(t *testing.T) {
	e := Entity{X: 1, Y: 2, Width: 4, Height: 2}
	c := e.Corners()
	if c[0] != [2]float64{-1, 1} || c[2] != [2]float64{3, 3} {
		t.Errorf("Corners() = %v", c)
	}
}
