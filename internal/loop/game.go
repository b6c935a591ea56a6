package loop

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/roadrush/internal/audio"
	"github.com/tomz197/roadrush/internal/config"
	"github.com/tomz197/roadrush/internal/loop/sim"
	"github.com/tomz197/roadrush/internal/object"
	"github.com/tomz197/roadrush/internal/physics"
)

// Game owns one session and everything the frame core needs around it:
// the scene, the contact tracker feeding the collision queue and the audio
// sink.
type Game struct {
	sim      *sim.Simulator
	sess     *sim.Session
	scene    *object.Scene
	queue    *object.CollisionQueue
	contacts *physics.ContactTracker
	audio    audio.Player

	minExtent float64 // Smallest side of any collidable entity
}

// NewGame builds the opening scene and starts the music. A nil rng is
// seeded from the clock, a nil player is silent.
func NewGame(t config.Tuning, player audio.Player, rng *rand.Rand, now time.Time) *Game {
	if player == nil {
		player = audio.Silent{}
	}
	g := &Game{
		sim:      sim.New(t, rng),
		sess:     sim.NewSession(t.Health.Initial, now),
		scene:    object.NewScene(),
		queue:    &object.CollisionQueue{},
		contacts: physics.NewContactTracker(contactMinX, contactMinY, contactMaxX, contactMaxY, contactCellSize),
		audio:    player,
	}
	g.setup()
	g.audio.PlayMusic(t.Audio.MusicVolume)
	return g
}

// setup populates the scene: the player, the road markings, one obstacle of
// each kind and the health display.
func (g *Game) setup() {
	t := g.sim.Tuning()

	g.scene.Add(object.Entity{
		Role:      object.RolePlayer,
		Sprite:    object.SpriteCarBlue,
		X:         t.Player.StartX,
		Y:         t.Player.StartY,
		Layer:     t.Player.Layer,
		Collision: true,
		Width:     carWidth,
		Height:    carHeight,
	})

	for i := 0; i < t.Road.Segments; i++ {
		g.scene.Add(object.Entity{
			Role:   object.RoleRoad,
			Sprite: object.SpriteBarrier,
			X:      t.Road.StartX + t.Road.Spacing*float64(i),
			Width:  barrierWidth,
			Height: barrierHeight,
		})
	}

	kinds := []object.Sprite{object.SpriteCarBlue, object.SpriteCarRed, object.SpriteCone}
	for i := 0; i < t.Obstacles.Count; i++ {
		kind := kinds[i%len(kinds)]
		w, h := float64(carWidth), float64(carHeight)
		if kind == object.SpriteCone {
			w, h = coneSize, coneSize
		}
		x, y := g.sim.SpawnPoint()
		g.scene.Add(object.Entity{
			Role:      object.RoleObstacle,
			Sprite:    kind,
			X:         x,
			Y:         y,
			Layer:     t.Obstacles.Layer,
			Collision: true,
			Width:     w,
			Height:    h,
		})
	}

	g.minExtent = math.Inf(1)
	for _, e := range g.scene.Entities() {
		if e.Collision {
			g.minExtent = math.Min(g.minExtent, math.Min(e.Width, e.Height))
		}
	}

	g.scene.SetLabel(object.LabelHealth, object.Label{
		Text: sim.HealthText(t.Health.Initial),
		X:    healthLabelX,
		Y:    healthLabelY,
	})
}

// Step advances the session by delta, ending at now. It reports whether the
// session was lost during this frame.
//
// Contacts are sampled once per sub-step, and delta is split so that
// traffic closing on the player moves at most the smallest collidable side
// between two samples.
func (g *Game) Step(in sim.Input, now time.Time, delta time.Duration) bool {
	n := g.subSteps(now, delta)
	sub := delta / time.Duration(n)
	start := now.Add(-delta)

	var done time.Duration
	for i := 0; i < n; i++ {
		d := sub
		if i == n-1 {
			d = delta - done
		}
		done += d

		g.contacts.Detect(g.scene, g.queue)
		lost := g.sim.Update(&sim.Frame{
			Delta:      d,
			Now:        start.Add(done),
			Scene:      g.scene,
			Collisions: g.queue,
			Input:      in,
			Audio:      g.audio,
		}, g.sess)
		if lost {
			return true
		}
	}
	return false
}

// subSteps returns how many contact samples delta needs at the obstacle
// speed reached by now.
func (g *Game) subSteps(now time.Time, delta time.Duration) int {
	if delta <= 0 || math.IsInf(g.minExtent, 1) || g.minExtent <= 0 {
		return 1
	}
	closing := g.Speed(now) + g.sim.Tuning().Player.Speed*math.Sqrt2
	travel := closing * delta.Seconds()
	return max(int(math.Ceil(travel/g.minExtent)), 1)
}

// Session returns the session being played.
func (g *Game) Session() *sim.Session { return g.sess }

// Scene returns the scene being played.
func (g *Game) Scene() *object.Scene { return g.scene }

// Speed returns the current obstacle speed.
func (g *Game) Speed(now time.Time) float64 {
	return g.sim.Difficulty().Speed(g.sess.Elapsed(now))
}

// Close stops the music.
func (g *Game) Close() {
	g.audio.StopMusic()
}
