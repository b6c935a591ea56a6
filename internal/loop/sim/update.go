package sim

import (
	"math/rand"
	"time"

	"github.com/tomz197/roadrush/internal/audio"
	"github.com/tomz197/roadrush/internal/config"
	"github.com/tomz197/roadrush/internal/input"
	"github.com/tomz197/roadrush/internal/object"
)

// Input answers whether a steering direction is held this frame.
type Input interface {
	IsPressed(d input.Direction) bool
}

// Audio receives the sound commands issued during a frame.
type Audio interface {
	PlayCue(c audio.Cue, volume float64)
	StopMusic()
}

// Frame is everything Update may read or write for a single frame.
type Frame struct {
	Delta      time.Duration
	Now        time.Time
	Scene      *object.Scene
	Collisions *object.CollisionQueue // Drained by Update
	Input      Input
	Audio      Audio
}

// Simulator advances sessions according to a tuning.
type Simulator struct {
	tuning     config.Tuning
	difficulty Difficulty
	rng        *rand.Rand
}

// New creates a simulator. A nil rng is seeded from the clock.
func New(t config.Tuning, rng *rand.Rand) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulator{
		tuning: t,
		difficulty: Difficulty{
			BaseSpeed: t.Obstacles.BaseSpeed,
			Step:      t.Obstacles.SpeedStep,
		},
		rng: rng,
	}
}

// Tuning returns the tuning the simulator was built with.
func (s *Simulator) Tuning() config.Tuning {
	return s.tuning
}

// Difficulty returns the obstacle speed curve.
func (s *Simulator) Difficulty() Difficulty {
	return s.difficulty
}

// SpawnPoint draws a fresh obstacle position from the spawn bands.
func (s *Simulator) SpawnPoint() (x, y float64) {
	return s.spawnPoint()
}

// Update advances sess by one frame and reports whether the session was lost
// during this frame.
//
// Order: road and traffic scroll, the player steers, collisions are applied
// against current health, the bounds are checked on the new player position,
// and finally the loss condition is evaluated. Once lost, the scene is frozen
// and notifications are drained without effect.
func (s *Simulator) Update(f *Frame, sess *Session) bool {
	if sess.Lost {
		f.Collisions.Drain()
		return false
	}

	dt := f.Delta.Seconds()
	speed := s.difficulty.Speed(sess.Elapsed(f.Now))

	s.scrollRoad(f.Scene, dt)
	s.scrollObstacles(f.Scene, speed, dt)

	player := f.Scene.Player()
	s.steer(player, f.Input, dt)

	s.applyCollisions(f, sess, player.ID)
	s.enforceBounds(player, sess)

	return s.settle(f, sess)
}
