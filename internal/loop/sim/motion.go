package sim

import (
	"github.com/tomz197/roadrush/internal/object"
)

// scrollRoad moves every road marking left and wraps the ones that passed
// the threshold to the far right, keeping their spacing.
func (s *Simulator) scrollRoad(scene *object.Scene, dt float64) {
	road := s.tuning.Road
	wrap := road.WrapDistance()

	scene.Each(object.RoleRoad, func(e *object.Entity) {
		e.X -= road.Speed * dt
		if e.X < road.WrapThreshold {
			e.X += wrap
		}
	})
}

// scrollObstacles moves traffic left at speed and gives every obstacle that
// left the screen a fresh position ahead of the player. Only the position
// changes on recycle.
func (s *Simulator) scrollObstacles(scene *object.Scene, speed, dt float64) {
	obs := s.tuning.Obstacles

	scene.Each(object.RoleObstacle, func(e *object.Entity) {
		e.X -= speed * dt
		if e.X < obs.RecycleThreshold {
			e.X, e.Y = s.spawnPoint()
		}
	})
}

// spawnPoint draws a position uniformly from the obstacle spawn bands.
func (s *Simulator) spawnPoint() (x, y float64) {
	obs := s.tuning.Obstacles
	x = obs.SpawnMinX + s.rng.Float64()*(obs.SpawnMaxX-obs.SpawnMinX)
	y = obs.SpawnMinY + s.rng.Float64()*(obs.SpawnMaxY-obs.SpawnMinY)
	return x, y
}
