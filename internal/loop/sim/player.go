package sim

import (
	"github.com/tomz197/roadrush/internal/input"
	"github.com/tomz197/roadrush/internal/object"
)

// steer moves the player from the four direction signals and tilts it with
// vertical movement. Opposite keys cancel. Diagonals are not normalized, so
// moving diagonally covers sqrt(2) times the distance.
func (s *Simulator) steer(player *object.Entity, in Input, dt float64) {
	var dx, dy float64
	if in.IsPressed(input.Up) {
		dy++
	}
	if in.IsPressed(input.Down) {
		dy--
	}
	if in.IsPressed(input.Right) {
		dx++
	}
	if in.IsPressed(input.Left) {
		dx--
	}

	speed := s.tuning.Player.Speed
	player.X += dx * speed * dt
	player.Y += dy * speed * dt
	player.Rotation = dy * s.tuning.Player.Tilt
}
