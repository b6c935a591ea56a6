package sim

import (
	"github.com/tomz197/roadrush/internal/object"
)

// enforceBounds ends the run at once when the player leaves the playfield.
// Leaving is a full loss, not a single point of damage.
func (s *Simulator) enforceBounds(player *object.Entity, sess *Session) {
	if !s.tuning.Bounds.Contains(player.X, player.Y) {
		sess.Health = 0
	}
}
