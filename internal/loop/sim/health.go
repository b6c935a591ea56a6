package sim

import (
	"fmt"

	"github.com/tomz197/roadrush/internal/audio"
	"github.com/tomz197/roadrush/internal/object"
)

// HealthText formats the health display.
func HealthText(health int) string {
	return fmt.Sprintf("Health: %d", health)
}

// applyCollisions drains the frame's notifications and takes one point of
// health for every contact the player starts, while any health is left.
// The display is refreshed and the impact cue played per point taken.
func (s *Simulator) applyCollisions(f *Frame, sess *Session, player object.ID) {
	display := f.Scene.MustLabel(object.LabelHealth)

	for _, c := range f.Collisions.Drain() {
		if !c.Involves(player) || c.Phase == object.PhaseEnd {
			continue
		}
		if sess.Health <= 0 {
			continue
		}
		sess.Health--
		display.Text = HealthText(sess.Health)
		f.Audio.PlayCue(audio.CueImpact, s.tuning.Audio.CueVolume)
	}
}
