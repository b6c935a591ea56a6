package sim

import (
	"github.com/tomz197/roadrush/internal/audio"
	"github.com/tomz197/roadrush/internal/object"
)

// GameOverText is shown when the session is lost.
const GameOverText = "Game Over!"

// GameOverFontSize is the size requested for the game over label.
const GameOverFontSize = 128

// settle moves a session with no health left into the lost phase. The
// presentation (overlay, music stop, jingle) runs only on that transition.
func (s *Simulator) settle(f *Frame, sess *Session) bool {
	if sess.Lost || sess.Health > 0 {
		return false
	}
	sess.Lost = true

	f.Scene.MustLabel(object.LabelHealth).Text = HealthText(sess.Health)
	f.Scene.SetLabel(object.LabelGameOver, object.Label{
		Text:     GameOverText,
		FontSize: GameOverFontSize,
	})
	f.Audio.StopMusic()
	f.Audio.PlayCue(audio.CueGameOver, s.tuning.Audio.CueVolume)
	return true
}
