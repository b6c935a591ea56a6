package sim

import "time"

// Difficulty maps elapsed session time to obstacle speed.
type Difficulty struct {
	BaseSpeed float64
	Step      float64 // Added per whole elapsed second
}

// Speed returns the obstacle speed after elapsed time. It grows by Step once
// per whole second and has no upper bound.
func (d Difficulty) Speed(elapsed time.Duration) float64 {
	secs := int64(elapsed / time.Second)
	if secs <= 0 {
		return d.BaseSpeed
	}
	return d.BaseSpeed + d.Step*float64(secs)
}
