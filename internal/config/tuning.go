package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxHealth is the largest initial health a tuning may set.
const MaxHealth = 5

// ErrInvalidTuning wraps every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds the gameplay constants. Distances are world units, speeds
// are units per second.
type Tuning struct {
	Player    Player    `yaml:"player"`
	Road      Road      `yaml:"road"`
	Obstacles Obstacles `yaml:"obstacles"`
	Bounds    Bounds    `yaml:"bounds"`
	Health    Health    `yaml:"health"`
	Audio     Audio     `yaml:"audio"`
}

// Player configures the player car.
type Player struct {
	Speed  float64 `yaml:"speed"`
	Tilt   float64 `yaml:"tilt"` // Rotation per unit of vertical direction, radians
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Layer  float64 `yaml:"layer"`
}

// Road configures the scrolling road markings.
type Road struct {
	Speed         float64 `yaml:"speed"`
	Segments      int     `yaml:"segments"`
	Spacing       float64 `yaml:"spacing"`
	StartX        float64 `yaml:"start_x"`
	WrapThreshold float64 `yaml:"wrap_threshold"`
	Wrap          float64 `yaml:"wrap_distance"` // Must be a whole number of spacings
}

// WrapDistance is how far a segment jumps when it scrolls past the wrap
// threshold. Validate keeps it on the spacing grid, so wrapped segments land
// on the same grid as the rest of the road. With the default tuning it is
// half the road length and wrapped segments overlay the right half.
func (r Road) WrapDistance() float64 {
	return r.Wrap
}

// Obstacles configures traffic speed and recycling.
type Obstacles struct {
	BaseSpeed        float64 `yaml:"base_speed"`
	SpeedStep        float64 `yaml:"speed_step"` // Added per whole elapsed second
	Count            int     `yaml:"count"`
	Layer            float64 `yaml:"layer"`
	RecycleThreshold float64 `yaml:"recycle_threshold"`
	SpawnMinX        float64 `yaml:"spawn_min_x"`
	SpawnMaxX        float64 `yaml:"spawn_max_x"`
	SpawnMinY        float64 `yaml:"spawn_min_y"`
	SpawnMaxY        float64 `yaml:"spawn_max_y"`
}

// Bounds is the area the player must stay in. X is closed on both ends,
// Y is open at the bottom and closed at the top.
type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MaxX float64 `yaml:"max_x"`
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// Contains reports whether (x, y) is inside the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y > b.MinY && y <= b.MaxY
}

// Health configures the life counter.
type Health struct {
	Initial int `yaml:"initial"`
}

// Audio configures playback volumes in [0, 1].
type Audio struct {
	MusicVolume float64 `yaml:"music_volume"`
	CueVolume   float64 `yaml:"cue_volume"`
}

// Default returns the stock tuning.
func Default() Tuning {
	return Tuning{
		Player: Player{
			Speed:  250,
			Tilt:   0.15,
			StartX: -500,
			StartY: 0,
			Layer:  10,
		},
		Road: Road{
			Speed:         400,
			Segments:      20,
			Spacing:       150,
			StartX:        -600,
			WrapThreshold: -675,
			Wrap:          1500,
		},
		Obstacles: Obstacles{
			BaseSpeed:        500,
			SpeedStep:        10,
			Count:            3,
			Layer:            5,
			RecycleThreshold: -800,
			SpawnMinX:        800,
			SpawnMaxX:        1600,
			SpawnMinY:        -300,
			SpawnMaxY:        300,
		},
		Bounds: Bounds{
			MinX: -600,
			MaxX: 1500,
			MinY: -360,
			MaxY: 360,
		},
		Health: Health{
			Initial: 5,
		},
		Audio: Audio{
			MusicVolume: 0.2,
			CueVolume:   0.5,
		},
	}
}

// Load reads a YAML tuning file and overlays it on Default.
// An empty path returns Default.
func Load(path string) (Tuning, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Tuning, error) {
	t := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("decode: %w", err)
	}

	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks the tuning for values the simulation cannot work with.
func (t Tuning) Validate() error {
	switch {
	case t.Player.Speed <= 0:
		return invalid("player.speed must be positive, got %v", t.Player.Speed)
	case t.Road.Speed <= 0:
		return invalid("road.speed must be positive, got %v", t.Road.Speed)
	case t.Road.Segments <= 0:
		return invalid("road.segments must be positive, got %d", t.Road.Segments)
	case t.Road.Spacing <= 0:
		return invalid("road.spacing must be positive, got %v", t.Road.Spacing)
	case t.Road.Wrap <= 0 || !onGrid(t.Road.Wrap, t.Road.Spacing):
		return invalid("road.wrap_distance %v must be a positive multiple of road.spacing %v", t.Road.Wrap, t.Road.Spacing)
	case t.Road.WrapThreshold >= t.Road.StartX:
		return invalid("road.wrap_threshold %v must be left of road.start_x %v", t.Road.WrapThreshold, t.Road.StartX)
	case t.Obstacles.BaseSpeed <= 0:
		return invalid("obstacles.base_speed must be positive, got %v", t.Obstacles.BaseSpeed)
	case t.Obstacles.SpeedStep < 0:
		return invalid("obstacles.speed_step must not be negative, got %v", t.Obstacles.SpeedStep)
	case t.Obstacles.Count < 0:
		return invalid("obstacles.count must not be negative, got %d", t.Obstacles.Count)
	case t.Obstacles.RecycleThreshold >= t.Road.WrapThreshold:
		return invalid("obstacles.recycle_threshold %v must be left of road.wrap_threshold %v",
			t.Obstacles.RecycleThreshold, t.Road.WrapThreshold)
	case t.Obstacles.SpawnMinX >= t.Obstacles.SpawnMaxX:
		return invalid("obstacles spawn x band [%v, %v) is empty", t.Obstacles.SpawnMinX, t.Obstacles.SpawnMaxX)
	case t.Obstacles.SpawnMinY >= t.Obstacles.SpawnMaxY:
		return invalid("obstacles spawn y band [%v, %v) is empty", t.Obstacles.SpawnMinY, t.Obstacles.SpawnMaxY)
	case t.Bounds.MinX >= t.Bounds.MaxX || t.Bounds.MinY >= t.Bounds.MaxY:
		return invalid("bounds are inverted: %+v", t.Bounds)
	case t.Health.Initial < 1 || t.Health.Initial > MaxHealth:
		return invalid("health.initial must be in 1..%d, got %d", MaxHealth, t.Health.Initial)
	case t.Audio.MusicVolume < 0 || t.Audio.MusicVolume > 1:
		return invalid("audio.music_volume must be in [0, 1], got %v", t.Audio.MusicVolume)
	case t.Audio.CueVolume < 0 || t.Audio.CueVolume > 1:
		return invalid("audio.cue_volume must be in [0, 1], got %v", t.Audio.CueVolume)
	}
	return nil
}

func onGrid(v, step float64) bool {
	n := math.Round(v / step)
	return n >= 1 && math.Abs(v-n*step) < 1e-9*math.Max(1, math.Abs(v))
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTuning, fmt.Sprintf(format, args...))
}
