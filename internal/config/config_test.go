package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	d := Default()
	if err := d.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got := d.Road.WrapDistance(); got != 1500 {
		t.Errorf("WrapDistance() = %v, want 1500", got)
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	doc := `
player:
  speed: 300
obstacles:
  base_speed: 420
  speed_step: 5
health:
  initial: 3
`
	tun, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if tun.Player.Speed != 300 {
		t.Errorf("Player.Speed = %v, want 300", tun.Player.Speed)
	}
	if tun.Player.Tilt != 0.15 {
		t.Errorf("Player.Tilt = %v, want default 0.15", tun.Player.Tilt)
	}
	if tun.Obstacles.BaseSpeed != 420 || tun.Obstacles.SpeedStep != 5 {
		t.Errorf("Obstacles = %+v", tun.Obstacles)
	}
	if tun.Obstacles.SpawnMaxX != 1600 {
		t.Errorf("SpawnMaxX = %v, want default 1600", tun.Obstacles.SpawnMaxX)
	}
	if tun.Health.Initial != 3 {
		t.Errorf("Health.Initial = %d, want 3", tun.Health.Initial)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	tun, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if tun != Default() {
		t.Errorf("Parse(nil) = %+v, want defaults", tun)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("player:\n  warp_drive: true\n"))
	if err == nil {
		t.Fatal("Parse() accepted unknown key")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		want   string
	}{
		{"zero player speed", func(t *Tuning) { t.Player.Speed = 0 }, "player.speed"},
		{"no road segments", func(t *Tuning) { t.Road.Segments = 0 }, "road.segments"},
		{"negative spacing", func(t *Tuning) { t.Road.Spacing = -1 }, "road.spacing"},
		{"wrap off grid", func(t *Tuning) { t.Road.Wrap = 1000 }, "road.wrap_distance"},
		{"no wrap", func(t *Tuning) { t.Road.Wrap = 0 }, "road.wrap_distance"},
		{"wrap right of start", func(t *Tuning) { t.Road.WrapThreshold = -500 }, "road.wrap_threshold"},
		{"recycle right of wrap", func(t *Tuning) { t.Obstacles.RecycleThreshold = -600 }, "recycle_threshold"},
		{"empty x band", func(t *Tuning) { t.Obstacles.SpawnMaxX = 800 }, "spawn x band"},
		{"empty y band", func(t *Tuning) { t.Obstacles.SpawnMinY = 300 }, "spawn y band"},
		{"inverted bounds", func(t *Tuning) { t.Bounds.MinX = 2000 }, "bounds"},
		{"zero health", func(t *Tuning) { t.Health.Initial = 0 }, "health.initial"},
		{"health above five", func(t *Tuning) { t.Health.Initial = 6 }, "health.initial"},
		{"loud music", func(t *Tuning) { t.Audio.MusicVolume = 1.5 }, "music_volume"},
		{"negative step", func(t *Tuning) { t.Obstacles.SpeedStep = -1 }, "speed_step"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := Default()
			tt.mutate(&tun)
			err := tun.Validate()
			if !errors.Is(err, ErrInvalidTuning) {
				t.Fatalf("Validate() = %v, want ErrInvalidTuning", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	tun, err := Load("")
	if err != nil || tun != Default() {
		t.Fatalf("Load(\"\") = %+v, %v", tun, err)
	}

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("road:\n  speed: 800\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	tun, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if tun.Road.Speed != 800 {
		t.Errorf("Road.Speed = %v, want 800", tun.Road.Speed)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of missing file succeeded")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("health:\n  initial: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidTuning) {
		t.Errorf("Load() of invalid file = %v, want ErrInvalidTuning", err)
	}
}

func TestBoundsContains(t *testing.T) {
	b := Default().Bounds
	tests := []struct {
		x, y float64
		want bool
	}{
		{0, 0, true},
		{-600, 0, true},
		{1500, 0, true},
		{1600, 0, false},
		{-601, 0, false},
		{0, 360, true},
		{0, 360.5, false},
		{0, -360, false},
		{0, -359.9, true},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ROADRUSH_TEST_VALUE", "set")
	if got := GetEnv("ROADRUSH_TEST_VALUE", "fallback"); got != "set" {
		t.Errorf("GetEnv() = %q, want set", got)
	}
	if got := GetEnv("ROADRUSH_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, want fallback", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"off", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"on", true},
		{"1", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Setenv("ROADRUSH_TEST_BOOL", tt.value)
		if got := GetEnvBool("ROADRUSH_TEST_BOOL", !tt.want); got != tt.want {
			t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
	if !GetEnvBool("ROADRUSH_TEST_BOOL_MISSING", true) {
		t.Error("GetEnvBool() ignored fallback")
	}
}

func TestHealthRange(t *testing.T) {
	for h := 1; h <= MaxHealth; h++ {
		tun := Default()
		tun.Health.Initial = h
		if err := tun.Validate(); err != nil {
			t.Errorf("health %d rejected: %v", h, err)
		}
	}
	if _, err := Parse([]byte("health:\n  initial: 255\n")); !errors.Is(err, ErrInvalidTuning) {
		t.Errorf("Parse() with health 255 = %v, want ErrInvalidTuning", err)
	}
}
