package loop

import (
	"time"

	"github.com/tomz197/roadrush/internal/draw"
)

// Frame timing.
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
	maxFrameDelta   = 100 * time.Millisecond // Clamp after stalls so nothing tunnels
)

// view is the world rectangle mapped onto the terminal.
var view = draw.Viewport{MinX: -640, MinY: -360, MaxX: 640, MaxY: 360}

// Contact detection covers the screen plus the off-screen spawn and recycle
// lanes.
const (
	contactMinX     = -1000
	contactMinY     = -500
	contactMaxX     = 1800
	contactMaxY     = 500
	contactCellSize = 200
)

// Sprite footprints in world units.
const (
	carWidth      = 100
	carHeight     = 50
	coneSize      = 40
	barrierWidth  = 30
	barrierHeight = 6
)

// Label placement.
const (
	healthLabelX = 550
	healthLabelY = 320
)
