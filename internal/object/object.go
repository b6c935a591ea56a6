// Package object defines the entities, labels and collision notifications
// shared between the frame core and the engine surfaces around it.
package object

import "math"

// ID is a stable handle to an entity in a Scene. Handles are assigned in
// insertion order and never reused.
type ID int

// Role tags what an entity is for the simulation.
type Role int

const (
	RolePlayer   Role = iota // Player-controlled car
	RoleRoad                 // Scrolling road marking, wraps around
	RoleObstacle             // Collidable traffic, recycled when off-screen
)

// String returns the role name used in logs.
func (r Role) String() string {
	switch r {
	case RolePlayer:
		return "player"
	case RoleRoad:
		return "road"
	case RoleObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Sprite selects the shape the renderer draws for an entity.
type Sprite int

const (
	SpriteCarBlue Sprite = iota
	SpriteCarRed
	SpriteCone
	SpriteBarrier
)

// Entity is a positioned thing in the world.
// World coordinates are centered on the screen with y pointing up.
// The frame core only ever writes X, Y and Rotation.
type Entity struct {
	ID        ID
	Role      Role
	Sprite    Sprite
	X, Y      float64 // Center position
	Rotation  float64 // Radians, counter-clockwise
	Layer     float64 // Draw order, higher is on top
	Collision bool    // Participates in contact detection
	Width     float64 // Extent along x before rotation
	Height    float64 // Extent along y before rotation
}

// Bounds returns the axis-aligned box enclosing the rotated entity.
func (e *Entity) Bounds() (minX, minY, maxX, maxY float64) {
	cos := math.Abs(math.Cos(e.Rotation))
	sin := math.Abs(math.Sin(e.Rotation))
	hw := (e.Width*cos + e.Height*sin) / 2
	hh := (e.Width*sin + e.Height*cos) / 2
	return e.X - hw, e.Y - hh, e.X + hw, e.Y + hh
}

// Corners returns the four corners of the rotated entity, counter-clockwise
// starting at the rear-bottom corner.
func (e *Entity) Corners() [4][2]float64 {
	cos := math.Cos(e.Rotation)
	sin := math.Sin(e.Rotation)
	hw, hh := e.Width/2, e.Height/2

	local := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var out [4][2]float64
	for i, p := range local {
		out[i] = [2]float64{
			e.X + p[0]*cos - p[1]*sin,
			e.Y + p[0]*sin + p[1]*cos,
		}
	}
	return out
}
