// Package physics detects contacts between collidable entities and reports
// their begin/end transitions.
package physics

// RectsOverlap checks if two axis-aligned boxes overlap. Touching edges do
// not count as overlap.
func RectsOverlap(aMinX, aMinY, aMaxX, aMaxY, bMinX, bMinY, bMaxX, bMaxY float64) bool {
	return aMinX < bMaxX && bMinX < aMaxX && aMinY < bMaxY && bMinY < aMaxY
}
