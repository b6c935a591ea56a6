package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection over a
// bounded region. Items outside the region are clamped into the edge cells.
//
// Cell size must be >= the largest entity extent so that every overlapping
// pair is found within the 3x3 neighborhood.
type SpatialGrid struct {
	originX     float64
	originY     float64
	invCellSize float64 // 1 / cellSize
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items whose center falls within the cell.
// The slice is reused between frames (reset to [:0]).
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering [minX, maxX] x [minY, maxY].
func NewSpatialGrid(minX, minY, maxX, maxY, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil((maxX - minX) / cellSize))
	rows := int(math.Ceil((maxY - minY) / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		originX:     minX,
		originY:     minY,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given world position.
func (g *SpatialGrid) Insert(x, y float64, index int) {
	col, row := g.posToCell(x, y)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item in the 3x3 cell neighborhood around
// the given position. If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(x, y float64, fn func(index int) bool) {
	col, row := g.posToCell(x, y)

	for r := max(row-1, 0); r <= min(row+1, g.rows-1); r++ {
		rowOffset := r * g.cols
		for c := max(col-1, 0); c <= min(col+1, g.cols-1); c++ {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts world coordinates to grid cell coordinates, clamped to the grid.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor((x - g.originX) * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor((y - g.originY) * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
