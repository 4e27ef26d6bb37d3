package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection on a
// bounded play field. Rects are inserted by index into every cell they
// cover; a query returns each candidate index once, in ascending index order
// per cell sweep.
//
// Objects outside the field are clamped into the border cells, so objects
// entering from above the field are still found.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell

	// Query deduplication: stamp[i] == query means index i was already reported.
	stamp []uint32
	query uint32
}

// gridCell stores the indices of objects that overlap a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering the given field dimensions.
// cellSize should be close to the size of the largest colliding object.
func NewSpatialGrid(fieldW, fieldH, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(fieldW / cellSize))
	rows := int(math.Ceil(fieldH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) to every cell the rect covers.
func (g *SpatialGrid) Insert(r Rect, index int) {
	c0, r0 := g.posToCell(r.Left(), r.Top())
	c1, r1 := g.posToCell(r.Right(), r.Bottom())
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			idx := row*g.cols + col
			g.cells[idx].items = append(g.cells[idx].items, index)
		}
	}
	if index >= len(g.stamp) {
		grown := make([]uint32, index+1)
		copy(grown, g.stamp)
		g.stamp = grown
	}
}

// QueryRect calls fn once for each item index sharing a cell with r.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryRect(r Rect, fn func(index int) bool) {
	g.query++
	if g.query == 0 {
		clear(g.stamp)
		g.query = 1
	}

	c0, r0 := g.posToCell(r.Left(), r.Top())
	c1, r1 := g.posToCell(r.Right(), r.Bottom())
	for row := r0; row <= r1; row++ {
		rowOffset := row * g.cols
		for col := c0; col <= c1; col++ {
			for _, itemIdx := range g.cells[rowOffset+col].items {
				if g.stamp[itemIdx] == g.query {
					continue
				}
				g.stamp[itemIdx] = g.query
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// posToCell converts field coordinates to grid cell coordinates.
// Clamps to valid range so off-field positions map to border cells.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(y * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
