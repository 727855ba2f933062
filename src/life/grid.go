package life

import "fmt"

type Cell bool

//Grid is the binary cell field the engine evolves.
//Rows and Cols are fixed at construction, the Cells buffer is replaced
//wholesale on each generation so the previous grid stays addressable.
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

//NewGrid allocates a rows x cols grid of dead cells
func NewGrid(rows int, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: %v x %v", ErrInvalidDimensions, rows, cols)
	}
	return newGrid(rows, cols), nil
}

//newGrid allocates without validation, for internal callers with known-good dims
//one backing buffer sliced into rows keeps the grid cache friendly
func newGrid(rows int, cols int) Grid {
	g := Grid{Rows: rows, Cols: cols, Cells: make([][]Cell, rows)}
	b := make([]Cell, rows*cols)
	for i := range g.Cells {
		start := cols * i
		g.Cells[i] = b[start : start+cols : start+cols]
	}
	return g
}

//Clone returns a deep copy that shares no cells with the receiver
func (g Grid) Clone() Grid {
	c := newGrid(g.Rows, g.Cols)
	for y := range g.Cells {
		copy(c.Cells[y], g.Cells[y])
	}
	return c
}

//LiveCells counts the alive cells
func (g Grid) LiveCells() int {
	n := 0
	for y := range g.Cells {
		for x := range g.Cells[y] {
			if g.Cells[y][x] {
				n++
			}
		}
	}
	return n
}

//Clear kills every cell in place
func (g Grid) Clear() {
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = false
		}
	}
}

//SameShape reports whether o has the same dimensions
func (g Grid) SameShape(o Grid) bool {
	return g.Rows == o.Rows && g.Cols == o.Cols
}
