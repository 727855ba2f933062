package life

import (
	"fmt"
	"sort"
)

//Engine advances a grid one generation at a time.
//Step returns the grid it replaced so the caller can run change computations
//against the previous generation before it is discarded.
//Implementations differ only in buffering strategy, never in rule semantics.
type Engine interface {
	Step() Grid
	Current() Grid
	Reset(g Grid)
}

var engines = map[string]func(g Grid) Engine{
	"base":     newBaseEngine,
	"buffered": newBufferedEngine,
	"parallel": newParallelEngine,
}

//NewEngine builds the named engine variant around an initial grid
func NewEngine(name string, g Grid) (Engine, error) {
	f, ok := engines[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return f(g), nil
}

//EngineNames lists the available engine variants in stable order
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//liveNeighbors counts the Moore neighborhood of (x, y) with toroidal wrap:
//the last row/column is adjacent to the first on both axes
func liveNeighbors(g Grid, x int, y int) int {
	n := 0
	for dy := -1; dy < 2; dy++ {
		for dx := -1; dx < 2; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + g.Cols) % g.Cols
			ny := (y + dy + g.Rows) % g.Rows
			if g.Cells[ny][nx] {
				n++
			}
		}
	}
	return n
}

//nextState applies the birth/survival rule to one cell
func nextState(alive Cell, neighbors int) Cell {
	return Cell(neighbors == 3 || (neighbors == 2 && bool(alive)))
}

//stepRows computes the next generation of src rows [y1, y2) into dst
//dst must not alias src, every count is taken from the src snapshot
func stepRows(src Grid, dst Grid, y1 int, y2 int) {
	for y := y1; y < y2; y++ {
		for x := 0; x < src.Cols; x++ {
			dst.Cells[y][x] = nextState(src.Cells[y][x], liveNeighbors(src, x, y))
		}
	}
}
