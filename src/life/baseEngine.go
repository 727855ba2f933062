package life

/*
	The simplest engine: allocates a fresh buffer on every step.
	The whole next generation is computed into the new buffer from the
	current snapshot, then the buffers are swapped.
*/
type baseEngine struct {
	grid Grid
}

func newBaseEngine(g Grid) Engine {
	return &baseEngine{grid: g}
}

func (e *baseEngine) Step() Grid {
	next := newGrid(e.grid.Rows, e.grid.Cols)
	stepRows(e.grid, next, 0, e.grid.Rows)
	prev := e.grid
	e.grid = next
	return prev
}

func (e *baseEngine) Current() Grid {
	return e.grid
}

func (e *baseEngine) Reset(g Grid) {
	e.grid = g
}
