package life

/*
	Engine with two persistent buffers to avoid a per-step allocation.
	Each step computes into the spare buffer and swaps it in.
	The grid returned by Step becomes the spare again on the following
	step, so callers must finish reading it before stepping again.
*/
type bufferedEngine struct {
	grid  Grid
	spare Grid
}

func newBufferedEngine(g Grid) Engine {
	return &bufferedEngine{grid: g, spare: newGrid(g.Rows, g.Cols)}
}

func (e *bufferedEngine) Step() Grid {
	stepRows(e.grid, e.spare, 0, e.grid.Rows)
	prev := e.grid
	e.grid, e.spare = e.spare, prev
	return prev
}

func (e *bufferedEngine) Current() Grid {
	return e.grid
}

func (e *bufferedEngine) Reset(g Grid) {
	e.grid = g
	e.spare = newGrid(g.Rows, g.Cols)
}
