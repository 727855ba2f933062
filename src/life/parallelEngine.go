package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

const minRowsPerWorker = 3

/*
	Engine with multithreaded computation: the field is split into row
	bands, each computed by its own goroutine into a shared next buffer.
	Workers only read the current snapshot and write disjoint rows, so no
	locking is needed inside a step.
*/
type parallelEngine struct {
	grid    Grid
	workers int
}

func newParallelEngine(g Grid) Engine {
	workers := runtime.NumCPU()
	if workers > g.Rows/minRowsPerWorker {
		workers = g.Rows / minRowsPerWorker
	}
	if workers < 1 {
		workers = 1
	}
	return &parallelEngine{grid: g, workers: workers}
}

func (e *parallelEngine) Step() Grid {
	next := newGrid(e.grid.Rows, e.grid.Cols)
	band := (e.grid.Rows + e.workers - 1) / e.workers

	var eg errgroup.Group
	for y1 := 0; y1 < e.grid.Rows; y1 += band {
		y1, y2 := y1, y1+band
		if y2 > e.grid.Rows {
			y2 = e.grid.Rows
		}
		eg.Go(func() error {
			stepRows(e.grid, next, y1, y2)
			return nil
		})
	}
	//workers never fail, Wait is just the join point
	_ = eg.Wait()

	prev := e.grid
	e.grid = next
	return prev
}

func (e *parallelEngine) Current() Grid {
	return e.grid
}

func (e *parallelEngine) Reset(g Grid) {
	e.grid = g
}
