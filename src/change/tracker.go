//Package change derives a complexity signal from consecutive generations:
//the first-order difference matrix is the cell-wise XOR of two grids, the
//second-order matrix is the XOR of consecutive first-order matrices, and the
//signal is the count of set cells in the second-order matrix per step.
package change

import (
	"errors"
	"fmt"

	"lifetrace/src/life"
)

var ErrShapeMismatch = errors.New("grid shape mismatch")

//Tracker accumulates the second-order change scalar over a run.
//It keeps only the last first-order matrix and the scalar history, it never
//touches the engine's grids.
type Tracker struct {
	rows, cols int
	prev       [][]bool //last first-order diff, nil before the first update
	history    []int
}

func NewTracker() *Tracker {
	return &Tracker{}
}

//FirstOrder computes the cell-wise XOR of two grids of equal shape
func FirstOrder(prev life.Grid, next life.Grid) ([][]bool, error) {
	if !prev.SameShape(next) {
		return nil, fmt.Errorf("%w: %vx%v vs %vx%v",
			ErrShapeMismatch, prev.Rows, prev.Cols, next.Rows, next.Cols)
	}
	d := make([][]bool, prev.Rows)
	b := make([]bool, prev.Rows*prev.Cols)
	for y := range d {
		d[y] = b[y*prev.Cols : (y+1)*prev.Cols]
		for x := 0; x < prev.Cols; x++ {
			d[y][x] = prev.Cells[y][x] != next.Cells[y][x]
		}
	}
	return d, nil
}

//Update consumes one engine step and returns the second-order change scalar.
//The tracker's shape is established by the first call, later calls with
//different dimensions fail with ErrShapeMismatch and mutate nothing.
//
//On the very first call no previous first-order matrix exists, so no
//second-order value is defined: the tracker records 0. The history length
//therefore always equals the number of completed updates.
func (t *Tracker) Update(prev life.Grid, next life.Grid) (int, error) {
	d, err := FirstOrder(prev, next)
	if err != nil {
		return 0, err
	}
	if t.prev == nil {
		t.rows, t.cols = prev.Rows, prev.Cols
	} else if prev.Rows != t.rows || prev.Cols != t.cols {
		return 0, fmt.Errorf("%w: tracker expects %vx%v, got %vx%v",
			ErrShapeMismatch, t.rows, t.cols, prev.Rows, prev.Cols)
	}

	scalar := 0
	if t.prev != nil {
		for y := range d {
			for x := range d[y] {
				if d[y][x] != t.prev[y][x] {
					scalar++
				}
			}
		}
	}
	t.prev = d
	t.history = append(t.history, scalar)
	return scalar, nil
}

//History returns a copy of the scalar series in insertion order
func (t *Tracker) History() []int {
	h := make([]int, len(t.history))
	copy(h, t.history)
	return h
}

//Len reports the number of recorded updates
func (t *Tracker) Len() int {
	return len(t.history)
}

//Converged reports whether the last window scalars are all zero, which
//characterizes a static grid or a simple period-1 oscillation of the
//change pattern. Always false until window updates have been recorded,
//and for window < 1.
func (t *Tracker) Converged(window int) bool {
	if window < 1 || len(t.history) < window {
		return false
	}
	for _, s := range t.history[len(t.history)-window:] {
		if s != 0 {
			return false
		}
	}
	return true
}
