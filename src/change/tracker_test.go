package change

import (
	"errors"
	"testing"

	"lifetrace/src/life"
)

func grid(t testing.TB, rows, cols int, live ...[2]int) life.Grid {
	t.Helper()
	g, err := life.NewGrid(rows, cols)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range live {
		g.Cells[c[1]][c[0]] = true
	}
	return g
}

func TestFirstOrderIsXOR(t *testing.T) {
	a := grid(t, 3, 3, [2]int{0, 0}, [2]int{1, 1})
	b := grid(t, 3, 3, [2]int{1, 1}, [2]int{2, 2})

	d, err := FirstOrder(a, b)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := bool(a.Cells[y][x]) != bool(b.Cells[y][x])
			if d[y][x] != want {
				t.Errorf("diff1[%v][%v] = %v, want %v", y, x, d[y][x], want)
			}
		}
	}
}

func TestFirstOrderShapeMismatch(t *testing.T) {
	a := grid(t, 3, 3)
	b := grid(t, 3, 4)
	if _, err := FirstOrder(a, b); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
}

//TestFirstUpdateRecordsZero checks the documented first-call policy: no
//previous first-order diff exists, so a zero is recorded and history length
//always equals the number of updates
func TestFirstUpdateRecordsZero(t *testing.T) {
	tr := NewTracker()
	s, err := tr.Update(grid(t, 3, 3), grid(t, 3, 3, [2]int{1, 1}))
	if err != nil {
		t.Fatal(err)
	}
	if s != 0 {
		t.Errorf("first update returned %v, want 0", s)
	}
	if tr.Len() != 1 {
		t.Errorf("history length %v after one update, want 1", tr.Len())
	}
}

//TestScalarCountsChangedChangePattern walks three transitions with known
//first-order diffs and checks the second-order reduction
func TestScalarCountsChangedChangePattern(t *testing.T) {
	empty := grid(t, 3, 3)
	one := grid(t, 3, 3, [2]int{0, 0})
	other := grid(t, 3, 3, [2]int{1, 1})

	tr := NewTracker()
	//diff1 = {(0,0)}, first call
	if s, _ := tr.Update(empty, one); s != 0 {
		t.Fatalf("first scalar = %v, want 0", s)
	}
	//diff1 = {(0,0)} again, change pattern identical
	if s, _ := tr.Update(one, empty); s != 0 {
		t.Fatalf("second scalar = %v, want 0", s)
	}
	//diff1 = {(1,1)}, two cells differ from the previous diff
	if s, _ := tr.Update(empty, other); s != 2 {
		t.Fatalf("third scalar = %v, want 2", s)
	}
}

func TestStableGridYieldsZeros(t *testing.T) {
	g := grid(t, 4, 4, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})
	tr := NewTracker()
	for i := 0; i < 6; i++ {
		s, err := tr.Update(g, g)
		if err != nil {
			t.Fatal(err)
		}
		if s != 0 {
			t.Fatalf("update %v: scalar %v, want 0", i, s)
		}
	}
	if !tr.Converged(5) {
		t.Error("tracker not converged after six zero scalars")
	}
}

func TestUpdateShapeMismatch(t *testing.T) {
	tr := NewTracker()
	if _, err := tr.Update(grid(t, 3, 3), grid(t, 3, 3)); err != nil {
		t.Fatal(err)
	}
	_, err := tr.Update(grid(t, 4, 4), grid(t, 4, 4))
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("expected ErrShapeMismatch, got %v", err)
	}
	if tr.Len() != 1 {
		t.Errorf("failed update mutated history, length %v", tr.Len())
	}
}

func TestHistoryIsACopy(t *testing.T) {
	tr := NewTracker()
	if _, err := tr.Update(grid(t, 2, 2), grid(t, 2, 2)); err != nil {
		t.Fatal(err)
	}
	h := tr.History()
	h[0] = 99
	if tr.History()[0] != 0 {
		t.Error("mutating the returned history changed the tracker")
	}
}

func TestConvergedWindows(t *testing.T) {
	tr := NewTracker()
	if tr.Converged(1) {
		t.Error("empty tracker reported converged")
	}
	a := grid(t, 3, 3)
	b := grid(t, 3, 3, [2]int{0, 0})
	tr.Update(a, b) //0, first call
	tr.Update(b, grid(t, 3, 3, [2]int{0, 0}, [2]int{1, 1})) //diff1 {(1,1)} vs {(0,0)}: 2
	if tr.Converged(1) {
		t.Error("converged despite a nonzero last scalar")
	}
	if tr.Converged(0) {
		t.Error("window 0 must never report converged")
	}
}

//TestBlinkerConverges runs a real oscillator through an engine: the set of
//changing cells is identical step to step, so the signal is 0 throughout
func TestBlinkerConverges(t *testing.T) {
	g := grid(t, 5, 5, [2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	e, err := life.NewEngine("base", g)
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTracker()
	for i := 0; i < 8; i++ {
		prev := e.Step()
		s, err := tr.Update(prev, e.Current())
		if err != nil {
			t.Fatal(err)
		}
		if s != 0 {
			t.Fatalf("step %v: blinker scalar %v, want 0", i+1, s)
		}
	}
}
