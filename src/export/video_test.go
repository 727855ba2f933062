package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lifetrace/src/life"
)

func TestVideoRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.avi")
	v, err := NewVideo(path, 5, 5, 4, 10)
	if err != nil {
		t.Fatal(err)
	}

	g, err := life.NewGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	e, err := life.NewEngine("base", g)
	if err != nil {
		t.Fatal(err)
	}
	if err := (life.Pattern{Coordinates: [][]int{{1, 2}, {2, 2}, {3, 2}}}).Seed(g, nil); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if err := v.AddFrame(e.Current()); err != nil {
			t.Fatal(err)
		}
		e.Step()
	}
	if err := v.Close(); err != nil {
		t.Fatal(err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("video file is empty")
	}
}

func TestVideoRejectsWrongShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.avi")
	v, err := NewVideo(path, 5, 5, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer v.Close()

	g, err := life.NewGrid(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := v.AddFrame(g); err == nil {
		t.Error("expected an error for a mismatched frame")
	}
}

func TestVideoRejectsBadDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.avi")
	if _, err := NewVideo(path, 0, 5, 2, 10); !errors.Is(err, life.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}
