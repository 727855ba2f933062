package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "change.png")
	history := []int{0, 12, 48, 30, 7, 0, 3}

	if err := WriteChart(path, history, true); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestWriteChartRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raw.png")
	if err := WriteChart(path, []int{5, 10, 2}, false); err != nil {
		t.Fatal(err)
	}
}

func TestWriteChartNeedsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.png")
	if err := WriteChart(path, []int{3}, true); err == nil {
		t.Error("expected an error for a one-entry history")
	}
}
