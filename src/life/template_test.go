package life

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBuiltinTemplates(t *testing.T) {
	reg := BuiltinTemplates()
	for _, name := range []string{"blinker", "glider", "block", "r-pentomino"} {
		if _, err := reg.Get(name); err != nil {
			t.Errorf("builtin template %q missing: %v", name, err)
		}
	}
	if _, err := reg.Get("nonesuch"); !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("expected ErrUnknownTemplate, got %v", err)
	}
}

func TestBlockTemplateIsStill(t *testing.T) {
	reg := BuiltinTemplates()
	block, err := reg.Get("block")
	if err != nil {
		t.Fatal(err)
	}
	g := mustGrid(t, 6, 6)
	if err := block.Policy().Seed(g, nil); err != nil {
		t.Fatal(err)
	}
	e, err := NewEngine("base", g.Clone())
	if err != nil {
		t.Fatal(err)
	}
	e.Step()
	if !gridsEqual(g, e.Current()) {
		t.Error("block still life changed after a step")
	}
}

func TestLoadTemplates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	pack := `
- name: tub
  descr: period 1 still life
  coordinates: [[1, 0], [0, 1], [2, 1], [1, 2]]
- name: blinker
  descr: override of the builtin
  coordinates: [[0, 0], [1, 0], [2, 0]]
`
	if err := os.WriteFile(path, []byte(pack), 0o644); err != nil {
		t.Fatal(err)
	}

	reg := BuiltinTemplates()
	if err := reg.LoadTemplates(path); err != nil {
		t.Fatal(err)
	}

	tub, err := reg.Get("tub")
	if err != nil {
		t.Fatal(err)
	}
	if len(tub.Coordinates) != 4 {
		t.Errorf("tub has %v coordinates, want 4", len(tub.Coordinates))
	}

	blinker, err := reg.Get("blinker")
	if err != nil {
		t.Fatal(err)
	}
	if blinker.Descr != "override of the builtin" {
		t.Error("pack did not override the builtin blinker")
	}
}

func TestLoadTemplatesRejectsNameless(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.yaml")
	if err := os.WriteFile(path, []byte("- descr: no name\n  coordinates: [[0, 0]]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := BuiltinTemplates().LoadTemplates(path); err == nil {
		t.Error("expected an error for a template without a name")
	}
}

func TestLoadTemplatesMissingFile(t *testing.T) {
	if err := BuiltinTemplates().LoadTemplates(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing pack file")
	}
}
