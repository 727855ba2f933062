package life

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//Template is a named seeding pattern which can be used to settle a grid
//with predefined data
type Template struct {
	Name        string  `yaml:"name"`
	Descr       string  `yaml:"descr"`
	Coordinates [][]int `yaml:"coordinates"` //array of [x,y] coordinates
}

//Policy adapts the template to a SeedPolicy
func (t Template) Policy() Pattern {
	return Pattern{Coordinates: t.Coordinates}
}

//Templates is a registry of seeding patterns keyed by name
type Templates map[string]Template

//BuiltinTemplates returns the patterns shipped with the engine
func BuiltinTemplates() Templates {
	reg := Templates{}
	for _, t := range []Template{
		{
			Name:        "blinker",
			Descr:       "three cells in a row, oscillates with period 2",
			Coordinates: [][]int{{1, 2}, {2, 2}, {3, 2}},
		},
		{
			Name:        "glider",
			Descr:       "travels diagonally by (1,1) every 4 generations",
			Coordinates: [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
		},
		{
			Name:        "block",
			Descr:       "2x2 still life",
			Coordinates: [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}},
		},
		{
			Name:  "r-pentomino",
			Descr: "small methuselah, stays chaotic for a long time",
			Coordinates: [][]int{
				{1, 0}, {2, 0},
				{0, 1}, {1, 1},
				{1, 2},
			},
		},
	} {
		reg[t.Name] = t
	}
	return reg
}

//Add registers the template, replacing any previous one with the same name
func (r Templates) Add(t Template) {
	r[t.Name] = t
}

//Get looks up a template by name
func (r Templates) Get(name string) (Template, error) {
	t, ok := r[name]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return t, nil
}

//LoadTemplates reads a YAML pattern pack and merges it into the registry.
//The file is a list of templates:
//
//  - name: glider-gun
//    descr: Gosper glider gun
//    coordinates: [[0, 4], [1, 4], ...]
func (r Templates) LoadTemplates(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read template pack: %w", err)
	}
	var loaded []Template
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse template pack %s: %w", path, err)
	}
	for _, t := range loaded {
		if t.Name == "" {
			return fmt.Errorf("template pack %s: template without a name", path)
		}
		r[t.Name] = t
	}
	return nil
}
