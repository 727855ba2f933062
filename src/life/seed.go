package life

import (
	"fmt"
	"math/rand"
)

//SeedPolicy populates a grid with an initial population
//implementations draw from rng so runs are reproducible with a fixed source
type SeedPolicy interface {
	Seed(g Grid, rng *rand.Rand) error
}

//UniformRandom makes each cell alive independently with probability P
type UniformRandom struct {
	P float64
}

func (u UniformRandom) Seed(g Grid, rng *rand.Rand) error {
	if u.P < 0 || u.P > 1 {
		return fmt.Errorf("%w: live probability %v outside [0,1]", ErrInvalidSeed, u.P)
	}
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = Cell(rng.Float64() < u.P)
		}
	}
	return nil
}

//Gaussian samples a normal value around 0.5 per cell and thresholds it at 0.5
//with Std near zero nearly all cells die, large Std approaches a coin flip
type Gaussian struct {
	Std float64
}

func (n Gaussian) Seed(g Grid, rng *rand.Rand) error {
	if n.Std <= 0 {
		return fmt.Errorf("%w: standard deviation %v must be positive", ErrInvalidSeed, n.Std)
	}
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = Cell(rng.NormFloat64()*n.Std+0.5 > 0.5)
		}
	}
	return nil
}

//SaltAndPepper draws three-way noise: alive with probability P, and the
//remaining mass split between pepper (dead) and salt (alive) by SaltRatio.
//A cell ends up dead only with probability SaltRatio*(1-P).
type SaltAndPepper struct {
	P         float64
	SaltRatio float64
}

func (s SaltAndPepper) Seed(g Grid, rng *rand.Rand) error {
	if s.P < 0 || s.P > 1 {
		return fmt.Errorf("%w: live probability %v outside [0,1]", ErrInvalidSeed, s.P)
	}
	if s.SaltRatio < 0 || s.SaltRatio > 1 {
		return fmt.Errorf("%w: salt ratio %v outside [0,1]", ErrInvalidSeed, s.SaltRatio)
	}
	deadP := s.SaltRatio * (1 - s.P)
	for y := range g.Cells {
		for x := range g.Cells[y] {
			g.Cells[y][x] = Cell(rng.Float64() >= deadP)
		}
	}
	return nil
}

//Pattern settles an explicit list of [x,y] coordinates
//coordinates outside the grid are skipped
type Pattern struct {
	Coordinates [][]int
}

func (p Pattern) Seed(g Grid, _ *rand.Rand) error {
	for _, c := range p.Coordinates {
		if len(c) != 2 {
			return fmt.Errorf("%w: coordinate %v is not an [x,y] pair", ErrInvalidSeed, c)
		}
		x, y := c[0], c[1]
		if x < 0 || y < 0 || x >= g.Cols || y >= g.Rows {
			continue
		}
		g.Cells[y][x] = true
	}
	return nil
}
