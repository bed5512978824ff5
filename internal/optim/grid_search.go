// Package optim searches scenario parameters by running every point of a
// grid headlessly and scoring the results.
package optim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/physlab/internal/experiment"
)

var ErrEmptyGrid = errors.New("optim: empty grid")

type GridSearch struct {
	paramNames []string
	ranges     [][]float64

	// Workers bounds concurrent runs. Zero means GOMAXPROCS.
	Workers int
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Candidate is one evaluated grid point. Lower scores are better.
type Candidate struct {
	Params map[string]float64
	Score  float64
	Result *experiment.Result
}

// Points expands the grid in order, last parameter varying fastest.
func (g *GridSearch) Points() []map[string]float64 {
	if len(g.paramNames) == 0 {
		return nil
	}
	var out []map[string]float64
	g.expand(0, make(map[string]float64), &out)
	return out
}

func (g *GridSearch) expand(depth int, current map[string]float64, out *[]map[string]float64) {
	if depth == len(g.paramNames) {
		*out = append(*out, current)
		return
	}

	name := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[name] = val
		g.expand(depth+1, next, out)
	}
}

// Search runs build for every grid point and returns the lowest scoring
// candidate. Ties go to the earlier point.
func (g *GridSearch) Search(
	ctx context.Context,
	build func(params map[string]float64) (experiment.Config, error),
	score func(*experiment.Result) float64,
) (*Candidate, error) {
	points := g.Points()
	if len(points) == 0 {
		return nil, ErrEmptyGrid
	}

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	candidates := make([]Candidate, len(points))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, p := range points {
		eg.Go(func() error {
			cfg, err := build(p)
			if err != nil {
				return fmt.Errorf("grid point %v: %w", p, err)
			}
			exp := experiment.New(cfg)
			if err := exp.Setup(experiment.NewRegistry()); err != nil {
				return err
			}
			res, err := exp.Run(ctx)
			if err != nil {
				return err
			}
			candidates[i] = Candidate{Params: p, Score: score(res), Result: res}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	best := 0
	for i := range candidates {
		if candidates[i].Score < candidates[best].Score {
			best = i
		}
	}
	return &candidates[best], nil
}

// Range returns min, min+step, ... up to max inclusive.
func Range(min, max, step float64) []float64 {
	if step <= 0 || max < min {
		return nil
	}
	n := int(math.Floor((max-min)/step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Round((min+float64(i)*step)*1e9) / 1e9
	}
	return out
}
