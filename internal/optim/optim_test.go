package optim

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/physlab/internal/experiment"
)

func TestPointsOrder(t *testing.T) {
	g := NewGridSearch([]string{"a", "b"}, [][]float64{{1, 2}, {10, 20, 30}})
	pts := g.Points()
	require.Len(t, pts, 6)
	assert.Equal(t, map[string]float64{"a": 1, "b": 10}, pts[0])
	assert.Equal(t, map[string]float64{"a": 1, "b": 30}, pts[2])
	assert.Equal(t, map[string]float64{"a": 2, "b": 10}, pts[3])
}

func TestRange(t *testing.T) {
	assert.Equal(t, []float64{0.1, 0.15, 0.2}, Range(0.1, 0.2, 0.05))
	assert.Len(t, Range(0, 45, 1), 46)
	assert.Nil(t, Range(1, 0, 1))
	assert.Nil(t, Range(0, 1, 0))
}

func TestSearchEmptyGrid(t *testing.T) {
	_, err := NewGridSearch(nil, nil).Search(context.Background(), nil, nil)
	assert.True(t, errors.Is(err, ErrEmptyGrid))
}

func inclineGrid(angles, frictions []float64) *GridSearch {
	g := NewGridSearch([]string{"angle", "friction"}, [][]float64{angles, frictions})
	g.Workers = 2
	return g
}

func TestFitIncline(t *testing.T) {
	best, err := FitIncline(context.Background(), inclineGrid([]float64{20, 30, 40}, []float64{0.1, 0.5}), 142, 300)
	require.NoError(t, err)
	assert.Equal(t, 30.0, best.Params["angle"])
	assert.Equal(t, 0.1, best.Params["friction"])
	assert.Equal(t, 0.0, best.Score)
	assert.Equal(t, 142.0, best.Result.Metrics["halt_tick"])
}

func TestFitInclineNeverMoves(t *testing.T) {
	best, err := FitIncline(context.Background(), inclineGrid([]float64{0}, []float64{0.5, 1.0}), 100, 120)
	require.NoError(t, err)
	assert.True(t, math.IsInf(best.Score, 1))
	assert.Equal(t, 0.5, best.Params["friction"])
}

func TestSearchBuildError(t *testing.T) {
	g := NewGridSearch([]string{"x"}, [][]float64{{1, 2}})
	boom := errors.New("boom")
	_, err := g.Search(context.Background(),
		func(map[string]float64) (experiment.Config, error) { return experiment.Config{}, boom },
		func(*experiment.Result) float64 { return 0 })
	assert.True(t, errors.Is(err, boom))
}

func TestSearchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g := NewGridSearch([]string{"angle"}, [][]float64{{30}})
	_, err := g.Search(ctx,
		func(p map[string]float64) (experiment.Config, error) {
			return experiment.Config{Scenario: "pendulum", Ticks: 10}, nil
		},
		func(*experiment.Result) float64 { return 0 })
	assert.Error(t, err)
}
