package trajcompare_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/orca2d/trajcompare"
	"github.com/katalvlaran/orca2d/vector2"
)

func pts(xs ...float64) []vector2.Vector2 {
	out := make([]vector2.Vector2, len(xs))
	for i, x := range xs {
		out[i] = vector2.New(x, 0)
	}
	return out
}

func TestDistance_EmptyInput(t *testing.T) {
	opts := trajcompare.DefaultOptions()

	_, _, err := trajcompare.Distance(nil, pts(1, 2, 3), &opts)
	assert.ErrorIs(t, err, trajcompare.ErrEmptyInput)

	_, _, err = trajcompare.Distance(pts(1, 2, 3), nil, &opts)
	assert.ErrorIs(t, err, trajcompare.ErrEmptyInput)
}

func TestDistance_BadWindowOption(t *testing.T) {
	opts := trajcompare.DefaultOptions()
	opts.Window = -2

	_, _, err := trajcompare.Distance(pts(1), pts(1), &opts)
	assert.ErrorIs(t, err, trajcompare.ErrBadInput)
}

func TestDistance_PathNeedsMatrix(t *testing.T) {
	opts := trajcompare.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = trajcompare.TwoRows

	_, _, err := trajcompare.Distance(pts(1, 2), pts(1, 2), &opts)
	assert.ErrorIs(t, err, trajcompare.ErrPathNeedsMatrix)
}

func TestDistance_IdenticalTrajectoriesAreZero(t *testing.T) {
	a := pts(0, 1, 2)
	b := pts(0, 1, 2)
	opts := trajcompare.DefaultOptions()

	dist, path, err := trajcompare.Distance(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	assert.Nil(t, path)
}

func TestDistance_SyntheticPathLength(t *testing.T) {
	a := pts(1, 2, 3)
	b := pts(1, 2, 2, 3)
	opts := trajcompare.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = trajcompare.FullMatrix

	dist, path, err := trajcompare.Distance(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, dist)
	assert.Len(t, path, 4)
	assert.Equal(t, trajcompare.Coord{I: 0, J: 0}, path[0])
	assert.Equal(t, trajcompare.Coord{I: 2, J: 3}, path[len(path)-1])
}

func TestDistance_WindowConstraintForcesInfinity(t *testing.T) {
	a := pts(1, 2, 3)
	b := pts(1, 2, 3, 4)
	opts := trajcompare.DefaultOptions()
	opts.Window = 0
	opts.MemoryMode = trajcompare.FullMatrix

	dist, _, err := trajcompare.Distance(a, b, &opts)
	assert.NoError(t, err)
	assert.True(t, math.IsInf(dist, 1))
}

func TestDistance_MemoryModesAgree(t *testing.T) {
	a := pts(0, 1, 2, 3)
	b := pts(0, 1, 1, 2, 3)

	refOpts := trajcompare.DefaultOptions()
	refOpts.MemoryMode = trajcompare.FullMatrix
	refDist, _, err := trajcompare.Distance(a, b, &refOpts)
	assert.NoError(t, err)

	for _, mode := range []trajcompare.MemoryMode{trajcompare.TwoRows, trajcompare.NoMemory} {
		opts := trajcompare.DefaultOptions()
		opts.MemoryMode = mode
		dist, path, err := trajcompare.Distance(a, b, &opts)
		assert.NoError(t, err)
		assert.Equal(t, refDist, dist)
		assert.Nil(t, path)
	}
}

// TestDistance_DetectsDivergingAvoidancePath is a two-dimensional,
// domain-relevant check: a straight-line reference path and a path
// that visibly detours around an obstacle must score a nonzero
// distance, while the same detoured path compared to itself scores
// zero.
func TestDistance_DetectsDivergingAvoidancePath(t *testing.T) {
	straight := []vector2.Vector2{
		vector2.New(-2, 0), vector2.New(-1, 0), vector2.New(0, 0), vector2.New(1, 0), vector2.New(2, 0),
	}
	detoured := []vector2.Vector2{
		vector2.New(-2, 0), vector2.New(-1, 0.5), vector2.New(0, 0.8), vector2.New(1, 0.5), vector2.New(2, 0),
	}
	opts := trajcompare.DefaultOptions()

	dist, _, err := trajcompare.Distance(straight, detoured, &opts)
	assert.NoError(t, err)
	assert.Greater(t, dist, 0.0)

	dist, _, err = trajcompare.Distance(detoured, detoured, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, dist)
}
