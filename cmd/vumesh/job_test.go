package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const squareJob = `
contours:
  - [[0, 0], [2, 0], [2, 2], [0, 2]]
slice: [1]
triangulate: true
merge_convex: true
`

func TestLoadJob(t *testing.T) {
	j, err := loadJob(strings.NewReader(squareJob))
	require.NoError(t, err)
	require.Len(t, j.Contours, 1)
	require.Equal(t, []float64{2, 0}, j.Contours[0][1])
	require.Equal(t, []float64{1}, j.Slice)
	require.True(t, j.Triangulate)
	require.True(t, j.MergeConvex)
	require.Nil(t, j.Search)

	opts := j.options()
	require.Equal(t, []float64{1}, opts.SliceAltitudes)
	require.Nil(t, opts.Search)
}

func TestLoadJobErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		err  string
	}{
		{"empty", "triangulate: true\n", "neither contours nor points"},
		{"unknown field", "contours: [[[0, 0], [1, 0], [0, 1]]]\nslices: [1]\n", "decoding job"},
		{"short point", "contours: [[[0, 0], [1], [0, 1]]]\n", "contour 0: point 1 has 1 coordinates"},
		{"long point", "points: [[0, 0, 1]]\n", "points: point 0 has 3 coordinates"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadJob(strings.NewReader(tc.src))
			require.ErrorContains(t, err, tc.err)
		})
	}
}

func TestJobSearchLimits(t *testing.T) {
	j, err := loadJob(strings.NewReader(`
contours:
  - [[0, 0], [2, 0], [3, 2], [1, 3], [-1, 2]]
max_edges: 4
search:
  step_limit: 50
`))
	require.NoError(t, err)
	opts := j.options()
	require.NotNil(t, opts.Search)
	require.Equal(t, 50, opts.Search.StepLimit)
	require.Equal(t, 1000, opts.Search.DepthLimit)
	require.Equal(t, 4, opts.Search.MaxSuperFaceSize)

	p, v, err := j.run()
	require.NoError(t, err)
	require.Len(t, v, 5)
	for _, poly := range p {
		require.LessOrEqual(t, len(poly), 4)
	}
}

func TestJobRun(t *testing.T) {
	j, err := loadJob(strings.NewReader(squareJob))
	require.NoError(t, err)
	p, v, err := j.run()
	require.NoError(t, err)
	require.Len(t, v, 6)
	require.Len(t, p, 2)
	for _, poly := range p {
		require.Len(t, poly, 4)
	}
}
