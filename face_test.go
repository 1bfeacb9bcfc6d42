package vumesh

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/require"
)

func lShape(t *testing.T) (*Graph, NodeID) {
	g := NewGraph()
	return g, mustLoop(t, g, pts(0, 0, 2, 0, 2, 1, 1, 1, 1, 2, 0, 2))
}

func TestAreaAndCentroid(t *testing.T) {
	g, a0 := unitSquare(t)
	require.Equal(t, 1.0, g.Area(a0))
	require.Equal(t, -1.0, g.Area(g.Mate(a0)))

	c, area, ok := g.Centroid(a0)
	require.True(t, ok)
	require.Equal(t, 1.0, area)
	require.InDelta(t, 0.5, c.X, 1e-12)
	require.InDelta(t, 0.5, c.Y, 1e-12)

	g, a0 = lShape(t)
	require.Equal(t, 3.0, g.Area(a0))
	c, area, ok = g.Centroid(a0)
	require.True(t, ok)
	require.InDelta(t, 3.0, area, 1e-12)
	require.InDelta(t, 2.5/3, c.X, 1e-12)
	require.InDelta(t, 2.5/3, c.Y, 1e-12)
}

func TestCentroidOfDegenerateFace(t *testing.T) {
	g := NewGraph()
	a, _ := g.MakePair()
	g.SetUV(a, r2.Point{X: 3, Y: 4})
	c, area, ok := g.Centroid(a)
	require.False(t, ok)
	require.Equal(t, 0.0, area)
	require.Equal(t, r2.Point{X: 3, Y: 4}, c)
	require.Equal(t, 0.0, g.Area(a))
}

func TestFindExtrema(t *testing.T) {
	g, a0 := lShape(t)
	e := g.FindExtrema(a0)
	require.Equal(t, r2.Point{X: 0, Y: 0}, g.UV(e.MinV))
	require.Equal(t, r2.Point{X: 1, Y: 2}, g.UV(e.MaxV))
	require.Equal(t, r2.Point{X: 0, Y: 2}, g.UV(e.MinU))
	require.Equal(t, r2.Point{X: 2, Y: 0}, g.UV(e.MaxU))

	// The result does not depend on the start node.
	e2 := g.FindExtrema(g.Succ(g.Succ(a0)))
	require.Equal(t, e, e2)
}

func TestFaceRange(t *testing.T) {
	g, a0 := lShape(t)
	r := g.FaceRange(a0)
	require.Equal(t, r2.Point{X: 0, Y: 0}, r.Lo())
	require.Equal(t, r2.Point{X: 2, Y: 2}, r.Hi())
	require.Equal(t, r, g.Range())
}

func TestCollectFaceLoops(t *testing.T) {
	g := NewGraph()
	mustLoop(t, g, pts(0, 0, 1, 0, 1, 1, 0, 1))
	mustLoop(t, g, pts(2, 0, 3, 0, 3, 1, 2, 1))

	require.Len(t, g.CollectFaceLoops(nil), 4)
	faces := g.CollectInteriorFaceLoops(nil)
	require.Len(t, faces, 2)
	for _, f := range faces {
		require.Equal(t, 4, g.FaceLoopSize(f))
		require.Equal(t, 1.0, g.Area(f))
	}

	// Collecting appends to dst.
	dst := []NodeID{NilNode}
	dst = g.CollectInteriorFaceLoops(dst)
	require.Len(t, dst, 3)
	require.Equal(t, NilNode, dst[0])
}

func TestCollectVExtrema(t *testing.T) {
	g, _ := unitSquare(t)
	min, max := g.CollectVExtrema(nil, nil, ExteriorEdge)
	require.Len(t, min, 1)
	require.Len(t, max, 1)
	require.Equal(t, r2.Point{X: 0, Y: 0}, g.UV(min[0]))
	require.Equal(t, r2.Point{X: 1, Y: 1}, g.UV(max[0]))

	// A notched face has two minima and two maxima.
	g = NewGraph()
	mustLoop(t, g, pts(0, 0, 1, 1, 2, 0, 2, 2, 0, 2))
	min, max = g.CollectVExtrema(nil, nil, ExteriorEdge)
	require.Len(t, min, 2)
	require.Len(t, max, 2)
	require.Equal(t, r2.Point{X: 1, Y: 1}, g.UV(max[0]))
}

func TestCollectLocalExtrema(t *testing.T) {
	g, _ := unitSquare(t)
	require.Len(t, g.CollectLocalExtrema(nil), 4)

	// A collinear vertex is not an extremum.
	g = NewGraph()
	mustLoop(t, g, pts(0, 0, 1, 0, 2, 0, 2, 1, 0, 1))
	require.Len(t, g.CollectLocalExtrema(nil), 4)
}
