package vumesh

import (
	"fmt"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/require"
)

func pts(xy ...float64) []r2.Point {
	ps := make([]r2.Point, 0, len(xy)/2)
	for i := 0; i < len(xy); i += 2 {
		ps = append(ps, r2.Point{X: xy[i], Y: xy[i+1]})
	}
	return ps
}

func mustLoop(t *testing.T, g *Graph, ps []r2.Point) NodeID {
	t.Helper()
	n, err := g.MakeLoop(ps, BoundaryEdge, ExteriorEdge|BoundaryEdge)
	require.NoError(t, err)
	return n
}

func unitSquare(t *testing.T) (*Graph, NodeID) {
	g := NewGraph()
	return g, mustLoop(t, g, pts(0, 0, 1, 0, 1, 1, 0, 1))
}

func faceUVs(g *Graph, start NodeID) []r2.Point {
	var ps []r2.Point
	g.ForEachNodeInFace(start, func(n NodeID) bool {
		ps = append(ps, g.UV(n))
		return true
	})
	return ps
}

func requireValid(t *testing.T, g *Graph) {
	t.Helper()
	require.NoError(t, g.Check())
	g.ForEachNode(func(n NodeID) {
		require.Equal(t, n, g.Mate(g.Mate(n)))
		require.Equal(t, n, g.Pred(g.Succ(n)))
	})
}

// interiorFaces returns the interior faces and the sum of their areas.
func interiorFaces(g *Graph) ([]NodeID, float64) {
	faces := g.CollectInteriorFaceLoops(nil)
	area := 0.0
	for _, f := range faces {
		area += g.Area(f)
	}
	return faces, area
}

func snapshot(g *Graph) []node {
	return append([]node(nil), g.nodes...)
}

func TestMakePair(t *testing.T) {
	g := NewGraph()
	a, b := g.MakePair()
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, b, g.Mate(a))
	require.Equal(t, b, g.Succ(a))
	require.Equal(t, a, g.Pred(b))
	require.Equal(t, -1, g.Label(a))
	requireValid(t, g)
}

func TestMakeLoop(t *testing.T) {
	for idx, tc := range []struct {
		points []r2.Point
		size   int
	}{
		{pts(0, 0, 1, 0, 1, 1, 0, 1), 4},
		{pts(0, 0, 0, 1, 1, 1, 1, 0), 4},
		{pts(0, 0, 1, 0, 1, 1, 0, 1, 0, 0), 4},
		{pts(0, 0, 1, 0, 1, 0, 0, 1), 3},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			g := NewGraph()
			n := mustLoop(t, g, tc.points)
			requireValid(t, g)
			require.Equal(t, tc.size, g.FaceLoopSize(n))
			require.Equal(t, tc.size, g.FaceLoopSize(g.Mate(n)))
			require.Greater(t, g.Area(n), 0.0)
			require.Less(t, g.Area(g.Mate(n)), 0.0)
			require.True(t, g.HasMask(n, BoundaryEdge))
			require.False(t, g.HasMask(n, ExteriorEdge))
			require.True(t, g.HasMask(g.Mate(n), ExteriorEdge))
			require.Equal(t, g.UV(g.Succ(n)), g.UV(g.Mate(n)))
		})
	}
}

func TestMakeLoopDegenerate(t *testing.T) {
	for idx, ps := range [][]r2.Point{
		nil,
		pts(0, 0, 1, 1),
		pts(0, 0, 1, 1, 0, 0),
		pts(0, 0, 1, 1, 2, 2),
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			g := NewGraph()
			_, err := g.MakeLoop(ps, 0, 0)
			require.ErrorIs(t, err, ErrDegenerateLoop)
			require.Equal(t, 0, g.NodeCount())
		})
	}
}

func TestVertexTwistIsSelfInverse(t *testing.T) {
	g, a0 := unitSquare(t)
	a2 := g.Succ(g.Succ(a0))
	before := snapshot(g)

	g.VertexTwist(a0, a2)
	require.Equal(t, 2, g.FaceLoopSize(a0))
	require.Equal(t, 2, g.FaceLoopSize(a2))
	requireValid(t, g)

	g.VertexTwist(a0, a2)
	require.Equal(t, before, snapshot(g))

	g.VertexTwist(a0, a0)
	require.Equal(t, before, snapshot(g))
}

func TestJoinSplitsFace(t *testing.T) {
	g, a0 := unitSquare(t)
	a2 := g.Succ(g.Succ(a0))

	newA, newB := g.Join(a0, a2)
	requireValid(t, g)
	require.Equal(t, 10, g.NodeCount())
	require.Equal(t, newB, g.Mate(newA))
	require.Equal(t, r2.Point{X: 0, Y: 0}, g.UV(newA))
	require.Equal(t, r2.Point{X: 1, Y: 1}, g.UV(newB))
	require.Equal(t, a2, g.Succ(newA))
	require.Equal(t, a0, g.Succ(newB))
	require.Equal(t, 3, g.FaceLoopSize(newA))
	require.Equal(t, 3, g.FaceLoopSize(newB))
	require.Equal(t, 0.5, g.Area(newA))
	require.Equal(t, 0.5, g.Area(newB))
}

func TestSplitEdge(t *testing.T) {
	g, a0 := unitSquare(t)
	m := g.Mate(a0)
	a1 := g.Succ(a0)

	left, right := g.SplitEdgeAtFraction(a0, 0.25)
	requireValid(t, g)
	require.Equal(t, 10, g.NodeCount())
	require.Equal(t, r2.Point{X: 0.25, Y: 0}, g.UV(left))
	require.Equal(t, r2.Point{X: 0.25, Y: 0}, g.UV(right))
	require.Equal(t, left, g.Succ(a0))
	require.Equal(t, a1, g.Succ(left))
	require.Equal(t, right, g.Succ(m))
	require.Equal(t, right, g.Mate(a0))
	require.Equal(t, m, g.Mate(left))
	require.Equal(t, 5, g.FaceLoopSize(a0))
	require.Equal(t, 5, g.FaceLoopSize(m))
	require.Equal(t, g.Mask(a0), g.Mask(left))
	require.Equal(t, g.Mask(m), g.Mask(right))
	require.Equal(t, 1.0, g.Area(a0))
}

func TestSplitEdgeAtV(t *testing.T) {
	g := NewGraph()
	a0 := mustLoop(t, g, pts(0, 0, 2, 3, -1, 1))
	left, right := g.SplitEdgeAtV(a0, 0.1)
	requireValid(t, g)
	require.Equal(t, 0.1, g.V(left))
	require.Equal(t, 0.1, g.V(right))
	require.InDelta(t, 0.1/3*2, g.U(left), 1e-15)
	require.Equal(t, 4, g.FaceLoopSize(a0))
}

func TestSplitEdgeAtPoint(t *testing.T) {
	g := NewGraph()
	a0 := mustLoop(t, g, pts(0, 0, 2, 3, -1, 1))
	a1 := g.Succ(a0)
	g.SetXYZ(a1, r3.Vector{X: 2, Y: 3, Z: 4})

	left, _ := g.SplitEdgeAtPoint(a0, r2.Point{X: 1, Y: 1.5})
	require.Equal(t, r2.Point{X: 1, Y: 1.5}, g.UV(left))
	require.InDelta(t, 2, g.W(left), 1e-12)
	require.Equal(t, r3.Vector{X: 1, Y: 1.5, Z: g.W(left)}, g.XYZ(left))
}

func TestDeleteEdge(t *testing.T) {
	g, a0 := unitSquare(t)
	before := faceUVs(g, a0)
	newA, _ := g.Join(a0, g.Succ(g.Succ(a0)))

	g.DeleteEdge(newA)
	requireValid(t, g)
	require.Equal(t, 8, g.NodeCount())
	require.Equal(t, before, faceUVs(g, a0))

	// Freed slots are reused.
	a, b := g.MakePair()
	require.ElementsMatch(t, []NodeID{8, 9}, []NodeID{a, b})
}

func TestSetLabelInSetSkipsFreedNodes(t *testing.T) {
	g, a0 := unitSquare(t)
	newA, newB := g.Join(a0, g.Succ(g.Succ(a0)))
	g.DeleteEdge(newA)

	g.SetLabelInSet(3)
	require.Equal(t, 3, g.Label(a0))
	require.Zero(t, g.nodes[newA].label)
	require.Zero(t, g.nodes[newB].label)
}

func TestDeleteDanglingEdge(t *testing.T) {
	g, a0 := unitSquare(t)
	hub, spoke := g.MakePair()
	g.SetUV(hub, r2.Point{X: 0.5, Y: 0.5})
	g.VertexTwist(spoke, a0)
	require.Equal(t, 6, g.FaceLoopSize(a0))

	g.DeleteEdge(hub)
	requireValid(t, g)
	require.Equal(t, 4, g.FaceLoopSize(a0))
}

func TestFreeMarkedEdges(t *testing.T) {
	g, a0 := unitSquare(t)
	newA, _ := g.Join(a0, g.Succ(g.Succ(a0)))
	m := g.GrabMask()
	defer g.ReturnMask(m)
	g.SetMask(newA, m)

	require.Equal(t, 1, g.FreeMarkedEdges(m))
	require.Equal(t, 8, g.NodeCount())
	requireValid(t, g)

	g.Join(a0, g.Succ(g.Succ(a0)))
	require.Equal(t, 1, g.FreeNonMarkedEdges(BoundaryEdge))
	require.Equal(t, 8, g.NodeCount())
	require.Equal(t, 0, g.FreeNonMarkedEdges(BoundaryEdge))
	requireValid(t, g)
}

func TestGrabMask(t *testing.T) {
	g, _ := unitSquare(t)
	g.SetMaskInSet(1 << 16)
	require.Equal(t, 8, g.CountMaskInSet(1<<16))

	m := g.GrabMask()
	require.Equal(t, Mask(1<<16), m)
	require.Equal(t, 0, g.CountMaskInSet(m))

	var all []Mask
	seen := m
	for i := 1; i < 16; i++ {
		x := g.GrabMask()
		require.Zero(t, seen&x)
		seen |= x
		all = append(all, x)
	}
	require.Panics(t, func() { g.GrabMask() })

	g.ReturnMask(m)
	require.Equal(t, m, g.GrabMask())
	require.Panics(t, func() { g.ReturnMask(BoundaryEdge) })
	require.Panics(t, func() { g.ReturnMask(m | all[0]) })
	for _, x := range all {
		g.ReturnMask(x)
	}
	require.Panics(t, func() { g.ReturnMask(all[0]) })
}

func TestMaskAroundFace(t *testing.T) {
	g, a0 := unitSquare(t)
	g.SetMaskAroundFace(a0, PermanentEdge)
	require.Equal(t, 4, g.CountMaskInSet(PermanentEdge))
	g.ClearMaskAroundFace(g.Succ(a0), PermanentEdge)
	require.Equal(t, 0, g.CountMaskInSet(PermanentEdge))
}

func TestForEachNodeInFaceStops(t *testing.T) {
	g, a0 := unitSquare(t)
	n := 0
	g.ForEachNodeInFace(a0, func(NodeID) bool {
		n++
		return n < 2
	})
	require.Equal(t, 2, n)

	n = 0
	g.ForEachNodeAroundVertex(a0, func(NodeID) bool {
		n++
		return true
	})
	require.Equal(t, 2, n)
}

func TestCheckDetectsCorruption(t *testing.T) {
	g, a0 := unitSquare(t)
	require.NoError(t, g.Check())

	g.nodes[a0].mate = g.Succ(a0)
	require.ErrorIs(t, g.Check(), ErrInvalidGraph)

	g, a0 = unitSquare(t)
	g.nodes[a0].succ = g.Pred(a0)
	require.ErrorIs(t, g.Check(), ErrInvalidGraph)
}

func TestRotate90IsExact(t *testing.T) {
	g := NewGraph()
	mustLoop(t, g, pts(0.1, 0.2, 3.7, -1.3, 2.9, 5.5))
	before := snapshot(g)

	g.Rotate90CCW()
	require.NotEqual(t, before, snapshot(g))
	g.Rotate90CW()
	require.Equal(t, before, snapshot(g))
}
