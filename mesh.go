// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package vumesh

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// NodeID addresses a node (a vertex use, one side of an edge) inside a Graph.
type NodeID int32

// NilNode is the NodeID that refers to no node.
const NilNode NodeID = -1

// node is one half-edge. The node sits at uv and its edge runs to the
// coordinates of succ. mate is the node on the other side of the same edge,
// sitting at the far end.
type node struct {
	uv    r2.Point
	w     float64
	succ  NodeID
	pred  NodeID
	mate  NodeID
	label int
	mask  Mask
	live  bool
}

// Graph is a planar subdivision stored as an arena of half-edge nodes.
//
// Nodes are created in pairs and freed in pairs. A freed slot is returned to
// a free list and reused by the next allocation, so a NodeID must not be kept
// across an operation that deletes its edge.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes     []node
	free      []NodeID
	liveCount int
	maskPool  Mask
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{
		maskPool: poolMasks,
	}
}

// NodeCount returns the number of live nodes.
func (g *Graph) NodeCount() int {
	return g.liveCount
}

// EdgeCount returns the number of edges, i.e. half the number of live nodes.
func (g *Graph) EdgeCount() int {
	return g.liveCount / 2
}

// IsLive reports whether id refers to a node that has not been freed.
func (g *Graph) IsLive(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes) && g.nodes[id].live
}

// ForEachNode calls f for every live node in allocation order.
// f may mark nodes, but must not free any.
func (g *Graph) ForEachNode(f func(NodeID)) {
	for i := range g.nodes {
		if g.nodes[i].live {
			f(NodeID(i))
		}
	}
}

// AnyNode returns some live node, or NilNode for an empty graph.
func (g *Graph) AnyNode() NodeID {
	for i := range g.nodes {
		if g.nodes[i].live {
			return NodeID(i)
		}
	}
	return NilNode
}

func (g *Graph) Succ(id NodeID) NodeID { return g.nodes[id].succ }
func (g *Graph) Pred(id NodeID) NodeID { return g.nodes[id].pred }
func (g *Graph) Mate(id NodeID) NodeID { return g.nodes[id].mate }

// VSucc returns the next node around the vertex of id, counterclockwise for
// counterclockwise faces.
func (g *Graph) VSucc(id NodeID) NodeID { return g.nodes[g.nodes[id].pred].mate }

// VPred is the inverse of VSucc.
func (g *Graph) VPred(id NodeID) NodeID { return g.nodes[g.nodes[id].mate].succ }

func (g *Graph) UV(id NodeID) r2.Point { return g.nodes[id].uv }
func (g *Graph) U(id NodeID) float64   { return g.nodes[id].uv.X }
func (g *Graph) V(id NodeID) float64   { return g.nodes[id].uv.Y }
func (g *Graph) W(id NodeID) float64   { return g.nodes[id].w }

// XYZ returns the coordinates of id with w as the third component.
func (g *Graph) XYZ(id NodeID) r3.Vector {
	n := &g.nodes[id]
	return r3.Vector{X: n.uv.X, Y: n.uv.Y, Z: n.w}
}

func (g *Graph) SetUV(id NodeID, uv r2.Point) { g.nodes[id].uv = uv }

// SetXYZ sets all three coordinates of id.
func (g *Graph) SetXYZ(id NodeID, p r3.Vector) {
	n := &g.nodes[id]
	n.uv = r2.Point{X: p.X, Y: p.Y}
	n.w = p.Z
}

// SetUVAroundVertex sets the coordinates of every node around the vertex of id.
func (g *Graph) SetUVAroundVertex(id NodeID, uv r2.Point) {
	g.ForEachNodeAroundVertex(id, func(n NodeID) bool {
		g.nodes[n].uv = uv
		return true
	})
}

func (g *Graph) Label(id NodeID) int           { return g.nodes[id].label }
func (g *Graph) SetLabel(id NodeID, label int) { g.nodes[id].label = label }

// SetLabelInSet sets the label of every live node.
func (g *Graph) SetLabelInSet(label int) {
	for i := range g.nodes {
		if g.nodes[i].live {
			g.nodes[i].label = label
		}
	}
}

// ForEachNodeInFace visits the nodes of the face loop of start, beginning at
// start and following Succ. visit returns false to stop early. The walk is
// bounded by the node count so that a corrupted loop cannot spin forever.
func (g *Graph) ForEachNodeInFace(start NodeID, visit func(NodeID) bool) {
	n := start
	for i := 0; i <= g.liveCount; i++ {
		next := g.nodes[n].succ
		if !visit(n) {
			return
		}
		n = next
		if n == start {
			return
		}
	}
}

// ForEachNodeAroundVertex visits the nodes of the vertex loop of start,
// following VSucc.
func (g *Graph) ForEachNodeAroundVertex(start NodeID, visit func(NodeID) bool) {
	n := start
	for i := 0; i <= g.liveCount; i++ {
		next := g.VSucc(n)
		if !visit(n) {
			return
		}
		n = next
		if n == start {
			return
		}
	}
}

func (g *Graph) newNode() NodeID {
	var id NodeID
	if k := len(g.free); k > 0 {
		id = g.free[k-1]
		g.free = g.free[:k-1]
	} else {
		id = NodeID(len(g.nodes))
		g.nodes = append(g.nodes, node{})
	}
	g.nodes[id] = node{
		succ:  id,
		pred:  id,
		mate:  NilNode,
		label: -1,
		live:  true,
	}
	g.liveCount++
	return id
}

func (g *Graph) freeNode(id NodeID) {
	g.nodes[id] = node{
		succ: NilNode,
		pred: NilNode,
		mate: NilNode,
	}
	g.free = append(g.free, id)
	g.liveCount--
}

// MakePair creates a new edge that is not connected to anything. The two
// nodes are mates and each is the other's face successor, so the pair forms
// its own two-node face. Coordinates are zero.
func (g *Graph) MakePair() (NodeID, NodeID) {
	a := g.newNode()
	b := g.newNode()
	na, nb := &g.nodes[a], &g.nodes[b]
	na.succ, na.pred, na.mate = b, b, b
	nb.succ, nb.pred, nb.mate = a, a, a
	return a, b
}

// VertexTwist is the basic operation for changing the graph connectivity.
// It exchanges the face predecessors of a and b, which is the same as
// exchanging their vertex loop successors.
//
// If a and b are on the same face, that face is split into two; a and b end
// up on different faces. If they are on different faces, the two faces are
// joined. Applying VertexTwist twice with the same arguments restores the
// original graph. If a == b, the operation has no effect.
func (g *Graph) VertexTwist(a, b NodeID) {
	if a == b {
		return
	}
	pa := g.nodes[a].pred
	pb := g.nodes[b].pred

	g.nodes[a].pred = pb
	g.nodes[pb].succ = a
	g.nodes[b].pred = pa
	g.nodes[pa].succ = b
}

// Join inserts a new edge between the vertices of a and b, which must lie on
// the same face. The face is split into two. newA sits at the coordinates of
// a and lies on the face that contains b; newB sits at the coordinates of b
// and lies on the face that contains a.
//
// Calling Join with nodes of different faces merges the faces instead of
// splitting them; that is a caller error and is not detected here.
func (g *Graph) Join(a, b NodeID) (newA, newB NodeID) {
	newA, newB = g.MakePair()
	g.copyCoordinates(newA, a)
	g.copyCoordinates(newB, b)
	g.VertexTwist(a, newA)
	g.VertexTwist(b, newB)
	return newA, newB
}

// SplitEdge inserts a new vertex into the edge starting at n. Both new nodes
// copy the coordinates of n; callers are expected to move them. left follows
// n on its face, right follows Mate(n) on the other face.
//
// Masks and labels are inherited: left from n and right from the old mate.
func (g *Graph) SplitEdge(n NodeID) (left, right NodeID) {
	left = g.newNode()
	right = g.newNode()

	m := g.nodes[n].mate
	q := g.nodes[n].succ
	s := g.nodes[m].succ

	nl, nr := &g.nodes[left], &g.nodes[right]
	nl.uv, nl.w = g.nodes[n].uv, g.nodes[n].w
	nr.uv, nr.w = g.nodes[n].uv, g.nodes[n].w
	nl.mask, nl.label = g.nodes[n].mask, g.nodes[n].label
	nr.mask, nr.label = g.nodes[m].mask, g.nodes[m].label

	// n -> left -> q on this face.
	nl.pred, nl.succ = n, q
	g.nodes[n].succ = left
	g.nodes[q].pred = left

	// m -> right -> s on the other face.
	nr.pred, nr.succ = m, s
	g.nodes[m].succ = right
	g.nodes[s].pred = right

	// n now ends at the new vertex, whose outgoing node on the far side is
	// right. m starts at the old far end and ends at the new vertex.
	g.nodes[n].mate = right
	nr.mate = n
	nl.mate = m
	g.nodes[m].mate = left
	return left, right
}

// SplitEdgeAtFraction splits the edge starting at n at the given fraction of
// the way to its far end; all three coordinates are interpolated.
func (g *Graph) SplitEdgeAtFraction(n NodeID, fraction float64) (left, right NodeID) {
	q := g.nodes[n].succ
	uv := interpolateUV(g.nodes[n].uv, fraction, g.nodes[q].uv)
	w := interpolate(g.nodes[n].w, fraction, g.nodes[q].w)
	left, right = g.SplitEdge(n)
	g.setCoordinates(left, uv, w)
	g.setCoordinates(right, uv, w)
	return left, right
}

// SplitEdgeAtPoint splits the edge starting at n at exactly uv. The third
// coordinate is interpolated at the projection of uv onto the edge.
func (g *Graph) SplitEdgeAtPoint(n NodeID, uv r2.Point) (left, right NodeID) {
	q := g.nodes[n].succ
	w := g.nodes[n].w
	d := g.nodes[q].uv.Sub(g.nodes[n].uv)
	if dd := d.Dot(d); dd > 0 {
		f := uv.Sub(g.nodes[n].uv).Dot(d) / dd
		w = interpolate(g.nodes[n].w, f, g.nodes[q].w)
	}
	left, right = g.SplitEdge(n)
	g.setCoordinates(left, uv, w)
	g.setCoordinates(right, uv, w)
	return left, right
}

// SplitEdgeAtV splits the edge starting at n where it crosses the horizontal
// line at v. The new nodes get exactly v as their v-coordinate, so later
// equality tests against v are meaningful. v must lie strictly between the
// v-coordinates of the edge ends.
func (g *Graph) SplitEdgeAtV(n NodeID, v float64) (left, right NodeID) {
	q := g.nodes[n].succ
	p0, p1 := g.nodes[n].uv, g.nodes[q].uv
	f := (v - p0.Y) / (p1.Y - p0.Y)
	uv := r2.Point{X: interpolate(p0.X, f, p1.X), Y: v}
	w := interpolate(g.nodes[n].w, f, g.nodes[q].w)
	left, right = g.SplitEdge(n)
	g.setCoordinates(left, uv, w)
	g.setCoordinates(right, uv, w)
	return left, right
}

// DeleteEdge removes the edge of n and its mate. The faces on the two sides
// are merged (or, for an edge with the same face on both sides, split).
// A vertex whose last edge is removed disappears with it.
func (g *Graph) DeleteEdge(n NodeID) {
	m := g.nodes[n].mate
	if vp := g.VPred(n); vp != n {
		g.VertexTwist(n, vp)
	}
	if vp := g.VPred(m); vp != m {
		g.VertexTwist(m, vp)
	}
	g.freeNode(n)
	g.freeNode(m)
}

// FreeMarkedEdges deletes every edge with mask set on at least one side and
// returns the number of edges deleted.
func (g *Graph) FreeMarkedEdges(mask Mask) int {
	return g.freeEdgesWhere(func(n, m NodeID) bool {
		return g.HasMask(n, mask) || g.HasMask(m, mask)
	})
}

// FreeNonMarkedEdges deletes every edge with mask set on neither side and
// returns the number of edges deleted.
func (g *Graph) FreeNonMarkedEdges(mask Mask) int {
	return g.freeEdgesWhere(func(n, m NodeID) bool {
		return !g.HasMask(n, mask) && !g.HasMask(m, mask)
	})
}

func (g *Graph) freeEdgesWhere(doomed func(n, m NodeID) bool) int {
	var victims []NodeID
	for i := range g.nodes {
		n := NodeID(i)
		if !g.nodes[n].live {
			continue
		}
		m := g.nodes[n].mate
		if n < m && doomed(n, m) {
			victims = append(victims, n)
		}
	}
	for _, n := range victims {
		g.DeleteEdge(n)
	}
	return len(victims)
}

func (g *Graph) copyCoordinates(dst, src NodeID) {
	g.nodes[dst].uv = g.nodes[src].uv
	g.nodes[dst].w = g.nodes[src].w
}

func (g *Graph) setCoordinates(id NodeID, uv r2.Point, w float64) {
	g.nodes[id].uv = uv
	g.nodes[id].w = w
}

// Check checks the graph for self-consistency.
func (g *Graph) Check() error {
	live := 0
	for i := range g.nodes {
		n := NodeID(i)
		nd := &g.nodes[n]
		if !nd.live {
			continue
		}
		live++
		if !g.IsLive(nd.mate) || !g.IsLive(nd.succ) || !g.IsLive(nd.pred) {
			return fmt.Errorf("vumesh: node %d links to a freed node: %w", n, ErrInvalidGraph)
		}
		if nd.mate == n {
			return fmt.Errorf("vumesh: node %d is its own mate: %w", n, ErrInvalidGraph)
		}
		if g.nodes[nd.mate].mate != n {
			return fmt.Errorf("vumesh: mate of mate of node %d is %d: %w", n, g.nodes[nd.mate].mate, ErrInvalidGraph)
		}
		if g.nodes[nd.succ].pred != n {
			return fmt.Errorf("vumesh: pred of succ of node %d is %d: %w", n, g.nodes[nd.succ].pred, ErrInvalidGraph)
		}
		if g.nodes[nd.pred].succ != n {
			return fmt.Errorf("vumesh: succ of pred of node %d is %d: %w", n, g.nodes[nd.pred].succ, ErrInvalidGraph)
		}
	}
	if live != g.liveCount {
		return fmt.Errorf("vumesh: %d live nodes, %d counted: %w", live, g.liveCount, ErrInvalidGraph)
	}
	if live%2 != 0 {
		return fmt.Errorf("vumesh: odd number of live nodes %d: %w", live, ErrInvalidGraph)
	}
	seen := make([]bool, len(g.nodes))
	for i := range g.nodes {
		n := NodeID(i)
		if !g.nodes[n].live || seen[n] {
			continue
		}
		closed := false
		p := n
		for k := 0; k < live; k++ {
			seen[p] = true
			p = g.nodes[p].succ
			if p == n {
				closed = true
				break
			}
		}
		if !closed {
			return fmt.Errorf("vumesh: face loop of node %d does not close: %w", n, ErrInvalidGraph)
		}
	}
	return nil
}
