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

// IsSectorConvexAfterEdgeRemoval reports whether the vertex of n keeps a
// convex corner in the face that results from removing the edge of n.
// Edges at the vertex carrying pending are treated as already removed.
//
// If the edge is the last one at the vertex, the vertex disappears and the
// result is true. A straight angle counts as convex; a dangling edge left
// behind does not.
func (g *Graph) IsSectorConvexAfterEdgeRemoval(n NodeID, pending Mask) bool {
	out := g.VPred(n)
	for out != n && g.HasMask(out, pending) {
		out = g.VPred(out)
	}
	in := g.VSucc(n)
	for in != n && g.HasMask(in, pending) {
		in = g.VSucc(in)
	}
	if out == n || in == n {
		return true
	}

	x := g.UV(g.Succ(in))
	p := g.UV(n)
	y := g.UV(g.Succ(out))
	c := cross(x, p, y)
	if c > 0 {
		return true
	}
	if c < 0 {
		return false
	}
	return p.Sub(x).Dot(y.Sub(p)) > 0
}

// RemoveEdgesToExpandConvexFaces removes every edge whose removal leaves
// convex corners at both of its ends. Edges with barrierMask on either side
// are kept. Edges are examined once, in node order; corners are judged with
// the edges already chosen for removal taken away, so convex faces merge
// into convex faces. It returns the number of edges removed.
//
// The result is maximal: running the pass again removes nothing.
func (g *Graph) RemoveEdgesToExpandConvexFaces(barrierMask Mask) int {
	visited := g.GrabMask()
	defer g.ReturnMask(visited)
	pending := g.GrabMask()
	defer g.ReturnMask(pending)

	for i := range g.nodes {
		n := NodeID(i)
		if !g.nodes[n].live || g.HasMask(n, visited) {
			continue
		}
		m := g.Mate(n)
		g.SetMask(n, visited)
		g.SetMask(m, visited)
		if g.HasMask(n, barrierMask) || g.HasMask(m, barrierMask) {
			continue
		}
		if g.IsSectorConvexAfterEdgeRemoval(n, pending) && g.IsSectorConvexAfterEdgeRemoval(m, pending) {
			g.SetMask(n, pending)
			g.SetMask(m, pending)
		}
	}

	removed := g.FreeMarkedEdges(pending)
	Logger().Debug("removed edges to expand convex faces", "edges", removed)
	return removed
}
