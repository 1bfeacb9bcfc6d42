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
	"github.com/golang/geo/r2"
)

// FaceLoopSize returns the number of nodes (equivalently edges) on the face
// of start.
func (g *Graph) FaceLoopSize(start NodeID) int {
	n := 0
	g.ForEachNodeInFace(start, func(NodeID) bool {
		n++
		return true
	})
	return n
}

// CollectFaceLoops appends one node of every face of the graph to dst and
// returns the extended slice.
func (g *Graph) CollectFaceLoops(dst []NodeID) []NodeID {
	return g.collectFaces(dst, false)
}

// CollectInteriorFaceLoops is like CollectFaceLoops but skips faces that have
// an ExteriorEdge node.
func (g *Graph) CollectInteriorFaceLoops(dst []NodeID) []NodeID {
	return g.collectFaces(dst, true)
}

func (g *Graph) collectFaces(dst []NodeID, interiorOnly bool) []NodeID {
	visited := g.GrabMask()
	defer g.ReturnMask(visited)

	for i := range g.nodes {
		n := NodeID(i)
		if !g.nodes[n].live || g.HasMask(n, visited) {
			continue
		}
		exterior := false
		g.ForEachNodeInFace(n, func(p NodeID) bool {
			g.SetMask(p, visited)
			if g.HasMask(p, ExteriorEdge) {
				exterior = true
			}
			return true
		})
		if interiorOnly && exterior {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}

// FaceExtrema holds the extreme nodes of a face. MinV and MaxV are ordered
// lexically by v then u, MinU and MaxU by u then descending v.
type FaceExtrema struct {
	MinU NodeID
	MaxU NodeID
	MinV NodeID
	MaxV NodeID
}

// FindExtrema finds the extreme nodes of the face of start.
func (g *Graph) FindExtrema(start NodeID) FaceExtrema {
	e := FaceExtrema{MinU: start, MaxU: start, MinV: start, MaxV: start}
	g.ForEachNodeInFace(start, func(n NodeID) bool {
		p := g.nodes[n].uv
		if below(p, g.nodes[e.MinV].uv) {
			e.MinV = n
		} else if below(g.nodes[e.MaxV].uv, p) {
			e.MaxV = n
		}
		if leftOf(p, g.nodes[e.MinU].uv) {
			e.MinU = n
		} else if leftOf(g.nodes[e.MaxU].uv, p) {
			e.MaxU = n
		}
		return true
	})
	return e
}

// Area returns the signed area of the face of start, positive for a
// counterclockwise loop. Faces with fewer than three nodes have zero area.
func (g *Graph) Area(start NodeID) float64 {
	if g.Succ(g.Succ(start)) == start {
		return 0
	}
	a := 0.0
	g.ForEachNodeInFace(start, func(p NodeID) bool {
		q := g.nodes[p].succ
		pp, qq := g.nodes[p].uv, g.nodes[q].uv
		a -= (qq.X - pp.X) * (pp.Y + qq.Y)
		return true
	})
	return a * 0.5
}

// Centroid returns the area centroid and signed area of the face of start,
// summing the triangles of a fan from start. If the area is zero, the
// coordinates of start are returned with ok false.
func (g *Graph) Centroid(start NodeID) (c r2.Point, area float64, ok bool) {
	p0 := g.nodes[start].uv
	var sum r2.Point
	n0 := g.nodes[start].succ
	n1 := g.nodes[n0].succ
	for n1 != start {
		p1, p2 := g.nodes[n0].uv, g.nodes[n1].uv
		dA := 0.5 * cross(p0, p1, p2)
		sum = sum.Add(p0.Add(p1).Add(p2).Mul(dA / 3))
		area += dA
		n0 = n1
		n1 = g.nodes[n1].succ
	}
	if area == 0 {
		return p0, 0, false
	}
	return sum.Mul(1 / area), area, true
}

// FaceRange returns the bounding rectangle of the face of start.
func (g *Graph) FaceRange(start NodeID) r2.Rect {
	r := r2.EmptyRect()
	g.ForEachNodeInFace(start, func(n NodeID) bool {
		r = r.AddPoint(g.nodes[n].uv)
		return true
	})
	return r
}

// Range returns the bounding rectangle of all nodes.
func (g *Graph) Range() r2.Rect {
	r := r2.EmptyRect()
	g.ForEachNode(func(n NodeID) {
		r = r.AddPoint(g.nodes[n].uv)
	})
	return r
}

// CollectVExtrema appends the local v-minimum and v-maximum nodes of every
// face whose nodes do not carry exclude. Local extrema are found by lexical
// comparison of each node with its neighbors.
func (g *Graph) CollectVExtrema(minDst, maxDst []NodeID, exclude Mask) ([]NodeID, []NodeID) {
	visited := g.GrabMask()
	defer g.ReturnMask(visited)

	noStart := visited | exclude
	for i := range g.nodes {
		face := NodeID(i)
		if !g.nodes[face].live || g.HasMask(face, noStart) {
			continue
		}
		start := g.nodes[face].succ
		c0 := compareLexicalUV(g.nodes[face].uv, g.nodes[start].uv)
		g.ForEachNodeInFace(start, func(n NodeID) bool {
			g.SetMask(n, visited)
			c1 := compareLexicalUV(g.nodes[n].uv, g.nodes[g.nodes[n].succ].uv)
			switch {
			case c0 == c1:
			case c0 > 0:
				minDst = append(minDst, n)
			case c1 > 0:
				maxDst = append(maxDst, n)
			}
			c0 = c1
			return true
		})
	}
	return minDst, maxDst
}

// CollectLocalExtrema appends every node of a non-exterior face where either
// coordinate of the boundary direction changes sign.
func (g *Graph) CollectLocalExtrema(dst []NodeID) []NodeID {
	visited := g.GrabMask()
	defer g.ReturnMask(visited)

	both := visited | ExteriorEdge
	for i := range g.nodes {
		face := NodeID(i)
		if !g.nodes[face].live || g.HasMask(face, both) {
			continue
		}
		d0 := g.delta(face)
		g.ForEachNodeInFace(g.nodes[face].succ, func(n NodeID) bool {
			g.SetMask(n, visited)
			d1 := g.delta(n)
			up, vp := d0.X*d1.X, d0.Y*d1.Y
			if up < 0 || vp < 0 ||
				(up == 0 && (d0.X != 0 || d1.X != 0)) ||
				(vp == 0 && (d0.Y != 0 || d1.Y != 0)) {
				dst = append(dst, n)
			}
			d0 = d1
			return true
		})
	}
	return dst
}

// delta returns the vector along the edge starting at n.
func (g *Graph) delta(n NodeID) r2.Point {
	return g.nodes[g.nodes[n].succ].uv.Sub(g.nodes[n].uv)
}
