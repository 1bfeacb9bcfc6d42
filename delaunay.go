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

	"github.com/fogleman/delaunay"
	"github.com/golang/geo/r2"
)

// AddDelaunayTriangulation adds the Delaunay triangulation of points to the
// graph. Every triangle becomes a counterclockwise face; the convex hull is
// closed by a single exterior face whose nodes carry ExteriorEdge. Hull edges
// carry BoundaryEdge on both sides. It returns a node of the exterior face.
//
// Duplicate points are ignored by the triangulation.
func (g *Graph) AddDelaunayTriangulation(points []r2.Point) (NodeID, error) {
	pts := make([]delaunay.Point, 0, len(points))
	for _, p := range points {
		pts = append(pts, delaunay.Point{X: p.X, Y: p.Y})
	}
	tri, err := delaunay.Triangulate(pts)
	if err != nil {
		return NilNode, fmt.Errorf("vumesh: delaunay triangulation: %w", err)
	}
	if len(tri.Triangles) == 0 {
		return NilNode, fmt.Errorf("vumesh: delaunay triangulation of %d points is empty: %w", len(points), ErrDegenerateLoop)
	}

	uv := func(i int) r2.Point {
		return r2.Point{X: tri.Points[i].X, Y: tri.Points[i].Y}
	}
	next := func(s int) int {
		if s%3 == 2 {
			return s - 2
		}
		return s + 1
	}
	prev := func(s int) int {
		if s%3 == 0 {
			return s + 2
		}
		return s - 1
	}

	// All triangles share one orientation. Sum their areas to find it.
	area := 0.0
	for t := 0; t < len(tri.Triangles); t += 3 {
		area += cross(uv(tri.Triangles[t]), uv(tri.Triangles[t+1]), uv(tri.Triangles[t+2]))
	}
	ccw := area > 0

	// Side s of a triangle becomes node nodes[s]. from and to give the point
	// indexes at the two ends of the counterclockwise edge for that node.
	from := func(s int) int {
		if ccw {
			return tri.Triangles[s]
		}
		return tri.Triangles[next(s)]
	}
	to := func(s int) int {
		if ccw {
			return tri.Triangles[next(s)]
		}
		return tri.Triangles[s]
	}

	nodes := make([]NodeID, len(tri.Triangles))
	for s := range nodes {
		nodes[s] = g.newNode()
		g.nodes[nodes[s]].uv = uv(from(s))
	}
	for s, n := range nodes {
		nd := &g.nodes[n]
		if ccw {
			nd.succ = nodes[next(s)]
			nd.pred = nodes[prev(s)]
		} else {
			nd.succ = nodes[prev(s)]
			nd.pred = nodes[next(s)]
		}
		if h := tri.Halfedges[s]; h >= 0 {
			nd.mate = nodes[h]
		}
	}

	// Hull sides get exterior mates. Each hull point has exactly one exterior
	// node sitting at it.
	exteriorAt := map[int]NodeID{}
	var hull []int
	for s, h := range tri.Halfedges {
		if h >= 0 {
			continue
		}
		e := g.newNode()
		g.nodes[e].uv = uv(to(s))
		g.nodes[e].mask |= ExteriorEdge | BoundaryEdge
		g.nodes[e].mate = nodes[s]
		g.nodes[nodes[s]].mate = e
		g.nodes[nodes[s]].mask |= BoundaryEdge
		exteriorAt[to(s)] = e
		hull = append(hull, s)
	}
	for _, s := range hull {
		e := g.nodes[nodes[s]].mate
		succ, ok := exteriorAt[from(s)]
		if !ok {
			return NilNode, fmt.Errorf("vumesh: delaunay hull is not closed at point %d: %w", from(s), ErrInvalidGraph)
		}
		g.nodes[e].succ = succ
		g.nodes[succ].pred = e
	}
	return g.nodes[nodes[hull[0]]].mate, nil
}
