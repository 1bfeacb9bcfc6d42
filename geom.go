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

// Coordinates are compared with exact float equality throughout. Nodes that
// must be "on the same line" get bit-identical coordinates when they are
// created (see SplitEdgeAtV), so equality here is topological, not
// numerical. Do not replace these comparisons with tolerance tests.

// below reports whether a is below b in lexical order: smaller v, or equal v
// and smaller u.
func below(a, b r2.Point) bool {
	return a.Y < b.Y || (a.Y == b.Y && a.X < b.X)
}

// leftOf reports whether a is left of b: smaller u, or equal u and larger v.
func leftOf(a, b r2.Point) bool {
	return a.X < b.X || (a.X == b.X && a.Y > b.Y)
}

// compareLexicalUV orders points the way below does: by v, then u.
func compareLexicalUV(a, b r2.Point) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

// cross returns the cross product of the vectors a->b and b->c. It is
// positive when the path a, b, c turns left.
func cross(a, b, c r2.Point) float64 {
	return b.Sub(a).Cross(c.Sub(b))
}

func interpolate(a, f, b float64) float64 {
	return a + f*(b-a)
}

func interpolateUV(a r2.Point, f float64, b r2.Point) r2.Point {
	return a.Add(b.Sub(a).Mul(f))
}

func (g *Graph) below(a, b NodeID) bool {
	return below(g.nodes[a].uv, g.nodes[b].uv)
}

func (g *Graph) cross(a, b, c NodeID) float64 {
	return cross(g.nodes[a].uv, g.nodes[b].uv, g.nodes[c].uv)
}

// Rotate90CCW rotates every node of the graph 90 degrees counterclockwise
// about the origin. The rotation is exact.
func (g *Graph) Rotate90CCW() {
	for i := range g.nodes {
		p := g.nodes[i].uv
		g.nodes[i].uv = r2.Point{X: -p.Y, Y: p.X}
	}
}

// Rotate90CW undoes Rotate90CCW exactly.
func (g *Graph) Rotate90CW() {
	for i := range g.nodes {
		p := g.nodes[i].uv
		g.nodes[i].uv = r2.Point{X: p.Y, Y: -p.X}
	}
}
