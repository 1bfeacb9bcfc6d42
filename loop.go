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
)

// MakeLoop adds a closed polygon to the graph and returns a node on its
// interior face. The polygon may be given in either orientation; the
// interior face is always counterclockwise. A repeated closing point and
// repeated consecutive points are dropped.
//
// interiorMask is set on the nodes of the interior face, exteriorMask on the
// nodes of the exterior face.
func (g *Graph) MakeLoop(points []r2.Point, interiorMask, exteriorMask Mask) (NodeID, error) {
	ps := make([]r2.Point, 0, len(points))
	for _, p := range points {
		if len(ps) > 0 && ps[len(ps)-1] == p {
			continue
		}
		ps = append(ps, p)
	}
	for len(ps) > 1 && ps[0] == ps[len(ps)-1] {
		ps = ps[:len(ps)-1]
	}
	if len(ps) < 3 {
		return NilNode, fmt.Errorf("vumesh: loop has %d distinct points: %w", len(ps), ErrDegenerateLoop)
	}

	area := 0.0
	for i, p := range ps {
		q := ps[(i+1)%len(ps)]
		area += p.Cross(q)
	}
	if area == 0 {
		return NilNode, fmt.Errorf("vumesh: loop has zero area: %w", ErrDegenerateLoop)
	}
	if area < 0 {
		for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
			ps[i], ps[j] = ps[j], ps[i]
		}
	}

	// inner[i] sits at ps[i] and runs to ps[i+1]. outer[i] is its mate and
	// runs back from ps[i+1] to ps[i].
	n := len(ps)
	inner := make([]NodeID, n)
	outer := make([]NodeID, n)
	for i := range ps {
		inner[i], outer[i] = g.MakePair()
	}
	for i := range ps {
		next := (i + 1) % n
		prev := (i + n - 1) % n

		a := &g.nodes[inner[i]]
		a.uv = ps[i]
		a.succ = inner[next]
		a.pred = inner[prev]
		a.mask |= interiorMask

		b := &g.nodes[outer[i]]
		b.uv = ps[next]
		b.succ = outer[prev]
		b.pred = outer[next]
		b.mask |= exteriorMask
	}
	return inner[0], nil
}
