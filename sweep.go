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

// checkMonotoneV reports whether start is the lexical v-minimum of a
// v-monotone face. The walks up from start along succ and along pred must
// end at the same node.
func (g *Graph) checkMonotoneV(start NodeID) bool {
	if !g.below(start, g.nodes[start].pred) || !g.below(start, g.nodes[start].succ) {
		return false
	}
	right := g.chainTop(start, func(n NodeID) NodeID { return g.nodes[n].succ })
	left := g.chainTop(start, func(n NodeID) NodeID { return g.nodes[n].pred })
	return left == right
}

func (g *Graph) chainTop(start NodeID, step func(NodeID) NodeID) NodeID {
	n := start
	for i := 0; i <= g.liveCount; i++ {
		next := step(n)
		if next == start || !g.below(n, next) {
			break
		}
		n = next
	}
	return n
}

// TriangulateByVerticalSweep triangulates the face of start, which must be
// the lexical v-minimum of a counterclockwise v-monotone face. An n-gon
// becomes n-2 triangles.
//
// If start does not meet that condition, the face is handed to
// TriangulateFromCentroid with checking enabled, and its result is returned.
// It reports whether the face was triangulated.
func (g *Graph) TriangulateByVerticalSweep(start NodeID) bool {
	n := g.FaceLoopSize(start)
	if n < 3 {
		return false
	}
	if n == 3 {
		return true
	}
	if !g.checkMonotoneV(start) {
		return g.TriangulateFromCentroid(start, true)
	}

	q := pqNewPriorityQ(n)
	q.insert(sweepEvent{node: start, uv: g.UV(start), side: sideBoth})
	top := g.chainTop(start, func(n NodeID) NodeID { return g.nodes[n].succ })
	for p := g.nodes[start].succ; p != top; p = g.nodes[p].succ {
		q.insert(sweepEvent{node: p, uv: g.UV(p), side: sideRight})
	}
	for p := g.nodes[start].pred; p != top; p = g.nodes[p].pred {
		q.insert(sweepEvent{node: p, uv: g.UV(p), side: sideLeft})
	}
	q.insert(sweepEvent{node: top, uv: g.UV(top), side: sideBoth})

	verts := make([]sweepEvent, 0, n)
	for {
		e, ok := q.extractMin()
		if !ok {
			break
		}
		verts = append(verts, e)
	}

	s := &sweep{g: g, verts: verts, rep: make([]NodeID, len(verts))}
	for i, v := range verts {
		s.rep[i] = v.node
	}
	s.run()
	return true
}

// sweep holds the state of one monotone triangulation. verts are the face
// vertices from bottom to top. rep[i] is the node at verts[i] on the part of
// the face that is not yet triangulated.
type sweep struct {
	g     *Graph
	verts []sweepEvent
	rep   []NodeID
	stack []int
}

func (s *sweep) run() {
	n := len(s.verts)
	s.stack = append(s.stack[:0], 0, 1)
	for j := 2; j < n-1; j++ {
		k := len(s.stack) - 1
		if s.verts[j].side != s.verts[s.stack[k]].side {
			// Every stacked vertex is visible from j. Cut off the
			// triangles from the bottom of the stack upward.
			for i := 1; i <= k; i++ {
				s.diagonal(j, s.stack[i])
			}
			s.stack = append(s.stack[:0], s.stack[k], j)
			continue
		}

		last := s.stack[k]
		s.stack = s.stack[:k]
		for len(s.stack) > 0 {
			t := s.stack[len(s.stack)-1]
			if !s.convex(t, last, j) {
				break
			}
			s.diagonal(j, t)
			last = t
			s.stack = s.stack[:len(s.stack)-1]
		}
		s.stack = append(s.stack, last, j)
	}

	// The top sees everything left on the stack.
	for i := len(s.stack) - 2; i >= 1; i-- {
		s.diagonal(n-1, s.stack[i])
	}
}

// convex reports whether the chain vertex mid, between lower vertex low and
// upper vertex high on the same chain, turns toward the face interior, so
// that the diagonal from high to low is inside the face.
func (s *sweep) convex(low, mid, high int) bool {
	a, b, c := s.verts[low].uv, s.verts[mid].uv, s.verts[high].uv
	if s.verts[high].side == sideLeft {
		return cross(c, b, a) > 0
	}
	return cross(a, b, c) > 0
}

// diagonal joins vertices i and j and keeps rep pointing at the part of the
// face that still has to be triangulated. Each diagonal cuts a triangle off.
func (s *sweep) diagonal(i, j int) {
	g := s.g
	newA, newB := g.Join(s.rep[i], s.rep[j])
	if g.Succ(g.Succ(g.Succ(newA))) == newA {
		// newA's side is the triangle; the rest of the face holds newB.
		s.rep[j] = newB
	} else {
		s.rep[i] = newA
	}
}

// TriangulateFromCentroid fans the face of start from a new vertex at its
// centroid. Faces with fewer than four vertices are left as they are.
//
// With check set, the face is left untouched and false is returned if any
// boundary edge has the centroid on its right, since the fan would then
// overlap itself. Faces with zero area also fail.
func (g *Graph) TriangulateFromCentroid(start NodeID, check bool) bool {
	var boundary []NodeID
	g.ForEachNodeInFace(start, func(n NodeID) bool {
		boundary = append(boundary, n)
		return true
	})
	if len(boundary) < 4 {
		return true
	}
	c, _, ok := g.Centroid(start)
	if !ok {
		return false
	}
	if check {
		for _, p := range boundary {
			if cross(g.UV(p), g.UV(g.nodes[p].succ), c) < 0 {
				return false
			}
		}
	}
	w := 0.0
	for _, p := range boundary {
		w += g.W(p)
	}
	w /= float64(len(boundary))

	hub, spoke := g.MakePair()
	g.setCoordinates(hub, c, w)
	g.copyCoordinates(spoke, boundary[0])
	g.VertexTwist(spoke, boundary[0])
	for _, p := range boundary[1:] {
		hub, _ = g.Join(hub, p)
	}
	return true
}

// TriangulateMonotoneInteriorFaces triangulates every interior face with
// more than three edges, starting the sweep at each face's lexical
// v-minimum. It returns the number of faces that could not be triangulated.
func (g *Graph) TriangulateMonotoneInteriorFaces() (failed int) {
	faces := g.CollectInteriorFaceLoops(nil)
	for _, f := range faces {
		if g.FaceLoopSize(f) <= 3 {
			continue
		}
		start := g.FindExtrema(f).MinV
		if !g.TriangulateByVerticalSweep(start) {
			failed++
			Logger().Warn("face could not be triangulated",
				"node", start, "edges", g.FaceLoopSize(start))
		}
	}
	Logger().Debug("triangulated interior faces", "faces", len(faces), "failed", failed)
	return failed
}
