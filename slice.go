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

// searchSortedArrayAbove returns the index of the first entry of the
// ascending slice a that is strictly greater than v, or len(a).
func searchSortedArrayAbove(a []float64, v float64) int {
	for i, x := range a {
		if x > v {
			return i
		}
	}
	return len(a)
}

// lexicalMinInFace walks downhill from start until no neighbor on the face
// is below. For a v-monotone face the result is the unique lexical minimum.
func (g *Graph) lexicalMinInFace(start NodeID) NodeID {
	min := start
	for i := 0; i <= g.liveCount; i++ {
		if p := g.nodes[min].pred; g.below(p, min) {
			min = p
			continue
		}
		if s := g.nodes[min].succ; g.below(s, min) {
			min = s
			continue
		}
		break
	}
	return min
}

// SplitMonotoneFaceOnSortedHorizontalLines cuts the v-monotone face of face
// with a horizontal edge at each altitude that crosses its interior.
// altitudes must be ascending. masks[i] | fixedMask is set on both sides of
// the edge inserted at altitudes[i].
//
// One node per resulting sub-face is appended to dst, bottom up, so k
// effective altitudes append k+1 nodes. Altitudes at or below the face's
// minimum, at or above its maximum, or repeated are skipped.
//
// A boundary node already on an altitude is used as is. The right chain
// takes the first such node it meets and the left chain the last, so a
// horizontal boundary edge at an altitude is never doubled by a slice.
func (g *Graph) SplitMonotoneFaceOnSortedHorizontalLines(dst []NodeID, face NodeID, altitudes []float64, masks []Mask, fixedMask Mask) []NodeID {
	min := g.lexicalMinInFace(face)
	left, right := min, min

altitudes:
	for i := searchSortedArrayAbove(altitudes, g.V(min)); i < len(altitudes); i++ {
		a := altitudes[i]
		if i > 0 && altitudes[i-1] == a {
			continue
		}

		// Right chain, upward along succ.
		for g.V(right) < a {
			next := g.nodes[right].succ
			if next == left || !g.below(right, next) {
				break altitudes
			}
			if g.V(next) <= a {
				right = next
			} else {
				right, _ = g.SplitEdgeAtV(right, a)
			}
		}

		// Left chain, upward along pred, through any run already at a.
		for g.V(left) < a {
			prev := g.nodes[left].pred
			if prev == right || !g.below(left, prev) {
				break altitudes
			}
			if g.V(prev) <= a {
				left = prev
			} else {
				left, _ = g.SplitEdgeAtV(prev, a)
			}
		}
		for {
			prev := g.nodes[left].pred
			if prev == right || g.V(prev) != a || !g.below(left, prev) {
				break
			}
			left = prev
		}

		if left == right || g.nodes[right].succ == left || g.nodes[left].succ == right {
			break
		}
		if g.V(left) != a || g.V(right) != a {
			break
		}

		m := fixedMask
		if i < len(masks) {
			m |= masks[i]
		}
		newA, newB := g.Join(right, left)
		g.SetMask(newA, m)
		g.SetMask(newB, m)
		dst = append(dst, newA)
		left = newB
	}
	return append(dst, right)
}

// SplitMonotoneFaceOnSortedVerticalLines is the counterpart of
// SplitMonotoneFaceOnSortedHorizontalLines for a u-monotone face and
// ascending u positions. The whole graph is rotated by a quarter turn and
// back, which is exact, so the new nodes have exactly the given u.
func (g *Graph) SplitMonotoneFaceOnSortedVerticalLines(dst []NodeID, face NodeID, positions []float64, masks []Mask, fixedMask Mask) []NodeID {
	g.Rotate90CCW()
	defer g.Rotate90CW()
	return g.SplitMonotoneFaceOnSortedHorizontalLines(dst, face, positions, masks, fixedMask)
}

// SliceInteriorFaces slices every interior face at the given ascending
// altitudes. Each interior face must be v-monotone. It returns one node per
// resulting interior face.
func (g *Graph) SliceInteriorFaces(altitudes []float64, masks []Mask, fixedMask Mask) []NodeID {
	faces := g.CollectInteriorFaceLoops(nil)
	var out []NodeID
	for _, f := range faces {
		out = g.SplitMonotoneFaceOnSortedHorizontalLines(out, f, altitudes, masks, fixedMask)
	}
	Logger().Debug("sliced interior faces",
		"faces", len(faces), "altitudes", len(altitudes), "result", len(out))
	return out
}

// SliceInteriorFacesVertically slices every interior face at the given
// ascending u positions. Each interior face must be u-monotone.
func (g *Graph) SliceInteriorFacesVertically(positions []float64, masks []Mask, fixedMask Mask) []NodeID {
	g.Rotate90CCW()
	defer g.Rotate90CW()
	return g.SliceInteriorFaces(positions, masks, fixedMask)
}
