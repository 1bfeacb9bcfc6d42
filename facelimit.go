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

const (
	DefaultStepLimit  = 100000
	DefaultDepthLimit = 1000
)

// FaceSearchParams configures a super face search and collects its running
// state. Super faces are groups of adjacent faces, joined across edges
// without BarrierMask, whose merged boundary has at most MaxSuperFaceSize
// edges. Each face is labeled with the id of its super face.
type FaceSearchParams struct {
	MaxSuperFaceSize int
	// StepLimit bounds the number of faces entered by all searches since
	// Steps was last reset.
	StepLimit int
	// DepthLimit bounds the number of faces on the search stack.
	DepthLimit  int
	BarrierMask Mask

	SuperFaceID   int
	SuperFaceSize int
	Steps         int
	MaxDepth      int
	DepthErrors   int
	StepErrors    int
}

// DefaultFaceSearchParams returns parameters with the default limits.
func DefaultFaceSearchParams(maxSuperFaceSize int) *FaceSearchParams {
	return &FaceSearchParams{
		MaxSuperFaceSize: maxSuperFaceSize,
		StepLimit:        DefaultStepLimit,
		DepthLimit:       DefaultDepthLimit,
		SuperFaceID:      -1,
	}
}

type searchFrame struct {
	face         NodeID
	cursor       NodeID
	finished     bool
	childPending bool
	idBefore     int
}

func (p *FaceSearchParams) isBarrier(g *Graph, n NodeID) bool {
	return g.HasMask(n, p.BarrierMask) || g.HasMask(g.Mate(n), p.BarrierMask)
}

// SearchFaceLimit assigns super face labels to the face of face and, through
// edges without the barrier mask, to every unlabeled face reachable from it.
// Faces already labeled (label >= 0) are skipped. The search always starts a
// new super face.
//
// Steps accumulates across calls sharing p. The search stops when more than
// StepLimit faces have been entered (StepErrors is incremented) and does not go deeper than DepthLimit faces
// (DepthErrors counts the skipped faces). Labels assigned before a stop
// remain.
func (g *Graph) SearchFaceLimit(face NodeID, p *FaceSearchParams) {
	if g.Label(face) >= 0 {
		return
	}
	p.SuperFaceSize = p.MaxSuperFaceSize
	if !g.enterSearchFace(face, p) {
		return
	}
	stack := []searchFrame{{face: face, cursor: face}}
	if p.MaxDepth < 1 {
		p.MaxDepth = 1
	}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if f.childPending {
			f.childPending = false
			if p.SuperFaceID != f.idBefore {
				// The child began a new super face. Do not let the next
				// neighbor extend it across this face.
				p.SuperFaceSize = p.MaxSuperFaceSize
			}
		}
		if f.finished {
			stack = stack[:len(stack)-1]
			continue
		}

		n := f.cursor
		f.cursor = g.Succ(n)
		if f.cursor == f.face {
			f.finished = true
		}
		if p.isBarrier(g, n) {
			continue
		}
		m := g.Mate(n)
		if g.Label(m) >= 0 {
			continue
		}
		if len(stack) >= p.DepthLimit {
			p.DepthErrors++
			continue
		}

		f.idBefore = p.SuperFaceID
		f.childPending = true
		if !g.enterSearchFace(m, p) {
			return
		}
		stack = append(stack, searchFrame{face: m, cursor: m})
		if len(stack) > p.MaxDepth {
			p.MaxDepth = len(stack)
		}
	}
}

// enterSearchFace adds the face of face to the current super face, or to a
// new one if it does not fit, and labels its nodes. It returns false if the
// step limit is exceeded.
func (g *Graph) enterSearchFace(face NodeID, p *FaceSearchParams) bool {
	p.Steps++
	if p.Steps > p.StepLimit {
		p.StepErrors++
		Logger().Warn("super face search exceeded step limit",
			"node", face, "limit", p.StepLimit)
		return false
	}

	n := g.FaceLoopSize(face)
	if p.SuperFaceSize+n > p.MaxSuperFaceSize {
		p.SuperFaceID++
		p.SuperFaceSize = 0
	}
	p.SuperFaceSize += n

	// Edges shared with faces already in this super face disappear from
	// its boundary.
	id := p.SuperFaceID
	g.ForEachNodeInFace(face, func(x NodeID) bool {
		if g.Label(g.Mate(x)) == id && !p.isBarrier(g, x) {
			p.SuperFaceSize -= 2
		}
		return true
	})
	g.ForEachNodeInFace(face, func(x NodeID) bool {
		g.SetLabel(x, id)
		return true
	})
	return true
}

// FaceLimitStats reports the result of SplitMonotoneFacesToEdgeLimit.
type FaceLimitStats struct {
	Triangulated          int
	TriangulationFailures int
	SuperFaces            int
	RemovedEdges          int
	StepErrors            int
	DepthErrors           int
	// RemovalSkipped is set when a search limit was hit, in which case the
	// labels cannot be trusted and no edge is removed.
	RemovalSkipped bool
}

// SplitMonotoneFacesToEdgeLimit splits the interior faces so that no face has
// more than maxEdge edges. All existing edges are kept. Faces that are too
// large are triangulated, then triangles are grouped into super faces of at
// most maxEdge edges and the new edges inside each super face are removed
// again.
//
// maxEdge values below 3 are raised to 3. p may be nil to use the defaults;
// otherwise its limits are used and its counters are updated. The barrier
// mask of p is replaced by a mask covering the pre-existing edges.
func (g *Graph) SplitMonotoneFacesToEdgeLimit(maxEdge int, p *FaceSearchParams) FaceLimitStats {
	if maxEdge < 3 {
		maxEdge = 3
	}
	if p == nil {
		p = DefaultFaceSearchParams(maxEdge)
	}
	p.MaxSuperFaceSize = maxEdge

	var stats FaceLimitStats

	permanent := g.GrabMask()
	defer g.ReturnMask(permanent)
	g.SetMaskInSet(permanent)

	for _, f := range g.CollectInteriorFaceLoops(nil) {
		if g.FaceLoopSize(f) <= maxEdge {
			continue
		}
		if g.TriangulateByVerticalSweep(g.FindExtrema(f).MinV) {
			stats.Triangulated++
		} else {
			stats.TriangulationFailures++
		}
	}

	g.SetLabelInSet(-1)
	p.BarrierMask = permanent
	firstID := p.SuperFaceID
	p.Steps = 0
	stepErrors, depthErrors := p.StepErrors, p.DepthErrors
	for i := range g.nodes {
		n := NodeID(i)
		if !g.nodes[n].live || g.Label(n) >= 0 {
			continue
		}
		g.SearchFaceLimit(n, p)
		if p.StepErrors > stepErrors {
			break
		}
	}
	stats.SuperFaces = p.SuperFaceID - firstID
	stats.StepErrors = p.StepErrors - stepErrors
	stats.DepthErrors = p.DepthErrors - depthErrors

	if stats.StepErrors > 0 || stats.DepthErrors > 0 {
		stats.RemovalSkipped = true
		Logger().Warn("edge limit split left faces triangulated",
			"stepErrors", stats.StepErrors, "depthErrors", stats.DepthErrors)
		return stats
	}

	stats.RemovedEdges = g.freeEdgesWhere(func(n, m NodeID) bool {
		return !g.HasMask(n, permanent) && !g.HasMask(m, permanent) &&
			g.Label(n) == g.Label(m)
	})
	Logger().Debug("split faces to edge limit",
		"maxEdge", maxEdge, "triangulated", stats.Triangulated,
		"superFaces", stats.SuperFaces, "removedEdges", stats.RemovedEdges)
	return stats
}
