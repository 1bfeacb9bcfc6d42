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
	"errors"
	"math/bits"
)

// Mask is a set of flag bits carried by each node.
type Mask uint32

const (
	// ExteriorEdge marks nodes on the outside of a boundary loop.
	ExteriorEdge Mask = 1 << iota
	// BoundaryEdge marks both sides of an input boundary edge.
	BoundaryEdge
	// USlice marks edges inserted by slicing at constant u.
	USlice
	// VSlice marks edges inserted by slicing at constant v.
	VSlice
	// PermanentEdge marks edges that later passes must keep.
	PermanentEdge
)

// The high half of the mask word is lent out by GrabMask.
const poolMasks Mask = 0xffff0000

var (
	ErrDegenerateLoop = errors.New("vumesh: degenerate loop")
	ErrNotMonotone    = errors.New("vumesh: face is not monotone")
	ErrInvalidGraph   = errors.New("vumesh: invalid graph")
)

func assert(cond bool) {
	if !cond {
		panic("vumesh: assertion error")
	}
}

func (g *Graph) HasMask(id NodeID, m Mask) bool { return g.nodes[id].mask&m != 0 }
func (g *Graph) SetMask(id NodeID, m Mask)      { g.nodes[id].mask |= m }
func (g *Graph) ClearMask(id NodeID, m Mask)    { g.nodes[id].mask &^= m }
func (g *Graph) Mask(id NodeID) Mask            { return g.nodes[id].mask }

// SetMaskAroundFace sets m on every node of the face of start.
func (g *Graph) SetMaskAroundFace(start NodeID, m Mask) {
	g.ForEachNodeInFace(start, func(n NodeID) bool {
		g.nodes[n].mask |= m
		return true
	})
}

// ClearMaskAroundFace clears m on every node of the face of start.
func (g *Graph) ClearMaskAroundFace(start NodeID, m Mask) {
	g.ForEachNodeInFace(start, func(n NodeID) bool {
		g.nodes[n].mask &^= m
		return true
	})
}

// SetMaskInSet sets m on every live node.
func (g *Graph) SetMaskInSet(m Mask) {
	for i := range g.nodes {
		if g.nodes[i].live {
			g.nodes[i].mask |= m
		}
	}
}

// ClearMaskInSet clears m on every live node.
func (g *Graph) ClearMaskInSet(m Mask) {
	for i := range g.nodes {
		g.nodes[i].mask &^= m
	}
}

// CountMaskInSet returns the number of live nodes with any bit of m set.
func (g *Graph) CountMaskInSet(m Mask) int {
	c := 0
	for i := range g.nodes {
		if g.nodes[i].live && g.nodes[i].mask&m != 0 {
			c++
		}
	}
	return c
}

// GrabMask borrows a free bit from the graph's pool. The bit is cleared on
// every node before it is returned. It panics if the pool is exhausted.
// Release the bit with ReturnMask, typically with defer.
func (g *Graph) GrabMask() Mask {
	assert(g.maskPool != 0)
	m := Mask(1) << bits.TrailingZeros32(uint32(g.maskPool))
	g.maskPool &^= m
	g.ClearMaskInSet(m)
	return m
}

// ReturnMask gives m back to the pool. m must be a single bit that is on loan.
func (g *Graph) ReturnMask(m Mask) {
	assert(bits.OnesCount32(uint32(m)) == 1)
	assert(m&poolMasks != 0 && g.maskPool&m == 0)
	g.maskPool |= m
}
