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
	"container/heap"

	"github.com/golang/geo/r2"
)

type chainSide int

const (
	sideBoth chainSide = iota
	sideLeft
	sideRight
)

// sweepEvent is a vertex of a monotone face waiting to be swept.
type sweepEvent struct {
	node NodeID
	uv   r2.Point
	side chainSide
}

// pq orders sweep events from the lowest vertex up.
type pq []sweepEvent

func (p pq) Len() int {
	return len(p)
}

func (p pq) Less(i, j int) bool {
	return below(p[i].uv, p[j].uv)
}

func (p pq) Swap(i, j int) {
	p[i], p[j] = p[j], p[i]
}

func (p *pq) Push(x interface{}) {
	*p = append(*p, x.(sweepEvent))
}

func (p *pq) Pop() interface{} {
	old := *p
	x := old[len(old)-1]
	*p = old[:len(old)-1]
	return x
}

func pqNewPriorityQ(size int) *pq {
	p := make(pq, 0, size)
	heap.Init(&p)
	return &p
}

func (p *pq) insert(e sweepEvent) {
	heap.Push(p, e)
}

func (p *pq) extractMin() (sweepEvent, bool) {
	if len(*p) == 0 {
		return sweepEvent{}, false
	}
	return heap.Pop(p).(sweepEvent), true
}
