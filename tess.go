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
	"sort"

	"github.com/golang/geo/r2"
)

type Vertex struct {
	X float64
	Y float64
}

// MeshOptions selects the passes run by Mesher.Mesh, in field order.
type MeshOptions struct {
	// SliceAltitudes, if not empty, cuts every face at these ascending
	// v values. Every face must be v-monotone.
	SliceAltitudes []float64
	// Triangulate triangulates every face.
	Triangulate bool
	// MaxEdges, if positive, splits faces to at most MaxEdges edges.
	MaxEdges int
	// MergeConvex merges adjacent faces while the result stays convex.
	// Contour and slice edges are kept.
	MergeConvex bool
	// Search overrides the super face search limits used with MaxEdges.
	Search *FaceSearchParams
}

// Mesher builds a graph from contours and point clouds and turns it into
// polygons.
type Mesher struct {
	g        *Graph
	contours int
}

func NewMesher() *Mesher {
	return &Mesher{
		g: NewGraph(),
	}
}

// Graph returns the graph being built.
func (m *Mesher) Graph() *Graph {
	return m.g
}

// AddContour adds a closed polygon as a separate region. Contours must not
// cross or contain each other.
func (m *Mesher) AddContour(contour []Vertex) error {
	ps := make([]r2.Point, len(contour))
	for i, v := range contour {
		ps[i] = r2.Point{X: v.X, Y: v.Y}
	}
	if _, err := m.g.MakeLoop(ps, BoundaryEdge|PermanentEdge, ExteriorEdge|BoundaryEdge|PermanentEdge); err != nil {
		return fmt.Errorf("vumesh: contour %d: %w", m.contours, err)
	}
	m.contours++
	return nil
}

// AddPoints adds the Delaunay triangulation of points. Its hull is treated
// like a contour.
func (m *Mesher) AddPoints(points []Vertex) error {
	ps := make([]r2.Point, len(points))
	for i, v := range points {
		ps[i] = r2.Point{X: v.X, Y: v.Y}
	}
	if _, err := m.g.AddDelaunayTriangulation(ps); err != nil {
		return err
	}
	return nil
}

// Mesh runs the passes selected by opts and returns one polygon of vertex
// indices per interior face, counterclockwise and starting at the face's
// lowest vertex, along with the vertex table. Polygons are ordered by their
// first vertex, bottom up.
func (m *Mesher) Mesh(opts MeshOptions) ([][]int, []Vertex, error) {
	g := m.g
	if g.NodeCount() == 0 {
		return nil, nil, nil
	}

	if len(opts.SliceAltitudes) > 0 {
		if !sort.Float64sAreSorted(opts.SliceAltitudes) {
			return nil, nil, fmt.Errorf("vumesh: slice altitudes are not ascending")
		}
		for _, f := range g.CollectInteriorFaceLoops(nil) {
			if start := g.FindExtrema(f).MinV; !g.checkMonotoneV(start) {
				return nil, nil, fmt.Errorf("vumesh: slicing face at (%g, %g): %w", g.U(start), g.V(start), ErrNotMonotone)
			}
		}
		g.SliceInteriorFaces(opts.SliceAltitudes, nil, VSlice)
	}

	if opts.Triangulate {
		if failed := g.TriangulateMonotoneInteriorFaces(); failed > 0 {
			return nil, nil, fmt.Errorf("vumesh: %d faces could not be triangulated: %w", failed, ErrNotMonotone)
		}
	}

	if opts.MaxEdges > 0 {
		stats := g.SplitMonotoneFacesToEdgeLimit(opts.MaxEdges, opts.Search)
		if stats.TriangulationFailures > 0 {
			return nil, nil, fmt.Errorf("vumesh: %d faces could not be split: %w", stats.TriangulationFailures, ErrNotMonotone)
		}
	}

	if opts.MergeConvex {
		g.RemoveEdgesToExpandConvexFaces(ExteriorEdge | BoundaryEdge | VSlice)
	}

	if err := g.Check(); err != nil {
		return nil, nil, err
	}
	polygons, vertices := m.output()
	return polygons, vertices, nil
}

func (m *Mesher) output() ([][]int, []Vertex) {
	g := m.g
	faces := g.CollectInteriorFaceLoops(nil)
	for i, f := range faces {
		faces[i] = g.FindExtrema(f).MinV
	}
	sort.Slice(faces, func(i, j int) bool {
		a, b := g.UV(faces[i]), g.UV(faces[j])
		if a == b {
			// Faces sharing the lowest vertex: order by the next vertex.
			return below(g.UV(g.Succ(faces[i])), g.UV(g.Succ(faces[j])))
		}
		return below(a, b)
	})

	index := map[r2.Point]int{}
	var vertices []Vertex
	polygons := make([][]int, 0, len(faces))
	for _, f := range faces {
		var poly []int
		g.ForEachNodeInFace(f, func(n NodeID) bool {
			p := g.UV(n)
			i, ok := index[p]
			if !ok {
				i = len(vertices)
				index[p] = i
				vertices = append(vertices, Vertex{X: p.X, Y: p.Y})
			}
			poly = append(poly, i)
			return true
		})
		polygons = append(polygons, poly)
	}
	return polygons, vertices
}
