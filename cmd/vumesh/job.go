package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hajimehoshi/go-vumesh"
)

// Job describes one meshing run.
type Job struct {
	Contours    [][][]float64 `yaml:"contours"`
	Points      [][]float64   `yaml:"points,omitempty"`
	Slice       []float64     `yaml:"slice,omitempty"`
	Triangulate bool          `yaml:"triangulate"`
	MaxEdges    int           `yaml:"max_edges,omitempty"`
	MergeConvex bool          `yaml:"merge_convex"`
	Search      *SearchLimits `yaml:"search,omitempty"`
}

// SearchLimits overrides the super face search limits.
type SearchLimits struct {
	StepLimit  int `yaml:"step_limit"`
	DepthLimit int `yaml:"depth_limit"`
}

func loadJob(r io.Reader) (*Job, error) {
	var j Job
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("vumesh: decoding job: %w", err)
	}
	if len(j.Contours) == 0 && len(j.Points) == 0 {
		return nil, fmt.Errorf("vumesh: job has neither contours nor points")
	}
	for i, c := range j.Contours {
		if err := checkPoints(c); err != nil {
			return nil, fmt.Errorf("vumesh: contour %d: %w", i, err)
		}
	}
	if err := checkPoints(j.Points); err != nil {
		return nil, fmt.Errorf("vumesh: points: %w", err)
	}
	return &j, nil
}

func checkPoints(ps [][]float64) error {
	for i, p := range ps {
		if len(p) != 2 {
			return fmt.Errorf("point %d has %d coordinates, want 2", i, len(p))
		}
	}
	return nil
}

func toVertices(ps [][]float64) []vumesh.Vertex {
	vs := make([]vumesh.Vertex, len(ps))
	for i, p := range ps {
		vs[i] = vumesh.Vertex{X: p[0], Y: p[1]}
	}
	return vs
}

func (j *Job) options() vumesh.MeshOptions {
	opts := vumesh.MeshOptions{
		SliceAltitudes: j.Slice,
		Triangulate:    j.Triangulate,
		MaxEdges:       j.MaxEdges,
		MergeConvex:    j.MergeConvex,
	}
	if j.Search != nil {
		p := vumesh.DefaultFaceSearchParams(j.MaxEdges)
		if j.Search.StepLimit > 0 {
			p.StepLimit = j.Search.StepLimit
		}
		if j.Search.DepthLimit > 0 {
			p.DepthLimit = j.Search.DepthLimit
		}
		opts.Search = p
	}
	return opts
}

func (j *Job) run() ([][]int, []vumesh.Vertex, error) {
	m := vumesh.NewMesher()
	for _, c := range j.Contours {
		if err := m.AddContour(toVertices(c)); err != nil {
			return nil, nil, err
		}
	}
	if len(j.Points) > 0 {
		if err := m.AddPoints(toVertices(j.Points)); err != nil {
			return nil, nil, err
		}
	}
	return m.Mesh(j.options())
}
