//go:build example
// +build example

package main

import (
	"fmt"

	"github.com/hajimehoshi/go-vumesh"
)

func main() {
	contour := []vumesh.Vertex{
		{X: 0.0, Y: 0.0},
		{X: 2.0, Y: 0.5},
		{X: 3.0, Y: 2.0},
		{X: 1.5, Y: 3.0},
		{X: -0.5, Y: 1.5},
	}
	m := vumesh.NewMesher()
	if err := m.AddContour(contour); err != nil {
		panic(err)
	}
	p, v, err := m.Mesh(vumesh.MeshOptions{
		SliceAltitudes: []float64{1.0, 2.0},
		Triangulate:    true,
		MergeConvex:    true,
	})
	if err != nil {
		panic(err)
	}
	for _, poly := range p {
		for i, idx := range poly {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Printf("(%.1f, %.1f)", v[idx].X, v[idx].Y)
		}
		fmt.Println()
	}
}
