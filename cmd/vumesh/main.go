package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/go-vumesh"
)

var (
	jobPath string
	verbose bool
)

func init() {
	flag.StringVar(&jobPath, "job", jobPath, "path of the YAML job file")
	flag.BoolVar(&verbose, "v", verbose, "log pass statistics to stderr")
}

func main() {
	flag.Parse()
	if jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if verbose {
		vumesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	f, err := os.Open(jobPath)
	if err != nil {
		log.Fatal(err)
	}
	job, err := loadJob(f)
	f.Close()
	if err != nil {
		log.Fatal(err)
	}

	polygons, vertices, err := job.run()
	if err != nil {
		log.Fatal(err)
	}
	for _, poly := range polygons {
		for i, idx := range poly {
			if i > 0 {
				fmt.Print(", ")
			}
			v := vertices[idx]
			fmt.Printf("(%g, %g)", v.X, v.Y)
		}
		fmt.Println()
	}
	fmt.Printf("%d faces, %d vertices\n", len(polygons), len(vertices))
}
