// Command mazegen generates a maze artifact from the command line and
// writes it as JSON, without needing the API server or its backing
// services.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/beka-birhanu/labyrinth-api/maze"
	"github.com/beka-birhanu/labyrinth-api/solver"
)

func main() {
	width := flag.Int("width", 21, "maze width in cells")
	height := flag.Int("height", 21, "maze height in cells")
	seed := flag.Int64("seed", 0, "random seed, 0 for time-based")
	strategy := flag.String("strategy", "dfs", "carving strategy: dfs or prim")
	adversarial := flag.Bool("adversarial", false, "inject solver-hostile structures")
	output := flag.String("o", "", "output file, stdout when empty")
	show := flag.Bool("show", false, "print the maze as ASCII to stderr")
	flag.Parse()

	generator, err := maze.NewGenerator(maze.Config{
		Width:       *width,
		Height:      *height,
		Strategy:    maze.CarveStrategy(*strategy),
		Adversarial: *adversarial,
		Seed:        *seed,
	})
	if err != nil {
		fatal("invalid configuration: %v", err)
	}

	result, err := generator.Generate()
	if err != nil {
		fatal("generation failed: %v", err)
	}

	// Independent check with a solver that shares no state with the
	// generator; a failure here means the artifact is unusable.
	path, err := solver.BFS(result.Artifact)
	if err != nil {
		fatal("generated maze is not solvable: %v", err)
	}

	data, err := json.MarshalIndent(result.Artifact, "", "  ")
	if err != nil {
		fatal("encoding artifact: %v", err)
	}
	data = append(data, '\n')

	if *output == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			fatal("writing artifact: %v", err)
		}
	} else if err := os.WriteFile(*output, data, 0o644); err != nil {
		fatal("writing %s: %v", *output, err)
	}

	if *show {
		grid, _, _, err := result.Artifact.ToGrid()
		if err != nil {
			fatal("rendering maze: %v", err)
		}
		fmt.Fprintln(os.Stderr, grid.String())
	}

	fmt.Fprintf(os.Stderr, "%dx%d maze, start %v end %v, optimal path %d steps, placement %s, %d attempt(s)\n",
		result.Artifact.Width, result.Artifact.Height,
		result.Artifact.Start, result.Artifact.End,
		len(path)-1, result.Placement.Tier, result.Attempts)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "mazegen: "+format+"\n", args...)
	os.Exit(1)
}
