package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/rot-d/rotd"
)

func main() {
	var inverse bool
	flag.BoolVar(&inverse, "inverse", false, "apply the inverse of the rig")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr,
			"Usage: transform_points [flags] <rig.(json|yaml)> <points.(json|yaml)> <output.(json|yaml)>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	rigPath, pointsPath, outputPath := args[0], args[1], args[2]

	log.Println("Loading rig...")
	var rig rotd.Rig3[float64]
	essentials.Must(rotd.ReadStructured(rigPath, &rig))
	if inverse {
		rig = rig.Inv()
	}

	log.Println("Loading points...")
	var points []rotd.Vect3[float64]
	essentials.Must(rotd.ReadStructured(pointsPath, &points))

	log.Printf("Transforming %d points...", len(points))
	results := make([]rotd.Vect3[float64], len(points))
	essentials.ConcurrentMap(0, len(points), func(i int) {
		results[i] = rig.Apl(points[i])
	})

	log.Println("Saving output...")
	essentials.Must(rotd.WriteStructured(outputPath, results))
}
