package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/rot-d/rotd"
)

func main() {
	var axisStr string
	var angle float64
	var transStr string
	var rigPath string
	flag.StringVar(&axisStr, "axis", "0,0,1", "rotation axis as x,y,z")
	flag.Float64Var(&angle, "angle", 0, "rotation angle in degrees")
	flag.StringVar(&transStr, "trans", "0,0,0", "translation as x,y,z")
	flag.StringVar(&rigPath, "rig", "", "path to a rig file, overriding the other flags")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: transform_mesh [flags] <input.stl> <output.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	var rig rotd.Rig3[float64]
	if rigPath != "" {
		essentials.Must(rotd.ReadStructured(rigPath, &rig))
	} else {
		axisVect, err := parseVect(axisStr)
		essentials.Must(err)
		trans, err := parseVect(transStr)
		essentials.Must(err)
		axis, ok := rotd.Normal(axisVect)
		if !ok {
			essentials.Die("rotation axis must be non-zero")
		}
		rig = rotd.NewRig(trans, rotd.Rot3AngleAxis(angle*math.Pi/180, axis))
	}
	log.Println("Using rig:", rig)

	log.Println("Loading mesh...")
	tris, err := rotd.Load(inputPath, model3d.ReadSTL)
	essentials.Must(err)
	mesh := model3d.NewMeshTriangles(tris)

	log.Println("Transforming mesh...")
	mesh = mesh.MapCoords(rotd.Rig3CoordFunc(rig))

	log.Println("Saving mesh...")
	essentials.Must(mesh.SaveGroupedSTL(outputPath))
}

func parseVect(s string) (rotd.Vect3[float64], error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return rotd.Vect3[float64]{}, errors.Errorf("expected 3 components in %q", s)
	}
	var comps [3]float64
	for i, part := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return rotd.Vect3[float64]{}, errors.Wrapf(err, "parse %q", s)
		}
		comps[i] = x
	}
	return rotd.XYZ(comps[0], comps[1], comps[2]), nil
}
