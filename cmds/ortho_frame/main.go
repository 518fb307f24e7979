package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/rot-d/rotd"
)

func main() {
	var euler bool
	flag.BoolVar(&euler, "euler", false, "also print yaw, pitch and roll of the frame rotation")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: ortho_frame [flags] <x,y,z> [<x,y,z> ...]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "The first vector becomes the Z axis of the frame, the second")
		fmt.Fprintln(os.Stderr, "one is used for the Y axis, and the X axis is filled in.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	var vs []rotd.Vect3[float64]
	for _, arg := range args {
		var comps []float64
		for _, part := range strings.Split(arg, ",") {
			x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			essentials.Must(err)
			comps = append(comps, x)
		}
		if len(comps) != 3 {
			essentials.Die("expected 3 components in", arg)
		}
		vs = append(vs, rotd.NewVect[rotd.D3](comps...))
	}

	frame := rotd.OrthoFromVects(vs...)
	for i, axis := range frame.Axes() {
		fmt.Printf("axis %d: %v\n", i, axis)
	}

	rot := rotd.Rot3FromOrtho(frame)
	fmt.Println("rotation:", rot)
	fmt.Println("torque:", rot.ToTorq())
	if euler {
		yaw, pitch, roll := rot.EulerAngles()
		fmt.Printf("yaw=%f pitch=%f roll=%f\n", yaw, pitch, roll)
	}
}
