package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/rot-d/rotd"
)

func main() {
	var hmat bool
	var invert bool
	flag.BoolVar(&hmat, "hmat", false, "also print the 4x4 homogeneous matrix")
	flag.BoolVar(&invert, "invert", false, "print the inverse of the composite rig")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: compose_rigs [flags] <input.(json|yaml)>")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "The input is a list of rigs, applied first to last.")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Println("Loading rigs...")
	var rigs []rotd.Rig3[float64]
	essentials.Must(rotd.ReadStructured(args[0], &rigs))

	log.Printf("Composing %d rigs...", len(rigs))
	result := rotd.Compose(rigs...)
	if invert {
		result = result.Inv()
	}

	data, err := json.MarshalIndent(result, "", "  ")
	essentials.Must(err)
	fmt.Println(string(data))
	fmt.Println("Rotation:", result.Rot)

	if hmat {
		m := rotd.Rig3HMat(result)
		for i := 0; i < m.Rows(); i++ {
			fmt.Println(m.Row(i))
		}
	}
}
