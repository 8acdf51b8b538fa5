// maskinfo prints the vital signs of a single label mask: dimensions,
// memory footprint, and the pixel count of every class present.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/akamensky/argparse"
	"github.com/terralab/segeval/pkg/catalog"
	"github.com/terralab/segeval/pkg/kibi"
	"github.com/terralab/segeval/pkg/raster"
)

func main() {
	parser := argparse.NewParser("maskinfo", "Inspect a segmentation label mask")
	input := parser.String("i", "input", &argparse.Options{Help: "Label mask image file", Required: true})
	classesPath := parser.String("c", "classes", &argparse.Options{Help: "JSON class catalog (default: built-in 10-class land-cover catalog)", Required: false})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	cat := catalog.Default()
	if *classesPath != "" {
		cat, err = catalog.LoadFile(*classesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	r, err := raster.LoadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%v: %vx%v, %v pixels, %v\n", *input, r.Width, r.Height, r.NumPixels(), kibi.FormatBytes(r.MemoryBytes()))

	hist := r.Histogram()
	ids := make([]int, 0, len(hist))
	for id := range hist {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	for _, id := range ids {
		count := hist[uint8(id)]
		pct := 100 * float64(count) / float64(r.NumPixels())
		fmt.Printf("  %2v %-12v %10v  %5.1f%%\n", id, cat.Name(id), count, pct)
	}

	dominant, count := r.DominantClass()
	fmt.Printf("Dominant class: %v (%v pixels)\n", cat.Name(int(dominant)), count)
	if int(r.MaxClass()) >= cat.K() {
		fmt.Printf("Warning: class %v exceeds the %v-class catalog\n", r.MaxClass(), cat.K())
	}
}
