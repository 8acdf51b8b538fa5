package main

import (
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/cyclopcam/logs"
	"github.com/terralab/segeval/pkg/catalog"
	"github.com/terralab/segeval/pkg/confusion"
	"github.com/terralab/segeval/pkg/heatmap"
	"github.com/terralab/segeval/pkg/kibi"
	"github.com/terralab/segeval/pkg/manifest"
	"github.com/terralab/segeval/pkg/raster"
	"github.com/terralab/segeval/pkg/report"
)

func main() {
	logger, err := logs.NewLog()
	if err != nil {
		panic(err)
	}

	parser := argparse.NewParser("segeval", "Score segmentation predictions against ground-truth label masks")
	manifestPath := parser.String("m", "manifest", &argparse.Options{Help: "CSV manifest with truth,prediction path columns", Required: true})
	classesPath := parser.String("c", "classes", &argparse.Options{Help: "JSON class catalog (default: built-in 10-class land-cover catalog)", Required: false})
	heatmapPath := parser.String("o", "heatmap", &argparse.Options{Help: "Write confusion matrix heatmap PNG to this path", Required: false})
	reportPath := parser.String("r", "report", &argparse.Options{Help: "Write JSON report to this path", Required: false})
	normalized := parser.Flag("n", "normalized", &argparse.Options{Help: "Render the heatmap row-normalized instead of raw counts"})
	annotate := parser.Flag("a", "annotate", &argparse.Options{Help: "Draw cell values on the heatmap"})
	maxMem := parser.String("", "maxmem", &argparse.Options{Help: "Abort if the loaded masks exceed this memory budget (eg '2gb')", Required: false})
	err = parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	fail := func(format string, args ...interface{}) {
		logger.Errorf(format, args...)
		os.Exit(1)
	}

	memBudget := int64(0)
	if *maxMem != "" {
		memBudget, err = kibi.ParseBytes(*maxMem)
		if err != nil {
			fail("Invalid --maxmem '%v'", *maxMem)
		}
	}

	cat := catalog.Default()
	if *classesPath != "" {
		cat, err = catalog.LoadFile(*classesPath)
		if err != nil {
			fail("%v", err)
		}
	}

	entries, err := manifest.Load(*manifestPath)
	if err != nil {
		fail("%v", err)
	}
	logger.Infof("Manifest '%v': %v image pairs, %v classes", *manifestPath, len(entries), cat.K())

	pairs := make([]confusion.Pair, 0, len(entries))
	residentBytes := int64(0)
	for _, e := range entries {
		truth, err := raster.LoadFile(e.TruthPath)
		if err != nil {
			fail("%v", err)
		}
		pred, err := raster.LoadFile(e.PredictionPath)
		if err != nil {
			fail("%v", err)
		}
		residentBytes += truth.MemoryBytes() + pred.MemoryBytes()
		if memBudget != 0 && residentBytes > memBudget {
			fail("Loaded masks exceed memory budget of %v after pair %v", kibi.FormatBytes(memBudget), e.Index)
		}
		pairs = append(pairs, confusion.Pair{
			Index:      e.Index,
			Truth:      truth,
			Prediction: pred,
		})
	}
	logger.Infof("Loaded %v pairs (%v resident)", len(pairs), kibi.FormatBytes(residentBytes))

	evaluator := confusion.NewEvaluator(logger, cat.K())
	res, err := evaluator.EvaluatePairs(pairs)
	if err != nil {
		fail("%v", err)
	}
	logger.Infof("Scored %v pixels, skipped %v shape-mismatched pairs", res.Matrix.Total(), len(res.Skipped))

	fmt.Println(report.ClassTable(res.PerClass, cat))
	fmt.Printf("Macro F1: %.4f\n", res.MacroF1)

	if *heatmapPath != "" {
		m := res.Matrix.Counts()
		title := "Confusion matrix (pixel counts)"
		if *normalized {
			m = res.Matrix.Normalized()
			title = "Confusion matrix (row-normalized)"
		}
		opts := heatmap.Options{
			Annotate: *annotate,
			Title:    title,
		}
		if err := heatmap.RenderFile(*heatmapPath, m, cat.Classes, opts); err != nil {
			fail("%v", err)
		}
		logger.Infof("Wrote heatmap to %v", *heatmapPath)
	}

	if *reportPath != "" {
		rep := report.NewReport(*manifestPath, cat, res)
		if err := rep.WriteFile(*reportPath); err != nil {
			fail("Failed to write report '%v': %v", *reportPath, err)
		}
		logger.Infof("Wrote report to %v", *reportPath)
	}
}
