// Package report turns an evaluation result into human and machine readable
// output: a per-class table for the terminal, and a JSON document for
// anything downstream.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/terralab/segeval/pkg/catalog"
	"github.com/terralab/segeval/pkg/confusion"
	"github.com/terralab/segeval/pkg/iox"
)

// ClassTable renders per-class precision/recall/F1, one row per declared
// class, keyed by the catalog's class names.
func ClassTable(perClass []confusion.ClassMetrics, cat *catalog.Catalog) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Class", "Pixels", "Predicted", "Precision", "Recall", "F1"})
	for _, m := range perClass {
		t.AppendRow(table.Row{
			m.Class,
			cat.Name(m.Class),
			m.ActualPositives,
			m.PredictedPositives,
			fmt.Sprintf("%.4f", m.Precision),
			fmt.Sprintf("%.4f", m.Recall),
			fmt.Sprintf("%.4f", m.F1),
		})
	}
	t.AppendFooter(table.Row{"", "Macro F1", "", "", "", "", fmt.Sprintf("%.4f", confusion.MacroF1(perClass))})
	return t.Render()
}

// Report is the JSON form of an evaluation run
type Report struct {
	GeneratedAt time.Time                `json:"generatedAt"`
	Manifest    string                   `json:"manifest"`
	Classes     []string                 `json:"classes"`
	PixelCount  int64                    `json:"pixelCount"`
	Skipped     []confusion.SkipRecord   `json:"skipped,omitempty"`
	PerClass    []confusion.ClassMetrics `json:"perClass"`
	MacroF1     float64                  `json:"macroF1"`
	Counts      [][]int64                `json:"counts"`
}

// NewReport assembles the JSON report from an evaluation result
func NewReport(manifestPath string, cat *catalog.Catalog, res *confusion.Result) *Report {
	k := res.Matrix.K()
	counts := make([][]int64, k)
	for i := 0; i < k; i++ {
		counts[i] = make([]int64, k)
		for j := 0; j < k; j++ {
			counts[i][j] = res.Matrix.Count(i, j)
		}
	}
	return &Report{
		GeneratedAt: time.Now().UTC(),
		Manifest:    manifestPath,
		Classes:     cat.Classes,
		PixelCount:  res.Matrix.Total(),
		Skipped:     res.Skipped,
		PerClass:    res.PerClass,
		MacroF1:     res.MacroF1,
		Counts:      counts,
	}
}

// WriteFile writes the report as indented JSON
func (r *Report) WriteFile(filename string) error {
	buf := &bytes.Buffer{}
	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return err
	}
	return iox.WriteStreamToFile(filename, buf)
}
