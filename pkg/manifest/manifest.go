// Package manifest reads the CSV that pairs ground-truth masks with
// prediction masks. Column 0 is the truth path, column 1 is the prediction
// path, one pair per row, and row order is significant: row i's truth
// belongs to row i's prediction.
package manifest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var ErrEmptyManifest = errors.New("Manifest contains no image pairs")

type Entry struct {
	Index          int    // Zero-based pair index, after any header row
	TruthPath      string
	PredictionPath string
}

var rasterExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
}

func looksLikeRasterPath(s string) bool {
	return rasterExtensions[strings.ToLower(filepath.Ext(strings.TrimSpace(s)))]
}

// Load reads a manifest CSV. A first row whose cells carry no recognized
// raster extension is treated as a header and dropped.
func Load(filename string) ([]Entry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("Failed to open manifest '%v': %w", filename, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("Failed to parse manifest '%v': %w", filename, err)
	}
	if len(records) > 0 && !looksLikeRasterPath(records[0][0]) && !looksLikeRasterPath(records[0][len(records[0])-1]) {
		records = records[1:]
	}
	entries := make([]Entry, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("Manifest '%v' row %v has %v columns, expected at least 2", filename, i+1, len(rec))
		}
		entries = append(entries, Entry{
			Index:          len(entries),
			TruthPath:      strings.TrimSpace(rec[0]),
			PredictionPath: strings.TrimSpace(rec[1]),
		})
	}
	if len(entries) == 0 {
		return nil, ErrEmptyManifest
	}
	return entries, nil
}
