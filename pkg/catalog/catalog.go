// Package catalog defines the set of land-cover classes that an evaluation
// run operates over. Class 0 is always Background.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	ClassBackground = 0
	ClassWater      = 1
	ClassForest     = 2
	ClassGrassland  = 3
	ClassCropland   = 4
	ClassShrubland  = 5
	ClassWetland    = 6
	ClassUrban      = 7
	ClassBarren     = 8
	ClassSnowIce    = 9
)

// Land-cover classes of the default 10-class dataset
var LandCoverClasses = []string{
	"Background",
	"Water",
	"Forest",
	"Grassland",
	"Cropland",
	"Shrubland",
	"Wetland",
	"Urban",
	"Barren",
	"Snow/Ice",
}

// Catalog is an ordered set of class names. The index of a name in Classes
// is its class id, so ids always run 0..K-1 with no gaps.
type Catalog struct {
	Classes []string `json:"classes"`
}

func NewCatalog(classes []string) (*Catalog, error) {
	if len(classes) == 0 {
		return nil, fmt.Errorf("Catalog must declare at least one class")
	}
	return &Catalog{Classes: classes}, nil
}

// Default returns the built-in 10-class land-cover catalog
func Default() *Catalog {
	return &Catalog{Classes: LandCoverClasses}
}

// LoadFile reads a catalog from a JSON file of the form {"classes": ["Background", ...]}
func LoadFile(filename string) (*Catalog, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("Failed to read class catalog '%v': %w", filename, err)
	}
	c := &Catalog{}
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("Failed to parse class catalog '%v': %w", filename, err)
	}
	if len(c.Classes) == 0 {
		return nil, fmt.Errorf("Class catalog '%v' declares no classes", filename)
	}
	return c, nil
}

// K returns the number of declared classes
func (c *Catalog) K() int {
	return len(c.Classes)
}

func (c *Catalog) Contains(id int) bool {
	return id >= 0 && id < len(c.Classes)
}

// Name returns the human-readable name of a class id, or "class N" for an
// id outside the catalog.
func (c *Catalog) Name(id int) string {
	if !c.Contains(id) {
		return fmt.Sprintf("class %v", id)
	}
	return c.Classes[id]
}
