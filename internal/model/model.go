package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Grain represents the grain direction constraint for a part.
type Grain string

const (
	GrainAny    Grain = "any"    // No grain constraint, part can rotate freely
	GrainLength Grain = "length" // Long edge runs along the sheet's length axis
	GrainWidth  Grain = "width"  // Long edge runs across the sheet's length axis
)

// Valid reports whether g is one of the recognized grain values.
func (g Grain) Valid() bool {
	switch g {
	case GrainAny, GrainLength, GrainWidth:
		return true
	}
	return false
}

// PartSpec describes a part type to be cut: one entry in the cutlist.
// Dimensions are in mm. Quantity copies are expanded into PartUnits
// before packing.
type PartSpec struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Length   float64 `json:"length_mm"` // mm, along the sheet's length axis when unrotated
	Width    float64 `json:"width_mm"`  // mm, across it
	Quantity int     `json:"qty"`
	Grain    Grain   `json:"grain"`
}

func NewPartSpec(label string, length, width float64, qty int) PartSpec {
	return PartSpec{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Length:   length,
		Width:    width,
		Quantity: qty,
		Grain:    GrainAny,
	}
}

// Area returns the area of one part in square mm.
func (p PartSpec) Area() float64 {
	return p.Length * p.Width
}

// PartUnit is one physical instance of a PartSpec. Units are the only
// thing the packers place; a spec with qty 4 becomes 4 units.
type PartUnit struct {
	ID     string  `json:"id"` // "<spec-id>-<n>", n starting at 1
	SpecID string  `json:"spec_id"`
	Label  string  `json:"label"`
	Length float64 `json:"length_mm"`
	Width  float64 `json:"width_mm"`
	Grain  Grain   `json:"grain"`
}

// Area returns the unit area in square mm.
func (u PartUnit) Area() float64 {
	return u.Length * u.Width
}

// ExpandUnits expands every PartSpec into Quantity PartUnits with
// deterministic ids derived from the spec id and a 1-based index.
func ExpandUnits(specs []PartSpec) []PartUnit {
	var units []PartUnit
	for _, p := range specs {
		for i := 1; i <= p.Quantity; i++ {
			units = append(units, PartUnit{
				ID:     fmt.Sprintf("%s-%d", p.ID, i),
				SpecID: p.ID,
				Label:  p.Label,
				Length: p.Length,
				Width:  p.Width,
				Grain:  p.Grain,
			})
		}
	}
	return units
}

// StockSheetSpec describes an available sheet type. Kerf is the saw
// blade width lost between adjacent pieces on sheets of this type.
type StockSheetSpec struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Length   float64 `json:"length_mm"`
	Width    float64 `json:"width_mm"`
	Quantity int     `json:"qty"`
	Kerf     float64 `json:"kerf_mm"`
}

func NewStockSheetSpec(label string, length, width float64, qty int, kerf float64) StockSheetSpec {
	return StockSheetSpec{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Length:   length,
		Width:    width,
		Quantity: qty,
		Kerf:     kerf,
	}
}

// Area returns the sheet area in square mm.
func (s StockSheetSpec) Area() float64 {
	return s.Length * s.Width
}

// Algorithm selects the packing strategy.
type Algorithm string

const (
	AlgorithmStrip      Algorithm = "strip"      // Greedy horizontal-band heuristic (fast baseline)
	AlgorithmGuillotine Algorithm = "guillotine" // Free-rectangle guillotine best-fit
	AlgorithmDeep       Algorithm = "deep"       // Time-budgeted anytime search over guillotine configurations
)

// Valid reports whether a is a recognized algorithm tag.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmStrip, AlgorithmGuillotine, AlgorithmDeep:
		return true
	}
	return false
}

// Placement binds a part unit to a position on a sheet instance.
// W and H are the placed dimensions after any rotation: W runs along
// the sheet's length axis, H across it.
type Placement struct {
	PartID  string  `json:"part_id"` // unit id
	Label   string  `json:"label,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
	Rotated bool    `json:"rot"`
}

// Area returns the placed area in square mm.
func (p Placement) Area() float64 {
	return p.W * p.H
}

// SheetInstance is one physical sheet drawn from a StockSheetSpec's
// quantity, created the first time a unit lands on it.
type SheetInstance struct {
	SheetID       string      `json:"sheet_id"` // "<spec-id>-<n>"
	SpecID        string      `json:"spec_id"`
	Label         string      `json:"label,omitempty"`
	Length        float64     `json:"length_mm"`
	Width         float64     `json:"width_mm"`
	Kerf          float64     `json:"kerf_mm"`
	Placements    []Placement `json:"placements"`
	LargestOffcut float64     `json:"largest_offcut_mm2"`
}

// Area returns the sheet area in square mm.
func (s SheetInstance) Area() float64 {
	return s.Length * s.Width
}

// UsedArea returns the total area covered by placed units.
func (s SheetInstance) UsedArea() float64 {
	var total float64
	for _, p := range s.Placements {
		total += p.Area()
	}
	return total
}

// Efficiency returns the usage percentage for this sheet.
func (s SheetInstance) Efficiency() float64 {
	a := s.Area()
	if a == 0 {
		return 0
	}
	return (s.UsedArea() / a) * 100.0
}

// CutDirection is the axis of a straight guillotine cut.
type CutDirection string

const (
	CutHorizontal CutDirection = "horizontal" // constant y, spans along x
	CutVertical   CutDirection = "vertical"   // constant x, spans along y
)

// CutLine is one straight saw cut. Applied in order to a blank sheet,
// the cut list reproduces the placement boundaries.
type CutLine struct {
	SheetID   string       `json:"sheet_id"`
	Dir       CutDirection `json:"dir"`
	Pos       float64      `json:"position"`
	SpanStart float64      `json:"span_start"`
	SpanEnd   float64      `json:"span_end"`
}

// Length returns the length of the cut in mm.
func (c CutLine) Length() float64 {
	return c.SpanEnd - c.SpanStart
}

// LayoutStats aggregates the material accounting for one layout run.
// Waste is counted only over sheets that received at least one unit.
type LayoutStats struct {
	UsedArea  float64 `json:"used_area_mm2"`
	WasteArea float64 `json:"waste_area_mm2"`
	Cuts      int     `json:"cuts"`
	CutLength float64 `json:"cut_length_mm"`
}

// LayoutResult is the output of one engine invocation. It is built
// fresh per call and never mutated after return.
type LayoutResult struct {
	Sheets       []SheetInstance `json:"sheets"`
	Stats        LayoutStats     `json:"stats"`
	CutLines     []CutLine       `json:"cut_lines"`
	StrategyUsed string          `json:"strategy_used"`
	Unplaced     []string        `json:"unplaced"` // unit ids that fit nowhere
}

// TotalEfficiency returns overall material usage percentage across all
// sheets in the result.
func (r LayoutResult) TotalEfficiency() float64 {
	var used, total float64
	for _, s := range r.Sheets {
		used += s.UsedArea()
		total += s.Area()
	}
	if total == 0 {
		return 0
	}
	return (used / total) * 100.0
}

// SheetsUsed returns the number of sheet instances consumed.
func (r LayoutResult) SheetsUsed() int {
	return len(r.Sheets)
}
