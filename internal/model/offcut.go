package model

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Offcut represents a usable rectangular remnant area left over on a
// packed sheet. Offcuts can be fed back into a later run as stock.
type Offcut struct {
	ID         string  `json:"id"`
	SheetID    string  `json:"sheet_id"`
	SheetIndex int     `json:"sheet_index"` // Index of the source sheet in the result
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Length     float64 `json:"length_mm"`
	Width      float64 `json:"width_mm"`
}

// Area returns the area of the offcut in square mm.
func (o Offcut) Area() float64 {
	return o.Length * o.Width
}

// ToStockSheetSpec converts an offcut into a single stock sheet for
// reuse in future runs, inheriting the source sheet's kerf.
func (o Offcut) ToStockSheetSpec(kerf float64) StockSheetSpec {
	spec := NewStockSheetSpec("Offcut "+o.SheetID, o.Length, o.Width, 1, kerf)
	return spec
}

// MinOffcutDimension is the minimum edge (in mm) for a remnant to be
// considered a usable offcut. Remnants smaller than this are waste.
const MinOffcutDimension = 50.0

// MinOffcutArea is the minimum area (in sq mm) for a remnant to be usable.
const MinOffcutArea = 10000.0 // 100mm x 100mm equivalent

// DetectOffcuts identifies rectangular remnant strips on a packed sheet
// that are large enough to reuse: the strip to the right of all placed
// units and the strip below them, each grown by nothing and shrunk by
// the kerf the final separating cut consumes.
func DetectOffcuts(s SheetInstance, sheetIndex int) []Offcut {
	if len(s.Placements) == 0 {
		return []Offcut{{
			ID:         uuid.New().String()[:8],
			SheetID:    s.SheetID,
			SheetIndex: sheetIndex,
			Length:     s.Length,
			Width:      s.Width,
		}}
	}

	var maxRight, maxBottom float64
	for _, p := range s.Placements {
		right := p.X + p.W + s.Kerf
		bottom := p.Y + p.H + s.Kerf
		if right > maxRight {
			maxRight = right
		}
		if bottom > maxBottom {
			maxBottom = bottom
		}
	}

	var offcuts []Offcut

	// Right strip: full-height area to the right of all units.
	rightLen := s.Length - maxRight
	if rightLen >= MinOffcutDimension && s.Width >= MinOffcutDimension && rightLen*s.Width >= MinOffcutArea {
		offcuts = append(offcuts, Offcut{
			ID:         uuid.New().String()[:8],
			SheetID:    s.SheetID,
			SheetIndex: sheetIndex,
			X:          maxRight,
			Y:          0,
			Length:     rightLen,
			Width:      s.Width,
		})
	}

	// Bottom strip: area below all units, stopping at the right strip.
	bottomW := s.Width - maxBottom
	usableLen := math.Min(maxRight, s.Length)
	if bottomW >= MinOffcutDimension && usableLen >= MinOffcutDimension && bottomW*usableLen >= MinOffcutArea {
		offcuts = append(offcuts, Offcut{
			ID:         uuid.New().String()[:8],
			SheetID:    s.SheetID,
			SheetIndex: sheetIndex,
			X:          0,
			Y:          maxBottom,
			Length:     usableLen,
			Width:      bottomW,
		})
	}

	sort.Slice(offcuts, func(i, j int) bool {
		return offcuts[i].Area() > offcuts[j].Area()
	})

	return offcuts
}

// DetectAllOffcuts finds offcuts across all sheets in a layout result.
func DetectAllOffcuts(result LayoutResult) []Offcut {
	var all []Offcut
	for i, sheet := range result.Sheets {
		all = append(all, DetectOffcuts(sheet, i)...)
	}
	return all
}

// TotalOffcutArea returns the total area of all offcuts in square mm.
func TotalOffcutArea(offcuts []Offcut) float64 {
	var total float64
	for _, o := range offcuts {
		total += o.Area()
	}
	return total
}
