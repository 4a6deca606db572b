package engine

import (
	"fmt"

	"github.com/MaierG74/cutlist/internal/model"
)

// stockPool tracks the remaining quantity of each stock sheet type and
// hands out SheetInstances lazily, the first time a packer needs one.
type stockPool struct {
	specs     []model.StockSheetSpec
	remaining []int
	drawn     map[string]int // per-spec count of instances handed out
}

func newStockPool(stocks []model.StockSheetSpec) *stockPool {
	p := &stockPool{
		specs:     make([]model.StockSheetSpec, len(stocks)),
		remaining: make([]int, len(stocks)),
		drawn:     make(map[string]int),
	}
	copy(p.specs, stocks)
	for i, s := range stocks {
		p.remaining[i] = s.Quantity
	}
	return p
}

// unitFitsSheet reports whether the unit fits a blank sheet of the
// given dimensions in any grain-permitted orientation. No kerf is
// needed: a lone unit can sit flush against the sheet boundary.
func unitFitsSheet(u model.PartUnit, length, width float64) bool {
	normal, rotated := allowedOrientations(u.Grain)
	if normal {
		w, h := orientedDims(u, false)
		if w <= length+epsilon && h <= width+epsilon {
			return true
		}
	}
	if rotated {
		w, h := orientedDims(u, true)
		if w <= length+epsilon && h <= width+epsilon {
			return true
		}
	}
	return false
}

// draw consumes one sheet for the given unit, preferring the smallest
// sheet type that still fits it so large stock stays available for
// large parts. Returns false when no remaining sheet type fits.
func (p *stockPool) draw(u model.PartUnit) (model.SheetInstance, bool) {
	best := -1
	for i, s := range p.specs {
		if p.remaining[i] <= 0 || !unitFitsSheet(u, s.Length, s.Width) {
			continue
		}
		if best < 0 || s.Area() < p.specs[best].Area() {
			best = i
		}
	}
	if best < 0 {
		return model.SheetInstance{}, false
	}
	p.remaining[best]--
	s := p.specs[best]
	p.drawn[s.ID]++
	return model.SheetInstance{
		SheetID: fmt.Sprintf("%s-%d", s.ID, p.drawn[s.ID]),
		SpecID:  s.ID,
		Label:   s.Label,
		Length:  s.Length,
		Width:   s.Width,
		Kerf:    s.Kerf,
	}, true
}
