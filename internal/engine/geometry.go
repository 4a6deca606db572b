package engine

import "math"

// epsilon is the tolerance for all mm comparisons. Inputs are
// millimeter dimensions, so 1e-3 is far below any meaningful size
// while absorbing float drift from repeated kerf subtractions.
const epsilon = 0.001

// rect is an axis-aligned region on a sheet, origin top-left.
type rect struct {
	x, y, w, h float64
}

func (r rect) area() float64 {
	return r.w * r.h
}

func (r rect) right() float64 {
	return r.x + r.w
}

func (r rect) bottom() float64 {
	return r.y + r.h
}

// fits reports whether a w x h piece fits inside r, ignoring kerf.
func fits(w, h float64, r rect) bool {
	return w <= r.w+epsilon && h <= r.h+epsilon
}

// fitsWithKerf reports whether a w x h piece fits inside the free rect
// r on a sheet of the given dimensions. The separating cut consumes
// kerf beyond each placed edge, except where the free rect's far edge
// is flush with the sheet boundary: there the blade exits through the
// waste edge and no kerf allowance is required.
func fitsWithKerf(r rect, w, h, sheetLength, sheetWidth, kerf float64) bool {
	fitW := w+kerf <= r.w+epsilon || (r.right() >= sheetLength-epsilon && w <= r.w+epsilon)
	fitH := h+kerf <= r.h+epsilon || (r.bottom() >= sheetWidth-epsilon && h <= r.h+epsilon)
	return fitW && fitH
}

// consumedSpan returns how much of a free span a placed size actually
// consumes including its kerf, clamped to the span itself.
func consumedSpan(span, size, kerf float64) float64 {
	return math.Min(size+kerf, span)
}

// rectsOverlap returns true if two rectangles overlap (not just touch).
func rectsOverlap(a, b rect) bool {
	return a.x < b.right()-epsilon && a.right() > b.x+epsilon &&
		a.y < b.bottom()-epsilon && a.bottom() > b.y+epsilon
}

// containsRect returns true if outer fully contains inner.
func containsRect(outer, inner rect) bool {
	return outer.x <= inner.x+epsilon && outer.y <= inner.y+epsilon &&
		outer.right() >= inner.right()-epsilon &&
		outer.bottom() >= inner.bottom()-epsilon
}

// pruneContained removes any rect that is fully contained within another.
func pruneContained(rects []rect) []rect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]rect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, b := range rects {
			if i != j && containsRect(b, a) {
				// Identical rects would drop each other; keep the first.
				if containsRect(a, b) && i < j {
					continue
				}
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

// splitFreeRect splits the L-shaped leftover of free after a placement
// consuming consumedW x consumedH at its origin into exactly two
// rectangles along a guillotine cut. With horizontal true the first cut
// runs the full width of free; otherwise it runs the full height.
// Degenerate results have zero or negative extent and must be filtered
// by the caller.
func splitFreeRect(free rect, consumedW, consumedH float64, horizontal bool) (rect, rect) {
	if horizontal {
		bottom := rect{free.x, free.y + consumedH, free.w, free.h - consumedH}
		right := rect{free.x + consumedW, free.y, free.w - consumedW, consumedH}
		return bottom, right
	}
	right := rect{free.x + consumedW, free.y, free.w - consumedW, free.h}
	bottom := rect{free.x, free.y + consumedH, consumedW, free.h - consumedH}
	return bottom, right
}

// carveRect removes the placed region from every free rect it overlaps,
// replacing each with up to four maximal strips, then prunes contained
// rects. Unlike the guillotine split this keeps the free list maximal,
// which is what the largest-offcut statistic wants.
func carveRect(free []rect, placed rect) []rect {
	var out []rect
	for _, r := range free {
		if !rectsOverlap(r, placed) {
			out = append(out, r)
			continue
		}
		// Left strip (full height of the original rect)
		if placed.x > r.x+epsilon {
			out = append(out, rect{r.x, r.y, placed.x - r.x, r.h})
		}
		// Right strip
		if placed.right() < r.right()-epsilon {
			out = append(out, rect{placed.right(), r.y, r.right() - placed.right(), r.h})
		}
		// Top strip (full width of the original rect)
		if placed.y > r.y+epsilon {
			out = append(out, rect{r.x, r.y, r.w, placed.y - r.y})
		}
		// Bottom strip
		if placed.bottom() < r.bottom()-epsilon {
			out = append(out, rect{r.x, placed.bottom(), r.w, r.bottom() - placed.bottom()})
		}
	}
	return pruneContained(out)
}
