package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitsWithKerf_InteriorNeedsKerf(t *testing.T) {
	// Free rect ends 500mm short of the sheet edge: the separating cut
	// needs blade room.
	r := rect{0, 0, 500, 500}
	assert.True(t, fitsWithKerf(r, 497, 497, 1000, 1000, 3))
	assert.False(t, fitsWithKerf(r, 500, 497, 1000, 1000, 3))
	assert.False(t, fitsWithKerf(r, 497, 500, 1000, 1000, 3))
}

func TestFitsWithKerf_FlushEdgeExempt(t *testing.T) {
	// Free rect reaches the sheet boundary on both axes: a piece filling
	// it exactly needs no kerf allowance there.
	r := rect{500, 500, 500, 500}
	assert.True(t, fitsWithKerf(r, 500, 500, 1000, 1000, 3))
	assert.False(t, fitsWithKerf(r, 501, 500, 1000, 1000, 3))
}

func TestConsumedSpan_ClampsToSpan(t *testing.T) {
	assert.Equal(t, 503.0, consumedSpan(1000, 500, 3))
	assert.Equal(t, 500.0, consumedSpan(500, 500, 3))
}

func TestPruneContained(t *testing.T) {
	rects := []rect{
		{0, 0, 100, 100},
		{10, 10, 20, 20}, // inside the first
		{200, 0, 50, 50}, // disjoint
		{200, 0, 50, 50}, // exact duplicate, only one survives
	}
	kept := pruneContained(rects)
	assert.Len(t, kept, 2)
	assert.Contains(t, kept, rect{0, 0, 100, 100})
	assert.Contains(t, kept, rect{200, 0, 50, 50})
}

func TestSplitFreeRect_PartitionsLeftover(t *testing.T) {
	free := rect{0, 0, 1000, 800}

	bottom, right := splitFreeRect(free, 600, 500, true)
	assert.Equal(t, rect{0, 500, 1000, 300}, bottom)
	assert.Equal(t, rect{600, 0, 400, 500}, right)

	bottom, right = splitFreeRect(free, 600, 500, false)
	assert.Equal(t, rect{0, 500, 600, 300}, bottom)
	assert.Equal(t, rect{600, 0, 400, 800}, right)

	// Either way the leftover area is conserved.
	leftover := free.area() - 600*500
	assert.InDelta(t, leftover, bottom.area()+right.area(), 1e-9)
}

func TestCarveRect_MaximalStrips(t *testing.T) {
	free := carveRect([]rect{{0, 0, 1000, 800}}, rect{0, 0, 600, 400})

	// Two maximal strips remain, overlapping in the corner.
	assert.Len(t, free, 2)
	assert.Contains(t, free, rect{600, 0, 400, 800})
	assert.Contains(t, free, rect{0, 400, 1000, 400})

	// Carving a disjoint region leaves untouched rects alone.
	free = carveRect([]rect{{0, 0, 100, 100}}, rect{500, 500, 50, 50})
	assert.Equal(t, []rect{{0, 0, 100, 100}}, free)
}
