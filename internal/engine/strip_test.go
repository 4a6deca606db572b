package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaierG74/cutlist/internal/model"
)

func TestStrip_ReferenceFixture(t *testing.T) {
	// Six grain-locked units on one 2750x1830 sheet with 3mm kerf.
	parts := []model.PartSpec{
		grainPart("Side", 700, 600, 4, model.GrainLength),
		grainPart("Top", 1200, 750, 1, model.GrainLength),
		grainPart("Back", 400, 1080, 1, model.GrainLength),
	}
	stocks := []model.StockSheetSpec{model.NewStockSheetSpec("Melamine", 2750, 1830, 5, 3)}

	result, err := Pack(parts, stocks, Options{Algorithm: model.AlgorithmStrip})
	require.NoError(t, err)

	assert.Equal(t, 1, result.SheetsUsed())
	assert.Empty(t, result.Unplaced)
	require.Len(t, result.Sheets[0].Placements, 6)
	assert.InDelta(t, 3012000, result.Stats.UsedArea, 0.5)
	assert.InDelta(t, 2020500, result.Stats.WasteArea, 0.5)

	// Tallest unit anchors the first strip at the origin.
	first := result.Sheets[0].Placements[0]
	assert.Equal(t, "Back", first.Label)
	assert.Equal(t, 0.0, first.X)
	assert.Equal(t, 0.0, first.Y)
	assert.False(t, first.Rotated, "grain length pins the orientation")

	assertLayoutSane(t, result)
}

func TestStrip_KerfSeparatesNeighbors(t *testing.T) {
	parts := []model.PartSpec{
		grainPart("A", 400, 1080, 1, model.GrainLength),
		grainPart("B", 1200, 750, 1, model.GrainLength),
	}
	stocks := []model.StockSheetSpec{model.NewStockSheetSpec("Sheet", 2750, 1830, 1, 3)}

	result, err := Pack(parts, stocks, Options{Algorithm: model.AlgorithmStrip})
	require.NoError(t, err)
	require.Len(t, result.Sheets, 1)
	require.Len(t, result.Sheets[0].Placements, 2)

	// B lands in A's strip, one kerf to the right.
	a := result.Sheets[0].Placements[0]
	b := result.Sheets[0].Placements[1]
	assert.Equal(t, "A", a.Label)
	assert.Equal(t, "B", b.Label)
	assert.InDelta(t, a.X+a.W+3, b.X, 1e-9)
}

func TestStrip_OversizePartReportedUnplaced(t *testing.T) {
	parts := []model.PartSpec{
		grainPart("Huge", 3000, 3000, 1, model.GrainAny),
		grainPart("Small", 400, 300, 1, model.GrainAny),
	}
	stocks := []model.StockSheetSpec{model.NewStockSheetSpec("Sheet", 2750, 1830, 10, 3)}

	result, err := Pack(parts, stocks, Options{Algorithm: model.AlgorithmStrip})
	require.NoError(t, err)

	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, parts[0].ID+"-1", result.Unplaced[0])
	// The small part still packs; the oversize one consumes no stock.
	assert.Equal(t, 1, result.SheetsUsed())
}

func TestStrip_GrainWidthForcesRotation(t *testing.T) {
	parts := []model.PartSpec{grainPart("Shelf", 600, 400, 1, model.GrainWidth)}
	stocks := []model.StockSheetSpec{model.NewStockSheetSpec("Sheet", 1000, 1000, 1, 0)}

	result, err := Pack(parts, stocks, Options{Algorithm: model.AlgorithmStrip})
	require.NoError(t, err)
	require.Len(t, result.Sheets, 1)
	require.Len(t, result.Sheets[0].Placements, 1)

	p := result.Sheets[0].Placements[0]
	assert.True(t, p.Rotated)
	assert.Equal(t, 400.0, p.W)
	assert.Equal(t, 600.0, p.H)
}

func TestStrip_CutLinesCoverStripBoundaries(t *testing.T) {
	parts := []model.PartSpec{
		grainPart("Side", 700, 600, 4, model.GrainLength),
		grainPart("Top", 1200, 750, 1, model.GrainLength),
		grainPart("Back", 400, 1080, 1, model.GrainLength),
	}
	stocks := []model.StockSheetSpec{model.NewStockSheetSpec("Sheet", 2750, 1830, 1, 3)}

	result, err := Pack(parts, stocks, Options{Algorithm: model.AlgorithmStrip})
	require.NoError(t, err)

	// Two strip rips, one crosscut per unit, and a trim cut for each of
	// the two units shorter than their strip.
	rips, crosscuts := 0, 0
	for _, c := range result.CutLines {
		assert.Equal(t, result.Sheets[0].SheetID, c.SheetID)
		assert.Greater(t, c.Length(), 0.0)
		if c.Dir == model.CutHorizontal {
			rips++
		} else {
			crosscuts++
		}
	}
	assert.Equal(t, 4, rips, "2 strip rips + 2 trim cuts")
	assert.Equal(t, 6, crosscuts, "one crosscut per unit")
	assert.Equal(t, len(result.CutLines), result.Stats.Cuts)
}

func TestStrip_SpillsToSecondSheet(t *testing.T) {
	// Nine 900x900 units cannot share a 2000x1000 sheet more than two at
	// a time, so the run needs five sheets.
	parts := []model.PartSpec{grainPart("Panel", 900, 900, 9, model.GrainLength)}
	stocks := []model.StockSheetSpec{model.NewStockSheetSpec("Sheet", 2000, 1000, 10, 3)}

	result, err := Pack(parts, stocks, Options{Algorithm: model.AlgorithmStrip})
	require.NoError(t, err)

	assert.Empty(t, result.Unplaced)
	assert.Equal(t, 5, result.SheetsUsed())
	assertLayoutSane(t, result)
}

func TestStrip_StockExhaustion(t *testing.T) {
	parts := []model.PartSpec{grainPart("Panel", 900, 900, 9, model.GrainLength)}
	stocks := []model.StockSheetSpec{model.NewStockSheetSpec("Sheet", 2000, 1000, 2, 3)}

	result, err := Pack(parts, stocks, Options{Algorithm: model.AlgorithmStrip})
	require.NoError(t, err)

	// Two sheets hold four units; the remaining five are reported, not dropped.
	assert.Equal(t, 2, result.SheetsUsed())
	assert.Len(t, result.Unplaced, 5)
}
