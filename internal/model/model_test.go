package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartSpec_Defaults(t *testing.T) {
	p := NewPartSpec("Side", 700, 600, 4)

	assert.Len(t, p.ID, 8)
	assert.Equal(t, "Side", p.Label)
	assert.Equal(t, 700.0, p.Length)
	assert.Equal(t, 600.0, p.Width)
	assert.Equal(t, 4, p.Quantity)
	assert.Equal(t, GrainAny, p.Grain)
	assert.Equal(t, 420000.0, p.Area())
}

func TestExpandUnits_DeterministicIDs(t *testing.T) {
	specs := []PartSpec{
		{ID: "aaaa1111", Label: "Side", Length: 700, Width: 600, Quantity: 3, Grain: GrainLength},
		{ID: "bbbb2222", Label: "Top", Length: 1200, Width: 750, Quantity: 1, Grain: GrainAny},
	}

	units := ExpandUnits(specs)
	require.Len(t, units, 4)

	assert.Equal(t, "aaaa1111-1", units[0].ID)
	assert.Equal(t, "aaaa1111-2", units[1].ID)
	assert.Equal(t, "aaaa1111-3", units[2].ID)
	assert.Equal(t, "bbbb2222-1", units[3].ID)

	for _, u := range units[:3] {
		assert.Equal(t, "aaaa1111", u.SpecID)
		assert.Equal(t, GrainLength, u.Grain)
		assert.Equal(t, 700.0, u.Length)
	}
}

func TestGrainAndAlgorithm_Valid(t *testing.T) {
	assert.True(t, GrainAny.Valid())
	assert.True(t, GrainLength.Valid())
	assert.True(t, GrainWidth.Valid())
	assert.False(t, Grain("diagonal").Valid())
	assert.False(t, Grain("").Valid())

	assert.True(t, AlgorithmStrip.Valid())
	assert.True(t, AlgorithmGuillotine.Valid())
	assert.True(t, AlgorithmDeep.Valid())
	assert.False(t, Algorithm("smart").Valid())
}

func TestSheetInstance_Efficiency(t *testing.T) {
	s := SheetInstance{
		SheetID: "s-1",
		Length:  1000,
		Width:   500,
		Placements: []Placement{
			{PartID: "a-1", X: 0, Y: 0, W: 400, H: 250},
			{PartID: "b-1", X: 500, Y: 0, W: 200, H: 250},
		},
	}

	assert.Equal(t, 500000.0, s.Area())
	assert.Equal(t, 150000.0, s.UsedArea())
	assert.InDelta(t, 30.0, s.Efficiency(), 1e-9)

	empty := SheetInstance{}
	assert.Zero(t, empty.Efficiency())
}

func TestCutLine_Length(t *testing.T) {
	c := CutLine{Dir: CutHorizontal, Pos: 600, SpanStart: 100, SpanEnd: 850}
	assert.Equal(t, 750.0, c.Length())
}

func TestLayoutResult_TotalEfficiency(t *testing.T) {
	r := LayoutResult{
		Sheets: []SheetInstance{
			{Length: 1000, Width: 500, Placements: []Placement{{W: 500, H: 500}}},
			{Length: 1000, Width: 500, Placements: []Placement{{W: 250, H: 500}}},
		},
	}
	assert.Equal(t, 2, r.SheetsUsed())
	assert.InDelta(t, 37.5, r.TotalEfficiency(), 1e-9)

	assert.Zero(t, LayoutResult{}.TotalEfficiency())
}
