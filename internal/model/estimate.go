package model

import "math"

// PurchaseEstimate holds the results of a sheet purchasing calculation.
// This is pure arithmetic over the cutlist; it does not run a packer.
type PurchaseEstimate struct {
	TotalPartArea     float64 `json:"total_part_area"`     // Total area of all parts incl. kerf allowance (sq mm)
	TotalBoardFeet    float64 `json:"total_board_feet"`    // Total area in board feet
	SheetArea         float64 `json:"sheet_area"`          // Area of one sheet (sq mm)
	SheetsNeededExact float64 `json:"sheets_needed_exact"` // Exact fractional number of sheets
	SheetsNeededMin   int     `json:"sheets_needed_min"`   // Minimum sheets (ceiling of exact)
	SheetsWithWaste   int     `json:"sheets_with_waste"`   // Recommended sheets including waste factor
	WastePercent      float64 `json:"waste_percent"`       // Waste factor applied (e.g., 15 for 15%)
	KerfWidth         float64 `json:"kerf_width"`          // Kerf width used in calculation
}

// sqmmPerBoardFoot is the number of square millimeters in one board foot.
// 1 board foot = 144 sq inches = 144 * 645.16 sq mm = 92903.04 sq mm.
const sqmmPerBoardFoot = 92903.04

// EstimatePurchase computes how many sheets of the given stock type to
// buy for a cutlist. Each part is padded by one kerf on each dimension,
// and an additional waste percentage is applied on top of the exact
// sheet count. A real layout run will usually land between the minimum
// and the waste-padded recommendation.
func EstimatePurchase(parts []PartSpec, stock StockSheetSpec, wastePercent float64) PurchaseEstimate {
	var totalPartArea float64
	for _, p := range parts {
		partL := p.Length + stock.Kerf
		partW := p.Width + stock.Kerf
		totalPartArea += partL * partW * float64(p.Quantity)
	}

	sheetArea := stock.Area()
	if sheetArea <= 0 {
		return PurchaseEstimate{
			TotalPartArea:  totalPartArea,
			TotalBoardFeet: totalPartArea / sqmmPerBoardFoot,
			WastePercent:   wastePercent,
			KerfWidth:      stock.Kerf,
		}
	}

	exactSheets := totalPartArea / sheetArea
	minSheets := int(math.Ceil(exactSheets))

	wasteFactor := 1.0 + (wastePercent / 100.0)
	sheetsWithWaste := int(math.Ceil(exactSheets * wasteFactor))
	if sheetsWithWaste < minSheets {
		sheetsWithWaste = minSheets
	}

	return PurchaseEstimate{
		TotalPartArea:     totalPartArea,
		TotalBoardFeet:    totalPartArea / sqmmPerBoardFoot,
		SheetArea:         sheetArea,
		SheetsNeededExact: exactSheets,
		SheetsNeededMin:   minSheets,
		SheetsWithWaste:   sheetsWithWaste,
		WastePercent:      wastePercent,
		KerfWidth:         stock.Kerf,
	}
}
