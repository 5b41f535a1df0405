package layout

// Hangtag geometry.
const (
	HangtagRows = 6
	HangtagCols = 6
)

var (
	HangtagCell    = Size{W: MM(40), H: MM(30)}
	HangtagSpacing = MM(4)

	HangtagCodeOffset = Point{X: MM(3), Y: MM(4)}
	HangtagWeekOffset = Point{X: MM(3), Y: MM(1)}
	// HangtagBarcodeDrop lowers the barcode from the cell's vertical centre.
	HangtagBarcodeDrop = MM(1)
)

// HangtagCells returns the cells of the hangtag grid centred on page. Row 0
// is the bottom row; cells are ordered row by row, left to right.
func HangtagCells(page Size) []Rect {
	gridW := HangtagCols*HangtagCell.W + (HangtagCols-1)*HangtagSpacing
	gridH := HangtagRows*HangtagCell.H + (HangtagRows-1)*HangtagSpacing
	x0 := (page.W - gridW) / 2
	y0 := (page.H - gridH) / 2

	cells := make([]Rect, 0, HangtagRows*HangtagCols)
	for r := range HangtagRows {
		for c := range HangtagCols {
			cells = append(cells, Rect{
				X: x0 + float64(c)*(HangtagCell.W+HangtagSpacing),
				Y: y0 + float64(r)*(HangtagCell.H+HangtagSpacing),
				W: HangtagCell.W,
				H: HangtagCell.H,
			})
		}
	}
	return cells
}

// HangtagCodePoint is the baseline start of the code text in a cell.
func HangtagCodePoint(cell Rect) Point {
	return Point{X: cell.X + HangtagCodeOffset.X, Y: cell.Y + HangtagCodeOffset.Y}
}

// HangtagWeekPoint is the baseline start of the week text in a cell.
func HangtagWeekPoint(cell Rect) Point {
	return Point{X: cell.X + HangtagWeekOffset.X, Y: cell.Y + HangtagWeekOffset.Y}
}

// HangtagBarcode centres the barcode horizontally in cell and drops it
// slightly below the vertical centre. The barcode is wider than the cell and
// overhangs both sides equally.
func HangtagBarcode(cell Rect) Rect {
	return Rect{
		X: cell.X + (cell.W-BarcodeSize.W)/2,
		Y: cell.Y + (cell.H-BarcodeSize.H)/2 - HangtagBarcodeDrop,
		W: BarcodeSize.W,
		H: BarcodeSize.H,
	}
}
