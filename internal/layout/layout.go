// Package layout holds the page geometry shared by the sheet composers.
//
// All coordinates are PDF points with the origin at the bottom-left corner of
// the page and Y growing upwards. Composers that draw with a top-left origin
// convert at the last moment with Rect.Top.
package layout

// PointsPerMM converts millimetres to PDF points.
const PointsPerMM = 72.0 / 25.4

// MM converts millimetres to points.
func MM(v float64) float64 {
	return v * PointsPerMM
}

// Size is a width/height pair in points.
type Size struct {
	W, H float64
}

// Point is a position in points.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box; X, Y is the bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Top returns the distance from the top of a page of height pageH to the
// rect's upper edge.
func (r Rect) Top(pageH float64) float64 {
	return pageH - r.Y - r.H
}

// Baseline converts a bottom-left Y into a top-left Y on a page of height
// pageH.
func Baseline(y, pageH float64) float64 {
	return pageH - y
}

// A4Landscape is the sheet size used for both label kinds.
var A4Landscape = Size{W: MM(297), H: MM(210)}

// ColorLabel geometry.
var (
	LabelSize   = Size{W: MM(141), H: MM(97)}
	LabelMargin = MM(4.5)

	// RefSize is the pixel size of the artwork the text anchors were measured on.
	RefSize = Size{W: 1155, H: 768}
	// SeqAnchor and QtyAnchor are measured from the artwork's top-left corner.
	SeqAnchor = Point{X: 760, Y: 585}
	QtyAnchor = Point{X: 1030, Y: 585}
	// TextShift moves both label texts left of their projected anchors.
	TextShift = MM(5)

	LabelBarcodeOffset = Point{X: MM(6), Y: MM(6)}
)

// Barcode size shared by both sheet kinds.
var BarcodeSize = Size{W: MM(44), H: MM(7)}

// Quadrant names one of the four label slots on a ColorLabel page, in the
// order grid row entries are placed.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomLeft
	BottomRight
)

// Quadrants returns the four label boxes for a page, indexed by Quadrant.
func Quadrants(page, label Size, margin float64) [Columns]Rect {
	left := margin
	right := page.W - margin - label.W
	top := page.H - margin - label.H
	bottom := margin
	return [Columns]Rect{
		TopLeft:     {X: left, Y: top, W: label.W, H: label.H},
		TopRight:    {X: right, Y: top, W: label.W, H: label.H},
		BottomLeft:  {X: left, Y: bottom, W: label.W, H: label.H},
		BottomRight: {X: right, Y: bottom, W: label.W, H: label.H},
	}
}

// Project maps an anchor measured in reference-artwork pixels (origin
// top-left) onto box.
func Project(box Rect, ref Size, anchor Point) Point {
	return Point{
		X: box.X + anchor.X/ref.W*box.W,
		Y: box.Y + (1-anchor.Y/ref.H)*box.H,
	}
}

// SeqPoint is the centre of the "current/total" text for a label box.
func SeqPoint(box Rect) Point {
	p := Project(box, RefSize, SeqAnchor)
	p.X -= TextShift
	return p
}

// QtyPoint is the centre of the quantity text for a label box.
func QtyPoint(box Rect) Point {
	p := Project(box, RefSize, QtyAnchor)
	p.X -= TextShift
	return p
}

// LabelBarcode places the barcode inside a label box.
func LabelBarcode(box Rect) Rect {
	return Rect{
		X: box.X + LabelBarcodeOffset.X,
		Y: box.Y + LabelBarcodeOffset.Y,
		W: BarcodeSize.W,
		H: BarcodeSize.H,
	}
}
