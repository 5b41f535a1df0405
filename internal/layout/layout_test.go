package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnizeTen(t *testing.T) {
	assert.Equal(t, [Columns]int{3, 3, 2, 2}, ColumnSizes(10))

	rows := Columnize(1, 10)
	require.Len(t, rows, 3)
	assert.Equal(t, GridRow{1, 4, 7, 9}, rows[0])
	assert.Equal(t, GridRow{2, 5, 8, 10}, rows[1])
	assert.Equal(t, GridRow{3, 6, 0, 0}, rows[2])
	assert.Equal(t, 2, rows[2].Count())
}

func TestColumnizeCoversRangeOnce(t *testing.T) {
	for _, tc := range []struct{ start, end int }{{1, 1}, {1, 3}, {1, 4}, {501, 600}, {7, 45}} {
		seen := map[int]int{}
		for _, row := range Columnize(tc.start, tc.end) {
			for _, v := range row {
				if v != 0 {
					seen[v]++
				}
			}
		}
		assert.Len(t, seen, tc.end-tc.start+1)
		for n, c := range seen {
			assert.Equal(t, 1, c, "seq %d", n)
			assert.GreaterOrEqual(t, n, tc.start)
			assert.LessOrEqual(t, n, tc.end)
		}
	}
}

func TestColumnizeSingle(t *testing.T) {
	rows := Columnize(5, 5)
	require.Len(t, rows, 1)
	assert.Equal(t, GridRow{5, 0, 0, 0}, rows[0])
}

func TestColumnizeEmpty(t *testing.T) {
	assert.Nil(t, Columnize(5, 4))
	assert.Nil(t, Columnize(0, 3))
	assert.Nil(t, Columnize(-2, 1))
	assert.Equal(t, [Columns]int{}, ColumnSizes(0))
}

func TestQuadrantsFitPage(t *testing.T) {
	q := Quadrants(A4Landscape, LabelSize, LabelMargin)

	assert.InDelta(t, LabelMargin, q[TopLeft].X, 1e-9)
	assert.InDelta(t, LabelMargin, q[BottomLeft].Y, 1e-9)
	assert.InDelta(t, A4Landscape.W-LabelMargin, q[TopRight].X+q[TopRight].W, 1e-9)
	assert.InDelta(t, A4Landscape.H-LabelMargin, q[TopLeft].Y+q[TopLeft].H, 1e-9)

	// Labels must not overlap.
	assert.LessOrEqual(t, q[TopLeft].X+q[TopLeft].W, q[TopRight].X)
	assert.LessOrEqual(t, q[BottomLeft].Y+q[BottomLeft].H, q[TopLeft].Y)
}

func TestProject(t *testing.T) {
	box := Rect{X: 10, Y: 20, W: 1155, H: 768}
	p := Project(box, RefSize, Point{X: 760, Y: 585})
	assert.InDelta(t, 770, p.X, 1e-9)
	assert.InDelta(t, 20+768-585, p.Y, 1e-9)

	seq := SeqPoint(box)
	assert.InDelta(t, 770-MM(5), seq.X, 1e-9)
	assert.InDelta(t, p.Y, seq.Y, 1e-9)

	qty := QtyPoint(box)
	assert.InDelta(t, 1040-MM(5), qty.X, 1e-9)
	assert.InDelta(t, p.Y, qty.Y, 1e-9)
}

func TestRectTop(t *testing.T) {
	r := Rect{X: 0, Y: 10, W: 5, H: 20}
	assert.InDelta(t, 70, r.Top(100), 1e-9)
	assert.InDelta(t, 90, Baseline(10, 100), 1e-9)
}

func TestHangtagCells(t *testing.T) {
	cells := HangtagCells(A4Landscape)
	require.Len(t, cells, HangtagRows*HangtagCols)

	first, last := cells[0], cells[len(cells)-1]
	assert.InDelta(t, A4Landscape.W-(last.X+last.W), first.X, 1e-6)
	assert.InDelta(t, A4Landscape.H-(last.Y+last.H), first.Y, 1e-6)
	assert.Less(t, first.Y, cells[HangtagCols].Y, "row 0 is the bottom row")
	assert.InDelta(t, HangtagCell.W+HangtagSpacing, cells[1].X-first.X, 1e-9)
}

func TestHangtagPlacement(t *testing.T) {
	cell := Rect{X: 100, Y: 200, W: MM(40), H: MM(30)}

	bc := HangtagBarcode(cell)
	assert.InDelta(t, 100-MM(2), bc.X, 1e-9)
	assert.InDelta(t, 200+MM(11.5)-MM(1), bc.Y, 1e-9)

	assert.Equal(t, Point{X: 100 + MM(3), Y: 200 + MM(4)}, HangtagCodePoint(cell))
	assert.Equal(t, Point{X: 100 + MM(3), Y: 200 + MM(1)}, HangtagWeekPoint(cell))

	lb := LabelBarcode(Rect{X: 1, Y: 2, W: 3, H: 4})
	assert.InDelta(t, 1+MM(6), lb.X, 1e-9)
	assert.Equal(t, BarcodeSize.W, lb.W)
}
