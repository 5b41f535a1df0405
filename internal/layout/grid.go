package layout

// Columns is the number of labels per ColorLabel page.
const Columns = 4

// GridRow holds the sequence numbers printed on one page, one per quadrant.
// Zero marks an empty quadrant; sequence numbers start at 1.
type GridRow [Columns]int

// Count returns the number of labels in the row.
func (r GridRow) Count() int {
	n := 0
	for _, v := range r {
		if v != 0 {
			n++
		}
	}
	return n
}

// ColumnSizes splits total across the columns as evenly as possible; the
// first total%Columns columns get one extra.
func ColumnSizes(total int) [Columns]int {
	var sizes [Columns]int
	if total <= 0 {
		return sizes
	}
	base, rem := total/Columns, total%Columns
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

// Columnize fills [start, end] column by column (not round-robin) and reads
// the result back row by row, so consecutive pages walk each quadrant's stack
// in order. A range starting below 1 yields nothing, since zero is the empty
// marker.
func Columnize(start, end int) []GridRow {
	if start < 1 || end < start {
		return nil
	}
	sizes := ColumnSizes(end - start + 1)

	var cols [Columns][]int
	next := start
	for c, n := range sizes {
		cols[c] = make([]int, n)
		for i := range n {
			cols[c][i] = next
			next++
		}
	}

	rows := make([]GridRow, sizes[0])
	for r := range rows {
		for c := range cols {
			if r < len(cols[c]) {
				rows[r][c] = cols[c][r]
			}
		}
	}
	return rows
}
