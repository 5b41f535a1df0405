// Package ranges allocates the sequence-number ranges printed for each code.
//
// Three allocation modes exist and are mutually exclusive per run:
//
//   - AutoSplit: each row's label count N = R/Q is cut into fixed-size chunks.
//   - FromSheet: rows are numbered consecutively, carrying the next start
//     number from row to row, unless a row supplies an explicit From/To.
//   - Manual: one (from, to) pair is applied to every code, clamped to the
//     code's total label count.
//
// The denominator rules differ by mode on purpose; they decide what total is
// printed in "current/total" and must not be unified.
package ranges

import (
	"fmt"
	"strconv"

	"label-exporter/internal/sheet"
	"label-exporter/internal/types"
)

// DefaultChunkSize is the maximum number of labels per ColorLabel file in
// auto-split mode.
const DefaultChunkSize = 500

// LabelRange is one ColorLabel file worth of sequence numbers.
type LabelRange struct {
	Start       int
	End         int
	Denominator int    // total shown as "current/Denominator"
	Suffix      string // file-name token
	Quantity    int    // quantity per label printed on every label
}

// Count returns the number of labels in the range.
func (r LabelRange) Count() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start + 1
}

// Label returns the "07-45" style range text used in file names.
func (r LabelRange) Label() string {
	return FormatSeq(r.Start) + "-" + FormatSeq(r.End)
}

// FormatSeq zero-pads values under 100 to two digits; larger values are
// printed as-is.
func FormatSeq(n int) string {
	if n < 100 && n >= 0 {
		return fmt.Sprintf("%02d", n)
	}
	return strconv.Itoa(n)
}

// FormatQuantity renders the per-label quantity as at least two digits.
func FormatQuantity(q int) string {
	return fmt.Sprintf("%02d", q)
}

// labelCount is R/Q, or 0 when Q is not positive.
func labelCount(r sheet.InputRow) int {
	if r.Quantity <= 0 {
		return 0
	}
	return r.RowQuantity / r.Quantity
}

// totalRatio is T/Q, or 0 when either side is not positive.
func totalRatio(r sheet.InputRow) int {
	if r.TotalQuantity <= 0 || r.Quantity <= 0 {
		return 0
	}
	return r.TotalQuantity / r.Quantity
}

// AutoSplit splits every row's [1, N] into chunks of at most chunkSize. The
// denominator is N unless T/Q is larger. Rows with N <= 0 produce nothing.
func AutoSplit(rows []sheet.InputRow, chunkSize int) []LabelRange {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	var out []LabelRange
	for _, row := range rows {
		n := labelCount(row)
		if n <= 0 {
			continue
		}
		denom := n
		if t := totalRatio(row); t > denom {
			denom = t
		}
		for cur := 1; cur <= n; {
			end := min(cur+chunkSize-1, n)
			out = append(out, LabelRange{
				Start:       cur,
				End:         end,
				Denominator: denom,
				Suffix:      sheet.DefaultSuffix,
				Quantity:    row.Quantity,
			})
			cur = end + 1
		}
	}
	return out
}

// FromSheet numbers rows consecutively. A row with explicit positive From/To
// uses them as given; otherwise it takes [next, next+N-1]. After every row next becomes
// max(end, next-1)+1, so numbering never moves backwards even when a row
// yields no labels. A row is emitted only when N > 0 and start <= end. The
// denominator is T/Q when available, otherwise the row's end.
func FromSheet(rows []sheet.InputRow) []LabelRange {
	var out []LabelRange
	next := 1
	for _, row := range rows {
		n := labelCount(row)

		start, end := next, next+max(n, 0)-1
		if row.HasRange && row.From >= 1 && row.To >= 1 {
			start, end = row.From, row.To
		}

		denom := totalRatio(row)
		if denom == 0 {
			denom = max(end, 0)
		}

		if n > 0 && start <= end {
			out = append(out, LabelRange{
				Start:       start,
				End:         end,
				Denominator: denom,
				Suffix:      row.LotTag,
				Quantity:    row.Quantity,
			})
		}
		next = max(end, next-1) + 1
	}
	return out
}

// Manual applies one requested range to a code, using the group's first row
// for Q, T and the lot tag. D = T/Q (0 when unknown) clamps to; the request is
// rejected with ErrInvalidRange when from < 1, from > D (D known) or from > to.
// A zero Q yields no range and no error.
func Manual(rows []sheet.InputRow, from, to int) ([]LabelRange, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	row := rows[0]
	if row.Quantity <= 0 {
		return nil, nil
	}

	denom := totalRatio(row)
	if denom > 0 && to > denom {
		to = denom
	}
	if from < 1 || (denom > 0 && from > denom) || from > to {
		total := "N/A"
		if denom > 0 {
			total = strconv.Itoa(denom)
		}
		return nil, types.NewAppErrorWithDetails(types.ErrInvalidRange,
			"invalid range", fmt.Sprintf("%d-%d / %s", from, to, total), nil)
	}

	display := denom
	if display == 0 {
		display = to
	}
	return []LabelRange{{
		Start:       from,
		End:         to,
		Denominator: display,
		Suffix:      row.LotTag,
		Quantity:    row.Quantity,
	}}, nil
}

// Request describes how a run allocates ranges.
type Request struct {
	Mode       types.RangeMode
	ChunkSize  int
	ManualFrom int
	ManualTo   int
}

// Allocate dispatches to the allocator selected by req.Mode.
func Allocate(rows []sheet.InputRow, req Request) ([]LabelRange, error) {
	switch req.Mode {
	case types.RangeManual:
		return Manual(rows, req.ManualFrom, req.ManualTo)
	case types.RangeFromSheet:
		return FromSheet(rows), nil
	default:
		return AutoSplit(rows, req.ChunkSize), nil
	}
}
