// Package sheet loads the quantity spreadsheet into normalized input rows.
package sheet

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"label-exporter/internal/logger"
	"label-exporter/internal/types"
)

// InputRow is one spreadsheet row after normalization. It is never mutated
// after Load returns.
type InputRow struct {
	Line          int    // 1-based spreadsheet row, for diagnostics
	RawCode       string // code cell as written
	Code          string // NormalizeCode(RawCode)
	Quantity      int    // quantity per label (Q)
	RowQuantity   int    // units in this row (R)
	TotalQuantity int    // total units for the code, 0 if absent
	LotTag        string // sanitized lot tag
	From          int
	To            int
	HasRange      bool // both From and To were present and positive
}

// CodeGroup holds the rows of one normalized code in spreadsheet order.
type CodeGroup struct {
	Code string
	Rows []InputRow
}

// Load opens an .xlsx workbook and reads its first sheet. The first row is the
// header. Missing required columns abort with ErrMissingColumn; rows with an
// empty code are dropped.
func Load(path string) ([]InputRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, types.NewAppErrorWithDetails(types.ErrFileNotFound, "cannot open spreadsheet", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, types.NewAppErrorWithDetails(types.ErrInvalidInput, "spreadsheet has no sheets", path, nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, types.NewAppErrorWithDetails(types.ErrInvalidInput, "cannot read sheet", sheets[0], err)
	}
	return ParseRows(rows)
}

// ParseRows converts raw string rows (header first) into InputRows.
func ParseRows(rows [][]string) ([]InputRow, error) {
	if len(rows) == 0 {
		return nil, types.NewAppError(types.ErrMissingColumn, "spreadsheet is empty", nil)
	}

	cols := DetectColumns(rows[0])
	if missing := cols.Missing(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, c := range missing {
			names[i] = c.String()
		}
		return nil, types.NewAppErrorWithDetails(types.ErrMissingColumn,
			"required columns not found (Code/QTY/Số lượng)", strings.Join(names, ", "), nil)
	}

	cell := func(row []string, c Column) (string, bool) {
		i, ok := cols[c]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	var out []InputRow
	for n, row := range rows[1:] {
		raw, _ := cell(row, ColCode)
		code := NormalizeCode(raw)
		if code == "" {
			logger.Debug("skipping row without code", logger.Int("line", n+2))
			continue
		}

		in := InputRow{Line: n + 2, RawCode: raw, Code: code}

		v, _ := cell(row, ColQuantity)
		in.Quantity = ParseQuantity(v)
		v, _ = cell(row, ColRowQuantity)
		in.RowQuantity = ParseQuantity(v)
		if v, ok := cell(row, ColTotalQuantity); ok {
			in.TotalQuantity = ParseQuantity(v)
		}
		lot, _ := cell(row, ColLotTag)
		in.LotTag = SanitizeForFilename(lot)

		fromRaw, _ := cell(row, ColFrom)
		toRaw, _ := cell(row, ColTo)
		from, okFrom := ParseOptional(fromRaw)
		to, okTo := ParseOptional(toRaw)
		if okFrom && okTo && from >= 1 && to >= 1 {
			in.From, in.To, in.HasRange = from, to, true
		}

		out = append(out, in)
	}
	return out, nil
}

// GroupByCode groups rows by normalized code. Groups follow first-seen order
// and rows keep spreadsheet order inside each group.
func GroupByCode(rows []InputRow) []CodeGroup {
	pos := map[string]int{}
	var groups []CodeGroup
	for _, r := range rows {
		i, ok := pos[r.Code]
		if !ok {
			i = len(groups)
			pos[r.Code] = i
			groups = append(groups, CodeGroup{Code: r.Code})
		}
		groups[i].Rows = append(groups[i].Rows, r)
	}
	return groups
}

// FilterGroups keeps only groups whose code is in want. A nil want keeps
// everything.
func FilterGroups(groups []CodeGroup, want []string) []CodeGroup {
	if want == nil {
		return groups
	}
	keep := make(map[string]bool, len(want))
	for _, c := range want {
		keep[c] = true
	}
	var out []CodeGroup
	for _, g := range groups {
		if keep[g.Code] {
			out = append(out, g)
		}
	}
	return out
}
