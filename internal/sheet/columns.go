package sheet

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Column identifies a semantic spreadsheet column.
type Column int

const (
	ColCode Column = iota
	ColQuantity
	ColRowQuantity
	ColTotalQuantity
	ColLotTag
	ColFrom
	ColTo
)

func (c Column) String() string {
	switch c {
	case ColCode:
		return "Code"
	case ColQuantity:
		return "QTY"
	case ColRowQuantity:
		return "Số lượng"
	case ColTotalQuantity:
		return "SL Tổng"
	case ColLotTag:
		return "LSX"
	case ColFrom:
		return "From"
	case ColTo:
		return "To"
	default:
		return "unknown"
	}
}

// headerSynonyms lists accepted header names per column, in priority order.
var headerSynonyms = map[Column][]string{
	ColCode:          {"Mã SP đối tác", "Ma SP doi tac", "Code", "Mã SP", "MÃ SP ĐỐI TÁC", "MaSp", "MASP"},
	ColQuantity:      {"QTY", "Qty", "qty"},
	ColRowQuantity:   {"Số lượng", "So luong", "SO LUONG", "SoLuong", "SOLUONG"},
	ColTotalQuantity: {"SL Tổng", "SL tổng", "SL tong", "Tổng SL", "Tong SL", "Total N", "Total Labels", "TongN", "Tong N", "SLTONG", "SL_TONG"},
	ColLotTag:        {"LSX", "Lệnh SX", "Lenh SX", "LenhSX", "LSX."},
	ColFrom:          {"From", "Từ", "Tu", "Start", "Bắt đầu", "Bat dau", "Khoảng từ", "Khoang tu"},
	ColTo:            {"To", "Đến", "Den", "End", "Kết thúc", "Ket thuc", "Khoảng đến", "Khoang den"},
}

// RequiredColumns must all be present for a spreadsheet to load.
var RequiredColumns = []Column{ColCode, ColQuantity, ColRowQuantity}

// ColumnIndex maps detected columns to their zero-based header position.
type ColumnIndex map[Column]int

// DetectColumns matches header against the synonym lists. Each synonym is
// tried exactly, then case-insensitively; when no synonym matches either way,
// a diacritic-insensitive comparison is attempted so "So Luong" finds
// "Số lượng".
func DetectColumns(header []string) ColumnIndex {
	idx := ColumnIndex{}
	for col, names := range headerSynonyms {
		if i := findColumn(header, names); i >= 0 {
			idx[col] = i
		}
	}
	return idx
}

// Missing returns the required columns absent from idx.
func (idx ColumnIndex) Missing() []Column {
	var missing []Column
	for _, c := range RequiredColumns {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

func findColumn(header []string, names []string) int {
	for _, n := range names {
		for i, h := range header {
			if strings.TrimSpace(h) == n {
				return i
			}
		}
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), n) {
				return i
			}
		}
	}
	for _, n := range names {
		want := foldHeader(n)
		for i, h := range header {
			if foldHeader(h) == want {
				return i
			}
		}
	}
	return -1
}

// foldHeader lower-cases s, strips combining marks and collapses whitespace.
// Đ/đ has no decomposition and is mapped by hand.
func foldHeader(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	out = strings.NewReplacer("Đ", "D", "đ", "d").Replace(out)
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}
