package sheet

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"label-exporter/internal/types"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"integer string", "12", 12},
		{"padded", "  40 ", 40},
		{"float string truncates", "12.9", 12},
		{"empty", "", 0},
		{"nan", "NaN", 0},
		{"none", "None", 0},
		{"null", "null", 0},
		{"garbage", "12 pcs", 0},
		{"nil", nil, 0},
		{"int", 7, 7},
		{"float", 3.99, 3},
		{"float nan", math.NaN(), 0},
		{"negative clamps", "-5", 0},
		{"exponent", "1e3", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuantity(tt.in))
		})
	}
}

func TestParseOptional(t *testing.T) {
	v, ok := ParseOptional("15.0")
	assert.True(t, ok)
	assert.Equal(t, 15, v)

	_, ok = ParseOptional(" ")
	assert.False(t, ok)

	_, ok = ParseOptional("abc")
	assert.False(t, ok)
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "C207720", NormalizeCode(" c-207 720 "))
	assert.Equal(t, "C207720", NormalizeCode("CC207720"))
	assert.Equal(t, "C207720", NormalizeCode("cc.207720"))
	assert.Equal(t, "AB12", NormalizeCode("ab/12"))
	assert.Equal(t, "", NormalizeCode("--"))
	assert.Regexp(t, `^[A-Z0-9]+$`, NormalizeCode("Mã-01"))
}

func TestSanitizeForFilename(t *testing.T) {
	assert.Equal(t, "LSX_2025-01", SanitizeForFilename("  LSX 2025/01 "))
	assert.Equal(t, "A_B", SanitizeForFilename("A \t B"))
	assert.Equal(t, "lot.7-x", SanitizeForFilename("lot.7#@x"))
	assert.Equal(t, DefaultSuffix, SanitizeForFilename("   "))
}

func TestParseSelection(t *testing.T) {
	assert.Nil(t, ParseSelection("all"))
	assert.Nil(t, ParseSelection(""))
	assert.Equal(t, []string{"C207720", "C207721"}, ParseSelection("c207720, CC207721"))
	got := ParseSelection(" , ")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDetectColumns(t *testing.T) {
	header := []string{"STT", "Mã SP đối tác", "qty", "So Luong", "Tong SL", "Lệnh SX", "Từ", "Đến"}
	idx := DetectColumns(header)

	assert.Equal(t, 1, idx[ColCode])
	assert.Equal(t, 2, idx[ColQuantity])
	assert.Equal(t, 3, idx[ColRowQuantity])
	assert.Equal(t, 4, idx[ColTotalQuantity])
	assert.Equal(t, 5, idx[ColLotTag])
	assert.Equal(t, 6, idx[ColFrom])
	assert.Equal(t, 7, idx[ColTo])
	assert.Empty(t, idx.Missing())
}

func TestDetectColumnsAccentInsensitive(t *testing.T) {
	idx := DetectColumns([]string{"MA SP DOI TAC", "QTY", "Sô Luọng"})
	assert.Equal(t, 0, idx[ColCode])
	assert.Equal(t, 2, idx[ColRowQuantity])
}

func TestParseRowsMissingColumns(t *testing.T) {
	_, err := ParseRows([][]string{{"Code", "QTY"}})
	require.Error(t, err)

	var appErr *types.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, types.ErrMissingColumn, appErr.Code)
	assert.Contains(t, appErr.Details, "Số lượng")
}

func TestParseRowsIgnoresNonPositiveRange(t *testing.T) {
	rows, err := ParseRows([][]string{
		{"Code", "QTY", "So luong", "From", "To"},
		{"C1", "10", "30", "0", "3"},
		{"C1", "10", "30", "-2", "1"},
		{"C1", "10", "30", "4", "0"},
		{"C1", "10", "30", "7", "9"},
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)

	for _, r := range rows[:3] {
		assert.False(t, r.HasRange, "line %d", r.Line)
	}
	assert.True(t, rows[3].HasRange)
	assert.Equal(t, 7, rows[3].From)
	assert.Equal(t, 9, rows[3].To)
}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	path := filepath.Join(t.TempDir(), "W42_orders.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadAndGroup(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Code", "QTY", "Số lượng", "SL Tổng", "LSX", "From", "To"},
		{"C207720", 10, 50, 800, "LSX 01", nil, nil},
		{"B100", "2", "1200", nil, nil, nil, nil},
		{"CC207720", 10, 30, 800, "LSX 02", 11, 13},
		{"", 1, 1, nil, nil, nil, nil},
		{"b-100", "nan", "7", nil, nil, nil, nil},
	})

	rows, err := Load(path)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	first := rows[0]
	assert.Equal(t, "C207720", first.Code)
	assert.Equal(t, 10, first.Quantity)
	assert.Equal(t, 50, first.RowQuantity)
	assert.Equal(t, 800, first.TotalQuantity)
	assert.Equal(t, "LSX_01", first.LotTag)
	assert.False(t, first.HasRange)
	assert.Equal(t, 2, first.Line)

	assert.Equal(t, DefaultSuffix, rows[1].LotTag)
	assert.True(t, rows[2].HasRange)
	assert.Equal(t, 11, rows[2].From)
	assert.Equal(t, 13, rows[2].To)
	assert.Equal(t, 0, rows[3].Quantity)

	groups := GroupByCode(rows)
	require.Len(t, groups, 2)
	assert.Equal(t, "C207720", groups[0].Code)
	assert.Len(t, groups[0].Rows, 2)
	assert.Equal(t, "LSX_01", groups[0].Rows[0].LotTag)
	assert.Equal(t, "B100", groups[1].Code)
	assert.Len(t, groups[1].Rows, 2)

	filtered := FilterGroups(groups, ParseSelection("B100"))
	require.Len(t, filtered, 1)
	assert.Equal(t, "B100", filtered[0].Code)
	assert.Empty(t, FilterGroups(groups, []string{"ZZZ"}))
	assert.Len(t, FilterGroups(groups, nil), 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.Equal(t, types.ErrFileNotFound, types.CodeOf(err))
}
