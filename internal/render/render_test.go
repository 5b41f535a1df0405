package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"label-exporter/internal/pdf"
	"label-exporter/internal/ranges"
	"label-exporter/internal/types"
)

func testArtwork(t *testing.T) *pdf.ResolvedImage {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 231, 154))
	for y := 0; y < 154; y++ {
		for x := 0; x < 231; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: uint8(x), B: uint8(y), A: 255})
		}
	}
	data, err := pdf.EncodeJPEG(img)
	require.NoError(t, err)
	return &pdf.ResolvedImage{Page: 1, Width: 231, Height: 154, JPEG: data}
}

func builtinComposer() *Composer {
	return NewComposer(
		ResolveFont("", ColorFamily, StyleRegular),
		ResolveFont("", HangtagFamily, StyleBold),
	)
}

func TestResolveFontFallback(t *testing.T) {
	f := ResolveFont(filepath.Join(t.TempDir(), "missing.ttf"), ColorFamily, StyleBold)
	assert.True(t, f.Builtin())
	assert.Equal(t, BuiltinFamily, f.Family)
	assert.Equal(t, StyleBold, f.Style)

	junk := filepath.Join(t.TempDir(), "junk.ttf")
	require.NoError(t, os.WriteFile(junk, []byte("definitely not a font file"), 0644))
	f = ResolveFont(junk, ColorFamily, StyleRegular)
	assert.True(t, f.Builtin())
}

func TestResolveFontTrueTypeHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "face.ttf")
	data := append([]byte{0x00, 0x01, 0x00, 0x00}, make([]byte, 32)...)
	require.NoError(t, os.WriteFile(path, data, 0644))

	f := ResolveFont(path, HangtagFamily, StyleBold)
	assert.False(t, f.Builtin())
	assert.Equal(t, HangtagFamily, f.Family)
	assert.Equal(t, path, f.Source)
}

func TestBarcodePNG(t *testing.T) {
	data, err := BarcodePNG("C207720")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, barcodeHeightPx, img.Bounds().Dy())
	assert.Zero(t, img.Bounds().Dx()%barcodeModulePx)

	_, err = BarcodePNG("")
	assert.Equal(t, types.ErrRender, types.CodeOf(err))
}

func TestFileNames(t *testing.T) {
	r := ranges.LabelRange{Start: 7, End: 45, Suffix: "LSX_01"}
	assert.Equal(t, "C207720_ColorLabel_07-45_LSX_01.pdf", ColorLabelName("C207720", r))

	r = ranges.LabelRange{Start: 501, End: 600, Suffix: "LSX"}
	assert.Equal(t, "C207720_ColorLabel_501-600_LSX.pdf", ColorLabelName("C207720", r))

	assert.Equal(t, "C207720_Hangtag.pdf", HangtagName("C207720"))
	assert.Equal(t, filepath.Join("out", "C207720"), CodeDir("out", "c-207720"))
}

func TestColorLabelPages(t *testing.T) {
	out := filepath.Join(t.TempDir(), "C207720", "C207720_ColorLabel_01-10_LSX.pdf")
	r := ranges.LabelRange{Start: 1, End: 10, Denominator: 600, Suffix: "LSX", Quantity: 2}

	pages, err := builtinComposer().ColorLabel(out, "C207720", r, testArtwork(t))
	require.NoError(t, err)
	assert.Equal(t, 3, pages)

	n, err := pdf.PageCount(out)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestColorLabelRequiresArtwork(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.pdf")
	_, err := builtinComposer().ColorLabel(out, "C1", ranges.LabelRange{Start: 1, End: 1}, nil)
	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestHangtagSinglePage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "B100", "B100_Hangtag.pdf")
	require.NoError(t, builtinComposer().Hangtag(out, "B100", "MER-2411 W42"))

	n, err := pdf.PageCount(out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
