package render

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code39"
	"github.com/jung-kurt/gofpdf"

	"label-exporter/internal/layout"
	"label-exporter/internal/types"
)

// Raster size of one barcode module and the bar height, in pixels. The image
// is stretched into layout.BarcodeSize when placed.
const (
	barcodeModulePx = 4
	barcodeHeightPx = 80
)

// BarcodePNG encodes value as Code 39 (no check digit) and returns it as PNG.
func BarcodePNG(value string) ([]byte, error) {
	if value == "" {
		return nil, types.NewAppError(types.ErrRender, "empty barcode value", nil)
	}
	bc, err := code39.Encode(value, false, false)
	if err != nil {
		return nil, types.NewAppErrorWithDetails(types.ErrRender, "barcode encoding failed", value, err)
	}
	scaled, err := barcode.Scale(bc, bc.Bounds().Dx()*barcodeModulePx, barcodeHeightPx)
	if err != nil {
		return nil, types.NewAppErrorWithDetails(types.ErrRender, "barcode scaling failed", value, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, types.NewAppErrorWithDetails(types.ErrRender, "barcode png encoding failed", value, err)
	}
	return buf.Bytes(), nil
}

// registerBarcode adds the barcode for value to doc and returns its image
// name.
func registerBarcode(doc *gofpdf.Fpdf, value string) (string, error) {
	data, err := BarcodePNG(value)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("barcode-%s", value)
	doc.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(data))
	return name, doc.Error()
}

// drawImage places a registered image in box (bottom-left coordinates).
func drawImage(doc *gofpdf.Fpdf, name string, box layout.Rect, pageH float64) {
	doc.ImageOptions(name, box.X, box.Top(pageH), box.W, box.H, false,
		gofpdf.ImageOptions{AllowNegativePosition: true}, 0, "")
}
