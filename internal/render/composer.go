package render

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"label-exporter/internal/layout"
	"label-exporter/internal/logger"
	"label-exporter/internal/pdf"
	"label-exporter/internal/ranges"
	"label-exporter/internal/sheet"
	"label-exporter/internal/types"
)

// Font families the TrueType faces are registered under.
const (
	ColorFamily   = "LabelColor"
	HangtagFamily = "LabelHangtag"
)

const (
	labelTextSize   = 14.0
	labelBorderW    = 1.0
	hangtagTextSize = 7.0
	hangtagBorderW  = 0.5
)

type rgb struct{ r, g, b int }

var (
	labelBorderColor   = rgb{255, 0, 0}
	hangtagBorderColor = rgb{0, 204, 255}
	textColor          = rgb{0, 0, 0}
)

// Composer writes label sheets. The font faces are resolved once by the
// caller and reused for every file.
type Composer struct {
	colorFont   FontFace
	hangtagFont FontFace
	page        layout.Size
}

// NewComposer creates a composer drawing with the given faces.
func NewComposer(colorFont, hangtagFont FontFace) *Composer {
	return &Composer{colorFont: colorFont, hangtagFont: hangtagFont, page: layout.A4Landscape}
}

// ColorLabelName is the file name for one ColorLabel range of code.
func ColorLabelName(code string, r ranges.LabelRange) string {
	return fmt.Sprintf("%s_ColorLabel_%s_%s.pdf", code, r.Label(), r.Suffix)
}

// HangtagName is the file name of the hangtag sheet for code.
func HangtagName(code string) string {
	return fmt.Sprintf("%s_Hangtag.pdf", code)
}

// CodeDir is the per-code output folder under root.
func CodeDir(root, code string) string {
	return filepath.Join(root, sheet.StripCode(code))
}

func (c *Composer) newDocument() *gofpdf.Fpdf {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "L",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: c.page.H, Ht: c.page.W},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("label-exporter", false)
	return doc
}

// ColorLabel writes the 2x2 sheet for one range into path and returns the
// number of pages written. Each page holds one grid row from
// layout.Columnize.
func (c *Composer) ColorLabel(path, code string, r ranges.LabelRange, img *pdf.ResolvedImage) (int, error) {
	if img == nil || len(img.JPEG) == 0 {
		return 0, types.NewAppErrorWithDetails(types.ErrRender, "no label artwork", code, nil)
	}
	rows := layout.Columnize(r.Start, r.End)
	if len(rows) == 0 {
		return 0, types.NewAppErrorWithDetails(types.ErrInvalidRange, "empty range", r.Label(), nil)
	}

	doc := c.newDocument()
	c.colorFont.register(doc)

	const artName = "artwork"
	doc.RegisterImageOptionsReader(artName, gofpdf.ImageOptions{ImageType: "JPG"}, bytes.NewReader(img.JPEG))
	barcodeName, err := registerBarcode(doc, code)
	if err != nil {
		return 0, err
	}

	pageH := c.page.H
	quads := layout.Quadrants(c.page, layout.LabelSize, layout.LabelMargin)
	total := strconv.Itoa(r.Denominator)
	qty := ranges.FormatQuantity(r.Quantity)

	for _, row := range rows {
		doc.AddPage()
		tr := c.colorFont.use(doc, labelTextSize)
		for q, seq := range row {
			if seq == 0 {
				continue
			}
			box := quads[q]

			drawImage(doc, artName, box, pageH)

			doc.SetDrawColor(labelBorderColor.r, labelBorderColor.g, labelBorderColor.b)
			doc.SetLineWidth(labelBorderW)
			doc.Rect(box.X, box.Top(pageH), box.W, box.H, "D")

			doc.SetTextColor(textColor.r, textColor.g, textColor.b)
			drawCentered(doc, tr, layout.SeqPoint(box), ranges.FormatSeq(seq)+"/"+total, pageH)
			drawCentered(doc, tr, layout.QtyPoint(box), qty, pageH)

			drawImage(doc, barcodeName, layout.LabelBarcode(box), pageH)
		}
	}

	if err := save(doc, path); err != nil {
		return 0, err
	}
	logger.Info("color label written",
		logger.File(path),
		logger.Int("labels", r.Count()),
		logger.Int("pages", len(rows)))
	return len(rows), nil
}

// Hangtag writes the single-page 6x6 hangtag sheet for code into path.
func (c *Composer) Hangtag(path, code, weekText string) error {
	doc := c.newDocument()
	c.hangtagFont.register(doc)

	barcodeName, err := registerBarcode(doc, code)
	if err != nil {
		return err
	}

	pageH := c.page.H
	doc.AddPage()
	tr := c.hangtagFont.use(doc, hangtagTextSize)
	doc.SetTextColor(textColor.r, textColor.g, textColor.b)

	for _, cell := range layout.HangtagCells(c.page) {
		doc.SetDrawColor(hangtagBorderColor.r, hangtagBorderColor.g, hangtagBorderColor.b)
		doc.SetLineWidth(hangtagBorderW)
		doc.Rect(cell.X, cell.Top(pageH), cell.W, cell.H, "D")

		p := layout.HangtagCodePoint(cell)
		doc.Text(p.X, layout.Baseline(p.Y, pageH), tr(code))
		p = layout.HangtagWeekPoint(cell)
		doc.Text(p.X, layout.Baseline(p.Y, pageH), tr(weekText))

		drawImage(doc, barcodeName, layout.HangtagBarcode(cell), pageH)
	}

	if err := save(doc, path); err != nil {
		return err
	}
	logger.Info("hangtag written", logger.File(path))
	return nil
}

func drawCentered(doc *gofpdf.Fpdf, tr func(string) string, at layout.Point, s string, pageH float64) {
	s = tr(s)
	doc.Text(at.X-doc.GetStringWidth(s)/2, layout.Baseline(at.Y, pageH), s)
}

// save creates the parent directory on demand and writes doc.
func save(doc *gofpdf.Fpdf, path string) error {
	if err := doc.Error(); err != nil {
		return types.NewAppErrorWithDetails(types.ErrRender, "pdf composition failed", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return types.NewAppErrorWithDetails(types.ErrRender, "cannot create output folder", filepath.Dir(path), err)
	}
	if err := doc.OutputFileAndClose(path); err != nil {
		return types.NewAppErrorWithDetails(types.ErrRender, "cannot write pdf", filepath.Base(path), err)
	}
	return nil
}
