package pdf

import (
	"os"
	"sort"

	"github.com/ledongthuc/pdf"

	"label-exporter/internal/logger"
)

// Fallback page size when a page carries no usable MediaBox (A4 portrait).
const (
	defaultPageWidth  = 595.28
	defaultPageHeight = 841.89
)

// Document is the text model of a reference catalog. Text is extracted once
// on Open; page lookups afterwards are pure.
type Document struct {
	Path  string
	Pages []Page

	texts []string
}

// Open reads every page of the catalog at path and extracts its text rows.
// Pages whose text cannot be decoded are kept with no lines so page numbers
// stay aligned with the file.
func Open(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewPDFErrorWithDetails(ErrPDFNotFound, "reference document not found", path, err)
		}
		return nil, NewPDFErrorWithDetails(ErrPDFInvalid, "cannot access reference document", path, err)
	}
	if info.IsDir() {
		return nil, NewPDFErrorWithDetails(ErrPDFInvalid, "path is a directory", path, nil)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, NewPDFErrorWithDetails(ErrPDFInvalid, "cannot open reference document", path, err)
	}
	defer f.Close()

	doc := &Document{Path: path}
	total := r.NumPage()
	for n := 1; n <= total; n++ {
		doc.Pages = append(doc.Pages, readPage(r.Page(n), n))
	}

	logger.Debug("reference document loaded",
		logger.File(path),
		logger.Int("pages", total))
	return doc, nil
}

func readPage(page pdf.Page, n int) Page {
	out := Page{Number: n, Width: defaultPageWidth, Height: defaultPageHeight}
	if page.V.IsNull() {
		return out
	}

	if box := page.MediaBox(); box.Len() == 4 {
		w := box.Index(2).Float64() - box.Index(0).Float64()
		h := box.Index(3).Float64() - box.Index(1).Float64()
		if w > 0 && h > 0 {
			out.Width, out.Height = w, h
		}
	}

	if page.V.Key("Contents").Kind() == pdf.Null {
		return out
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		logger.Warn("text extraction failed", logger.Int("page", n), logger.Err(err))
		return out
	}

	for _, row := range rows {
		if row == nil || len(row.Content) == 0 {
			continue
		}
		line := Line{Y: float64(row.Position)}
		for _, t := range row.Content {
			if t.S == "" {
				continue
			}
			line.Words = append(line.Words, Word{S: t.S, X: t.X, Y: t.Y})
		}
		if len(line.Words) > 0 {
			out.Lines = append(out.Lines, line)
		}
	}

	// Top to bottom, matching reading order.
	sort.SliceStable(out.Lines, func(i, j int) bool {
		return out.Lines[i].Y > out.Lines[j].Y
	})
	return out
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return len(d.Pages)
}

// Page returns page n (1-based).
func (d *Document) Page(n int) (Page, error) {
	if n < 1 || n > len(d.Pages) {
		return Page{}, NewPDFErrorWithPage(ErrPageOutOfRange, "page out of range", n, nil)
	}
	return d.Pages[n-1], nil
}

// PageTexts returns the full text of every page in page order.
func (d *Document) PageTexts() []string {
	if len(d.texts) != len(d.Pages) {
		d.texts = make([]string, len(d.Pages))
		for i, p := range d.Pages {
			d.texts[i] = p.Text()
		}
	}
	return d.texts
}
