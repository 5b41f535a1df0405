package export

import "label-exporter/internal/pdf"

// DocumentCatalog serves page lookups from an opened reference document.
type DocumentCatalog struct {
	doc     *pdf.Document
	locator *pdf.Locator
}

// NewCatalog wraps doc. A nil locator uses pdf.DefaultLocator.
func NewCatalog(doc *pdf.Document, locator *pdf.Locator) *DocumentCatalog {
	if locator == nil {
		locator = pdf.DefaultLocator()
	}
	return &DocumentCatalog{doc: doc, locator: locator}
}

func (c *DocumentCatalog) Path() string { return c.doc.Path }

func (c *DocumentCatalog) Locate(code string) (pdf.Match, bool) {
	return c.doc.FindPage(c.locator, code)
}

func (c *DocumentCatalog) Page(n int) (pdf.Page, error) {
	return c.doc.Page(n)
}
