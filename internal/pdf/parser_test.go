package pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_NonExistentFile(t *testing.T) {
	_, err := Open("/non/existent/catalog.pdf")
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}

	var pdfErr *PDFError
	if !errors.As(err, &pdfErr) {
		t.Fatalf("Expected PDFError, got %T", err)
	}
	if pdfErr.Code != ErrPDFNotFound {
		t.Errorf("Expected error code %s, got %s", ErrPDFNotFound, pdfErr.Code)
	}
}

func TestOpen_Directory(t *testing.T) {
	_, err := Open(t.TempDir())
	if err == nil {
		t.Fatal("Expected error for directory path, got nil")
	}

	var pdfErr *PDFError
	if !errors.As(err, &pdfErr) {
		t.Fatalf("Expected PDFError, got %T", err)
	}
	if pdfErr.Code != ErrPDFInvalid {
		t.Errorf("Expected error code %s, got %s", ErrPDFInvalid, pdfErr.Code)
	}
}

func TestOpen_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.pdf")
	if err := os.WriteFile(path, []byte("This is not a PDF file"), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("Expected error for invalid PDF file, got nil")
	}

	var pdfErr *PDFError
	if !errors.As(err, &pdfErr) {
		t.Fatalf("Expected PDFError, got %T", err)
	}
	if pdfErr.Code != ErrPDFInvalid {
		t.Errorf("Expected error code %s, got %s", ErrPDFInvalid, pdfErr.Code)
	}
}

func line(y float64, words ...Word) Line {
	return Line{Y: y, Words: words}
}

func TestPageText(t *testing.T) {
	p := Page{Lines: []Line{
		line(700, Word{S: "C2077"}, Word{S: "20"}),
		line(650, Word{S: "W42"}),
	}}
	if got := p.Text(); got != "C207720\nW42" {
		t.Errorf("Text() = %q", got)
	}
}

func TestDocumentPage(t *testing.T) {
	doc := &Document{Pages: []Page{{Number: 1}, {Number: 2}}}

	p, err := doc.Page(2)
	if err != nil {
		t.Fatalf("Page(2) error: %v", err)
	}
	if p.Number != 2 {
		t.Errorf("Page(2).Number = %d", p.Number)
	}

	_, err = doc.Page(3)
	var pdfErr *PDFError
	if !errors.As(err, &pdfErr) || pdfErr.Code != ErrPageOutOfRange {
		t.Errorf("Page(3) error = %v, want %s", err, ErrPageOutOfRange)
	}
	if doc.NumPages() != 2 {
		t.Errorf("NumPages() = %d", doc.NumPages())
	}
}
