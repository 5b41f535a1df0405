// Package render composes ColorLabel and Hangtag sheets with gofpdf.
package render

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"label-exporter/internal/logger"
)

// Built-in fallbacks used when a TrueType file cannot be loaded.
const (
	BuiltinFamily = "Helvetica"
	StyleRegular  = ""
	StyleBold     = "B"
)

var ttfMagics = [][]byte{
	{0x00, 0x01, 0x00, 0x00},
	[]byte("true"),
	[]byte("OTTO"),
}

// FontFace is a resolved font: either TrueType bytes to embed or one of the
// PDF core fonts.
type FontFace struct {
	Family string
	Style  string
	TTF    []byte
	Source string // file the face was loaded from, empty for core fonts
}

// Builtin reports whether the face is a PDF core font.
func (f FontFace) Builtin() bool {
	return len(f.TTF) == 0
}

// ResolveFont loads the TrueType file at path under family. When the file is
// missing or not a font, the core Helvetica face with fallbackStyle is
// returned instead; this never fails.
func ResolveFont(path, family, fallbackStyle string) FontFace {
	fallback := FontFace{Family: BuiltinFamily, Style: fallbackStyle}
	if path == "" {
		return fallback
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("font not available, using built-in",
			logger.String("font", filepath.Base(path)),
			logger.String("fallback", BuiltinFamily+fallbackStyle))
		return fallback
	}
	if !isTrueType(data) {
		logger.Warn("font file is not TrueType, using built-in",
			logger.String("font", filepath.Base(path)))
		return fallback
	}
	return FontFace{Family: family, Style: StyleRegular, TTF: data, Source: path}
}

func isTrueType(data []byte) bool {
	if len(data) < 12 {
		return false
	}
	for _, m := range ttfMagics {
		if bytes.Equal(data[:4], m) {
			return true
		}
	}
	return false
}

// register makes the face available on doc. Core fonts need no registration.
func (f FontFace) register(doc *gofpdf.Fpdf) {
	if !f.Builtin() {
		doc.AddUTF8FontFromBytes(f.Family, f.Style, f.TTF)
	}
}

// use selects the face at size and returns a translator for text drawn with
// it. Core fonts only cover cp1252.
func (f FontFace) use(doc *gofpdf.Fpdf, size float64) func(string) string {
	doc.SetFont(f.Family, f.Style, size)
	if f.Builtin() {
		return doc.UnicodeTranslatorFromDescriptor("")
	}
	return func(s string) string { return s }
}
