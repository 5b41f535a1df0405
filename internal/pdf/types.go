// Package pdf reads the reference catalog: page text for locating products,
// week/lot markers, page rasters for the label artwork, and validation of the
// sheets we write.
package pdf

import "strings"

// Word is one text run as positioned on the page.
type Word struct {
	S string
	X float64 // points from the left edge
	Y float64 // points from the bottom edge
}

// Line is a row of words sharing a baseline.
type Line struct {
	Y     float64
	Words []Word
}

// Text returns the line's words concatenated in order.
func (l Line) Text() string {
	var b strings.Builder
	for _, w := range l.Words {
		b.WriteString(w.S)
	}
	return b.String()
}

// Page is the extracted content of one catalog page.
type Page struct {
	Number int // 1-based
	Width  float64
	Height float64
	Lines  []Line
}

// Text returns all lines of the page separated by newlines, top to bottom.
func (p Page) Text() string {
	parts := make([]string, 0, len(p.Lines))
	for _, l := range p.Lines {
		parts = append(parts, l.Text())
	}
	return strings.Join(parts, "\n")
}

// PDFErrorCode 错误代码枚举
type PDFErrorCode string

const (
	ErrPDFNotFound    PDFErrorCode = "PDF_NOT_FOUND"
	ErrPDFInvalid     PDFErrorCode = "PDF_INVALID"
	ErrPageOutOfRange PDFErrorCode = "PAGE_OUT_OF_RANGE"
	ErrRasterFailed   PDFErrorCode = "RASTER_FAILED"
	ErrCropFailed     PDFErrorCode = "CROP_FAILED"
	ErrValidateFailed PDFErrorCode = "VALIDATE_FAILED"
)

// PDFError PDF 处理错误
type PDFError struct {
	Code    PDFErrorCode `json:"code"`
	Message string       `json:"message"`
	Details string       `json:"details,omitempty"`
	Page    int          `json:"page,omitempty"`
	Cause   error        `json:"-"`
}

// Error implements the error interface for PDFError
func (e *PDFError) Error() string {
	msg := e.Message
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause of the error
func (e *PDFError) Unwrap() error {
	return e.Cause
}

// NewPDFError creates a new PDFError with the given code, message, and optional cause
func NewPDFError(code PDFErrorCode, message string, cause error) *PDFError {
	return &PDFError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewPDFErrorWithDetails creates a new PDFError with details
func NewPDFErrorWithDetails(code PDFErrorCode, message, details string, cause error) *PDFError {
	return &PDFError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// NewPDFErrorWithPage creates a new PDFError with page information
func NewPDFErrorWithPage(code PDFErrorCode, message string, page int, cause error) *PDFError {
	return &PDFError{
		Code:    code,
		Message: message,
		Page:    page,
		Cause:   cause,
	}
}
