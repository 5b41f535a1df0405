// Package types defines core data types and enums for the label exporter.
package types

import "strings"

// Config holds the persisted application configuration.
type Config struct {
	OutputDir       string `json:"output_dir"`        // root folder, one sub-folder per code
	ChunkSize       int    `json:"chunk_size"`        // labels per ColorLabel file in auto-split mode
	DPI             int    `json:"dpi"`               // page raster resolution
	ColorFontFile   string `json:"color_font_file"`   // TTF used for the ColorLabel overlay text
	HangtagFontFile string `json:"hangtag_font_file"` // TTF used for hangtag text
	LogLevel        string `json:"log_level"`
	LogFile         string `json:"log_file"` // empty means console only
	ValidateOutput  bool   `json:"validate_output"`
}

// ExportMode selects which sheet kinds are written.
type ExportMode string

const (
	ExportColor   ExportMode = "color"
	ExportHangtag ExportMode = "hangtag"
	ExportBoth    ExportMode = "both"
)

// ParseExportMode parses a user supplied export kind. The second return value
// reports whether the value was recognised.
func ParseExportMode(s string) (ExportMode, bool) {
	switch ExportMode(strings.ToLower(strings.TrimSpace(s))) {
	case ExportColor:
		return ExportColor, true
	case ExportHangtag:
		return ExportHangtag, true
	case ExportBoth:
		return ExportBoth, true
	default:
		return "", false
	}
}

// WantsColor reports whether ColorLabel sheets are exported.
func (m ExportMode) WantsColor() bool {
	return m == ExportColor || m == ExportBoth
}

// WantsHangtag reports whether hangtag sheets are exported.
func (m ExportMode) WantsHangtag() bool {
	return m == ExportHangtag || m == ExportBoth
}

// RangeMode selects how sequence ranges are allocated.
type RangeMode string

const (
	RangeAutoSplit RangeMode = "auto"
	RangeFromSheet RangeMode = "from_sheet"
	RangeManual    RangeMode = "manual"
)

// ErrorCode 错误代码枚举
type ErrorCode string

const (
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrMissingColumn ErrorCode = "MISSING_COLUMN"
	ErrNoCodes       ErrorCode = "NO_CODES"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrConfig        ErrorCode = "CONFIG_ERROR"
	ErrPageNotFound  ErrorCode = "PAGE_NOT_FOUND"
	ErrInvalidRange  ErrorCode = "INVALID_RANGE"
	ErrRender        ErrorCode = "RENDER_ERROR"
	ErrInternal      ErrorCode = "INTERNAL_ERROR"
)

// AppError 应用错误
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	Cause   error     `json:"-"`
}

// Error implements the error interface for AppError
func (e *AppError) Error() string {
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
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError with the given code, message, and optional cause
func NewAppError(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewAppErrorWithDetails creates a new AppError with details
func NewAppErrorWithDetails(code ErrorCode, message, details string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
}

// CodeOf returns the ErrorCode carried by err, or ErrInternal when err is not
// an *AppError.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if ae, ok := err.(*AppError); ok {
			return ae.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ErrInternal
}
