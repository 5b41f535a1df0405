package pdf

import (
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"label-exporter/internal/logger"
)

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, NewPDFErrorWithDetails(ErrPDFInvalid, "failed to count pages", path, err)
	}
	return n, nil
}

// ValidateOutput runs pdfcpu's structural validation over a sheet we wrote.
func ValidateOutput(path string) error {
	conf := model.NewDefaultConfiguration()
	if err := api.ValidateFile(path, conf); err != nil {
		return NewPDFErrorWithDetails(ErrValidateFailed, "output failed validation", filepath.Base(path), err)
	}
	logger.Debug("output validated", logger.File(path))
	return nil
}
