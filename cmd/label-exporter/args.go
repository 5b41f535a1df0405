package main

import (
	"strconv"
	"strings"

	"label-exporter/internal/config"
	"label-exporter/internal/ranges"
	"label-exporter/internal/types"
)

// inputs are the run inputs after positional, environment and discovery
// resolution.
type inputs struct {
	Excel     string
	PDF       string
	DPI       int
	Selection string
}

// resolveInputs interprets the positional arguments. Two forms are accepted:
//
//	<file.xlsx> <file.pdf> [dpi] [codes]
//	[dpi] [codes]
//
// In the second form the inputs come from EXCEL_FILE / PDF_FILE, or are
// discovered in dir. A positional that is not a number where the DPI would
// be is taken as the code selection in the first form and ignored in the
// second.
func resolveInputs(args []string, defaultDPI int, getenv func(string) string, dir string) (inputs, error) {
	in := inputs{DPI: defaultDPI, Selection: "all"}

	if len(args) >= 2 && hasExt(args[0], ".xlsx") && hasExt(args[1], ".pdf") {
		in.Excel, in.PDF = args[0], args[1]
		if len(args) >= 3 {
			if dpi, ok := parseDPI(args[2]); ok {
				in.DPI = dpi
				if len(args) >= 4 {
					in.Selection = args[3]
				}
			} else {
				in.Selection = strings.TrimSpace(args[2])
			}
		}
	} else {
		if len(args) >= 1 {
			if dpi, ok := parseDPI(args[0]); ok {
				in.DPI = dpi
			}
		}
		if len(args) >= 2 {
			in.Selection = args[1]
		}
		in.Excel = getenv(config.EnvExcelFile)
		if !config.FileExists(in.Excel) {
			in.Excel = config.Discover(dir, ".xlsx", config.ExcelKeywords)
		}
		in.PDF = getenv(config.EnvPDFFile)
		if !config.FileExists(in.PDF) {
			in.PDF = config.Discover(dir, ".pdf", config.PDFKeywords)
		}
	}

	if !config.FileExists(in.Excel) {
		return in, types.NewAppErrorWithDetails(types.ErrFileNotFound, "excel file not found", in.Excel, nil)
	}
	if !config.FileExists(in.PDF) {
		return in, types.NewAppErrorWithDetails(types.ErrFileNotFound, "pdf file not found", in.PDF, nil)
	}
	return in, nil
}

func hasExt(path, ext string) bool {
	return strings.HasSuffix(strings.ToLower(path), ext)
}

func parseDPI(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// parseManualRange parses "FROM-TO". Both ends accept decimal input and are
// truncated.
func parseManualRange(s string) (from, to int, err error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return 0, 0, types.NewAppErrorWithDetails(types.ErrInvalidInput, "manual range must be FROM-TO", s, nil)
	}
	if from, err = parseBound(lo); err != nil {
		return 0, 0, types.NewAppErrorWithDetails(types.ErrInvalidInput, "invalid manual range start", s, err)
	}
	if to, err = parseBound(hi); err != nil {
		return 0, 0, types.NewAppErrorWithDetails(types.ErrInvalidInput, "invalid manual range end", s, err)
	}
	return from, to, nil
}

func parseBound(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

// rangeRequest picks the allocation mode. A manual range wins when both ends
// are non-zero; otherwise --range-from-excel selects the sheet mode.
func rangeRequest(o *options, chunkSize int) (ranges.Request, error) {
	req := ranges.Request{Mode: types.RangeAutoSplit, ChunkSize: chunkSize}

	from, to := o.manualFrom, o.manualTo
	if o.manualRange != "" {
		var err error
		if from, to, err = parseManualRange(o.manualRange); err != nil {
			return req, err
		}
	}

	switch {
	case from != 0 && to != 0:
		req.Mode = types.RangeManual
		req.ManualFrom, req.ManualTo = from, to
	case o.rangeFromExcel:
		req.Mode = types.RangeFromSheet
	}
	return req, nil
}
