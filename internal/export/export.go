// Package export drives a label run: one code at a time, locate its catalog
// page, allocate its ranges, and write its ColorLabel and Hangtag sheets.
package export

import (
	"context"
	"path/filepath"

	"label-exporter/internal/errors"
	"label-exporter/internal/logger"
	"label-exporter/internal/pdf"
	"label-exporter/internal/ranges"
	"label-exporter/internal/render"
	"label-exporter/internal/sheet"
	"label-exporter/internal/types"
)

// Catalog is the reference document as seen by the run.
type Catalog interface {
	Path() string
	Locate(code string) (pdf.Match, bool)
	Page(n int) (pdf.Page, error)
}

// Rasterizer produces the cropped label artwork for a catalog page.
type Rasterizer interface {
	Resolve(ctx context.Context, pdfPath string, page pdf.Page, m pdf.CropMargins) (*pdf.ResolvedImage, error)
}

// SheetWriter writes the two sheet kinds.
type SheetWriter interface {
	ColorLabel(path, code string, r ranges.LabelRange, img *pdf.ResolvedImage) (int, error)
	Hangtag(path, code, weekText string) error
}

// Options configure a run.
type Options struct {
	OutputDir string
	Export    types.ExportMode
	Ranges    ranges.Request
	Selection []string // nil keeps every code
	Crop      pdf.CropMargins
	Validate  bool
}

// Status of one code after the run.
type Status string

const (
	StatusOK       Status = "ok"
	StatusPartial  Status = "partial"
	StatusNoLabels Status = "no labels"
	StatusNotFound Status = "not found"
	StatusInvalid  Status = "invalid range"
	StatusFailed   Status = "failed"
)

// CodeResult summarises one code.
type CodeResult struct {
	Code    string
	Page    int
	Matcher string
	Ranges  int
	Labels  int
	Pages   int
	Files   []string
	Status  Status
}

// Summary is the outcome of a run.
type Summary struct {
	Codes      []CodeResult
	Files      int
	Labels     int
	Skipped    int
	LedgerPath string
}

// Orchestrator runs the export. It is single-use and not safe for concurrent
// use.
type Orchestrator struct {
	catalog  Catalog
	raster   Rasterizer
	writer   SheetWriter
	opts     Options
	ledger   *errors.SkipLedger
	validate func(path string) error
}

// New creates an orchestrator. Empty option fields take their defaults.
func New(catalog Catalog, raster Rasterizer, writer SheetWriter, opts Options) *Orchestrator {
	if opts.Export == "" {
		opts.Export = types.ExportBoth
	}
	if opts.Ranges.Mode == "" {
		opts.Ranges.Mode = types.RangeAutoSplit
	}
	if opts.Crop == (pdf.CropMargins{}) {
		opts.Crop = pdf.DefaultCrop
	}
	return &Orchestrator{
		catalog:  catalog,
		raster:   raster,
		writer:   writer,
		opts:     opts,
		ledger:   errors.NewSkipLedger(),
		validate: pdf.ValidateOutput,
	}
}

// Ledger returns the skip ledger of the run.
func (o *Orchestrator) Ledger() *errors.SkipLedger {
	return o.ledger
}

// Run processes every selected code group in order. Only an empty selection
// or a cancelled context fail the run; per-code problems are recorded in the
// ledger and processing moves on.
func (o *Orchestrator) Run(ctx context.Context, groups []sheet.CodeGroup) (*Summary, error) {
	groups = sheet.FilterGroups(groups, o.opts.Selection)
	if len(groups) == 0 {
		return nil, types.NewAppError(types.ErrNoCodes, "no codes to process", nil)
	}

	logger.Info("export started",
		logger.Int("codes", len(groups)),
		logger.String("export", string(o.opts.Export)),
		logger.String("range_mode", string(o.opts.Ranges.Mode)),
		logger.String("output", o.opts.OutputDir))

	summary := &Summary{}
	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		res := o.processCode(ctx, g)
		summary.Codes = append(summary.Codes, res)
		summary.Files += len(res.Files)
		summary.Labels += res.Labels
	}
	summary.Skipped = o.ledger.Len()

	path, err := o.ledger.Save(o.opts.OutputDir)
	if err != nil {
		logger.Warn("failed to write skip ledger", logger.Err(err))
	}
	summary.LedgerPath = path

	logger.Info("export finished",
		logger.Int("files", summary.Files),
		logger.Int("labels", summary.Labels),
		logger.Int("skipped", summary.Skipped))
	return summary, nil
}

func (o *Orchestrator) processCode(ctx context.Context, g sheet.CodeGroup) CodeResult {
	code := g.Code
	res := CodeResult{Code: code}

	match, ok := o.catalog.Locate(code)
	if !ok {
		err := types.NewAppErrorWithDetails(types.ErrPageNotFound, "code not found in reference document", code, nil)
		logger.Warn("skipping code", logger.Code(code), logger.Err(err))
		o.ledger.Record(code, errors.StageLocate, err)
		res.Status = StatusNotFound
		return res
	}
	res.Page, res.Matcher = match.Page, match.Matcher
	logger.Debug("page located",
		logger.Code(code),
		logger.Int("page", match.Page),
		logger.String("matcher", match.Matcher))

	page, err := o.catalog.Page(match.Page)
	if err != nil {
		o.ledger.Record(code, errors.StageLocate, err)
		res.Status = StatusFailed
		return res
	}

	labelRanges, err := ranges.Allocate(g.Rows, o.opts.Ranges)
	if err != nil {
		logger.Warn("skipping code", logger.Code(code), logger.Err(err))
		o.ledger.Record(code, errors.StageRange, err)
		res.Status = StatusInvalid
		return res
	}
	res.Ranges = len(labelRanges)
	if len(labelRanges) == 0 {
		logger.Debug("no labels for code", logger.Code(code))
		res.Status = StatusNoLabels
		return res
	}

	dir := render.CodeDir(o.opts.OutputDir, code)
	failed := false

	if o.opts.Export.WantsColor() {
		if !o.writeColorLabels(ctx, code, page, labelRanges, dir, &res) {
			failed = true
		}
	}

	if o.opts.Export.WantsHangtag() {
		path := filepath.Join(dir, render.HangtagName(code))
		week := pdf.WeekText(page, o.opts.Crop)
		if err := o.writer.Hangtag(path, code, week); err != nil {
			logger.Error("hangtag failed", err, logger.Code(code))
			o.ledger.RecordFile(code, errors.StageRender, filepath.Base(path), err)
			failed = true
		} else if o.check(code, path) {
			res.Files = append(res.Files, path)
			res.Pages++
		} else {
			failed = true
		}
	}

	switch {
	case !failed:
		res.Status = StatusOK
	case len(res.Files) > 0:
		res.Status = StatusPartial
	default:
		res.Status = StatusFailed
	}
	return res
}

// writeColorLabels resolves the artwork once and writes every range. It
// reports whether all ranges were written.
func (o *Orchestrator) writeColorLabels(ctx context.Context, code string, page pdf.Page,
	labelRanges []ranges.LabelRange, dir string, res *CodeResult) bool {

	img, err := o.raster.Resolve(ctx, o.catalog.Path(), page, o.opts.Crop)
	if err != nil {
		logger.Error("artwork unavailable", err, logger.Code(code))
		o.ledger.Record(code, errors.StageRaster, err)
		return false
	}

	ok := true
	for _, r := range labelRanges {
		path := filepath.Join(dir, render.ColorLabelName(code, r))
		pages, err := o.writer.ColorLabel(path, code, r, img)
		if err != nil {
			logger.Error("color label failed", err,
				logger.Code(code),
				logger.String("range", r.Label()))
			o.ledger.RecordFile(code, errors.StageRender, filepath.Base(path), err)
			ok = false
			continue
		}
		if !o.check(code, path) {
			ok = false
			continue
		}
		res.Files = append(res.Files, path)
		res.Labels += r.Count()
		res.Pages += pages
	}
	return ok
}

// check validates a written file when validation is enabled.
func (o *Orchestrator) check(code, path string) bool {
	if !o.opts.Validate {
		return true
	}
	if err := o.validate(path); err != nil {
		logger.Error("output validation failed", err, logger.File(path))
		o.ledger.RecordFile(code, errors.StageValidate, filepath.Base(path), err)
		return false
	}
	return true
}
