package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"label-exporter/internal/config"
	"label-exporter/internal/export"
	"label-exporter/internal/logger"
	"label-exporter/internal/pdf"
	"label-exporter/internal/render"
	"label-exporter/internal/sheet"
	"label-exporter/internal/types"
)

const version = "2.12.5"

type options struct {
	configPath     string
	outputDir      string
	exportKind     string
	logLevel       string
	manualRange    string
	manualFrom     int
	manualTo       int
	chunkSize      int
	rangeFromExcel bool
	validate       bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "label-exporter [file.xlsx file.pdf] [dpi] [codes]",
		Short: "Generate ColorLabel and Hangtag sheets from a quantity workbook",
		Long: `Reads the quantity workbook and the reference label catalog, then writes
one folder per product code holding its ColorLabel sheets (2x2 per page)
and its Hangtag sheet (6x6 on one page).

Without explicit files the inputs come from EXCEL_FILE / PDF_FILE or are
discovered in the working directory. Codes are a comma separated list or
"all".`,
		Version:       version,
		Args:          cobra.MaximumNArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	flags.StringVarP(&opts.outputDir, "output", "o", "", "Output root folder")
	flags.StringVar(&opts.exportKind, "export", string(types.ExportBoth), "Sheets to export: color, hangtag or both")
	flags.BoolVar(&opts.rangeFromExcel, "range-from-excel", false, "Take ranges from the From/To columns of the workbook")
	flags.StringVar(&opts.manualRange, "manual-range", "", "Manual range FROM-TO applied to every selected code")
	flags.IntVar(&opts.manualFrom, "manual-from", 0, "Manual range start")
	flags.IntVar(&opts.manualTo, "manual-to", 0, "Manual range end")
	flags.IntVar(&opts.chunkSize, "chunk-size", 0, "Labels per ColorLabel file in auto-split mode")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&opts.validate, "validate", false, "Validate every written PDF")

	return rootCmd
}

func run(ctx context.Context, out io.Writer, opts *options, args []string) error {
	cm := config.NewConfigManager(opts.configPath)
	if err := cm.Load(); err != nil {
		return err
	}
	cfg := cm.GetConfig()
	applyFlags(cfg, opts)

	if err := initLogger(cfg); err != nil {
		return err
	}
	defer logger.Close()

	exportMode, ok := types.ParseExportMode(opts.exportKind)
	if !ok {
		return types.NewAppErrorWithDetails(types.ErrInvalidInput, "unknown export kind", opts.exportKind, nil)
	}
	rangeReq, err := rangeRequest(opts, cfg.ChunkSize)
	if err != nil {
		return err
	}

	in, err := resolveInputs(args, cfg.DPI, os.Getenv, ".")
	if err != nil {
		return err
	}

	printHeader(out, in, exportMode, opts)

	rows, err := sheet.Load(in.Excel)
	if err != nil {
		return err
	}
	groups := sheet.GroupByCode(rows)

	doc, err := pdf.Open(in.PDF)
	if err != nil {
		return err
	}

	composer := render.NewComposer(
		render.ResolveFont(cfg.ColorFontFile, render.ColorFamily, render.StyleRegular),
		render.ResolveFont(cfg.HangtagFontFile, render.HangtagFamily, render.StyleBold),
	)
	raster := pdf.NewPageRasterizer(in.DPI)
	defer raster.Cleanup()
	logger.Info("page rasterizer ready", logger.String("backend", raster.Backend()), logger.Int("dpi", raster.DPI()))

	orch := export.New(export.NewCatalog(doc, nil), raster, composer, export.Options{
		OutputDir: cfg.OutputDir,
		Export:    exportMode,
		Ranges:    rangeReq,
		Selection: sheet.ParseSelection(in.Selection),
		Validate:  cfg.ValidateOutput,
	})

	summary, err := orch.Run(ctx, groups)
	if summary != nil {
		fmt.Fprintln(out, renderSummary(summary))
		if summary.LedgerPath != "" {
			fmt.Fprintf(out, "Skipped: %d (see %s)\n", summary.Skipped, summary.LedgerPath)
		}
	}
	return err
}

// applyFlags overlays explicitly set flags onto the loaded configuration.
func applyFlags(cfg *types.Config, opts *options) {
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
	if opts.chunkSize > 0 {
		cfg.ChunkSize = opts.chunkSize
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.validate {
		cfg.ValidateOutput = true
	}
}

func initLogger(cfg *types.Config) error {
	lc := logger.DefaultConfig()
	lc.LogFilePath = cfg.LogFile
	lc.Console = os.Stderr
	if level, ok := logger.ParseLevel(cfg.LogLevel); ok {
		lc.Level = level
	}
	if err := logger.Init(lc); err != nil {
		return types.NewAppError(types.ErrConfig, "failed to initialise logger", err)
	}
	return nil
}

func printHeader(out io.Writer, in inputs, mode types.ExportMode, opts *options) {
	rule := strings.Repeat("=", 54)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "  LABEL EXPORTER (v%s)\n", version)
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "Excel   : %s\n", in.Excel)
	fmt.Fprintf(out, "PDF     : %s\n", in.PDF)
	fmt.Fprintf(out, "DPI     : %d\n", in.DPI)
	fmt.Fprintf(out, "Export  : %s\n", mode)
	fmt.Fprintf(out, "Selected: %s\n", in.Selection)
	if opts.manualRange != "" {
		fmt.Fprintf(out, "Manual range: %s\n", opts.manualRange)
	} else if opts.manualFrom != 0 && opts.manualTo != 0 {
		fmt.Fprintf(out, "Manual range: %d-%d\n", opts.manualFrom, opts.manualTo)
	}
	fmt.Fprintln(out, rule)
}
