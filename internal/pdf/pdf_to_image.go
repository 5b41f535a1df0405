package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"label-exporter/internal/logger"
)

// DefaultDPI is the raster resolution used when none is configured.
const DefaultDPI = 150

// PageRasterizer turns catalog pages into images. It shells out to pdftoppm
// when poppler is installed and otherwise falls back to the largest image
// embedded in the page, scaled to the page size at the same DPI.
type PageRasterizer struct {
	dpi        int
	tempDir    string
	usePoppler bool
	conf       *model.Configuration
}

// NewPageRasterizer creates a rasterizer for dpi (DefaultDPI when <= 0).
func NewPageRasterizer(dpi int) *PageRasterizer {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &PageRasterizer{
		dpi:        dpi,
		usePoppler: checkPopplerAvailable(),
		conf:       model.NewDefaultConfiguration(),
	}
}

// checkPopplerAvailable checks if pdftoppm is available
func checkPopplerAvailable() bool {
	cmd := exec.Command("pdftoppm", "-v")
	hideConsole(cmd)
	return cmd.Run() == nil
}

// DPI returns the raster resolution.
func (c *PageRasterizer) DPI() int {
	return c.dpi
}

// Backend names the active rendering path for diagnostics.
func (c *PageRasterizer) Backend() string {
	if c.usePoppler {
		return "pdftoppm"
	}
	return "embedded-image"
}

// RenderPage rasterizes page of the document at pdfPath.
func (c *PageRasterizer) RenderPage(ctx context.Context, pdfPath string, page Page) (image.Image, error) {
	logger.Debug("rasterizing page",
		logger.String("pdf", filepath.Base(pdfPath)),
		logger.Int("page", page.Number),
		logger.Int("dpi", c.dpi),
		logger.String("backend", c.Backend()))

	if c.usePoppler {
		img, err := c.renderWithPoppler(ctx, pdfPath, page.Number)
		if err == nil {
			return img, nil
		}
		logger.Warn("pdftoppm failed, using embedded image",
			logger.Int("page", page.Number), logger.Err(err))
	}
	return c.renderEmbedded(pdfPath, page)
}

func (c *PageRasterizer) renderWithPoppler(ctx context.Context, pdfPath string, pageNum int) (image.Image, error) {
	if c.tempDir == "" {
		dir, err := os.MkdirTemp("", "label_raster_*")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp dir: %w", err)
		}
		c.tempDir = dir
	}

	prefix := filepath.Join(c.tempDir, fmt.Sprintf("page_%d", pageNum))
	args := []string{
		"-f", strconv.Itoa(pageNum),
		"-l", strconv.Itoa(pageNum),
		"-png",
		"-r", strconv.Itoa(c.dpi),
		"-singlefile",
		pdfPath,
		prefix,
	}

	cmd := exec.CommandContext(ctx, "pdftoppm", args...)
	hideConsole(cmd)
	if output, err := cmd.CombinedOutput(); err != nil {
		return nil, NewPDFErrorWithDetails(ErrRasterFailed, "pdftoppm failed", string(bytes.TrimSpace(output)), err)
	}

	imgPath := prefix + ".png"
	defer os.Remove(imgPath)
	return loadImage(imgPath)
}

// renderEmbedded picks the largest raster image on the page and resamples it
// to the page's pixel size at c.dpi.
func (c *PageRasterizer) renderEmbedded(pdfPath string, page Page) (image.Image, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, NewPDFErrorWithPage(ErrRasterFailed, "cannot open document", page.Number, err)
	}
	defer f.Close()

	pages, err := api.ExtractImagesRaw(f, []string{strconv.Itoa(page.Number)}, c.conf)
	if err != nil {
		return nil, NewPDFErrorWithPage(ErrRasterFailed, "image extraction failed", page.Number, err)
	}

	var best image.Image
	bestArea := 0
	for _, imgs := range pages {
		for _, raw := range imgs {
			if raw.Reader == nil {
				continue
			}
			data, err := io.ReadAll(raw)
			if err != nil {
				continue
			}
			img, _, err := image.Decode(bytes.NewReader(data))
			if err != nil {
				logger.Debug("skipping undecodable page image",
					logger.Int("page", page.Number), logger.Err(err))
				continue
			}
			if b := img.Bounds(); b.Dx()*b.Dy() > bestArea {
				best, bestArea = img, b.Dx()*b.Dy()
			}
		}
	}
	if best == nil {
		return nil, NewPDFErrorWithPage(ErrRasterFailed,
			"page has no decodable image and pdftoppm is unavailable", page.Number, nil)
	}

	w := int(math.Round(page.Width / 72 * float64(c.dpi)))
	h := int(math.Round(page.Height / 72 * float64(c.dpi)))
	if w <= 0 || h <= 0 {
		return best, nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), best, best.Bounds(), draw.Src, nil)
	return dst, nil
}

// loadImage loads an image from file
func loadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// Cleanup removes temporary files
func (c *PageRasterizer) Cleanup() {
	if c.tempDir != "" {
		os.RemoveAll(c.tempDir)
		c.tempDir = ""
	}
}
