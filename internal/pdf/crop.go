package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"

	"golang.org/x/image/draw"
)

// JPEGQuality is used when encoding the cropped artwork.
const JPEGQuality = 85

// ResolvedImage is the cropped label artwork for one code, encoded once and
// shared by every ColorLabel file written for that code.
type ResolvedImage struct {
	Page   int
	Width  int // pixels
	Height int // pixels
	JPEG   []byte
}

// CropRect returns the pixel rectangle left after trimming m from bounds at
// dpi. Margins are truncated to whole pixels. The result is not
// canonicalized, so margins wider than the image give an empty rectangle.
func CropRect(bounds image.Rectangle, m CropMargins, dpi int) image.Rectangle {
	pxPerMM := float64(dpi) / 25.4
	return image.Rectangle{
		Min: image.Pt(bounds.Min.X+int(m.Left*pxPerMM), bounds.Min.Y+int(m.Top*pxPerMM)),
		Max: image.Pt(bounds.Max.X-int(m.Right*pxPerMM), bounds.Max.Y-int(m.Bottom*pxPerMM)),
	}
}

// Crop copies the region of img inside the margins into a new RGBA image.
func Crop(img image.Image, m CropMargins, dpi int) (*image.RGBA, error) {
	r := CropRect(img.Bounds(), m, dpi)
	if r.Empty() {
		return nil, NewPDFErrorWithDetails(ErrCropFailed, "crop margins exceed page",
			fmt.Sprintf("%dx%d px at %d dpi", img.Bounds().Dx(), img.Bounds().Dy(), dpi), nil)
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(dst, dst.Bounds(), img, r.Min, draw.Src)
	return dst, nil
}

// EncodeJPEG encodes img at JPEGQuality.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Resolve rasterizes page, crops it to the label artwork and encodes it.
func (c *PageRasterizer) Resolve(ctx context.Context, pdfPath string, page Page, m CropMargins) (*ResolvedImage, error) {
	img, err := c.RenderPage(ctx, pdfPath, page)
	if err != nil {
		return nil, err
	}
	return ResolveImage(img, page.Number, m, c.dpi)
}

// ResolveImage crops an already rendered page and encodes the result.
func ResolveImage(img image.Image, page int, m CropMargins, dpi int) (*ResolvedImage, error) {
	cropped, err := Crop(img, m, dpi)
	if err != nil {
		return nil, err
	}
	data, err := EncodeJPEG(cropped)
	if err != nil {
		return nil, NewPDFErrorWithPage(ErrCropFailed, "jpeg encoding failed", page, err)
	}
	b := cropped.Bounds()
	return &ResolvedImage{Page: page, Width: b.Dx(), Height: b.Dy(), JPEG: data}, nil
}
