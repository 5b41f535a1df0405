package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"
)

func TestCropRect(t *testing.T) {
	// 254 dpi makes ten pixels per millimetre.
	r := CropRect(image.Rect(0, 0, 300, 400), CropMargins{Top: 10, Bottom: 20, Left: 5, Right: 7}, 254)
	want := image.Rect(50, 100, 230, 200)
	if r != want {
		t.Errorf("CropRect = %v, want %v", r, want)
	}

	r = CropRect(image.Rect(0, 0, 100, 100), CropMargins{Left: 1.99}, 254)
	if r.Min.X != 19 {
		t.Errorf("margins should truncate, got Min.X=%d", r.Min.X)
	}
}

func TestResolveImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 300, 400))
	for y := 0; y < 400; y++ {
		for x := 0; x < 300; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 90, A: 255})
		}
	}

	res, err := ResolveImage(src, 3, CropMargins{Top: 10, Bottom: 5, Left: 2, Right: 3}, 254)
	if err != nil {
		t.Fatalf("ResolveImage error: %v", err)
	}
	if res.Width != 300-20-30 || res.Height != 400-100-50 {
		t.Errorf("size = %dx%d", res.Width, res.Height)
	}
	if res.Page != 3 {
		t.Errorf("page = %d", res.Page)
	}

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(res.JPEG))
	if err != nil {
		t.Fatalf("output is not a jpeg: %v", err)
	}
	if cfg.Width != res.Width || cfg.Height != res.Height {
		t.Errorf("jpeg size = %dx%d", cfg.Width, cfg.Height)
	}
}

func TestCropTooLarge(t *testing.T) {
	_, err := Crop(image.NewRGBA(image.Rect(0, 0, 50, 50)), DefaultCrop, 150)
	if err == nil {
		t.Fatal("expected error when margins exceed the image")
	}
	pdfErr, ok := err.(*PDFError)
	if !ok || pdfErr.Code != ErrCropFailed {
		t.Errorf("got %v, want %s", err, ErrCropFailed)
	}
}
