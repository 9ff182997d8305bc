package postprocess

import (
	"image"
	"image/color"
	"testing"
)

func checker() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 255, 0, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})
	return img
}

func TestUpscaleNearest(t *testing.T) {
	src := checker()
	dst, err := Upscale(src, 3, FilterNearest)
	if err != nil {
		t.Fatalf("Upscale: %v", err)
	}
	if dst.Bounds().Dx() != 6 || dst.Bounds().Dy() != 6 {
		t.Fatalf("bounds = %v", dst.Bounds())
	}
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := src.RGBAAt(x/3, y/3)
			if got := dst.RGBAAt(x, y); got != want {
				t.Fatalf("(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestUpscaleCatmullRomSize(t *testing.T) {
	dst, err := Upscale(checker(), 2, FilterCatmullRom)
	if err != nil {
		t.Fatalf("Upscale: %v", err)
	}
	if dst.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("bounds = %v", dst.Bounds())
	}
}

func TestUpscaleIdentityAndErrors(t *testing.T) {
	src := checker()
	if dst, err := Upscale(src, 1, FilterNearest); err != nil || dst != src {
		t.Fatalf("factor 1 should return the input unchanged")
	}
	if _, err := Upscale(src, 0, FilterNearest); err == nil {
		t.Errorf("factor 0 accepted")
	}
	if _, err := Upscale(src, 2, "lanczos"); err == nil {
		t.Errorf("unknown filter accepted")
	}
}
