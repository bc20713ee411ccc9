package icon

import "image"

// Stripper removes the background from a source raster, encoding icon
// content in the alpha channel. Implementations must not modify src.
type Stripper interface {
	Strip(src *image.NRGBA) *image.NRGBA
}

// NearWhiteThreshold is the channel value above which a pixel counts as
// background. A pixel is stripped only when R, G, and B all exceed it.
const NearWhiteThreshold = 240

// NearWhite strips pixels whose red, green, and blue channels each exceed
// Threshold, replacing them with fully transparent white. Pixels at or
// below the threshold keep their original channels, including alpha, so
// anti-aliased edges may retain faint halos.
type NearWhite struct {
	Threshold uint8
}

// DefaultStripper is the stock near-white background stripper.
var DefaultStripper Stripper = NearWhite{Threshold: NearWhiteThreshold}

// Strip returns a new raster of identical dimensions with near-white
// pixels made transparent. Stripping is idempotent: transparent pixels
// written by a previous pass are white, which strips to the same value.
func (s NearWhite) Strip(src *image.NRGBA) *image.NRGBA {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcRow := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+4*w], srcRow[:4*w])
	}

	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] > s.Threshold && dst.Pix[i+1] > s.Threshold && dst.Pix[i+2] > s.Threshold {
			dst.Pix[i] = 255
			dst.Pix[i+1] = 255
			dst.Pix[i+2] = 255
			dst.Pix[i+3] = 0
		}
	}

	return dst
}
