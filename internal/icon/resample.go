package icon

import (
	"image"

	"golang.org/x/image/draw"
)

// Resample scales src to exactly width x height using Catmull-Rom
// interpolation, preserving straight alpha. Width and height may scale by
// different factors. The output depends only on src and the target size.
func Resample(src *image.NRGBA, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
