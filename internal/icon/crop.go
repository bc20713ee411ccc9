package icon

import (
	"image"

	"golang.org/x/image/draw"
)

// ContentBounds returns the tightest rectangle containing every pixel with
// non-zero alpha. ok is false when the raster is fully transparent.
func ContentBounds(img *image.NRGBA) (rect image.Rectangle, ok bool) {
	bounds := img.Bounds()

	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, y):]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if row[(x-bounds.Min.X)*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX || maxY < minY {
		return image.Rectangle{}, false
	}

	// maxX/maxY are inclusive, so add 1 for the rectangle's exclusive bound.
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// CropToContent crops a raster to its content bounds, re-basing the origin
// to (0,0). A fully transparent raster has no content bounds; it is
// returned unchanged so downstream targets still receive valid input.
func CropToContent(img *image.NRGBA) *image.NRGBA {
	rect, ok := ContentBounds(img)
	if !ok {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Copy(dst, image.Point{}, img, rect, draw.Src, nil)
	return dst
}
