// Package emit renders individual catalog targets from the cropped source
// raster. Rendering is a pure function of (source, descriptor), so targets
// can be produced in any order or in parallel.
package emit

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/sydlexius/iconforge/internal/catalog"
	"github.com/sydlexius/iconforge/internal/icon"
)

// Render produces the encoded file contents for one target. The source
// raster is read-only; Render never mutates it.
func Render(src *image.NRGBA, target catalog.Target) ([]byte, error) {
	switch target.Role {
	case catalog.RoleWholeIcon:
		if len(target.FrameSizes) > 0 {
			return encodeICO(src, target.FrameSizes)
		}
		return icon.EncodePNG(icon.Resample(src, target.Size, target.Size))
	case catalog.RoleBackground:
		return icon.EncodePNG(renderBackground(target.Size))
	case catalog.RoleForeground:
		return icon.EncodePNG(renderForeground(src, target.Size))
	case catalog.RoleMonochrome:
		return icon.EncodePNG(renderMonochrome(renderForeground(src, target.Size)))
	}
	return nil, fmt.Errorf("unknown target role %q", target.Role)
}

// renderBackground fills a size x size canvas with the catalog fill color.
func renderBackground(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	fill := catalog.BackgroundFill
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = fill.R
		img.Pix[i+1] = fill.G
		img.Pix[i+2] = fill.B
		img.Pix[i+3] = fill.A
	}
	return img
}

// renderForeground scales the source to the safe-zone fraction of the
// canvas and centers it on a transparent size x size layer. The centering
// offset is (size - scaled) / 2, so an odd remainder lands one pixel off
// center on the right and bottom.
func renderForeground(src *image.NRGBA, size int) *image.NRGBA {
	scaled := int(math.Floor(float64(size) * catalog.ForegroundScale))
	offset := (size - scaled) / 2

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	rect := image.Rect(offset, offset, offset+scaled, offset+scaled)
	draw.CatmullRom.Scale(dst, rect, src, src.Bounds(), draw.Src, nil)
	return dst
}

// renderMonochrome forces every channel to full intensity while copying
// the foreground's alpha verbatim, producing the white silhouette Android
// uses for themed-icon tinting.
func renderMonochrome(fg *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(fg.Bounds())
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 255
		dst.Pix[i+1] = 255
		dst.Pix[i+2] = 255
		dst.Pix[i+3] = fg.Pix[i+3]
	}
	return dst
}
