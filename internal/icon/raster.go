// Package icon implements the raster transformations behind platform icon
// generation: source decoding, background removal, content cropping, and
// high-quality resampling.
package icon

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Supported source format names.
const (
	FormatJPEG = "jpeg"
	FormatPNG  = "png"
	FormatWebP = "webp"
	FormatBMP  = "bmp"
	FormatGIF  = "gif"
)

// DetectFormat reads the first bytes from r to identify the image format.
// The returned reader replays the consumed bytes.
func DetectFormat(r io.Reader) (format string, replay io.Reader, err error) {
	// 12 bytes covers the magic numbers of every accepted format.
	buf := make([]byte, 12)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF {
		return "", nil, fmt.Errorf("reading header: %w", err)
	}
	buf = buf[:n]

	replay = io.MultiReader(bytes.NewReader(buf), r)

	switch {
	case n >= 3 && buf[0] == 0xFF && buf[1] == 0xD8 && buf[2] == 0xFF:
		return FormatJPEG, replay, nil
	case n >= 8 && string(buf[:8]) == "\x89PNG\r\n\x1a\n":
		return FormatPNG, replay, nil
	case n >= 12 && string(buf[:4]) == "RIFF" && string(buf[8:12]) == "WEBP":
		return FormatWebP, replay, nil
	case n >= 2 && string(buf[:2]) == "BM":
		return FormatBMP, replay, nil
	case n >= 6 && (string(buf[:6]) == "GIF87a" || string(buf[:6]) == "GIF89a"):
		return FormatGIF, replay, nil
	}

	return "", replay, fmt.Errorf("unrecognized image format")
}

// Load reads and decodes the source image at path into an NRGBA raster.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path is the user's own source argument
	if err != nil {
		return nil, fmt.Errorf("opening source image: %w", err)
	}
	defer f.Close() //nolint:errcheck

	format, replay, err := DetectFormat(f)
	if err != nil {
		return nil, fmt.Errorf("detecting format of %s: %w", path, err)
	}

	img, _, err := image.Decode(replay)
	if err != nil {
		return nil, fmt.Errorf("decoding %s source: %w", format, err)
	}

	return ToNRGBA(img), nil
}

// ToNRGBA converts any decoded image into a straight-alpha NRGBA raster
// with bounds re-based to (0,0). The input is never modified.
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Copy(dst, image.Point{}, img, bounds, draw.Src, nil)
	return dst
}

// EncodePNG encodes a raster as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
