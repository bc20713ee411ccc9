package emit

import (
	"bytes"
	"fmt"
	"image"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/sydlexius/iconforge/internal/icon"
)

// encodeICO resamples the source to each frame size and packs the frames
// into a single ICO container. The consuming OS picks the frame matching
// its display context, so frame order carries no meaning.
func encodeICO(src *image.NRGBA, sizes []int) ([]byte, error) {
	frames := make([]image.Image, len(sizes))
	for i, size := range sizes {
		frames[i] = icon.Resample(src, size, size)
	}

	var buf bytes.Buffer
	if err := ico.EncodeAll(&buf, frames); err != nil {
		return nil, fmt.Errorf("encoding ico container: %w", err)
	}
	return buf.Bytes(), nil
}
