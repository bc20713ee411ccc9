package emit

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/sydlexius/iconforge/internal/catalog"
)

// makeSource creates a fully opaque single-color raster, standing in for a
// stripped-and-cropped source icon.
func makeSource(t *testing.T, w, h int) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{20, 120, 220, 255})
		}
	}
	return img
}

// findTarget returns the catalog target with the given name.
func findTarget(t *testing.T, name string) catalog.Target {
	t.Helper()
	for _, tgt := range catalog.Targets() {
		if tgt.Name == name {
			return tgt
		}
	}
	t.Fatalf("no catalog target named %q", name)
	return catalog.Target{}
}

// decodePNG decodes rendered bytes back into an NRGBA raster.
func decodePNG(t *testing.T, data []byte) *image.NRGBA {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding rendered png: %v", err)
	}
	out, ok := img.(*image.NRGBA)
	if !ok {
		b := img.Bounds()
		out = image.NewNRGBA(b)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				out.Set(x, y, img.At(x, y))
			}
		}
	}
	return out
}

func TestRender_LegacySizes(t *testing.T) {
	src := makeSource(t, 512, 512)

	for _, density := range catalog.Densities() {
		t.Run(density, func(t *testing.T) {
			data, err := Render(src, findTarget(t, "android-legacy-"+density))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			img := decodePNG(t, data)
			want := catalog.LegacySize(density)
			if got := img.Bounds(); got.Dx() != want || got.Dy() != want {
				t.Errorf("got %v, want %dx%d", got, want, want)
			}
		})
	}
}

func TestRender_RoundEqualsSquare(t *testing.T) {
	src := makeSource(t, 300, 300)

	for _, density := range catalog.Densities() {
		square, err := Render(src, findTarget(t, "android-legacy-"+density))
		if err != nil {
			t.Fatalf("rendering square: %v", err)
		}
		round, err := Render(src, findTarget(t, "android-legacy-round-"+density))
		if err != nil {
			t.Fatalf("rendering round: %v", err)
		}
		if !bytes.Equal(square, round) {
			t.Errorf("%s: round and square launcher files should be byte-identical", density)
		}
	}
}

func TestRender_Background(t *testing.T) {
	src := makeSource(t, 100, 100)
	data, err := Render(src, findTarget(t, "android-adaptive-background-mdpi"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img := decodePNG(t, data)
	if got := img.Bounds(); got.Dx() != 108 || got.Dy() != 108 {
		t.Fatalf("got %v, want 108x108", got)
	}

	want := catalog.BackgroundFill
	for y := 0; y < 108; y++ {
		for x := 0; x < 108; x++ {
			if got := img.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRender_ForegroundSafeZone(t *testing.T) {
	src := makeSource(t, 100, 100)

	for _, density := range catalog.Densities() {
		t.Run(density, func(t *testing.T) {
			total := catalog.AdaptiveSize(density)
			scaled := int(math.Floor(float64(total) * catalog.ForegroundScale))
			offset := (total - scaled) / 2

			data, err := Render(src, findTarget(t, "android-adaptive-foreground-"+density))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			img := decodePNG(t, data)
			if got := img.Bounds(); got.Dx() != total || got.Dy() != total {
				t.Fatalf("got %v, want %dx%d", got, total, total)
			}

			// The opaque source fills exactly the centered safe-zone rect.
			mid := total / 2
			if img.NRGBAAt(offset, mid).A == 0 {
				t.Errorf("pixel at left content edge should be opaque")
			}
			if img.NRGBAAt(offset+scaled-1, mid).A == 0 {
				t.Errorf("pixel at right content edge should be opaque")
			}
			if offset > 0 && img.NRGBAAt(offset-1, mid).A != 0 {
				t.Errorf("pixel left of safe zone should be transparent")
			}
			if img.NRGBAAt(offset+scaled, mid).A != 0 {
				t.Errorf("pixel right of safe zone should be transparent")
			}

			// Centering splits the remainder as evenly as possible.
			if rightGap := total - scaled - offset; rightGap-offset > 1 || offset-rightGap > 1 {
				t.Errorf("offsets %d and %d differ by more than one pixel", offset, rightGap)
			}
		})
	}
}

func TestRender_MonochromeMatchesForegroundAlpha(t *testing.T) {
	src := makeSource(t, 100, 100)

	fgData, err := Render(src, findTarget(t, "android-adaptive-foreground-xhdpi"))
	if err != nil {
		t.Fatalf("rendering foreground: %v", err)
	}
	monoData, err := Render(src, findTarget(t, "android-adaptive-monochrome-xhdpi"))
	if err != nil {
		t.Fatalf("rendering monochrome: %v", err)
	}

	fg := decodePNG(t, fgData)
	mono := decodePNG(t, monoData)

	if fg.Bounds() != mono.Bounds() {
		t.Fatalf("foreground %v and monochrome %v bounds differ", fg.Bounds(), mono.Bounds())
	}

	size := mono.Bounds().Dx()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			f := fg.NRGBAAt(x, y)
			m := mono.NRGBAAt(x, y)
			if m.A != f.A {
				t.Fatalf("alpha at (%d,%d): mono %d, foreground %d", x, y, m.A, f.A)
			}
			if m.R != 255 || m.G != 255 || m.B != 255 {
				t.Fatalf("rgb at (%d,%d) = (%d,%d,%d), want full intensity", x, y, m.R, m.G, m.B)
			}
		}
	}
}

func TestRender_UnknownRole(t *testing.T) {
	src := makeSource(t, 10, 10)
	_, err := Render(src, catalog.Target{Name: "bogus", Role: "no-such-role"})
	if err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestRenderForeground_NonSquareSource(t *testing.T) {
	// Non-uniform scaling: a wide source still fills the square safe zone.
	src := makeSource(t, 200, 50)
	fg := renderForeground(src, 108)

	scaled := int(math.Floor(108 * catalog.ForegroundScale))
	offset := (108 - scaled) / 2
	if fg.NRGBAAt(offset, offset).A == 0 {
		t.Error("top-left corner of safe zone should be opaque")
	}
	if fg.NRGBAAt(offset+scaled-1, offset+scaled-1).A == 0 {
		t.Error("bottom-right corner of safe zone should be opaque")
	}
}
