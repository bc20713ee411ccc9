// Package catalog defines the static table of icon targets produced by a
// run. Adding a platform or density bucket is a data change here, not a
// logic change elsewhere.
package catalog

import (
	"image/color"
	"path/filepath"
)

// Role describes how a target is rendered from the cropped source.
type Role string

const (
	// RoleWholeIcon renders the source as-is onto the full canvas.
	RoleWholeIcon Role = "whole-icon"
	// RoleBackground is an adaptive layer filled with BackgroundFill.
	RoleBackground Role = "background-layer"
	// RoleForeground is an adaptive layer with the source centered inside
	// the safe zone.
	RoleForeground Role = "foreground-layer"
	// RoleMonochrome is an adaptive layer carrying the foreground's alpha
	// as a white silhouette.
	RoleMonochrome Role = "monochrome-layer"
)

// Platform groups targets by consuming operating system.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformAndroid Platform = "android"
)

// Target describes one output asset. Descriptors are immutable and fixed
// at build time; nothing in them depends on the input image.
type Target struct {
	// Name identifies the target in logs and result summaries.
	Name string
	// Platform is the consuming OS.
	Platform Platform
	// Density is the Android density bucket, empty for Windows.
	Density string
	// Size is the square canvas size in pixels. Zero for multi-frame
	// containers, which carry FrameSizes instead.
	Size int
	// FrameSizes lists the frame edge lengths of a multi-frame container.
	FrameSizes []int
	// Role selects the rendering rule.
	Role Role
	// Path is the output location relative to the output root.
	Path string
}

// BackgroundFill is the solid color of every adaptive background layer.
// It is a constant of the catalog, never sampled from the source image.
var BackgroundFill = color.NRGBA{R: 45, G: 0, B: 78, A: 255}

// ForegroundScale is the fraction of an adaptive canvas occupied by the
// icon content (the Android safe zone). Scaled size = floor(Size * 0.6).
const ForegroundScale = 0.6

// ICOFrameSizes are the frame sizes packed into the Windows icon container.
var ICOFrameSizes = []int{16, 32, 48, 256}

// densityBucket ties an Android density name to its legacy launcher size
// and its adaptive canvas size. Both mappings are fixed by the Android
// icon specification.
type densityBucket struct {
	name     string
	legacy   int
	adaptive int
}

var densityBuckets = []densityBucket{
	{"mdpi", 48, 108},
	{"hdpi", 72, 162},
	{"xhdpi", 96, 216},
	{"xxhdpi", 144, 324},
	{"xxxhdpi", 192, 432},
}

// LegacySize returns the legacy launcher size for a density bucket, or 0
// when the bucket is unknown.
func LegacySize(density string) int {
	for _, b := range densityBuckets {
		if b.name == density {
			return b.legacy
		}
	}
	return 0
}

// AdaptiveSize returns the adaptive canvas size for a density bucket, or 0
// when the bucket is unknown.
func AdaptiveSize(density string) int {
	for _, b := range densityBuckets {
		if b.name == density {
			return b.adaptive
		}
	}
	return 0
}

// Densities returns the ordered Android density bucket names.
func Densities() []string {
	names := make([]string, len(densityBuckets))
	for i, b := range densityBuckets {
		names[i] = b.name
	}
	return names
}

// Targets returns the full ordered output catalog: the Windows container,
// then per density bucket the legacy pair and the three adaptive layers.
func Targets() []Target {
	targets := []Target{
		{
			Name:       "windows-ico",
			Platform:   PlatformWindows,
			FrameSizes: ICOFrameSizes,
			Role:       RoleWholeIcon,
			Path:       "app.ico",
		},
	}

	for _, b := range densityBuckets {
		dir := filepath.Join("android", "mipmap-"+b.name)

		targets = append(targets,
			Target{
				Name:     "android-legacy-" + b.name,
				Platform: PlatformAndroid,
				Density:  b.name,
				Size:     b.legacy,
				Role:     RoleWholeIcon,
				Path:     filepath.Join(dir, "ic_launcher.png"),
			},
			Target{
				Name:     "android-legacy-round-" + b.name,
				Platform: PlatformAndroid,
				Density:  b.name,
				Size:     b.legacy,
				Role:     RoleWholeIcon,
				Path:     filepath.Join(dir, "ic_launcher_round.png"),
			},
			Target{
				Name:     "android-adaptive-background-" + b.name,
				Platform: PlatformAndroid,
				Density:  b.name,
				Size:     b.adaptive,
				Role:     RoleBackground,
				Path:     filepath.Join(dir, "ic_launcher_background.png"),
			},
			Target{
				Name:     "android-adaptive-foreground-" + b.name,
				Platform: PlatformAndroid,
				Density:  b.name,
				Size:     b.adaptive,
				Role:     RoleForeground,
				Path:     filepath.Join(dir, "ic_launcher_foreground.png"),
			},
			Target{
				Name:     "android-adaptive-monochrome-" + b.name,
				Platform: PlatformAndroid,
				Density:  b.name,
				Size:     b.adaptive,
				Role:     RoleMonochrome,
				Path:     filepath.Join(dir, "ic_launcher_monochrome.png"),
			},
		)
	}

	return targets
}
