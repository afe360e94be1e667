// Package imaging provides small image helpers for the registration
// pipeline.
package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// FitWithin downscales img so that neither dimension exceeds maxSize while
// keeping the aspect ratio. Images already within the limit are returned
// unchanged.
func FitWithin(img image.Image, maxSize int) image.Image {
	if maxSize < 1 {
		return img
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxSize && height <= maxSize {
		return img
	}

	var newWidth, newHeight int
	if width > height {
		newWidth = maxSize
		newHeight = int(float64(height) * float64(maxSize) / float64(width))
	} else {
		newHeight = maxSize
		newWidth = int(float64(width) * float64(maxSize) / float64(height))
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.BiLinear.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
	return resized
}
