// Package facematch implements the face encoding and matching used for both
// registration and live tracking: a per-channel mean-color encoding compared
// by Euclidean distance against the in-memory set of known faces.
package facematch

import "image"

// EncodingDim is the length of a face encoding: one value per color channel.
const EncodingDim = 3

// MeanColor computes the encoding of a face crop as the per-channel mean
// pixel value (R, G, B) on the 0-255 scale. This is deliberately the exact
// metric used for matching; swapping it for a histogram or a learned
// embedding would change which faces match.
func MeanColor(img image.Image) []float32 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels <= 0 {
		return make([]float32, EncodingDim)
	}

	var sumR, sumG, sumB float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sumR += float64(r >> 8)
			sumG += float64(g >> 8)
			sumB += float64(b >> 8)
		}
	}

	n := float64(pixels)
	return []float32{
		float32(sumR / n),
		float32(sumG / n),
		float32(sumB / n),
	}
}
