package facematch

import (
	"image"
	"image/color"
	"math"
	"testing"
)

func uniformImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestMeanColor_UniformImage(t *testing.T) {
	tests := []struct {
		name     string
		color    color.RGBA
		expected []float32
	}{
		{
			name:     "pure red",
			color:    color.RGBA{R: 255, A: 255},
			expected: []float32{255, 0, 0},
		},
		{
			name:     "pure green",
			color:    color.RGBA{G: 255, A: 255},
			expected: []float32{0, 255, 0},
		},
		{
			name:     "mid gray",
			color:    color.RGBA{R: 128, G: 128, B: 128, A: 255},
			expected: []float32{128, 128, 128},
		},
		{
			name:     "black",
			color:    color.RGBA{A: 255},
			expected: []float32{0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := MeanColor(uniformImage(8, 8, tt.color))
			if len(enc) != EncodingDim {
				t.Fatalf("expected %d channels, got %d", EncodingDim, len(enc))
			}
			for i := range enc {
				if math.Abs(float64(enc[i]-tt.expected[i])) > 0.5 {
					t.Errorf("channel %d: expected %v, got %v", i, tt.expected[i], enc[i])
				}
			}
		})
	}
}

func TestMeanColor_MixedPixels(t *testing.T) {
	// Half black, half white: every channel averages to ~127.5.
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	enc := MeanColor(img)
	for i, v := range enc {
		if math.Abs(float64(v)-127.5) > 0.5 {
			t.Errorf("channel %d: expected ~127.5, got %v", i, v)
		}
	}
}

func TestMeanColor_SubImageRespectsBounds(t *testing.T) {
	// A red region inside a green image: the crop must only see red pixels.
	img := uniformImage(10, 10, color.RGBA{G: 255, A: 255})
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	crop := img.SubImage(image.Rect(2, 2, 6, 6))
	enc := MeanColor(crop)

	if enc[0] < 254 || enc[1] > 1 {
		t.Errorf("expected pure red crop encoding, got %v", enc)
	}
}

func TestMeanColor_EmptyImage(t *testing.T) {
	enc := MeanColor(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if len(enc) != EncodingDim {
		t.Fatalf("expected %d channels, got %d", EncodingDim, len(enc))
	}
	for i, v := range enc {
		if v != 0 {
			t.Errorf("channel %d: expected 0 for empty image, got %v", i, v)
		}
	}
}
