package detect

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	pigo "github.com/esimov/pigo/core"

	"github.com/ansnew/facetrack/internal/config"
)

// Pigo is a Detector backed by the pigo pixel-intensity cascade classifier.
// Pure Go, no runtime model server required.
type Pigo struct {
	classifier *pigo.Pigo
	params     config.DetectorConfig
}

// NewPigo loads the cascade file and builds a detector with the given
// parameters.
func NewPigo(cfg config.DetectorConfig) (*Pigo, error) {
	cascade, err := os.ReadFile(cfg.CascadeFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read cascade file: %w", err)
	}

	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack cascade: %w", err)
	}

	return &Pigo{classifier: classifier, params: cfg}, nil
}

// ExtractFaces returns an aligned square crop for every face found in img.
func (p *Pigo) ExtractFaces(img image.Image) ([]image.Image, error) {
	boxes := p.detect(img)

	faces := make([]image.Image, 0, len(boxes))
	for _, box := range boxes {
		box = box.Intersect(img.Bounds())
		if box.Empty() {
			continue
		}
		faces = append(faces, cropImage(img, box))
	}
	return faces, nil
}

// DetectFaces returns face bounding boxes keyed face_1..face_n, ordered by
// detection quality (the classifier returns the strongest detections first
// after clustering).
func (p *Pigo) DetectFaces(frame image.Image) (map[string]image.Rectangle, error) {
	boxes := p.detect(frame)

	result := make(map[string]image.Rectangle, len(boxes))
	for i, box := range boxes {
		result[fmt.Sprintf("face_%d", i+1)] = box
	}
	return result, nil
}

// detect runs the cascade over a grayscale copy of the image and returns
// clustered detections above the quality threshold.
func (p *Pigo) detect(img image.Image) []image.Rectangle {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil
	}

	pixels := make([]uint8, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// Luminosity method.
			pixels[y*width+x] = uint8((r*299 + g*587 + b*114) / 1000 / 256)
		}
	}

	maxSize := p.params.MaxSize
	if maxSize > width {
		maxSize = width
	}
	if maxSize > height {
		maxSize = height
	}

	cParams := pigo.CascadeParams{
		MinSize:     p.params.MinSize,
		MaxSize:     maxSize,
		ShiftFactor: p.params.ShiftFactor,
		ScaleFactor: p.params.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: pixels,
			Rows:   height,
			Cols:   width,
			Dim:    width,
		},
	}

	dets := p.classifier.RunCascade(cParams, 0.0)
	dets = p.classifier.ClusterDetections(dets, 0.2)

	boxes := make([]image.Rectangle, 0, len(dets))
	for _, det := range dets {
		if det.Q <= p.params.QualityThreshold {
			continue
		}
		x := bounds.Min.X + det.Col - det.Scale/2
		y := bounds.Min.Y + det.Row - det.Scale/2
		boxes = append(boxes, image.Rect(x, y, x+det.Scale, y+det.Scale))
	}
	return boxes
}

// cropImage copies the region of src inside box into a standalone image.
func cropImage(src image.Image, box image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(dst, dst.Bounds(), src, box.Min, draw.Src)
	return dst
}
