// Package detect defines the face-detector collaborator consumed by the
// registration pipeline and the tracking loop, plus its pigo-backed
// implementation. Callers treat detection as a black box: crops in, boxes
// out.
package detect

import (
	"errors"
	"image"
)

// ErrNoFace reports that an image contained no detectable face. Registration
// treats it as a failure without persistence, not as a crash.
var ErrNoFace = errors.New("no face detected")

// Detector locates faces in images.
type Detector interface {
	// ExtractFaces returns zero or more aligned face crops found in img.
	ExtractFaces(img image.Image) ([]image.Image, error)

	// DetectFaces returns the bounding box of every face found in frame,
	// keyed by a per-frame face id (face_1, face_2, ...).
	DetectFaces(frame image.Image) (map[string]image.Rectangle, error)
}
