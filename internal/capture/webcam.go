// Package capture owns the camera device and the tracking display. It is the
// only package that touches gocv; the tracking loop works on standard
// image.Image frames.
package capture

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// ErrStreamEnded reports that the capture device stopped producing frames.
var ErrStreamEnded = errors.New("capture stream ended")

// Webcam reads frames from a video capture device. It owns the device
// exclusively between Open and Close; Close must run on every exit path.
type Webcam struct {
	cam *gocv.VideoCapture
	mat gocv.Mat
}

// OpenWebcam opens the capture device. Failure here means tracking must not
// start at all.
func OpenWebcam(deviceID int) (*Webcam, error) {
	cam, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		return nil, fmt.Errorf("unable to access camera %d: %w", deviceID, err)
	}
	return &Webcam{cam: cam, mat: gocv.NewMat()}, nil
}

// Next reads one frame. A failed read reports ErrStreamEnded.
func (w *Webcam) Next() (image.Image, error) {
	if ok := w.cam.Read(&w.mat); !ok || w.mat.Empty() {
		return nil, ErrStreamEnded
	}

	frame, err := w.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("converting frame: %w", err)
	}
	return frame, nil
}

// Close releases the capture device.
func (w *Webcam) Close() error {
	w.mat.Close()
	if err := w.cam.Close(); err != nil {
		return fmt.Errorf("releasing camera: %w", err)
	}
	return nil
}
