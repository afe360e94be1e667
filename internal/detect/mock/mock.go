// Package mock provides a scripted Detector for testing the registration
// pipeline and the tracking loop without a cascade model.
package mock

import (
	"image"
	"sync"
)

// Detector is a scripted implementation of detect.Detector. Crops and boxes
// are returned as configured; errors can be injected globally or for a
// specific call number (1-based), which lets tests fail exactly one frame.
type Detector struct {
	mu sync.Mutex

	// Faces returned by ExtractFaces.
	Faces []image.Image
	// Boxes returned by DetectFaces.
	Boxes map[string]image.Rectangle

	// ExtractError fails every ExtractFaces call.
	ExtractError error
	// DetectError fails every DetectFaces call.
	DetectError error
	// DetectErrorOnCall fails only the n-th DetectFaces call (1-based) with
	// DetectCallError.
	DetectErrorOnCall int
	DetectCallError   error

	extractCalls int
	detectCalls  int
}

func (d *Detector) ExtractFaces(img image.Image) ([]image.Image, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.extractCalls++
	if d.ExtractError != nil {
		return nil, d.ExtractError
	}
	return d.Faces, nil
}

func (d *Detector) DetectFaces(frame image.Image) (map[string]image.Rectangle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.detectCalls++
	if d.DetectErrorOnCall != 0 && d.detectCalls == d.DetectErrorOnCall {
		return nil, d.DetectCallError
	}
	if d.DetectError != nil {
		return nil, d.DetectError
	}
	return d.Boxes, nil
}

// ExtractCalls returns how many times ExtractFaces was invoked.
func (d *Detector) ExtractCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.extractCalls
}

// DetectCalls returns how many times DetectFaces was invoked.
func (d *Detector) DetectCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detectCalls
}
