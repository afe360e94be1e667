// Package tracking implements the live camera loop: capture a frame, detect
// faces, match them against the known set, annotate and display, and append
// movement-log entries for every recognized sighting.
package tracking

import (
	"context"
	"image"
	"image/draw"
	"log"
	"sort"
	"time"

	"github.com/ansnew/facetrack/internal/detect"
	"github.com/ansnew/facetrack/internal/facematch"
)

// FrameSource produces frames. Next returns an error when the stream ends or
// the capture device fails; either way the tracking loop terminates.
type FrameSource interface {
	Next() (image.Image, error)
}

// Display renders frames and reports the operator's stop request (the
// designated key pressed while the display is focused). A nil Display runs
// the loop headless.
type Display interface {
	Show(frame image.Image) error
	StopRequested() bool
}

// Sighting describes one recognized face in one frame.
type Sighting struct {
	Name     string
	Box      image.Rectangle
	Distance float64
}

// Events receives tracking notifications; used by the CLI for status output.
type Events interface {
	FaceRecognized(s Sighting)
}

// NopEvents discards all events.
type NopEvents struct{}

func (NopEvents) FaceRecognized(Sighting) {}

// Tracker runs the tracking loop against a frame source. It reads the
// known-faces cache through snapshots, one per frame, and owns no widget or
// capture state itself.
type Tracker struct {
	frames    FrameSource
	detector  detect.Detector
	cache     *facematch.Cache
	movements *MovementLog
	display   Display
	events    Events

	now func() time.Time
}

// New creates a tracker. Movement log and display may be nil; events may be
// nil.
func New(frames FrameSource, detector detect.Detector, cache *facematch.Cache, movements *MovementLog, display Display, events Events) *Tracker {
	if events == nil {
		events = NopEvents{}
	}
	return &Tracker{
		frames:    frames,
		detector:  detector,
		cache:     cache,
		movements: movements,
		display:   display,
		events:    events,
		now:       time.Now,
	}
}

// Run drives the loop until the context is canceled, the operator requests a
// stop, or the frame source ends. A failed frame read ends the loop quietly;
// a detector error on a single frame is logged and the loop continues.
func (t *Tracker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frame, err := t.frames.Next()
		if err != nil {
			// Capture end-of-stream terminates tracking silently.
			return nil
		}

		out := frame
		boxes, err := t.detector.DetectFaces(frame)
		if err != nil {
			log.Printf("[WARN] face detection failed: %v", err)
		} else if len(boxes) > 0 {
			out = t.processFrame(frame, boxes)
		}

		if t.display != nil {
			if err := t.display.Show(out); err != nil {
				return err
			}
			if t.display.StopRequested() {
				return nil
			}
		}
	}
}

// processFrame matches every detected region against the known-faces
// snapshot and returns the frame, annotated if anything was recognized.
// Each region yields at most one sighting.
func (t *Tracker) processFrame(frame image.Image, boxes map[string]image.Rectangle) image.Image {
	known := t.cache.Snapshot()
	if len(known) == 0 {
		return frame
	}

	var annotated *image.RGBA
	for _, id := range sortedFaceIDs(boxes) {
		box := boxes[id].Intersect(frame.Bounds())
		if box.Empty() {
			continue
		}

		encoding := facematch.MeanColor(cropFrame(frame, box))
		match, ok := facematch.BestMatch(encoding, known)
		if !ok {
			continue
		}

		if annotated == nil {
			annotated = toRGBA(frame)
		}
		annotate(annotated, box, match.Name)

		if t.movements != nil {
			if err := t.movements.Record(match.Name, t.now()); err != nil {
				log.Printf("[WARN] movement log: %v", err)
			}
		}
		t.events.FaceRecognized(Sighting{Name: match.Name, Box: box, Distance: match.Distance})
	}

	if annotated != nil {
		return annotated
	}
	return frame
}

// sortedFaceIDs returns the detector's face ids in a stable order.
func sortedFaceIDs(boxes map[string]image.Rectangle) []string {
	ids := make([]string, 0, len(boxes))
	for id := range boxes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// cropFrame copies the region of frame inside box into a standalone image.
func cropFrame(frame image.Image, box image.Rectangle) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(dst, dst.Bounds(), frame, box.Min, draw.Src)
	return dst
}
