// Package register implements the registration pipeline: detect a face in a
// supplied image, encode it, persist the employee record, and update the
// in-memory known-faces cache, all without blocking the caller.
package register

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"

	"github.com/ansnew/facetrack/internal/database"
	"github.com/ansnew/facetrack/internal/detect"
	"github.com/ansnew/facetrack/internal/facematch"
	"github.com/ansnew/facetrack/internal/imaging"
)

// maxStoredFaceSize caps the longer side of persisted face crops.
const maxStoredFaceSize = 256

// Result is the outcome of one registration submission, delivered exactly
// once on the channel returned by Submit.
type Result struct {
	JobID    string
	Name     string
	Face     image.Image // aligned crop, nil on failure
	Encoding []float32
	Err      error
}

// Events is the presentation collaborator: it receives pipeline state
// transitions and renders them however it likes. All methods may be called
// from the submission goroutine.
type Events interface {
	RegistrationStarted(jobID, name string)
	RegistrationSucceeded(jobID, name string)
	RegistrationFailed(jobID, name string, err error)
	RecordsChanged()
}

// NopEvents discards all events.
type NopEvents struct{}

func (NopEvents) RegistrationStarted(jobID, name string)           {}
func (NopEvents) RegistrationSucceeded(jobID, name string)         {}
func (NopEvents) RegistrationFailed(jobID, name string, err error) {}
func (NopEvents) RecordsChanged()                                  {}

// Pipeline orchestrates detector, store, and cache for registrations.
type Pipeline struct {
	detector detect.Detector
	store    database.EmployeeWriter
	cache    *facematch.Cache
	events   Events

	// commitMu serializes store and cache mutation so concurrent
	// submissions keep a single-writer discipline.
	commitMu sync.Mutex
}

// New creates a registration pipeline. A nil events sink is allowed.
func New(detector detect.Detector, store database.EmployeeWriter, cache *facematch.Cache, events Events) *Pipeline {
	if events == nil {
		events = NopEvents{}
	}
	return &Pipeline{
		detector: detector,
		store:    store,
		cache:    cache,
		events:   events,
	}
}

// Submit starts a registration in the background and returns a channel that
// delivers the single Result and is then closed. Detection never blocks the
// caller; once submitted, a registration cannot be aborted.
func (p *Pipeline) Submit(ctx context.Context, name, imagePath string) <-chan Result {
	jobID := uuid.NewString()
	resultc := make(chan Result, 1)

	p.events.RegistrationStarted(jobID, name)

	go func() {
		defer close(resultc)
		resultc <- p.run(ctx, jobID, name, imagePath)
	}()

	return resultc
}

// Register submits and waits for the result.
func (p *Pipeline) Register(ctx context.Context, name, imagePath string) Result {
	return <-p.Submit(ctx, name, imagePath)
}

func (p *Pipeline) run(ctx context.Context, jobID, name, imagePath string) Result {
	result := Result{JobID: jobID, Name: name}

	fail := func(err error) Result {
		result.Err = err
		p.events.RegistrationFailed(jobID, name, err)
		return result
	}

	if strings.TrimSpace(name) == "" {
		return fail(errors.New("employee name is required"))
	}

	img, err := loadImage(imagePath)
	if err != nil {
		return fail(err)
	}

	faces, err := p.detector.ExtractFaces(img)
	if err != nil {
		return fail(fmt.Errorf("face detection failed: %w", err))
	}
	if len(faces) == 0 {
		return fail(detect.ErrNoFace)
	}

	// Only the first detected face is used. The encoding is computed from
	// the full crop; the persisted copy is downscaled to keep records small.
	face := faces[0]
	encoding := facematch.MeanColor(face)

	var buf bytes.Buffer
	if err := png.Encode(&buf, imaging.FitWithin(face, maxStoredFaceSize)); err != nil {
		return fail(fmt.Errorf("encoding face image: %w", err))
	}

	// Persist first, then update the cache: a store failure must leave the
	// in-memory set untouched.
	p.commitMu.Lock()
	if err := p.store.Upsert(ctx, name, encoding, buf.Bytes()); err != nil {
		p.commitMu.Unlock()
		return fail(fmt.Errorf("storing employee: %w", err))
	}
	p.cache.Put(facematch.KnownFace{
		Name:     name,
		Encoding: encoding,
		Image:    buf.Bytes(),
	})
	p.commitMu.Unlock()

	result.Face = face
	result.Encoding = encoding
	p.events.RegistrationSucceeded(jobID, name)
	p.events.RecordsChanged()
	return result
}

// Remove deletes an employee from both the store and the cache.
func (p *Pipeline) Remove(ctx context.Context, name string) (bool, error) {
	p.commitMu.Lock()
	defer p.commitMu.Unlock()

	removed, err := p.store.Delete(ctx, name)
	if err != nil {
		return false, err
	}
	p.cache.Delete(name)
	if removed {
		p.events.RecordsChanged()
	}
	return removed, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return img, nil
}
