package capture

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// escKey is the designated stop key while the tracking window is focused.
const escKey = 27

// Window shows tracking frames in a native window and watches for the
// ESC-to-stop key press.
type Window struct {
	win  *gocv.Window
	stop bool
}

// NewWindow opens a named display window.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Show renders one frame and polls the keyboard.
func (w *Window) Show(frame image.Image) error {
	mat, err := gocv.ImageToMatRGB(frame)
	if err != nil {
		return fmt.Errorf("converting frame for display: %w", err)
	}
	defer mat.Close()

	w.win.IMShow(mat)
	if w.win.WaitKey(1) == escKey {
		w.stop = true
	}
	return nil
}

// StopRequested reports whether ESC was pressed.
func (w *Window) StopRequested() bool {
	return w.stop
}

// Close destroys the display window.
func (w *Window) Close() error {
	return w.win.Close()
}
