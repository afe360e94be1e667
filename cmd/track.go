package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ansnew/facetrack/internal/capture"
	"github.com/ansnew/facetrack/internal/config"
	"github.com/ansnew/facetrack/internal/facematch"
	"github.com/ansnew/facetrack/internal/tracking"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Track faces live from the camera",
	Long: `Track faces live from the camera.

Loads all registered employees, opens the capture device, and matches
every detected face against the registered set. Recognized sightings
are drawn on the display and appended to the movement log. Press ESC
in the tracking window (or Ctrl+C) to stop.

Examples:
  facetrack track
  facetrack track --camera 1 --log /var/log/movement_log.txt
  facetrack track --headless`,
	Args: cobra.NoArgs,
	RunE: runTrack,
}

func init() {
	rootCmd.AddCommand(trackCmd)

	trackCmd.Flags().Int("camera", -1, "Capture device ID (overrides FACETRACK_CAMERA_ID)")
	trackCmd.Flags().String("log", "", "Movement log path (overrides FACETRACK_MOVEMENT_LOG)")
	trackCmd.Flags().Bool("headless", false, "Run without a display window")
}

// trackEvents prints recognized sightings on the terminal.
type trackEvents struct{}

func (trackEvents) FaceRecognized(s tracking.Sighting) {
	fmt.Printf("Recognized %s (distance %.1f)\n", s.Name, s.Distance)
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if cameraID := mustGetInt(cmd, "camera"); cameraID >= 0 {
		cfg.Tracking.CameraID = cameraID
	}
	if logPath := mustGetString(cmd, "log"); logPath != "" {
		cfg.Tracking.MovementLogPath = logPath
	}
	headless := mustGetBool(cmd, "headless")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nStopping tracking...")
		cancel()
	}()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	detector, err := newDetector(cfg)
	if err != nil {
		return err
	}

	// Hydrate the known-faces cache from the store so tracking recognizes
	// employees registered in earlier sessions.
	employees, err := store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("loading registered employees: %w", err)
	}
	known := make([]facematch.KnownFace, 0, len(employees))
	for _, emp := range employees {
		known = append(known, facematch.KnownFace{
			Name:     emp.Name,
			Encoding: emp.Encoding,
			Image:    emp.Image,
		})
	}
	cache := facematch.NewCache()
	cache.Hydrate(known)
	fmt.Printf("Known faces: %d\n", cache.Len())

	movements, err := tracking.OpenMovementLog(cfg.Tracking.MovementLogPath)
	if err != nil {
		return err
	}
	defer movements.Close()

	webcam, err := capture.OpenWebcam(cfg.Tracking.CameraID)
	if err != nil {
		return fmt.Errorf("unable to access the camera: %w", err)
	}
	defer webcam.Close()

	var display tracking.Display
	if !headless {
		window := capture.NewWindow(cfg.Tracking.WindowTitle)
		defer window.Close()
		display = window
		fmt.Println("Tracking started. Press ESC in the camera window to stop.")
	} else {
		fmt.Println("Tracking started (headless). Press Ctrl+C to stop.")
	}

	tracker := tracking.New(webcam, detector, cache, movements, display, trackEvents{})
	if err := tracker.Run(ctx); err != nil {
		return fmt.Errorf("tracking: %w", err)
	}

	fmt.Println("Tracking stopped.")
	return nil
}
