package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ansnew/facetrack/internal/config"
	"github.com/ansnew/facetrack/internal/detect"
	"github.com/ansnew/facetrack/internal/facematch"
	"github.com/ansnew/facetrack/internal/register"
)

var employeeRegisterCmd = &cobra.Command{
	Use:   "register <name> <image>",
	Short: "Register an employee face from an image file",
	Long: `Register an employee face from an image file.

The first detectable face in the image is cropped, encoded, and stored
under the given name. Registering an existing name overwrites the old
record in place.

Examples:
  # Register Alice from a photo
  facetrack employee register "Alice Smith" ./photos/alice.jpg

  # Register and save the detected face crop for inspection
  facetrack employee register "Alice Smith" ./photos/alice.jpg --save-face alice_crop.png`,
	Args: cobra.ExactArgs(2),
	RunE: runEmployeeRegister,
}

func init() {
	employeeCmd.AddCommand(employeeRegisterCmd)

	employeeRegisterCmd.Flags().String("save-face", "", "Write the detected face crop as PNG to this path")
}

// cliEvents renders registration pipeline events on the terminal.
type cliEvents struct{}

func (cliEvents) RegistrationStarted(jobID, name string) {
	fmt.Printf("Registering face for %s...\n", name)
}

func (cliEvents) RegistrationSucceeded(jobID, name string) {
	fmt.Printf("Face registered for %s.\n", name)
}

func (cliEvents) RegistrationFailed(jobID, name string, err error) {
	if errors.Is(err, detect.ErrNoFace) {
		fmt.Println("No face detected.")
	}
}

func (cliEvents) RecordsChanged() {}

func runEmployeeRegister(cmd *cobra.Command, args []string) error {
	name, imagePath := args[0], args[1]
	saveFace := mustGetString(cmd, "save-face")

	cfg := config.Load()
	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	detector, err := newDetector(cfg)
	if err != nil {
		return err
	}

	pipeline := register.New(detector, store, facematch.NewCache(), cliEvents{})
	res := pipeline.Register(ctx, name, imagePath)
	if res.Err != nil {
		return fmt.Errorf("registration failed: %w", res.Err)
	}

	fmt.Printf("Encoding: [%.1f %.1f %.1f]\n", res.Encoding[0], res.Encoding[1], res.Encoding[2])

	if saveFace != "" {
		emp, err := store.Get(ctx, name)
		if err != nil {
			return fmt.Errorf("reading back record: %w", err)
		}
		if err := os.WriteFile(saveFace, emp.Image, 0o644); err != nil {
			return fmt.Errorf("saving face crop: %w", err)
		}
		fmt.Printf("Face crop saved to %s\n", saveFace)
	}

	return nil
}
