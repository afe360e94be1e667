package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"

	"github.com/spf13/cobra"

	"github.com/ansnew/facetrack/internal/config"
)

var employeeShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show details of a registered employee",
	Long: `Show details of a registered employee.

Examples:
  # Inspect Alice's record
  facetrack employee show "Alice Smith"

  # Also write the stored face image to a file
  facetrack employee show "Alice Smith" --save-image alice.png`,
	Args: cobra.ExactArgs(1),
	RunE: runEmployeeShow,
}

func init() {
	employeeCmd.AddCommand(employeeShowCmd)

	employeeShowCmd.Flags().String("save-image", "", "Write the stored face image to this path")
}

func runEmployeeShow(cmd *cobra.Command, args []string) error {
	name := args[0]
	saveImage := mustGetString(cmd, "save-image")

	cfg := config.Load()
	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	emp, err := store.Get(ctx, name)
	if err != nil {
		return fmt.Errorf("fetching employee: %w", err)
	}
	if emp == nil {
		return fmt.Errorf("employee %q not found", name)
	}

	fmt.Printf("Name:       %s\n", emp.Name)
	fmt.Printf("Registered: %s\n", emp.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Encoding:   [%.2f %.2f %.2f]\n", emp.Encoding[0], emp.Encoding[1], emp.Encoding[2])

	if face, _, err := image.DecodeConfig(bytes.NewReader(emp.Image)); err == nil {
		fmt.Printf("Face image: %dx%d px, %d bytes\n", face.Width, face.Height, len(emp.Image))
	} else {
		fmt.Printf("Face image: %d bytes\n", len(emp.Image))
	}

	if saveImage != "" {
		if err := os.WriteFile(saveImage, emp.Image, 0o644); err != nil {
			return fmt.Errorf("saving face image: %w", err)
		}
		fmt.Printf("Face image saved to %s\n", saveImage)
	}

	return nil
}
