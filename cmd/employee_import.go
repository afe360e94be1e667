package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ansnew/facetrack/internal/config"
	"github.com/ansnew/facetrack/internal/detect"
	"github.com/ansnew/facetrack/internal/facematch"
	"github.com/ansnew/facetrack/internal/register"
)

// supportedImageExts are the file extensions the importer picks up.
var supportedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
}

var employeeImportCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Register every face image in a directory",
	Long: `Register every face image in a directory.

Each image file becomes one employee named after the file (without
extension). Files without a detectable face are skipped and counted.

Examples:
  # Import a directory of portraits, 4 at a time
  facetrack employee import ./portraits --concurrency 4`,
	Args: cobra.ExactArgs(1),
	RunE: runEmployeeImport,
}

func init() {
	employeeCmd.AddCommand(employeeImportCmd)

	employeeImportCmd.Flags().Int("concurrency", 4, "Number of images processed in parallel")
}

func runEmployeeImport(cmd *cobra.Command, args []string) error {
	dir := args[0]
	concurrency := mustGetInt(cmd, "concurrency")
	if concurrency < 1 {
		concurrency = 1
	}

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

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory: %w", err)
	}

	var images []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if supportedImageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			images = append(images, e.Name())
		}
	}

	if len(images) == 0 {
		fmt.Println("No image files found.")
		return nil
	}

	fmt.Printf("Images to register: %d\n\n", len(images))

	bar := progressbar.NewOptions(len(images),
		progressbar.OptionSetDescription("Registering faces"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("images"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
	)

	pipeline := register.New(detector, store, facematch.NewCache(), nil)

	var registered, noFace, failed int
	var mu sync.Mutex

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for _, file := range images {
		wg.Add(1)
		go func(file string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			name := strings.TrimSuffix(file, filepath.Ext(file))
			res := pipeline.Register(ctx, name, filepath.Join(dir, file))

			mu.Lock()
			switch {
			case res.Err == nil:
				registered++
			case errors.Is(res.Err, detect.ErrNoFace):
				noFace++
			default:
				failed++
			}
			mu.Unlock()
			bar.Add(1)
		}(file)
	}
	wg.Wait()
	fmt.Println()

	fmt.Printf("\nRegistered: %d\n", registered)
	fmt.Printf("No face detected: %d\n", noFace)
	fmt.Printf("Failed: %d\n", failed)

	return nil
}
