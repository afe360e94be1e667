package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ansnew/facetrack/internal/config"
)

var employeeDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a registered employee",
	Long: `Delete a registered employee.

Asks for confirmation unless --yes is given. Deleting a name that is
not registered changes nothing.

Examples:
  facetrack employee delete "Alice Smith"
  facetrack employee delete "Alice Smith" --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runEmployeeDelete,
}

func init() {
	employeeCmd.AddCommand(employeeDeleteCmd)

	employeeDeleteCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runEmployeeDelete(cmd *cobra.Command, args []string) error {
	name := args[0]
	skipConfirm := mustGetBool(cmd, "yes")

	if !skipConfirm {
		fmt.Printf("Delete employee %q? [y/N]: ", name)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	cfg := config.Load()
	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	removed, err := store.Delete(ctx, name)
	if err != nil {
		return fmt.Errorf("deleting employee: %w", err)
	}

	if removed {
		fmt.Printf("Employee %q deleted.\n", name)
	} else {
		fmt.Printf("Employee %q was not registered; nothing to delete.\n", name)
	}
	return nil
}
