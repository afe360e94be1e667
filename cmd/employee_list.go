package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ansnew/facetrack/internal/config"
	"github.com/ansnew/facetrack/internal/database"
)

var employeeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered employees",
	Long: `List registered employees in registration order.

Examples:
  # List everyone
  facetrack employee list

  # Search is case- and diacritics-insensitive
  facetrack employee list --search novak`,
	Args: cobra.NoArgs,
	RunE: runEmployeeList,
}

func init() {
	employeeCmd.AddCommand(employeeListCmd)

	employeeListCmd.Flags().String("search", "", "Filter by (normalized) name")
}

func runEmployeeList(cmd *cobra.Command, args []string) error {
	search := mustGetString(cmd, "search")

	cfg := config.Load()
	ctx := context.Background()

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	var employees []database.StoredEmployee
	if search != "" {
		employees, err = store.Search(ctx, search)
	} else {
		employees, err = store.GetAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("listing employees: %w", err)
	}

	if len(employees) == 0 {
		fmt.Println("No employees registered.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tENCODING\tIMAGE\tREGISTERED")
	for _, emp := range employees {
		fmt.Fprintf(w, "%s\t[%.1f %.1f %.1f]\t%d bytes\t%s\n",
			emp.Name,
			emp.Encoding[0], emp.Encoding[1], emp.Encoding[2],
			len(emp.Image),
			emp.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d\n", len(employees))
	return nil
}
