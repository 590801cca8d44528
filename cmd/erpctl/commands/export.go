package commands

import (
	"context"
	"fmt"
	"os"

	"go-retail-erp/cmd/erpctl/output"
	"go-retail-erp/internal/bootstrap"
	"go-retail-erp/internal/service"

	"github.com/spf13/cobra"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every stored document to a backup file",
		Long: `Export reads the products, customers, sales, productTypes, suppliers and
platforms documents and writes them as one JSON object. Keys that were never
written are exported as null.

Examples:
  erpctl export                    # Writes erp-backup.json
  erpctl export -o - | jq .sales   # Writes to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(func(ctx context.Context, svc bootstrap.Services) error {
				data, err := svc.Backup.ExportJSON(ctx)
				if err != nil {
					return err
				}
				if outPath == "-" {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return err
				}
				if err := os.WriteFile(outPath, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", outPath, err)
				}
				output.Success("Backup written to %s (%d bytes)", outPath, len(data))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", service.BackupFileName, "Output file, or - for stdout")
	return cmd
}
