package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go-retail-erp/cmd/erpctl/output"
	"go-retail-erp/internal/bootstrap"

	"github.com/spf13/cobra"
)

func newClearCmd(opts *globalOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase all data",
		Long: `Clear removes every stored document: products, customers, sales and the
catalog lists. Catalog lists return to their defaults afterwards.

Examples:
  erpctl clear         # Asks for confirmation
  erpctl clear --yes   # No prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Are you sure you want to clear all data? This cannot be undone.") {
				output.Warning("Aborted, nothing was cleared")
				return nil
			}
			return opts.withServices(func(ctx context.Context, svc bootstrap.Services) error {
				if err := svc.Backup.ClearAll(ctx); err != nil {
					return err
				}
				output.Success("All data cleared")
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// confirm asks a yes/no question. Only "y" or "yes" counts as yes.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
