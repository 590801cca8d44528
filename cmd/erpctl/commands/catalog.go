package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"go-retail-erp/cmd/erpctl/output"
	"go-retail-erp/internal/bootstrap"
	"go-retail-erp/internal/model"

	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List or edit product types, suppliers and platforms",
		Long: `Catalog manages the lookup lists offered when entering products and sales.
KIND is one of: type, supplier, platform.

Subcommands:
  list    - Show one list, or all of them
  add     - Add a value (ignored if already present)
  remove  - Remove a value; existing products and sales keep it`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list [KIND]",
			Short: "Show catalog lists",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withServices(func(ctx context.Context, svc bootstrap.Services) error {
					kinds := model.CatalogKinds
					if len(args) == 1 {
						kinds = []model.CatalogKind{model.CatalogKind(args[0])}
					}
					all := make(map[model.CatalogKind][]string, len(kinds))
					for _, kind := range kinds {
						values, err := svc.Catalog.List(ctx, kind)
						if err != nil {
							return fmt.Errorf("%s: %w", kind, err)
						}
						all[kind] = values
					}

					if opts.jsonOutput {
						data, err := json.MarshalIndent(all, "", "  ")
						if err != nil {
							return err
						}
						_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
						return err
					}
					for _, kind := range kinds {
						printList(kind, all[kind])
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "add KIND VALUE",
			Short: "Add a catalog value",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withServices(func(ctx context.Context, svc bootstrap.Services) error {
					kind := model.CatalogKind(args[0])
					values, err := svc.Catalog.Add(ctx, kind, args[1])
					if err != nil {
						return fmt.Errorf("%s: %w", kind, err)
					}
					output.Success("%s list has %d value(s)", kind, len(values))
					printList(kind, values)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "remove KIND VALUE",
			Short: "Remove a catalog value",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withServices(func(ctx context.Context, svc bootstrap.Services) error {
					kind := model.CatalogKind(args[0])
					values, err := svc.Catalog.Remove(ctx, kind, args[1])
					if err != nil {
						return fmt.Errorf("%s: %w", kind, err)
					}
					output.Success("Removed %q from %s", args[1], kind)
					printList(kind, values)
					return nil
				})
			},
		},
	)
	return cmd
}

func printList(kind model.CatalogKind, values []string) {
	output.Section(string(kind))
	if len(values) == 0 {
		output.Muted("(empty)")
		return
	}
	for _, v := range values {
		output.Bullet(v)
	}
}
