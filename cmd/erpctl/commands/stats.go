package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go-retail-erp/cmd/erpctl/output"
	"go-retail-erp/internal/bootstrap"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print dashboard statistics",
		Long: `Stats prints the same figures as GET /api/v1/dashboard/stats and checks
that every stored sale total matches its items.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withServices(func(ctx context.Context, svc bootstrap.Services) error {
				stats, err := svc.Dashboard.GetDashboardStats(ctx)
				if err != nil {
					return err
				}
				mismatched, err := svc.Dashboard.VerifyTotals(ctx)
				if err != nil {
					return err
				}

				if opts.jsonOutput {
					data, err := json.MarshalIndent(map[string]interface{}{
						"stats":      stats,
						"mismatched": mismatched,
					}, "", "  ")
					if err != nil {
						return err
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return err
				}

				output.Section("Dashboard")
				output.Field("Products", stats.ProductCount)
				output.Field("Customers", stats.CustomerCount)
				output.Field("Sales", stats.SaleCount)
				output.Field("Revenue", stats.Revenue.StringFixed(2))
				output.Field(fmt.Sprintf("Low stock (< %d)", stats.LowStockThreshold), stats.LowStockCount)
				output.Field("Inventory value", stats.InventoryValue.StringFixed(2))
				output.Field("Inventory cost", stats.InventoryCost.StringFixed(2))

				if len(stats.RevenueByPlatform) > 0 {
					output.Section("Revenue by platform")
					platforms := make([]string, 0, len(stats.RevenueByPlatform))
					for p := range stats.RevenueByPlatform {
						platforms = append(platforms, p)
					}
					sort.Strings(platforms)
					for _, p := range platforms {
						label := p
						if label == "" {
							label = "(none)"
						}
						output.Field(label, stats.RevenueByPlatform[p].StringFixed(2))
					}
				}

				fmt.Fprintln(output.Writer)
				if len(mismatched) > 0 {
					output.Warning("%d sale(s) have a stored total that differs from their items: %v", len(mismatched), mismatched)
				} else {
					output.Success("All sale totals match their items")
				}
				return nil
			})
		},
	}
}
