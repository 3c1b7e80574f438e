package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var refreshTrendsCmd = &cobra.Command{
	Use:   "refresh-trends",
	Short: "Rewrite market trends for every catalog skill",
	RunE:  runRefreshTrends,
}

func init() {
	rootCmd.AddCommand(refreshTrendsCmd)
}

func runRefreshTrends(cmd *cobra.Command, _ []string) error {
	c, err := openContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	n, err := c.Usecases.MarketTrend.RefreshMarketTrends(cmd.Context())
	if err != nil {
		return fmt.Errorf("refresh market trends: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "market trends updated: %d\n", n)
	return nil
}
