package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codeswhat/orgcard/internal/cache"
	"github.com/codeswhat/orgcard/internal/gateway"
	"github.com/codeswhat/orgcard/internal/usecase"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints the merged organization stats as JSON",
	Long: `Fetches and ratchet-merges statistics exactly like generate, but prints the
result as JSON instead of rendering SVGs. Neither the snapshot nor the output
files are written, so repeated runs leave no trace.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger(cmd)

		githubGateway, err := gateway.NewGitHubGateway(os.Getenv("GITHUB_TOKEN"), logger)
		if err != nil {
			return fmt.Errorf("failed to create GitHub gateway: %w", err)
		}
		aggregator := usecase.NewAggregator(githubGateway, logger)
		store := cache.NewStore(viper.GetString("cache_dir"))

		stats, err := aggregator.Merged(context.Background(), viper.GetString("org"), store)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal stats to JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
