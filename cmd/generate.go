package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codeswhat/orgcard/internal/cache"
	"github.com/codeswhat/orgcard/internal/gateway"
	"github.com/codeswhat/orgcard/internal/render"
	"github.com/codeswhat/orgcard/internal/usecase"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fetches org stats and writes the dark and light profile SVGs",
	Long: `Fetches statistics for the configured organization, merges them with the
cached snapshot, persists the result, and writes dark_mode.svg and
light_mode.svg to the output directory. Fetch failures degrade to cached or
zero values; only file writes can fail the command.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command) error {
	logger := newLogger(cmd)

	githubGateway, err := gateway.NewGitHubGateway(os.Getenv("GITHUB_TOKEN"), logger)
	if err != nil {
		return fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	aggregator := usecase.NewAggregator(githubGateway, logger)
	store := cache.NewStore(viper.GetString("cache_dir"))

	stats, err := aggregator.Refresh(context.Background(), viper.GetString("org"), store)
	if err != nil {
		return err
	}

	renderer := render.New()
	return writeDocuments(cmd, map[string][]byte{
		"dark_mode.svg":  renderer.Profile(render.Dark, stats),
		"light_mode.svg": renderer.Profile(render.Light, stats),
	})
}

// writeDocuments writes each named document into the output directory and
// reports the written paths. Any write failure is fatal.
func writeDocuments(cmd *cobra.Command, documents map[string][]byte) error {
	outputDir := viper.GetString("output_dir")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for _, name := range sortedKeys(documents) {
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, documents[name], 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Generated: %s\n", color.GreenString("✓"), path)
	}
	return nil
}

func sortedKeys(documents map[string][]byte) []string {
	keys := make([]string, 0, len(documents))
	for key := range documents {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
