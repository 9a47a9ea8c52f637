// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "orgcard",
	Short: "Generates the NFO-style organization profile SVGs",
	Long: `orgcard collects statistics for a GitHub organization, merges them with a
cached snapshot so cumulative counters never go down, and renders matching
dark and light mode SVGs for the profile README. Invoked without a
subcommand it runs the full generate sequence.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("org", "CodesWhat", "GitHub organization to collect stats for")
	rootCmd.PersistentFlags().String("output-dir", "profile", "Directory the SVG files are written to")
	rootCmd.PersistentFlags().String("cache-dir", "cache", "Directory holding the stats snapshot")

	viper.BindPFlag("org", rootCmd.PersistentFlags().Lookup("org"))
	viper.BindPFlag("output_dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	viper.BindPFlag("cache_dir", rootCmd.PersistentFlags().Lookup("cache-dir"))
}

func initConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".orgcard")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ORGCARD")
	viper.AutomaticEnv()

	viper.SetDefault("org", "CodesWhat")
	viper.SetDefault("output_dir", "profile")
	viper.SetDefault("cache_dir", "cache")

	// The config file is optional.
	_ = viper.ReadInConfig()
}

// newLogger returns a debug-level logger on stderr when --verbose is set,
// and one discarding everything otherwise.
func newLogger(cmd *cobra.Command) *log.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return log.New(io.Discard)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           log.DebugLevel,
	})
}
