package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codeswhat/orgcard/internal/render"
)

var bannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Writes the art-only banner SVGs",
	Long: `Renders the block-art banner in both modes and writes banner_dark.svg and
banner_light.svg to the output directory. No stats are fetched and the cache
is not touched, so the output is fully deterministic.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer := render.New()
		return writeDocuments(cmd, map[string][]byte{
			"banner_dark.svg":  renderer.Banner(render.Dark),
			"banner_light.svg": renderer.Banner(render.Light),
		})
	},
}

func init() {
	rootCmd.AddCommand(bannerCmd)
}
