package main

import (
	"log/slog"

	"journal-storefront/internal/observability/logging"
	pkgconfig "journal-storefront/pkg/config"

	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Server-rendered journal pages for a Shopify storefront",
		Long: `storefront renders journal articles fetched from the Shopify Storefront API.

Available subcommands:
  serve  - Run the HTTP server
  render - Render one article page to stdout`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logging.NewLogger()
			slog.SetDefault(opts.logger)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config",
		pkgconfig.GetEnvString("STOREFRONT_CONFIG", ""),
		"path to the shop YAML file (env STOREFRONT_CONFIG)")

	cmd.AddCommand(newServeCmd(opts), newRenderCmd(opts))
	return cmd
}
