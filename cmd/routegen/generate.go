package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/routegen/internal/build"
	"github.com/vango-dev/routegen/internal/config"
)

func generateCmd(flags *globalFlags) *cobra.Command {
	var (
		o       overrides
		devMode bool
		publish bool
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Write client.js and server.js",
		Long: `Load and validate the route descriptors, then write the client and
server manifests to the output directory (default: app/manifest).

The output is deterministic: running it multiple times produces identical
files unless the descriptors change.

Examples:
  routegen generate
  routegen generate --dev --port 10000
  routegen generate --routes build/routes.yaml --src src/routes
  routegen generate --publish`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject(flags, &o)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cfg, devMode, publish)
		},
	}

	o.register(cmd)
	cmd.Flags().BoolVar(&devMode, "dev", false, "Include the live-reload bootstrap in client.js")
	cmd.Flags().BoolVar(&publish, "publish", false, "Upload the manifests to the configured bucket")

	return cmd
}

func runGenerate(ctx context.Context, cfg *config.Config, devMode, publish bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	builder := build.New(cfg, build.Options{
		Dev:     devMode,
		Publish: publish,
	})

	result, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	success("Generated %d routes (%d pages) in %s", result.Routes, result.Pages, result.Duration.Round(time.Millisecond))
	for _, f := range result.Files {
		info("%s", f)
	}
	if result.Published {
		success("Published to %s://%s/%s", cfg.Publish.Backend, cfg.Publish.Bucket, cfg.Publish.Prefix)
	}
	if result.Routes == 0 {
		warn("No routes found in %s", cfg.RoutesPath())
	}
	return nil
}
