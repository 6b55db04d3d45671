package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/routegen/internal/build"
	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/pkg/manifest"
	"github.com/vango-dev/routegen/pkg/route"
)

func printCmd(flags *globalFlags) *cobra.Command {
	var (
		o       overrides
		devMode bool
	)

	cmd := &cobra.Command{
		Use:       "print <client|server>",
		Short:     "Print one manifest to stdout",
		ValidArgs: []string{"client", "server"},
		Args:      cobra.ExactArgs(1),
		Long: `Print the client or server manifest to stdout without writing files.

Examples:
  routegen print client
  routegen print server --src src/routes
  routegen print client --dev --port 3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var generate func([]route.Descriptor, manifest.Options) []byte
			switch args[0] {
			case "client":
				generate = manifest.GenerateClient
			case "server":
				generate = manifest.GenerateServer
			default:
				return errors.New("E400").WithDetail(fmt.Sprintf("Unknown manifest target %q.", args[0])).
					WithSuggestion("Use 'routegen print client' or 'routegen print server'")
			}

			cfg, err := loadProject(flags, &o)
			if err != nil {
				return err
			}

			builder := build.New(cfg, build.Options{Dev: devMode})
			routes, err := builder.Load()
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(generate(routes, builder.ManifestOptions()))
			return err
		},
	}

	o.register(cmd)
	cmd.Flags().BoolVar(&devMode, "dev", false, "Include the live-reload bootstrap in client.js")

	return cmd
}
