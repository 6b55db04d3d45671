package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/routegen/internal/build"
	"github.com/vango-dev/routegen/internal/dev"
	"github.com/vango-dev/routegen/internal/errors"
)

func devCmd(flags *globalFlags) *cobra.Command {
	var o overrides

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Start the development server with live reload.

The dev server writes both manifests in development mode, watches the
route descriptor file, regenerates on change and refreshes connected
browsers. Generation errors are shown in a browser overlay.

Examples:
  routegen dev
  routegen dev --port=8080
  routegen dev --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject(flags, &o)
			if err != nil {
				return err
			}

			var server *dev.Server
			server = dev.NewServer(dev.ServerOptions{
				Config: cfg,
				OnGenerate: func(result *build.Result, err error) {
					if err != nil {
						errors.PrintError(err)
						return
					}
					success("Generated %d routes, reloaded %d browsers", result.Routes, server.Hub().ClientCount())
				},
			})

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			fmt.Println()
			info("routegen dev")
			info("Reload client: %s/reload-client.js", cfg.DevURL())
			info("Watching:      %s", cfg.RoutesPath())
			fmt.Println()

			if err := server.Start(ctx); err != nil {
				return errors.New("E401").Wrap(err)
			}
			fmt.Fprintln(os.Stdout, "\n  Shutting down...")
			return nil
		},
	}

	o.register(cmd)
	cmd.Flags().StringVarP(&o.host, "host", "H", "", "Host to bind to (default from routegen.json)")

	return cmd
}
