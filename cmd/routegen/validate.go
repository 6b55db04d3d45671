package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/routegen/internal/build"
	"github.com/vango-dev/routegen/pkg/route"
)

func validateCmd(flags *globalFlags) *cobra.Command {
	var o overrides

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the route descriptors without generating",
		Long: `Load the route descriptor file and report every problem:
duplicate ids, more than one _4xx or _5xx handler, unknown types,
ids or parameter names that are not valid identifiers, and missing
files or patterns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject(flags, &o)
			if err != nil {
				return err
			}

			routes, err := build.New(cfg, build.Options{}).Load()
			if err != nil {
				return err
			}

			success("%d routes valid (%d pages)", len(routes), len(route.Pages(routes)))
			for _, r := range routes {
				if kind, ok := r.ErrorKind(); ok {
					info("%-20s %s handler", r.ID, kind)
					continue
				}
				info("%-20s %-5s %s", r.ID, r.Type, r.File)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&o.routes, "routes", "", "Route descriptor file (default from routegen.json)")

	return cmd
}
