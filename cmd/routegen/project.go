package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/routegen/internal/config"
)

// overrides are the flags that take precedence over routegen.json and
// ROUTEGEN_* variables.
type overrides struct {
	routes string
	src    string
	out    string
	port   int
	host   string
}

func (o *overrides) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.routes, "routes", "", "Route descriptor file (default from routegen.json)")
	cmd.Flags().StringVar(&o.src, "src", "", "Routes source root (default from routegen.json)")
	cmd.Flags().StringVarP(&o.out, "out", "o", "", "Manifest output directory (default from routegen.json)")
	cmd.Flags().IntVarP(&o.port, "port", "p", 0, "Live-reload port (default from routegen.json)")
}

func (o *overrides) apply(cfg *config.Config) {
	if o.routes != "" {
		cfg.Routes = o.routes
	}
	if o.src != "" {
		cfg.Src = o.src
	}
	if o.out != "" {
		cfg.Output = o.out
	}
	if o.port > 0 {
		cfg.Dev.Port = o.port
	}
	if o.host != "" {
		cfg.Dev.Host = o.host
	}
}

// loadProject loads routegen.json, then .env and ROUTEGEN_* variables,
// then flag overrides, and validates the result.
func loadProject(flags *globalFlags, o *overrides) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flags.dir != "" {
		root, ferr := config.FindProjectRoot(flags.dir)
		if ferr != nil {
			return nil, ferr
		}
		cfg, err = config.Load(root)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.LoadEnv(); err != nil {
		return nil, err
	}
	if o != nil {
		o.apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
