package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/routegen/internal/config"
	"github.com/vango-dev/routegen/internal/errors"
	"github.com/vango-dev/routegen/internal/templates"
)

func initCmd(flags *globalFlags) *cobra.Command {
	var (
		o     overrides
		name     string
		template string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create routegen.json",
		Long: `Write a routegen.json with default settings to the project directory
(--dir, or the current directory).

With --template, a starter descriptor file and the route modules it
refers to are written too. Existing files are never overwritten.

Templates:
  minimal     one page plus the _4xx and _5xx handlers
  blog        pages with a dynamic segment and an API route

Examples:
  routegen init
  routegen init --template blog
  routegen init --name blog --routes build/routes.yaml --src src/routes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := flags.dir
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = wd
			}
			return runInit(dir, name, template, &o, force)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name (default: directory name)")
	cmd.Flags().StringVarP(&template, "template", "t", "", "Starter template to scaffold (minimal, blog)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing routegen.json")
	o.register(cmd)

	return cmd
}

func runInit(dir, name, template string, o *overrides, force bool) error {
	path := filepath.Join(dir, config.ConfigFileName)

	var tmpl *templates.Template
	if template != "" {
		var err error
		if tmpl, err = templates.Get(template); err != nil {
			return err
		}
	}

	if config.Exists(dir) && !force {
		return errors.New("E402").WithFile(path).
			WithSuggestion("Use --force to overwrite it")
	}

	cfg := config.New()
	cfg.Name = name
	if cfg.Name == "" {
		cfg.Name = filepath.Base(dir)
	}
	o.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	if err := cfg.SaveTo(path); err != nil {
		return err
	}

	success("Created %s", path)
	info("Routes:  %s", cfg.Routes)
	info("Source:  %s", cfg.Src)
	info("Output:  %s", cfg.Output)

	if tmpl == nil {
		return nil
	}
	written, err := tmpl.Create(dir, templates.Config{
		ProjectName: cfg.Name,
		RoutesFile:  cfg.Routes,
		Src:         cfg.Src,
	})
	if err != nil {
		return err
	}
	success("Scaffolded %s template (%d files)", tmpl.Name, len(written))
	for _, f := range written {
		info("%s", f)
	}
	info("Next: routegen generate")
	return nil
}
