package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/transitiongate/internal/config"
	"github.com/vango-dev/transitiongate/internal/templates"
)

type initOptions struct {
	template     string
	name         string
	enterClass   string
	exitClass    string
	exitDuration int
	force        bool
}

func initCmd() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a config file and a starter scenario",
		Long: `Create ` + config.ConfigFileName + ` and ` + templates.ScenarioFileName + ` in dir
(default: the current directory). The config points the preview server at
the scenario, so "transitiongate serve" plays it right away.

Templates:
  fade   One element entering and leaving
  swap   Content of different types replacing each other (default)
  wrap   Fragment children animated inside one container

Examples:
  transitiongate init
  transitiongate init demo --template=wrap
  transitiongate init demo --exit-duration-ms=500 --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.template, "template", "t", "swap", "Scenario template (fade, swap, wrap)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Scenario name (default: template name)")
	cmd.Flags().StringVar(&opts.enterClass, "enter-class", config.DefaultEnterClass, "Enter class")
	cmd.Flags().StringVar(&opts.exitClass, "exit-class", config.DefaultExitClass, "Exit class")
	cmd.Flags().IntVar(&opts.exitDuration, "exit-duration-ms", config.DefaultExitDurationMs, "Exit duration in milliseconds")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite existing files")

	return cmd
}

func runInit(dir string, opts initOptions) error {
	tmpl, err := templates.Get(opts.template)
	if err != nil {
		return err
	}

	cfg := config.New()
	cfg.Gate.EnterClass = opts.enterClass
	cfg.Gate.ExitClass = opts.exitClass
	cfg.Gate.ExitDurationMs = opts.exitDuration
	cfg.Scenario = templates.ScenarioFileName
	if err := cfg.Validate(); err != nil {
		return err
	}

	configPath := filepath.Join(dir, config.ConfigFileName)
	if !opts.force && config.Exists(dir) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	info("Writing %s from '%s' template...", templates.ScenarioFileName, tmpl.Name)
	if err := tmpl.Create(dir, templates.Config{
		Name:           opts.name,
		EnterClass:     cfg.Gate.EnterClass,
		ExitClass:      cfg.Gate.ExitClass,
		ExitDurationMs: cfg.Gate.ExitDurationMs,
	}, opts.force); err != nil {
		return err
	}

	info("Writing %s...", config.ConfigFileName)
	if err := cfg.SaveTo(configPath); err != nil {
		return err
	}

	success("Initialized %s", dir)
	info("Run 'transitiongate serve' in %s to preview it", dir)
	return nil
}
