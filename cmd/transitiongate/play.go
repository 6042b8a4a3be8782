package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vango-dev/transitiongate/internal/config"
	"github.com/vango-dev/transitiongate/internal/scenario"
	"github.com/vango-dev/transitiongate/pkg/render"
	"github.com/vango-dev/transitiongate/pkg/transition"
)

type playOptions struct {
	json         bool
	pretty       bool
	strict       bool
	exitDuration time.Duration
}

func playCmd(flags *globalFlags) *cobra.Command {
	opts := playOptions{exitDuration: -1}

	cmd := &cobra.Command{
		Use:   "play <scenario>",
		Short: "Replay a scenario and print every frame",
		Long: `Replay a scenario file in virtual time and print every frame the
gate commits, including the frames produced when an exit finishes.

Scenario props override the gate defaults from the config file.

Examples:
  transitiongate play demo.yaml
  transitiongate play demo.yaml --json
  transitiongate play demo.json --exit-duration=500ms`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.load()
			if err != nil {
				return err
			}
			sc, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			player := &scenario.Player{
				Defaults: defaultProps(cfg),
				Options: []transition.Option{
					transition.WithLogger(logger),
					transition.WithStrictChildren(cfg.Gate.Strict || opts.strict),
				},
				Renderer: render.NewRenderer(render.RendererConfig{Pretty: opts.pretty}),
				Logger:   logger,
			}
			if opts.exitDuration >= 0 {
				player.Defaults.ExitDuration = opts.exitDuration
			}

			frames, err := player.Play(sc)
			if err != nil {
				return err
			}
			if opts.json {
				return writeFramesJSON(cmd.OutOrStdout(), frames)
			}
			return writeFrames(cmd.OutOrStdout(), frames)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Print frames as a JSON array")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent rendered HTML")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Reject children that cannot carry a class")
	cmd.Flags().DurationVar(&opts.exitDuration, "exit-duration", -1, "Default exit duration (default from config)")

	return cmd
}

// defaultProps returns the gate props described by the config.
func defaultProps(cfg *config.Config) transition.Props {
	return transition.Props{
		EnterClass:   cfg.Gate.EnterClass,
		ExitClass:    cfg.Gate.ExitClass,
		ExitDuration: cfg.ExitDuration(),
		Wrap:         cfg.Gate.Wrap,
	}
}

func writeFrames(w io.Writer, frames []scenario.Frame) error {
	for _, f := range frames {
		phase := "enter"
		if f.IsExit {
			phase = "exit"
		}
		trigger := "update"
		if f.Timer {
			trigger = "timer"
		}
		pending := f.Pending
		if pending == "" {
			pending = "-"
		}
		html := f.HTML
		if html == "" {
			html = "(empty)"
		}
		if _, err := fmt.Fprintf(w, "%6dms  %-6s %-5s %-7s %s\n", f.AtMs, trigger, phase, pending, html); err != nil {
			return err
		}
	}
	return nil
}

func writeFramesJSON(w io.Writer, frames []scenario.Frame) error {
	if frames == nil {
		frames = []scenario.Frame{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(frames)
}
