package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/transitiongate/internal/preview"
	"github.com/vango-dev/transitiongate/internal/scenario"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port         int
		host         string
		scenarioPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the preview server",
		Long: `Start a preview server for one transition gate.

Open the printed URL in a browser, then change the gate's children
over HTTP and watch the transitions play.

Examples:
  transitiongate serve
  transitiongate serve --port=8080 --scenario=demo.yaml
  curl -X PUT localhost:3000/children -d '{"tag":"div","text":"hi"}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := flags.load()
			if err != nil {
				return err
			}

			// Apply command-line overrides
			if port > 0 {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}
			path := cfg.ScenarioPath()
			if scenarioPath != "" {
				path = scenarioPath
			}

			var sc *scenario.Scenario
			if path != "" {
				if sc, err = scenario.Load(path); err != nil {
					return err
				}
			}

			server := preview.NewServer(preview.Options{
				Config:   cfg,
				Logger:   logger,
				Scenario: sc,
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success("Preview at %s", cfg.URL())
			if cfg.Metrics.Enabled {
				info("Metrics at %s%s", cfg.URL(), cfg.Metrics.Path)
			}
			return server.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")
	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario to play on start")

	return cmd
}
