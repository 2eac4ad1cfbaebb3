package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/infra/logger"
	"github.com/Amruth-empire/crop-prediction/internal/ui/web"
	"github.com/Amruth-empire/crop-prediction/internal/usecase"
)

func optionsCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "options",
		Short: "List the states, districts, seasons and crops the service knows",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspaceFlag(cmd))
			if err != nil {
				return err
			}
			cleanup := setupLogging(cmd, ws)
			defer cleanup()

			client, err := ws.client(logger.L())
			if err != nil {
				return err
			}

			opts, err := usecase.NewLoadOptions(client, usecase.WithLogger(logger.L())).Execute(cmd.Context())
			if err != nil {
				return err
			}
			return printOptions(cmd.OutOrStdout(), opts, format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func statusCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "status",
		Short: "Check the prediction service health and reference data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspaceFlag(cmd))
			if err != nil {
				return err
			}
			cleanup := setupLogging(cmd, ws)
			defer cleanup()

			client, err := ws.client(logger.L())
			if err != nil {
				return err
			}

			st, err := usecase.NewCheckService(client, client, usecase.WithLogger(logger.L())).Execute(cmd.Context())
			if err != nil {
				return err
			}
			if err := printStatus(cmd.OutOrStdout(), ws.cfg.API.BaseURL, st, format); err != nil {
				return err
			}
			if st.HealthErr != nil || !st.Health.Healthy() {
				return errors.New("service is not healthy")
			}
			return nil
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func serveCmd() *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the two-tab web form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspaceFlag(cmd))
			if err != nil {
				return err
			}
			debug, _ := cmd.Flags().GetBool("debug")
			debug = debug || ws.cfg.Logging.Debug

			log := logger.New(os.Stderr, debug)
			if ws.found {
				cleanup, err := logger.Setup(logger.Config{Root: ws.root, Debug: debug, Stderr: true})
				if err == nil && cleanup != nil {
					defer func() { _ = cleanup() }()
					log = logger.L()
				}
			}

			client, err := ws.client(log)
			if err != nil {
				return err
			}

			cfg := ws.cfg.Serve
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			srv := web.New(cfg, web.Deps{
				Predictor:   client,
				Recommender: client,
				Options:     client,
				ServiceURL:  ws.cfg.API.BaseURL,
				Logger:      log,
			})
			cmd.Printf("Serving on http://%s (prediction service: %s)\n", displayAddr(cfg.Addr), ws.cfg.API.BaseURL)
			return srv.ListenAndServe(cmd.Context())
		},
	}

	c.Flags().StringVar(&addr, "addr", domain.DefaultServeAddr, "Listen address")
	return c
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
