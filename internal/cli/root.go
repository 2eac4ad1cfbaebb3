package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/infra/logger"
	"github.com/Amruth-empire/crop-prediction/internal/ui/tui"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var workspace string
	var preset string

	cmd := &cobra.Command{
		Use:          "cropcast",
		Short:        "cropcast: crop yield prediction and crop recommendation",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			cleanup := setupLogging(cmd, ws)
			defer cleanup()

			client, err := ws.client(logger.L())
			if err != nil {
				return err
			}

			var p *domain.Preset
			if preset != "" {
				loaded, err := ws.presets.LoadPreset(preset)
				if err != nil {
					return err
				}
				p = &loaded
			}

			deps := tui.Deps{
				Predictor:   client,
				Recommender: client,
				Options:     client,
				Preset:      p,
				ServiceURL:  ws.cfg.API.BaseURL,
				Logger:      logger.L(),
				Debug:       debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .cropcast/logs/cropcast.log")
	cmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&preset, "preset", "", "Preset name or YAML file used to pre-fill the forms")

	cmd.AddCommand(
		yieldCmd(),
		recommendCmd(),
		optionsCmd(),
		statusCmd(),
		serveCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
