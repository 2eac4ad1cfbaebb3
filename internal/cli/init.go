package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Amruth-empire/crop-prediction/internal/buildinfo"
	"github.com/Amruth-empire/crop-prediction/internal/infra/fsworkspace"
	"github.com/Amruth-empire/crop-prediction/internal/infra/logger"
	"github.com/Amruth-empire/crop-prediction/internal/infra/workspacefinder"
	"github.com/Amruth-empire/crop-prediction/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create cropcast.yaml and an example preset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer(), usecase.WithLogger(logger.L()))
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Workspace ready: %s\n", root)
			fmt.Fprintf(out, "  config:  %s\n", workspacefinder.ConfigFileName)
			fmt.Fprintf(out, "  preset:  presets/example.yaml\n")
			fmt.Fprintf(out, "\nTry: cropcast yield --from example\n")
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", ".", "Directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return c
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}
