package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/infra/logger"
	"github.com/Amruth-empire/crop-prediction/internal/infra/predictclient"
	"github.com/Amruth-empire/crop-prediction/internal/infra/workspacefinder"
	"github.com/Amruth-empire/crop-prediction/internal/infra/yamlinput"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config
	// found is false when no cropcast.yaml exists and defaults are in use.
	found bool

	presets *yamlinput.Loader
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, cfg, err := resolveWorkspace(workspaceFlag, os.LookupEnv)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:    root,
		cfg:     cfg,
		found:   fileExists(filepath.Join(root, workspacefinder.ConfigFileName)),
		presets: yamlinput.NewLoader(root),
	}, nil
}

// resolveWorkspace returns the workspace root and its effective config. An
// explicit root without cropcast.yaml falls back to the defaults.
func resolveWorkspace(workspaceFlag string, lookup func(string) (string, bool)) (string, domain.Config, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", domain.Config{}, fmt.Errorf("get working directory: %w", err)
		}
		return workspacefinder.Resolve(wd, lookup)
	}

	root, err := filepath.Abs(w)
	if err != nil {
		return "", domain.Config{}, fmt.Errorf("invalid workspace path: %w", err)
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return root, cfg, err
	}

	cfg, err = workspacefinder.ApplyEnv(cfg, lookup)
	return root, cfg, err
}

func (ws *workspaceCtx) client(log *slog.Logger) (*predictclient.Client, error) {
	return predictclient.FromConfig(ws.cfg.API, predictclient.WithLogger(log))
}

// setupLogging writes to the workspace log file, and only when a workspace
// exists so one-shot commands leave no files behind.
func setupLogging(cmd *cobra.Command, ws *workspaceCtx) func() {
	debug, _ := cmd.Flags().GetBool("debug")
	if !ws.found {
		return func() {}
	}

	cleanup, err := logger.Setup(logger.Config{
		Root:  ws.root,
		Debug: debug || ws.cfg.Logging.Debug,
	})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
