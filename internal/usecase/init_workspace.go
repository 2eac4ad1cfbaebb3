package usecase

import (
	"log/slog"
	"strings"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/ports"
)

// InitWorkspace writes cropcast.yaml and the example preset under a root.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	logger      *slog.Logger
}

func NewInitWorkspace(initializer ports.WorkspaceInitializer, opts ...Option) *InitWorkspace {
	o := buildOptions(opts)
	return &InitWorkspace{initializer: initializer, logger: o.logger}
}

// Execute refuses a blank root so a missing --path never lands in "/".
// With force, existing files are overwritten.
func (uc *InitWorkspace) Execute(root string, force bool) error {
	if strings.TrimSpace(root) == "" {
		return &domain.OpError{
			Op:   "usecase.init_workspace",
			Kind: domain.KindInvalidInput,
			Err:  domain.ErrInvalidInput,
		}
	}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		uc.logger.Warn("workspace.init_failed", "root", root, "force", force, "err", err)
		return err
	}
	uc.logger.Info("workspace.init", "root", root, "force", force)
	return nil
}
