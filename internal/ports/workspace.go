package ports

import "github.com/Amruth-empire/crop-prediction/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
