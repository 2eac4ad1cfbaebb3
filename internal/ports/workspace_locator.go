package ports

// WorkspaceLocator finds the directory holding cropcast.yaml, starting from an
// arbitrary directory and walking up.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
