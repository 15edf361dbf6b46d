package ports

import "go.trai.ch/scribe/internal/core/domain"

// ProjectOpener opens IDE project files read-only.
//
//go:generate mockgen -source=project_opener.go -destination=mocks/mock_project_opener.go -package=mocks
type ProjectOpener interface {
	// Open validates that the project at path exists and is readable and
	// returns an opaque handle over it.
	Open(path string) (domain.ProjectHandle, error)
}
