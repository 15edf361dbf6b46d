package config

import (
	"go.trai.ch/scribe/internal/core/domain"
	"go.trai.ch/zerr"
)

// resolveSource dispatches on the two source shapes: project declarations
// take precedence over a flat path set.
func (l *Loader) resolveSource(dto *documentDTO, base string) (domain.Source, error) {
	switch {
	case present(&dto.Project):
		specs, err := parseProjectSpecs(&dto.Project)
		if err != nil {
			return domain.Source{}, err
		}

		// The graph builder only runs when some declaration carries a
		// 'dependencies' key; otherwise every project parses independently.
		if anyDependencies(specs) {
			descriptors, err := l.buildProjectGraph(specs, base)
			if err != nil {
				return domain.Source{}, err
			}
			return domain.NewProjectsSource(descriptors), nil
		}

		descriptors := make([]*domain.ProjectDescriptor, 0, len(specs))
		for _, spec := range specs {
			descriptor, err := l.parseProject(spec, base)
			if err != nil {
				return domain.Source{}, err
			}
			descriptors = append(descriptors, descriptor)
		}
		return domain.NewProjectsSource(descriptors), nil

	case present(&dto.Sources):
		paths, err := l.resolvePathSet(&dto.Sources, base)
		if err != nil {
			return domain.Source{}, zerr.Wrap(domain.ErrInvalidSources, err.Error())
		}
		return domain.NewPathsSource(paths), nil

	default:
		return domain.Source{}, domain.ErrMissingSourceKey
	}
}

func anyDependencies(specs []*projectDTO) bool {
	for _, spec := range specs {
		if present(&spec.Dependencies) {
			return true
		}
	}
	return false
}
