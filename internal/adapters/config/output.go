package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/scribe/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// parseOutput resolves the output destination. A bare string is a path
// with no link. The mapping form requires 'path' and accepts an optional
// 'link'. projects is the already-resolved source collection, used to
// borrow a handle when the link omits 'project'.
func (l *Loader) parseOutput(node *yaml.Node, base string, projects []*domain.ProjectDescriptor) (domain.OutputDescriptor, error) {
	if !present(node) {
		return domain.OutputDescriptor{}, domain.ErrMissingOutput
	}

	node = resolvedNode(node)
	switch node.Kind {
	case yaml.ScalarNode:
		var raw string
		if err := node.Decode(&raw); err != nil {
			return domain.OutputDescriptor{}, zerr.Wrap(domain.ErrInvalidOutput, "'output' must be a string or a mapping")
		}
		// A null or empty scalar carries no destination. 'output:' with
		// no value lands here as a !!null scalar.
		if raw == "" {
			return domain.OutputDescriptor{}, domain.ErrMissingOutputPath
		}
		return l.newOutput(raw, base, nil), nil
	case yaml.MappingNode:
		var dto outputDTO
		if err := node.Decode(&dto); err != nil {
			return domain.OutputDescriptor{}, zerr.Wrap(domain.ErrInvalidOutput, err.Error())
		}
		if dto.Path == "" {
			return domain.OutputDescriptor{}, domain.ErrMissingOutputPath
		}
		link, err := l.parseLink(&dto.Link, base, projects)
		if err != nil {
			return domain.OutputDescriptor{}, err
		}
		return l.newOutput(dto.Path, base, link), nil
	default:
		return domain.OutputDescriptor{}, zerr.Wrap(domain.ErrInvalidOutput, "'output' must be a string or a mapping")
	}
}

func (l *Loader) newOutput(rawPath, base string, link *domain.LinkDescriptor) domain.OutputDescriptor {
	path := rawPath
	if filepath.IsAbs(path) {
		path = filepath.Clean(path)
	} else {
		path = filepath.Join(base, path)
	}

	return domain.OutputDescriptor{
		Path:        path,
		IsDirectory: l.isDirectoryPath(path, rawPath),
		Link:        link,
	}
}

// isDirectoryPath prefers the actual kind on disk. For paths that do not
// exist yet it infers a directory from the raw shape: a trailing separator
// or an extension-less final component.
func (l *Loader) isDirectoryPath(path, raw string) bool {
	if isDir, err := l.fs.IsDir(path); err == nil {
		return isDir
	}
	if strings.HasSuffix(raw, "/") || strings.HasSuffix(raw, string(filepath.Separator)) {
		return true
	}
	return filepath.Ext(path) == ""
}

// parseLink resolves an output link. A missing 'target' is fatal; an
// unopenable linked project is not: the link degrades to absent so that
// generation can still proceed without project wiring.
func (l *Loader) parseLink(node *yaml.Node, base string, projects []*domain.ProjectDescriptor) (*domain.LinkDescriptor, error) {
	if !present(node) {
		return nil, nil
	}

	var dto linkDTO
	if err := resolvedNode(node).Decode(&dto); err != nil {
		return nil, zerr.Wrap(domain.ErrInvalidOutput, err.Error())
	}
	if dto.Target == "" {
		return nil, domain.ErrMissingLinkTarget
	}

	if dto.Project == "" {
		// Borrow the handle from the already-resolved source project
		// instead of reopening it.
		if len(projects) == 0 {
			l.logger.Warn("output link has no 'project' and no project source to borrow from, skipping link")
			return nil, nil
		}
		borrowed := projects[0]
		return &domain.LinkDescriptor{
			Handle:      borrowed.Handle,
			ProjectPath: borrowed.Handle.Path(),
			TargetName:  dto.Target,
			Group:       dto.Group,
		}, nil
	}

	projectPath := dto.Project
	if !filepath.IsAbs(projectPath) {
		projectPath = filepath.Join(base, projectPath)
	}

	handle, err := l.projects.Open(projectPath)
	if err != nil {
		l.logger.Warn(fmt.Sprintf("could not open linked project %s, generated files will not be linked: %v", projectPath, err))
		return nil, nil
	}

	return &domain.LinkDescriptor{
		Handle:      handle,
		ProjectPath: projectPath,
		TargetName:  dto.Target,
		Group:       dto.Group,
	}, nil
}
