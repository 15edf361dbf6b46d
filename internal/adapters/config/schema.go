package config

import (
	"go.trai.ch/scribe/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// documentDTO mirrors the top level of a scribe.yaml document. Sections
// with heterogeneous shapes stay raw nodes and are dispatched by the
// shape-specific parse functions below, one constructor per shape.
// The fields are value nodes: yaml.v3 only captures raw content into
// yaml.Node values, and an absent key leaves the node zero.
type documentDTO struct {
	Sources       yaml.Node `yaml:"sources"`
	Project       yaml.Node `yaml:"project"`
	Templates     yaml.Node `yaml:"templates"`
	Output        yaml.Node `yaml:"output"`
	CacheBasePath yaml.Node `yaml:"cacheBasePath"`
	ForceParse    yaml.Node `yaml:"force-parse"`
	Args          yaml.Node `yaml:"args"`
}

// projectDTO mirrors one project declaration.
type projectDTO struct {
	File         string    `yaml:"file"`
	Name         string    `yaml:"name"`
	Target       yaml.Node `yaml:"target"`
	Exclude      []string  `yaml:"exclude"`
	Dependencies yaml.Node `yaml:"dependencies"`
	Output       yaml.Node `yaml:"output"`
}

// targetDTO mirrors one target declaration. Module stays a raw node:
// a non-string module falls back to the target name instead of failing.
type targetDTO struct {
	Name   string    `yaml:"name"`
	Module yaml.Node `yaml:"module"`
}

// outputDTO mirrors the mapping form of the output declaration.
type outputDTO struct {
	Path string    `yaml:"path"`
	Link yaml.Node `yaml:"link"`
}

// linkDTO mirrors an output link declaration.
type linkDTO struct {
	Project string `yaml:"project"`
	Target  string `yaml:"target"`
	Group   string `yaml:"group"`
}

// pathSpec is the normalized form of a path specification.
type pathSpec struct {
	include []string
	exclude []string
}

// parsePathSpec dispatches on the two accepted shapes: a flat list of
// paths, or a mapping with a required non-empty 'include' key and an
// optional 'exclude' key.
func parsePathSpec(node *yaml.Node) (*pathSpec, error) {
	node = resolvedNode(node)
	switch node.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return nil, zerr.Wrap(domain.ErrUnrecognizedPathSpec, err.Error())
		}
		if len(items) == 0 {
			return nil, domain.ErrEmptyPathList
		}
		return &pathSpec{include: items}, nil
	case yaml.MappingNode:
		var obj struct {
			Include []string `yaml:"include"`
			Exclude []string `yaml:"exclude"`
		}
		if err := node.Decode(&obj); err != nil {
			return nil, zerr.Wrap(domain.ErrUnrecognizedPathSpec, err.Error())
		}
		if len(obj.Include) == 0 {
			return nil, domain.ErrMissingInclude
		}
		return &pathSpec{include: obj.Include, exclude: obj.Exclude}, nil
	default:
		return nil, domain.ErrUnrecognizedPathSpec
	}
}

// parseProjectSpecs accepts a single project mapping or a list of them.
func parseProjectSpecs(node *yaml.Node) ([]*projectDTO, error) {
	node = resolvedNode(node)
	switch node.Kind {
	case yaml.MappingNode:
		var dto projectDTO
		if err := node.Decode(&dto); err != nil {
			return nil, zerr.Wrap(domain.ErrInvalidSources, err.Error())
		}
		return []*projectDTO{&dto}, nil
	case yaml.SequenceNode:
		var dtos []*projectDTO
		if err := node.Decode(&dtos); err != nil {
			return nil, zerr.Wrap(domain.ErrInvalidSources, err.Error())
		}
		return dtos, nil
	default:
		return nil, zerr.Wrap(domain.ErrInvalidSources, "'project' must be a mapping or a list of mappings")
	}
}

// parseTargets accepts a single target mapping or a non-empty list of them.
func parseTargets(node *yaml.Node) ([]domain.TargetDescriptor, error) {
	if !present(node) {
		return nil, domain.ErrMissingTarget
	}

	node = resolvedNode(node)
	switch node.Kind {
	case yaml.MappingNode:
		target, err := parseTarget(node)
		if err != nil {
			return nil, err
		}
		return []domain.TargetDescriptor{target}, nil
	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return nil, domain.ErrMissingTarget
		}
		targets := make([]domain.TargetDescriptor, 0, len(node.Content))
		for _, item := range node.Content {
			target, err := parseTarget(item)
			if err != nil {
				return nil, err
			}
			targets = append(targets, target)
		}
		return targets, nil
	default:
		return nil, domain.ErrMissingTarget
	}
}

// parseTarget requires a non-empty 'name'. 'module' defaults to the name
// when absent or not a string scalar.
func parseTarget(node *yaml.Node) (domain.TargetDescriptor, error) {
	var dto targetDTO
	if err := resolvedNode(node).Decode(&dto); err != nil {
		return domain.TargetDescriptor{}, zerr.Wrap(domain.ErrInvalidSources, err.Error())
	}
	if dto.Name == "" {
		return domain.TargetDescriptor{}, domain.ErrMissingTargetName
	}

	module := dto.Name
	if present(&dto.Module) {
		var s string
		if err := resolvedNode(&dto.Module).Decode(&s); err == nil && s != "" {
			module = s
		}
	}

	return domain.TargetDescriptor{Name: dto.Name, Module: module}, nil
}

// parseDependencyNames reads a 'dependencies' list. A zero node means the
// key was absent.
func parseDependencyNames(node *yaml.Node) ([]string, error) {
	if !present(node) {
		return nil, nil
	}
	var names []string
	if err := resolvedNode(node).Decode(&names); err != nil {
		return nil, zerr.Wrap(domain.ErrInvalidSources, "'dependencies' must be a list of project names")
	}
	return names, nil
}

// present reports whether the document carried the key at all. Keys that
// never appeared leave their node zero; 'key:' with no value yields a
// !!null scalar, which counts as present.
func present(node *yaml.Node) bool {
	return node != nil && !node.IsZero()
}

// resolvedNode follows a YAML alias to its anchor.
func resolvedNode(node *yaml.Node) *yaml.Node {
	if node != nil && node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}
