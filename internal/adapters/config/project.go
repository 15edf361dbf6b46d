package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/scribe/internal/core/domain"
	"go.trai.ch/zerr"
)

// parseProject resolves one project declaration into a descriptor.
// Dependencies are attached later by buildProjectGraph, and only for the
// multi-project case.
func (l *Loader) parseProject(dto *projectDTO, base string) (*domain.ProjectDescriptor, error) {
	if dto.File == "" {
		return nil, domain.ErrMissingProjectFile
	}

	projectPath := dto.File
	if !filepath.IsAbs(projectPath) {
		projectPath = filepath.Join(base, projectPath)
	}

	handle, err := l.projects.Open(projectPath)
	if err != nil {
		return nil, zerr.With(err, "file", projectPath)
	}

	targets, err := parseTargets(&dto.Target)
	if err != nil {
		return nil, err
	}

	excludedSet := make(map[string]bool)
	for _, path := range l.expandPath(anchorPaths(dto.Exclude, base)...) {
		excludedSet[path] = true
	}
	excluded := make([]string, 0, len(excludedSet))
	for path := range excludedSet {
		excluded = append(excluded, path)
	}
	sort.Strings(excluded)

	return &domain.ProjectDescriptor{
		Handle:        handle,
		RootDirectory: handle.SourceRoot(),
		Targets:       targets,
		ExcludedPaths: excluded,
		Name:          dto.Name,
	}, nil
}

// buildProjectGraph resolves a batch of project declarations where at
// least one of them declares dependencies. Name preconditions and the
// cycle check run before any dependency wiring.
func (l *Loader) buildProjectGraph(dtos []*projectDTO, base string) ([]*domain.ProjectDescriptor, error) {
	// Precondition: every declaration is named and names are unique.
	seen := make(map[string]bool, len(dtos))
	order := make([]string, 0, len(dtos))
	for _, dto := range dtos {
		if dto.Name == "" {
			err := zerr.Wrap(domain.ErrMissingProjectName, "declaration has no name")
			return nil, zerr.With(err, "file", dto.File)
		}
		if seen[dto.Name] {
			err := zerr.Wrap(domain.ErrDuplicateProjectName, "project names must be unique")
			return nil, zerr.With(err, "project_name", dto.Name)
		}
		seen[dto.Name] = true
		order = append(order, dto.Name)
	}

	byName := make(map[string]*domain.ProjectDescriptor, len(dtos))
	descriptors := make([]*domain.ProjectDescriptor, 0, len(dtos))
	depNames := make(map[string][]string, len(dtos))

	for _, dto := range dtos {
		descriptor, err := l.parseProject(dto, base)
		if err != nil {
			return nil, err
		}

		deps, err := parseDependencyNames(&dto.Dependencies)
		if err != nil {
			return nil, err
		}
		depNames[dto.Name] = deps

		if present(&dto.Output) {
			l.logger.Warn(fmt.Sprintf(
				"project %q declares 'output', which is not applied; the top-level 'output' is used for all projects",
				dto.Name,
			))
		}

		byName[dto.Name] = descriptor
		descriptors = append(descriptors, descriptor)
	}

	if err := detectCycles(order, depNames); err != nil {
		return nil, err
	}

	// Attach ordered dependency back-references into the same resolved
	// collection. The descriptors share ownership; nothing is reopened.
	for _, dto := range dtos {
		descriptor := byName[dto.Name]
		for _, dep := range depNames[dto.Name] {
			resolved, ok := byName[dep]
			if !ok {
				// Unknown names are skipped, not fatal. See DESIGN.md.
				l.logger.Warn(fmt.Sprintf("project %q depends on unknown project %q, ignoring", dto.Name, dep))
				continue
			}
			descriptor.Dependencies = append(descriptor.Dependencies, resolved)
		}
	}

	return descriptors, nil
}

// Visit states for the dependency cycle check.
const (
	stateUnvisited = iota
	stateInProgress
	stateDone
)

// detectCycles runs a depth-first search from every project name, not only
// unreferenced roots, so a cycle reachable only from a non-root name is
// still caught. The first back-edge fails the whole resolution.
func detectCycles(order []string, deps map[string][]string) error {
	state := make(map[string]int, len(order))

	for _, root := range order {
		if state[root] != stateUnvisited {
			continue
		}
		if err := visitFrom(root, deps, state); err != nil {
			return err
		}
	}
	return nil
}

// frame is one entry on the explicit DFS stack: a project name and the
// index of its next unvisited dependency.
type frame struct {
	name string
	next int
}

// visitFrom searches from root using an explicit stack and a per-node
// state map instead of recursion, so adversarial dependency chains cannot
// exhaust the call stack.
func visitFrom(root string, deps map[string][]string, state map[string]int) error {
	stack := []frame{{name: root}}
	state[root] = stateInProgress

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		dependencies := deps[top.name]

		if top.next >= len(dependencies) {
			state[top.name] = stateDone
			stack = stack[:len(stack)-1]
			continue
		}

		dep := dependencies[top.next]
		top.next++

		switch state[dep] {
		case stateInProgress:
			return cycleError(stack, dep)
		case stateUnvisited:
			state[dep] = stateInProgress
			stack = append(stack, frame{name: dep})
		}
	}
	return nil
}

// cycleError reports the cycle path from the first occurrence of dep on
// the current search path back to dep.
func cycleError(stack []frame, dep string) error {
	start := 0
	for i := range stack {
		if stack[i].name == dep {
			start = i
			break
		}
	}

	var path strings.Builder
	for _, f := range stack[start:] {
		path.WriteString(f.name)
		path.WriteString(" -> ")
	}
	path.WriteString(dep)

	err := zerr.Wrap(domain.ErrCircularDependency, "dependency chain loops back on itself")
	err = zerr.With(err, "project", dep)
	return zerr.With(err, "cycle", path.String())
}
