package config

import (
	"path/filepath"
	"sort"

	"go.trai.ch/scribe/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// resolvePathSet normalizes a raw path specification into a deterministic,
// deduplicated, sorted file set. Relative paths are anchored to base.
// The resolved set is expand(include) minus expand(exclude).
func (l *Loader) resolvePathSet(node *yaml.Node, base string) (domain.PathSet, error) {
	spec, err := parsePathSpec(node)
	if err != nil {
		return domain.PathSet{}, err
	}
	return l.resolveSpec(spec, base)
}

func (l *Loader) resolveSpec(spec *pathSpec, base string) (domain.PathSet, error) {
	include := anchorPaths(spec.include, base)
	exclude := anchorPaths(spec.exclude, base)

	excluded := make(map[string]bool)
	for _, path := range l.expandPath(exclude...) {
		excluded[path] = true
	}

	// Dedupe through a map, then sort for determinism.
	uniquePaths := make(map[string]bool)
	for _, path := range l.expandPath(include...) {
		if !excluded[path] {
			uniquePaths[path] = true
		}
	}

	resolved := make([]string, 0, len(uniquePaths))
	for path := range uniquePaths {
		resolved = append(resolved, path)
	}
	sort.Strings(resolved)

	return domain.PathSet{
		Include:  include,
		Exclude:  exclude,
		Resolved: resolved,
	}, nil
}

// expandPath replaces each directory by every file transitively contained
// in it. Files are kept as-is. Non-existent paths are kept verbatim; their
// absence is the downstream parser's concern, not the resolver's.
func (l *Loader) expandPath(paths ...string) []string {
	var out []string
	for _, path := range paths {
		isDir, err := l.fs.IsDir(path)
		if err != nil || !isDir {
			out = append(out, path)
			continue
		}

		files, err := l.fs.ListFiles(path)
		if err != nil {
			out = append(out, path)
			continue
		}
		out = append(out, files...)
	}
	return out
}

// anchorPaths anchors every relative path to base and cleans the result.
func anchorPaths(paths []string, base string) []string {
	if len(paths) == 0 {
		return nil
	}
	anchored := make([]string, len(paths))
	for i, path := range paths {
		if filepath.IsAbs(path) {
			anchored[i] = filepath.Clean(path)
			continue
		}
		anchored[i] = filepath.Join(base, path)
	}
	return anchored
}
