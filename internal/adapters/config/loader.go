// Package config implements the configuration resolution engine for scribe.
package config

import (
	"path/filepath"

	"go.trai.ch/scribe/internal/core/domain"
	"go.trai.ch/scribe/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader over a YAML document.
type Loader struct {
	fs       FileSystem
	logger   ports.Logger
	projects ports.ProjectOpener
}

// NewLoader creates a new Loader.
func NewLoader(fsys FileSystem, logger ports.Logger, projects ports.ProjectOpener) *Loader {
	return &Loader{fs: fsys, logger: logger, projects: projects}
}

// Load reads the configuration document at configPath and resolves it.
// Relative paths in the document are anchored to the document's directory.
func (l *Loader) Load(configPath string) (*domain.Configuration, error) {
	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		return nil, zerr.With(err, "path", configPath)
	}

	base := filepath.Dir(configPath)
	if !filepath.IsAbs(base) {
		if abs, absErr := filepath.Abs(base); absErr == nil {
			base = abs
		}
	}

	return l.Parse(data, base)
}

// Parse resolves a raw configuration document against base, the directory
// every relative path is anchored to. The first failure aborts the whole
// resolution; there is no partial configuration.
func (l *Loader) Parse(data []byte, base string) (*domain.Configuration, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, domain.ErrInvalidFormat
	}

	var dto documentDTO
	if err := root.Content[0].Decode(&dto); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	source, err := l.resolveSource(&dto, base)
	if err != nil {
		return nil, err
	}
	if source.IsEmpty() {
		return nil, domain.ErrEmptySources
	}

	templates, err := l.resolveTemplates(&dto.Templates, base)
	if err != nil {
		return nil, err
	}

	output, err := l.parseOutput(&dto.Output, base, source.Projects)
	if err != nil {
		return nil, err
	}

	cacheBasePath, err := parseCacheBasePath(&dto.CacheBasePath)
	if err != nil {
		return nil, err
	}

	cfg := &domain.Configuration{
		Source:        source,
		Templates:     templates,
		Output:        output,
		CacheBasePath: cacheBasePath,
		ForceParse:    parseForceParse(&dto.ForceParse),
		Args:          parseArgs(&dto.Args),
	}
	cfg.CacheDir = cacheDir(cfg, base)

	return cfg, nil
}

// resolveTemplates resolves the 'templates' path specification. The key is
// required and must resolve to at least one file.
func (l *Loader) resolveTemplates(node *yaml.Node, base string) (domain.PathSet, error) {
	if !present(node) {
		return domain.PathSet{}, domain.ErrMissingTemplates
	}

	templates, err := l.resolvePathSet(node, base)
	if err != nil {
		return domain.PathSet{}, zerr.Wrap(domain.ErrInvalidTemplates, err.Error())
	}
	if templates.IsEmpty() {
		return domain.PathSet{}, domain.ErrEmptyTemplates
	}
	return templates, nil
}

// parseCacheBasePath reads the optional 'cacheBasePath' string. A present
// but non-string value is an error; absence falls back to the process-wide
// default cache location.
func parseCacheBasePath(node *yaml.Node) (string, error) {
	node = resolvedNode(node)
	if !present(node) || node.Tag == "!!null" {
		return defaultCacheBasePath(), nil
	}

	var path string
	if err := node.Decode(&path); err != nil {
		return "", domain.ErrInvalidCacheBasePath
	}
	return path, nil
}

// parseForceParse reads the optional 'force-parse' list of extensions or
// file names that bypass the parser cache. Any other shape is treated as
// absent; the key tunes downstream parsing and never fails resolution.
func parseForceParse(node *yaml.Node) []string {
	if !present(node) {
		return nil
	}

	var items []string
	if err := resolvedNode(node).Decode(&items); err != nil {
		return nil
	}
	return items
}

// parseArgs reads the optional free-form 'args' mapping, passed through
// opaquely to template execution. Any other shape is treated as absent.
func parseArgs(node *yaml.Node) map[string]any {
	if !present(node) {
		return map[string]any{}
	}

	var args map[string]any
	if err := resolvedNode(node).Decode(&args); err != nil || args == nil {
		return map[string]any{}
	}
	return args
}
