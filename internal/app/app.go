// Package app implements the application layer for scribe.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/scribe/internal/core/domain"
	"go.trai.ch/scribe/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		logger:       log,
	}
}

// Check loads and validates the configuration at configPath and writes a
// human-readable summary of the resolved configuration to out.
func (a *App) Check(_ context.Context, configPath string, out io.Writer) error {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return zerr.Wrap(err, "configuration check failed")
	}

	a.logger.Info("configuration loaded")
	writeSummary(out, cfg)

	return nil
}

// writeSummary renders the resolved configuration. The output is
// deterministic for a given Configuration so it can be asserted in tests.
func writeSummary(w io.Writer, cfg *domain.Configuration) {
	switch cfg.Source.Kind {
	case domain.SourceProjects:
		fmt.Fprintf(w, "source: %d project(s)\n", len(cfg.Source.Projects))
		for _, p := range cfg.Source.Projects {
			fmt.Fprintf(w, "  %s", projectLabel(p))
			if len(p.Dependencies) > 0 {
				fmt.Fprintf(w, " (depends on:")
				for i, dep := range p.Dependencies {
					if i > 0 {
						fmt.Fprint(w, ",")
					}
					fmt.Fprintf(w, " %s", projectLabel(dep))
				}
				fmt.Fprint(w, ")")
			}
			fmt.Fprintln(w)
		}
	case domain.SourcePaths:
		fmt.Fprintf(w, "source: %d file(s)\n", len(cfg.Source.Paths.Resolved))
		for _, path := range cfg.Source.Paths.Resolved {
			fmt.Fprintf(w, "  %s\n", path)
		}
	}

	fmt.Fprintf(w, "templates: %d file(s)\n", len(cfg.Templates.Resolved))

	kind := "file"
	if cfg.Output.IsDirectory {
		kind = "directory"
	}
	fmt.Fprintf(w, "output: %s (%s)\n", cfg.Output.Path, kind)

	if link := cfg.Output.Link; link != nil {
		fmt.Fprintf(w, "link: target %q in %s\n", link.TargetName, link.ProjectPath)
	}

	fmt.Fprintf(w, "cache: %s\n", cfg.CacheDir)
}

// projectLabel prefers the declared name and falls back to the name
// recorded in the project handle.
func projectLabel(p *domain.ProjectDescriptor) string {
	if p.Name != "" {
		return p.Name
	}
	if p.Handle != nil {
		return p.Handle.Name()
	}
	return p.RootDirectory
}
