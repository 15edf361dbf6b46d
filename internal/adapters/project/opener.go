// Package project implements the read-only project-handle opener.
package project

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/scribe/internal/core/domain"
	"go.trai.ch/scribe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectOpener = (*Opener)(nil)

// Opener opens IDE project files read-only. A project may be a bundle
// directory (the manifest lives inside) or a plain file. The handle only
// proves existence and readability and carries the metadata the
// downstream generator needs for target linking.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open validates that the project at path exists and is readable and
// returns an opaque handle over it.
func (o *Opener) Open(path string) (domain.ProjectHandle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, openError(err, path)
	}

	if info.IsDir() {
		// Bundle form: the directory must at least be listable.
		if _, err := os.ReadDir(path); err != nil {
			return nil, openError(err, path)
		}
	} else {
		f, err := os.Open(path) //nolint:gosec // Path comes from the user's own configuration
		if err != nil {
			return nil, openError(err, path)
		}
		_ = f.Close()
	}

	base := filepath.Base(path)
	return &handle{
		path: path,
		name: strings.TrimSuffix(base, filepath.Ext(base)),
		root: filepath.Dir(path),
	}, nil
}

func openError(err error, path string) error {
	err = zerr.Wrap(err, domain.ErrProjectOpenFailed.Error())
	return zerr.With(err, "path", path)
}

// handle is the opaque capability over an opened project.
type handle struct {
	path string
	name string
	root string
}

func (h *handle) Path() string       { return h.path }
func (h *handle) Name() string       { return h.name }
func (h *handle) SourceRoot() string { return h.root }
