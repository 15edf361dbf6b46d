package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/scribe/internal/core/domain"
)

// defaultCacheBasePath returns the process-wide default cache location.
func defaultCacheBasePath() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "scribe")
	}
	return filepath.Join(os.TempDir(), "scribe")
}

// cacheDir derives the per-configuration cache directory. A stable 64-bit
// digest over the anchored base, the output path and the source roots
// keeps distinct configurations from sharing each other's cache.
func cacheDir(cfg *domain.Configuration, base string) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(base)
	_, _ = hasher.Write([]byte{0}) // separator
	_, _ = hasher.WriteString(cfg.Output.Path)
	_, _ = hasher.Write([]byte{0})

	if cfg.Source.Kind == domain.SourceProjects {
		for _, project := range cfg.Source.Projects {
			_, _ = hasher.WriteString(project.RootDirectory)
			_, _ = hasher.Write([]byte{0})
		}
	} else {
		for _, path := range cfg.Source.Paths.Include {
			_, _ = hasher.WriteString(path)
			_, _ = hasher.Write([]byte{0})
		}
	}

	name := fmt.Sprintf("%s-%016x", filepath.Base(base), hasher.Sum64())
	return filepath.Join(cfg.CacheBasePath, name)
}
