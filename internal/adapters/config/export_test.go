package config

// Exported internals for white-box tests.
var DetectCycles = detectCycles

// IsDirectoryPath exposes directory inference for white-box tests.
func (l *Loader) IsDirectoryPath(path, raw string) bool {
	return l.isDirectoryPath(path, raw)
}
