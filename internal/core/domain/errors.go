package domain

import "go.trai.ch/zerr"

// The configuration error taxonomy is closed: every resolution failure is
// one of the kinds below. Finer-grained sentinels wrap their kind so that
// callers can match either the precise failure or the whole family with
// errors.Is.
var (
	// ErrInvalidFormat is returned when the configuration document is not a mapping.
	ErrInvalidFormat = zerr.New("invalid configuration, expected a mapping at the top level")

	// ErrInvalidSources is returned when the 'sources' or 'project' section is missing or malformed.
	ErrInvalidSources = zerr.New("invalid sources")

	// ErrInvalidTemplates is returned when the 'templates' section is missing or resolves empty.
	ErrInvalidTemplates = zerr.New("invalid templates")

	// ErrInvalidOutput is returned when the 'output' section is missing or malformed.
	ErrInvalidOutput = zerr.New("invalid output")

	// ErrInvalidCacheBasePath is returned when 'cacheBasePath' is present but not a string.
	ErrInvalidCacheBasePath = zerr.New("invalid cacheBasePath, expected a string")

	// ErrInvalidPaths is returned when a path specification is malformed or empty.
	ErrInvalidPaths = zerr.New("invalid paths")
)

// Sources failures.
var (
	// ErrMissingSourceKey is returned when the document declares neither 'sources' nor 'project'.
	ErrMissingSourceKey = zerr.Wrap(ErrInvalidSources, "missing 'sources' or 'project' key")

	// ErrEmptySources is returned when the configured source resolves to nothing.
	ErrEmptySources = zerr.Wrap(ErrInvalidSources, "sources resolved to an empty set")

	// ErrMissingProjectFile is returned when a project declaration has no 'file' key.
	ErrMissingProjectFile = zerr.Wrap(ErrInvalidSources, "project declaration requires a 'file' key")

	// ErrMissingTarget is returned when a project declaration has no usable 'target'.
	ErrMissingTarget = zerr.Wrap(ErrInvalidSources, "project declaration requires at least one target")

	// ErrMissingTargetName is returned when a target declaration has no 'name'.
	ErrMissingTargetName = zerr.Wrap(ErrInvalidSources, "target declaration requires a 'name' key")

	// ErrMissingProjectName is returned when project dependencies are used without naming every project.
	ErrMissingProjectName = zerr.Wrap(ErrInvalidSources, "projects with dependencies must set 'name'")

	// ErrDuplicateProjectName is returned when two project declarations share a name.
	ErrDuplicateProjectName = zerr.Wrap(ErrInvalidSources, "duplicate project name")

	// ErrCircularDependency is returned when the project dependency graph contains a cycle.
	ErrCircularDependency = zerr.Wrap(ErrInvalidSources, "circular project dependency")
)

// Templates failures.
var (
	// ErrMissingTemplates is returned when the 'templates' key is absent.
	ErrMissingTemplates = zerr.Wrap(ErrInvalidTemplates, "missing 'templates' key")

	// ErrEmptyTemplates is returned when the templates specification resolves to no files.
	ErrEmptyTemplates = zerr.Wrap(ErrInvalidTemplates, "templates resolved to an empty set")
)

// Output failures.
var (
	// ErrMissingOutput is returned when the 'output' key is absent or not a string or mapping.
	ErrMissingOutput = zerr.Wrap(ErrInvalidOutput, "missing 'output' key")

	// ErrMissingOutputPath is returned when the output declaration carries
	// no destination path, as a mapping without 'path' or an empty scalar.
	ErrMissingOutputPath = zerr.Wrap(ErrInvalidOutput, "output declaration requires a 'path' key")

	// ErrMissingLinkTarget is returned when an output link has no 'target' key.
	ErrMissingLinkTarget = zerr.Wrap(ErrInvalidOutput, "output link requires a 'target' key")
)

// Path specification failures.
var (
	// ErrEmptyPathList is returned when a flat path list is present but empty.
	ErrEmptyPathList = zerr.Wrap(ErrInvalidPaths, "path list must not be empty")

	// ErrMissingInclude is returned when an include/exclude mapping has no non-empty 'include'.
	ErrMissingInclude = zerr.Wrap(ErrInvalidPaths, "path specification requires a non-empty 'include' key")

	// ErrUnrecognizedPathSpec is returned when a path specification is neither a list nor a mapping.
	ErrUnrecognizedPathSpec = zerr.Wrap(ErrInvalidPaths, "path specification must be a list of paths or an include/exclude mapping")
)

// IO and decoding failures.
var (
	// ErrConfigReadFailed is returned when the configuration document cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read configuration file")

	// ErrConfigParseFailed is returned when the configuration document cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse configuration file")

	// ErrProjectOpenFailed is returned when a declared project file cannot be opened.
	ErrProjectOpenFailed = zerr.New("failed to open project file")
)
