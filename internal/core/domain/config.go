// Package domain contains the resolved configuration model for scribe.
// Every entity here is constructed once during configuration resolution
// and never mutated afterwards.
package domain

// ProjectHandle is an opaque, read-only capability over an opened IDE
// project file. It is used to validate that the project exists and to
// supply linking metadata to the downstream generator.
type ProjectHandle interface {
	// Path returns the path the project was opened from.
	Path() string
	// Name returns the project's display name.
	Name() string
	// SourceRoot returns the directory containing the project file.
	SourceRoot() string
}

// PathSet is a normalized path specification: the raw include/exclude
// inputs plus the resolved, deduplicated, sorted set of file paths.
type PathSet struct {
	Include  []string
	Exclude  []string
	Resolved []string
}

// IsEmpty reports whether the resolved set contains no files.
func (p PathSet) IsEmpty() bool {
	return len(p.Resolved) == 0
}

// TargetDescriptor is a named reference to a build target inside a project.
type TargetDescriptor struct {
	// Name of the target. Never empty.
	Name string
	// Module used for generated code attribution. Defaults to Name.
	Module string
}

// ProjectDescriptor is one resolved project declaration.
type ProjectDescriptor struct {
	// Handle is the opened project capability, owned by this descriptor.
	Handle ProjectHandle
	// RootDirectory is the directory containing the project file.
	RootDirectory string
	// Targets to scan. Never empty.
	Targets []TargetDescriptor
	// ExcludedPaths is the pre-expanded set of files excluded from scanning.
	ExcludedPaths []string
	// Name of the declaration. Empty unless dependencies are used.
	Name string
	// Output is reserved for per-project output overrides. The schema
	// accepts them but they are never applied; the top-level output wins.
	// See DESIGN.md.
	Output *OutputDescriptor
	// Dependencies are back-references into the same resolved collection,
	// ordered as declared. Shared, not owned.
	Dependencies []*ProjectDescriptor
}

// OutputDescriptor is the resolved output destination.
type OutputDescriptor struct {
	Path string
	// IsDirectory reports whether Path refers to a directory. When the
	// path does not exist on disk it is inferred from its shape.
	IsDirectory bool
	// Link wires generated files into a project target. Nil when no link
	// was declared or the declared link could not be resolved.
	Link *LinkDescriptor
}

// LinkDescriptor associates generated output with a target inside a project.
type LinkDescriptor struct {
	// Handle is the linked project. Opened independently, or borrowed
	// from an already-resolved ProjectDescriptor.
	Handle ProjectHandle
	// ProjectPath is the path the linked project was opened from.
	ProjectPath string
	// TargetName is the target generated files are attached to. Never empty.
	TargetName string
	// Group inside the project to place generated files under. Optional.
	Group string
}

// SourceKind discriminates the Source union.
type SourceKind string

const (
	// SourceProjects means sources come from IDE project declarations.
	SourceProjects SourceKind = "projects"
	// SourcePaths means sources are a flat file set.
	SourcePaths SourceKind = "paths"
)

// Source is the top-level choice between a flat file set and a collection
// of project-derived file sets. Exactly one variant is populated.
type Source struct {
	Kind     SourceKind
	Projects []*ProjectDescriptor
	Paths    PathSet
}

// NewProjectsSource wraps resolved project descriptors as a Source.
func NewProjectsSource(projects []*ProjectDescriptor) Source {
	return Source{Kind: SourceProjects, Projects: projects}
}

// NewPathsSource wraps a resolved path set as a Source.
func NewPathsSource(paths PathSet) Source {
	return Source{Kind: SourcePaths, Paths: paths}
}

// IsEmpty reports variant-specific emptiness.
func (s Source) IsEmpty() bool {
	if s.Kind == SourceProjects {
		return len(s.Projects) == 0
	}
	return s.Paths.IsEmpty()
}

// Configuration is the fully resolved description of one generation run.
type Configuration struct {
	// Source selects what to scan.
	Source Source
	// Templates is the resolved template file set. Never empty.
	Templates PathSet
	// Output is the resolved output destination.
	Output OutputDescriptor
	// CacheBasePath is the base directory for the parser cache.
	CacheBasePath string
	// CacheDir is the per-configuration cache directory derived from
	// CacheBasePath and the resolved inputs.
	CacheDir string
	// ForceParse lists file extensions or names that are always reparsed,
	// bypassing the cache.
	ForceParse []string
	// Args is an opaque mapping passed through to template execution.
	Args map[string]any
}
