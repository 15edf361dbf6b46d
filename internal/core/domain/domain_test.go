package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/scribe/internal/core/domain"
)

func TestPathSet_IsEmpty(t *testing.T) {
	assert.True(t, domain.PathSet{}.IsEmpty())
	assert.True(t, domain.PathSet{Include: []string{"a"}}.IsEmpty(), "unresolved includes do not count")
	assert.False(t, domain.PathSet{Resolved: []string{"a"}}.IsEmpty())
}

func TestSource_IsEmpty(t *testing.T) {
	assert.True(t, domain.NewProjectsSource(nil).IsEmpty())
	assert.False(t, domain.NewProjectsSource([]*domain.ProjectDescriptor{{}}).IsEmpty())

	assert.True(t, domain.NewPathsSource(domain.PathSet{}).IsEmpty())
	assert.False(t, domain.NewPathsSource(domain.PathSet{Resolved: []string{"a"}}).IsEmpty())
}

func TestErrorTaxonomy_FamilyMatching(t *testing.T) {
	// Every fine-grained sentinel matches its kind through errors.Is.
	tests := []struct {
		err  error
		kind error
	}{
		{domain.ErrMissingSourceKey, domain.ErrInvalidSources},
		{domain.ErrEmptySources, domain.ErrInvalidSources},
		{domain.ErrMissingProjectFile, domain.ErrInvalidSources},
		{domain.ErrMissingTarget, domain.ErrInvalidSources},
		{domain.ErrMissingTargetName, domain.ErrInvalidSources},
		{domain.ErrMissingProjectName, domain.ErrInvalidSources},
		{domain.ErrDuplicateProjectName, domain.ErrInvalidSources},
		{domain.ErrCircularDependency, domain.ErrInvalidSources},
		{domain.ErrMissingTemplates, domain.ErrInvalidTemplates},
		{domain.ErrEmptyTemplates, domain.ErrInvalidTemplates},
		{domain.ErrMissingOutput, domain.ErrInvalidOutput},
		{domain.ErrMissingOutputPath, domain.ErrInvalidOutput},
		{domain.ErrMissingLinkTarget, domain.ErrInvalidOutput},
		{domain.ErrEmptyPathList, domain.ErrInvalidPaths},
		{domain.ErrMissingInclude, domain.ErrInvalidPaths},
		{domain.ErrUnrecognizedPathSpec, domain.ErrInvalidPaths},
	}

	for _, tt := range tests {
		assert.True(t, errors.Is(tt.err, tt.kind), "%v should match %v", tt.err, tt.kind)
	}

	// Kinds stay distinct from each other.
	assert.False(t, errors.Is(domain.ErrMissingTemplates, domain.ErrInvalidSources))
	assert.False(t, errors.Is(domain.ErrMissingOutput, domain.ErrInvalidTemplates))
}
