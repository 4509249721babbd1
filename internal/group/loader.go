package group

import (
	"context"

	"github.com/shellingo/shellingo/internal/parser"
	"github.com/shellingo/shellingo/internal/question"
)

// RegistryLoader parses a group's files, merges questions with the same text
// and binds the result to the group in a registry, so that scores are shared
// process-wide while answers follow the active groups.
type RegistryLoader struct {
	Registry *question.Registry
}

// NewRegistryLoader creates a loader binding into registry.
func NewRegistryLoader(registry *question.Registry) *RegistryLoader {
	return &RegistryLoader{Registry: registry}
}

// Load implements Loader.
func (l *RegistryLoader) Load(ctx context.Context, name string, paths []string) []*question.Question {
	merged := question.Merge(parser.ParseFiles(ctx, paths)...)
	return l.Registry.Bind(name, merged)
}

// Unload implements Loader.
func (l *RegistryLoader) Unload(name string) {
	l.Registry.Release(name)
}
