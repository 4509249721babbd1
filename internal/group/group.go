// Package group bundles .sll files sharing a base name into named groups and
// tracks which groups are active.
package group

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shellingo/shellingo/internal/question"
)

// Extension marks the files that hold question definitions.
const Extension = ".sll"

// Group is every source file sharing one base name, wherever it lives under
// the scanned roots. Questions is populated only while the group is active.
type Group struct {
	Name      string
	Paths     []string
	Questions []*question.Question
	Active    bool
}

// Loader turns a group's source files into questions. Unload is called when
// the group is deactivated so the loader can forget what name contributed.
type Loader interface {
	Load(ctx context.Context, name string, paths []string) []*question.Question
	Unload(name string)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, paths []string) []*question.Question

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, _ string, paths []string) []*question.Question {
	return f(ctx, paths)
}

// Unload does nothing.
func (f LoaderFunc) Unload(string) {}

// KeyFor returns the group name for path: its file name without Extension.
// The directory plays no part. ok is false for files without the extension.
func KeyFor(path string) (name string, ok bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, Extension) {
		return "", false
	}
	name = strings.TrimSuffix(base, Extension)
	if name == "" {
		return "", false
	}
	return name, true
}

// Catalog holds the groups discovered at startup, addressable both by name
// and by position in sorted name order.
type Catalog struct {
	groups map[string]*Group
	names  []string
}

// Discover folds files into groups. Files without Extension are ignored;
// paths are appended to their group in the order given.
func Discover(files []string) *Catalog {
	c := &Catalog{groups: make(map[string]*Group)}
	for _, path := range files {
		name, ok := KeyFor(path)
		if !ok {
			continue
		}
		g, exists := c.groups[name]
		if !exists {
			g = &Group{Name: name}
			c.groups[name] = g
			c.names = append(c.names, name)
		}
		g.Paths = append(g.Paths, path)
	}
	sort.Strings(c.names)
	return c
}

// Len returns the number of groups.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Names returns group names in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// NameAt resolves a position in sorted order to a group name.
func (c *Catalog) NameAt(index int) (string, bool) {
	if index < 0 || index >= len(c.names) {
		return "", false
	}
	return c.names[index], true
}

// IndexOf is the inverse of NameAt.
func (c *Catalog) IndexOf(name string) (int, bool) {
	i := sort.SearchStrings(c.names, name)
	if i < len(c.names) && c.names[i] == name {
		return i, true
	}
	return -1, false
}

// Get returns the group called name.
func (c *Catalog) Get(name string) (*Group, bool) {
	g, ok := c.groups[name]
	return g, ok
}

// Groups returns all groups in sorted name order.
func (c *Catalog) Groups() []*Group {
	out := make([]*Group, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.groups[name])
	}
	return out
}

// Activate marks the group active and (re)loads its questions, replacing any
// previously loaded list. It reports false for unknown names.
func (c *Catalog) Activate(ctx context.Context, name string, loader Loader) bool {
	g, ok := c.groups[name]
	if !ok {
		return false
	}
	g.Questions = loader.Load(ctx, name, g.Paths)
	g.Active = true
	return true
}

// Deactivate marks the group inactive and drops its questions.
func (c *Catalog) Deactivate(name string, loader Loader) bool {
	g, ok := c.groups[name]
	if !ok {
		return false
	}
	loader.Unload(name)
	g.Questions = nil
	g.Active = false
	return true
}

// Toggle flips the group at index. Stale indices are a no-op returning false.
func (c *Catalog) Toggle(ctx context.Context, index int, loader Loader) bool {
	name, ok := c.NameAt(index)
	if !ok {
		return false
	}
	if c.groups[name].Active {
		return c.Deactivate(name, loader)
	}
	return c.Activate(ctx, name, loader)
}

// ActiveQuestions returns the questions of every active group in sorted group
// order. A question shared by several groups appears once.
func (c *Catalog) ActiveQuestions() []*question.Question {
	seen := make(map[*question.Question]struct{})
	var out []*question.Question
	for _, name := range c.names {
		g := c.groups[name]
		if !g.Active {
			continue
		}
		for _, q := range g.Questions {
			if _, dup := seen[q]; dup {
				continue
			}
			seen[q] = struct{}{}
			out = append(out, q)
		}
	}
	return out
}
