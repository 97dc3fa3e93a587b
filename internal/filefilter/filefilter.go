// Package filefilter decides which source files are excluded from analysis.
package filefilter

import (
	"fmt"
	"go/ast"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Filter matches file paths against the ignore list.
// Generated files are always ignored.
type Filter struct {
	patterns  []string
	globs     []glob.Glob
	generated map[string]bool
}

// New compiles the ignore patterns. Patterns use glob syntax with '/' as the
// separator, so "**" crosses directories and "*" does not.
func New(patterns []string) (*Filter, error) {
	f := &Filter{generated: make(map[string]bool)}

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("compile ignore pattern %q: %w", p, err)
		}
		f.patterns = append(f.patterns, p)
		f.globs = append(f.globs, g)
	}

	return f, nil
}

// MarkGenerated records the generated files among files.
// filename resolves a file to the path later passed to IsIgnored.
func (f *Filter) MarkGenerated(files []*ast.File, filename func(*ast.File) string) {
	for _, file := range files {
		if ast.IsGenerated(file) {
			f.generated[filename(file)] = true
		}
	}
}

// IsIgnored reports whether path is generated or matches an ignore pattern.
// Patterns are tried against the slash-separated path and its base name.
func (f *Filter) IsIgnored(path string) (bool, error) {
	if f == nil {
		return false, nil
	}
	if f.generated[path] {
		return true, nil
	}

	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)

	for _, g := range f.globs {
		if g.Match(slashed) || g.Match(base) {
			return true, nil
		}
	}

	return false, nil
}

// Patterns returns the compiled patterns.
func (f *Filter) Patterns() []string {
	if f == nil {
		return nil
	}

	return append([]string(nil), f.patterns...)
}
