// Package scope handles //allocfree:check and //allocfree:ignore directives.
package scope

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"
)

const prefix = "allocfree:"

// Kind is the kind of a scope directive.
type Kind string

// Valid directive kinds.
const (
	Check  Kind = "check"
	Ignore Kind = "ignore"
)

// Directive is a parsed scope directive.
type Directive struct {
	Kind   Kind
	Pos    token.Pos
	Reason string
}

// Map records which declarations carry scope directives.
// It is built once per pass and read-only afterwards.
type Map struct {
	optIn  map[types.Object]Directive
	optOut map[types.Object]Directive
}

// Build scans the doc comments of every top-level declaration in files.
func Build(info *types.Info, files []*ast.File) *Map {
	m := &Map{
		optIn:  make(map[types.Object]Directive),
		optOut: make(map[types.Object]Directive),
	}

	for _, file := range files {
		m.buildFile(info, file)
	}

	return m
}

func (m *Map) buildFile(info *types.Info, file *ast.File) {
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			m.record(info.Defs[decl.Name], directivesOf(decl.Doc))

		case *ast.GenDecl:
			shared := directivesOf(decl.Doc)
			for _, spec := range decl.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					own := directivesOf(spec.Doc)
					m.record(info.Defs[spec.Name], append(own, shared...))
				case *ast.ValueSpec:
					own := directivesOf(spec.Doc)
					for _, name := range spec.Names {
						m.record(info.Defs[name], append(own, shared...))
					}
				}
			}
		}
	}
}

func (m *Map) record(obj types.Object, ds []Directive) {
	if obj == nil {
		return
	}

	for _, d := range ds {
		switch d.Kind {
		case Check:
			if _, ok := m.optIn[obj]; !ok {
				m.optIn[obj] = d
			}
		case Ignore:
			// Types are never consulted for opt-out.
			if _, isType := obj.(*types.TypeName); isType {
				continue
			}
			if _, ok := m.optOut[obj]; !ok {
				m.optOut[obj] = d
			}
		}
	}
}

// HasCheck reports whether obj itself carries //allocfree:check.
func (m *Map) HasCheck(obj types.Object) bool {
	if m == nil || obj == nil {
		return false
	}
	_, ok := m.optIn[obj]

	return ok
}

// HasIgnore reports whether obj itself carries //allocfree:ignore.
func (m *Map) HasIgnore(obj types.Object) bool {
	if m == nil || obj == nil {
		return false
	}
	_, ok := m.optOut[obj]

	return ok
}

// Lookup returns the directive of the given kind on obj.
func (m *Map) Lookup(obj types.Object, kind Kind) (Directive, bool) {
	if m == nil || obj == nil {
		return Directive{}, false
	}

	var d Directive
	var ok bool
	switch kind {
	case Check:
		d, ok = m.optIn[obj]
	case Ignore:
		d, ok = m.optOut[obj]
	}

	return d, ok
}

// Len returns the number of opted-in and opted-out declarations.
func (m *Map) Len() (checks, ignores int) {
	if m == nil {
		return 0, 0
	}

	return len(m.optIn), len(m.optOut)
}

func directivesOf(cg *ast.CommentGroup) []Directive {
	if cg == nil {
		return nil
	}

	var ds []Directive
	for _, c := range cg.List {
		if kind, reason, ok := parseDirective(c.Text); ok {
			ds = append(ds, Directive{Kind: kind, Pos: c.Pos(), Reason: reason})
		}
	}

	return ds
}

// parseDirective parses a scope directive comment.
// Returns false if the comment is not a scope directive.
//
// Supported formats:
//   - //allocfree:check
//   - //allocfree:ignore
//   - //allocfree:ignore - reason
//   - //allocfree:ignore // reason
func parseDirective(text string) (Kind, string, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	rest, ok := strings.CutPrefix(text, prefix)
	if !ok {
		return "", "", false
	}

	name, reason, _ := strings.Cut(rest, " ")

	var kind Kind
	switch Kind(name) {
	case Check, Ignore:
		kind = Kind(name)
	default:
		return "", "", false
	}

	reason = strings.TrimSpace(reason)
	reason = strings.TrimPrefix(reason, "//")
	reason = strings.TrimPrefix(reason, "-")

	return kind, strings.TrimSpace(reason), true
}
