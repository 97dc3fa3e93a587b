// Package checker drives one analysis pass: it collects every subscribed node,
// dispatches the nodes of each file in parallel, and reports the
// deduplicated findings.
package checker

import (
	"context"
	"go/ast"
	"go/types"
	"runtime"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/allocfree/internal/capability"
	"github.com/mpyw/allocfree/internal/diagnostic"
	"github.com/mpyw/allocfree/internal/directives/scope"
	"github.com/mpyw/allocfree/internal/dispatch"
	"github.com/mpyw/allocfree/internal/filefilter"
	"github.com/mpyw/allocfree/internal/index"
	"github.com/mpyw/allocfree/internal/logging"
	"github.com/mpyw/allocfree/internal/policy"
	"github.com/mpyw/allocfree/internal/typeutil"
)

// Options configures a Checker.
type Options struct {
	Capabilities []capability.Capability
	IgnoreFiles  []string
	Log          logrus.FieldLogger
}

// Checker holds the immutable part of a run: the category index and the
// ignore patterns. It is safe to share across passes.
type Checker struct {
	index       *index.Index
	ignoreFiles []string
	log         logrus.FieldLogger
}

// New builds the category index from opts.Capabilities.
func New(opts Options) *Checker {
	log := opts.Log
	if log == nil {
		log = logging.Discard()
	}

	return &Checker{
		index:       index.Build(opts.Capabilities),
		ignoreFiles: opts.IgnoreFiles,
		log:         log,
	}
}

// Result is the outcome of one pass.
type Result struct {
	// Diagnostics are the deduplicated findings in report order, hidden
	// severities included.
	Diagnostics []diagnostic.Diagnostic

	// Degraded records the capabilities that failed during the pass.
	Degraded *dispatch.Degraded
}

// fileJobs are the matched nodes of one file in traversal order.
type fileJobs struct {
	filename string
	nodes    []*capability.NodeContext
}

// Run executes the checker on the given pass. A returned error invalidates
// the whole pass and nothing is reported.
func (c *Checker) Run(pass *analysis.Pass, insp *inspector.Inspector) (*Result, error) {
	files, err := filefilter.New(c.ignoreFiles)
	if err != nil {
		return nil, err
	}
	files.MarkGenerated(pass.Files, func(f *ast.File) string {
		return pass.Fset.Position(f.Pos()).Filename
	})

	scopes := scope.Build(pass.TypesInfo, pass.Files)
	d := dispatch.New(c.index, policy.New(files, scopes), c.log)

	jobs := c.collect(pass, insp)

	buffers, err := c.dispatch(d, jobs)
	if err != nil {
		return nil, err
	}

	var all []diagnostic.Diagnostic
	for _, buf := range buffers {
		all = append(all, buf.Items()...)
	}
	diags := diagnostic.Dedup(all)

	for _, diag := range diags {
		if diag.Severity == diagnostic.SevHidden {
			continue
		}
		pass.Report(analysis.Diagnostic{
			Pos:      diag.Location.Pos,
			End:      diag.Location.End,
			Category: diag.Descriptor.ID,
			Message:  diag.Message,
		})
	}

	if deg := d.Degraded(); deg.Len() > 0 {
		c.log.WithField("capabilities", deg.Names()).Warn("pass finished with degraded capabilities")
	}
	checks, ignores := scopes.Len()
	c.log.WithFields(logrus.Fields{
		"files":           len(jobs),
		"diagnostics":     len(diags),
		"checks":          checks,
		"ignores":         ignores,
		"capabilities":    capabilityNames(c.index.Capabilities()),
		"categories":      d.Categories(),
		"ignore_patterns": files.Patterns(),
	}).Debug("pass finished")

	return &Result{Diagnostics: diags, Degraded: d.Degraded()}, nil
}

func capabilityNames(caps []capability.Capability) []string {
	names := make([]string, len(caps))
	for i, c := range caps {
		names[i] = c.Name()
	}

	return names
}

// collect walks the files once and groups the subscribed nodes per file.
func (c *Checker) collect(pass *analysis.Pass, insp *inspector.Inspector) []*fileJobs {
	jobs := make([]*fileJobs, len(pass.Files))
	byFile := make(map[*ast.File]*fileJobs, len(pass.Files))
	for i, f := range pass.Files {
		jobs[i] = &fileJobs{filename: pass.Fset.Position(f.Pos()).Filename}
		byFile[f] = jobs[i]
	}

	filter := c.index.NodeFilter()
	if len(filter) == 0 {
		return jobs
	}

	insp.WithStack(filter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}

		file, ok := stack[0].(*ast.File)
		if !ok {
			return true
		}
		fj, ok := byFile[file]
		if !ok {
			return true
		}

		sym := typeutil.ContainingSymbol(pass.TypesInfo, stack)

		var declaring *types.TypeName
		if sym != nil {
			declaring = typeutil.DeclaringType(sym)
		}

		fj.nodes = append(fj.nodes, &capability.NodeContext{
			Fset:          pass.Fset,
			Info:          pass.TypesInfo,
			Pkg:           pass.Pkg,
			Node:          n,
			Stack:         slices.Clone(stack),
			File:          file,
			Filename:      fj.filename,
			Symbol:        sym,
			DeclaringType: declaring,
		})

		return true
	})

	return jobs
}

// dispatch handles the files in parallel. Each file writes into its own
// collector; the collectors are returned in file order.
func (c *Checker) dispatch(d *dispatch.Dispatcher, jobs []*fileJobs) ([]*diagnostic.Collector, error) {
	buffers := make([]*diagnostic.Collector, len(jobs))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, fj := range jobs {
		buffers[i] = diagnostic.NewCollector()
		if len(fj.nodes) == 0 {
			continue
		}

		g.Go(func() error {
			for _, nctx := range fj.nodes {
				if err := ctx.Err(); err != nil {
					return err
				}
				nctx.Sink = buffers[i]
				if _, err := d.Handle(nctx); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buffers, nil
}
