// Package dispatch routes matched nodes to the capabilities interested in them.
package dispatch

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/mpyw/allocfree/internal/capability"
	"github.com/mpyw/allocfree/internal/category"
	"github.com/mpyw/allocfree/internal/diagnostic"
	"github.com/mpyw/allocfree/internal/index"
	"github.com/mpyw/allocfree/internal/logging"
)

// ErrUnindexedCategory is returned when a node is dispatched whose category
// is not in the index. The host subscribes with exactly the index key set, so
// this indicates a registration bug and invalidates the whole run.
var ErrUnindexedCategory = errors.New("dispatched node category is not indexed")

// Dispatcher gates nodes and fans them out to capabilities.
// It holds no per-node state and is safe for concurrent Handle calls.
type Dispatcher struct {
	index    *index.Index
	policy   Policy
	log      logrus.FieldLogger
	degraded *Degraded
}

// New builds a dispatcher over idx and p.
func New(idx *index.Index, p Policy, log logrus.FieldLogger) *Dispatcher {
	if log == nil {
		log = logging.Discard()
	}

	return &Dispatcher{
		index:    idx,
		policy:   p,
		log:      log,
		degraded: &Degraded{byName: make(map[string]error)},
	}
}

// Degraded returns the record of capability failures seen so far.
func (d *Dispatcher) Degraded() *Degraded {
	return d.degraded
}

// Categories returns the categories d is subscribed to.
func (d *Dispatcher) Categories() []category.Category {
	return d.index.Categories()
}

// Handle gates nctx and, when it proceeds, runs every interested capability.
// Collected diagnostics are also written to nctx.Sink when set.
func (d *Dispatcher) Handle(nctx *capability.NodeContext) ([]diagnostic.Diagnostic, error) {
	decision, err := Decide(d.policy, nctx)
	if err != nil {
		return nil, err
	}
	if decision != Proceed {
		fields := logrus.Fields{
			"file":     nctx.Filename,
			"symbol":   symbolName(nctx.Symbol),
			"decision": decision,
		}
		if e, ok := d.policy.(Explainer); ok && decision == OptedOut {
			if reason := e.OptOutReason(nctx.Symbol); reason != "" {
				fields["reason"] = reason
			}
		}
		d.log.WithFields(fields).Trace("node skipped")
		return nil, nil
	}

	cat := nctx.Category()
	caps, ok := d.index.Lookup(cat)
	if !ok {
		return nil, fmt.Errorf("%w: %s at %s", ErrUnindexedCategory, cat, position(nctx))
	}

	var out []diagnostic.Diagnostic
	for _, c := range caps {
		diags, err := analyze(c, nctx)
		if err != nil {
			d.degraded.record(c.Name(), err)
			d.log.WithFields(logrus.Fields{
				"capability": c.Name(),
				"category":   cat,
				"position":   position(nctx),
			}).WithError(err).Warn("capability failed; continuing without it for this node")
			continue
		}
		out = append(out, diags...)
	}

	if nctx.Sink != nil {
		for _, diag := range out {
			nctx.Sink.Report(diag)
		}
	}

	return out, nil
}

// analyze runs a single capability, turning panics into errors.
func analyze(c capability.Capability, nctx *capability.NodeContext) (diags []diagnostic.Diagnostic, err error) {
	defer func() {
		if r := recover(); r != nil {
			diags = nil
			err = fmt.Errorf("capability %s panicked: %v", c.Name(), r)
		}
	}()

	diags, err = c.Analyze(nctx)
	if err != nil {
		return nil, fmt.Errorf("capability %s: %w", c.Name(), err)
	}

	return diags, nil
}

func position(nctx *capability.NodeContext) string {
	if nctx.Fset == nil || nctx.Node == nil {
		return nctx.Filename
	}

	return nctx.Fset.Position(nctx.Node.Pos()).String()
}

// Degraded records capabilities whose results are partial for the run.
type Degraded struct {
	mu     sync.Mutex
	byName map[string]error
	order  []string
}

func (g *Degraded) record(name string, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.byName[name]; !ok {
		g.order = append(g.order, name)
	}
	g.byName[name] = multierr.Append(g.byName[name], err)
}

// Names returns the degraded capabilities in first-failure order.
func (g *Degraded) Names() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]string(nil), g.order...)
}

// Err returns the combined failures of capability name, or nil.
func (g *Degraded) Err(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.byName[name]
}

// Len returns the number of degraded capabilities.
func (g *Degraded) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.order)
}
