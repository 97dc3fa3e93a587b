package dispatch

import (
	"fmt"
	"go/types"

	"github.com/mpyw/allocfree/internal/capability"
)

// Policy is the set of gating predicates. Errors are never defaulted away:
// they abort the dispatch that hit them.
type Policy interface {
	IsIgnoredFile(path string) (bool, error)
	IsOptedOut(sym types.Object) (bool, error)
	IsOptedIn(sym types.Object) (bool, error)
}

// Explainer is implemented by policies that keep the reason given for an
// opt-out. The dispatcher only uses it for logging.
type Explainer interface {
	OptOutReason(sym types.Object) string
}

// Decision is the outcome of gating one node.
type Decision int

const (
	Proceed Decision = iota
	Ignored
	OptedOut
	NotOptedIn
)

var decisionNames = map[Decision]string{
	Proceed:    "proceed",
	Ignored:    "ignored",
	OptedOut:   "opted-out",
	NotOptedIn: "not-opted-in",
}

func (d Decision) String() string {
	if v, ok := decisionNames[d]; ok {
		return v
	}

	return fmt.Sprintf("invalid(%d)", int(d))
}

// Decide evaluates the policy for nctx, short-circuiting in the order
// ignored file, opt-out, opt-in.
func Decide(p Policy, nctx *capability.NodeContext) (Decision, error) {
	ignored, err := p.IsIgnoredFile(nctx.Filename)
	if err != nil {
		return Ignored, fmt.Errorf("check ignored file %s: %w", nctx.Filename, err)
	}
	if ignored {
		return Ignored, nil
	}

	out, err := p.IsOptedOut(nctx.Symbol)
	if err != nil {
		return OptedOut, fmt.Errorf("check opt-out of %s: %w", symbolName(nctx.Symbol), err)
	}
	if out {
		return OptedOut, nil
	}

	in, err := p.IsOptedIn(nctx.Symbol)
	if err != nil {
		return NotOptedIn, fmt.Errorf("check opt-in of %s: %w", symbolName(nctx.Symbol), err)
	}
	if !in {
		return NotOptedIn, nil
	}

	return Proceed, nil
}

func symbolName(obj types.Object) string {
	if obj == nil {
		return "<none>"
	}

	return obj.Name()
}
