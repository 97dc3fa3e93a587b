package capabilities

import (
	"github.com/mpyw/allocfree/internal/capabilities/boxing"
	"github.com/mpyw/allocfree/internal/capabilities/closure"
	"github.com/mpyw/allocfree/internal/capabilities/concat"
	"github.com/mpyw/allocfree/internal/capabilities/explicit"
	"github.com/mpyw/allocfree/internal/capabilities/knowncall"
	"github.com/mpyw/allocfree/internal/capability"
	"github.com/mpyw/allocfree/internal/diagnostic"
	"github.com/mpyw/allocfree/internal/funcspec"
)

// Settings selects and configures the built-in capabilities.
type Settings struct {
	// Enabled maps capability names to their switch. Missing names are enabled.
	Enabled map[string]bool

	// AllocatingFuncs extends knowncall.Defaults.
	AllocatingFuncs []funcspec.Spec

	// Severity overrides the default severity per descriptor ID.
	Severity map[string]diagnostic.Severity
}

// Names returns the built-in capability names in registration order.
func Names() []string {
	return []string{
		explicit.Name,
		closure.Name,
		concat.Name,
		boxing.Name,
		knowncall.Name,
	}
}

// Descriptors returns the descriptors of every built-in capability.
func Descriptors() []diagnostic.Descriptor {
	return []diagnostic.Descriptor{
		explicit.Descriptor,
		closure.Descriptor,
		concat.Descriptor,
		boxing.Descriptor,
		knowncall.Descriptor,
	}
}

// Build returns the enabled capabilities in registration order.
func Build(s Settings) []capability.Capability {
	all := []capability.Capability{
		explicit.New(),
		closure.New(),
		concat.New(),
		boxing.New(),
		knowncall.New(s.AllocatingFuncs),
	}

	caps := make([]capability.Capability, 0, len(all))
	for _, c := range all {
		if enabled, ok := s.Enabled[c.Name()]; ok && !enabled {
			continue
		}
		if len(s.Severity) > 0 {
			c = WithSeverity(c, s.Severity)
		}
		caps = append(caps, c)
	}

	return caps
}

// WithSeverity wraps c so that its findings use the overridden severity of
// their descriptor.
func WithSeverity(c capability.Capability, overrides map[string]diagnostic.Severity) capability.Capability {
	return &severityOverride{Capability: c, overrides: overrides}
}

type severityOverride struct {
	capability.Capability
	overrides map[string]diagnostic.Severity
}

func (s *severityOverride) Analyze(nctx *capability.NodeContext) ([]diagnostic.Diagnostic, error) {
	diags, err := s.Capability.Analyze(nctx)
	if err != nil {
		return nil, err
	}

	for i, d := range diags {
		if sev, ok := s.overrides[d.Descriptor.ID]; ok {
			diags[i] = d.WithSeverity(sev)
		}
	}

	return diags, nil
}
