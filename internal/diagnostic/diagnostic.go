// Package diagnostic defines the diagnostic model shared by capabilities and
// the dispatcher, plus the sinks that collect and deduplicate findings.
package diagnostic

import (
	"fmt"
	"go/token"
	"strings"
)

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevHidden Severity = iota
	SevInfo
	SevWarning
	SevError
)

var severityNames = map[Severity]string{
	SevHidden:  "hidden",
	SevInfo:    "info",
	SevWarning: "warning",
	SevError:   "error",
}

func (s Severity) String() string {
	if v, ok := severityNames[s]; ok {
		return v
	}

	return fmt.Sprintf("invalid(%d)", s)
}

// ParseSeverity parses a severity name as produced by String.
func ParseSeverity(text string) (Severity, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	for k, v := range severityNames {
		if v == text {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown severity %q", text)
}

// UnmarshalText for setting values with configs.
func (s *Severity) UnmarshalText(raw []byte) error {
	v, err := ParseSeverity(string(raw))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// WarningLevel returns the default warning level for the severity.
// Errors are level 0, warnings level 1, everything else level 4.
func (s Severity) WarningLevel() int {
	switch s {
	case SevError:
		return 0
	case SevWarning:
		return 1
	default:
		return 4
	}
}

// Descriptor identifies a kind of finding a capability can emit.
type Descriptor struct {
	ID              string
	Title           string
	DefaultSeverity Severity
}

// Location is the source range a diagnostic is reported against.
type Location struct {
	Pos token.Pos
	End token.Pos
}

// Diagnostic is a single finding. It is a value type: two diagnostics are the
// same finding when all their fields are equal.
type Diagnostic struct {
	Descriptor   Descriptor
	Message      string
	Location     Location
	Severity     Severity
	WarningLevel int
}

// New builds a diagnostic for the descriptor's default severity.
func New(desc Descriptor, pos, end token.Pos, msg string) Diagnostic {
	return Diagnostic{
		Descriptor:   desc,
		Message:      msg,
		Location:     Location{Pos: pos, End: end},
		Severity:     desc.DefaultSeverity,
		WarningLevel: desc.DefaultSeverity.WarningLevel(),
	}
}

// Newf is New with a formatted message.
func Newf(desc Descriptor, pos, end token.Pos, format string, args ...any) Diagnostic {
	return New(desc, pos, end, fmt.Sprintf(format, args...))
}

// WithSeverity returns a copy of d with the severity and its warning level replaced.
func (d Diagnostic) WithSeverity(sev Severity) Diagnostic {
	d.Severity = sev
	d.WarningLevel = sev.WarningLevel()

	return d
}
