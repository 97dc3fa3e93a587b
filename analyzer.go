// Package allocfree provides a go/analysis based analyzer that reports heap
// allocations inside declarations opted in with //allocfree:check.
package allocfree

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"reflect"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/allocfree/internal/capabilities"
	"github.com/mpyw/allocfree/internal/checker"
	"github.com/mpyw/allocfree/internal/config"
	"github.com/mpyw/allocfree/internal/logging"
)

// Result is the analyzer result: the deduplicated findings of the package
// and the capabilities that failed while producing them.
type Result = checker.Result

var (
	// Analyzer is the main analyzer for allocfree.
	Analyzer = NewAnalyzer()

	// ErrNoInspector is returned when the pass lacks the inspect result.
	ErrNoInspector = errors.New("inspector analyzer result not found")
)

// NewAnalyzer returns an allocfree analyzer with its own flag set.
func NewAnalyzer() *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name:       "allocfree",
		Doc:        doc(),
		Requires:   []*analysis.Analyzer{inspect.Analyzer},
		Run:        run,
		ResultType: reflect.TypeOf((*Result)(nil)),
	}
	registerFlags(&a.Flags)

	return a
}

func registerFlags(fs *flag.FlagSet) {
	fs.String(config.FlagConfig, "",
		"path to a YAML config file; flags set on the command line take precedence")
	fs.String(config.FlagIgnoreFiles, "",
		"comma-separated glob patterns of files to skip (e.g., *_gen.go,**/internal/legacy/**)")
	fs.String(config.FlagAllocatingFuncs, "",
		"comma-separated list of additional allocating functions (e.g., pkg.Func or pkg.Type.Method)")
	fs.String(config.FlagLogLevel, "warn",
		"log level for analyzer diagnostics on stderr (trace, debug, info, warn, error)")
	fs.String(config.FlagLogFormat, "text",
		"log format (text or json)")

	// Capability flags (default: all enabled)
	for _, name := range capabilities.Names() {
		fs.Bool(name, true, "enable "+name+" capability")
	}
}

func doc() string {
	var b strings.Builder

	b.WriteString("reports heap allocations in code opted in with //allocfree:check\n\n")
	b.WriteString("A function, method, package-level variable or type annotated with\n")
	b.WriteString("//allocfree:check is checked; methods inherit the annotation of their\n")
	b.WriteString("receiver type. //allocfree:ignore on a declaration opts it out.\n\n")
	b.WriteString("Diagnostics:\n")
	for _, d := range capabilities.Descriptors() {
		fmt.Fprintf(&b, "  %s  %s\n", d.ID, d.Title)
	}

	return b.String()
}

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	cfg, err := loadConfig(&pass.Analyzer.Flags)
	if err != nil {
		return nil, err
	}

	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		return nil, err
	}

	c := checker.New(checker.Options{
		Capabilities: capabilities.Build(settings),
		IgnoreFiles:  cfg.IgnoreFiles,
		Log:          log.WithField("package", pass.Pkg.Path()),
	})

	return c.Run(pass, insp)
}

// loadConfig reads the -config file and overlays the flags set explicitly.
func loadConfig(fs *flag.FlagSet) (config.Config, error) {
	var path string
	if f := fs.Lookup(config.FlagConfig); f != nil {
		path = f.Value.String()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	if err := cfg.ApplyFlags(fs); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
