package checker_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/analysistest"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/mpyw/allocfree/internal/capabilities/explicit"
	"github.com/mpyw/allocfree/internal/capability"
	"github.com/mpyw/allocfree/internal/category"
	"github.com/mpyw/allocfree/internal/checker"
	"github.com/mpyw/allocfree/internal/diagnostic"
)

func newAnalyzer(caps ...capability.Capability) *analysis.Analyzer {
	return newAnalyzerWith(checker.Options{Capabilities: caps})
}

func newAnalyzerWith(opts checker.Options) *analysis.Analyzer {
	return &analysis.Analyzer{
		Name:       "checkertest",
		Doc:        "runs the checker with a fixed capability set",
		Requires:   []*analysis.Analyzer{inspect.Analyzer},
		ResultType: reflect.TypeOf((*checker.Result)(nil)),
		Run: func(pass *analysis.Pass) (any, error) {
			insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
			return checker.New(opts).Run(pass, insp)
		},
	}
}

func result(t *testing.T, results []*analysistest.Result) *checker.Result {
	t.Helper()

	require.Len(t, results, 1)
	res, ok := results[0].Result.(*checker.Result)
	require.True(t, ok)

	return res
}

// broken fails on every composite literal.
type broken struct {
	name   string
	panics bool
}

func (b broken) Name() string                       { return b.name }
func (broken) Interests() []category.Category       { return []category.Category{category.CompositeLit} }
func (broken) Descriptors() []diagnostic.Descriptor { return nil }

func (b broken) Analyze(*capability.NodeContext) ([]diagnostic.Diagnostic, error) {
	if b.panics {
		panic("index out of range")
	}
	return nil, errors.New("cannot analyze")
}

func TestRunIsolatesBrokenCapabilities(t *testing.T) {
	testdata := analysistest.TestData()

	a := newAnalyzer(
		broken{name: "erroring"},
		explicit.New(),
		broken{name: "panicking", panics: true},
	)
	res := result(t, analysistest.Run(t, testdata, a, "degraded"))

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, []string{"erroring", "panicking"}, res.Degraded.Names())
	assert.ErrorContains(t, res.Degraded.Err("erroring"), "cannot analyze")
	assert.ErrorContains(t, res.Degraded.Err("panicking"), "index out of range")
}

func TestRunKeepsFileOrder(t *testing.T) {
	testdata := analysistest.TestData()

	results := analysistest.Run(t, testdata, newAnalyzer(explicit.New()), "ordering")
	res := result(t, results)
	fset := results[0].Pass.Fset

	require.Len(t, res.Diagnostics, 3)
	for i := 1; i < len(res.Diagnostics); i++ {
		prev := fset.Position(res.Diagnostics[i-1].Location.Pos)
		cur := fset.Position(res.Diagnostics[i].Location.Pos)
		if prev.Filename == cur.Filename {
			assert.Less(t, prev.Offset, cur.Offset)
		} else {
			assert.Less(t, prev.Filename, cur.Filename)
		}
	}
}

// alias reports exactly what explicit reports under another name.
type alias struct {
	*explicit.Capability
}

func (alias) Name() string { return "explicit-alias" }

func TestRunDeduplicatesAcrossCapabilities(t *testing.T) {
	testdata := analysistest.TestData()

	a := newAnalyzer(explicit.New(), alias{explicit.New()})
	res := result(t, analysistest.Run(t, testdata, a, "ordering"))

	assert.Len(t, res.Diagnostics, 3)
	assert.Zero(t, res.Degraded.Len())
}

func TestRunLogsPassSummary(t *testing.T) {
	testdata := analysistest.TestData()

	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	a := newAnalyzerWith(checker.Options{
		Capabilities: []capability.Capability{explicit.New()},
		IgnoreFiles:  []string{"*_legacy.go", " "},
		Log:          log,
	})
	analysistest.Run(t, testdata, a, "ordering")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "pass finished", entry.Message)
	assert.Equal(t, []string{"explicit"}, entry.Data["capabilities"])
	assert.Equal(t, []category.Category{category.CompositeLit, category.Call}, entry.Data["categories"])
	assert.Equal(t, []string{"*_legacy.go"}, entry.Data["ignore_patterns"])
	assert.Equal(t, 2, entry.Data["files"])
}
