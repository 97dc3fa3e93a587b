package diagnostic

import (
	"go/token"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	descA = Descriptor{ID: "AF900", Title: "test A", DefaultSeverity: SevWarning}
	descB = Descriptor{ID: "AF901", Title: "test B", DefaultSeverity: SevError}
)

func TestSeverity(t *testing.T) {
	for _, sev := range []Severity{SevHidden, SevInfo, SevWarning, SevError} {
		got, err := ParseSeverity(sev.String())
		require.NoError(t, err)
		assert.Equal(t, sev, got)
	}

	_, err := ParseSeverity("fatal")
	require.Error(t, err)

	var s Severity
	require.NoError(t, s.UnmarshalText([]byte(" Error ")))
	assert.Equal(t, SevError, s)

	assert.Equal(t, "invalid(9)", Severity(9).String())
}

func TestWarningLevel(t *testing.T) {
	assert.Equal(t, 0, SevError.WarningLevel())
	assert.Equal(t, 1, SevWarning.WarningLevel())
	assert.Equal(t, 4, SevInfo.WarningLevel())
	assert.Equal(t, 4, SevHidden.WarningLevel())
}

func TestNewUsesDefaultSeverity(t *testing.T) {
	d := Newf(descB, 10, 20, "found %d", 3)

	assert.Equal(t, "found 3", d.Message)
	assert.Equal(t, SevError, d.Severity)
	assert.Equal(t, 0, d.WarningLevel)
	assert.Equal(t, Location{Pos: 10, End: 20}, d.Location)

	w := d.WithSeverity(SevInfo)
	assert.Equal(t, SevInfo, w.Severity)
	assert.Equal(t, 4, w.WarningLevel)
	assert.Equal(t, SevError, d.Severity, "original must not change")
}

func TestDedup(t *testing.T) {
	d1 := New(descA, 10, 20, "x")
	d2 := New(descA, 30, 40, "x")
	d3 := New(descB, 10, 20, "x")

	t.Run("collapses structural duplicates keeping first-seen order", func(t *testing.T) {
		got := Dedup([]Diagnostic{d2, d1, d2, d3, d1})
		assert.Equal(t, []Diagnostic{d2, d1, d3}, got)
	})

	t.Run("different message is not a duplicate", func(t *testing.T) {
		other := New(descA, 10, 20, "y")
		assert.Len(t, Dedup([]Diagnostic{d1, other}), 2)
	})

	t.Run("different severity is not a duplicate", func(t *testing.T) {
		assert.Len(t, Dedup([]Diagnostic{d1, d1.WithSeverity(SevError)}), 2)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Dedup([]Diagnostic{d1, d1, d2})
		assert.Equal(t, once, Dedup(once))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Dedup(nil))
	})
}

func TestCollectorConcurrentWriters(t *testing.T) {
	c := NewCollector()

	const writers, perWriter = 16, 200

	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWriter {
				c.Report(New(descA, token.Pos(w*perWriter+i+1), 0, "x"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, c.Len())
	assert.Len(t, Dedup(c.Items()), writers*perWriter)
}
