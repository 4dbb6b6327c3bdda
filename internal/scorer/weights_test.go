package scorer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/memolab/memlog-mcp/pkg/types"
)

func f(v float64) *float64 { return &v }

func defaults() types.SearchWeights {
	return types.SearchWeights{
		TagExact:        DefaultTagExact,
		DateMatch:       DefaultDateMatch,
		MonthMatch:      DefaultMonthMatch,
		TagPartial:      DefaultTagPartial,
		ContentMatch:    DefaultContentMatch,
		MultiTokenBonus: DefaultMultiTokenBonus,
		AllTokensBonus:  DefaultAllTokensBonus,
	}
}

func TestResolve_NilOverrides(t *testing.T) {
	assert.Equal(t, defaults(), Resolve(nil))
	assert.Equal(t, defaults(), Resolve(&Overrides{}))
}

func TestResolve_ClampsNotRejects(t *testing.T) {
	tests := []struct {
		name string
		o    Overrides
		want func(w *types.SearchWeights)
	}{
		{"above max", Overrides{TagExact: f(999)}, func(w *types.SearchWeights) { w.TagExact = 20 }},
		{"signal below min", Overrides{DateMatch: f(0)}, func(w *types.SearchWeights) { w.DateMatch = 1 }},
		{"signal negative", Overrides{ContentMatch: f(-5)}, func(w *types.SearchWeights) { w.ContentMatch = 1 }},
		{"bonus zero allowed", Overrides{MultiTokenBonus: f(0)}, func(w *types.SearchWeights) { w.MultiTokenBonus = 0 }},
		{"bonus negative", Overrides{AllTokensBonus: f(-1)}, func(w *types.SearchWeights) { w.AllTokensBonus = 0 }},
		{"in range", Overrides{MonthMatch: f(12)}, func(w *types.SearchWeights) { w.MonthMatch = 12 }},
		{"fraction truncates", Overrides{TagPartial: f(5.9)}, func(w *types.SearchWeights) { w.TagPartial = 5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := defaults()
			tt.want(&want)
			assert.Equal(t, want, Resolve(&tt.o))
		})
	}
}

func TestResolve_NonFiniteFallsBackToDefault(t *testing.T) {
	o := &Overrides{
		TagExact:   f(math.NaN()),
		DateMatch:  f(math.Inf(1)),
		TagPartial: f(math.Inf(-1)),
	}
	assert.Equal(t, defaults(), Resolve(o))
}

func TestMerge(t *testing.T) {
	base := &Overrides{TagExact: f(10), DateMatch: f(5)}
	call := &Overrides{DateMatch: f(8), ContentMatch: f(4)}

	merged := Merge(base, call)
	assert.Equal(t, 10.0, *merged.TagExact)
	assert.Equal(t, 8.0, *merged.DateMatch)
	assert.Equal(t, 4.0, *merged.ContentMatch)
	assert.Nil(t, merged.MonthMatch)

	assert.Same(t, call, Merge(nil, call))
	assert.Same(t, base, Merge(base, nil))
	assert.Nil(t, Merge(nil, nil))
}

func TestClampMaxResults(t *testing.T) {
	assert.Equal(t, DefaultMaxResults, ClampMaxResults(0))
	assert.Equal(t, 10, ClampMaxResults(3))
	assert.Equal(t, 200, ClampMaxResults(5000))
	assert.Equal(t, 75, ClampMaxResults(75))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 10, ClampLimit(0, 10))
	assert.Equal(t, 1, ClampLimit(-3, 10))
	assert.Equal(t, 200, ClampLimit(999, 10))
	assert.Equal(t, 42, ClampLimit(42, 10))
}
