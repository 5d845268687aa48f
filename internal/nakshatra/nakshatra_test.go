package nakshatra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vedic-chart/internal/model"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		lon   float64
		index int
		name  string
		lord  model.Body
		pada  int
	}{
		{0, 0, "Ashwini", model.Ketu, 1},
		{3.333, 0, "Ashwini", model.Ketu, 1},
		{3.334, 0, "Ashwini", model.Ketu, 2},
		{13.3333, 0, "Ashwini", model.Ketu, 4},
		{13.3334, 1, "Bharani", model.Venus, 1},
		{198.90919, 14, "Swati", model.Rahu, 4},
		{76.338156, 5, "Ardra", model.Rahu, 3},
		{359.9999, 26, "Revati", model.Mercury, 4},
		{360, 0, "Ashwini", model.Ketu, 1},
		{-1, 26, "Revati", model.Mercury, 4},
	}
	for _, tc := range cases {
		got := Resolve(model.Angle(tc.lon))
		assert.Equal(t, model.Nakshatra{Index: tc.index, Name: tc.name, Lord: tc.lord, Pada: tc.pada}, got, "lon %v", tc.lon)
	}
}

func TestLordsCycle(t *testing.T) {
	for i := 0; i < Count; i++ {
		assert.Equal(t, Lords[i%9], Lords[i], "index %d", i)
	}
	assert.Equal(t, model.Ketu, Lords[0])
	assert.Equal(t, model.Mercury, Lords[8])
}

func TestResolveIndexMatchesFraction(t *testing.T) {
	for l := 0.0; l < 360; l += 0.173 {
		n := Resolve(model.Angle(l))
		f := FractionElapsed(model.Angle(l))
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
		assert.InDelta(t, l, (float64(n.Index)+f)*Span, 1e-9, "lon %v", l)
		assert.GreaterOrEqual(t, n.Pada, 1)
		assert.LessOrEqual(t, n.Pada, 4)
	}
}

func TestBoundaries(t *testing.T) {
	for k := 1; k < Count; k++ {
		b := float64(k) * Span
		n := Resolve(model.Angle(b))
		f := FractionElapsed(model.Angle(b))
		// Index and fraction come from one division, so the pair stays consistent
		// whichever side of the boundary floating point lands on.
		if n.Index == k {
			assert.Less(t, f, 1e-9, "boundary %d", k)
		} else {
			assert.Equal(t, k-1, n.Index)
			assert.Greater(t, f, 1-1e-9, "boundary %d", k)
		}
	}
}

func TestFractionElapsed(t *testing.T) {
	assert.Equal(t, 0.0, FractionElapsed(0))
	assert.InDelta(t, 0.5, FractionElapsed(model.Angle(Span/2)), 1e-12)
	assert.InDelta(t, 0.9181892737386818, FractionElapsed(198.90919031651578), 1e-9)
}
