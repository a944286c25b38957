package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWHIWeights verifies the composite weights sum to one and cover
// exactly the weighted domain set.
func TestWHIWeights(t *testing.T) {
	weights := WHIWeights()

	var sum float64
	for _, w := range weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 0.0001)

	assert.InDelta(t, 0.22, weights[DomainMental], 0.0001)
	assert.InDelta(t, 0.18, weights[DomainMSK], 0.0001)
	assert.NotContains(t, weights, DomainProductivity)
}

// TestRawMax checks per-domain normalization denominators.
func TestRawMax(t *testing.T) {
	tests := []struct {
		domain   Domain
		expected float64
	}{
		{domain: DomainWorkspace, expected: 100},
		{domain: DomainEye, expected: 110},
		{domain: DomainHydration, expected: 100},
		{domain: DomainMSK, expected: 120},
		{domain: DomainBaseline, expected: 110},
		{domain: DomainLongitudinal, expected: 140},
		{domain: DomainMental, expected: 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.domain), func(t *testing.T) {
			assert.InDelta(t, tt.expected, RawMax(tt.domain), 0.0001)
		})
	}
}

// TestDomainStrategy checks strategy assignment per domain.
func TestDomainStrategy(t *testing.T) {
	assert.Equal(t, SlowStrategy, DomainStrategy(DomainWorkspace))
	assert.Equal(t, SnapshotStrategy, DomainStrategy(DomainBaseline))
	assert.Equal(t, TrendStrategy, DomainStrategy(DomainLongitudinal))
	assert.Equal(t, RecencyStrategy, DomainStrategy(DomainMSK))
	assert.Equal(t, RecencyStrategy, DomainStrategy(DomainMental))
}

// TestBuildDomainReference checks the reference render model.
func TestBuildDomainReference(t *testing.T) {
	ref := BuildDomainReference()
	assert.Len(t, ref.Domains, len(AllDomains))

	byDomain := make(map[Domain]DomainInfo, len(ref.Domains))
	for _, info := range ref.Domains {
		byDomain[info.Domain] = info
	}

	assert.True(t, byDomain[DomainMSK].Scored)
	assert.InDelta(t, 120, byDomain[DomainMSK].RawMax, 0.0001)
	assert.False(t, byDomain[DomainSleep].Scored)
	assert.NotEmpty(t, ref.Pressure)
}
