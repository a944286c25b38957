package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/workwellhq/workwell/schema"
)

// TestComputeWHI tests the composite index over local score maps.
func TestComputeWHI(t *testing.T) {
	tests := []struct {
		name     string
		local    map[schema.Domain]float64
		expected float64
	}{
		{
			name:     "no local scores",
			local:    map[schema.Domain]float64{},
			expected: 0,
		},
		{
			name: "uniform scores pass through",
			local: map[schema.Domain]float64{
				schema.DomainMental:       50,
				schema.DomainSleep:        50,
				schema.DomainMSK:          50,
				schema.DomainEye:          50,
				schema.DomainHydration:    50,
				schema.DomainWorkspace:    50,
				schema.DomainBaseline:     50,
				schema.DomainLongitudinal: 50,
			},
			expected: 50,
		},
		{
			name:     "single domain weighted down",
			local:    map[schema.Domain]float64{schema.DomainMSK: 100},
			expected: 18,
		},
		{
			name: "missing domains drag the index",
			local: map[schema.Domain]float64{
				schema.DomainMSK: 80,
				schema.DomainEye: 60,
			},
			expected: 23.4, // 80*0.18 + 60*0.15
		},
		{
			name:     "unweighted domain is ignored",
			local:    map[schema.Domain]float64{schema.DomainProductivity: 100},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ComputeWHI(tt.local), 0.001)
		})
	}
}

// TestApplyGlobalPressure checks the local/systemic blend.
func TestApplyGlobalPressure(t *testing.T) {
	tests := []struct {
		name     string
		local    float64
		whi      float64
		expected float64
	}{
		{
			name:     "zero everywhere",
			local:    0,
			whi:      0,
			expected: 0,
		},
		{
			name:     "typical blend",
			local:    50,
			whi:      40,
			expected: 39.2, // 0.70*50 + 0.30*(40*0.35)
		},
		{
			name:     "pressure never exceeds its share",
			local:    0,
			whi:      100,
			expected: 10.5,
		},
		{
			name:     "maximal inputs stay in range",
			local:    100,
			whi:      100,
			expected: 80.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyGlobalPressure(tt.local, tt.whi, schema.PressureFactor)
			assert.InDelta(t, tt.expected, got, 0.001)
		})
	}
}
