package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymptomTrend(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Trend
	}{
		{name: "empty", values: nil, want: TrendStable},
		{name: "single value has empty first half", values: []float64{12}, want: TrendStable},
		{name: "below threshold", values: []float64{4, 4, 4.4, 4.4}, want: TrendStable},
		{name: "exactly threshold worsens", values: []float64{4, 4, 4.5, 4.5}, want: TrendWorsening},
		{name: "falling scores improve", values: []float64{10, 9, 3, 2}, want: TrendImproving},
		{name: "odd window puts extra value in newest half", values: []float64{2, 2, 2, 8, 8}, want: TrendWorsening},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, SymptomTrend(testCase.values))
		})
	}
}

func TestMoodTrendInvertsPolarity(t *testing.T) {
	assert.Equal(t, TrendImproving, MoodTrend([]float64{3, 3, 8, 8}))
	assert.Equal(t, TrendWorsening, MoodTrend([]float64{8, 8, 3, 3}))
	assert.Equal(t, TrendStable, MoodTrend([]float64{7, 7, 7, 7}))
}

func TestVarianceIsPopulationVariance(t *testing.T) {
	assert.InDelta(t, 2.0, variance([]float64{1, 2, 3, 4, 5}), 1e-9)
	assert.Zero(t, variance(nil))
}
