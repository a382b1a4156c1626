package scoring

import "math"

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendWorsening Trend = "worsening"
)

const trendThreshold = 0.5

type Trends struct {
	Mood       Trend `json:"mood"`
	Depression Trend `json:"depression"`
	Anxiety    Trend `json:"anxiety"`
	Stress     Trend `json:"stress"`
}

// halfMeanDiff splits values into floor(n/2) oldest and the remaining newest
// values and returns mean(newest) - mean(oldest). ok is false when a half is empty.
func halfMeanDiff(values []float64) (float64, bool) {
	split := len(values) / 2
	first := values[:split]
	second := values[split:]
	if len(first) == 0 || len(second) == 0 {
		return 0, false
	}
	return mean(second) - mean(first), true
}

// SymptomTrend reads a rising symptom score as worsening.
func SymptomTrend(values []float64) Trend {
	diff, ok := halfMeanDiff(values)
	if !ok || math.Abs(diff) < trendThreshold {
		return TrendStable
	}
	if diff > 0 {
		return TrendWorsening
	}
	return TrendImproving
}

// MoodTrend reads a rising mood rating as improving.
func MoodTrend(values []float64) Trend {
	diff, ok := halfMeanDiff(values)
	if !ok || math.Abs(diff) < trendThreshold {
		return TrendStable
	}
	if diff > 0 {
		return TrendImproving
	}
	return TrendWorsening
}

func stableTrends() Trends {
	return Trends{
		Mood:       TrendStable,
		Depression: TrendStable,
		Anxiety:    TrendStable,
		Stress:     TrendStable,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}

// variance is the population variance.
func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	average := mean(values)
	sum := 0.0
	for _, value := range values {
		delta := value - average
		sum += delta * delta
	}
	return sum / float64(len(values))
}
