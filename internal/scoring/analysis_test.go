package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDay(offset int) time.Time {
	return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func neutralEntry(offset int) Entry {
	return Entry{
		Date:               testDay(offset),
		OverallMood:        7,
		Energy:             6,
		Sleep:              6,
		DepressiveSymptoms: map[string]int{},
		AnxietySymptoms:    map[string]int{},
		StressIndicators:   map[string]int{},
	}
}

func fillIndicators(names []string, value int) map[string]int {
	values := make(map[string]int, len(names))
	for _, name := range names {
		values[name] = value
	}
	return values
}

func TestAnalyzeEmptyWindow(t *testing.T) {
	analysis := Analyze(nil)

	assert.Equal(t, 0, analysis.EntriesAnalyzed)
	assert.Zero(t, analysis.Depression.Score)
	assert.Zero(t, analysis.Anxiety.Score)
	assert.Zero(t, analysis.Stress.Score)
	assert.Equal(t, LevelMinimal, analysis.Depression.Level)
	assert.Equal(t, LevelMinimal, analysis.Anxiety.Level)
	assert.Equal(t, LevelLow, analysis.Stress.Level)
	assert.Equal(t, StabilityVeryStable, analysis.MoodStability.Level)
	assert.Empty(t, analysis.Depression.Recommendations)
	assert.Empty(t, analysis.Anxiety.Recommendations)
	assert.Empty(t, analysis.Stress.Recommendations)
	assert.NotNil(t, analysis.Depression.Recommendations)
	assert.Empty(t, analysis.RiskFactors)
	assert.Empty(t, analysis.ProtectiveFactors)
	assert.False(t, analysis.NeedsProfessionalHelp)
	assert.False(t, analysis.CrisisRisk)
	assert.Zero(t, analysis.OverallScore)
	assert.Equal(t, stableTrends(), analysis.Trends)
}

func TestAnalyzeScoresStayWithinCategoryBounds(t *testing.T) {
	window := make([]Entry, 0, 14)
	for offset := 0; offset < 14; offset++ {
		entry := neutralEntry(offset)
		entry.DepressiveSymptoms = fillIndicators(DepressionIndicators, offset%4)
		entry.AnxietySymptoms = fillIndicators(AnxietyIndicators, 3)
		entry.StressIndicators = fillIndicators(StressIndicators, (offset+1)%4)
		window = append(window, entry)
	}

	analysis := Analyze(window)

	for _, testCase := range []struct {
		name     string
		score    float64
		category Category
	}{
		{name: "depression", score: analysis.Depression.Score, category: CategoryDepression},
		{name: "anxiety", score: analysis.Anxiety.Score, category: CategoryAnxiety},
		{name: "stress", score: analysis.Stress.Score, category: CategoryStress},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			assert.GreaterOrEqual(t, testCase.score, 0.0)
			assert.LessOrEqual(t, testCase.score, float64(MaxCategoryTotal(testCase.category)))
		})
	}
	assert.Equal(t, 21.0, analysis.Anxiety.Score)
	assert.Equal(t, LevelSevere, analysis.Anxiety.Level)
}

func TestAnalyzeDepressionBoundaryStaysModerate(t *testing.T) {
	first := neutralEntry(0)
	first.DepressiveSymptoms = map[string]int{"sadness": 3, "hopelessness": 3, "worthlessness": 3, "lossOfInterest": 1}
	second := neutralEntry(1)
	second.DepressiveSymptoms = map[string]int{
		"sadness": 3, "hopelessness": 3, "worthlessness": 3, "lossOfInterest": 3,
		"fatigue": 3, "concentration": 3,
	}

	analysis := Analyze([]Entry{first, second})

	require.Equal(t, 14.0, analysis.Depression.Score)
	assert.Equal(t, LevelModerate, analysis.Depression.Level)
	assert.Equal(t, TrackerRecommendations(CategoryDepression, LevelModerate), analysis.Depression.Recommendations)
	assert.False(t, analysis.NeedsProfessionalHelp)
}

func TestAnalyzeDepressionWithMissingIndicator(t *testing.T) {
	window := make([]Entry, 0, 14)
	for offset := 0; offset < 14; offset++ {
		entry := neutralEntry(offset)
		entry.DepressiveSymptoms = fillIndicators(DepressionIndicators[:7], 3)
		window = append(window, entry)
	}

	analysis := Analyze(window)

	assert.Equal(t, 21.0, analysis.Depression.Score)
	assert.Equal(t, LevelSevere, analysis.Depression.Level)
	assert.True(t, analysis.NeedsProfessionalHelp)
	assert.False(t, analysis.CrisisRisk, "anxiety is below the crisis threshold")
	assert.Equal(t, 58.0, analysis.OverallScore)
	assert.Contains(t, analysis.RiskFactors, RiskElevatedDepression)
}

func TestAnalyzeCrisisFromSingleSuicidalThoughtsEntry(t *testing.T) {
	for _, severity := range []int{2, 3} {
		window := make([]Entry, 0, 14)
		for offset := 0; offset < 14; offset++ {
			window = append(window, neutralEntry(offset))
		}
		window[6].DepressiveSymptoms = map[string]int{SuicidalThoughtsIndicator: severity}

		analysis := Analyze(window)

		assert.True(t, analysis.CrisisRisk, "severity %d", severity)
		assert.True(t, analysis.NeedsProfessionalHelp, "severity %d", severity)
	}
}

func TestAnalyzeSuicidalThoughtsAtOneIsNotCrisis(t *testing.T) {
	entry := neutralEntry(0)
	entry.DepressiveSymptoms = map[string]int{SuicidalThoughtsIndicator: 1}

	analysis := Analyze([]Entry{entry})

	assert.False(t, analysis.CrisisRisk)
}

func TestAnalyzeCrisisFromCombinedScores(t *testing.T) {
	entry := neutralEntry(0)
	entry.DepressiveSymptoms = fillIndicators(DepressionIndicators[:7], 3)
	entry.AnxietySymptoms = fillIndicators(AnxietyIndicators, 3)

	analysis := Analyze([]Entry{entry})

	assert.True(t, analysis.CrisisRisk)
	assert.Equal(t, 16.0, analysis.OverallScore)
}

func TestAnalyzeConstantMoodIsStable(t *testing.T) {
	window := make([]Entry, 0, 14)
	for offset := 0; offset < 14; offset++ {
		window = append(window, neutralEntry(offset))
	}

	analysis := Analyze(window)

	assert.Equal(t, TrendStable, analysis.Trends.Mood)
	assert.Zero(t, analysis.MoodStability.Variance)
	assert.Equal(t, StabilityVeryStable, analysis.MoodStability.Level)
	assert.Equal(t, 100.0, analysis.OverallScore)
}

func TestAnalyzeTrendPolarity(t *testing.T) {
	window := make([]Entry, 0, 4)
	for offset := 0; offset < 4; offset++ {
		entry := neutralEntry(offset)
		if offset >= 2 {
			entry.OverallMood = 9
			entry.StressIndicators = fillIndicators(StressIndicators, 1)
			entry.AnxietySymptoms = map[string]int{}
		} else {
			entry.OverallMood = 4
			entry.AnxietySymptoms = fillIndicators(AnxietyIndicators, 2)
		}
		window = append(window, entry)
	}

	analysis := Analyze(window)

	assert.Equal(t, TrendImproving, analysis.Trends.Mood)
	assert.Equal(t, TrendWorsening, analysis.Trends.Stress)
	assert.Equal(t, TrendImproving, analysis.Trends.Anxiety)
	assert.Equal(t, TrendStable, analysis.Trends.Depression)
}

func TestAnalyzeRiskAndProtectiveFactors(t *testing.T) {
	window := []Entry{neutralEntry(0), neutralEntry(1), neutralEntry(2)}
	window[0].OverallMood = 2
	window[1].OverallMood = 9
	window[2].OverallMood = 5
	for index := range window {
		window[index].Sleep = 5
		window[index].Energy = 8
	}
	window[1].Activities = []string{"Exercise", "Reading"}
	window[2].Activities = []string{"Socializing"}

	analysis := Analyze(window)

	assert.Equal(t, []string{RiskMoodInstability, RiskPoorSleep}, analysis.RiskFactors)
	assert.Equal(t, []string{ProtectiveHighEnergy, ProtectiveExercise, ProtectiveSocialization}, analysis.ProtectiveFactors)
}

func TestAnalyzeSleepDeadZone(t *testing.T) {
	for _, sleep := range []int{6, 7} {
		entry := neutralEntry(0)
		entry.Sleep = sleep

		analysis := Analyze([]Entry{entry})

		assert.NotContains(t, analysis.RiskFactors, RiskPoorSleep, "sleep %d", sleep)
		assert.NotContains(t, analysis.ProtectiveFactors, ProtectiveGoodSleep, "sleep %d", sleep)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	window := make([]Entry, 0, 10)
	for offset := 0; offset < 10; offset++ {
		entry := neutralEntry(offset)
		entry.OverallMood = 3 + offset%5
		entry.DepressiveSymptoms = fillIndicators(DepressionIndicators, offset%3)
		entry.StressIndicators = fillIndicators(StressIndicators, (offset+2)%4)
		entry.Activities = []string{"Meditation"}
		window = append(window, entry)
	}

	first := Analyze(window)
	second := Analyze(window)

	assert.Equal(t, first, second)
}

func TestAnalyzeDoesNotShareRecommendationSlices(t *testing.T) {
	entry := neutralEntry(0)
	analysis := Analyze([]Entry{entry})
	require.NotEmpty(t, analysis.Stress.Recommendations)

	analysis.Stress.Recommendations[0] = "mutated"

	assert.NotEqual(t, "mutated", Analyze([]Entry{entry}).Stress.Recommendations[0])
}
