package scoring

const (
	RiskElevatedDepression = "Elevated depression symptoms"
	RiskElevatedAnxiety    = "Elevated anxiety symptoms"
	RiskHighStress         = "High stress levels"
	RiskMoodInstability    = "Mood instability"
	RiskPoorSleep          = "Poor sleep quality"

	ProtectiveGoodSleep     = "Good sleep quality"
	ProtectiveHighEnergy    = "High energy levels"
	ProtectiveExercise      = "Regular exercise"
	ProtectiveMeditation    = "Meditation practice"
	ProtectiveSocialization = "Social connections"
)

var protectiveActivities = []struct {
	activity string
	factor   string
}{
	{activity: "Exercise", factor: ProtectiveExercise},
	{activity: "Meditation", factor: ProtectiveMeditation},
	{activity: "Socializing", factor: ProtectiveSocialization},
}

type CategoryResult struct {
	Score           float64  `json:"score"`
	Level           string   `json:"level"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

type MoodStability struct {
	Variance float64 `json:"variance"`
	Level    string  `json:"level"`
}

type Analysis struct {
	EntriesAnalyzed       int            `json:"entriesAnalyzed"`
	Depression            CategoryResult `json:"depression"`
	Anxiety               CategoryResult `json:"anxiety"`
	Stress                CategoryResult `json:"stress"`
	MoodStability         MoodStability  `json:"moodStability"`
	OverallScore          float64        `json:"overallScore"`
	RiskFactors           []string       `json:"riskFactors"`
	ProtectiveFactors     []string       `json:"protectiveFactors"`
	Trends                Trends         `json:"trends"`
	NeedsProfessionalHelp bool           `json:"needsProfessionalHelp"`
	CrisisRisk            bool           `json:"crisisRisk"`
}

// EmptyAnalysis is the fixed result for a window without entries.
func EmptyAnalysis() Analysis {
	return Analysis{
		Depression:        emptyCategory(CategoryDepression),
		Anxiety:           emptyCategory(CategoryAnxiety),
		Stress:            emptyCategory(CategoryStress),
		MoodStability:     MoodStability{Level: moodStabilityLadder.lowest()},
		RiskFactors:       []string{},
		ProtectiveFactors: []string{},
		Trends:            stableTrends(),
	}
}

func emptyCategory(category Category) CategoryResult {
	level := categoryLadder(category).lowest()
	return CategoryResult{
		Level:           level,
		Description:     TrackerDescription(category, level),
		Recommendations: []string{},
	}
}

// Analyze scores the window of entries, which must be date-ascending and
// already trimmed to the trailing window. The input is only read.
func Analyze(window []Entry) Analysis {
	if len(window) == 0 {
		return EmptyAnalysis()
	}

	depressionTotals := categoryTotals(window, CategoryDepression)
	anxietyTotals := categoryTotals(window, CategoryAnxiety)
	stressTotals := categoryTotals(window, CategoryStress)
	moods := ratings(window, func(entry Entry) int { return entry.OverallMood })

	depression := mean(depressionTotals)
	anxiety := mean(anxietyTotals)
	stress := mean(stressTotals)
	moodVariance := variance(moods)

	crisis := CrisisRisk(window, depression, anxiety)

	return Analysis{
		EntriesAnalyzed: len(window),
		Depression:      categoryResult(CategoryDepression, depression),
		Anxiety:         categoryResult(CategoryAnxiety, anxiety),
		Stress:          categoryResult(CategoryStress, stress),
		MoodStability: MoodStability{
			Variance: moodVariance,
			Level:    ClassifyMoodStability(moodVariance),
		},
		OverallScore:      OverallScore(depression, anxiety, stress),
		RiskFactors:       riskFactors(window, depression, anxiety, stress, moodVariance),
		ProtectiveFactors: protectiveFactors(window),
		Trends: Trends{
			Mood:       MoodTrend(moods),
			Depression: SymptomTrend(depressionTotals),
			Anxiety:    SymptomTrend(anxietyTotals),
			Stress:     SymptomTrend(stressTotals),
		},
		NeedsProfessionalHelp: NeedsProfessionalHelp(depression, anxiety, stress, crisis),
		CrisisRisk:            crisis,
	}
}

func categoryResult(category Category, score float64) CategoryResult {
	level := ClassifyLevel(category, score)
	return CategoryResult{
		Score:           score,
		Level:           level,
		Description:     TrackerDescription(category, level),
		Recommendations: TrackerRecommendations(category, level),
	}
}

// CategoryScore is the mean per-entry indicator total for the category.
func CategoryScore(window []Entry, category Category) float64 {
	return mean(categoryTotals(window, category))
}

func categoryTotals(window []Entry, category Category) []float64 {
	totals := make([]float64, len(window))
	for index, entry := range window {
		totals[index] = float64(entry.CategoryTotal(category))
	}
	return totals
}

func ratings(window []Entry, pick func(Entry) int) []float64 {
	values := make([]float64, len(window))
	for index, entry := range window {
		values[index] = float64(pick(entry))
	}
	return values
}

func OverallScore(depression float64, anxiety float64, stress float64) float64 {
	score := 100 - 2*(depression+anxiety+stress)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func CrisisRisk(window []Entry, depression float64, anxiety float64) bool {
	for _, entry := range window {
		if entry.DepressiveSymptoms[SuicidalThoughtsIndicator] > 1 {
			return true
		}
	}
	return depression > 19 && anxiety > 14
}

func NeedsProfessionalHelp(depression float64, anxiety float64, stress float64, crisis bool) bool {
	return depression > 14 || anxiety > 14 || stress > 21 || crisis
}

func riskFactors(window []Entry, depression float64, anxiety float64, stress float64, moodVariance float64) []string {
	factors := make([]string, 0, 5)
	if depression > 9 {
		factors = append(factors, RiskElevatedDepression)
	}
	if anxiety > 9 {
		factors = append(factors, RiskElevatedAnxiety)
	}
	if stress > 14 {
		factors = append(factors, RiskHighStress)
	}
	if moodVariance > 3 {
		factors = append(factors, RiskMoodInstability)
	}
	if mean(ratings(window, func(entry Entry) int { return entry.Sleep })) < 6 {
		factors = append(factors, RiskPoorSleep)
	}
	return factors
}

// Sleep between 6 and 7 inclusive produces neither a risk nor a protective factor.
func protectiveFactors(window []Entry) []string {
	factors := make([]string, 0, 5)
	if mean(ratings(window, func(entry Entry) int { return entry.Sleep })) > 7 {
		factors = append(factors, ProtectiveGoodSleep)
	}
	if mean(ratings(window, func(entry Entry) int { return entry.Energy })) > 7 {
		factors = append(factors, ProtectiveHighEnergy)
	}
	for _, candidate := range protectiveActivities {
		for _, entry := range window {
			if entry.hasActivity(candidate.activity) {
				factors = append(factors, candidate.factor)
				break
			}
		}
	}
	return factors
}
