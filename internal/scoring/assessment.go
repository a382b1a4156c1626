package scoring

type AssessmentCategory string

const (
	AssessmentDepression AssessmentCategory = "depression"
	AssessmentAnxiety    AssessmentCategory = "anxiety"
	AssessmentStress     AssessmentCategory = "stress"
	AssessmentSleep      AssessmentCategory = "sleep"
)

var AssessmentCategories = []AssessmentCategory{
	AssessmentDepression,
	AssessmentAnxiety,
	AssessmentStress,
	AssessmentSleep,
}

type RiskLevel string

const (
	LowRisk      RiskLevel = "Low Risk"
	ModerateRisk RiskLevel = "Moderate Risk"
	HighRisk     RiskLevel = "High Risk"
)

const (
	moderateRiskPercentage = 40
	highRiskPercentage     = 70
)

type Question struct {
	ID       string             `json:"id"`
	Category AssessmentCategory `json:"category"`
	Text     string             `json:"text"`
}

type AnswerOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

var AnswerOptions = []AnswerOption{
	{Value: 0, Label: "Not at all"},
	{Value: 1, Label: "Several days"},
	{Value: 2, Label: "More than half the days"},
	{Value: 3, Label: "Nearly every day"},
}

var questionBank = []Question{
	{ID: "dep_interest", Category: AssessmentDepression, Text: "Little interest or pleasure in doing things"},
	{ID: "dep_hopeless", Category: AssessmentDepression, Text: "Feeling down, depressed, or hopeless"},
	{ID: "dep_energy", Category: AssessmentDepression, Text: "Feeling tired or having little energy"},
	{ID: "dep_selfworth", Category: AssessmentDepression, Text: "Feeling bad about yourself or that you are a failure"},
	{ID: "dep_focus", Category: AssessmentDepression, Text: "Trouble concentrating on things such as reading or watching TV"},

	{ID: "anx_nervous", Category: AssessmentAnxiety, Text: "Feeling nervous, anxious, or on edge"},
	{ID: "anx_worry", Category: AssessmentAnxiety, Text: "Not being able to stop or control worrying"},
	{ID: "anx_relax", Category: AssessmentAnxiety, Text: "Trouble relaxing"},
	{ID: "anx_restless", Category: AssessmentAnxiety, Text: "Being so restless that it is hard to sit still"},
	{ID: "anx_afraid", Category: AssessmentAnxiety, Text: "Feeling afraid as if something awful might happen"},

	{ID: "str_overwhelmed", Category: AssessmentStress, Text: "Feeling overwhelmed by your responsibilities"},
	{ID: "str_control", Category: AssessmentStress, Text: "Feeling unable to control the important things in your life"},
	{ID: "str_irritable", Category: AssessmentStress, Text: "Becoming easily irritated or upset"},
	{ID: "str_tension", Category: AssessmentStress, Text: "Physical tension such as headaches or a tight jaw"},
	{ID: "str_coping", Category: AssessmentStress, Text: "Finding that you could not cope with all the things you had to do"},

	{ID: "slp_falling", Category: AssessmentSleep, Text: "Trouble falling asleep"},
	{ID: "slp_waking", Category: AssessmentSleep, Text: "Waking up during the night and struggling to fall back asleep"},
	{ID: "slp_early", Category: AssessmentSleep, Text: "Waking up too early"},
	{ID: "slp_rested", Category: AssessmentSleep, Text: "Not feeling rested after sleep"},
	{ID: "slp_daytime", Category: AssessmentSleep, Text: "Sleepiness interfering with daytime activities"},
}

// Questions returns a copy of the self-assessment question bank.
func Questions() []Question {
	result := make([]Question, len(questionBank))
	copy(result, questionBank)
	return result
}

func QuestionByID(id string) (Question, bool) {
	for _, question := range questionBank {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

type AssessmentCategoryResult struct {
	Category        AssessmentCategory `json:"category"`
	RawScore        int                `json:"rawScore"`
	MaxScore        int                `json:"maxScore"`
	Percentage      float64            `json:"percentage"`
	RiskLevel       RiskLevel          `json:"riskLevel"`
	Recommendations []string           `json:"recommendations"`
}

type AssessmentResult struct {
	Categories  []AssessmentCategoryResult `json:"categories"`
	OverallRisk RiskLevel                  `json:"overallRisk"`
}

// ClassifyRisk maps a 0-100 percentage onto the self-assessment risk tiers.
func ClassifyRisk(percentage float64) RiskLevel {
	switch {
	case percentage < moderateRiskPercentage:
		return LowRisk
	case percentage < highRiskPercentage:
		return ModerateRisk
	default:
		return HighRisk
	}
}

// OverallRisk aggregates category tiers by counting. It is a separate policy
// from the score-based crisis and professional-help flags.
func OverallRisk(levels []RiskLevel) RiskLevel {
	high := 0
	moderate := 0
	for _, level := range levels {
		switch level {
		case HighRisk:
			high++
		case ModerateRisk:
			moderate++
		}
	}
	switch {
	case high >= 2:
		return HighRisk
	case high == 1 || moderate >= 2:
		return ModerateRisk
	default:
		return LowRisk
	}
}

// ScoreAssessment scores answers keyed by question ID. Unanswered questions
// count as zero, values are clamped to the answer scale and unknown IDs are ignored.
func ScoreAssessment(answers map[string]int) AssessmentResult {
	raw := make(map[AssessmentCategory]int, len(AssessmentCategories))
	maxScores := make(map[AssessmentCategory]int, len(AssessmentCategories))
	for _, question := range questionBank {
		maxScores[question.Category] += MaxSeverity
		raw[question.Category] += clampSeverity(answers[question.ID])
	}

	result := AssessmentResult{Categories: make([]AssessmentCategoryResult, 0, len(AssessmentCategories))}
	levels := make([]RiskLevel, 0, len(AssessmentCategories))
	for _, category := range AssessmentCategories {
		percentage := 0.0
		if maxScores[category] > 0 {
			percentage = float64(raw[category]) / float64(maxScores[category]) * 100
		}
		level := ClassifyRisk(percentage)
		levels = append(levels, level)
		result.Categories = append(result.Categories, AssessmentCategoryResult{
			Category:        category,
			RawScore:        raw[category],
			MaxScore:        maxScores[category],
			Percentage:      percentage,
			RiskLevel:       level,
			Recommendations: AssessmentRecommendations(category, level),
		})
	}
	result.OverallRisk = OverallRisk(levels)
	return result
}

// HighRiskCategories lists the categories at High Risk in category order.
func (result AssessmentResult) HighRiskCategories() []AssessmentCategory {
	categories := make([]AssessmentCategory, 0)
	for _, category := range result.Categories {
		if category.RiskLevel == HighRisk {
			categories = append(categories, category.Category)
		}
	}
	return categories
}

func clampSeverity(value int) int {
	if value < MinSeverity {
		return MinSeverity
	}
	if value > MaxSeverity {
		return MaxSeverity
	}
	return value
}

type assessmentKey struct {
	category AssessmentCategory
	level    RiskLevel
}

var assessmentRecommendations = map[assessmentKey][]string{
	{AssessmentDepression, LowRisk}: {
		"Maintain healthy daily routines",
		"Stay socially connected",
		"Keep engaging in activities you enjoy",
	},
	{AssessmentDepression, ModerateRisk}: {
		"Consider talking to a counselor",
		"Increase physical activity and time outdoors",
		"Practice self-compassion and challenge negative thoughts",
		"Track your mood daily to spot patterns",
	},
	{AssessmentDepression, HighRisk}: {
		"Seek professional mental health support",
		"Contact a crisis helpline if you feel unsafe",
		"Share how you feel with someone you trust",
		"Avoid making major decisions alone right now",
	},

	{AssessmentAnxiety, LowRisk}: {
		"Continue practicing relaxation techniques",
		"Maintain a balanced lifestyle",
		"Notice early signs of worry and address them",
	},
	{AssessmentAnxiety, ModerateRisk}: {
		"Try daily breathing or mindfulness exercises",
		"Reduce caffeine and stimulants",
		"Consider a cognitive behavioral therapy program",
	},
	{AssessmentAnxiety, HighRisk}: {
		"Consult a mental health professional",
		"Learn grounding techniques for acute anxiety",
		"Discuss treatment options with your doctor",
		"Lean on your support network",
	},

	{AssessmentStress, LowRisk}: {
		"Keep your current work-life balance",
		"Continue regular exercise",
		"Make time for hobbies",
	},
	{AssessmentStress, ModerateRisk}: {
		"Prioritize and delegate tasks where you can",
		"Schedule regular breaks",
		"Practice stress-reduction techniques such as yoga or meditation",
	},
	{AssessmentStress, HighRisk}: {
		"Talk to a professional about stress management",
		"Reduce your commitments where possible",
		"Set firm boundaries on work hours",
		"Check in with your doctor about physical symptoms",
	},

	{AssessmentSleep, LowRisk}: {
		"Keep a consistent sleep schedule",
		"Maintain a relaxing bedtime routine",
		"Keep your bedroom dark and quiet",
	},
	{AssessmentSleep, ModerateRisk}: {
		"Limit screens for an hour before bed",
		"Avoid caffeine after midday",
		"Get morning daylight exposure",
		"Keep naps short and early",
	},
	{AssessmentSleep, HighRisk}: {
		"Talk to a doctor about persistent sleep problems",
		"Ask about cognitive behavioral therapy for insomnia",
		"Keep a sleep diary to share with your clinician",
	},
}

// AssessmentRecommendations returns the self-assessment guidance for a category tier.
func AssessmentRecommendations(category AssessmentCategory, level RiskLevel) []string {
	return cloneStrings(assessmentRecommendations[assessmentKey{category, level}])
}
