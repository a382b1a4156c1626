package scoring

type trackerKey struct {
	category Category
	level    string
}

var trackerDescriptions = map[trackerKey]string{
	{CategoryDepression, LevelMinimal}:          "Minimal or no depressive symptoms over the tracked period.",
	{CategoryDepression, LevelMild}:             "Mild depressive symptoms that may come and go.",
	{CategoryDepression, LevelModerate}:         "Moderate depressive symptoms that are likely affecting daily life.",
	{CategoryDepression, LevelModeratelySevere}: "Moderately severe depressive symptoms that warrant professional attention.",
	{CategoryDepression, LevelSevere}:           "Severe depressive symptoms. Please seek professional support promptly.",

	{CategoryAnxiety, LevelMinimal}:  "Minimal anxiety symptoms over the tracked period.",
	{CategoryAnxiety, LevelMild}:     "Mild anxiety that is usually manageable.",
	{CategoryAnxiety, LevelModerate}: "Moderate anxiety that may interfere with work, rest or relationships.",
	{CategoryAnxiety, LevelSevere}:   "Severe anxiety symptoms that warrant professional support.",

	{CategoryStress, LevelLow}:      "Stress levels are low and well within a healthy range.",
	{CategoryStress, LevelModerate}: "Moderate stress. Regular recovery time will help keep it in check.",
	{CategoryStress, LevelHigh}:     "High stress that is likely affecting sleep, mood or health.",
	{CategoryStress, LevelVeryHigh}: "Very high stress. Consider reducing load and reaching out for support.",
}

// Mood-tracker guidance, keyed by category and tracker level. Kept apart from
// the self-assessment table, which uses a different tier vocabulary.
var trackerRecommendations = map[trackerKey][]string{
	{CategoryDepression, LevelMinimal}: {
		"Keep up the routines that are working for you",
		"Stay connected with friends and family",
		"Continue tracking your mood to notice early changes",
	},
	{CategoryDepression, LevelMild}: {
		"Schedule at least one enjoyable activity each day",
		"Aim for 30 minutes of physical activity most days",
		"Keep a regular sleep schedule",
		"Talk to someone you trust about how you feel",
	},
	{CategoryDepression, LevelModerate}: {
		"Consider speaking with a counselor or therapist",
		"Break tasks into small, achievable steps",
		"Practice behavioral activation: plan activities even when motivation is low",
		"Limit alcohol and avoid isolating yourself",
	},
	{CategoryDepression, LevelModeratelySevere}: {
		"Book an appointment with a mental health professional",
		"Let a trusted person know what you are going through",
		"Ask your doctor whether treatment options such as therapy or medication are appropriate",
		"Keep a safety plan with crisis contacts close at hand",
	},
	{CategoryDepression, LevelSevere}: {
		"Seek professional help as soon as possible",
		"If you have thoughts of harming yourself, contact a crisis line or emergency services now",
		"Do not stay alone: reach out to someone you trust today",
		"Follow up regularly with a mental health professional",
	},

	{CategoryAnxiety, LevelMinimal}: {
		"Continue your current stress management habits",
		"Practice brief relaxation exercises to stay resilient",
		"Maintain regular sleep and exercise",
	},
	{CategoryAnxiety, LevelMild}: {
		"Practice deep breathing or progressive muscle relaxation daily",
		"Limit caffeine, especially later in the day",
		"Write down worries and set a fixed time to review them",
		"Try short mindfulness sessions",
	},
	{CategoryAnxiety, LevelModerate}: {
		"Consider cognitive behavioral therapy with a qualified therapist",
		"Identify your triggers and plan coping responses in advance",
		"Use grounding techniques such as 5-4-3-2-1 during anxious moments",
		"Keep a consistent daily routine",
	},
	{CategoryAnxiety, LevelSevere}: {
		"Consult a mental health professional promptly",
		"Discuss treatment options with your doctor",
		"Learn and practice a panic management plan",
		"Reach out to supportive people instead of avoiding situations alone",
	},

	{CategoryStress, LevelLow}: {
		"Maintain your current balance between work and rest",
		"Keep regular physical activity in your week",
		"Protect time for hobbies and relationships",
	},
	{CategoryStress, LevelModerate}: {
		"Prioritize tasks and set realistic daily goals",
		"Take short breaks during work to reset",
		"Use relaxation techniques such as breathing or stretching",
		"Protect at least 7 hours for sleep",
	},
	{CategoryStress, LevelHigh}: {
		"Identify the main sources of stress and what can be delegated or dropped",
		"Set clear boundaries on work and screen time",
		"Schedule daily recovery activities such as walks or meditation",
		"Consider talking to a counselor about stress management",
	},
	{CategoryStress, LevelVeryHigh}: {
		"Reduce commitments wherever possible",
		"Seek support from a mental health professional",
		"Talk to your employer or school about workload adjustments",
		"Watch for physical warning signs and consult a doctor if they persist",
	},
}

// TrackerRecommendations returns the mood-tracker guidance for a category level.
// The returned slice is a copy.
func TrackerRecommendations(category Category, level string) []string {
	return cloneStrings(trackerRecommendations[trackerKey{category, level}])
}

func TrackerDescription(category Category, level string) string {
	return trackerDescriptions[trackerKey{category, level}]
}

func cloneStrings(values []string) []string {
	result := make([]string, len(values))
	copy(result, values)
	return result
}
