package scoring

const (
	LevelMinimal          = "Minimal"
	LevelMild             = "Mild"
	LevelModerate         = "Moderate"
	LevelModeratelySevere = "Moderately Severe"
	LevelSevere           = "Severe"

	LevelLow      = "Low"
	LevelHigh     = "High"
	LevelVeryHigh = "Very High"

	StabilityVeryStable       = "Very Stable"
	StabilityStable           = "Stable"
	StabilitySomewhatUnstable = "Somewhat Unstable"
	StabilityUnstable         = "Unstable"
)

type rung struct {
	upper float64
	label string
}

// ladder maps a value to the label of the first rung whose upper bound is not
// exceeded. The last label applies to anything above every bound.
type ladder struct {
	rungs   []rung
	ceiling string
}

func (l ladder) classify(value float64) string {
	for _, step := range l.rungs {
		if value <= step.upper {
			return step.label
		}
	}
	return l.ceiling
}

func (l ladder) lowest() string {
	if len(l.rungs) == 0 {
		return l.ceiling
	}
	return l.rungs[0].label
}

var depressionLadder = ladder{
	rungs: []rung{
		{upper: 4, label: LevelMinimal},
		{upper: 9, label: LevelMild},
		{upper: 14, label: LevelModerate},
		{upper: 19, label: LevelModeratelySevere},
	},
	ceiling: LevelSevere,
}

var anxietyLadder = ladder{
	rungs: []rung{
		{upper: 4, label: LevelMinimal},
		{upper: 9, label: LevelMild},
		{upper: 14, label: LevelModerate},
	},
	ceiling: LevelSevere,
}

// Very High sits above the stress maximum of 21.
var stressLadder = ladder{
	rungs: []rung{
		{upper: 7, label: LevelLow},
		{upper: 14, label: LevelModerate},
		{upper: 21, label: LevelHigh},
	},
	ceiling: LevelVeryHigh,
}

// Lower variance is better here, the reverse of the symptom ladders.
var moodStabilityLadder = ladder{
	rungs: []rung{
		{upper: 1, label: StabilityVeryStable},
		{upper: 2, label: StabilityStable},
		{upper: 4, label: StabilitySomewhatUnstable},
	},
	ceiling: StabilityUnstable,
}

func categoryLadder(category Category) ladder {
	switch category {
	case CategoryDepression:
		return depressionLadder
	case CategoryAnxiety:
		return anxietyLadder
	default:
		return stressLadder
	}
}

// ClassifyLevel returns the tracker severity label for a category score.
func ClassifyLevel(category Category, score float64) string {
	return categoryLadder(category).classify(score)
}

func ClassifyMoodStability(variance float64) string {
	return moodStabilityLadder.classify(variance)
}

// LevelRank orders a category's labels from 0 (least severe) upward; unknown labels rank -1.
func LevelRank(category Category, level string) int {
	l := categoryLadder(category)
	for index, step := range l.rungs {
		if step.label == level {
			return index
		}
	}
	if level == l.ceiling {
		return len(l.rungs)
	}
	return -1
}
