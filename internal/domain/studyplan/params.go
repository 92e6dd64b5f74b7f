package studyplan

import "github.com/padsala/padsala-api/internal/domain"

// Meal is a routine block inserted when the timetable clock reaches Hour.
type Meal struct {
	Hour     int
	Activity string
	Minutes  int
}

// Params holds the product-tuned weights and labels of the scheduler.
// Changing any of them changes generated plans.
type Params struct {
	// Scoring
	ProximityScale      float64 // numerator of the proximity weight
	ProximityOffset     float64 // added to days left so a 1-day exam is finite
	DifficultyStep      float64 // weight added per difficulty grade
	RepetitionStep      float64 // penalty growth per day already studied
	NeutralMastery      float64 // assumed average when a subject has no scores
	BurnoutThreshold    float64 // load factor above which a day is shortened
	// BurnoutFloorHours and HardSubjectCapHours bound the one-hour
	// adjustments. A bound never moves a budget the other way: a budget at or
	// below the floor is not shortened and one at or above the cap is not
	// extended.
	BurnoutFloorHours   int
	HardSubjectCapHours int

	// Timetable
	FullResetAfterMins int
	FullResetMins      int
	BufferMins         int
	Meals              []Meal
	StudyPhases        []string

	// Labels
	FallbackTopic  string
	ExamDayFocus   string
	FocusPrefix    string
	BreakActivity  string
	ResetActivity  string
	BufferActivity string
	RestActivity   string
}

// NewDefaultParams returns the production weights.
func NewDefaultParams() *Params {
	return &Params{
		ProximityScale:      100,
		ProximityOffset:     0.5,
		DifficultyStep:      0.3,
		RepetitionStep:      0.5,
		NeutralMastery:      domain.NeutralMasteryScore,
		BurnoutThreshold:    0.8,
		BurnoutFloorHours:   4,
		HardSubjectCapHours: 12,

		FullResetAfterMins: 180,
		FullResetMins:      60,
		BufferMins:         15,
		Meals: []Meal{
			{Hour: 8, Activity: "Breakfast & Hydration", Minutes: 45},
			{Hour: 13, Activity: "Lunch & Mindful Rest", Minutes: 60},
			{Hour: 20, Activity: "Dinner & Family Time", Minutes: 60},
		},
		StudyPhases: []string{
			"Deep Work: Concepts",
			"Active Recall Session",
			"Past Paper Sprint",
			"Feynman Technique Review",
		},

		FallbackTopic:  "Core Systems",
		ExamDayFocus:   "EXAM PREP",
		FocusPrefix:    "Focus: ",
		BreakActivity:  "Micro-Break (20-20-20 Rule)",
		ResetActivity:  "Full Reset (Walk/Nap/Shower)",
		BufferActivity: "Daily Reflection & Tomorrow's Goal",
		RestActivity:   "HOLIDAY / REST DAY",
	}
}

// examDayTemplate is the fixed routine for a day with an exam. %s in the
// first block is replaced by the subject.
var examDayTemplate = []domain.TimetableBlock{
	{Time: "05:00 - 06:30", Activity: "Final Formula Polish: %s", Kind: domain.BlockStudy, Minutes: 90},
	{Time: "07:00 - 08:00", Activity: "Energy Loading (Breakfast)", Kind: domain.BlockBreak, Minutes: 60},
	{Time: "10:00 - 13:00", Activity: "OFFICIAL EXAM SESSION", Kind: domain.BlockExam, Minutes: 180},
	{Time: "14:00 - 15:30", Activity: "Post-Exam Recovery & Meal", Kind: domain.BlockFullBreak, Minutes: 90},
	{Time: "16:00 - 18:00", Activity: "Next Subject Pre-Scan", Kind: domain.BlockStudy, Minutes: 120},
}

// restDayLabel spans the whole day.
const restDayLabel = "00:00 - 23:59"

// minutesPerDay is the length of the rest-day block.
const minutesPerDay = 24 * 60
