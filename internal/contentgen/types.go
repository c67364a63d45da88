package contentgen

// Grade is the learner's school grade.
type Grade int

const (
	Grade4 Grade = 4
	Grade5 Grade = 5
	Grade6 Grade = 6
)

// AllGrades returns the supported grades in display order.
func AllGrades() []Grade {
	return []Grade{Grade4, Grade5, Grade6}
}

// Subject is the curriculum area a question is generated for.
type Subject string

const (
	SubjectMathematics Subject = "Mathematics"
	SubjectEnglishFAL  Subject = "English FAL"
	SubjectLifeSkills  Subject = "Life Skills"
	SubjectFillWords   Subject = "Fill-in-the-missing-words"
)

// AllSubjects returns the supported subjects in display order.
func AllSubjects() []Subject {
	return []Subject{SubjectMathematics, SubjectEnglishFAL, SubjectLifeSkills, SubjectFillWords}
}

// Difficulty is the requested challenge level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// AllDifficulties returns the supported difficulties in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// QuestionType is the answer style requested from the provider.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "Multiple Choice"
	TypeShortAnswer    QuestionType = "Short Answer"
	TypeFillBlank      QuestionType = "Fill-in-the-blank"
)

// AllQuestionTypes returns the supported question types in display order.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{TypeMultipleChoice, TypeShortAnswer, TypeFillBlank}
}

// Settings is the configuration for a single generation request.
// It is immutable per request; only explicit setup-phase choices change it.
type Settings struct {
	Grade        Grade
	Subject      Subject
	Difficulty   Difficulty
	QuestionType QuestionType
}

// DefaultSettings returns the settings shown when a session starts.
func DefaultSettings() Settings {
	return Settings{
		Grade:        Grade4,
		Subject:      SubjectMathematics,
		Difficulty:   DifficultyMedium,
		QuestionType: TypeMultipleChoice,
	}
}

// Kind describes how the learner answers a question.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindShortAnswer    Kind = "short-answer"
	KindFillBlank      Kind = "fill-blank"
)

// Question is a generated question ready for display.
// Immutable once created; discarded when a new question is requested.
type Question struct {
	// ID uniquely identifies this question instance.
	ID string

	// Text is the question prompt shown to the learner.
	Text string

	// Kind indicates how the learner answers.
	Kind Kind

	// Options is populated only when Kind is KindMultipleChoice.
	Options []string

	// CorrectAnswer is the canonical answer as a string. For multiple
	// choice it matches one of Options case-insensitively (the provider
	// adapter enforces this; the evaluator does not re-check it).
	CorrectAnswer string

	// Hint is the "Help Me Understand" content. It guides the thinking
	// process without revealing the answer.
	Hint string

	// CulturalContext is a short tag of the South African setting used,
	// e.g. "Tuckshop Math". Empty when the provider omits it.
	CulturalContext string
}
