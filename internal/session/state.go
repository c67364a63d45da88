package session

import "fmt"

// Phase is the coarse state of the session controller. It gates which
// operations are valid; invalid transitions are rejected with a typed
// error rather than relying on disabled controls.
type Phase int

const (
	// PhaseSetup is the topic/grade/difficulty selection state.
	PhaseSetup Phase = iota

	// PhaseLoading means a generation request is outstanding. Answer
	// submission and topic changes are rejected while loading.
	PhaseLoading

	// PhaseQuiz means a question is displayed, possibly with feedback.
	PhaseQuiz
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseLoading:
		return "loading"
	case PhaseQuiz:
		return "quiz"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Feedback is the sub-state while in PhaseQuiz.
type Feedback int

const (
	// FeedbackIdle means the learner has not answered yet.
	FeedbackIdle Feedback = iota

	// FeedbackCorrect and FeedbackIncorrect are terminal for the current
	// question; the learner chooses "next question" or "change topic".
	FeedbackCorrect
	FeedbackIncorrect
)

func (f Feedback) String() string {
	switch f {
	case FeedbackIdle:
		return "idle"
	case FeedbackCorrect:
		return "correct"
	case FeedbackIncorrect:
		return "incorrect"
	default:
		return fmt.Sprintf("feedback(%d)", int(f))
	}
}

// InvalidTransitionError reports an operation attempted in a phase that
// does not allow it.
type InvalidTransitionError struct {
	Op       string
	Phase    Phase
	Feedback Feedback
}

func (e *InvalidTransitionError) Error() string {
	if e.Phase == PhaseQuiz {
		return fmt.Sprintf("operation %q not allowed in phase %s/%s", e.Op, e.Phase, e.Feedback)
	}
	return fmt.Sprintf("operation %q not allowed in phase %s", e.Op, e.Phase)
}

// ErrEmptyAnswer is returned when an empty answer is submitted. The UI
// disables the submit action for empty input; the controller enforces
// the same rule so the invariant cannot be bypassed.
type ErrEmptyAnswer struct{}

func (ErrEmptyAnswer) Error() string { return "answer is empty" }
