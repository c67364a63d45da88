package session

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lamila/fundabuddy/internal/badges"
	"github.com/lamila/fundabuddy/internal/contentgen"
	"github.com/lamila/fundabuddy/internal/progress"
	"github.com/lamila/fundabuddy/internal/speech"
)

// Controller owns all mutable session state: settings, the current
// question, the progress ledger, accessibility preferences and the
// phase machine. It is the single writer; presentation reads snapshots
// and drives changes only through the operations below.
//
// The controller is not goroutine-safe. The Bubble Tea update loop is
// the single thread of control; generation results re-enter through
// ApplyGenerated with a sequence number so stale responses from an
// abandoned request are discarded.
type Controller struct {
	settings contentgen.Settings
	access   Accessibility
	ledger   *progress.Ledger
	engine   *badges.Engine
	speaker  speech.Speaker
	picker   *picker

	phase    Phase
	feedback Feedback

	question   *contentgen.Question
	userAnswer string
	hintShown  bool
	genSeq     int

	mood         Mood
	message      string
	lastUnlocked []string

	sessionID string
}

// Option configures a Controller.
type Option func(*Controller)

// WithSpeaker sets the speech engine. Defaults to speech.Null.
func WithSpeaker(s speech.Speaker) Option {
	return func(c *Controller) { c.speaker = s }
}

// WithRandSource sets the RNG source for mascot message selection.
// Inject a fixed seed for deterministic tests.
func WithRandSource(src rand.Source) Option {
	return func(c *Controller) { c.picker = newPicker(src) }
}

// New creates a controller in the setup phase with default settings,
// default accessibility preferences and a fresh ledger.
func New(opts ...Option) *Controller {
	c := &Controller{
		settings:  contentgen.DefaultSettings(),
		access:    DefaultAccessibility(),
		ledger:    progress.NewLedger(),
		engine:    badges.NewEngine(),
		speaker:   speech.Null{},
		phase:     PhaseSetup,
		feedback:  FeedbackIdle,
		mood:      MoodHappy,
		message:   WelcomeMessage(),
		sessionID: uuid.New().String(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.picker == nil {
		c.picker = newPicker(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return c
}

// SessionID returns the UUID for this session.
func (c *Controller) SessionID() string { return c.sessionID }

// --- Read model -----------------------------------------------------

func (c *Controller) Phase() Phase       { return c.phase }
func (c *Controller) Feedback() Feedback { return c.feedback }

// Question returns the current question, or nil outside the quiz phase.
func (c *Controller) Question() *contentgen.Question { return c.question }

// UserAnswer returns the answer selected or typed for the current question.
func (c *Controller) UserAnswer() string { return c.userAnswer }

// HintShown reports whether the hint has been revealed for the current question.
func (c *Controller) HintShown() bool { return c.hintShown }

// Settings returns the current generation settings.
func (c *Controller) Settings() contentgen.Settings { return c.settings }

// Access returns the current accessibility preferences.
func (c *Controller) Access() Accessibility { return c.access }

// Stats returns a read-only snapshot of the progress ledger.
func (c *Controller) Stats() progress.Snapshot { return c.ledger.Snapshot() }

// Mood returns the mascot's current mood.
func (c *Controller) Mood() Mood { return c.mood }

// Message returns the mascot's current message.
func (c *Controller) Message() string { return c.message }

// LastUnlocked returns the badges unlocked by the most recent answer.
func (c *Controller) LastUnlocked() []string { return c.lastUnlocked }

// --- Setup operations -----------------------------------------------

// ChooseGrade sets the grade. Valid only during setup.
func (c *Controller) ChooseGrade(g contentgen.Grade) error {
	if c.phase != PhaseSetup {
		return &InvalidTransitionError{Op: "chooseGrade", Phase: c.phase, Feedback: c.feedback}
	}
	c.settings.Grade = g
	return nil
}

// ChooseSubject sets the subject. Valid only during setup.
func (c *Controller) ChooseSubject(s contentgen.Subject) error {
	if c.phase != PhaseSetup {
		return &InvalidTransitionError{Op: "chooseSubject", Phase: c.phase, Feedback: c.feedback}
	}
	c.settings.Subject = s
	return nil
}

// ChooseDifficulty sets the difficulty. Valid only during setup.
func (c *Controller) ChooseDifficulty(d contentgen.Difficulty) error {
	if c.phase != PhaseSetup {
		return &InvalidTransitionError{Op: "chooseDifficulty", Phase: c.phase, Feedback: c.feedback}
	}
	c.settings.Difficulty = d
	return nil
}

// ChooseQuestionType sets the question type. Valid only during setup.
func (c *Controller) ChooseQuestionType(qt contentgen.QuestionType) error {
	if c.phase != PhaseSetup {
		return &InvalidTransitionError{Op: "chooseQuestionType", Phase: c.phase, Feedback: c.feedback}
	}
	c.settings.QuestionType = qt
	return nil
}

// --- Generation -----------------------------------------------------

// BeginGenerate starts a new generation request. Valid from setup (the
// initial "Go!") and from either feedback state ("Next Question").
// It clears the previous question, the learner's answer, hint
// visibility and feedback so nothing leaks across questions, and
// returns the request sequence number the eventual result must carry.
func (c *Controller) BeginGenerate() (int, contentgen.Settings, error) {
	ok := c.phase == PhaseSetup || (c.phase == PhaseQuiz && c.feedback != FeedbackIdle)
	if !ok {
		return 0, contentgen.Settings{}, &InvalidTransitionError{Op: "generate", Phase: c.phase, Feedback: c.feedback}
	}

	c.question = nil
	c.userAnswer = ""
	c.hintShown = false
	c.feedback = FeedbackIdle
	c.lastUnlocked = nil
	c.phase = PhaseLoading
	c.genSeq++

	c.mood = MoodThinking
	c.message = c.picker.pick(loadingMessages)

	return c.genSeq, c.settings, nil
}

// ApplyGenerated delivers a generation result. Returns false when the
// result is stale (a newer request superseded it, or the controller is
// no longer loading) and was discarded; only the response matching the
// most recent request is applied.
//
// A failed generation is recovered locally: the fixed fallback question
// is substituted so the learner can retry, and the ledger is untouched
// until that question is itself answered.
func (c *Controller) ApplyGenerated(seq int, q *contentgen.Question, err error) bool {
	if c.phase != PhaseLoading || seq != c.genSeq {
		return false
	}

	if err != nil || q == nil {
		c.question = contentgen.Fallback()
		c.mood = MoodNeutral
		c.message = "Oops! My brain got fuzzy. Try again?"
	} else {
		// Last line of defense for generators that skip the adapter's
		// placeholder fill.
		if q.Kind == contentgen.KindMultipleChoice && len(q.Options) == 0 {
			q.Options = append([]string(nil), contentgen.PlaceholderOptions...)
		}
		c.question = q
		c.mood = MoodHappy
		c.message = "Here's a new challenge!"
	}

	c.phase = PhaseQuiz
	c.feedback = FeedbackIdle
	c.speakIfEnabled(c.question.Text)
	return true
}

// --- Quiz operations ------------------------------------------------

// SubmitAnswer evaluates the learner's answer, updates the ledger,
// re-checks badge rules and enters the matching feedback state.
// Rejected outside quiz/idle; empty answers are rejected so the
// submit-disabled UI rule cannot be bypassed.
func (c *Controller) SubmitAnswer(answer string) (bool, error) {
	if c.phase != PhaseQuiz || c.feedback != FeedbackIdle {
		return false, &InvalidTransitionError{Op: "submitAnswer", Phase: c.phase, Feedback: c.feedback}
	}
	if strings.TrimSpace(answer) == "" {
		return false, ErrEmptyAnswer{}
	}

	c.userAnswer = answer
	correct := contentgen.Evaluate(answer, c.question)

	delta := c.ledger.ApplyResult(correct)
	c.lastUnlocked = c.engine.Evaluate(badges.Context{
		Subject:        c.settings.Subject,
		Correct:        correct,
		AnsweredBefore: delta.AnsweredBefore,
		Stats:          c.ledger.Snapshot(),
	}, c.ledger.UnlockBadge)

	if correct {
		c.feedback = FeedbackCorrect
		c.mood = MoodCelebrating
		c.message = c.picker.pick(correctMessages)
	} else {
		c.feedback = FeedbackIncorrect
		c.mood = MoodNeutral
		c.message = c.picker.pick(incorrectMessages)
	}
	c.speakIfEnabled(c.message)

	return correct, nil
}

// RevealHint shows the hint for the current question. Valid only while
// a question is awaiting an answer.
func (c *Controller) RevealHint() error {
	if c.phase != PhaseQuiz || c.feedback != FeedbackIdle {
		return &InvalidTransitionError{Op: "revealHint", Phase: c.phase, Feedback: c.feedback}
	}
	c.hintShown = true
	return nil
}

// ChangeTopic returns to setup. Valid only from a feedback state; the
// current question is discarded.
func (c *Controller) ChangeTopic() error {
	if c.phase != PhaseQuiz || c.feedback == FeedbackIdle {
		return &InvalidTransitionError{Op: "changeTopic", Phase: c.phase, Feedback: c.feedback}
	}
	c.question = nil
	c.userAnswer = ""
	c.hintShown = false
	c.feedback = FeedbackIdle
	c.lastUnlocked = nil
	c.phase = PhaseSetup
	c.mood = MoodHappy
	c.message = "What shall we practice next?"
	return nil
}

// --- Cross-phase operations -----------------------------------------

// ToggleAccessibility flips one accessibility preference. Allowed in
// any phase; has no effect on the ledger or the current question.
func (c *Controller) ToggleAccessibility(key AccessKey) {
	c.access.toggle(key)
}

// Speak reads text aloud when audio is enabled. Fire-and-forget; a new
// utterance cancels the previous one.
func (c *Controller) Speak(text string) {
	c.speakIfEnabled(text)
}

// RecordHistory appends the current score to the history series.
// Deliberately decoupled from SubmitAnswer; callers decide when a
// sample is worth charting.
func (c *Controller) RecordHistory(label string) {
	c.ledger.AppendHistory(label)
}

func (c *Controller) speakIfEnabled(text string) {
	if c.access.AudioEnabled {
		c.speaker.Speak(text)
	}
}
