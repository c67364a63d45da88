// Package quiz is the active question screen: it drives generation,
// answer submission, hints, feedback and speech through the session
// controller.
package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lamila/fundabuddy/internal/contentgen"
	"github.com/lamila/fundabuddy/internal/router"
	"github.com/lamila/fundabuddy/internal/screen"
	"github.com/lamila/fundabuddy/internal/session"
	"github.com/lamila/fundabuddy/internal/ui/components"
	"github.com/lamila/fundabuddy/internal/ui/layout"
)

const generateTimeout = 30 * time.Second

// questionReadyMsg delivers a generation result back to the update loop.
// Seq ties the result to the request that started it; the controller
// discards anything stale.
type questionReadyMsg struct {
	Seq      int
	Question *contentgen.Question
	Err      error
}

const (
	fbNextQuestion = iota
	fbChangeTopic
)

// QuizScreen shows the current question and its feedback states.
type QuizScreen struct {
	ctrl         *session.Controller
	generator    contentgen.Generator
	setupFactory func() screen.Screen
	input        components.TextInput
	mcSelected   int
	fbSelected   int
	flash        string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen. The first generation request starts in Init.
// setupFactory produces the screen shown after "change topic"; a factory
// avoids an import cycle with the setup package.
func New(ctrl *session.Controller, generator contentgen.Generator, setupFactory func() screen.Screen) *QuizScreen {
	return &QuizScreen{
		ctrl:         ctrl,
		generator:    generator,
		setupFactory: setupFactory,
		input:        components.NewTextInput("Type your answer...", 40),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return tea.Batch(q.beginGenerate(), q.input.Init())
}

func (q *QuizScreen) Title() string {
	return string(q.ctrl.Settings().Subject)
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case q.ctrl.Phase() == session.PhaseLoading:
		return []layout.KeyHint{{Key: "...", Description: "Thinking"}}
	case q.ctrl.Feedback() != session.FeedbackIdle:
		return []layout.KeyHint{
			{Key: "←→", Description: "Choose"},
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Change topic"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Hint"},
			{Key: "Ctrl+T", Description: "Read aloud"},
		}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return q.handleQuestionReady(msg)
	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	// Forward everything else to the text input while answering.
	if q.answeringText() {
		var cmd tea.Cmd
		q.input, cmd = q.input.Update(msg)
		return q, cmd
	}

	return q, nil
}

func (q *QuizScreen) answeringText() bool {
	question := q.ctrl.Question()
	return q.ctrl.Phase() == session.PhaseQuiz &&
		q.ctrl.Feedback() == session.FeedbackIdle &&
		question != nil &&
		question.Kind != contentgen.KindMultipleChoice
}

// beginGenerate starts a generation request via the controller and
// returns the command that runs it off the update loop.
func (q *QuizScreen) beginGenerate() tea.Cmd {
	seq, settings, err := q.ctrl.BeginGenerate()
	if err != nil {
		return nil
	}

	q.flash = ""
	generator := q.generator
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
		defer cancel()
		question, genErr := generator.Generate(ctx, settings)
		return questionReadyMsg{Seq: seq, Question: question, Err: genErr}
	}
}

func (q *QuizScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if !q.ctrl.ApplyGenerated(msg.Seq, msg.Question, msg.Err) {
		return q, nil
	}

	q.mcSelected = 0
	q.fbSelected = fbNextQuestion
	q.input = components.NewTextInput("Type your answer...", 40)
	return q, q.input.Init()
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.ctrl.Phase() == session.PhaseLoading {
		return q, nil
	}

	if q.ctrl.Feedback() != session.FeedbackIdle {
		return q.handleFeedbackKey(msg)
	}

	question := q.ctrl.Question()
	if question == nil {
		return q, nil
	}

	key := msg.String()
	switch key {
	case "enter":
		return q.submit()
	case "tab":
		_ = q.ctrl.RevealHint()
		return q, nil
	case "ctrl+t":
		q.ctrl.Speak(question.Text)
		return q, nil
	}

	if question.Kind == contentgen.KindMultipleChoice {
		switch key {
		case "up", "k":
			if q.mcSelected > 0 {
				q.mcSelected--
			}
		case "down", "j":
			if q.mcSelected < len(question.Options)-1 {
				q.mcSelected++
			}
		case "1", "2", "3", "4":
			idx := int(key[0] - '1')
			if idx < len(question.Options) {
				q.mcSelected = idx
				return q.submit()
			}
		}
		return q, nil
	}

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	return q, cmd
}

func (q *QuizScreen) handleFeedbackKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "h", "l", "tab":
		if q.fbSelected == fbNextQuestion {
			q.fbSelected = fbChangeTopic
		} else {
			q.fbSelected = fbNextQuestion
		}
		return q, nil
	case "enter":
		if q.fbSelected == fbChangeTopic {
			return q.changeTopic()
		}
		return q, q.beginGenerate()
	case "n":
		return q, q.beginGenerate()
	case "c", "esc":
		return q.changeTopic()
	}
	return q, nil
}

func (q *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	question := q.ctrl.Question()
	if question == nil {
		return q, nil
	}

	var answer string
	if question.Kind == contentgen.KindMultipleChoice {
		if q.mcSelected >= 0 && q.mcSelected < len(question.Options) {
			answer = question.Options[q.mcSelected]
		}
	} else {
		answer = q.input.Value()
	}

	correct, err := q.ctrl.SubmitAnswer(answer)
	if err != nil {
		if errors.Is(err, session.ErrEmptyAnswer{}) {
			q.flash = "Type an answer first!"
		}
		return q, nil
	}

	q.flash = ""
	q.fbSelected = fbNextQuestion
	q.input.Submit(correct)
	return q, nil
}

func (q *QuizScreen) changeTopic() (screen.Screen, tea.Cmd) {
	if err := q.ctrl.ChangeTopic(); err != nil {
		return q, nil
	}
	setupScreen := q.setupFactory()
	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: setupScreen}
	}
}
