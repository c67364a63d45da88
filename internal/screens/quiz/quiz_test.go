package quiz

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/lamila/fundabuddy/internal/contentgen"
	"github.com/lamila/fundabuddy/internal/router"
	"github.com/lamila/fundabuddy/internal/screen"
	"github.com/lamila/fundabuddy/internal/session"
)

// stubGenerator returns a fixed question or error and counts calls.
type stubGenerator struct {
	question *contentgen.Question
	err      error
	calls    int
}

func (g *stubGenerator) Generate(context.Context, contentgen.Settings) (*contentgen.Question, error) {
	g.calls++
	return g.question, g.err
}

// stubScreen stands in for the setup screen in factory tests.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "setup" }
func (s *stubScreen) Title() string                           { return "Setup" }

func mcQuestion() *contentgen.Question {
	return &contentgen.Question{
		ID:            "q1",
		Text:          "What is 2 + 2?",
		Kind:          contentgen.KindMultipleChoice,
		Options:       []string{"4", "5", "6", "7"},
		CorrectAnswer: "4",
		Hint:          "Count on your fingers.",
	}
}

func shortQuestion() *contentgen.Question {
	return &contentgen.Question{
		ID:            "q2",
		Text:          "What is 3 + 3?",
		Kind:          contentgen.KindShortAnswer,
		CorrectAnswer: "6",
		Hint:          "Double it.",
	}
}

func newTestQuiz(gen *stubGenerator) (*QuizScreen, *session.Controller) {
	ctrl := session.New()
	q := New(ctrl, gen, func() screen.Screen { return &stubScreen{} })
	return q, ctrl
}

// deliver runs one full generate round: request, then the ready message.
func deliver(t *testing.T, q *QuizScreen) {
	t.Helper()
	cmd := q.beginGenerate()
	if cmd == nil {
		t.Fatal("beginGenerate returned no command")
	}
	msg := cmd()
	ready, ok := msg.(questionReadyMsg)
	if !ok {
		t.Fatalf("expected questionReadyMsg, got %T", msg)
	}
	q.Update(ready)
}

func press(q *QuizScreen, key rune) (screen.Screen, tea.Cmd) {
	return q.Update(tea.KeyPressMsg{Code: key})
}

func TestGenerateDeliversQuestion(t *testing.T) {
	gen := &stubGenerator{question: mcQuestion()}
	q, ctrl := newTestQuiz(gen)

	deliver(t, q)

	if ctrl.Phase() != session.PhaseQuiz {
		t.Fatalf("expected quiz phase, got %s", ctrl.Phase())
	}
	if ctrl.Question() == nil || ctrl.Question().ID != "q1" {
		t.Errorf("expected question q1, got %+v", ctrl.Question())
	}
	if gen.calls != 1 {
		t.Errorf("expected 1 generator call, got %d", gen.calls)
	}
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	gen := &stubGenerator{question: mcQuestion()}
	q, ctrl := newTestQuiz(gen)

	// Request started, result not yet delivered.
	if cmd := q.beginGenerate(); cmd == nil {
		t.Fatal("beginGenerate returned no command")
	}
	if ctrl.Phase() != session.PhaseLoading {
		t.Fatalf("expected loading phase, got %s", ctrl.Phase())
	}

	_, cmd := q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("keypress while loading should produce no command")
	}
	if ctrl.Phase() != session.PhaseLoading {
		t.Errorf("phase changed by keypress while loading: %s", ctrl.Phase())
	}
}

func TestDigitSubmitsOption(t *testing.T) {
	gen := &stubGenerator{question: mcQuestion()}
	q, ctrl := newTestQuiz(gen)
	deliver(t, q)

	press(q, '1') // option 1 is "4", the correct answer

	if ctrl.Feedback() != session.FeedbackCorrect {
		t.Fatalf("expected correct feedback, got %s", ctrl.Feedback())
	}
	if ctrl.Stats().Score != 10 {
		t.Errorf("expected score 10, got %d", ctrl.Stats().Score)
	}
}

func TestArrowSelectionThenEnter(t *testing.T) {
	gen := &stubGenerator{question: mcQuestion()}
	q, ctrl := newTestQuiz(gen)
	deliver(t, q)

	q.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // option 2 is "5", wrong

	if ctrl.Feedback() != session.FeedbackIncorrect {
		t.Fatalf("expected incorrect feedback, got %s", ctrl.Feedback())
	}
	if ctrl.Stats().Streak != 0 {
		t.Errorf("expected streak reset, got %d", ctrl.Stats().Streak)
	}
}

func TestEmptyTextAnswerFlashes(t *testing.T) {
	gen := &stubGenerator{question: shortQuestion()}
	q, ctrl := newTestQuiz(gen)
	deliver(t, q)

	q.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if ctrl.Feedback() != session.FeedbackIdle {
		t.Fatalf("empty answer should not reach feedback, got %s", ctrl.Feedback())
	}
	if q.flash == "" {
		t.Error("expected a flash message for empty answer")
	}
}

func TestTabRevealsHint(t *testing.T) {
	gen := &stubGenerator{question: mcQuestion()}
	q, ctrl := newTestQuiz(gen)
	deliver(t, q)

	if ctrl.HintShown() {
		t.Fatal("hint should start hidden")
	}
	q.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if !ctrl.HintShown() {
		t.Error("tab should reveal the hint")
	}
}

func TestNextQuestionStartsNewGeneration(t *testing.T) {
	gen := &stubGenerator{question: mcQuestion()}
	q, ctrl := newTestQuiz(gen)
	deliver(t, q)
	press(q, '1')

	_, cmd := press(q, 'n')
	if cmd == nil {
		t.Fatal("expected a generation command")
	}
	if ctrl.Phase() != session.PhaseLoading {
		t.Fatalf("expected loading phase, got %s", ctrl.Phase())
	}

	// Running the command delivers the next question.
	msg := cmd()
	q.Update(msg)
	if gen.calls != 2 {
		t.Errorf("expected 2 generator calls, got %d", gen.calls)
	}
	if ctrl.Feedback() != session.FeedbackIdle {
		t.Errorf("new question should reset feedback, got %s", ctrl.Feedback())
	}
}

func TestChangeTopicReturnsToSetup(t *testing.T) {
	gen := &stubGenerator{question: mcQuestion()}
	q, ctrl := newTestQuiz(gen)
	deliver(t, q)
	press(q, '1')

	_, cmd := q.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command from change topic")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replaceMsg.Screen == nil {
		t.Error("replacement screen should not be nil")
	}
	if ctrl.Phase() != session.PhaseSetup {
		t.Errorf("expected setup phase, got %s", ctrl.Phase())
	}
}

func TestEscIgnoredBeforeFeedback(t *testing.T) {
	gen := &stubGenerator{question: mcQuestion()}
	q, ctrl := newTestQuiz(gen)
	deliver(t, q)

	_, cmd := q.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc before answering should produce no command")
	}
	if ctrl.Phase() != session.PhaseQuiz {
		t.Errorf("expected quiz phase, got %s", ctrl.Phase())
	}
}

func TestGenerationErrorShowsFallback(t *testing.T) {
	gen := &stubGenerator{err: errors.New("provider down")}
	q, ctrl := newTestQuiz(gen)

	deliver(t, q)

	if ctrl.Question() == nil || ctrl.Question().ID != contentgen.FallbackID {
		t.Fatalf("expected fallback question, got %+v", ctrl.Question())
	}
	// The fallback is answerable through the normal path.
	press(q, '1') // "Ready!"
	if ctrl.Feedback() != session.FeedbackCorrect {
		t.Errorf("expected correct feedback on fallback, got %s", ctrl.Feedback())
	}
}

func TestStaleResultIgnoredAfterNewRequest(t *testing.T) {
	gen := &stubGenerator{question: mcQuestion()}
	q, ctrl := newTestQuiz(gen)

	cmd := q.beginGenerate()
	stale := cmd().(questionReadyMsg)

	// Answer the first question, then request another before the stale
	// message arrives.
	q.Update(stale)
	press(q, '1')
	press(q, 'n')

	q.Update(stale)
	if ctrl.Phase() != session.PhaseLoading {
		t.Errorf("stale result should be discarded, phase: %s", ctrl.Phase())
	}
}

func TestViewShowsOptions(t *testing.T) {
	gen := &stubGenerator{question: mcQuestion()}
	q, _ := newTestQuiz(gen)
	deliver(t, q)

	view := q.View(80, 24)
	for _, want := range []string{"What is 2 + 2?", "1) 4", "2) 5"} {
		if !containsStr(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func containsStr(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
