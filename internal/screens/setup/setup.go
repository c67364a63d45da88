// Package setup is the topic picker: grade, subject, difficulty and
// question type, then "Go!".
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/contentgen"
	"github.com/lamila/fundabuddy/internal/router"
	"github.com/lamila/fundabuddy/internal/screen"
	"github.com/lamila/fundabuddy/internal/screens/quiz"
	"github.com/lamila/fundabuddy/internal/session"
	"github.com/lamila/fundabuddy/internal/ui/components"
	"github.com/lamila/fundabuddy/internal/ui/layout"
	"github.com/lamila/fundabuddy/internal/ui/theme"
)

const (
	rowGrade = iota
	rowSubject
	rowDifficulty
	rowQuestionType
	rowGo
	rowCount
)

// SetupScreen lets the learner pick what to practice.
type SetupScreen struct {
	ctrl      *session.Controller
	generator contentgen.Generator
	row       int
	errMsg    string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen driving the given controller.
func New(ctrl *session.Controller, generator contentgen.Generator) *SetupScreen {
	return &SetupScreen{
		ctrl:      ctrl,
		generator: generator,
		row:       rowGrade,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "Choose Your Challenge"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Go!"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.row > 0 {
			s.row--
		}
	case "down", "j":
		if s.row < rowCount-1 {
			s.row++
		}
	case "left", "h":
		s.cycle(-1)
	case "right", "l":
		s.cycle(1)
	case "enter":
		if s.row == rowGo {
			return s.start()
		}
		s.row++
	}

	return s, nil
}

// cycle steps the value on the current row.
func (s *SetupScreen) cycle(dir int) {
	settings := s.ctrl.Settings()
	var err error

	switch s.row {
	case rowGrade:
		grades := contentgen.AllGrades()
		err = s.ctrl.ChooseGrade(grades[nextIndex(indexOf(grades, settings.Grade), dir, len(grades))])
	case rowSubject:
		subjects := contentgen.AllSubjects()
		err = s.ctrl.ChooseSubject(subjects[nextIndex(indexOf(subjects, settings.Subject), dir, len(subjects))])
	case rowDifficulty:
		diffs := contentgen.AllDifficulties()
		err = s.ctrl.ChooseDifficulty(diffs[nextIndex(indexOf(diffs, settings.Difficulty), dir, len(diffs))])
	case rowQuestionType:
		types := contentgen.AllQuestionTypes()
		err = s.ctrl.ChooseQuestionType(types[nextIndex(indexOf(types, settings.QuestionType), dir, len(types))])
	}
	if err != nil {
		s.errMsg = err.Error()
	} else {
		s.errMsg = ""
	}
}

func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	ctrl, generator := s.ctrl, s.generator
	quizScreen := quiz.New(ctrl, generator, func() screen.Screen {
		return New(ctrl, generator)
	})
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quizScreen}
	}
}

func indexOf[T comparable](list []T, v T) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return 0
}

func nextIndex(cur, dir, n int) int {
	return ((cur+dir)%n + n) % n
}

func (s *SetupScreen) View(width, height int) string {
	settings := s.ctrl.Settings()
	cw := components.ContentWidth(width)

	rows := []struct {
		label string
		value string
	}{
		{"Grade", fmt.Sprintf("Grade %d", settings.Grade)},
		{"Subject", string(settings.Subject)},
		{"Difficulty", string(settings.Difficulty)},
		{"Question type", string(settings.QuestionType)},
	}

	var b strings.Builder

	heading := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("What shall we practice today?")
	b.WriteString(heading)
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Width(15)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	activeValue := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	for i, row := range rows {
		marker := "  "
		value := valueStyle.Render("  " + row.value + "  ")
		if i == s.row {
			marker = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ ")
			value = activeValue.Render("◀ " + row.value + " ▶")
		}
		b.WriteString(marker + labelStyle.Render(row.label) + value)
		b.WriteString("\n\n")
	}

	b.WriteString("\n")
	b.WriteString(components.ChoiceButton("GO!", s.row == rowGo, 14))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	card := components.Card(b.String(), cw)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
