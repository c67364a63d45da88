package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/badges"
	"github.com/lamila/fundabuddy/internal/contentgen"
	"github.com/lamila/fundabuddy/internal/progress"
	"github.com/lamila/fundabuddy/internal/session"
	"github.com/lamila/fundabuddy/internal/ui/components"
	"github.com/lamila/fundabuddy/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch {
	case q.ctrl.Phase() == session.PhaseLoading:
		return q.renderLoading(width, height)
	case q.ctrl.Feedback() != session.FeedbackIdle:
		return q.renderFeedback(width, height)
	default:
		return q.renderQuestion(width, height)
	}
}

func (q *QuizScreen) renderLoading(width, height int) string {
	access := q.ctrl.Access()

	var sections []string
	if !access.SimpleMode {
		sections = append(sections, components.RenderMascot(components.MascotThinking))
	}
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(q.ctrl.Message()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	question := q.ctrl.Question()
	if question == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Getting ready...")
	}

	settings := q.ctrl.Settings()
	access := q.ctrl.Access()

	var b strings.Builder

	// Info line: what we're practicing plus the question's local flavor.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · Grade %d · %s", settings.Subject, settings.Grade, settings.Difficulty))

	infoLine := infoLeft
	if question.CulturalContext != "" {
		infoRight := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(question.CulturalContext)
		rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
		if rightPad > 0 {
			infoLine += strings.Repeat(" ", rightPad) + infoRight
		}
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	// Question text.
	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	if access.LargeText {
		b.WriteString("\n")
		b.WriteString(questionStyle.Render(spaceOut(question.Text)))
		b.WriteString("\n")
	} else {
		b.WriteString(questionStyle.Render(question.Text))
	}
	b.WriteString("\n\n")

	// Answer area.
	if question.Kind == contentgen.KindMultipleChoice {
		b.WriteString(q.renderOptions(width, question))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + q.input.View())
		b.WriteString(answerLine)
	}
	b.WriteString("\n\n")

	// Hint.
	if q.ctrl.HintShown() {
		hint := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Italic(true).
			Render("💡 " + question.Hint)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
		b.WriteString("\n\n")
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Tab for a hint"))
		b.WriteString("\n\n")
	}

	if q.flash != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warm).
			Render(q.flash))
		b.WriteString("\n")
	}

	return b.String()
}

func (q *QuizScreen) renderOptions(width int, question *contentgen.Question) string {
	var b strings.Builder
	for i, option := range question.Options {
		prefix := "  "
		if i == q.mcSelected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, option)

		if i == q.mcSelected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}

	selectLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\nSelect (1-4) or use arrows + Enter")
	b.WriteString(selectLine)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (q *QuizScreen) renderFeedback(width, height int) string {
	question := q.ctrl.Question()
	access := q.ctrl.Access()

	var b strings.Builder
	b.WriteString("\n\n")

	if q.ctrl.Feedback() == session.FeedbackCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Correct! +%d points", progress.PointsPerCorrect)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if question != nil {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("The answer was: %s", question.CorrectAnswer)))
		}
	}
	b.WriteString("\n\n")

	// Newly unlocked badges.
	for _, id := range q.ctrl.LastUnlocked() {
		badge, ok := badges.Lookup(id)
		if !ok {
			continue
		}
		line := lipgloss.NewStyle().
			Foreground(lipgloss.Color(badge.Color)).
			Bold(true).
			Render(fmt.Sprintf("%s  Badge unlocked: %s!", badge.Icon, badge.Name))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	if len(q.ctrl.LastUnlocked()) > 0 {
		b.WriteString("\n")
	}

	// Mascot reaction.
	if !access.SimpleMode {
		mascot := components.MascotWithBubble(mascotVariant(q.ctrl.Mood()), q.ctrl.Message(), width-8)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, mascot))
		b.WriteString("\n\n")
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(q.ctrl.Message()))
		b.WriteString("\n\n")
	}

	// Action buttons.
	next := components.ChoiceButton("NEXT QUESTION", q.fbSelected == fbNextQuestion, 20)
	change := components.ChoiceButton("CHANGE TOPIC", q.fbSelected == fbChangeTopic, 20)
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, next, "  ", change)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, buttons))

	return b.String()
}

func mascotVariant(m session.Mood) components.MascotVariant {
	switch m {
	case session.MoodCelebrating:
		return components.MascotCelebrating
	case session.MoodThinking:
		return components.MascotThinking
	case session.MoodNeutral:
		return components.MascotNeutral
	default:
		return components.MascotHappy
	}
}

// spaceOut widens text for the large-text preference. Terminal cells
// cannot scale, so letter spacing is the next best thing.
func spaceOut(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
