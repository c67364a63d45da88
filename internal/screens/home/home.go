package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/contentgen"
	"github.com/lamila/fundabuddy/internal/router"
	"github.com/lamila/fundabuddy/internal/screen"
	"github.com/lamila/fundabuddy/internal/screens/access"
	"github.com/lamila/fundabuddy/internal/screens/rewards"
	"github.com/lamila/fundabuddy/internal/screens/setup"
	"github.com/lamila/fundabuddy/internal/session"
	"github.com/lamila/fundabuddy/internal/ui/components"
	"github.com/lamila/fundabuddy/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	ctrl       *session.Controller
	generator  contentgen.Generator
	menu       components.Menu
	menuLabels []string
	llmReady   bool
	updateNote string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. llmReady controls whether the quiz
// entry is enabled or a key-missing banner is shown instead.
func New(ctrl *session.Controller, generator contentgen.Generator, llmReady bool) *HomeScreen {
	menuLabels := []string{"START LEARNING", "MY REWARDS", "ACCESSIBILITY", "QUIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Disabled: !llmReady, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(ctrl, generator)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: rewards.New(ctrl)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: access.New(ctrl)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			ctrl.RecordHistory("Today")
			return tea.Quit
		}},
	}

	return &HomeScreen{
		ctrl:       ctrl,
		generator:  generator,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
		llmReady:   llmReady,
	}
}

// SetUpdateNote shows a one-line notice that a newer release exists.
func (h *HomeScreen) SetUpdateNote(latestVersion string) {
	h.updateNote = fmt.Sprintf("New version %s available", latestVersion)
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.ctrl, cw))
	}

	stats := h.ctrl.Stats()
	sections = append(sections, renderStatsBar(stats.Score, stats.Streak, len(stats.Badges), cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw, h.disabledItems()))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, h.disabledItems()))
	}

	if !h.llmReady {
		sections = append(sections, renderLLMBanner(cw))
	}
	if h.updateNote != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(cw).
			Align(lipgloss.Center).
			Render(h.updateNote))
	}

	content := strings.Join(sections, "\n\n")

	return components.SplashFrame(content, width, height)
}

func (h *HomeScreen) disabledItems() map[int]bool {
	return map[int]bool{0: !h.llmReady}
}

const titleFull = ` ███████╗██╗   ██╗███╗   ██╗██████╗  █████╗
 ██╔════╝██║   ██║████╗  ██║██╔══██╗██╔══██╗
 █████╗  ██║   ██║██╔██╗ ██║██║  ██║███████║
 ██╔══╝  ██║   ██║██║╚██╗██║██║  ██║██╔══██║
 ██║     ╚██████╔╝██║ ╚████║██████╔╝██║  ██║
 ╚═╝      ╚═════╝ ╚═╝  ╚═══╝╚═════╝ ╚═╝  ╚═╝`

const titleCompact = "F · U · N · D · A"

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

func renderMascotBox(ctrl *session.Controller, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.MascotWithBubble(mascotVariant(ctrl.Mood()), ctrl.Message(), cw))
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

// renderStatsBar renders score, streak and badge count in a bordered box.
func renderStatsBar(score, streak, badgeCount, cw int, compact bool) string {
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Warm).Bold(true)
	badgeStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			scoreStyle.Render(fmt.Sprintf("★%d", score)),
			streakStyle.Render(fmt.Sprintf("🔥%d", streak)),
			badgeStyle.Render(fmt.Sprintf("🏅%d", badgeCount)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			scoreStyle.Render(fmt.Sprintf("★ %d POINTS", score)),
			streakStyle.Render(fmt.Sprintf("🔥 %d STREAK", streak)),
			badgeStyle.Render(fmt.Sprintf("🏅 %d BADGES", badgeCount)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

func renderMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	disabledBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if disabled[i] {
			buttons = append(buttons, disabledBtn.Render(label))
		} else {
			buttons = append(buttons, components.ChoiceButton(label, i == selected, buttonWidth))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int, disabled map[int]bool) string {
	var lines []string
	for i, label := range items {
		var line string
		if disabled[i] {
			line = lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render("   " + label)
		} else if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Accent).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderLLMBanner renders a warning banner when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Warm).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to start learning (see funda --help)")
}
