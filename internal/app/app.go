package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lamila/fundabuddy/internal/contentgen"
	"github.com/lamila/fundabuddy/internal/router"
	"github.com/lamila/fundabuddy/internal/screen"
	"github.com/lamila/fundabuddy/internal/screens/home"
	"github.com/lamila/fundabuddy/internal/screens/welcome"
	"github.com/lamila/fundabuddy/internal/selfupdate"
	"github.com/lamila/fundabuddy/internal/session"
	"github.com/lamila/fundabuddy/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Controller *session.Controller
	Generator  contentgen.Generator

	// LLMReady disables the quiz entry when no provider is configured.
	LLMReady bool

	// Version is the running build version, used for the background
	// update check. Empty disables the check.
	Version string
}

type updateCheckMsg struct {
	latest string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts       Options
	router     *router.Router
	homeScreen *home.HomeScreen
	width      int
	height     int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Controller, opts.Generator, opts.LLMReady)
	splash := welcome.New(func() screen.Screen { return homeScreen })
	return AppModel{
		opts:       opts,
		router:     router.New(splash),
		homeScreen: homeScreen,
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Active().Init(),
		m.checkForUpdate(),
	)
}

// checkForUpdate queries the release feed in the background. Failures
// are silent; the note is cosmetic.
func (m AppModel) checkForUpdate() tea.Cmd {
	version := m.opts.Version
	if version == "" || version == "(devel)" {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		checker := selfupdate.NewChecker()
		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil || !result.UpdateAvailable {
			return nil
		}
		return updateCheckMsg{latest: result.LatestVersion}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case updateCheckMsg:
		m.homeScreen.SetUpdateNote(msg.latest)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.opts.Controller.RecordHistory("Today")
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The welcome splash renders frameless.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	stats := m.opts.Controller.Stats()
	header := layout.RenderHeader(title, stats.Score, stats.Streak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
