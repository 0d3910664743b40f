// Package app wires the Bubble Tea program: the root model, the screen
// router, and the shared header/footer chrome.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valvo/internal/coach"
	"github.com/abhisek/valvo/internal/config"
	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/proficiency"
	"github.com/abhisek/valvo/internal/router"
	"github.com/abhisek/valvo/internal/screens/home"
	"github.com/abhisek/valvo/internal/store"
	"github.com/abhisek/valvo/internal/transposition"
	"github.com/abhisek/valvo/internal/ui/layout"
)

// Deps carries everything the TUI needs, built once by the CLI entrypoint.
type Deps struct {
	Cfg      *config.Config
	Chart    *fingering.Chart
	Registry *transposition.Registry
	Tracks   proficiency.Repo
	Events   store.EventRepo
	Coach    *coach.Service
	Version  string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	deps   Deps
	width  int
	height int

	headlineScore int
	headlineBand  string
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Cfg, deps.Chart, deps.Registry, deps.Tracks, deps.Events, deps.Coach, deps.Version)
	m := AppModel{
		router: router.New(homeScreen),
		deps:   deps,
	}
	m.refreshHeadline()
	return m
}

// refreshHeadline re-reads the default track's standing for the header.
func (m *AppModel) refreshHeadline() {
	instrument := fingering.Instrument(m.deps.Cfg.Instrument)
	status, err := m.deps.Registry.DefaultTrack(context.Background(), instrument.NativePitch())
	if err != nil || status == nil {
		return
	}
	m.headlineScore = status.DisplayScore
	m.headlineBand = status.Band.Name()
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PopScreenMsg:
		cmd := m.router.Update(msg)
		// Returning from a session may have moved the headline score.
		m.refreshHeadline()
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens with their own esc handling (quit confirm, setup)
			// see it first; unclaimed esc pops the stack.
			if m.router.Depth() > 1 && !activeClaimsEsc(m.router.Active()) {
				cmd := m.router.Update(router.PopScreenMsg{})
				m.refreshHeadline()
				return m, cmd
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// escClaimer marks screens that consume esc themselves.
type escClaimer interface {
	ClaimsEsc() bool
}

func activeClaimsEsc(s any) bool {
	if c, ok := s.(escClaimer); ok {
		return c.ClaimsEsc()
	}
	return false
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

	header := layout.RenderHeader(title, m.headlineScore, m.headlineBand, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(interface{ KeyHints() []layout.KeyHint }); ok && provider.KeyHints() != nil {
		footerHints = provider.KeyHints()
		footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
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
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
