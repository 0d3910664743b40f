// Package history lists recent practice sessions from the event log.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valvo/internal/router"
	"github.com/abhisek/valvo/internal/screen"
	"github.com/abhisek/valvo/internal/store"
	"github.com/abhisek/valvo/internal/ui/layout"
	"github.com/abhisek/valvo/internal/ui/theme"
)

// historyLimit caps how many sessions the screen loads.
const historyLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Err      error
}

// Screen displays past sessions.
type Screen struct {
	events   store.EventRepo
	sessions []store.SessionSummaryRecord
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a history screen.
func New(events store.EventRepo) *Screen {
	return &Screen{events: events}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.events.RecentSessions(context.Background(), historyLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions}
	}
}

func (s *Screen) Title() string {
	return "History"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Window the list around the cursor so long histories stay navigable.
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}

	for i := start; i < len(s.sessions) && i < start+visible; i++ {
		rec := s.sessions[i]
		dateStr := rec.Timestamp.Format("Jan 02, 2006")
		mins := rec.DurationSecs / 60
		secs := rec.DurationSecs % 60

		var accuracy float64
		if rec.QuestionsServed > 0 {
			accuracy = float64(rec.CorrectAnswers) / float64(rec.QuestionsServed) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d:%02d  %d notes  %.0f%% accuracy  %s",
			prefix, dateStr, trackLabel(rec.TrackKey), mins, secs,
			rec.QuestionsServed, accuracy, rec.Mode)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// trackLabel shortens a "player/instrument/written" key to
// "instrument→written" for the list view.
func trackLabel(trackKey string) string {
	parts := strings.Split(trackKey, "/")
	if len(parts) != 3 {
		return trackKey
	}
	return parts[1] + "→" + parts[2]
}
