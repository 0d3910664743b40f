// Package trackgrid shows the 4x4 proficiency matrix: one cell per
// (instrument pitch, written key) combination, each an independently
// tracked score.
package trackgrid

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/proficiency"
	"github.com/abhisek/valvo/internal/router"
	"github.com/abhisek/valvo/internal/screen"
	"github.com/abhisek/valvo/internal/store"
	"github.com/abhisek/valvo/internal/transposition"
	"github.com/abhisek/valvo/internal/ui/layout"
	"github.com/abhisek/valvo/internal/ui/theme"
)

// gridLoadedMsg carries the full track matrix.
type gridLoadedMsg struct {
	Tracks map[fingering.Pitch]map[fingering.Pitch]*proficiency.TrackStatus
	Err    error
}

// Screen displays the proficiency matrix.
type Screen struct {
	registry *transposition.Registry
	events   store.EventRepo

	tracks map[fingering.Pitch]map[fingering.Pitch]*proficiency.TrackStatus
	row    int
	col    int
	loaded bool
	errMsg string
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a track grid screen. events may be nil; the detail view then
// omits the all-time answer stats.
func New(registry *transposition.Registry, events store.EventRepo) *Screen {
	return &Screen{registry: registry, events: events}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		tracks, err := s.registry.AllTracks(ctx)
		if err != nil {
			return gridLoadedMsg{Err: err}
		}
		// The diagonal is the native combination, tracked as the default
		// track.
		for _, p := range fingering.AllPitches() {
			status, err := s.registry.DefaultTrack(ctx, p)
			if err != nil {
				return gridLoadedMsg{Err: err}
			}
			tracks[p][p] = status
		}
		return gridLoadedMsg{Tracks: tracks}
	}
}

func (s *Screen) Title() string {
	return "Track Grid"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gridLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.tracks = msg.Tracks
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		pitches := fingering.AllPitches()
		switch msg.String() {
		case "up", "k":
			if s.row > 0 {
				s.row--
			}
		case "down", "j":
			if s.row < len(pitches)-1 {
				s.row++
			}
		case "left", "h":
			if s.col > 0 {
				s.col--
			}
		case "right", "l":
			if s.col < len(pitches)-1 {
				s.col++
			}
		case "enter":
			return s, s.openDetail()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
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
			Render("\n\n  Loading tracks...")
	}

	pitches := fingering.AllPitches()
	const cellWidth = 10

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("instrument pitch ↓ · written key →")))
	b.WriteString("\n\n")

	header := strings.Repeat(" ", cellWidth)
	for _, written := range pitches {
		header += lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center).
			Render(written.DisplayName())
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, header))
	b.WriteString("\n\n")

	for ri, instrument := range pitches {
		line := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Width(cellWidth).
			Align(lipgloss.Center).
			Render(instrument.DisplayName())
		for ci, written := range pitches {
			line += s.renderCell(instrument, written, ri == s.row && ci == s.col, cellWidth)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n\n")
	}

	if status := s.selected(); status != nil {
		caption := fmt.Sprintf("%s instrument reading %s music — %s",
			pitches[s.row].DisplayName(), pitches[s.col].DisplayName(), status.Band.Name())
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(caption)))
	}

	return b.String()
}

// renderCell renders one combination's cell: the display score colored by
// band, or a dot for untouched tracks.
func (s *Screen) renderCell(instrument, written fingering.Pitch, selected bool, cellWidth int) string {
	status := s.tracks[instrument][written]

	text := "·"
	fg := theme.TextDim
	if status != nil && status.TotalSessions > 0 {
		text = fmt.Sprintf("%d", status.DisplayScore)
		fg = bandColor(status.Band)
	}
	if instrument == written {
		text = "♪ " + text
	}

	style := lipgloss.NewStyle().
		Width(cellWidth).
		Align(lipgloss.Center).
		Foreground(fg)
	if selected {
		style = style.
			Foreground(theme.BgDark).
			Background(theme.Primary).
			Bold(true)
	}
	return style.Render(text)
}

// selected returns the status under the cursor, or nil.
func (s *Screen) selected() *proficiency.TrackStatus {
	pitches := fingering.AllPitches()
	if s.tracks == nil {
		return nil
	}
	return s.tracks[pitches[s.row]][pitches[s.col]]
}

// openDetail pushes the detail screen for the combination under the cursor.
func (s *Screen) openDetail() tea.Cmd {
	status := s.selected()
	if status == nil {
		return nil
	}
	pitches := fingering.AllPitches()
	instrument, written := pitches[s.row], pitches[s.col]
	detail := newDetail(s.registry, s.events, instrument, written, status)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

// bandColor maps a proficiency band to its display color.
func bandColor(b proficiency.Band) color.Color {
	switch b {
	case proficiency.BandDeveloping:
		return theme.Accent
	case proficiency.BandFunctional:
		return theme.Secondary
	case proficiency.BandIndependent:
		return theme.Primary
	case proficiency.BandMastered:
		return theme.Success
	default:
		return theme.TextDim
	}
}
