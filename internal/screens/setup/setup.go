// Package setup lets the player pick what to practice before a session
// starts: instrument, written key, game mode, difficulty, and tier.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valvo/internal/coach"
	"github.com/abhisek/valvo/internal/config"
	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/proficiency"
	"github.com/abhisek/valvo/internal/router"
	"github.com/abhisek/valvo/internal/screen"
	"github.com/abhisek/valvo/internal/screens/play"
	"github.com/abhisek/valvo/internal/scoring"
	"github.com/abhisek/valvo/internal/store"
	"github.com/abhisek/valvo/internal/ui/layout"
	"github.com/abhisek/valvo/internal/ui/theme"
)

const (
	rowInstrument = iota
	rowWrittenKey
	rowMode
	rowDifficulty
	rowTier
	rowCount
)

var modes = []scoring.Mode{scoring.ModeLearning, scoring.ModeMarathon, scoring.ModeSpeed}

var difficulties = []proficiency.Difficulty{
	proficiency.DifficultyNovice,
	proficiency.DifficultyIntermediate,
	proficiency.DifficultyProficient,
	proficiency.DifficultyVirtuoso,
}

// Screen implements screen.Screen for the pre-session picker.
type Screen struct {
	cfg    *config.Config
	chart  *fingering.Chart
	tracks proficiency.Repo
	events store.EventRepo
	coach  *coach.Service

	row        int
	instrument int
	written    int
	mode       int
	difficulty int
	tier       int
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a setup screen seeded from the loaded configuration.
func New(cfg *config.Config, chart *fingering.Chart, tracks proficiency.Repo, events store.EventRepo, coachSvc *coach.Service) *Screen {
	s := &Screen{
		cfg:    cfg,
		chart:  chart,
		tracks: tracks,
		events: events,
		coach:  coachSvc,
	}

	for i, instr := range fingering.AllInstruments() {
		if string(instr) == cfg.Instrument {
			s.instrument = i
		}
	}
	for i, p := range fingering.AllPitches() {
		if string(p) == cfg.WrittenKey {
			s.written = i
		}
	}
	for i, m := range modes {
		if string(m) == cfg.Mode {
			s.mode = i
		}
	}
	for i, d := range difficulties {
		if d.String() == cfg.Difficulty {
			s.difficulty = i
		}
	}
	if proficiency.TierFromString(cfg.Tier) == proficiency.TierAdvanced {
		s.tier = 1
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "New Session"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Row"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
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
		return s, s.startSession()
	}
	return s, nil
}

// cycle steps the selected row's value, wrapping at the ends.
func (s *Screen) cycle(delta int) {
	step := func(cur, n int) int {
		return ((cur+delta)%n + n) % n
	}
	switch s.row {
	case rowInstrument:
		s.instrument = step(s.instrument, len(fingering.AllInstruments()))
	case rowWrittenKey:
		s.written = step(s.written, len(fingering.AllPitches()))
	case rowMode:
		s.mode = step(s.mode, len(modes))
	case rowDifficulty:
		s.difficulty = step(s.difficulty, len(difficulties))
	case rowTier:
		s.tier = step(s.tier, 2)
	}
}

// startSession pushes the play screen with the selected options.
func (s *Screen) startSession() tea.Cmd {
	tier := proficiency.TierBeginner
	if s.tier == 1 {
		tier = proficiency.TierAdvanced
	}

	opts := play.Options{
		Instrument: fingering.AllInstruments()[s.instrument],
		Written:    fingering.AllPitches()[s.written],
		Mode:       modes[s.mode],
		Tier:       tier,
		Scoring: scoring.Config{
			Questions:  s.cfg.Questions,
			Lives:      s.cfg.Lives,
			IntervalMs: s.cfg.IntervalMs,
			Difficulty: difficulties[s.difficulty],
		},
	}

	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: play.New(opts, s.chart, s.cfg.PlayerID, s.tracks, s.events, s.coach),
		}
	}
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Set up your session"))
	b.WriteString("\n\n")

	instrument := fingering.AllInstruments()[s.instrument]
	rows := []struct {
		label string
		value string
	}{
		{"Instrument", instrument.DisplayName()},
		{"Written key", fingering.AllPitches()[s.written].DisplayName()},
		{"Mode", string(modes[s.mode])},
		{"Difficulty", difficulties[s.difficulty].String()},
		{"Player tier", tierLabel(s.tier)},
	}

	for i, r := range rows {
		line := fmt.Sprintf("%-14s ◂ %-14s ▸", r.label, r.value)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.row {
			line = "▸ " + line
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		} else {
			line = "  " + line
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n\n")
	}

	hint := fmt.Sprintf("A %s instrument reading %s music — %+d semitone shift",
		instrument.NativePitch().DisplayName(),
		fingering.AllPitches()[s.written].DisplayName(),
		fingering.TransposeInterval(instrument.NativePitch(), fingering.AllPitches()[s.written]))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(hint))

	return b.String()
}

func tierLabel(tier int) string {
	if tier == 1 {
		return "advanced"
	}
	return "beginner"
}
