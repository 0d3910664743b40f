package trackgrid

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/proficiency"
	"github.com/abhisek/valvo/internal/router"
	"github.com/abhisek/valvo/internal/screen"
	"github.com/abhisek/valvo/internal/store"
	"github.com/abhisek/valvo/internal/transposition"
	"github.com/abhisek/valvo/internal/ui/components"
	"github.com/abhisek/valvo/internal/ui/layout"
	"github.com/abhisek/valvo/internal/ui/theme"
)

// detailStatsMsg carries the all-time answer stats for one track.
type detailStatsMsg struct {
	Accuracy float64
	Answers  int
	Hardest  []string
}

// detailScreen shows one combination's full standing.
type detailScreen struct {
	registry   *transposition.Registry
	events     store.EventRepo
	instrument fingering.Pitch
	written    fingering.Pitch
	status     *proficiency.TrackStatus

	stats *detailStatsMsg
}

var _ screen.Screen = (*detailScreen)(nil)
var _ screen.KeyHintProvider = (*detailScreen)(nil)

func newDetail(registry *transposition.Registry, events store.EventRepo, instrument, written fingering.Pitch, status *proficiency.TrackStatus) *detailScreen {
	return &detailScreen{
		registry:   registry,
		events:     events,
		instrument: instrument,
		written:    written,
		status:     status,
	}
}

func (d *detailScreen) Init() tea.Cmd {
	if d.events == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		key := d.registry.TrackKey(d.instrument, d.written)
		acc, n, err := d.events.TrackAccuracy(ctx, key)
		if err != nil {
			return detailStatsMsg{}
		}
		hardest, _ := d.events.HardestNotes(ctx, key, 5)
		return detailStatsMsg{Accuracy: acc, Answers: n, Hardest: hardest}
	}
}

func (d *detailScreen) Title() string {
	return "Track Detail"
}

func (d *detailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *detailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case detailStatsMsg:
		d.stats = &msg
		return d, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return d, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return d, nil
}

func (d *detailScreen) View(width, height int) string {
	st := d.status
	var b strings.Builder
	b.WriteString("\n")

	title := fmt.Sprintf("%s instrument · music written in %s",
		d.instrument.DisplayName(), d.written.DisplayName())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n")

	shift := fingering.TransposeInterval(d.instrument, d.written)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("transposition shift: %+d semitones", shift)))
	b.WriteString("\n\n")

	band := lipgloss.NewStyle().Foreground(bandColor(st.Band)).Bold(true).Render(st.Band.Name())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		fmt.Sprintf("%s  ♪ %d", band, st.DisplayScore)))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(st.Band.Description())))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", st.Competency, false, min(width-8, 44))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	lines := []string{
		fmt.Sprintf("Sessions played: %d", st.TotalSessions),
		fmt.Sprintf("Notes covered: %d", st.NotesCoveredCount),
	}
	if st.TotalSessions > 0 {
		lines = append(lines, fmt.Sprintf("Days since last practice: %.1f", st.DaysSinceLastPractice))
	}
	if d.stats != nil && d.stats.Answers > 0 {
		lines = append(lines, fmt.Sprintf("All-time accuracy: %.0f%% over %d answers",
			d.stats.Accuracy*100, d.stats.Answers))
	}
	for _, line := range lines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	if d.stats != nil && len(d.stats.Hardest) > 0 {
		pretty := make([]string, len(d.stats.Hardest))
		for i, n := range d.stats.Hardest {
			pretty[i] = strings.ReplaceAll(n, "#", "♯")
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).
				Render("Trouble notes: "+strings.Join(pretty, ", "))))
		b.WriteString("\n")
	}

	return b.String()
}
