// Package summary shows the end-of-session results: score, stars, and the
// track's updated proficiency, plus the coach's tip once it arrives.
package summary

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valvo/internal/coach"
	"github.com/abhisek/valvo/internal/router"
	"github.com/abhisek/valvo/internal/screen"
	sess "github.com/abhisek/valvo/internal/session"
	"github.com/abhisek/valvo/internal/ui/components"
	"github.com/abhisek/valvo/internal/ui/layout"
	"github.com/abhisek/valvo/internal/ui/theme"
)

// tipPollInterval is how often the screen checks for a finished coach tip.
const tipPollInterval = 400 * time.Millisecond

// tipPollBudget bounds how long the screen keeps polling before giving up.
const tipPollBudget = 15 * time.Second

// tipTickMsg polls the coach service for a finished tip.
type tipTickMsg time.Time

// Screen displays the session summary.
type Screen struct {
	summary *sess.Summary
	coach   *coach.Service

	tip        *coach.Tip
	tipPending bool
	pollStart  time.Time
	spin       spinner.Model
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a summary screen. coachSvc may be nil when the coach is
// disabled.
func New(summary *sess.Summary, coachSvc *coach.Service) *Screen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Secondary)
	return &Screen{
		summary:    summary,
		coach:      coachSvc,
		tipPending: coachSvc != nil,
		spin:       sp,
	}
}

func (s *Screen) Init() tea.Cmd {
	if !s.tipPending {
		return nil
	}
	s.pollStart = time.Now()
	return tea.Batch(tipTickCmd(), s.spin.Tick)
}

func (s *Screen) Title() string {
	return "Session Summary"
}

// ClaimsEsc keeps the root model from popping just this screen: leaving
// the summary also unwinds the finished play screen beneath it.
func (s *Screen) ClaimsEsc() bool {
	return true
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tipTickMsg:
		if !s.tipPending {
			return s, nil
		}
		if tip, done := s.coach.ConsumeTip(); done {
			s.tip = tip
			s.tipPending = false
			return s, nil
		}
		if time.Since(s.pollStart) > tipPollBudget {
			s.tipPending = false
			return s, nil
		}
		return s, tipTickCmd()

	case spinner.TickMsg:
		if !s.tipPending {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			// Pop both the summary and the play screen underneath it.
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			return s, tea.Sequence(pop, pop)
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(renderStars(sum.Stars)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %d:%02d", sum.Mode, mins, secs)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d        Notes: %d        Correct: %d        Accuracy: %.0f%%",
		sum.Score.DisplayScore, sum.TotalAnswers, sum.TotalCorrect, sum.Accuracy*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	if sum.AvgSpeedSecs > 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Average answer time: %.1fs · %d distinct notes practiced",
				sum.AvgSpeedSecs, len(sum.NotesPracticed))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Proficiency")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	bandLine := fmt.Sprintf("%s  ♪ %d",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(sum.BandName),
		sum.DisplayScore)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bandLine))
	b.WriteString("\n")

	bar := components.NewProgressBar("", sum.CompetencyNow, false, min(width-8, 44))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	if s.tipPending || s.tip != nil {
		b.WriteString("\n")
		b.WriteString(s.renderTip(width))
	}

	return b.String()
}

// renderTip renders the coach card, or a waiting line while the tip is
// still generating.
func (s *Screen) renderTip(width int) string {
	if s.tip == nil {
		if !s.tipPending {
			return ""
		}
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(s.spin.View() + " The coach is thinking...")
	}

	cardWidth := min(width-8, 64)
	var card strings.Builder
	card.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(s.tip.Headline))
	card.WriteString("\n")
	card.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(s.tip.Advice))
	if s.tip.Drill != "" {
		card.WriteString("\n\n")
		card.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("Try: " + s.tip.Drill))
	}

	boxed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cardWidth).
		Padding(0, 1).
		Render(card.String())

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, boxed)
}

// renderStars renders the 1-3 star rating with empty slots dimmed out.
func renderStars(stars int) string {
	if stars < 0 {
		stars = 0
	}
	if stars > 3 {
		stars = 3
	}
	return strings.Repeat("★ ", stars) + strings.Repeat("☆ ", 3-stars)
}

// tipTickCmd schedules the next coach tip poll.
func tipTickCmd() tea.Cmd {
	return tea.Tick(tipPollInterval, func(t time.Time) tea.Msg {
		return tipTickMsg(t)
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
