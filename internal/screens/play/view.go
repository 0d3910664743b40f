package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/valvo/internal/scoring"
	sess "github.com/abhisek/valvo/internal/session"
	"github.com/abhisek/valvo/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.sess == nil {
		return renderLoading(width)
	}
	switch s.sess.Phase {
	case sess.PhaseQuitConfirm:
		return renderQuitConfirm(width)
	case sess.PhaseFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderPrompt(width)
	}
}

// renderPrompt renders the active note prompt and the valve input.
func (s *Screen) renderPrompt(width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · written %s · %s",
			s.opts.Instrument.DisplayName(),
			s.opts.Written.DisplayName(),
			s.opts.Mode,
		))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(s.statusLine())

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	note := s.sess.CurrentNote
	if note == "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Picking the next note...")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("♪  " + displayNote(note) + "  ♪"))
	b.WriteString("\n\n")

	if s.opts.Mode == scoring.ModeSpeed {
		b.WriteString(s.renderCountdown(width))
		b.WriteString("\n")
	}

	b.WriteString(s.valves.View(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press the valves, Enter to play. Nothing pressed is the open horn."))

	return b.String()
}

// statusLine renders the mode-specific progress counter.
func (s *Screen) statusLine() string {
	correct := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	switch s.opts.Mode {
	case scoring.ModeMarathon:
		lives := 0
		if m, ok := s.sess.Scorer.(interface{ LivesRemaining() int }); ok {
			lives = m.LivesRemaining()
		}
		hearts := strings.Repeat("♥", max(lives, 0))
		return fmt.Sprintf("Note %d  %s %d  %s",
			s.sess.TotalAnswers+1, correct, s.sess.TotalCorrect,
			lipgloss.NewStyle().Foreground(theme.Error).Render(hearts))
	case scoring.ModeSpeed:
		return fmt.Sprintf("Note %d  %s %d",
			s.sess.TotalAnswers+1, correct, s.sess.TotalCorrect)
	default:
		questions := s.sess.Config.Questions
		if questions <= 0 {
			questions = scoring.DefaultQuestions
		}
		return fmt.Sprintf("Note %d/%d  %s %d",
			s.sess.TotalAnswers+1, questions, correct, s.sess.TotalCorrect)
	}
}

// renderCountdown renders the per-note time budget as a draining bar.
func (s *Screen) renderCountdown(width int) string {
	interval := s.sess.Config.IntervalMs
	if interval <= 0 {
		return ""
	}
	frac := float64(s.remainingMs) / float64(interval)
	if frac < 0 {
		frac = 0
	}

	barWidth := min(width-20, 40)
	if barWidth < 10 {
		barWidth = 10
	}
	filled := int(float64(barWidth) * frac)

	fg := theme.Secondary
	if frac < 0.3 {
		fg = theme.Error
	}
	bar := lipgloss.NewStyle().Foreground(fg).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))

	label := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %.1fs", float64(s.remainingMs)/1000))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, bar+label) + "\n"
}

// renderFeedback renders the post-answer verdict.
func (s *Screen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.sess.LastAnswerCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}
	b.WriteString("\n\n")

	if s.lastNote != "" && len(s.sess.LastExpected) > 0 {
		primary := s.sess.LastExpected[0].String()
		line := fmt.Sprintf("%s is played %s", displayNote(s.lastNote), primary)
		if len(s.sess.LastExpected) > 1 {
			alts := make([]string, 0, len(s.sess.LastExpected)-1)
			for _, f := range s.sess.LastExpected[1:] {
				alts = append(alts, f.String())
			}
			line += fmt.Sprintf("  (alternate: %s)", strings.Join(alts, ", "))
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(line))
		b.WriteString("\n\n")
	}

	b.WriteString(s.valves.View(width))
	b.WriteString("\n")

	if s.opts.Mode != scoring.ModeSpeed {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press any key to continue..."))
	}

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answers so far still count toward your proficiency."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Warming up...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

// displayNote renders a note name with a proper sharp sign.
func displayNote(note string) string {
	return strings.ReplaceAll(note, "#", "♯")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
