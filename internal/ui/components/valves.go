package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/ui/theme"
)

// ValveInput is the three-valve answer widget. Keys 1-3 toggle valves; the
// screen submits the current combination on enter. After submission the
// widget recolors to show the verdict.
type ValveInput struct {
	pressed [3]bool

	submitted bool
	correct   bool
	expected  fingering.Fingering
}

// NewValveInput creates an empty (open horn) valve input.
func NewValveInput() ValveInput {
	return ValveInput{}
}

// Toggle flips a valve. Valves are numbered 1-3; out-of-range is ignored.
func (v *ValveInput) Toggle(valve int) {
	if v.submitted || valve < 1 || valve > 3 {
		return
	}
	v.pressed[valve-1] = !v.pressed[valve-1]
}

// Clear releases all valves back to the open horn.
func (v *ValveInput) Clear() {
	if v.submitted {
		return
	}
	v.pressed = [3]bool{}
}

// Combination returns the current selection in valve order.
func (v ValveInput) Combination() fingering.Fingering {
	var combo fingering.Fingering
	for i, down := range v.pressed {
		if down {
			combo = append(combo, i+1)
		}
	}
	return combo
}

// ShowVerdict freezes the widget and recolors it for the feedback overlay.
// expected is the primary correct combination.
func (v *ValveInput) ShowVerdict(correct bool, expected fingering.Fingering) {
	v.submitted = true
	v.correct = correct
	v.expected = expected
}

// Reset returns the widget to an empty, unsubmitted state for the next
// prompt.
func (v *ValveInput) Reset() {
	*v = ValveInput{}
}

// View renders the three valve caps plus the combination readout.
func (v ValveInput) View(width int) string {
	caps := make([]string, 3)
	for i := 0; i < 3; i++ {
		caps[i] = v.renderCap(i)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, caps[0], " ", caps[1], " ", caps[2])

	readout := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("combination: " + v.Combination().String())

	block := lipgloss.JoinVertical(lipgloss.Center, row, "", readout)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

// renderCap draws one valve cap, index 0-2.
func (v ValveInput) renderCap(i int) string {
	label := string(rune('1' + i))

	style := lipgloss.NewStyle().
		Width(5).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text)

	if v.pressed[i] {
		style = style.
			Foreground(theme.BgDark).
			Background(theme.Primary).
			BorderForeground(theme.Primary).
			Bold(true)
	}

	if v.submitted {
		inExpected := false
		for _, e := range v.expected {
			if e == i+1 {
				inExpected = true
			}
		}
		switch {
		case v.correct && v.pressed[i]:
			style = style.
				Foreground(theme.BgDark).
				Background(theme.Success).
				BorderForeground(theme.Success).
				Bold(true)
		case !v.correct && v.pressed[i]:
			style = style.
				Foreground(theme.BgDark).
				Background(theme.Error).
				BorderForeground(theme.Error).
				Bold(true)
		case !v.correct && inExpected:
			// A valve the player should have pressed.
			style = style.
				Foreground(theme.Success).
				BorderForeground(theme.Success).
				Bold(true)
		}
	}

	return style.Render(label)
}
