// Package home is the arcade-cabinet landing screen: headline score, the
// mascot, and the main menu.
package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/valvo/internal/coach"
	"github.com/abhisek/valvo/internal/config"
	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/proficiency"
	"github.com/abhisek/valvo/internal/router"
	"github.com/abhisek/valvo/internal/screen"
	"github.com/abhisek/valvo/internal/screens/history"
	"github.com/abhisek/valvo/internal/screens/setup"
	"github.com/abhisek/valvo/internal/screens/trackgrid"
	"github.com/abhisek/valvo/internal/selfupdate"
	"github.com/abhisek/valvo/internal/store"
	"github.com/abhisek/valvo/internal/transposition"
	"github.com/abhisek/valvo/internal/ui/components"
)

// rustyThresholdDays is how many idle days flip the mascot to the alert
// pose.
const rustyThresholdDays = 3.0

// updateCheckMsg carries the result of the startup release check.
type updateCheckMsg struct {
	LatestVersion string
}

// Screen is the main home screen of the application.
type Screen struct {
	menu       components.Menu
	menuLabels []string
	version    string

	score           int
	bandName        string
	tracksPracticed int
	sessionsPlayed  int
	mascotVariant   MascotVariant
	latestVersion   string
}

var _ screen.Screen = (*Screen)(nil)

// New creates the home screen and loads the headline stats.
func New(cfg *config.Config, chart *fingering.Chart, registry *transposition.Registry, tracks proficiency.Repo, events store.EventRepo, coachSvc *coach.Service, version string) *Screen {
	ctx := context.Background()

	instrument := fingering.Instrument(cfg.Instrument)
	status, _ := registry.DefaultTrack(ctx, instrument.NativePitch())

	var score int
	var bandName string
	mascotVariant := MascotIdle
	if status != nil {
		score = status.DisplayScore
		bandName = status.Band.Name()
		if status.TotalSessions > 0 {
			switch {
			case status.DaysSinceLastPractice >= rustyThresholdDays:
				mascotVariant = MascotAlert
			case status.DaysSinceLastPractice < 1:
				mascotVariant = MascotCelebrating
			}
		}
	}

	var tracksPracticed, sessionsPlayed int
	if events != nil {
		if sessions, err := events.RecentSessions(ctx, 0); err == nil {
			sessionsPlayed = len(sessions)
			seen := make(map[string]bool)
			for _, s := range sessions {
				seen[s.TrackKey] = true
			}
			tracksPracticed = len(seen)
		}
	}

	menuLabels := []string{"START SESSION", "TRACK GRID", "HISTORY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(cfg, chart, tracks, events, coachSvc),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: trackgrid.New(registry, events)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			if events == nil {
				return nil
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(events)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &Screen{
		menu:            components.NewMenu(items),
		menuLabels:      menuLabels,
		version:         version,
		score:           score,
		bandName:        bandName,
		tracksPracticed: tracksPracticed,
		sessionsPlayed:  sessionsPlayed,
		mascotVariant:   mascotVariant,
	}
}

func (h *Screen) Init() tea.Cmd {
	if h.version == "" {
		return nil
	}
	return h.checkForUpdate()
}

// checkForUpdate asks GitHub for the latest release in the background. A
// failed check is silently ignored.
func (h *Screen) checkForUpdate() tea.Cmd {
	return func() tea.Msg {
		checker := selfupdate.NewChecker()
		result, err := checker.Check(context.Background(), &selfupdate.CheckInput{Version: h.version})
		if err != nil || !result.UpdateAvailable {
			return updateCheckMsg{}
		}
		return updateCheckMsg{LatestVersion: result.LatestVersion}
	}
}

func (h *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(updateCheckMsg); ok {
		h.latestVersion = m.LatestVersion
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *Screen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	sections = append(sections, renderStatsBar(
		h.score, h.bandName, h.tracksPracticed, h.sessionsPlayed, cw, compact))

	sections = append(sections, renderArcadeMenu(
		h.menuLabels, h.menu.Selected, cw))

	if h.latestVersion != "" {
		sections = append(sections, renderUpdateNote(h.latestVersion, cw))
	}

	content := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return renderCabinetFrame(content, width, height)
}

func (h *Screen) Title() string {
	return "Home"
}
