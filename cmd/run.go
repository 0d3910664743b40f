package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/valvo/internal/app"
	"github.com/abhisek/valvo/internal/coach"
	"github.com/abhisek/valvo/internal/config"
	"github.com/abhisek/valvo/internal/fingering"
	"github.com/abhisek/valvo/internal/proficiency"
	"github.com/abhisek/valvo/internal/store"
	"github.com/abhisek/valvo/internal/transposition"
	"github.com/spf13/cobra"
)

// runApp loads configuration, opens the store, builds dependencies, and
// launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	chart, err := fingering.Default()
	if err != nil {
		return fmt.Errorf("load fingering chart: %w", err)
	}

	// Read-side tracker with the configured defaults. Sessions build their
	// own tracker for the tier and mode picked at setup.
	tracks := st.TrackRepo()
	tracker := proficiency.NewTracker(tracks, proficiency.ConfigForTier(
		proficiency.TierFromString(cfg.Tier),
		cfg.Mode == "learning",
		chart.VocabularySize()))

	deps := app.Deps{
		Cfg:      cfg,
		Chart:    chart,
		Registry: transposition.NewRegistry(tracker, cfg.PlayerID),
		Tracks:   tracks,
		Events:   st.EventRepo(),
		Version:  version,
	}

	if cfg.CoachEnabled {
		provider, err := coach.NewOpenAIProvider(coach.OpenAIConfig{
			APIKey: cfg.CoachAPIKey,
			Model:  cfg.CoachModel,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Coach not configured:", err)
			fmt.Fprintln(os.Stderr, "Practice tips will be unavailable.")
		} else {
			deps.Coach = coach.NewService(provider)
		}
	}

	return app.Run(deps)
}
