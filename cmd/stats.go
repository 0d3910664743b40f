package cmd

import (
	"fmt"
	"math"

	"github.com/abhisek/valvo/internal/config"
	"github.com/abhisek/valvo/internal/proficiency"
	"github.com/abhisek/valvo/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show proficiency per transposition track",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

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

		tracks, err := st.AllTrackRecords(ctx)
		if err != nil {
			return fmt.Errorf("read tracks: %w", err)
		}
		if len(tracks) == 0 {
			fmt.Println("No tracks practiced yet.")
			return nil
		}

		events := st.EventRepo()
		fmt.Printf("%-28s %6s %-14s %9s %9s %6s\n",
			"TRACK", "SCORE", "BAND", "SESSIONS", "ACCURACY", "NOTES")
		for _, rec := range tracks {
			score := int(math.Round(rec.Competency * 100))
			band := proficiency.BandOf(rec.Competency).Name()

			accuracy, answers, err := events.TrackAccuracy(ctx, rec.TrackKey)
			accLabel := "—"
			if err == nil && answers > 0 {
				accLabel = fmt.Sprintf("%.0f%%", accuracy*100)
			}

			fmt.Printf("%-28s %6d %-14s %9d %9s %6d\n",
				rec.TrackKey, score, band,
				len(rec.SessionHistory), accLabel, len(rec.NotesCovered))
		}
		return nil
	},
}
