package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/valvo/internal/config"
	"github.com/abhisek/valvo/internal/store"
	"github.com/spf13/cobra"
)

// snapshotVersion tags the snapshot payload format.
const snapshotVersion = 1

// snapshotsKept bounds how many reset snapshots are retained.
const snapshotsKept = 5

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all competency tracks (a snapshot is saved first)",
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
			fmt.Println("Nothing to reset.")
			return nil
		}

		seq, err := st.NextSequence(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		snapshots := st.SnapshotRepo()
		err = snapshots.Save(ctx, &store.Snapshot{
			Sequence:  seq,
			Timestamp: time.Now().UTC(),
			Data: store.SnapshotData{
				Version: snapshotVersion,
				Tracks:  tracks,
			},
		})
		if err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		if err := snapshots.Prune(ctx, snapshotsKept); err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}

		deleted, err := st.DeleteAllTracks(ctx)
		if err != nil {
			return fmt.Errorf("delete tracks: %w", err)
		}
		fmt.Printf("Snapshot saved, %d track(s) reset.\n", deleted)
		return nil
	},
}
