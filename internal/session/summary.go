package session

import (
	"sort"
	"time"

	"github.com/abhisek/valvo/internal/scoring"
)

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Mode           scoring.Mode
	TrackKey       string
	Duration       time.Duration
	TotalAnswers   int
	TotalCorrect   int
	Accuracy       float64
	AvgSpeedSecs   float64
	NotesPracticed []string
	Score          scoring.Result
	CompetencyNow  float64
	DisplayScore   int
	BandName       string
	Stars          int
}

// BuildSummary assembles the summary screen data from a finished session.
func BuildSummary(s *Session, out *Outcome) *Summary {
	notes := make([]string, 0, len(s.NotesPracticed))
	for n := range s.NotesPracticed {
		notes = append(notes, n)
	}
	sort.Strings(notes)

	var accuracy float64
	if s.TotalAnswers > 0 {
		accuracy = float64(s.TotalCorrect) / float64(s.TotalAnswers)
	}

	sum := &Summary{
		Mode:           s.Mode,
		TrackKey:       s.TrackKey(),
		Duration:       out.Duration,
		TotalAnswers:   s.TotalAnswers,
		TotalCorrect:   s.TotalCorrect,
		Accuracy:       accuracy,
		AvgSpeedSecs:   s.avgSpeedSecs(),
		NotesPracticed: notes,
		Score:          out.Score,
		Stars:          out.Score.Stars,
	}
	if out.Proficiency != nil {
		sum.CompetencyNow = out.Proficiency.Competency
		sum.DisplayScore = out.Proficiency.DisplayScore
		sum.BandName = out.Proficiency.Band.Name()
	}
	return sum
}
