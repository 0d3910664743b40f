package session

import (
	"math/rand"

	"github.com/abhisek/valvo/internal/fingering"
)

// Picker serves the ordered stream of prompts for one session. The first
// pass prioritizes notes the player has not yet covered on this track, then
// the notes they miss most often; after the pool is exhausted it reshuffles
// and keeps serving, so marathon sessions never run dry.
type Picker struct {
	rng  *rand.Rand
	pool []string
	idx  int
	last string
}

// NewPicker builds a prompt picker for the given combination. Prompts are
// written in the session's written key; only notes that resolve onto the
// chart are eligible. Covered is the set of prompts already practiced on
// this track, hardest the most-missed prompts, both optional.
func NewPicker(chart *fingering.Chart, instrument, written fingering.Pitch, covered map[string]bool, hardest []string, seed int64) *Picker {
	rng := rand.New(rand.NewSource(seed))

	interval := fingering.TransposeInterval(instrument, written)
	var prompts []string
	for _, v := range chart.Vocabulary() {
		// The chart is keyed by the instrument's written range; the prompt
		// shown to the player is the same pitch spelled in the written key.
		prompt, err := fingering.Transpose(v, -interval)
		if err != nil {
			continue
		}
		prompts = append(prompts, prompt)
	}

	missRank := make(map[string]int, len(hardest))
	for i, n := range hardest {
		missRank[n] = len(hardest) - i
	}

	rng.Shuffle(len(prompts), func(i, j int) {
		prompts[i], prompts[j] = prompts[j], prompts[i]
	})
	// Stable partition: uncovered first, then most-missed, keeping the
	// shuffled order within each group.
	ordered := make([]string, 0, len(prompts))
	for _, n := range prompts {
		if covered == nil || !covered[n] {
			ordered = append(ordered, n)
		}
	}
	var missed []string
	for _, n := range prompts {
		if covered != nil && covered[n] && missRank[n] > 0 {
			missed = append(missed, n)
		}
	}
	for i := range missed {
		for j := i + 1; j < len(missed); j++ {
			if missRank[missed[j]] > missRank[missed[i]] {
				missed[i], missed[j] = missed[j], missed[i]
			}
		}
	}
	ordered = append(ordered, missed...)
	for _, n := range prompts {
		if covered != nil && covered[n] && missRank[n] == 0 {
			ordered = append(ordered, n)
		}
	}

	return &Picker{rng: rng, pool: ordered}
}

// Next returns the next prompt. Successive calls never repeat a prompt
// back to back while more than one note is in the pool.
func (p *Picker) Next() string {
	if len(p.pool) == 0 {
		return ""
	}
	if p.idx >= len(p.pool) {
		p.rng.Shuffle(len(p.pool), func(i, j int) {
			p.pool[i], p.pool[j] = p.pool[j], p.pool[i]
		})
		p.idx = 0
	}
	note := p.pool[p.idx]
	if note == p.last && len(p.pool) > 1 {
		// Swap with the next slot (wrapping) to break the repeat.
		next := (p.idx + 1) % len(p.pool)
		p.pool[p.idx], p.pool[next] = p.pool[next], p.pool[p.idx]
		note = p.pool[p.idx]
	}
	p.idx++
	p.last = note
	return note
}

// PoolSize reports how many distinct prompts the picker cycles through.
func (p *Picker) PoolSize() int { return len(p.pool) }
