// Package config defines the player-facing settings and their loading
// order: built-in defaults, then an optional YAML file, then VALVO_*
// environment variables.
package config

// Config holds the player profile and session defaults.
type Config struct {
	// PlayerID namespaces competency tracks; profiles on a shared device
	// stay independent.
	PlayerID string `koanf:"player_id"`

	// Tier selects beginner or advanced behavior across scoring and the
	// proficiency engine.
	Tier string `koanf:"tier"`

	// Instrument is the default instrument, e.g. "trumpet" or "french-horn".
	Instrument string `koanf:"instrument"`

	// WrittenKey is the default written key practiced, e.g. "C" for
	// concert-pitch music.
	WrittenKey string `koanf:"written_key"`

	// Mode is the default game mode: learning, marathon, or speed.
	Mode string `koanf:"mode"`

	// Difficulty is the default practice difficulty: novice, intermediate,
	// proficient, or virtuoso.
	Difficulty string `koanf:"difficulty"`

	// Questions is the question count for learning and speed sessions.
	Questions int `koanf:"questions"`

	// Lives is the starting lives budget for marathon sessions.
	Lives int `koanf:"lives"`

	// IntervalMs is the per-note time budget for speed sessions.
	IntervalMs int `koanf:"interval_ms"`

	// DBPath overrides the database location. Empty means the platform
	// default under the user config directory.
	DBPath string `koanf:"db_path"`

	// CoachEnabled turns on the post-session practice tip. Requires an
	// API key.
	CoachEnabled bool `koanf:"coach_enabled"`

	// CoachModel is the model used for practice tips.
	CoachModel string `koanf:"coach_model"`

	// CoachAPIKey authenticates the coach. OPENAI_API_KEY is used when
	// this is empty.
	CoachAPIKey string `koanf:"coach_api_key"`
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		PlayerID:   "player",
		Tier:       "beginner",
		Instrument: "trumpet",
		WrittenKey: "Bb",
		Mode:       "learning",
		Difficulty: "novice",
		Questions:  20,
		Lives:      3,
		IntervalMs: 2000,
		CoachModel: "gpt-4o-mini",
	}
}
