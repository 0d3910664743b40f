package coach

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a friendly brass instructor helping a player ` +
	`improve their valve fingering fluency. You receive one practice ` +
	`session's results and respond with a short, encouraging tip. Keep the ` +
	`headline under 8 words, the advice under 3 sentences, and make the ` +
	`drill a concrete exercise they can play in under a minute. Never ` +
	`mention scores or numbers back to the player.`

// buildUserMessage renders the session telemetry for the model.
func buildUserMessage(input TipInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Instrument: %s (reading music written in %s)\n", input.Instrument, input.WrittenKey)
	fmt.Fprintf(&b, "Mode: %s, player tier: %s\n", input.Mode, input.Tier)
	fmt.Fprintf(&b, "Session accuracy: %.0f%%\n", input.Accuracy*100)
	if input.AvgSpeedSecs > 0 {
		fmt.Fprintf(&b, "Average response time: %.1fs per note\n", input.AvgSpeedSecs)
	}
	if input.BandName != "" {
		fmt.Fprintf(&b, "Current proficiency band: %s\n", input.BandName)
	}
	if len(input.HardestNotes) > 0 {
		fmt.Fprintf(&b, "Most-missed notes: %s\n", strings.Join(input.HardestNotes, ", "))
	}
	return b.String()
}
