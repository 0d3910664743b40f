package fingering

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed charts/three_valve.json
var chartFS embed.FS

// chartSchema validates embedded chart files at load time, so a bad edit to
// the chart data fails loudly instead of producing silent fingering gaps.
var chartSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"notes": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"note": map[string]any{
						"type":    "string",
						"pattern": "^[A-G]#?[0-8]$",
					},
					"fingerings": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":    "integer",
								"minimum": 1,
								"maximum": 3,
							},
						},
					},
				},
				"required":             []any{"note", "fingerings"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"name", "notes"},
	"additionalProperties": false,
}

// Fingering is one valve combination: the valves held down, in valve order.
// An empty combination is the open horn.
type Fingering []int

// Equal reports whether two combinations press the same valves.
func (f Fingering) Equal(other Fingering) bool {
	if len(f) != len(other) {
		return false
	}
	for i := range f {
		if f[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders the combination the way method books print it: "0" for
// open, otherwise the pressed valve numbers.
func (f Fingering) String() string {
	if len(f) == 0 {
		return "0"
	}
	s := ""
	for _, v := range f {
		s += fmt.Sprintf("%d", v)
	}
	return s
}

type chartNote struct {
	Note       string      `json:"note"`
	Fingerings []Fingering `json:"fingerings"`
}

type chartFile struct {
	Name  string      `json:"name"`
	Notes []chartNote `json:"notes"`
}

// Chart maps written notes to their valid valve combinations. The first
// combination for a note is the primary fingering; the rest are accepted
// alternates.
type Chart struct {
	name       string
	fingerings map[string][]Fingering
	order      []string
}

var (
	defaultChart     *Chart
	defaultChartErr  error
	defaultChartOnce sync.Once
)

// Default returns the embedded three-valve chart, loading and validating it
// once.
func Default() (*Chart, error) {
	defaultChartOnce.Do(func() {
		defaultChart, defaultChartErr = loadChart("charts/three_valve.json")
	})
	return defaultChart, defaultChartErr
}

func loadChart(path string) (*Chart, error) {
	raw, err := chartFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read chart %s: %w", path, err)
	}

	if err := validateChart(raw); err != nil {
		return nil, fmt.Errorf("chart %s: %w", path, err)
	}

	var cf chartFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("parse chart %s: %w", path, err)
	}

	c := &Chart{
		name:       cf.Name,
		fingerings: make(map[string][]Fingering, len(cf.Notes)),
	}
	for _, n := range cf.Notes {
		if _, err := parseNote(n.Note); err != nil {
			return nil, fmt.Errorf("chart %s: %w", path, err)
		}
		if _, dup := c.fingerings[n.Note]; dup {
			return nil, fmt.Errorf("chart %s: duplicate note %q", path, n.Note)
		}
		c.fingerings[n.Note] = n.Fingerings
		c.order = append(c.order, n.Note)
	}
	return c, nil
}

// validateChart checks raw chart JSON against the chart schema.
func validateChart(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema://fingering-chart.json", chartSchema); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := compiler.Compile("schema://fingering-chart.json")
	if err != nil {
		return fmt.Errorf("compile chart schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// Name returns the chart's identifier.
func (c *Chart) Name() string { return c.name }

// Lookup returns the valid valve combinations for a written note, or false
// if the note is not producible on this chart.
func (c *Chart) Lookup(note string) ([]Fingering, bool) {
	f, ok := c.fingerings[note]
	return f, ok
}

// Resolve returns the valve combinations for a note written in the given
// key, played on an instrument of the given pitch. The note is transposed
// into the instrument's written range first; notes that fall outside the
// chart are reported as not producible.
func (c *Chart) Resolve(note string, instrument, written Pitch) ([]Fingering, bool) {
	transposed, err := Transpose(note, TransposeInterval(instrument, written))
	if err != nil {
		return nil, false
	}
	return c.Lookup(transposed)
}

// Matches reports whether the answered combination is a valid fingering for
// the note, under any accepted alternate.
func (c *Chart) Matches(note string, answer Fingering, instrument, written Pitch) bool {
	combos, ok := c.Resolve(note, instrument, written)
	if !ok {
		return false
	}
	for _, combo := range combos {
		if combo.Equal(answer) {
			return true
		}
	}
	return false
}

// Vocabulary returns all chart notes in ascending order.
func (c *Chart) Vocabulary() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// VocabularySize is the fixed coverage denominator used by the proficiency
// tracker: the full note vocabulary size for the instrument/key space.
func (c *Chart) VocabularySize() int {
	return len(c.order)
}
