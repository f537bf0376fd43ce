// Package config provides YAML-based game configuration loading.
package config

// CookieShiftConfig contains all tunable parameters for the game.
type CookieShiftConfig struct {
	Timing TimingConfig  `yaml:"timing"`
	Pieces []PieceConfig `yaml:"pieces"`
}

// TimingConfig defines frame-based timing parameters.
type TimingConfig struct {
	// SlideFrames is the slide animation length in ticks.
	SlideFrames int `yaml:"slide_frames"`
	// InputWindowFrames is how many ticks a buffered move stays valid.
	InputWindowFrames int `yaml:"input_window_frames"`
}

// PieceConfig defines how one piece kind is displayed.
type PieceConfig struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// Validate fills in zero timing values and pads the piece table so the
// renderer can index it by sprite index without bounds checks.
func (c *CookieShiftConfig) Validate() {
	def := DefaultCookieShiftConfig()
	if c.Timing.SlideFrames <= 0 {
		c.Timing.SlideFrames = def.Timing.SlideFrames
	}
	if c.Timing.InputWindowFrames <= 0 {
		c.Timing.InputWindowFrames = def.Timing.InputWindowFrames
	}
	for len(c.Pieces) < len(def.Pieces) {
		c.Pieces = append(c.Pieces, def.Pieces[len(c.Pieces)])
	}
	for i := range c.Pieces {
		if c.Pieces[i].Glyph == "" {
			c.Pieces[i].Glyph = def.Pieces[i].Glyph
		}
	}
}

// DefaultCookieShiftConfig returns the hardcoded fallback configuration,
// used if the embedded YAML cannot be parsed.
func DefaultCookieShiftConfig() CookieShiftConfig {
	return CookieShiftConfig{
		Timing: TimingConfig{
			SlideFrames:       5,
			InputWindowFrames: 3,
		},
		Pieces: []PieceConfig{
			{Name: "mascot", Glyph: "@", Color: "bright_yellow"},
			{Name: "checkered", Glyph: "#", Color: "white"},
			{Name: "donut", Glyph: "o", Color: "magenta"},
			{Name: "flower", Glyph: "*", Color: "bright_red"},
			{Name: "green", Glyph: "%", Color: "green"},
			{Name: "heart", Glyph: "v", Color: "red"},
		},
	}
}
