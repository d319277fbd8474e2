package timer

import (
	"encoding/json"
	"image/color"

	"github.com/pkg/errors"
)

// AppContentReader defines the interface for reading bundled assets.
type AppContentReader interface {
	ReadFile(name string) ([]byte, error)
}

// ConfigFilename is the asset holding the TimerConfig.
const ConfigFilename = "timer_config.json"

// maxDurationSec keeps the display at two minute digits.
const maxDurationSec = 60*60 - 1

// UI constants
const (
	FontSizeTitle float32 = 24.0
	FontSizeTime  float32 = 48.0

	// Dimensions
	WindowWidth  = 400
	WindowHeight = 300
	IconSize     = 32
	ButtonGap    = 10
)

// Palette is the pastel colour scheme of the window.
var Palette = []color.NRGBA{
	{R: 0xfa, G: 0xed, B: 0xcb, A: 0xff},
	{R: 0xc9, G: 0xe4, B: 0xde, A: 0xff},
	{R: 0xc6, G: 0xde, B: 0xf1, A: 0xff},
	{R: 0xdb, G: 0xcd, B: 0xf0, A: 0xff},
	{R: 0xa9, G: 0x9a, B: 0xbd, A: 0xff},
	{R: 0xfa, G: 0x9b, B: 0xcf, A: 0xff},
}

var (
	// BackgroundColor is the window background.
	BackgroundColor = Palette[0]
	// TitleColor is used for the "Pomodoro Timer" label.
	TitleColor = color.NRGBA{R: 0x7a, G: 0xa8, B: 0x9c, A: 0xff}
	// TimeColor is used for the countdown.
	TimeColor = color.NRGBA{R: 0x6c, G: 0x93, B: 0xb8, A: 0xff}
	// ResetColor is the fill of the reset button.
	ResetColor = Palette[3]
)

// TimerConfig holds the static configuration of the countdown.
type TimerConfig struct {
	DurationSec       int    `json:"duration_sec"`
	DebugDurationSec  int    `json:"debug_duration_sec"`
	SoundFilename     string `json:"sound_filename"`
	StartIconFilename string `json:"start_icon_filename"`
	StopIconFilename  string `json:"stop_icon_filename"`
}

// DefaultDuration returns the duration of a session for this build.
func (c *TimerConfig) DefaultDuration() int {
	if debugBuild {
		return c.DebugDurationSec
	}
	return c.DurationSec
}

// Validate checks the durations fit a MM:SS display and that every asset is
// named.
func (c *TimerConfig) Validate() error {
	for name, d := range map[string]int{"duration_sec": c.DurationSec, "debug_duration_sec": c.DebugDurationSec} {
		if d <= 0 || d > maxDurationSec {
			return errors.Errorf("%s must be in [1, %d], got %d", name, maxDurationSec, d)
		}
	}
	if c.SoundFilename == "" || c.StartIconFilename == "" || c.StopIconFilename == "" {
		return errors.New("sound_filename, start_icon_filename and stop_icon_filename are required")
	}
	return nil
}

// LoadTimerConfig loads the timer configuration from the bundled JSON file.
func LoadTimerConfig(reader AppContentReader) (*TimerConfig, error) {
	data, err := reader.ReadFile(ConfigFilename)
	if err != nil {
		return nil, errors.Wrap(err, "read timer config")
	}

	var cfg TimerConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal timer config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid timer config")
	}
	return &cfg, nil
}
