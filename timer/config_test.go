package timer

import (
	"io/fs"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTimerConfig(t *testing.T) {
	fsys := fstest.MapFS{ConfigFilename: {Data: []byte(`{
		"duration_sec": 1500,
		"debug_duration_sec": 10,
		"sound_filename": "alarm.wav",
		"start_icon_filename": "start.svg",
		"stop_icon_filename": "stop.svg"
	}`)}}

	cfg, err := LoadTimerConfig(fsys)
	require.NoError(t, err)
	assert.Equal(t, 1500, cfg.DurationSec)
	assert.Equal(t, 10, cfg.DebugDurationSec)
	assert.Equal(t, "alarm.wav", cfg.SoundFilename)
	if debugBuild {
		assert.Equal(t, 10, cfg.DefaultDuration())
	} else {
		assert.Equal(t, 1500, cfg.DefaultDuration())
	}
}

func TestLoadTimerConfigBundled(t *testing.T) {
	cfg, err := LoadTimerConfig(os.DirFS("../assets").(fs.ReadFileFS))
	require.NoError(t, err)
	assert.Equal(t, 1800, cfg.DurationSec)
	assert.Equal(t, 10, cfg.DebugDurationSec)
}

func TestLoadTimerConfigErrors(t *testing.T) {
	for name, data := range map[string]string{
		"not json":       `{`,
		"zero duration":  `{"duration_sec": 0, "debug_duration_sec": 10, "sound_filename": "a", "start_icon_filename": "b", "stop_icon_filename": "c"}`,
		"too long":       `{"duration_sec": 3600, "debug_duration_sec": 10, "sound_filename": "a", "start_icon_filename": "b", "stop_icon_filename": "c"}`,
		"missing sound":  `{"duration_sec": 1800, "debug_duration_sec": 10, "start_icon_filename": "b", "stop_icon_filename": "c"}`,
		"negative debug": `{"duration_sec": 1800, "debug_duration_sec": -1, "sound_filename": "a", "start_icon_filename": "b", "stop_icon_filename": "c"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := LoadTimerConfig(fstest.MapFS{ConfigFilename: {Data: []byte(data)}})
			assert.Error(t, err)
		})
	}

	_, err := LoadTimerConfig(fstest.MapFS{})
	assert.Error(t, err)
}
