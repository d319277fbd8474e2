package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	for sec, want := range map[int]string{
		0:    "00:00",
		59:   "00:59",
		60:   "01:00",
		125:  "02:05",
		1800: "30:00",
		3599: "59:59",
		-5:   "00:00",
	} {
		assert.Equal(t, want, FormatTime(sec), "FormatTime(%d)", sec)
	}
}

func TestNewState(t *testing.T) {
	s := NewState(1800)
	assert.Equal(t, State{Remaining: 1800, Duration: 1800}, s)
	assert.Equal(t, "30:00", s.Snapshot().Display)
}

func TestStartIsIdempotent(t *testing.T) {
	s, intents := NewState(10).Start()
	require.True(t, s.Running)
	assert.Equal(t, []Intent{IntentScheduleTick, IntentRender}, intents)

	again, intents := s.Start()
	assert.Equal(t, s, again)
	assert.Empty(t, intents)
}

func TestStopWhenStoppedChangesNothing(t *testing.T) {
	s := NewState(10)
	next, intents := s.Stop()
	assert.Equal(t, s, next)
	assert.Empty(t, intents)
}

func TestStopCancelsTick(t *testing.T) {
	s, _ := NewState(10).Start()
	s, intents := s.Stop()
	assert.False(t, s.Running)
	assert.Equal(t, []Intent{IntentCancelTick, IntentRender}, intents)
}

func TestReset(t *testing.T) {
	running, _ := NewState(10).Start()
	running, _ = running.Tick()
	running, _ = running.Tick()

	for name, s := range map[string]State{
		"fresh":   NewState(10),
		"running": running,
		"stopped": {Remaining: 4, Duration: 10},
		"done":    {Remaining: 0, Duration: 10},
	} {
		t.Run(name, func(t *testing.T) {
			next, intents := s.Reset()
			assert.Equal(t, 10, next.Remaining)
			assert.False(t, next.Running)
			assert.Contains(t, intents, IntentRender)
			if s.Running {
				assert.Equal(t, IntentCancelTick, intents[0])
			} else {
				assert.NotContains(t, intents, IntentCancelTick)
			}

			twice, _ := next.Reset()
			assert.Equal(t, next, twice)
		})
	}
}

func TestTickWhenStoppedIsIgnored(t *testing.T) {
	s := State{Remaining: 5, Duration: 10}
	next, intents := s.Tick()
	assert.Equal(t, s, next)
	assert.Empty(t, intents)
}

func TestTickDecrements(t *testing.T) {
	s, _ := NewState(10).Start()
	s, intents := s.Tick()
	assert.Equal(t, 9, s.Remaining)
	assert.True(t, s.Running)
	assert.Equal(t, []Intent{IntentRender, IntentScheduleTick}, intents)
}

func TestCountdownCompletes(t *testing.T) {
	s, _ := NewState(10).Start()

	completions := 0
	for i := 0; i < 10; i++ {
		require.True(t, s.Running, "tick %d", i)
		var intents []Intent
		s, intents = s.Tick()
		for _, in := range intents {
			if in == IntentShowDialog {
				completions++
			}
		}
	}

	assert.Equal(t, 0, s.Remaining)
	assert.False(t, s.Running)
	assert.Equal(t, 1, completions)

	s, intents := s.Tick()
	assert.Empty(t, intents, "no tick runs after completion")
	assert.Equal(t, 0, s.Remaining)
}

func TestStartAtZeroCompletesOnNextTick(t *testing.T) {
	s, _ := State{Remaining: 0, Duration: 10}.Start()
	s, intents := s.Tick()
	assert.False(t, s.Running)
	assert.Equal(t, []Intent{IntentPlaySound, IntentShowDialog}, intents)
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "schedule-tick", IntentScheduleTick.String())
	assert.Equal(t, "show-dialog", IntentShowDialog.String())
	assert.Equal(t, "unknown", Intent(42).String())
}
