package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 8, 15, 14, 30, 0, 0, time.Local)

// pausedState returns a one-hour paused window ending at end.
func pausedState(end time.Time) State {
	return State{WindowEnd: end, WindowSeconds: 3600, Follow: false, RefreshSeconds: 5}
}

// TestApplySnapToNow verifies the shared live-entry transition.
func TestApplySnapToNow(t *testing.T) {
	s := pausedState(testNow.Add(-6 * time.Hour))

	next, effects := Apply(s, SnapToNow, testNow)

	assert.True(t, next.Follow)
	assert.Equal(t, testNow, next.WindowEnd)
	assert.Equal(t, []Effect{EffectQuery}, effects)
}

// TestApplyToggleFollow verifies toggle semantics in both directions.
func TestApplyToggleFollow(t *testing.T) {
	frozen := testNow.Add(-2 * time.Hour)

	// Paused -> live: snaps to now.
	next, effects := Apply(pausedState(frozen), ToggleFollow, testNow)
	assert.True(t, next.Follow)
	assert.Equal(t, testNow, next.WindowEnd)
	assert.Equal(t, []Effect{EffectQuery}, effects)

	// Live -> paused: window stays where it is, nothing to refetch.
	next.WindowEnd = testNow
	next, effects = Apply(next, ToggleFollow, testNow.Add(time.Minute))
	assert.False(t, next.Follow)
	assert.Equal(t, testNow, next.WindowEnd)
	assert.Empty(t, effects)
}

// TestApplyStepBack verifies half-window backward stepping pauses the view.
func TestApplyStepBack(t *testing.T) {
	s := State{WindowEnd: testNow, WindowSeconds: 3600, Follow: true}

	next, effects := Apply(s, StepBack, testNow)

	assert.False(t, next.Follow)
	assert.Equal(t, testNow.Add(-30*time.Minute), next.WindowEnd)
	assert.Equal(t, []Effect{EffectQuery}, effects)
}

// TestApplyStepForward covers both the normal step and the snap clamp.
func TestApplyStepForward(t *testing.T) {
	tests := []struct {
		name       string
		end        time.Time
		wantEnd    time.Time
		wantFollow bool
	}{
		{
			name:       "deep in the past moves half a window",
			end:        testNow.Add(-3 * time.Hour),
			wantEnd:    testNow.Add(-150 * time.Minute),
			wantFollow: false,
		},
		{
			name:       "step landing past now snaps to now",
			end:        testNow.Add(-10 * time.Minute),
			wantEnd:    testNow,
			wantFollow: true,
		},
		{
			name:       "step landing exactly on now snaps to now",
			end:        testNow.Add(-30 * time.Minute),
			wantEnd:    testNow,
			wantFollow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, effects := Apply(pausedState(tt.end), StepForward, testNow)
			assert.Equal(t, tt.wantEnd, next.WindowEnd)
			assert.Equal(t, tt.wantFollow, next.Follow)
			assert.Equal(t, []Effect{EffectQuery}, effects)
		})
	}
}

// TestApplyDayBack verifies the end-of-day pinning on backward day jumps.
func TestApplyDayBack(t *testing.T) {
	s := State{WindowEnd: testNow, WindowSeconds: 3600, Follow: true}

	next, effects := Apply(s, DayBack, testNow)

	assert.False(t, next.Follow)
	assert.Equal(t, 2026, next.WindowEnd.Year())
	assert.Equal(t, time.August, next.WindowEnd.Month())
	assert.Equal(t, 14, next.WindowEnd.Day())
	assert.Equal(t, 23, next.WindowEnd.Hour())
	assert.Equal(t, 59, next.WindowEnd.Minute())
	assert.Equal(t, []Effect{EffectQuery}, effects)
}

// TestApplyDayForward covers pinning, snapping onto today, and rejection.
func TestApplyDayForward(t *testing.T) {
	t.Run("past day pins to end of next day", func(t *testing.T) {
		s := pausedState(time.Date(2026, 8, 12, 10, 0, 0, 0, time.Local))
		next, effects := Apply(s, DayForward, testNow)
		assert.False(t, next.Follow)
		assert.Equal(t, 13, next.WindowEnd.Day())
		assert.Equal(t, 23, next.WindowEnd.Hour())
		assert.Equal(t, []Effect{EffectQuery}, effects)
	})

	t.Run("landing on today snaps to now", func(t *testing.T) {
		s := pausedState(time.Date(2026, 8, 14, 23, 59, 59, 0, time.Local))
		next, effects := Apply(s, DayForward, testNow)
		assert.True(t, next.Follow)
		assert.Equal(t, testNow, next.WindowEnd)
		assert.Equal(t, []Effect{EffectQuery}, effects)
	})

	t.Run("beyond today is rejected without effects", func(t *testing.T) {
		s := pausedState(testNow.Add(time.Hour))
		next, effects := Apply(s, DayForward, testNow)
		assert.Equal(t, s, next)
		assert.Empty(t, effects)
	})
}

// TestApplyTick verifies the periodic refresh only advances a following view.
func TestApplyTick(t *testing.T) {
	later := testNow.Add(5 * time.Second)

	live := State{WindowEnd: testNow, WindowSeconds: 3600, Follow: true}
	next, effects := Apply(live, Tick, later)
	assert.Equal(t, later, next.WindowEnd)
	assert.Equal(t, []Effect{EffectQuery}, effects)
	assert.Equal(t, later.Add(-time.Hour), next.WindowStart())

	paused := pausedState(testNow)
	next, effects = Apply(paused, Tick, later)
	assert.Equal(t, paused, next)
	assert.Empty(t, effects)
}

// TestSetRefresh verifies cadence changes always re-arm the ticker.
func TestSetRefresh(t *testing.T) {
	s := pausedState(testNow)

	next, effects := SetRefresh(s, 30)
	assert.Equal(t, 30, next.RefreshSeconds)
	assert.Equal(t, []Effect{EffectRestartTicker}, effects)

	next, effects = SetRefresh(s, 0)
	assert.Equal(t, 0, next.RefreshSeconds)
	assert.Equal(t, []Effect{EffectRestartTicker}, effects)

	next, _ = SetRefresh(s, -3)
	assert.Equal(t, 0, next.RefreshSeconds)
}
