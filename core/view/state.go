// Package view implements the live-view controller: an explicit state
// machine over the displayed time window, a single-slot in-flight query
// mechanism, and content fingerprinting that suppresses redundant redraws.
//
// Transitions are pure: Apply returns the next state plus the effects the
// caller must perform (launch a query, restart the refresh ticker). The
// caller drives effects; nothing here touches the store or the screen.
package view

import "time"

// State holds the navigation state of the live view. WindowSeconds is
// fixed for the session; everything else moves under navigation commands
// and timer ticks.
type State struct {
	WindowEnd      time.Time
	WindowSeconds  int
	Follow         bool
	RefreshSeconds int
}

// WindowStart returns the start of the displayed window.
func (s State) WindowStart() time.Time {
	return s.WindowEnd.Add(-time.Duration(s.WindowSeconds) * time.Second)
}

// Window returns the half span used for stepping.
func (s State) halfWindow() time.Duration {
	return time.Duration(s.WindowSeconds) * time.Second / 2
}

// Command is a navigation or timer input to the state machine.
type Command int

// Navigation commands, mirroring the viewer key bindings.
const (
	// SnapToNow enters follow mode pinned to the current time.
	SnapToNow Command = iota
	// ToggleFollow flips between live and paused; entering live snaps
	// to now.
	ToggleFollow
	// StepBack moves the frozen window half a window into the past.
	StepBack
	// StepForward moves half a window forward; moving past "now" snaps
	// to now instead.
	StepForward
	// DayBack pins the window to the end of the previous day.
	DayBack
	// DayForward pins the window to the end of the next day; stepping
	// onto today snaps to now, stepping past today is rejected.
	DayForward
	// Tick is the periodic refresh while following.
	Tick
)

// Effect is an action the caller performs after a transition.
type Effect int

const (
	// EffectQuery launches a windowed query for the new state.
	EffectQuery Effect = iota
	// EffectRestartTicker re-arms the periodic tick at the current
	// refresh cadence (a cadence of zero disables it).
	EffectRestartTicker
)

// Apply runs one transition. now is the observed current time of the
// triggering event, injected so transitions stay deterministic in tests.
func Apply(s State, cmd Command, now time.Time) (State, []Effect) {
	switch cmd {
	case SnapToNow:
		return snapToNow(s, now)

	case ToggleFollow:
		if s.Follow {
			s.Follow = false
			return s, nil
		}
		return snapToNow(s, now)

	case StepBack:
		s.Follow = false
		s.WindowEnd = s.WindowEnd.Add(-s.halfWindow())
		return s, []Effect{EffectQuery}

	case StepForward:
		newEnd := s.WindowEnd.Add(s.halfWindow())
		if !newEnd.Before(now) {
			return snapToNow(s, now)
		}
		s.Follow = false
		s.WindowEnd = newEnd
		return s, []Effect{EffectQuery}

	case DayBack:
		s.Follow = false
		s.WindowEnd = endOfDay(s.WindowEnd.AddDate(0, 0, -1))
		return s, []Effect{EffectQuery}

	case DayForward:
		target := s.WindowEnd.AddDate(0, 0, 1)
		if sameDay(target, now) {
			return snapToNow(s, now)
		}
		if target.After(now) {
			// Beyond today: rejected, state unchanged.
			return s, nil
		}
		s.Follow = false
		s.WindowEnd = endOfDay(target)
		return s, []Effect{EffectQuery}

	case Tick:
		if !s.Follow {
			return s, nil
		}
		s.WindowEnd = now
		return s, []Effect{EffectQuery}
	}
	return s, nil
}

// SetRefresh replaces the refresh cadence. Zero disables the periodic
// tick; any positive value restarts it at the new cadence. Values are
// validated at the input boundary, so a negative here is clamped to zero.
func SetRefresh(s State, seconds int) (State, []Effect) {
	if seconds < 0 {
		seconds = 0
	}
	s.RefreshSeconds = seconds
	return s, []Effect{EffectRestartTicker}
}

// snapToNow is the shared live-entry transition.
func snapToNow(s State, now time.Time) (State, []Effect) {
	s.Follow = true
	s.WindowEnd = now
	return s, []Effect{EffectQuery}
}

// endOfDay returns the last representable instant of t's local calendar day.
func endOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// sameDay reports whether two instants share a local calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
