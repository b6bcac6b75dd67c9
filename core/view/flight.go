package view

import "time"

// Flight is the single-slot in-flight query mechanism. At most one query
// runs at a time; launching while one is outstanding is a no-op. Each
// launch gets a generation number and remembers the window it was issued
// for, so a completed result can be checked against the state the view
// holds when it finally arrives.
type Flight struct {
	gen         int
	pending     bool
	launchedEnd time.Time
	launchedWin int
}

// TryLaunch claims the slot for the given state. It returns the new
// generation and true when the slot was free; false means a query is
// already outstanding and the caller must not start another.
func (f *Flight) TryLaunch(s State) (int, bool) {
	if f.pending {
		return 0, false
	}
	f.gen++
	f.pending = true
	f.launchedEnd = s.WindowEnd
	f.launchedWin = s.WindowSeconds
	return f.gen, true
}

// Complete releases the slot for the given generation. It returns false
// for stale generations (a result that was superseded), in which case the
// slot state is untouched.
func (f *Flight) Complete(gen int) bool {
	if !f.pending || gen != f.gen {
		return false
	}
	f.pending = false
	return true
}

// Matches reports whether the window the outstanding (or just-completed)
// query was launched for still equals the current state's window. A result
// that no longer matches is discarded and the caller re-queries.
func (f *Flight) Matches(s State) bool {
	return f.launchedEnd.Equal(s.WindowEnd) && f.launchedWin == s.WindowSeconds
}

// Pending reports whether a query is outstanding.
func (f *Flight) Pending() bool {
	return f.pending
}
