package schema

import "fmt"

// Reducer selects how bucket values collapse to one display value.
type Reducer string

// Supported reducers. Different view generations of this system shipped with
// different defaults, so both stay selectable; they are never substituted for
// each other.
const (
	MedianReducer Reducer = "median"
	MeanReducer   Reducer = "mean"
)

// ParseReducer validates a reducer token from config or flags.
func ParseReducer(s string) (Reducer, error) {
	switch Reducer(s) {
	case MedianReducer, MeanReducer:
		return Reducer(s), nil
	default:
		return "", fmt.Errorf("unsupported reducer: %s. Must be median or mean", s)
	}
}
