package contract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Matches "N [units]", e.g. "3 days", "2 weeks", "12 hours".
var lookbackDurationRe = regexp.MustCompile(`^(\d+)\s+(week|day|hour|minute)s?$`)

// ParseLookbackDuration converts strings like "3 days" or "720h" into a
// time.Duration. It first tries Go's built-in time.ParseDuration for
// standard formats, then falls back to custom parsing for human-readable
// formats.
func ParseLookbackDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	if duration, err := time.ParseDuration(s); err == nil {
		if duration <= 0 {
			return 0, errors.New("lookback must be a positive duration")
		}
		return duration, nil
	}

	s = strings.ToLower(s)
	matches := lookbackDurationRe.FindStringSubmatch(s)
	if len(matches) == 0 {
		return 0, fmt.Errorf("invalid lookback duration format: %s", s)
	}

	value, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	var totalDuration time.Duration
	switch unit {
	case "week":
		totalDuration = time.Duration(value) * 7 * 24 * time.Hour
	case "day":
		totalDuration = time.Duration(value) * 24 * time.Hour
	case "hour":
		totalDuration = time.Duration(value) * time.Hour
	case "minute":
		totalDuration = time.Duration(value) * time.Minute
	}

	if totalDuration == 0 {
		return 0, errors.New("zero duration is not useful")
	}
	return totalDuration, nil
}
