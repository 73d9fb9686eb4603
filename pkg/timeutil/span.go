// Package timeutil parses the human-friendly spans used for reservation
// lead times and event lengths, such as "2h", "1d 3h" or "90 minutes".
package timeutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrEmptySpan is returned for blank input.
var ErrEmptySpan = errors.New("timeutil: empty span")

var (
	segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)\s*`)
	units   = map[string]time.Duration{
		"m":       time.Minute,
		"min":     time.Minute,
		"mins":    time.Minute,
		"minute":  time.Minute,
		"minutes": time.Minute,
		"h":       time.Hour,
		"hr":      time.Hour,
		"hrs":     time.Hour,
		"hour":    time.Hour,
		"hours":   time.Hour,
		"d":       24 * time.Hour,
		"day":     24 * time.Hour,
		"days":    24 * time.Hour,
		"w":       7 * 24 * time.Hour,
		"wk":      7 * 24 * time.Hour,
		"week":    7 * 24 * time.Hour,
		"weeks":   7 * 24 * time.Hour,
	}
)

// ParseSpan reads a sequence of <count><unit> segments with minute
// precision. Go duration strings like "1h30m0s" are accepted too.
func ParseSpan(input string) (time.Duration, error) {
	rest := strings.ToLower(strings.TrimSpace(input))
	if rest == "" {
		return 0, ErrEmptySpan
	}
	if d, err := time.ParseDuration(rest); err == nil {
		if d <= 0 {
			return 0, fmt.Errorf("timeutil: span must be positive, got %q", input)
		}
		return d, nil
	}

	var total time.Duration
	for rest != "" {
		m := segment.FindStringSubmatch(rest)
		if m == nil {
			return 0, fmt.Errorf("timeutil: invalid span segment %q", strings.TrimSpace(rest))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("timeutil: invalid count %q: %w", m[1], err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, fmt.Errorf("timeutil: unknown unit %q", m[2])
		}
		total += time.Duration(n) * unit
		rest = rest[len(m[0]):]
	}
	if total <= 0 {
		return 0, fmt.Errorf("timeutil: span must be positive, got %q", input)
	}
	return total, nil
}

// FormatSpan renders d as week/day/hour/minute tokens, e.g. "1d2h30m".
// Seconds are dropped.
func FormatSpan(d time.Duration) string {
	steps := []struct {
		label string
		size  time.Duration
	}{
		{"w", 7 * 24 * time.Hour},
		{"d", 24 * time.Hour},
		{"h", time.Hour},
		{"m", time.Minute},
	}
	var b strings.Builder
	for _, s := range steps {
		if d < s.size {
			continue
		}
		n := d / s.size
		d -= n * s.size
		fmt.Fprintf(&b, "%d%s", n, s.label)
	}
	if b.Len() == 0 {
		return "0m"
	}
	return b.String()
}
