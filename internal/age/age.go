package age

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrMalformed reports an age string that could not be parsed.
var ErrMalformed = errors.New("malformed age threshold")

type Unit int

const (
	Minutes Unit = iota
	Hours
	Days
)

func (u Unit) String() string {
	switch u {
	case Minutes:
		return "m"
	case Hours:
		return "h"
	case Days:
		return "d"
	}
	return "?"
}

// Threshold is a parsed age value: a magnitude plus a unit.
type Threshold struct {
	Magnitude int
	Unit      Unit
}

// Parse reads a threshold of the form <integer><suffix?> where the suffix
// is one of m (minutes), h (hours) or d (days). A bare integer means hours.
func Parse(s string) (Threshold, error) {
	if s == "" {
		return Threshold{}, fmt.Errorf("%w: empty string", ErrMalformed)
	}

	unit := Hours
	digits := s
	switch s[len(s)-1] {
	case 'm':
		unit = Minutes
		digits = s[:len(s)-1]
	case 'h':
		unit = Hours
		digits = s[:len(s)-1]
	case 'd':
		unit = Days
		digits = s[:len(s)-1]
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return Threshold{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	return Threshold{Magnitude: n, Unit: unit}, nil
}

func (t Threshold) Duration() time.Duration {
	switch t.Unit {
	case Minutes:
		return time.Duration(t.Magnitude) * time.Minute
	case Days:
		return time.Duration(t.Magnitude) * 24 * time.Hour
	default:
		return time.Duration(t.Magnitude) * time.Hour
	}
}

func (t Threshold) String() string {
	return fmt.Sprintf("%d%s", t.Magnitude, t.Unit)
}
