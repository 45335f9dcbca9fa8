package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Spec is a parsed five-field cron expression (minute hour day-of-month
// month day-of-week).
type Spec struct {
	fields [5]field
}

type field struct {
	any    bool
	values map[int]struct{}
}

var fieldBounds = [5]struct {
	name     string
	min, max int
}{
	{"minute", 0, 59},
	{"hour", 0, 23},
	{"day-of-month", 1, 31},
	{"month", 1, 12},
	{"day-of-week", 0, 6},
}

func Parse(expr string) (Spec, error) {
	parts := strings.Fields(expr)
	if len(parts) != 5 {
		return Spec{}, fmt.Errorf("expected 5 fields, got %d", len(parts))
	}

	var s Spec
	for i, part := range parts {
		b := fieldBounds[i]
		f, err := parseField(part, b.min, b.max)
		if err != nil {
			return Spec{}, fmt.Errorf("%s: %w", b.name, err)
		}
		s.fields[i] = f
	}
	return s, nil
}

func (s Spec) Matches(t time.Time) bool {
	checks := [5]int{t.Minute(), t.Hour(), t.Day(), int(t.Month()), int(t.Weekday())}
	for i, v := range checks {
		if !s.fields[i].has(v) {
			return false
		}
	}
	return true
}

func (f field) has(v int) bool {
	if f.any {
		return true
	}
	_, ok := f.values[v]
	return ok
}

func parseField(token string, min, max int) (field, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return field{}, fmt.Errorf("empty field")
	}
	if token == "*" {
		return field{any: true}, nil
	}

	set := make(map[int]struct{})
	for _, part := range strings.Split(token, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			return field{}, fmt.Errorf("empty list element")

		case strings.HasPrefix(part, "*/"):
			step, err := strconv.Atoi(strings.TrimPrefix(part, "*/"))
			if err != nil || step <= 0 {
				return field{}, fmt.Errorf("invalid step %q", part)
			}
			for v := min; v <= max; v += step {
				set[v] = struct{}{}
			}

		case strings.Contains(part, "-"):
			lo, hi, _ := strings.Cut(part, "-")
			start, errA := strconv.Atoi(strings.TrimSpace(lo))
			end, errB := strconv.Atoi(strings.TrimSpace(hi))
			if errA != nil || errB != nil {
				return field{}, fmt.Errorf("invalid range %q", part)
			}
			if start > end || start < min || end > max {
				return field{}, fmt.Errorf("range out of bounds %q", part)
			}
			for v := start; v <= end; v++ {
				set[v] = struct{}{}
			}

		default:
			v, err := strconv.Atoi(part)
			if err != nil {
				return field{}, fmt.Errorf("invalid value %q", part)
			}
			if v < min || v > max {
				return field{}, fmt.Errorf("value out of bounds %d", v)
			}
			set[v] = struct{}{}
		}
	}

	if len(set) == 0 {
		return field{}, fmt.Errorf("no values")
	}
	return field{values: set}, nil
}
