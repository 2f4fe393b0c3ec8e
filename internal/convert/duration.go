package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mcncl/jsondom/internal/model"
)

// DurationFormat selects the textual encoding of a time span.
type DurationFormat int

const (
	// DurationAuto treats text containing ':' as a clock form and bare
	// numbers as seconds.
	DurationAuto DurationFormat = iota
	// DurationClock is the [-][d.]hh:mm[:ss[.fffffff]] form.
	DurationClock
	DurationSeconds
	DurationMilliseconds
	// DurationTicks counts 100-nanosecond intervals.
	DurationTicks
)

func (f DurationFormat) check() {
	if f < DurationAuto || f > DurationTicks {
		panic(fmt.Sprintf("jsondom: invalid DurationFormat %d", int(f)))
	}
}

var clockRegex = regexp.MustCompile(`^(-)?(?:(\d+)\.)?(\d{1,2}):(\d{2})(?::(\d{2}))?(?:\.(\d{1,9}))?$`)

func parseClock(text string) (time.Duration, bool) {
	m := clockRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	days, _ := strconv.Atoi(m[2])
	hours, _ := strconv.Atoi(m[3])
	mins, _ := strconv.Atoi(m[4])
	secs, _ := strconv.Atoi(m[5])
	if mins > 59 || secs > 59 {
		return 0, false
	}
	// The fraction is decimal seconds, padded out to nanoseconds.
	frac := m[6] + strings.Repeat("0", 9-len(m[6]))
	nanos, _ := strconv.Atoi(frac)

	d := time.Duration(days)*24*time.Hour +
		time.Duration(hours)*time.Hour +
		time.Duration(mins)*time.Minute +
		time.Duration(secs)*time.Second +
		time.Duration(nanos)*time.Nanosecond
	if m[1] == "-" {
		d = -d
	}
	return d, true
}

// formatClock renders d in the [-][d.]hh:mm:ss[.fffffff] form: days and
// the fraction appear only when nonzero, the fraction in 100ns digits
// with trailing zeros trimmed.
func formatClock(d time.Duration, withDays bool) string {
	var sb strings.Builder
	if d < 0 {
		sb.WriteByte('-')
		d = -d
	}
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	if withDays && days > 0 {
		fmt.Fprintf(&sb, "%d.", days)
	} else {
		days = 0
	}
	hours := d / time.Hour
	d -= hours * time.Hour
	mins := d / time.Minute
	d -= mins * time.Minute
	secs := d / time.Second
	d -= secs * time.Second
	fmt.Fprintf(&sb, "%02d:%02d:%02d", hours, mins, secs)
	if d > 0 {
		frac := strings.TrimRight(fmt.Sprintf("%07d", d.Nanoseconds()/100), "0")
		sb.WriteByte('.')
		sb.WriteString(frac)
	}
	return sb.String()
}

// TryGetDuration interprets the value as a time span. An out-of-range
// format panics; everything else fails soft.
func TryGetDuration(v model.Value, format DurationFormat, expect model.Type) (time.Duration, bool) {
	format.check()
	text, ok := trimmed(v, expect)
	if !ok || text == "" {
		return 0, false
	}
	if format == DurationAuto {
		if strings.Contains(text, ":") {
			format = DurationClock
		} else {
			format = DurationSeconds
		}
	}
	switch format {
	case DurationClock:
		return parseClock(text)
	case DurationSeconds:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false
		}
		return time.Duration(f * float64(time.Second)), true
	case DurationMilliseconds:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, false
		}
		return time.Duration(f * float64(time.Millisecond)), true
	default: // DurationTicks
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, false
		}
		return time.Duration(n) * 100 * time.Nanosecond, true
	}
}

// AsDuration returns the value as a time span, or nil when it cannot
// convert.
func AsDuration(v model.Value, format DurationFormat, expect model.Type) *time.Duration {
	if d, ok := TryGetDuration(v, format, expect); ok {
		return &d
	}
	return nil
}

// DurationOrDefault returns the value as a time span, or def when it
// cannot convert.
func DurationOrDefault(v model.Value, def time.Duration, format DurationFormat, expect model.Type) time.Duration {
	if d, ok := TryGetDuration(v, format, expect); ok {
		return d
	}
	return def
}

// DurationToJSON encodes a time span. DurationAuto encodes in the clock
// form.
func DurationToJSON(d time.Duration, format DurationFormat) model.Value {
	format.check()
	switch format {
	case DurationSeconds:
		return model.NewNumber(strconv.FormatFloat(d.Seconds(), 'f', -1, 64))
	case DurationMilliseconds:
		return model.NewNumber(strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', -1, 64))
	case DurationTicks:
		return model.NewNumber(strconv.FormatInt(d.Nanoseconds()/100, 10))
	default:
		return model.NewString(formatClock(d, true))
	}
}

// TryGetTimeOfDay interprets the value as a clock time within one day,
// via the time-span parsers. Values outside [0, 24h) fail.
func TryGetTimeOfDay(v model.Value, format DurationFormat, expect model.Type) (time.Duration, bool) {
	d, ok := TryGetDuration(v, format, expect)
	if !ok || d < 0 || d >= 24*time.Hour {
		return 0, false
	}
	return d, true
}

// AsTimeOfDay returns the value as a clock time, or nil when it cannot
// convert.
func AsTimeOfDay(v model.Value, format DurationFormat, expect model.Type) *time.Duration {
	if d, ok := TryGetTimeOfDay(v, format, expect); ok {
		return &d
	}
	return nil
}

// TimeOfDayOrDefault returns the value as a clock time, or def when it
// cannot convert.
func TimeOfDayOrDefault(v model.Value, def time.Duration, format DurationFormat, expect model.Type) time.Duration {
	if d, ok := TryGetTimeOfDay(v, format, expect); ok {
		return d
	}
	return def
}

// TimeOfDayToJSON encodes a clock time as hh:mm:ss[.fffffff].
func TimeOfDayToJSON(d time.Duration) model.Value {
	return model.NewString(formatClock(d, false))
}
