package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mcncl/jsondom/internal/model"
)

// TimeFormat selects the textual encoding of an instant.
type TimeFormat int

const (
	// TimeAuto infers the encoding from the shape of the text.
	TimeAuto TimeFormat = iota
	TimeISO8601
	TimeUnixSeconds
	TimeUnixMilliseconds
	// TimeTicks counts 100-nanosecond intervals since 0001-01-01T00:00:00.
	TimeTicks
	// TimeMicrosoftDate is the legacy "/Date(ms)/" vendor encoding.
	TimeMicrosoftDate
)

func (f TimeFormat) check() {
	if f < TimeAuto || f > TimeMicrosoftDate {
		panic(fmt.Sprintf("jsondom: invalid TimeFormat %d", int(f)))
	}
}

// TimeKind is the desired zone handling of a decoded instant. Converting
// between UTC and Local converts the clock reading; converting to or from
// Unspecified only relabels it without changing any field.
type TimeKind int

const (
	KindUnspecified TimeKind = iota
	KindUTC
	KindLocal
)

func (k TimeKind) check() {
	if k < KindUnspecified || k > KindLocal {
		panic(fmt.Sprintf("jsondom: invalid TimeKind %d", int(k)))
	}
}

// Ticks count 100ns intervals from the year 1; the Unix epoch sits this
// many ticks in.
const unixEpochTicks = 621355968000000000

// Text-shape patterns for auto detection.
var (
	isoZonedRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:?\d{2})$`)
	isoLocalRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([T ]\d{2}:\d{2}(:\d{2})?(\.\d+)?)?$`)
	msDateRegex   = regexp.MustCompile(`^/Date\((-?\d+)([+-])(\d{2})(\d{2})\)/$|^/Date\((-?\d+)\)/$`)
	plainIntRegex = regexp.MustCompile(`^-?\d+$`)
	plainNumRegex = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// Layouts tried for ISO-8601 text. Go accepts fractional seconds in the
// input even when the layout omits them.
var (
	isoZonedLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05Z0700",
		"2006-01-02 15:04:05Z07:00",
		"2006-01-02 15:04:05Z0700",
	}
	isoLocalLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
)

// parseInstant decodes text per the explicit (non-auto) format. hadZone
// reports whether the text pinned the instant to a zone; epoch-based
// encodings always do, zoneless ISO text does not.
func parseInstant(text string, format TimeFormat) (t time.Time, hadZone bool, ok bool) {
	switch format {
	case TimeISO8601:
		for _, layout := range isoZonedLayouts {
			if t, err := time.Parse(layout, text); err == nil {
				return t, true, true
			}
		}
		for _, layout := range isoLocalLayouts {
			if t, err := time.Parse(layout, text); err == nil {
				return t, false, true
			}
		}
		return time.Time{}, false, false
	case TimeUnixSeconds:
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return time.Unix(n, 0).UTC(), true, true
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return time.Time{}, false, false
		}
		return time.Unix(0, int64(f*float64(time.Second))).UTC(), true, true
	case TimeUnixMilliseconds:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return time.Time{}, false, false
		}
		return time.UnixMilli(n).UTC(), true, true
	case TimeTicks:
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return time.Time{}, false, false
		}
		return time.Unix(0, (n-unixEpochTicks)*100).UTC(), true, true
	case TimeMicrosoftDate:
		m := msDateRegex.FindStringSubmatch(text)
		if m == nil {
			return time.Time{}, false, false
		}
		msText := m[1]
		if msText == "" {
			msText = m[5]
		}
		ms, err := strconv.ParseInt(msText, 10, 64)
		if err != nil {
			return time.Time{}, false, false
		}
		t := time.UnixMilli(ms).UTC()
		if m[2] != "" {
			hours, _ := strconv.Atoi(m[3])
			mins, _ := strconv.Atoi(m[4])
			offset := (hours*60 + mins) * 60
			if m[2] == "-" {
				offset = -offset
			}
			t = t.In(time.FixedZone("", offset))
		}
		return t, true, true
	}
	return time.Time{}, false, false
}

// detectTimeFormat infers the encoding of text from its shape: the
// vendor date wrapper, ISO-8601 variants, then bare numbers split into
// unix seconds, unix milliseconds and ticks by digit count.
func detectTimeFormat(text string) (TimeFormat, bool) {
	switch {
	case msDateRegex.MatchString(text):
		return TimeMicrosoftDate, true
	case isoZonedRegex.MatchString(text) || isoLocalRegex.MatchString(text):
		return TimeISO8601, true
	case plainIntRegex.MatchString(text):
		digits := len(strings.TrimPrefix(text, "-"))
		switch {
		case digits <= 11:
			return TimeUnixSeconds, true
		case digits <= 14:
			return TimeUnixMilliseconds, true
		default:
			return TimeTicks, true
		}
	case plainNumRegex.MatchString(text):
		return TimeUnixSeconds, true
	}
	return TimeAuto, false
}

// applyKind converts or relabels a decoded instant per the desired kind.
func applyKind(t time.Time, hadZone bool, kind TimeKind) time.Time {
	switch kind {
	case KindUTC:
		if hadZone {
			return t.UTC()
		}
		return relabel(t, time.UTC)
	case KindLocal:
		if hadZone {
			return t.In(time.Local)
		}
		return relabel(t, time.Local)
	default:
		// Unspecified: keep the clock reading, shed the zone tag.
		if hadZone {
			return relabel(t, time.UTC)
		}
		return t
	}
}

// relabel keeps every clock field of t and attaches loc without
// converting.
func relabel(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// TryGetTime interprets the value as an instant. An out-of-range format
// or kind panics; everything else fails soft.
func TryGetTime(v model.Value, format TimeFormat, kind TimeKind, expect model.Type) (time.Time, bool) {
	format.check()
	kind.check()
	text, ok := trimmed(v, expect)
	if !ok || text == "" {
		return time.Time{}, false
	}
	if format == TimeAuto {
		format, ok = detectTimeFormat(text)
		if !ok {
			return time.Time{}, false
		}
	}
	t, hadZone, ok := parseInstant(text, format)
	if !ok {
		return time.Time{}, false
	}
	return applyKind(t, hadZone, kind), true
}

// AsTime returns the value as an instant, or nil when it cannot convert.
func AsTime(v model.Value, format TimeFormat, kind TimeKind, expect model.Type) *time.Time {
	if t, ok := TryGetTime(v, format, kind, expect); ok {
		return &t
	}
	return nil
}

// TimeOrDefault returns the value as an instant, or def when it cannot
// convert.
func TimeOrDefault(v model.Value, def time.Time, format TimeFormat, kind TimeKind, expect model.Type) time.Time {
	if t, ok := TryGetTime(v, format, kind, expect); ok {
		return t
	}
	return def
}

// TimeToJSON encodes an instant. TimeAuto encodes as ISO-8601.
func TimeToJSON(t time.Time, format TimeFormat) model.Value {
	format.check()
	switch format {
	case TimeUnixSeconds:
		return model.NewNumber(strconv.FormatInt(t.Unix(), 10))
	case TimeUnixMilliseconds:
		return model.NewNumber(strconv.FormatInt(t.UnixMilli(), 10))
	case TimeTicks:
		return model.NewNumber(strconv.FormatInt(t.UnixNano()/100+unixEpochTicks, 10))
	case TimeMicrosoftDate:
		return model.NewString(fmt.Sprintf("/Date(%d)/", t.UnixMilli()))
	default:
		return model.NewString(t.Format(time.RFC3339Nano))
	}
}

// TryGetDate interprets the value as a calendar date: the instant parsers
// run first and the clock part is truncated away.
func TryGetDate(v model.Value, format TimeFormat, expect model.Type) (time.Time, bool) {
	t, ok := TryGetTime(v, format, KindUnspecified, expect)
	if !ok {
		return time.Time{}, false
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), true
}

// AsDate returns the value as a calendar date, or nil when it cannot
// convert.
func AsDate(v model.Value, format TimeFormat, expect model.Type) *time.Time {
	if t, ok := TryGetDate(v, format, expect); ok {
		return &t
	}
	return nil
}

// DateOrDefault returns the value as a calendar date, or def when it
// cannot convert.
func DateOrDefault(v model.Value, def time.Time, format TimeFormat, expect model.Type) time.Time {
	if t, ok := TryGetDate(v, format, expect); ok {
		return t
	}
	return def
}

// DateToJSON encodes a calendar date as an ISO "2006-01-02" string.
func DateToJSON(t time.Time) model.Value {
	return model.NewString(t.Format("2006-01-02"))
}
