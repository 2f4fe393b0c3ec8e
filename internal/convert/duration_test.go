package convert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsondom/internal/model"
)

func TestTryGetDurationClock(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Duration
		wantOK bool
	}{
		{"hh:mm:ss", "02:03:04", 2*time.Hour + 3*time.Minute + 4*time.Second, true},
		{"hh:mm only", "02:03", 2*time.Hour + 3*time.Minute, true},
		{"with days", "1.02:03:04", 26*time.Hour + 3*time.Minute + 4*time.Second, true},
		{"with fraction", "00:00:01.5", 1500 * time.Millisecond, true},
		{"full form", "1.02:03:04.5", 26*time.Hour + 3*time.Minute + 4*time.Second + 500*time.Millisecond, true},
		{"negative", "-01:00:00", -time.Hour, true},
		{"minutes out of range", "00:60:00", 0, false},
		{"seconds out of range", "00:00:60", 0, false},
		{"garbage", "abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TryGetDuration(model.NewString(tt.input), DurationClock, model.TypeAny)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTryGetDurationAuto(t *testing.T) {
	// Colons pick the clock form, bare numbers mean seconds.
	d, ok := TryGetDuration(model.NewString("01:30:00"), DurationAuto, model.TypeAny)
	require.True(t, ok)
	assert.Equal(t, 90*time.Minute, d)

	d, ok = TryGetDuration(model.NewNumber("1.5"), DurationAuto, model.TypeAny)
	require.True(t, ok)
	assert.Equal(t, 1500*time.Millisecond, d)
}

func TestTryGetDurationNumericFormats(t *testing.T) {
	d, ok := TryGetDuration(model.NewNumber("250"), DurationMilliseconds, model.TypeAny)
	require.True(t, ok)
	assert.Equal(t, 250*time.Millisecond, d)

	d, ok = TryGetDuration(model.NewNumber("10000000"), DurationTicks, model.TypeAny)
	require.True(t, ok)
	assert.Equal(t, time.Second, d)

	_, ok = TryGetDuration(model.NewNumber("1.5"), DurationTicks, model.TypeAny)
	assert.False(t, ok)
}

func TestDurationToJSON(t *testing.T) {
	d := 26*time.Hour + 3*time.Minute + 4*time.Second + 500*time.Millisecond

	v := DurationToJSON(d, DurationClock)
	assert.Equal(t, model.TypeString, v.Type())
	text, _ := v.Text()
	assert.Equal(t, "1.02:03:04.5", text)

	text, _ = DurationToJSON(-time.Hour, DurationClock).Text()
	assert.Equal(t, "-01:00:00", text)

	assert.Equal(t, "1.5", DurationToJSON(1500*time.Millisecond, DurationSeconds).String())
	assert.Equal(t, "250", DurationToJSON(250*time.Millisecond, DurationMilliseconds).String())
	assert.Equal(t, "10000000", DurationToJSON(time.Second, DurationTicks).String())
}

func TestDurationClockRoundTrip(t *testing.T) {
	inputs := []string{"1.02:03:04.5", "00:00:01.25", "23:59:59", "-01:02:03"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			d, ok := TryGetDuration(model.NewString(input), DurationClock, model.TypeAny)
			require.True(t, ok)
			text, _ := DurationToJSON(d, DurationClock).Text()
			assert.Equal(t, input, text)
		})
	}
}

func TestDurationInvalidFormatPanics(t *testing.T) {
	assert.Panics(t, func() {
		TryGetDuration(model.NewString("1"), DurationFormat(42), model.TypeAny)
	})
	assert.Panics(t, func() { DurationToJSON(time.Second, DurationFormat(-1)) })
}

func TestTryGetTimeOfDay(t *testing.T) {
	d, ok := TryGetTimeOfDay(model.NewString("13:45:30"), DurationAuto, model.TypeAny)
	require.True(t, ok)
	assert.Equal(t, 13*time.Hour+45*time.Minute+30*time.Second, d)

	// Values outside one day are rejected.
	_, ok = TryGetTimeOfDay(model.NewString("24:00:00"), DurationAuto, model.TypeAny)
	assert.False(t, ok)
	_, ok = TryGetTimeOfDay(model.NewString("-00:00:01"), DurationAuto, model.TypeAny)
	assert.False(t, ok)
	_, ok = TryGetTimeOfDay(model.NewString("1.01:00:00"), DurationAuto, model.TypeAny)
	assert.False(t, ok)
}

func TestTimeOfDayToJSON(t *testing.T) {
	text, _ := TimeOfDayToJSON(13*time.Hour + 45*time.Minute + 30*time.Second).Text()
	assert.Equal(t, "13:45:30", text)

	text, _ = TimeOfDayToJSON(time.Hour/2 + 125*time.Millisecond).Text()
	assert.Equal(t, "00:30:00.125", text)
}

func TestDurationShapes(t *testing.T) {
	assert.Nil(t, AsDuration(model.Null(), DurationAuto, model.TypeAny))
	assert.Nil(t, AsTimeOfDay(model.Null(), DurationAuto, model.TypeAny))
	assert.Equal(t, time.Minute, DurationOrDefault(model.Null(), time.Minute, DurationAuto, model.TypeAny))
	assert.Equal(t, time.Minute, TimeOfDayOrDefault(model.Null(), time.Minute, DurationAuto, model.TypeAny))
}
