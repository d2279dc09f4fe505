package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datelingo/datelingo"
)

func casualRef(t time.Time) *datelingo.Reference { return datelingo.NewReference(t) }

func resolve(t *testing.T, c *datelingo.Components) time.Time {
	t.Helper()
	got, err := c.Time()
	require.NoError(t, err)
	return got
}

func TestNow(t *testing.T) {
	instant := time.Date(2025, 1, 6, 9, 30, 45, 123000000, time.UTC)
	c := Now(casualRef(instant))

	assert.True(t, resolve(t, c).Equal(instant))
	assert.True(t, c.IsCertain(datelingo.FieldHour))
	assert.True(t, c.IsCertain(datelingo.FieldDay))
}

func TestTodayTomorrowYesterday(t *testing.T) {
	ref := casualRef(time.Date(2025, 1, 6, 9, 30, 0, 0, time.UTC))

	// The date is stated, the clock defaults to noon.
	assert.True(t, resolve(t, Today(ref)).Equal(time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)))
	assert.True(t, resolve(t, Tomorrow(ref)).Equal(time.Date(2025, 1, 7, 12, 0, 0, 0, time.UTC)))
	assert.True(t, resolve(t, Yesterday(ref)).Equal(time.Date(2025, 1, 5, 12, 0, 0, 0, time.UTC)))

	assert.True(t, Today(ref).IsCertain(datelingo.FieldDay))
	assert.False(t, Today(ref).IsCertain(datelingo.FieldHour))
}

func TestTomorrowAcrossMonthEnd(t *testing.T) {
	ref := casualRef(time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC))
	assert.True(t, resolve(t, Tomorrow(ref)).Equal(time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)))

	ref = casualRef(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))
	assert.True(t, resolve(t, Yesterday(ref)).Equal(time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC)))
}

func TestMidnight(t *testing.T) {
	// Mentioned in the afternoon, midnight means the upcoming one.
	ref := casualRef(time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC))
	c := Midnight(ref)
	assert.True(t, resolve(t, c).Equal(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.True(t, c.IsCertain(datelingo.FieldHour))
	assert.False(t, c.IsCertain(datelingo.FieldDay))

	// In the small hours it is the midnight just past.
	ref = casualRef(time.Date(2025, 3, 1, 1, 0, 0, 0, time.UTC))
	assert.True(t, resolve(t, Midnight(ref)).Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNoon(t *testing.T) {
	ref := casualRef(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	c := Noon(ref)

	assert.True(t, resolve(t, c).Equal(time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)))
	assert.True(t, c.IsCertain(datelingo.FieldHour))
	assert.True(t, c.IsCertain(datelingo.FieldMinute))
}

func TestTonightAndLastNight(t *testing.T) {
	ref := casualRef(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))

	c := Tonight(ref)
	assert.True(t, resolve(t, c).Equal(time.Date(2025, 1, 6, 22, 0, 0, 0, time.UTC)))
	assert.False(t, c.IsCertain(datelingo.FieldHour))

	c = LastNight(ref)
	assert.True(t, resolve(t, c).Equal(time.Date(2025, 1, 5, 22, 0, 0, 0, time.UTC)))
}

func TestTimeOfDayWords(t *testing.T) {
	ref := casualRef(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))

	tests := []struct {
		name  string
		build func(*datelingo.Reference) *datelingo.Components
		hour  int
	}{
		{"morning", Morning, 6},
		{"afternoon", Afternoon, 15},
		{"evening", Evening, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.build(ref)
			hour, ok := c.Get(datelingo.FieldHour)
			assert.True(t, ok)
			assert.Equal(t, tt.hour, hour)
			assert.False(t, c.IsCertain(datelingo.FieldHour))
		})
	}
}
