package en

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datelingo/datelingo"
)

// Monday, noon UTC.
var refMonday = datelingo.NewReference(time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC))

func parseOne(t *testing.T, text string, ref *datelingo.Reference) *datelingo.Result {
	t.Helper()
	results := Parse(text, ref, datelingo.Option{})
	require.Len(t, results, 1, "input %q", text)
	return results[0]
}

func TestParseSingleInstant(t *testing.T) {
	utc := func(y int, m time.Month, d, hh, mm, ss, ms int) time.Time {
		return time.Date(y, m, d, hh, mm, ss, ms*int(time.Millisecond), time.UTC)
	}

	tests := []struct {
		in   string
		want time.Time
	}{
		{"today", utc(2025, 1, 6, 12, 0, 0, 0)},
		{"tomorrow", utc(2025, 1, 7, 12, 0, 0, 0)},
		{"tmr", utc(2025, 1, 7, 12, 0, 0, 0)},
		{"yesterday", utc(2025, 1, 5, 12, 0, 0, 0)},
		{"last night", utc(2025, 1, 5, 22, 0, 0, 0)},
		{"tonight", utc(2025, 1, 6, 22, 0, 0, 0)},
		{"noon", utc(2025, 1, 6, 12, 0, 0, 0)},
		{"this morning", utc(2025, 1, 6, 6, 0, 0, 0)},
		{"midnight", utc(2025, 1, 7, 0, 0, 0, 0)},
		{"next Friday at 3pm", utc(2025, 1, 10, 15, 0, 0, 0)},
		{"on Friday", utc(2025, 1, 3, 12, 0, 0, 0)},
		{"last Friday", utc(2025, 1, 3, 12, 0, 0, 0)},
		{"3 days ago", utc(2025, 1, 3, 12, 0, 0, 0)},
		{"2 hours ago", utc(2025, 1, 6, 10, 0, 0, 0)},
		{"in 2 weeks", utc(2025, 1, 20, 12, 0, 0, 0)},
		{"an hour from now", utc(2025, 1, 6, 13, 0, 0, 0)},
		{"next month", utc(2025, 2, 6, 12, 0, 0, 0)},
		{"last year", utc(2024, 1, 6, 12, 0, 0, 0)},
		{"at 3", utc(2025, 1, 6, 3, 0, 0, 0)},
		{"15:30", utc(2025, 1, 6, 15, 30, 0, 0)},
		{"5:57:51.720 pm", utc(2025, 1, 6, 17, 57, 51, 720)},
		{"Jan 15, 2020", utc(2020, 1, 15, 12, 0, 0, 0)},
		{"September 17th, 2012", utc(2012, 9, 17, 12, 0, 0, 0)},
		{"oct 7 '70", utc(1970, 10, 7, 12, 0, 0, 0)},
		{"the 2nd of June 2021", utc(2021, 6, 2, 12, 0, 0, 0)},
		{"15 January 2020", utc(2020, 1, 15, 12, 0, 0, 0)},
		{"8/10/2024", utc(2024, 8, 10, 12, 0, 0, 0)},
		{"03/19/12", utc(2012, 3, 19, 12, 0, 0, 0)},
		{"2024-01-15", utc(2024, 1, 15, 12, 0, 0, 0)},
		{"in May 2026", utc(2026, 5, 1, 12, 0, 0, 0)},
		{"see you in March", utc(2025, 3, 1, 12, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r := parseOne(t, tt.in, refMonday)
			got, err := r.Time()
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestParseNextFridayAtThreePM(t *testing.T) {
	r := parseOne(t, "next Friday at 3pm", refMonday)

	assert.Equal(t, "next Friday at 3pm", r.Text)
	assert.Equal(t, 0, r.Index)
	assert.Equal(t,
		[]datelingo.Field{datelingo.FieldHour, datelingo.FieldMinute, datelingo.FieldWeekday},
		r.Start.CertainFields())

	got, err := r.Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)))
}

func TestParseDaysAgoKeepsRelativeTag(t *testing.T) {
	r := parseOne(t, "3 days ago", refMonday)

	assert.True(t, r.Start.HasTag("relativeDate"))
	assert.True(t, r.Start.IsCertain(datelingo.FieldDay))
	assert.False(t, r.Start.IsCertain(datelingo.FieldHour))

	r = parseOne(t, "2 hours ago", refMonday)
	assert.True(t, r.Start.HasTag("relativeTime"))
	assert.True(t, r.Start.IsCertain(datelingo.FieldHour))
}

func TestParseInvalidDateYieldsNothing(t *testing.T) {
	assert.Empty(t, Parse("February 30th", refMonday, datelingo.Option{}))
	assert.Empty(t, Parse("April 31", refMonday, datelingo.Option{}))
}

func TestParseWordBoundaries(t *testing.T) {
	assert.Empty(t, Parse("tomorrowland", refMonday, datelingo.Option{}))
	assert.Empty(t, Parse("saturday_night_fever.mp3", refMonday, datelingo.Option{}))
}

func TestParseAmbiguousMonthWords(t *testing.T) {
	// "may" and "march" only read as months after a leading "in".
	assert.Empty(t, Parse("may I help you", refMonday, datelingo.Option{}))
	assert.Empty(t, Parse("they march at dawn", refMonday, datelingo.Option{}))

	// A word merely ending in "in" does not count.
	assert.Empty(t, Parse("the dolphin may bite", refMonday, datelingo.Option{}))
	assert.Empty(t, Parse("from the cabin march east", refMonday, datelingo.Option{}))

	r := parseOne(t, "see you in March", refMonday)
	assert.Equal(t, "March", r.Text)
}

func TestParseYearSuffix(t *testing.T) {
	r := parseOne(t, "in May 2026", refMonday)

	assert.Equal(t, "May 2026", r.Text)
	assert.Equal(t,
		[]datelingo.Field{datelingo.FieldYear, datelingo.FieldMonth},
		r.Start.CertainFields())
}

func TestParseYearSuffixDoesNotOverlapNextResult(t *testing.T) {
	// The 4 digits after "May" open a full date of their own; the
	// bare month must not absorb them as a year suffix.
	results := Parse("in May 2024-01-15", refMonday, datelingo.Option{})
	require.Len(t, results, 2)

	assert.Equal(t, "May", results[0].Text)
	assert.False(t, results[0].Start.IsCertain(datelingo.FieldYear))
	assert.Equal(t, "2024-01-15", results[1].Text)
	assert.LessOrEqual(t, results[0].Index+len(results[0].Text), results[1].Index)
}

func TestParseTimeRange(t *testing.T) {
	r := parseOne(t, "9am-5pm", refMonday)
	require.True(t, r.IsRange())

	start, err := r.Time()
	require.NoError(t, err)
	end, err := r.EndTime()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC)))
	assert.True(t, end.Equal(time.Date(2025, 1, 6, 17, 0, 0, 0, time.UTC)))
}

func TestParseTimeRangeCrossingMidnight(t *testing.T) {
	r := parseOne(t, "10pm to 1am", refMonday)
	require.True(t, r.IsRange())

	start, err := r.Time()
	require.NoError(t, err)
	end, err := r.EndTime()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, 1, 6, 22, 0, 0, 0, time.UTC)))
	assert.True(t, end.Equal(time.Date(2025, 1, 7, 1, 0, 0, 0, time.UTC)))
}

func TestParseWeekdayRange(t *testing.T) {
	r := parseOne(t, "Monday to Friday", refMonday)
	require.True(t, r.IsRange())

	start, err := r.Time()
	require.NoError(t, err)
	end, err := r.EndTime()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)))
	assert.True(t, end.Equal(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)))
}

func TestParseISOWithZone(t *testing.T) {
	// A reference in another zone must not shift an explicit offset.
	ref := datelingo.NewReferenceWithOffset(time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC), -300)

	r := parseOne(t, "2024-01-15T10:30:00Z", ref)
	got, err := r.Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)))
	assert.True(t, r.Start.IsCertain(datelingo.FieldTimezoneOffset))

	r = parseOne(t, "2024-01-15T10:30:00+07:00", ref)
	got, err = r.Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, 1, 15, 3, 30, 0, 0, time.UTC)))
}

func TestParseForwardDateBias(t *testing.T) {
	// Wednesday reference; a bare "Monday" normally resolves two
	// days back, the forward bias pushes it to the coming week.
	ref := datelingo.NewReference(time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC))

	results := Parse("Monday", ref, datelingo.Option{})
	require.Len(t, results, 1)
	got, err := results[0].Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)))

	results = Parse("Monday", ref, datelingo.Option{ForwardDate: true})
	require.Len(t, results, 1)
	got, err = results[0].Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC)))
}

func TestParseForwardDateBiasKeepsRangeOrdered(t *testing.T) {
	ref := datelingo.NewReference(time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC))

	results := Parse("Monday to Friday", ref, datelingo.Option{ForwardDate: true})
	require.Len(t, results, 1)
	require.True(t, results[0].IsRange())

	start, err := results[0].Time()
	require.NoError(t, err)
	end, err := results[0].EndTime()
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC)))
	assert.True(t, end.Equal(time.Date(2025, 1, 17, 12, 0, 0, 0, time.UTC)))
}

func TestParseMultipleResultsAreDisjoint(t *testing.T) {
	results := Parse("May 8, 2009 5:57:51 PM and 2024-01-15", refMonday, datelingo.Option{})
	require.Len(t, results, 2)

	first, err := results[0].Time()
	require.NoError(t, err)
	assert.True(t, first.Equal(time.Date(2009, 5, 8, 17, 57, 51, 0, time.UTC)))

	second, err := results[1].Time()
	require.NoError(t, err)
	assert.True(t, second.Equal(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)))

	for i := 1; i < len(results); i++ {
		prev := results[i-1]
		assert.LessOrEqual(t, prev.Index+len(prev.Text), results[i].Index)
	}
}

func TestParseWeekdayDateMerge(t *testing.T) {
	r := parseOne(t, "Friday, Jan 10 2025", refMonday)

	assert.Equal(t, "Friday, Jan 10 2025", r.Text)
	assert.True(t, r.Start.IsCertain(datelingo.FieldWeekday))
	assert.True(t, r.Start.IsCertain(datelingo.FieldDay))

	got, err := r.Time()
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)))
}

func TestStrictConfiguration(t *testing.T) {
	cfg := Strict()

	results := datelingo.Parse("tomorrow at 2024-01-15", refMonday, cfg, datelingo.Option{})
	require.Len(t, results, 1)
	assert.Equal(t, "2024-01-15", results[0].Text)

	assert.Empty(t, datelingo.Parse("next Friday", refMonday, cfg, datelingo.Option{}))
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("tomorrow", refMonday)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 1, 7, 12, 0, 0, 0, time.UTC)))

	_, err = ParseDate("hello world", refMonday)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no date found")
}

func TestMustParseDate(t *testing.T) {
	got := MustParseDate("2024-01-15", refMonday)
	assert.True(t, got.Equal(time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)))

	assert.Panics(t, func() { MustParseDate("hello world", refMonday) })
}
