package core

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDateOnly(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{
			name:     "utc midnight",
			date:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "instant with time of day",
			date:     time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "non utc zone equal to utc midnight",
			date:     time.Date(2024, 3, 15, 2, 0, 0, 0, time.FixedZone("CEST", 2*60*60)),
			expected: true,
		},
		{
			name:     "nanoseconds only",
			date:     time.Date(2024, 3, 15, 0, 0, 0, 1, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsDateOnly(tt.date))
		})
	}
}

func withLocalZone(t *testing.T, loc *time.Location) {
	t.Helper()

	old := time.Local
	time.Local = loc
	t.Cleanup(func() {
		time.Local = old
	})
}

func TestNormalizeDateKeepsCalendarDay(t *testing.T) {
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-7", -7*60*60),
		time.FixedZone("UTC+5:30", 5*60*60+30*60),
		time.FixedZone("UTC-11", -11*60*60),
	}

	for _, zone := range zones {
		t.Run(zone.String(), func(t *testing.T) {
			withLocalZone(t, zone)

			normalized := NormalizeDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
			year, month, day := normalized.Date()
			assert.Equal(t, 2024, year)
			assert.Equal(t, time.March, month)
			assert.Equal(t, 15, day)
		})
	}
}

func TestNormalizeDateInstantPassthrough(t *testing.T) {
	withLocalZone(t, time.FixedZone("UTC-7", -7*60*60))

	instant := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	assert.True(t, NormalizeDate(instant).Equal(instant))
	assert.Equal(t, instant, NormalizeDate(instant))
}

func TestFormatDateAcrossTimezones(t *testing.T) {
	co := testCore(t, nil)

	zones := []*time.Location{
		time.UTC,
		time.FixedZone("UTC-7", -7*60*60),
		time.FixedZone("UTC+13", 13*60*60),
	}

	for _, zone := range zones {
		t.Run(zone.String(), func(t *testing.T) {
			withLocalZone(t, zone)

			rc := co.testRenderContext(t, "es")
			rc.DateFormat = "dd/MM/yyyy"

			got := rc.FormatDate(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
			assert.Equal(t, "15/03/2024", got)
		})
	}
}

func TestFormatPattern(t *testing.T) {
	co := testCore(t, nil)
	en := co.testRenderContext(t, "en").Locale
	es := co.testRenderContext(t, "es").Locale

	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		pattern  string
		locale   *Locale
		expected string
	}{
		{"dd/MM/yyyy", en, "05/03/2024"},
		{"d/M/yy", en, "5/3/24"},
		{"MMMM yyyy", en, "March 2024"},
		{"MMMM yyyy", es, "marzo 2024"},
		{"d MMM yyyy", es, "5 mar 2024"},
		{"yyyy-MM-dd", en, "2024-03-05"},
		{"d 'of' MMMM", en, "5 'of' March"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.locale.Code, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatPattern(date, tt.pattern, tt.locale))
		})
	}
}

func TestFormatDateFromContext(t *testing.T) {
	co := testCore(t, nil)

	date := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := FormatDate(context.Background(), date)
	assert.ErrorIs(t, err, ErrNoRenderContext)

	ctx := WithRenderContext(context.Background(), co.testRenderContext(t, "en"))
	got, err := FormatDate(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "June 2019", got)
}
