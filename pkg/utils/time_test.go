package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserTime(t *testing.T) {
	start, err := ParseUserTime("2024-03-20", false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), start)

	end, err := ParseUserTime("2024-03-20", true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 20, 23, 59, 59, 0, time.UTC), end)

	_, err = ParseUserTime("20/03/2024", false)
	assert.Error(t, err)
}

func TestParseUserTimeIn(t *testing.T) {
	loc := time.FixedZone("COT", -5*60*60)

	day, err := ParseUserTimeIn("2024-02-01", false, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, loc), day)
	assert.Equal(t, 1, day.In(loc).Day())

	stamped, err := ParseUserTimeIn("2024-02-01T00:00:00Z", false, loc)
	require.NoError(t, err)
	assert.True(t, stamped.Equal(time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "date only", input: "2024-01-05", want: "2024-01-05"},
		{name: "rfc3339 keeps its own offset", input: "2024-01-05T23:30:00+07:00", want: "2024-01-05"},
		{name: "utc", input: "2024-01-05T00:00:00Z", want: "2024-01-05"},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreviousMonth(t *testing.T) {
	year, month := PreviousMonth(time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2024, year)
	assert.Equal(t, time.December, month)

	year, month = PreviousMonth(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2025, year)
	assert.Equal(t, time.February, month)
}

func TestMonthBounds(t *testing.T) {
	start, end := MonthBounds(2024, time.February, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)
}
