package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"17:30", "17:30"},
		{"09:00", "09:00"},
		{"9:05", "09:05"},
		{"5:30 PM", "17:30"},
		{"5:30 pm", "17:30"},
		{"12:00 PM", "12:00"},
		{"12:15 AM", "00:15"},
		{"11:59 PM", "23:59"},
		{"  8:00 AM ", "08:00"},
	}
	for _, c := range cases {
		got, err := To24Hour(c.input)
		require.NoError(t, err, "To24Hour(%q)", c.input)
		assert.Equal(t, c.want, got, "To24Hour(%q)", c.input)
	}
}

func TestTo24HourInvalid(t *testing.T) {
	invalid := []string{"", "  ", "930", "25:00", "10:75", "ab:cd"}
	for _, input := range invalid {
		_, err := To24Hour(input)
		assert.Error(t, err, "To24Hour(%q)", input)
	}
}

func TestWorkedHoursBetween(t *testing.T) {
	cases := []struct {
		in, out string
		want    string
	}{
		{"09:00", "17:30", "8.5"},
		{"09:00", "09:00", "0"},
		{"09:00", "17:20", "8.33"},
		{"08:15", "16:45", "8.5"},
	}
	for _, c := range cases {
		got, err := WorkedHoursBetween(c.in, c.out)
		require.NoError(t, err)
		assert.Equal(t, c.want, got.String(), "WorkedHoursBetween(%q, %q)", c.in, c.out)
	}
}

func TestWorkedHoursBetweenNegative(t *testing.T) {
	got, err := WorkedHoursBetween("22:00", "06:00")
	require.NoError(t, err)
	assert.True(t, got.IsNegative())
	assert.Equal(t, "-16", got.String())
}

func TestWorkedHoursWrapped(t *testing.T) {
	got, err := workedHoursWrapped("22:00", "06:00")
	require.NoError(t, err)
	assert.Equal(t, "8", got.String())

	got, err = workedHoursWrapped("09:00", "18:00")
	require.NoError(t, err)
	assert.Equal(t, "9", got.String())
}
