package attendance

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// To24Hour normalizes a time-of-day string to "HH:MM". It accepts both
// 24-hour input ("17:30") and 12-hour input with a meridiem suffix
// ("5:30 PM"). "12:xx AM" maps to hour zero.
func To24Hour(timeStr string) (string, error) {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return "", fmt.Errorf("empty time string")
	}

	parts := strings.Fields(timeStr)
	clock := parts[0]
	var modifier string
	if len(parts) > 1 {
		modifier = strings.ToUpper(parts[1])
	}

	hm := strings.Split(clock, ":")
	if len(hm) < 2 {
		return "", fmt.Errorf("invalid time format: %q", timeStr)
	}

	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return "", fmt.Errorf("invalid time format: %q", timeStr)
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil {
		return "", fmt.Errorf("invalid time format: %q", timeStr)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("time out of range: %q", timeStr)
	}

	if modifier == "PM" && hours < 12 {
		hours += 12
	}
	if modifier == "AM" && hours == 12 {
		hours = 0
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}

// minutesOfDay parses an "HH:MM" string into minutes since midnight.
func minutesOfDay(hhmm string) (int, error) {
	hm := strings.Split(hhmm, ":")
	if len(hm) < 2 {
		return 0, fmt.Errorf("invalid time format: %q", hhmm)
	}
	hours, err := strconv.Atoi(hm[0])
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, err
	}
	return hours*60 + minutes, nil
}

// WorkedHoursBetween returns the signed difference out - in, in hours,
// rounded to two decimal places. A negative result is returned as-is; the
// caller decides whether to reject it or wrap it.
func WorkedHoursBetween(in24, out24 string) (decimal.Decimal, error) {
	inMins, err := minutesOfDay(in24)
	if err != nil {
		return decimal.Zero, err
	}
	outMins, err := minutesOfDay(out24)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(int64(outMins - inMins)).
		DivRound(decimal.NewFromInt(60), 2), nil
}

// workedHoursWrapped is WorkedHoursBetween with overnight spans wrapped
// forward by 24 hours, for read-side views where the record is already
// closed.
func workedHoursWrapped(in24, out24 string) (decimal.Decimal, error) {
	hours, err := WorkedHoursBetween(in24, out24)
	if err != nil {
		return decimal.Zero, err
	}
	if hours.IsNegative() {
		hours = hours.Add(decimal.NewFromInt(24))
	}
	return hours, nil
}
