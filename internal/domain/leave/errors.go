package leave

import "errors"

var (
	ErrNoAttendanceForDate = errors.New("no attendance found for that date")
	ErrIncompleteTimes     = errors.New("incomplete in_time or out_time in attendance")
)
