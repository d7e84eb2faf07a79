package attendance

import "errors"

var (
	ErrAlreadyCompleted     = errors.New("attendance already completed for this day")
	ErrOutTimeRequired      = errors.New("please provide out time")
	ErrTimeConversionFailed = errors.New("time conversion failed")
	ErrNegativeWorkedHours  = errors.New("worked hours calculation failed")
	ErrRecordNotFound       = errors.New("attendance record not found")
)
