package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly/hrops-backend/internal/domain/attendance"
)

// AttendanceJobs sweeps the attendance table for employees who never
// clocked in on the previous day and records them as absent.
type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{attendanceRepo: attendanceRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees inserts an Absent record for every employee with no
// attendance row on the previous day. Running the sweep twice is harmless
// because the missing-row query excludes employees already covered.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)

	missing, err := j.attendanceRepo.MissingForDate(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to find employees without attendance: %w", err)
	}

	if len(missing) == 0 {
		slog.Info("Cron: No absences to record")
		return nil
	}

	marked := 0
	for _, employeeID := range missing {
		record := attendance.Attendance{
			EmployeeID: employeeID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
		}
		if _, err := j.attendanceRepo.Create(ctx, record); err != nil {
			slog.Error("Cron: Failed to record absence",
				"employee_id", employeeID,
				"date", yesterday.Format("2006-01-02"),
				"error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Marked absent employees", "count", marked)
	return nil
}
