package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/hrops-backend/internal/domain/request"
	"github.com/attendly/hrops-backend/internal/pkg/database"
)

type requestRepository struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepository{db: db}
}

// Create implements request.RequestRepository.
func (r *requestRepository) Create(ctx context.Context, req request.EmployeeRequest) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_requests
			(employee_id, request_type, reason, date, status, from_date, to_date, requested_date, leave_type, how_many_days)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_DATE, $8, $9)
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.RequestType, req.Reason, req.Date, req.Status,
		req.FromDate, req.ToDate, req.LeaveType, req.HowManyDays,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to create employee request: %w", err)
	}

	return id, nil
}

// UpdateStatus implements request.RequestRepository.
func (r *requestRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `UPDATE employee_requests SET status = $1 WHERE id = $2`, status, id); err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}

	return nil
}

// ListAsApprovalItems implements request.RequestRepository.
func (r *requestRepository) ListAsApprovalItems(ctx context.Context, status *string) ([]request.ApprovalItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.employee_id, e.full_name, r.request_type,
			   COALESCE(r.reason, ''), r.date, r.status,
			   r.from_date, r.to_date, r.requested_date, r.leave_type, r.how_many_days
		FROM employee_requests r
		JOIN employees e ON e.id = r.employee_id
	`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE r.status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY r.date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee requests: %w", err)
	}
	defer rows.Close()

	var items []request.ApprovalItem
	for rows.Next() {
		var item request.ApprovalItem
		if err := rows.Scan(
			&item.ID, &item.EmployeeID, &item.EmployeeName, &item.RequestType,
			&item.Reason, &item.Date, &item.Status,
			&item.FromDate, &item.ToDate, &item.RequestedDate, &item.LeaveType, &item.HowManyDays,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee request: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
