package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sathish136/mo-sub000/internal/domain/leave"
	"github.com/sathish136/mo-sub000/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

// Create implements leave.Repository.
func (r *leaveRepository) Create(ctx context.Context, req leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	req.ID = uuid.NewString()

	query := `
		INSERT INTO leave_requests (id, employee_id, start_date, end_date, leave_type, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID,
		req.EmployeeID,
		req.StartDate,
		req.EndDate,
		req.LeaveType,
		req.Reason,
		req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.Repository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.start_date, lr.end_date, lr.leave_type,
		       lr.reason, lr.status, lr.created_at, lr.updated_at, e.full_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.id = $1
	`

	var req leave.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.LeaveType,
		&req.Reason, &req.Status, &req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Request{}, leave.ErrLeaveRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

// List implements leave.Repository.
func (r *leaveRepository) List(ctx context.Context, filter leave.Filter) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.start_date, lr.end_date, lr.leave_type,
		       lr.reason, lr.status, lr.created_at, lr.updated_at, e.full_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE 1=1
	`
	args := []any{}
	argPos := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND lr.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND lr.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		query += fmt.Sprintf(" AND lr.end_date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		query += fmt.Sprintf(" AND lr.start_date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	query += " ORDER BY lr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// ListApprovedInRange implements leave.Repository.
func (r *leaveRepository) ListApprovedInRange(ctx context.Context, start, end time.Time, employeeID *string) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.start_date, lr.end_date, lr.leave_type,
		       lr.reason, lr.status, lr.created_at, lr.updated_at, e.full_name
		FROM leave_requests lr
		JOIN employees e ON e.id = lr.employee_id
		WHERE lr.status = 'approved'
		  AND lr.start_date <= $2
		  AND lr.end_date >= $1
	`
	args := []any{start, end}

	if employeeID != nil {
		query += " AND lr.employee_id = $3"
		args = append(args, *employeeID)
	}

	query += " ORDER BY lr.employee_id, lr.start_date"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leave requests: %w", err)
	}
	defer rows.Close()

	return scanLeaveRequests(rows)
}

// UpdateStatus implements leave.Repository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.RequestStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE leave_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveRequestNotFound
	}

	return nil
}

func scanLeaveRequests(rows pgx.Rows) ([]leave.Request, error) {
	var requests []leave.Request
	for rows.Next() {
		var req leave.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.LeaveType,
			&req.Reason, &req.Status, &req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}
	return requests, nil
}
