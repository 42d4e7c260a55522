package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sathish136/mo-sub000/internal/domain/overtime"
	"github.com/sathish136/mo-sub000/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.Repository {
	return &overtimeRepository{db: db}
}

const overtimeInsertQuery = `
	INSERT INTO overtime_requests (id, employee_id, date, hours, status)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING created_at, updated_at
`

// Create implements overtime.Repository.
func (r *overtimeRepository) Create(ctx context.Context, req overtime.Request) (overtime.Request, error) {
	q := GetQuerier(ctx, r.db)
	return insertOvertimeRequest(ctx, q, req)
}

// CreateTx implements overtime.Repository.
func (r *overtimeRepository) CreateTx(ctx context.Context, tx pgx.Tx, req overtime.Request) (overtime.Request, error) {
	return insertOvertimeRequest(ctx, tx, req)
}

func insertOvertimeRequest(ctx context.Context, q database.Querier, req overtime.Request) (overtime.Request, error) {
	req.ID = uuid.NewString()

	err := q.QueryRow(ctx, overtimeInsertQuery,
		req.ID,
		req.EmployeeID,
		req.Date,
		req.Hours,
		req.Status,
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return overtime.Request{}, overtime.ErrRequestExists
		}
		return overtime.Request{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return req, nil
}

// GetByID implements overtime.Repository.
func (r *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT otr.id, otr.employee_id, otr.date, otr.hours, otr.status,
		       otr.created_at, otr.updated_at, e.full_name
		FROM overtime_requests otr
		JOIN employees e ON e.id = otr.employee_id
		WHERE otr.id = $1
	`

	var req overtime.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.Hours, &req.Status,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.Request{}, overtime.ErrRequestNotFound
		}
		return overtime.Request{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	return req, nil
}

// GetByEmployeeAndDate implements overtime.Repository.
func (r *overtimeRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT otr.id, otr.employee_id, otr.date, otr.hours, otr.status,
		       otr.created_at, otr.updated_at, e.full_name
		FROM overtime_requests otr
		JOIN employees e ON e.id = otr.employee_id
		WHERE otr.employee_id = $1
		  AND otr.date = $2
	`

	var req overtime.Request
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&req.ID, &req.EmployeeID, &req.Date, &req.Hours, &req.Status,
		&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get overtime request: %w", err)
	}

	return &req, nil
}

// ListInRange implements overtime.Repository.
func (r *overtimeRepository) ListInRange(ctx context.Context, start, end time.Time, employeeID *string) ([]overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT otr.id, otr.employee_id, otr.date, otr.hours, otr.status,
		       otr.created_at, otr.updated_at, e.full_name
		FROM overtime_requests otr
		JOIN employees e ON e.id = otr.employee_id
		WHERE otr.date BETWEEN $1 AND $2
	`
	args := []any{start, end}

	if employeeID != nil {
		query += " AND otr.employee_id = $3"
		args = append(args, *employeeID)
	}

	query += " ORDER BY otr.employee_id, otr.date"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	return scanOvertimeRequests(rows)
}

// List implements overtime.Repository.
func (r *overtimeRepository) List(ctx context.Context, filter overtime.Filter) ([]overtime.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT otr.id, otr.employee_id, otr.date, otr.hours, otr.status,
		       otr.created_at, otr.updated_at, e.full_name
		FROM overtime_requests otr
		JOIN employees e ON e.id = otr.employee_id
		WHERE 1=1
	`
	args := []any{}
	argPos := 1

	if filter.EmployeeID != nil {
		query += fmt.Sprintf(" AND otr.employee_id = $%d", argPos)
		args = append(args, *filter.EmployeeID)
		argPos++
	}
	if filter.Status != nil {
		query += fmt.Sprintf(" AND otr.status = $%d", argPos)
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		query += fmt.Sprintf(" AND otr.date >= $%d", argPos)
		args = append(args, *filter.StartDate)
		argPos++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		query += fmt.Sprintf(" AND otr.date <= $%d", argPos)
		args = append(args, *filter.EndDate)
		argPos++
	}

	query += " ORDER BY otr.date DESC, otr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	return scanOvertimeRequests(rows)
}

// UpdateStatus implements overtime.Repository.
func (r *overtimeRepository) UpdateStatus(ctx context.Context, id string, status overtime.RequestStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE overtime_requests
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update overtime request status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrRequestNotFound
	}

	return nil
}

func scanOvertimeRequests(rows pgx.Rows) ([]overtime.Request, error) {
	var requests []overtime.Request
	for rows.Next() {
		var req overtime.Request
		if err := rows.Scan(
			&req.ID, &req.EmployeeID, &req.Date, &req.Hours, &req.Status,
			&req.CreatedAt, &req.UpdatedAt, &req.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate overtime requests: %w", err)
	}
	return requests, nil
}
