package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sathish136/mo-sub000/internal/domain/attendance"
	"github.com/sathish136/mo-sub000/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Upsert implements attendance.Repository. The (employee_id, date) pair is
// unique; a conflicting insert replaces the punch columns in place.
func (r *attendanceRepository) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	// The generated id only lands for a fresh row; a conflicting upsert keeps the
	// existing row's id, which RETURNING reports either way.
	query := `
		INSERT INTO attendance_records (id, employee_id, date, check_in, check_out, working_hours, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in,
		    check_out = EXCLUDED.check_out,
		    working_hours = EXCLUDED.working_hours,
		    source = EXCLUDED.source,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		record.EmployeeID,
		record.Date,
		record.CheckIn,
		record.CheckOut,
		record.WorkingHours,
		record.Source,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return record, nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.check_in, ar.check_out,
		       ar.working_hours, ar.source, ar.created_at, ar.updated_at,
		       e.full_name, e.employee_group
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.employee_id = $1
		  AND ar.date = $2
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.WorkingHours, &rec.Source, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeeGroup,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// ListRange implements attendance.Repository.
func (r *attendanceRepository) ListRange(ctx context.Context, start, end time.Time, employeeID, group *string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.check_in, ar.check_out,
		       ar.working_hours, ar.source, ar.created_at, ar.updated_at,
		       e.full_name, e.employee_group
		FROM attendance_records ar
		JOIN employees e ON e.id = ar.employee_id
		WHERE ar.date BETWEEN $1 AND $2
	`
	args := []any{start, end}
	argPos := 3

	if employeeID != nil {
		query += fmt.Sprintf(" AND ar.employee_id = $%d", argPos)
		args = append(args, *employeeID)
		argPos++
	}
	if group != nil {
		query += fmt.Sprintf(" AND e.employee_group = $%d", argPos)
		args = append(args, *group)
		argPos++
	}

	query += " ORDER BY e.code, ar.date"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.WorkingHours, &rec.Source, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeeGroup,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return records, nil
}

// Delete implements attendance.Repository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}
