package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
)

type vacationRepo struct {
	db dbConn
}

func newVacationRepo(db dbConn) contract.VacationRepo {
	return &vacationRepo{db: db}
}

// Upsert replaces any previous vacation of the employee in a single statement
func (r *vacationRepo) Upsert(ctx context.Context, vacation *entity.Vacation) error {
	query := `
		INSERT INTO user_vacations (tab_number, start_date, end_date)
		VALUES (?, ?, ?)
		ON CONFLICT(tab_number) DO UPDATE SET
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query,
		vacation.EmployeeID,
		vacation.StartDate,
		vacation.EndDate,
	)
	if err != nil {
		return fmt.Errorf("failed to save vacation: %w", err)
	}

	return nil
}

func (r *vacationRepo) GetByEmployeeID(ctx context.Context, employeeID int64) (*entity.Vacation, error) {
	vacation := &entity.Vacation{}
	query := `
		SELECT tab_number, start_date, end_date
		FROM user_vacations
		WHERE tab_number = ?
	`

	err := r.db.QueryRowContext(ctx, query, employeeID).Scan(
		&vacation.EmployeeID,
		&vacation.StartDate,
		&vacation.EndDate,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vacation: %w", err)
	}

	return vacation, nil
}

func (r *vacationRepo) Delete(ctx context.Context, employeeID int64) error {
	query := `DELETE FROM user_vacations WHERE tab_number = ?`

	if _, err := r.db.ExecContext(ctx, query, employeeID); err != nil {
		return fmt.Errorf("failed to delete vacation: %w", err)
	}

	return nil
}
