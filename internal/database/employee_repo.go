package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
)

// roleTables maps each role to its own table; the identification number joins them
var roleTables = map[domain.Role]string{
	domain.RoleUser:     "users_user_bot",
	domain.RoleDirector: "users_dir_bot",
	domain.RoleAdmin:    "users_admin_bot",
}

const employeeColumns = `tab_number, name, phone, location, is_on_shift, chat_user_id, created_at`

type employeeRepo struct {
	db dbConn
}

func newEmployeeRepo(db dbConn) contract.EmployeeRepo {
	return &employeeRepo{db: db}
}

func tableFor(role domain.Role) (string, error) {
	table, ok := roleTables[role]
	if !ok {
		return "", fmt.Errorf("unknown role %q", role)
	}
	return table, nil
}

func (r *employeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	table, err := tableFor(employee.Role)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO ` + table + ` (tab_number, name, phone, location, is_on_shift, chat_user_id)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		employee.ID,
		employee.Name,
		employee.Phone,
		employee.Location,
		employee.OnShift,
		nullString(employee.ChatUserID),
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

func (r *employeeRepo) GetByID(ctx context.Context, role domain.Role, id int64) (*entity.Employee, error) {
	table, err := tableFor(role)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + employeeColumns + ` FROM ` + table + ` WHERE tab_number = ?`

	employee, err := scanEmployee(r.db.QueryRowContext(ctx, query, id), role)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	return employee, nil
}

// GetByChatUserID searches every role table, admins first
func (r *employeeRepo) GetByChatUserID(ctx context.Context, chatUserID string) (*entity.Employee, error) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleDirector, domain.RoleUser} {
		query := `SELECT ` + employeeColumns + ` FROM ` + roleTables[role] + ` WHERE chat_user_id = ?`

		employee, err := scanEmployee(r.db.QueryRowContext(ctx, query, chatUserID), role)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get employee by chat user: %w", err)
		}
		return employee, nil
	}

	return nil, nil
}

func (r *employeeRepo) SetChatUserID(ctx context.Context, role domain.Role, id int64, chatUserID string) error {
	table, err := tableFor(role)
	if err != nil {
		return err
	}

	query := `UPDATE ` + table + ` SET chat_user_id = ? WHERE tab_number = ?`

	if _, err := r.db.ExecContext(ctx, query, nullString(chatUserID), id); err != nil {
		return fmt.Errorf("failed to set chat user: %w", err)
	}

	return nil
}

// SetOnShift only applies to regular employees
func (r *employeeRepo) SetOnShift(ctx context.Context, id int64, onShift bool) error {
	query := `UPDATE users_user_bot SET is_on_shift = ? WHERE tab_number = ?`

	result, err := r.db.ExecContext(ctx, query, onShift, id)
	if err != nil {
		return fmt.Errorf("failed to update shift status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return domain.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepo) ListByRole(ctx context.Context, role domain.Role) ([]*entity.Employee, error) {
	table, err := tableFor(role)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + employeeColumns + ` FROM ` + table + ` ORDER BY tab_number ASC`

	return r.query(ctx, role, query)
}

func (r *employeeRepo) GetOnShift(ctx context.Context) ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM users_user_bot
		WHERE is_on_shift = 1
		ORDER BY tab_number ASC
	`

	return r.query(ctx, domain.RoleUser, query)
}

func (r *employeeRepo) Delete(ctx context.Context, role domain.Role, id int64) error {
	table, err := tableFor(role)
	if err != nil {
		return err
	}

	query := `DELETE FROM ` + table + ` WHERE tab_number = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to delete employee from %s: %w", table, err)
	}

	return nil
}

func (r *employeeRepo) query(ctx context.Context, role domain.Role, query string, args ...interface{}) ([]*entity.Employee, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}
	defer rows.Close()

	var employees []*entity.Employee
	for rows.Next() {
		employee, err := scanEmployee(rows, role)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, employee)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner, role domain.Role) (*entity.Employee, error) {
	employee := &entity.Employee{Role: role}
	var chatUserID sql.NullString

	err := row.Scan(
		&employee.ID,
		&employee.Name,
		&employee.Phone,
		&employee.Location,
		&employee.OnShift,
		&chatUserID,
		&employee.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	employee.ChatUserID = chatUserID.String
	return employee, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
