package contract

import (
	"context"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Employee() EmployeeRepo
	Vacation() VacationRepo
}

// EmployeeRepo defines the contract for the per-role employee tables
type EmployeeRepo interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, role domain.Role, id int64) (*entity.Employee, error)
	GetByChatUserID(ctx context.Context, chatUserID string) (*entity.Employee, error)
	SetChatUserID(ctx context.Context, role domain.Role, id int64, chatUserID string) error
	SetOnShift(ctx context.Context, id int64, onShift bool) error
	ListByRole(ctx context.Context, role domain.Role) ([]*entity.Employee, error)
	GetOnShift(ctx context.Context) ([]*entity.Employee, error)
	Delete(ctx context.Context, role domain.Role, id int64) error
}

// VacationRepo defines the contract for the vacation table, one row per employee
type VacationRepo interface {
	Upsert(ctx context.Context, vacation *entity.Vacation) error
	GetByEmployeeID(ctx context.Context, employeeID int64) (*entity.Vacation, error)
	Delete(ctx context.Context, employeeID int64) error
}
