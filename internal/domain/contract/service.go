package contract

import (
	"context"

	"github.com/diegoclair/staff-desk-bot/internal/domain/calendar"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
)

// BotService receives inbound chat events and processes them one at a time
type BotService interface {
	// Submit processes msg and waits for the replies
	Submit(ctx context.Context, msg entity.InboundMessage) ([]entity.Reply, error)

	// Enqueue schedules msg for processing; replies are sent through the messenger
	Enqueue(ctx context.Context, msg entity.InboundMessage) error
}

type VacationService interface {
	Save(ctx context.Context, employeeID int64, start, end calendar.Date) error
	Get(ctx context.Context, employeeID int64) (*entity.Vacation, error)
	OnVacation(ctx context.Context, employeeID int64, day calendar.Date) (bool, error)
}

type EmployeeService interface {
	Register(ctx context.Context, chatUserID, idText string) (*entity.Employee, bool, error)
	FindByChatUser(ctx context.Context, chatUserID string) (*entity.Employee, error)
	SetOnShift(ctx context.Context, actorID, employeeID int64, onShift bool) error
}

type ResignationService interface {
	Resign(ctx context.Context, employeeID int64) error
}

type ReadingsService interface {
	Relay(ctx context.Context, chatUserID string, file entity.SharedFile) error
}

// ReminderDispatcher sends the weekly meter reading reminders
type ReminderDispatcher interface {
	Dispatch(ctx context.Context) (entity.DispatchSummary, error)
}
