package service

import (
	"context"
	"fmt"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/calendar"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
)

type vacationService struct {
	dm contract.DataManager
}

func newVacation(dm contract.DataManager) *vacationService {
	return &vacationService{dm: dm}
}

// ValidateVacationRange checks ordering, then duration.
func ValidateVacationRange(start, end calendar.Date) error {
	if !end.After(start) {
		return domain.ErrOrderingViolation
	}

	if days := start.DaysUntil(end); days > domain.MaxVacationDays {
		return &domain.DurationExceededError{Days: days, MaxDays: domain.MaxVacationDays}
	}

	return nil
}

// Save replaces the employee's vacation with [start, end]
func (s *vacationService) Save(ctx context.Context, employeeID int64, start, end calendar.Date) error {
	if employeeID <= 0 {
		return domain.ErrMissingIdentity
	}

	if err := ValidateVacationRange(start, end); err != nil {
		return err
	}

	vacation := &entity.Vacation{
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
	}

	if err := s.dm.Vacation().Upsert(ctx, vacation); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return nil
}

func (s *vacationService) Get(ctx context.Context, employeeID int64) (*entity.Vacation, error) {
	vacation, err := s.dm.Vacation().GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	return vacation, nil
}

// OnVacation reports whether day falls inside the employee's booked vacation, both ends included
func (s *vacationService) OnVacation(ctx context.Context, employeeID int64, day calendar.Date) (bool, error) {
	vacation, err := s.Get(ctx, employeeID)
	if err != nil {
		return false, err
	}

	if vacation == nil {
		return false, nil
	}

	return !day.Before(vacation.StartDate) && !day.After(vacation.EndDate), nil
}
