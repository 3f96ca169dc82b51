package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
)

type employeeService struct {
	dm        contract.DataManager
	directory contract.StaffDirectory
}

func newEmployee(dm contract.DataManager, directory contract.StaffDirectory) *employeeService {
	return &employeeService{
		dm:        dm,
		directory: directory,
	}
}

// ParseEmployeeID accepts a positive integer, surrounding spaces allowed
func ParseEmployeeID(text string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidEmployeeID
	}
	return id, nil
}

// Register looks the number up in the staff directory and stores the employee in its role table.
// The boolean is true when the employee was already registered.
func (s *employeeService) Register(ctx context.Context, chatUserID, idText string) (*entity.Employee, bool, error) {
	id, err := ParseEmployeeID(idText)
	if err != nil {
		return nil, false, err
	}

	entry, err := s.directory.Lookup(ctx, id)
	if err != nil {
		return nil, false, err
	}

	role := domain.RoleOf(entry.RoleText)

	existing, err := s.dm.Employee().GetByID(ctx, role, id)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	if existing != nil {
		if existing.ChatUserID != chatUserID {
			if err := s.dm.Employee().SetChatUserID(ctx, role, id, chatUserID); err != nil {
				return nil, false, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
			}
			existing.ChatUserID = chatUserID
		}
		return existing, true, nil
	}

	employee := &entity.Employee{
		ID:         id,
		Name:       entry.Name,
		Role:       role,
		Phone:      entry.Phone,
		Location:   entry.Location,
		ChatUserID: chatUserID,
	}

	if err := s.dm.Employee().Create(ctx, employee); err != nil {
		return nil, false, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	log.Printf("Registered employee %d as %s", employee.ID, employee.Role)
	return employee, false, nil
}

func (s *employeeService) FindByChatUser(ctx context.Context, chatUserID string) (*entity.Employee, error) {
	employee, err := s.dm.Employee().GetByChatUserID(ctx, chatUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return employee, nil
}

// ErrNotAdministrator is returned when a non-admin tries to change shift duty
var ErrNotAdministrator = errors.New("only administrators can change shift duty")

// SetOnShift marks a regular employee as subject to meter reading duty
func (s *employeeService) SetOnShift(ctx context.Context, actorID, employeeID int64, onShift bool) error {
	admin, err := s.dm.Employee().GetByID(ctx, domain.RoleAdmin, actorID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	if admin == nil {
		return ErrNotAdministrator
	}

	if err := s.dm.Employee().SetOnShift(ctx, employeeID, onShift); err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	log.Printf("Administrator %d set on-shift=%t for employee %d", actorID, onShift, employeeID)
	return nil
}
