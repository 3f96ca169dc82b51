package service

import (
	"context"
	"sync"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
)

// identitySessions remembers which employee is behind each chat user
type identitySessions struct {
	mu        sync.RWMutex
	employees contract.EmployeeService
	ids       map[string]int64
}

func newIdentitySessions(employees contract.EmployeeService) *identitySessions {
	return &identitySessions{
		employees: employees,
		ids:       make(map[string]int64),
	}
}

func (s *identitySessions) Set(chatUserID string, employeeID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[chatUserID] = employeeID
}

func (s *identitySessions) Forget(chatUserID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, chatUserID)
}

// Resolve falls back to the chat user recorded at registration, so identities survive restarts
func (s *identitySessions) Resolve(ctx context.Context, chatUserID string) (int64, error) {
	s.mu.RLock()
	id, ok := s.ids[chatUserID]
	s.mu.RUnlock()
	if ok {
		return id, nil
	}

	employee, err := s.employees.FindByChatUser(ctx, chatUserID)
	if err != nil {
		return 0, err
	}
	if employee == nil {
		return 0, domain.ErrMissingIdentity
	}

	s.Set(chatUserID, employee.ID)
	return employee.ID, nil
}
