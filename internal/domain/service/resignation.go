package service

import (
	"context"
	"fmt"
	"log"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
)

type resignationService struct {
	dm contract.DataManager
}

func newResignation(dm contract.DataManager) *resignationService {
	return &resignationService{dm: dm}
}

// Resign removes every trace of the employee: all role tables and the vacation table.
// Missing rows are fine; either every delete applies or none does.
func (s *resignationService) Resign(ctx context.Context, employeeID int64) error {
	if employeeID <= 0 {
		return domain.ErrMissingIdentity
	}

	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, role := range domain.Roles {
			if err := tx.Employee().Delete(ctx, role, employeeID); err != nil {
				return err
			}
		}

		return tx.Vacation().Delete(ctx, employeeID)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	log.Printf("Employee %d resigned, records deleted", employeeID)
	return nil
}
