package database

import (
	"context"
	"fmt"

	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db           *DB
	employeeRepo contract.EmployeeRepo
	vacationRepo contract.VacationRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.employeeRepo = newEmployeeRepo(i.db.conn)
	i.vacationRepo = newVacationRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		employeeRepo: newEmployeeRepo(db),
		vacationRepo: newVacationRepo(db),
	}
}

// Employee returns the employee repository
func (i *instance) Employee() contract.EmployeeRepo {
	return i.employeeRepo
}

// Vacation returns the vacation repository
func (i *instance) Vacation() contract.VacationRepo {
	return i.vacationRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	if i.db == nil {
		// already inside a transaction
		return fn(i)
	}

	tx, err := i.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
