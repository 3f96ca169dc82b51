package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/calendar"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstance_WithTransaction(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	dm := NewInstance(db)

	t.Run("should commit every write", func(t *testing.T) {
		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Employee().Create(ctx, &entity.Employee{ID: 1, Name: "A", Role: domain.RoleUser}); err != nil {
				return err
			}
			return tx.Vacation().Upsert(ctx, &entity.Vacation{
				EmployeeID: 1,
				StartDate:  calendar.New(2099, time.May, 1),
				EndDate:    calendar.New(2099, time.May, 5),
			})
		})
		require.NoError(t, err)

		employee, err := dm.Employee().GetByID(ctx, domain.RoleUser, 1)
		require.NoError(t, err)
		assert.NotNil(t, employee)

		vacation, err := dm.Vacation().GetByEmployeeID(ctx, 1)
		require.NoError(t, err)
		assert.NotNil(t, vacation)
	})

	t.Run("should roll back every write on error", func(t *testing.T) {
		boom := errors.New("boom")

		err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
			if err := tx.Employee().Create(ctx, &entity.Employee{ID: 2, Name: "B", Role: domain.RoleUser}); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		employee, err := dm.Employee().GetByID(ctx, domain.RoleUser, 2)
		require.NoError(t, err)
		assert.Nil(t, employee)
	})
}

// employee 900 only exists in the regular employee table and has no vacation
func TestInstance_DeleteAcrossAllTables(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	dm := NewInstance(db)

	require.NoError(t, dm.Employee().Create(ctx, &entity.Employee{ID: 900, Name: "Resigning", Role: domain.RoleUser}))

	err := dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		for _, role := range domain.Roles {
			if err := tx.Employee().Delete(ctx, role, 900); err != nil {
				return err
			}
		}
		return tx.Vacation().Delete(ctx, 900)
	})
	require.NoError(t, err)

	for _, table := range []string{"users_user_bot", "users_dir_bot", "users_admin_bot", "user_vacations"} {
		var count int
		err := db.conn.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE tab_number = ?`, 900).Scan(&count)
		require.NoError(t, err)
		assert.Zero(t, count, "expected no rows for 900 in %s", table)
	}
}
