package database

import (
	"context"
	"testing"
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain/calendar"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVacationRepo_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newVacationRepo(db.conn)

	first := &entity.Vacation{
		EmployeeID: 4471,
		StartDate:  calendar.New(2099, time.December, 1),
		EndDate:    calendar.New(2099, time.December, 15),
	}
	require.NoError(t, repo.Upsert(ctx, first))

	found, err := repo.GetByEmployeeID(ctx, 4471)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, *first, *found)

	t.Run("should replace the previous vacation of the same employee", func(t *testing.T) {
		second := &entity.Vacation{
			EmployeeID: 4471,
			StartDate:  calendar.New(2100, time.March, 2),
			EndDate:    calendar.New(2100, time.March, 9),
		}
		require.NoError(t, repo.Upsert(ctx, second))

		found, err := repo.GetByEmployeeID(ctx, 4471)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, *second, *found)

		var count int
		err = db.conn.QueryRow(`SELECT COUNT(*) FROM user_vacations WHERE tab_number = ?`, 4471).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("should keep other employees untouched", func(t *testing.T) {
		other := &entity.Vacation{
			EmployeeID: 900,
			StartDate:  calendar.New(2099, time.July, 1),
			EndDate:    calendar.New(2099, time.July, 3),
		}
		require.NoError(t, repo.Upsert(ctx, other))

		found, err := repo.GetByEmployeeID(ctx, 4471)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, calendar.New(2100, time.March, 2), found.StartDate)
	})

	t.Run("should refuse an end date before the start date", func(t *testing.T) {
		invalid := &entity.Vacation{
			EmployeeID: 1,
			StartDate:  calendar.New(2099, time.July, 3),
			EndDate:    calendar.New(2099, time.July, 1),
		}
		assert.Error(t, repo.Upsert(ctx, invalid))

		found, err := repo.GetByEmployeeID(ctx, 1)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestVacationRepo_Delete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newVacationRepo(db.conn)

	require.NoError(t, repo.Upsert(ctx, &entity.Vacation{
		EmployeeID: 3,
		StartDate:  calendar.New(2099, time.January, 10),
		EndDate:    calendar.New(2099, time.January, 20),
	}))

	require.NoError(t, repo.Delete(ctx, 3))

	found, err := repo.GetByEmployeeID(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.NoError(t, repo.Delete(ctx, 3))
}
