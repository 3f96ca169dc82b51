package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/calendar"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_vacationService_Save(t *testing.T) {
	start := calendar.New(2099, time.December, 1)

	type args struct {
		employeeID int64
		start      calendar.Date
		end        calendar.Date
	}
	tests := []struct {
		name      string
		buildMock func(mocks allMocks, args args)
		args      args
		wantErr   error
	}{
		{
			name: "Should upsert a valid vacation",
			args: args{employeeID: 4471, start: start, end: start.AddDays(14)},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockVacationRepo.EXPECT().
					Upsert(gomock.Any(), &entity.Vacation{EmployeeID: args.employeeID, StartDate: args.start, EndDate: args.end}).
					Return(nil).Times(1)
			},
		},
		{
			name:    "Should reject a missing identity",
			args:    args{employeeID: 0, start: start, end: start.AddDays(3)},
			wantErr: domain.ErrMissingIdentity,
		},
		{
			name:    "Should reject end before start",
			args:    args{employeeID: 4471, start: start, end: start.AddDays(-1)},
			wantErr: domain.ErrOrderingViolation,
		},
		{
			name:    "Should reject a vacation over 21 days",
			args:    args{employeeID: 4471, start: start, end: start.AddDays(24)},
			wantErr: domain.ErrDurationExceeded,
		},
		{
			name: "Should wrap store failures",
			args: args{employeeID: 4471, start: start, end: start.AddDays(2)},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockVacationRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
					Return(errors.New("database is locked")).Times(1)
			},
			wantErr: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newServiceTestMock(t)
			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			err := newVacation(m.mockDataManager).Save(context.Background(), tt.args.employeeID, tt.args.start, tt.args.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_vacationService_OnVacation(t *testing.T) {
	m, _ := newServiceTestMock(t)
	ctx := context.Background()
	s := newVacation(m.mockDataManager)

	booked := &entity.Vacation{
		EmployeeID: 4471,
		StartDate:  calendar.New(2099, time.December, 1),
		EndDate:    calendar.New(2099, time.December, 15),
	}
	m.mockVacationRepo.EXPECT().GetByEmployeeID(ctx, int64(4471)).Return(booked, nil).AnyTimes()
	m.mockVacationRepo.EXPECT().GetByEmployeeID(ctx, int64(900)).Return(nil, nil).AnyTimes()

	days := map[calendar.Date]bool{
		calendar.New(2099, time.November, 30): false,
		calendar.New(2099, time.December, 1):  true,
		calendar.New(2099, time.December, 8):  true,
		calendar.New(2099, time.December, 15): true,
		calendar.New(2099, time.December, 16): false,
	}
	for day, want := range days {
		got, err := s.OnVacation(ctx, 4471, day)
		require.NoError(t, err)
		assert.Equal(t, want, got, day.Format())
	}

	got, err := s.OnVacation(ctx, 900, calendar.New(2099, time.December, 8))
	require.NoError(t, err)
	assert.False(t, got)
}
