package service

import (
	"context"
	"errors"
	"testing"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_resignationService_Resign(t *testing.T) {
	tests := []struct {
		name       string
		employeeID int64
		buildMock  func(mocks allMocks)
		wantErr    error
	}{
		{
			name:       "Should delete from every table",
			employeeID: 900,
			buildMock: func(mocks allMocks) {
				mocks.expectTransaction().Times(1)
				gomock.InOrder(
					mocks.mockEmployeeRepo.EXPECT().Delete(gomock.Any(), domain.RoleUser, int64(900)).Return(nil),
					mocks.mockEmployeeRepo.EXPECT().Delete(gomock.Any(), domain.RoleDirector, int64(900)).Return(nil),
					mocks.mockEmployeeRepo.EXPECT().Delete(gomock.Any(), domain.RoleAdmin, int64(900)).Return(nil),
					mocks.mockVacationRepo.EXPECT().Delete(gomock.Any(), int64(900)).Return(nil),
				)
			},
		},
		{
			name:       "Should fail without identity",
			employeeID: 0,
			wantErr:    domain.ErrMissingIdentity,
		},
		{
			name:       "Should stop and report a failing delete",
			employeeID: 900,
			buildMock: func(mocks allMocks) {
				mocks.expectTransaction().Times(1)
				mocks.mockEmployeeRepo.EXPECT().Delete(gomock.Any(), domain.RoleUser, int64(900)).Return(nil)
				mocks.mockEmployeeRepo.EXPECT().Delete(gomock.Any(), domain.RoleDirector, int64(900)).
					Return(errors.New("disk I/O error"))
			},
			wantErr: domain.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newServiceTestMock(t)
			if tt.buildMock != nil {
				tt.buildMock(m)
			}

			err := newResignation(m.mockDataManager).Resign(context.Background(), tt.employeeID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
