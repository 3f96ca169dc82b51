package service

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/mocks"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager        *mocks.MockDataManager
	mockEmployeeRepo       *mocks.MockEmployeeRepo
	mockVacationRepo       *mocks.MockVacationRepo
	mockVacationService    *mocks.MockVacationService
	mockEmployeeService    *mocks.MockEmployeeService
	mockResignationService *mocks.MockResignationService
	mockReadingsService    *mocks.MockReadingsService
	mockReminderDispatcher *mocks.MockReminderDispatcher
	mockMessenger          *mocks.MockMessenger
	mockDirectory          *mocks.MockStaffDirectory
	mockCatalog            *mocks.MockEquipmentCatalog
	mockReports            *mocks.MockReportWriter
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	employeeRepo := mocks.NewMockEmployeeRepo(ctrl)
	dm.EXPECT().Employee().Return(employeeRepo).AnyTimes()

	vacationRepo := mocks.NewMockVacationRepo(ctrl)
	dm.EXPECT().Vacation().Return(vacationRepo).AnyTimes()

	m = allMocks{
		mockDataManager:        dm,
		mockEmployeeRepo:       employeeRepo,
		mockVacationRepo:       vacationRepo,
		mockVacationService:    mocks.NewMockVacationService(ctrl),
		mockEmployeeService:    mocks.NewMockEmployeeService(ctrl),
		mockResignationService: mocks.NewMockResignationService(ctrl),
		mockReadingsService:    mocks.NewMockReadingsService(ctrl),
		mockReminderDispatcher: mocks.NewMockReminderDispatcher(ctrl),
		mockMessenger:          mocks.NewMockMessenger(ctrl),
		mockDirectory:          mocks.NewMockStaffDirectory(ctrl),
		mockCatalog:            mocks.NewMockEquipmentCatalog(ctrl),
		mockReports:            mocks.NewMockReportWriter(ctrl),
	}

	return
}

// expectTransaction runs the transaction body against the same mocked data manager
func (m allMocks) expectTransaction() *gomock.Call {
	return m.mockDataManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(contract.DataManager) error) error {
			return fn(m.mockDataManager)
		})
}

var moscow = mustLoadLocation("Europe/Moscow")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// fixedClock returns now, which tests may move forward
type fixedClock struct {
	at time.Time
}

func (c *fixedClock) now() time.Time {
	return c.at
}
