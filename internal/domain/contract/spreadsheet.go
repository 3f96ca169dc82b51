package contract

import (
	"context"
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain/calendar"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
)

// StaffDirectory looks employees up in the HR workbook
type StaffDirectory interface {
	Lookup(ctx context.Context, id int64) (*entity.DirectoryEntry, error)
}

// EquipmentCatalog lists every metered asset
type EquipmentCatalog interface {
	Load(ctx context.Context) ([]entity.Equipment, error)
}

// ReportWriter produces and archives meter reading workbooks
type ReportWriter interface {
	ReadingsReport(employee *entity.Employee, items []entity.Equipment, day calendar.Date) (*entity.Report, error)
	StoreSubmission(chatUserID string, content []byte, at time.Time) (*entity.Report, error)
}
