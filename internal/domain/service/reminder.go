package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/calendar"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
	"github.com/google/uuid"
)

const msgReminder = "Dear %s!\n" +
	"Please submit your meter readings by %s.\n" +
	"Fill in the attached file and send it back in this chat."

type reminderDispatcher struct {
	dm        contract.DataManager
	vacations contract.VacationService
	catalog   contract.EquipmentCatalog
	reports   contract.ReportWriter
	messenger contract.Messenger
	now       func() time.Time
}

func newReminder(dm contract.DataManager, vacations contract.VacationService, catalog contract.EquipmentCatalog,
	reports contract.ReportWriter, messenger contract.Messenger, now func() time.Time) *reminderDispatcher {
	return &reminderDispatcher{
		dm:        dm,
		vacations: vacations,
		catalog:   catalog,
		reports:   reports,
		messenger: messenger,
		now:       now,
	}
}

// Dispatch sends every on-shift employee the readings workbook for their location.
// Each employee is handled on its own: one failure is logged and the batch goes on.
func (d *reminderDispatcher) Dispatch(ctx context.Context) (entity.DispatchSummary, error) {
	summary := entity.DispatchSummary{RunID: uuid.NewString()}

	employees, err := d.dm.Employee().GetOnShift(ctx)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	equipment, err := d.catalog.Load(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to load equipment: %w", err)
	}

	today := calendar.Today(d.now())
	log.Printf("[%s] Sending reminders to %d on-shift employees", summary.RunID, len(employees))

	for _, employee := range employees {
		sent, err := d.remind(ctx, employee, equipment, today)
		switch {
		case err != nil:
			summary.Failed++
			log.Printf("[%s] Failed to remind employee %d: %v", summary.RunID, employee.ID, err)
		case sent:
			summary.Sent++
		default:
			summary.Skipped++
		}
	}

	log.Printf("[%s] Reminders done: sent=%d skipped=%d failed=%d", summary.RunID, summary.Sent, summary.Skipped, summary.Failed)
	return summary, nil
}

func (d *reminderDispatcher) remind(ctx context.Context, employee *entity.Employee, equipment []entity.Equipment, today calendar.Date) (bool, error) {
	if employee.ChatUserID == "" {
		log.Printf("Employee %d has no chat user, reminder skipped", employee.ID)
		return false, nil
	}

	away, err := d.vacations.OnVacation(ctx, employee.ID, today)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrDispatchFailure, err)
	}
	if away {
		log.Printf("Employee %d is on vacation, reminder skipped", employee.ID)
		return false, nil
	}

	items := entity.EquipmentAt(equipment, employee.Location)
	if len(items) == 0 {
		log.Printf("No equipment at %q for employee %d, reminder skipped", employee.Location, employee.ID)
		return false, nil
	}

	report, err := d.reports.ReadingsReport(employee, items, today)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrDispatchFailure, err)
	}

	err = d.messenger.SendFile(ctx, employee.ChatUserID, entity.Attachment{
		Filename: report.Filename,
		Caption:  fmt.Sprintf(msgReminder, employee.Name, domain.ReadingsDeadline),
		Content:  bytes.NewReader(report.Content),
		Size:     len(report.Content),
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrDispatchFailure, err)
	}

	return true, nil
}
