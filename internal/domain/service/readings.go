package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
)

type readingsService struct {
	dm        contract.DataManager
	messenger contract.Messenger
	reports   contract.ReportWriter
	now       func() time.Time
}

func newReadings(dm contract.DataManager, messenger contract.Messenger, reports contract.ReportWriter, now func() time.Time) *readingsService {
	return &readingsService{
		dm:        dm,
		messenger: messenger,
		reports:   reports,
		now:       now,
	}
}

// Relay archives a workbook sent by an employee and forwards it to every administrator.
// Failing to reach one administrator does not stop the others.
func (s *readingsService) Relay(ctx context.Context, chatUserID string, file entity.SharedFile) error {
	if !strings.HasSuffix(strings.ToLower(file.Name), ".xlsx") {
		return domain.ErrUnsupportedFile
	}

	var buf bytes.Buffer
	if err := s.messenger.DownloadFile(ctx, file, &buf); err != nil {
		return err
	}

	report, err := s.reports.StoreSubmission(chatUserID, buf.Bytes(), s.now())
	if err != nil {
		return err
	}

	sender := chatUserID
	employee, err := s.dm.Employee().GetByChatUserID(ctx, chatUserID)
	if err != nil {
		log.Printf("Failed to resolve sender %s of readings: %v", chatUserID, err)
	} else if employee != nil {
		sender = employee.Name
	}

	admins, err := s.dm.Employee().ListByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}

	caption := fmt.Sprintf("%s submitted meter readings.", sender)
	forwarded := 0
	for _, admin := range admins {
		if admin.ChatUserID == "" {
			log.Printf("Administrator %d has no chat user, readings not forwarded", admin.ID)
			continue
		}

		err := s.messenger.SendFile(ctx, admin.ChatUserID, entity.Attachment{
			Filename: report.Filename,
			Caption:  caption,
			Content:  bytes.NewReader(report.Content),
			Size:     len(report.Content),
		})
		if err != nil {
			log.Printf("Failed to forward readings to administrator %d: %v", admin.ID, err)
			continue
		}
		forwarded++
	}

	log.Printf("Readings from %s forwarded to %d of %d administrators", chatUserID, forwarded, len(admins))
	return nil
}
