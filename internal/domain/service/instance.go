package service

import (
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
)

// Options carries the collaborators and schedule the services are built from
type Options struct {
	DataManager  contract.DataManager
	Messenger    contract.Messenger
	Directory    contract.StaffDirectory
	Catalog      contract.EquipmentCatalog
	Reports      contract.ReportWriter
	Location     *time.Location
	ReminderDay  time.Weekday
	ReminderHour int
}

type Instance struct {
	Bot       *Bot
	Scheduler *scheduler
}

func NewInstance(opts Options) *Instance {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	now := func() time.Time { return time.Now().In(loc) }

	vacations := newVacation(opts.DataManager)
	employees := newEmployee(opts.DataManager, opts.Directory)
	resignations := newResignation(opts.DataManager)
	readings := newReadings(opts.DataManager, opts.Messenger, opts.Reports, now)
	reminder := newReminder(opts.DataManager, vacations, opts.Catalog, opts.Reports, opts.Messenger, now)

	return &Instance{
		Bot:       newBot(opts.Messenger, employees, resignations, readings, newVacationConversation(vacations, now)),
		Scheduler: newScheduler(reminder, loc, opts.ReminderDay, opts.ReminderHour),
	}
}
