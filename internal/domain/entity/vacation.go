package entity

import "github.com/diegoclair/staff-desk-bot/internal/domain/calendar"

// Vacation is the single active vacation of an employee
type Vacation struct {
	EmployeeID int64
	StartDate  calendar.Date
	EndDate    calendar.Date
}

// Days returns the span between start and end dates
func (v Vacation) Days() int {
	return v.StartDate.DaysUntil(v.EndDate)
}
