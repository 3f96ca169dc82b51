package domain

import "time"

// Trigger phrases, matched exactly against the incoming message text
const (
	PhraseVacation = "I am on vacation"
	PhraseResigned = "I have resigned"
	PhraseReadings = "Submit readings"
	PhraseStart    = "start"
	PhraseCancel   = "cancel"
)

// MenuOptions is the role menu shown after registration
var MenuOptions = []string{PhraseResigned, PhraseVacation, PhraseReadings}

// MaxVacationDays is the longest vacation span that can be booked in one go
const MaxVacationDays = 21

// Weekly reminder defaults
const (
	DefaultReminderTimezone = "Europe/Moscow"
	DefaultReminderWeekday  = time.Wednesday
	DefaultReminderHour     = 8
)

// ReadingsDeadline is quoted in reminder captions
const ReadingsDeadline = "Friday 14:00 MSK"

// Role is the kind of employee, one table per role
type Role string

const (
	RoleUser     Role = "user"
	RoleDirector Role = "director"
	RoleAdmin    Role = "admin"
)

// Roles lists every role, in the order their tables are cleaned up on resignation
var Roles = []Role{RoleUser, RoleDirector, RoleAdmin}

// RoleNames maps roles to what employees see in messages
var RoleNames = map[Role]string{
	RoleUser:     "Employee",
	RoleDirector: "Director",
	RoleAdmin:    "Administrator",
}

// WeekdayNames maps the config spelling of a weekday to time.Weekday
var WeekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}
