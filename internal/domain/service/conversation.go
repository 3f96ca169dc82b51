package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/calendar"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
)

// VacationState is the step of the vacation dialogue a user is in
type VacationState int

const (
	StateTerminated VacationState = iota
	StateAwaitingStart
	StateAwaitingEnd
)

func (s VacationState) String() string {
	switch s {
	case StateAwaitingStart:
		return "AWAITING_START"
	case StateAwaitingEnd:
		return "AWAITING_END"
	default:
		return "TERMINATED"
	}
}

const (
	msgAskStart       = "Enter the first day of your vacation in the format DD.MM.YYYY:"
	msgAskEnd         = "Enter the last day of your vacation in the format DD.MM.YYYY:"
	msgInvalidFormat  = "Invalid date format. Enter the date in the format DD.MM.YYYY:"
	msgPastStart      = "The start date cannot be in the past. Enter a start date from today on (DD.MM.YYYY):"
	msgOrdering       = "The end date must be after the start date. Try again (DD.MM.YYYY):"
	msgDuration       = "Your vacation would last %d days, the maximum is %d days. Enter an earlier end date (DD.MM.YYYY):"
	msgLapsedStart    = "The start date %s is already in the past. Please start over with \"" + domain.PhraseVacation + "\"."
	msgVacationSaved  = "Your vacation is scheduled from %s to %s. Have a good rest!"
	msgGenericFailure = "Something went wrong, nothing was saved. Please try again later."
)

// vacationSession is the in-progress dialogue of one chat user
type vacationSession struct {
	employeeID   int64
	pendingStart calendar.Date
	state        VacationState
}

// vacationConversation is owned by the bot event loop and is not safe for concurrent use.
type vacationConversation struct {
	vacations contract.VacationService
	now       func() time.Time
	sessions  map[string]*vacationSession
}

func newVacationConversation(vacations contract.VacationService, now func() time.Time) *vacationConversation {
	return &vacationConversation{
		vacations: vacations,
		now:       now,
		sessions:  make(map[string]*vacationSession),
	}
}

// Begin opens the dialogue; an already open one restarts from the first step
func (c *vacationConversation) Begin(chatUserID string, employeeID int64) entity.Reply {
	c.sessions[chatUserID] = &vacationSession{
		employeeID: employeeID,
		state:      StateAwaitingStart,
	}

	return entity.Reply{Text: msgAskStart}
}

func (c *vacationConversation) State(chatUserID string) VacationState {
	session, ok := c.sessions[chatUserID]
	if !ok {
		return StateTerminated
	}
	return session.state
}

func (c *vacationConversation) Active(chatUserID string) bool {
	return c.State(chatUserID) != StateTerminated
}

// Cancel discards the session; it reports whether one was open
func (c *vacationConversation) Cancel(chatUserID string) bool {
	_, ok := c.sessions[chatUserID]
	delete(c.sessions, chatUserID)
	return ok
}

// Handle feeds one text message into the user's open dialogue
func (c *vacationConversation) Handle(ctx context.Context, chatUserID, text string) entity.Reply {
	session, ok := c.sessions[chatUserID]
	if !ok {
		return entity.Reply{Text: msgAskStart}
	}

	switch session.state {
	case StateAwaitingStart:
		return c.handleStart(session, text)
	case StateAwaitingEnd:
		return c.handleEnd(ctx, chatUserID, session, text)
	default:
		delete(c.sessions, chatUserID)
		return entity.Reply{Text: msgAskStart}
	}
}

func (c *vacationConversation) today() calendar.Date {
	return calendar.Today(c.now())
}

func (c *vacationConversation) handleStart(session *vacationSession, text string) entity.Reply {
	start, err := calendar.Parse(text)
	if err != nil {
		return entity.Reply{Text: msgInvalidFormat}
	}

	if start.Before(c.today()) {
		return entity.Reply{Text: msgPastStart}
	}

	session.pendingStart = start
	session.state = StateAwaitingEnd

	return entity.Reply{Text: msgAskEnd}
}

func (c *vacationConversation) handleEnd(ctx context.Context, chatUserID string, session *vacationSession, text string) entity.Reply {
	end, err := calendar.Parse(text)
	if err != nil {
		return entity.Reply{Text: msgInvalidFormat}
	}

	start := session.pendingStart

	if err := ValidateVacationRange(start, end); err != nil {
		var tooLong *domain.DurationExceededError
		if errors.As(err, &tooLong) {
			return entity.Reply{Text: fmt.Sprintf(msgDuration, tooLong.Days, tooLong.MaxDays)}
		}
		return entity.Reply{Text: msgOrdering}
	}

	// the dialogue may have stayed open across midnight
	if start.Before(c.today()) {
		delete(c.sessions, chatUserID)
		return entity.Reply{Text: fmt.Sprintf(msgLapsedStart, start.Format())}
	}

	delete(c.sessions, chatUserID)

	if err := c.vacations.Save(ctx, session.employeeID, start, end); err != nil {
		log.Printf("Failed to save vacation for employee %d: %v", session.employeeID, err)
		return entity.Reply{Text: msgGenericFailure}
	}

	log.Printf("Vacation saved for employee %d: %s - %s", session.employeeID, start, end)

	return entity.Reply{
		Text:    fmt.Sprintf(msgVacationSaved, start.Format(), end.Format()),
		Options: domain.MenuOptions,
	}
}
