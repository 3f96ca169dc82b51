package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
)

const (
	msgAskEmployeeID     = "Welcome! Enter your employee identification number:"
	msgNotANumber        = "That is not a number. Enter your employee identification number:"
	msgIDNotFound        = "Employee %d was not found in the staff directory. Contact HR, then send \"" + domain.PhraseStart + "\" again."
	msgRegistered        = "Hello, %s! You are registered as %s."
	msgAlreadyRegistered = "Welcome back, %s! You are registered as %s."
)

// registrationConversation asks a chat user for their identification number.
// Owned by the bot event loop like vacationConversation.
type registrationConversation struct {
	employees contract.EmployeeService
	pending   map[string]struct{}
}

func newRegistrationConversation(employees contract.EmployeeService) *registrationConversation {
	return &registrationConversation{
		employees: employees,
		pending:   make(map[string]struct{}),
	}
}

func (c *registrationConversation) Begin(chatUserID string) entity.Reply {
	c.pending[chatUserID] = struct{}{}
	return entity.Reply{Text: msgAskEmployeeID}
}

func (c *registrationConversation) Active(chatUserID string) bool {
	_, ok := c.pending[chatUserID]
	return ok
}

func (c *registrationConversation) Cancel(chatUserID string) bool {
	_, ok := c.pending[chatUserID]
	delete(c.pending, chatUserID)
	return ok
}

// Handle returns the registered employee, or nil when the dialogue did not succeed
func (c *registrationConversation) Handle(ctx context.Context, chatUserID, text string) (*entity.Employee, entity.Reply) {
	employee, existed, err := c.employees.Register(ctx, chatUserID, text)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEmployeeID) {
			return nil, entity.Reply{Text: msgNotANumber}
		}

		delete(c.pending, chatUserID)

		if errors.Is(err, domain.ErrEmployeeNotFound) {
			id, _ := ParseEmployeeID(text)
			return nil, entity.Reply{Text: fmt.Sprintf(msgIDNotFound, id)}
		}

		log.Printf("Failed to register chat user %s: %v", chatUserID, err)
		return nil, entity.Reply{Text: msgGenericFailure}
	}

	delete(c.pending, chatUserID)

	greeting := msgRegistered
	if existed {
		greeting = msgAlreadyRegistered
	}

	return employee, entity.Reply{
		Text:    fmt.Sprintf(greeting, employee.Name, domain.RoleNames[employee.Role]),
		Options: domain.MenuOptions,
	}
}
