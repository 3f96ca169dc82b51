package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
)

const (
	msgMissingIdentity  = "I don't know who you are yet. Send \"" + domain.PhraseStart + "\" and enter your identification number first."
	msgCancelled        = "Action cancelled."
	msgNothingToCancel  = "There is nothing to cancel."
	msgResigned         = "Your records have been deleted. Goodbye!"
	msgReadingsHowTo    = "Every Wednesday you receive a file with your equipment. Fill in the Reading column and send the file back in this chat by " + domain.ReadingsDeadline + "."
	msgReadingsReceived = "Thank you! Your readings were received and forwarded to the administrators."
	msgUnsupportedFile  = "Only .xlsx files are accepted."
	msgHelp             = "Send \"" + domain.PhraseStart + "\" to register, or choose an action."
	msgShiftUsage       = "Usage: shift <identification number> on|off"
	msgShiftUpdated     = "Employee %d is now %s shift."
	msgShiftDenied      = "Only administrators can change shift duty."
	msgShiftNotFound    = "Employee %d is not registered as a regular employee."
)

// eventQueueSize bounds the messages waiting for the event loop
const eventQueueSize = 64

type inbound struct {
	msg    entity.InboundMessage
	result chan []entity.Reply
}

// Bot routes chat messages into the dialogues. All dialogue state lives in the Run goroutine.
type Bot struct {
	messenger    contract.Messenger
	employees    contract.EmployeeService
	resignations contract.ResignationService
	readings     contract.ReadingsService

	identities   *identitySessions
	registration *registrationConversation
	vacation     *vacationConversation

	events chan inbound
}

var _ contract.BotService = (*Bot)(nil)

func newBot(messenger contract.Messenger, employees contract.EmployeeService, resignations contract.ResignationService,
	readings contract.ReadingsService, vacation *vacationConversation) *Bot {
	return &Bot{
		messenger:    messenger,
		employees:    employees,
		resignations: resignations,
		readings:     readings,
		identities:   newIdentitySessions(employees),
		registration: newRegistrationConversation(employees),
		vacation:     vacation,
		events:       make(chan inbound, eventQueueSize),
	}
}

// Run processes events until ctx is done
func (b *Bot) Run(ctx context.Context) {
	log.Println("Bot event loop starting...")
	for {
		select {
		case <-ctx.Done():
			log.Println("Bot event loop stopping...")
			return
		case ev := <-b.events:
			replies := b.handle(ctx, ev.msg)
			if ev.result != nil {
				ev.result <- replies
				continue
			}
			b.deliver(ctx, ev.msg.ChatUserID, replies)
		}
	}
}

func (b *Bot) Submit(ctx context.Context, msg entity.InboundMessage) ([]entity.Reply, error) {
	result := make(chan []entity.Reply, 1)

	select {
	case b.events <- inbound{msg: msg, result: result}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case replies := <-result:
		return replies, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (b *Bot) Enqueue(ctx context.Context, msg entity.InboundMessage) error {
	select {
	case b.events <- inbound{msg: msg}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bot) deliver(ctx context.Context, chatUserID string, replies []entity.Reply) {
	for _, reply := range replies {
		if err := b.messenger.SendText(ctx, chatUserID, reply); err != nil {
			log.Printf("Failed to reply to %s: %v", chatUserID, err)
		}
	}
}

func (b *Bot) handle(ctx context.Context, msg entity.InboundMessage) []entity.Reply {
	chatUserID := msg.ChatUserID
	text := strings.TrimSpace(msg.Text)

	if len(msg.Files) > 0 {
		return b.relay(ctx, msg)
	}

	if text == domain.PhraseCancel {
		return []entity.Reply{b.cancel(chatUserID)}
	}

	if b.registration.Active(chatUserID) {
		employee, reply := b.registration.Handle(ctx, chatUserID, text)
		if employee != nil {
			b.identities.Set(chatUserID, employee.ID)
		}
		return []entity.Reply{reply}
	}

	if b.vacation.Active(chatUserID) {
		return []entity.Reply{b.vacation.Handle(ctx, chatUserID, text)}
	}

	switch text {
	case domain.PhraseStart:
		return []entity.Reply{b.registration.Begin(chatUserID)}
	case domain.PhraseVacation:
		return []entity.Reply{b.startVacation(ctx, chatUserID)}
	case domain.PhraseResigned:
		return []entity.Reply{b.resign(ctx, chatUserID)}
	case domain.PhraseReadings:
		return []entity.Reply{{Text: msgReadingsHowTo, Options: domain.MenuOptions}}
	}

	if fields := strings.Fields(text); len(fields) > 0 && fields[0] == "shift" {
		return []entity.Reply{b.shift(ctx, chatUserID, fields[1:])}
	}

	return []entity.Reply{{Text: msgHelp, Options: domain.MenuOptions}}
}

func (b *Bot) cancel(chatUserID string) entity.Reply {
	cancelled := b.registration.Cancel(chatUserID)
	if b.vacation.Cancel(chatUserID) {
		cancelled = true
	}

	if !cancelled {
		return entity.Reply{Text: msgNothingToCancel, Options: domain.MenuOptions}
	}
	return entity.Reply{Text: msgCancelled, Options: domain.MenuOptions}
}

// identityReply turns an identity lookup failure into the reply shown to the user
func identityReply(chatUserID string, err error) entity.Reply {
	if errors.Is(err, domain.ErrMissingIdentity) {
		return entity.Reply{Text: msgMissingIdentity}
	}
	log.Printf("Failed to resolve identity of %s: %v", chatUserID, err)
	return entity.Reply{Text: msgGenericFailure}
}

func (b *Bot) startVacation(ctx context.Context, chatUserID string) entity.Reply {
	employeeID, err := b.identities.Resolve(ctx, chatUserID)
	if err != nil {
		return identityReply(chatUserID, err)
	}

	return b.vacation.Begin(chatUserID, employeeID)
}

func (b *Bot) resign(ctx context.Context, chatUserID string) entity.Reply {
	employeeID, err := b.identities.Resolve(ctx, chatUserID)
	if err != nil {
		return identityReply(chatUserID, err)
	}

	if err := b.resignations.Resign(ctx, employeeID); err != nil {
		log.Printf("Failed to resign employee %d: %v", employeeID, err)
		return entity.Reply{Text: msgGenericFailure}
	}

	b.identities.Forget(chatUserID)
	b.vacation.Cancel(chatUserID)

	return entity.Reply{Text: msgResigned}
}

func (b *Bot) shift(ctx context.Context, chatUserID string, args []string) entity.Reply {
	if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
		return entity.Reply{Text: msgShiftUsage}
	}

	employeeID, err := ParseEmployeeID(args[0])
	if err != nil {
		return entity.Reply{Text: msgShiftUsage}
	}

	actorID, err := b.identities.Resolve(ctx, chatUserID)
	if err != nil {
		return identityReply(chatUserID, err)
	}

	onShift := args[1] == "on"
	err = b.employees.SetOnShift(ctx, actorID, employeeID, onShift)
	switch {
	case errors.Is(err, ErrNotAdministrator):
		return entity.Reply{Text: msgShiftDenied}
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return entity.Reply{Text: fmt.Sprintf(msgShiftNotFound, employeeID)}
	case err != nil:
		log.Printf("Failed to change shift of employee %d: %v", employeeID, err)
		return entity.Reply{Text: msgGenericFailure}
	}

	state := "off"
	if onShift {
		state = "on"
	}
	return entity.Reply{Text: fmt.Sprintf(msgShiftUpdated, employeeID, state)}
}

func (b *Bot) relay(ctx context.Context, msg entity.InboundMessage) []entity.Reply {
	replies := make([]entity.Reply, 0, len(msg.Files))
	for _, file := range msg.Files {
		err := b.readings.Relay(ctx, msg.ChatUserID, file)
		switch {
		case errors.Is(err, domain.ErrUnsupportedFile):
			replies = append(replies, entity.Reply{Text: msgUnsupportedFile})
		case err != nil:
			log.Printf("Failed to relay %s from %s: %v", file.Name, msg.ChatUserID, err)
			replies = append(replies, entity.Reply{Text: msgGenericFailure})
		default:
			replies = append(replies, entity.Reply{Text: msgReadingsReceived})
		}
	}
	return replies
}
