package slack

import (
	"fmt"
	"strings"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
)

type CommandType string

const (
	CmdStart    CommandType = "start"
	CmdVacation CommandType = "vacation"
	CmdResign   CommandType = "resign"
	CmdReadings CommandType = "readings"
	CmdCancel   CommandType = "cancel"
	CmdShift    CommandType = "shift"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch strings.ToLower(parts[0]) {
	case "start", "register":
		cmd.Type = CmdStart
	case "vacation":
		cmd.Type = CmdVacation
	case "resign":
		cmd.Type = CmdResign
	case "readings":
		cmd.Type = CmdReadings
	case "cancel":
		cmd.Type = CmdCancel
	case "shift":
		cmd.Type = CmdShift
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help":
		cmd.Type = CmdHelp
	default:
		// anything else is an answer to the open dialogue, e.g. a date or an identification number
		cmd.Args = parts
	}

	if cmd.Type == "" {
		return cmd, nil
	}
	if cmd.Type != CmdShift && len(parts) > 1 {
		return nil, fmt.Errorf("%s takes no arguments", cmd.Type)
	}

	return cmd, nil
}

// Text is the chat message the command stands for
func (c *Command) Text() string {
	switch c.Type {
	case CmdStart:
		return domain.PhraseStart
	case CmdVacation:
		return domain.PhraseVacation
	case CmdResign:
		return domain.PhraseResigned
	case CmdReadings:
		return domain.PhraseReadings
	case CmdCancel:
		return domain.PhraseCancel
	case CmdShift:
		return strings.Join(append([]string{"shift"}, c.Args...), " ")
	default:
		return strings.Join(c.Args, " ")
	}
}

func GetHelpText() string {
	return `*Available Commands:*

*Account:*
• ` + "`/staff start`" + ` - Register with your employee identification number
• ` + "`/staff resign`" + ` - Delete your records

*Vacation:*
• ` + "`/staff vacation`" + ` - Book a vacation (up to 21 days, dates as DD.MM.YYYY)
• ` + "`/staff cancel`" + ` - Abandon the current dialogue

*Meter readings:*
• ` + "`/staff readings`" + ` - How to submit the weekly readings file

*Administrators:*
• ` + "`/staff shift 4471 on|off`" + ` - Put an employee on or off meter reading duty

Dialogue answers can be sent as ` + "`/staff 01.12.2099`" + ` or as a direct message to the bot.`
}
