package slack

import (
	"testing"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantText string
		wantErr  bool
	}{
		{name: "Should default to help", text: "  ", wantType: CmdHelp},
		{name: "Should parse start", text: "start", wantType: CmdStart, wantText: domain.PhraseStart},
		{name: "Should accept register alias", text: "Register", wantType: CmdStart, wantText: domain.PhraseStart},
		{name: "Should parse vacation", text: "vacation", wantType: CmdVacation, wantText: domain.PhraseVacation},
		{name: "Should parse resign", text: "resign", wantType: CmdResign, wantText: domain.PhraseResigned},
		{name: "Should parse readings", text: "readings", wantType: CmdReadings, wantText: domain.PhraseReadings},
		{name: "Should parse cancel", text: "cancel", wantType: CmdCancel, wantText: domain.PhraseCancel},
		{name: "Should keep shift arguments", text: "shift 4471 on", wantType: CmdShift, wantText: "shift 4471 on"},
		{name: "Should pass dialogue answers through", text: " 01.12.2099 ", wantText: "01.12.2099"},
		{name: "Should reject arguments on vacation", text: "vacation now", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, cmd.Text())
			}
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()
	for _, cmd := range []string{"start", "resign", "vacation", "cancel", "readings", "shift"} {
		assert.Contains(t, help, "/staff "+cmd)
	}
}
