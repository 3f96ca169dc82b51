package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testChatUser = "U4471"

func newTestConversation(t *testing.T) (*vacationConversation, allMocks, *fixedClock) {
	t.Helper()

	m, _ := newServiceTestMock(t)
	clock := &fixedClock{at: time.Date(2099, time.November, 20, 10, 0, 0, 0, moscow)}

	return newVacationConversation(m.mockVacationService, clock.now), m, clock
}

func Test_vacationConversation_Begin(t *testing.T) {
	c, _, _ := newTestConversation(t)

	assert.Equal(t, StateTerminated, c.State(testChatUser))

	reply := c.Begin(testChatUser, 4471)
	assert.Equal(t, msgAskStart, reply.Text)
	assert.Equal(t, StateAwaitingStart, c.State(testChatUser))
	assert.True(t, c.Active(testChatUser))
	assert.False(t, c.Active("U0000"))
}

func Test_vacationConversation_Scenario4471(t *testing.T) {
	c, m, _ := newTestConversation(t)
	ctx := context.Background()

	c.Begin(testChatUser, 4471)

	reply := c.Handle(ctx, testChatUser, "01.12.2099")
	assert.Equal(t, msgAskEnd, reply.Text)
	require.Equal(t, StateAwaitingEnd, c.State(testChatUser))

	reply = c.Handle(ctx, testChatUser, "25.12.2099")
	assert.Contains(t, reply.Text, "24 days")
	assert.Equal(t, StateAwaitingEnd, c.State(testChatUser))

	m.mockVacationService.EXPECT().
		Save(ctx, int64(4471), calendar.New(2099, time.December, 1), calendar.New(2099, time.December, 15)).
		Return(nil).Times(1)

	reply = c.Handle(ctx, testChatUser, "15.12.2099")
	assert.Equal(t, "Your vacation is scheduled from 01.12.2099 to 15.12.2099. Have a good rest!", reply.Text)
	assert.Equal(t, domain.MenuOptions, reply.Options)
	assert.Equal(t, StateTerminated, c.State(testChatUser))
}

func Test_vacationConversation_StartDate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantText  string
		wantState VacationState
	}{
		{name: "Should re-prompt on wrong separator", input: "01/12/2099", wantText: msgInvalidFormat, wantState: StateAwaitingStart},
		{name: "Should re-prompt on non numeric input", input: "tomorrow", wantText: msgInvalidFormat, wantState: StateAwaitingStart},
		{name: "Should re-prompt on impossible date", input: "31.02.2099", wantText: msgInvalidFormat, wantState: StateAwaitingStart},
		{name: "Should reject a past date", input: "19.11.2099", wantText: msgPastStart, wantState: StateAwaitingStart},
		{name: "Should accept today", input: "20.11.2099", wantText: msgAskEnd, wantState: StateAwaitingEnd},
		{name: "Should accept a future date", input: "01.12.2099", wantText: msgAskEnd, wantState: StateAwaitingEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestConversation(t)
			c.Begin(testChatUser, 4471)

			reply := c.Handle(context.Background(), testChatUser, tt.input)
			assert.Equal(t, tt.wantText, reply.Text)
			assert.Equal(t, tt.wantState, c.State(testChatUser))
		})
	}
}

func Test_vacationConversation_EndDate(t *testing.T) {
	start := calendar.New(2099, time.December, 1)

	tests := []struct {
		name      string
		input     string
		wantSave  bool
		wantText  string
		wantState VacationState
	}{
		{name: "Should reject end equal to start", input: "01.12.2099", wantText: msgOrdering, wantState: StateAwaitingEnd},
		{name: "Should reject end before start", input: "30.11.2099", wantText: msgOrdering, wantState: StateAwaitingEnd},
		{name: "Should reject malformed end", input: "2099-12-10", wantText: msgInvalidFormat, wantState: StateAwaitingEnd},
		{name: "Should reject 22 days", input: "23.12.2099", wantText: fmt.Sprintf(msgDuration, 22, 21), wantState: StateAwaitingEnd},
		{name: "Should accept a single day", input: "02.12.2099", wantSave: true, wantState: StateTerminated},
		{name: "Should accept exactly 21 days", input: "22.12.2099", wantSave: true, wantState: StateTerminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, m, _ := newTestConversation(t)
			ctx := context.Background()

			if tt.wantSave {
				m.mockVacationService.EXPECT().Save(ctx, int64(4471), start, gomock.Any()).Return(nil).Times(1)
			}

			c.Begin(testChatUser, 4471)
			c.Handle(ctx, testChatUser, "01.12.2099")

			reply := c.Handle(ctx, testChatUser, tt.input)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, reply.Text)
			}
			assert.Equal(t, tt.wantState, c.State(testChatUser))
		})
	}
}

func Test_vacationConversation_LapsedStart(t *testing.T) {
	c, _, clock := newTestConversation(t)
	ctx := context.Background()

	c.Begin(testChatUser, 4471)
	c.Handle(ctx, testChatUser, "20.11.2099")
	require.Equal(t, StateAwaitingEnd, c.State(testChatUser))

	// the user answers after midnight
	clock.at = clock.at.Add(15 * time.Hour)

	reply := c.Handle(ctx, testChatUser, "25.11.2099")
	assert.Equal(t, fmt.Sprintf(msgLapsedStart, "20.11.2099"), reply.Text)
	assert.Equal(t, StateTerminated, c.State(testChatUser))
}

func Test_vacationConversation_SaveFailure(t *testing.T) {
	c, m, _ := newTestConversation(t)
	ctx := context.Background()

	m.mockVacationService.EXPECT().Save(ctx, int64(4471), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: disk full", domain.ErrPersistence)).Times(1)

	c.Begin(testChatUser, 4471)
	c.Handle(ctx, testChatUser, "01.12.2099")

	reply := c.Handle(ctx, testChatUser, "10.12.2099")
	assert.Equal(t, msgGenericFailure, reply.Text)
	assert.Equal(t, StateTerminated, c.State(testChatUser))
}

func Test_vacationConversation_Cancel(t *testing.T) {
	c, _, _ := newTestConversation(t)

	assert.False(t, c.Cancel(testChatUser))

	c.Begin(testChatUser, 4471)
	c.Handle(context.Background(), testChatUser, "01.12.2099")

	assert.True(t, c.Cancel(testChatUser))
	assert.Equal(t, StateTerminated, c.State(testChatUser))
}

func Test_vacationConversation_BeginRestarts(t *testing.T) {
	c, _, _ := newTestConversation(t)

	c.Begin(testChatUser, 4471)
	c.Handle(context.Background(), testChatUser, "01.12.2099")
	require.Equal(t, StateAwaitingEnd, c.State(testChatUser))

	c.Begin(testChatUser, 4471)
	assert.Equal(t, StateAwaitingStart, c.State(testChatUser))
}

func TestValidateVacationRange(t *testing.T) {
	start := calendar.New(2099, time.December, 1)

	assert.ErrorIs(t, ValidateVacationRange(start, start), domain.ErrOrderingViolation)
	assert.NoError(t, ValidateVacationRange(start, start.AddDays(21)))

	err := ValidateVacationRange(start, start.AddDays(24))
	var tooLong *domain.DurationExceededError
	require.True(t, errors.As(err, &tooLong))
	assert.Equal(t, 24, tooLong.Days)
	assert.ErrorIs(t, err, domain.ErrDurationExceeded)
}
