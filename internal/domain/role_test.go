package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleOf(t *testing.T) {
	tests := []struct {
		title string
		want  Role
	}{
		{title: "Site Administrator", want: RoleAdmin},
		{title: "Администратор участка", want: RoleAdmin},
		{title: "Regional Director", want: RoleDirector},
		{title: "Project manager", want: RoleDirector},
		{title: "Руководитель группы", want: RoleDirector},
		{title: "Operator", want: RoleUser},
		{title: "", want: RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleOf(tt.title))
		})
	}
}

func TestDurationExceededError(t *testing.T) {
	var err error = &DurationExceededError{Days: 24, MaxDays: MaxVacationDays}

	assert.ErrorIs(t, err, ErrDurationExceeded)
	assert.NotErrorIs(t, err, ErrOrderingViolation)
	assert.Contains(t, err.Error(), "24 days")
}
