package domain

import "strings"

// RoleOf derives the bot role from the free-text role column of the staff directory
func RoleOf(title string) Role {
	text := strings.ToLower(title)

	switch {
	case strings.Contains(text, "administrator"), strings.Contains(text, "администратор"):
		return RoleAdmin
	case strings.Contains(text, "director"), strings.Contains(text, "manager"), strings.Contains(text, "руководитель"):
		return RoleDirector
	default:
		return RoleUser
	}
}
