package entity

import (
	"time"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
)

// Employee is a registered person; ID is the identification number shared by every table.
type Employee struct {
	ID         int64
	Name       string
	Role       domain.Role
	Phone      string
	Location   string
	OnShift    bool
	ChatUserID string
	CreatedAt  time.Time
}

// DirectoryEntry is one row of the staff directory workbook.
type DirectoryEntry struct {
	ID       int64
	Name     string
	RoleText string
	Phone    string
	Location string
}
