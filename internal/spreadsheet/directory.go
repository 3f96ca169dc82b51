package spreadsheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/staff-desk-bot/internal/domain"
	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
)

// directoryColumns accepts both the English export and the Russian HR headers
var directoryColumns = map[string][]string{
	"id":       {"Employee ID", "Табельный номер"},
	"name":     {"Full name", "ФИО"},
	"role":     {"Role", "Роль"},
	"phone":    {"Phone", "Номер телефона"},
	"location": {"Location", "Локация"},
}

// Directory is the staff directory workbook, read on every lookup so HR edits apply immediately.
type Directory struct {
	path string
}

func NewDirectory(path string) *Directory {
	return &Directory{path: path}
}

var _ contract.StaffDirectory = (*Directory)(nil)

// Lookup returns domain.ErrEmployeeNotFound when no row has the identification number.
func (d *Directory) Lookup(ctx context.Context, id int64) (*entity.DirectoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := readRows(d.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff directory: %w", err)
	}

	index, err := headerIndex(rows[0], directoryColumns)
	if err != nil {
		return nil, fmt.Errorf("invalid staff directory: %w", err)
	}

	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		rowID, err := parseEmployeeID(cellValue(row, index["id"]))
		if err != nil || rowID != id {
			continue
		}

		return &entity.DirectoryEntry{
			ID:       rowID,
			Name:     cellValue(row, index["name"]),
			RoleText: cellValue(row, index["role"]),
			Phone:    cellValue(row, index["phone"]),
			Location: cellValue(row, index["location"]),
		}, nil
	}

	return nil, domain.ErrEmployeeNotFound
}

// parseEmployeeID accepts "4471" and numeric cells exported as "4471.0"
func parseEmployeeID(value string) (int64, error) {
	value = strings.TrimSuffix(strings.TrimSpace(value), ".0")
	return strconv.ParseInt(value, 10, 64)
}
