package spreadsheet

import (
	"context"
	"fmt"

	"github.com/diegoclair/staff-desk-bot/internal/domain/contract"
	"github.com/diegoclair/staff-desk-bot/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var catalogColumns = map[string][]string{
	"location":  {"location"},
	"gov":       {"gov_number"},
	"inventory": {"inventory_number"},
	"counter":   {"counter_name"},
	"value":     {"last_counter_value"},
}

// Catalog is the equipment workbook
type Catalog struct {
	path string
}

func NewCatalog(path string) *Catalog {
	return &Catalog{path: path}
}

var _ contract.EquipmentCatalog = (*Catalog)(nil)

func (c *Catalog) Load(ctx context.Context) ([]entity.Equipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := readRows(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipment catalog: %w", err)
	}

	index, err := headerIndex(rows[0], catalogColumns)
	if err != nil {
		return nil, fmt.Errorf("invalid equipment catalog: %w", err)
	}

	items := make([]entity.Equipment, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		value := decimal.Zero
		if raw := cellValue(row, index["value"]); raw != "" {
			value, err = decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid counter value %q on row %d: %w", raw, i+2, err)
			}
		}

		items = append(items, entity.Equipment{
			Location:        cellValue(row, index["location"]),
			GovNumber:       cellValue(row, index["gov"]),
			InventoryNumber: cellValue(row, index["inventory"]),
			CounterName:     cellValue(row, index["counter"]),
			LastValue:       value,
		})
	}

	return items, nil
}
