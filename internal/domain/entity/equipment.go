package entity

import "github.com/shopspring/decimal"

// Equipment is a metered asset installed at a location
type Equipment struct {
	Location        string
	GovNumber       string
	InventoryNumber string
	CounterName     string
	LastValue       decimal.Decimal
}

// EquipmentAt keeps the equipment installed at location, in catalog order
func EquipmentAt(items []Equipment, location string) []Equipment {
	var filtered []Equipment
	for _, item := range items {
		if item.Location == location {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
