package inventory

import (
	"errors"
	"fmt"

	"github.com/mamadbah2/shoestock/internal/domain/models"
)

var (
	// ErrEmptyInventory indicates the operation needs at least one record.
	ErrEmptyInventory = errors.New("empty inventory")
	// ErrNotFound indicates no record matched the lookup.
	ErrNotFound = errors.New("shoe not found")
	// ErrNilRecord indicates a restock was requested without a target record.
	ErrNilRecord = errors.New("nil shoe record")
)

// Headers are the column titles of ListAll rows.
var Headers = []string{"Product", "Code", "Country", "Cost", "Quantity"}

// ItemValue is the stock value of a single record.
type ItemValue struct {
	Product string
	Value   float64
}

// ListAll projects every record into a table row, in inventory order.
func ListAll(inv *models.Inventory) ([][]string, error) {
	if inv.IsEmpty() {
		return nil, ErrEmptyInventory
	}

	rows := make([][]string, 0, inv.Len())
	for _, shoe := range inv.Records() {
		rows = append(rows, shoe.Row())
	}
	return rows, nil
}

// FindMinQuantity returns the first record holding the smallest quantity.
func FindMinQuantity(inv *models.Inventory) (*models.Shoe, error) {
	return pick(inv, func(candidate, best int) bool { return candidate < best })
}

// FindMaxQuantity returns the first record holding the largest quantity.
func FindMaxQuantity(inv *models.Inventory) (*models.Shoe, error) {
	return pick(inv, func(candidate, best int) bool { return candidate > best })
}

// pick scans linearly; a strict comparison keeps the earliest record on ties.
func pick(inv *models.Inventory, better func(candidate, best int) bool) (*models.Shoe, error) {
	records := inv.Records()
	if len(records) == 0 {
		return nil, ErrEmptyInventory
	}

	best := records[0]
	for _, shoe := range records[1:] {
		if better(shoe.GetQuantity(), best.GetQuantity()) {
			best = shoe
		}
	}
	return best, nil
}

// IncrementQuantity adds amount to the record in place. Persisting the change is up to the caller.
func IncrementQuantity(shoe *models.Shoe, amount int) error {
	if shoe == nil {
		return ErrNilRecord
	}
	if amount < 0 {
		return fmt.Errorf("%w: quantity %d must not be negative", models.ErrValidation, amount)
	}
	shoe.Quantity += amount
	return nil
}

// SearchByCode returns the first record whose code equals code exactly.
func SearchByCode(inv *models.Inventory, code string) (*models.Shoe, error) {
	for _, shoe := range inv.Records() {
		if shoe.Code == code {
			return shoe, nil
		}
	}
	return nil, fmt.Errorf("%w: code %q", ErrNotFound, code)
}

// ValuePerRecord computes cost × quantity for each record, in inventory order.
func ValuePerRecord(inv *models.Inventory) []ItemValue {
	values := make([]ItemValue, 0, inv.Len())
	for _, shoe := range inv.Records() {
		values = append(values, ItemValue{Product: shoe.Product, Value: shoe.Value()})
	}
	return values
}

// Append adds shoe to the end of the inventory without checking for duplicate codes.
func Append(inv *models.Inventory, shoe models.Shoe) *models.Shoe {
	return inv.Append(shoe)
}
