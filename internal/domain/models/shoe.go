package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation indicates raw text could not be coerced into a valid shoe field.
var ErrValidation = errors.New("validation error")

var validate = validator.New()

// Shoe is one inventory line item.
type Shoe struct {
	Country  string
	Code     string
	Product  string
	Cost     float64
	Quantity int `validate:"gte=0"`
}

type restockAmount struct {
	Amount int `validate:"gte=0"`
}

// NewShoe coerces the raw cost and quantity text and returns a validated Shoe.
func NewShoe(country, code, product, cost, quantity string) (Shoe, error) {
	parsedCost, err := strconv.ParseFloat(strings.TrimSpace(cost), 64)
	if err != nil {
		return Shoe{}, fmt.Errorf("%w: cost %q is not a number", ErrValidation, cost)
	}

	parsedQty, err := strconv.Atoi(strings.TrimSpace(quantity))
	if err != nil {
		return Shoe{}, fmt.Errorf("%w: quantity %q is not an integer", ErrValidation, quantity)
	}

	shoe := Shoe{
		Country:  country,
		Code:     code,
		Product:  product,
		Cost:     parsedCost,
		Quantity: parsedQty,
	}
	if err := validate.Struct(shoe); err != nil {
		return Shoe{}, fmt.Errorf("%w: quantity %d must not be negative", ErrValidation, parsedQty)
	}

	return shoe, nil
}

// ParseQuantity converts a raw restock amount into a non-negative integer.
func ParseQuantity(raw string) (int, error) {
	amount, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: quantity %q is not an integer", ErrValidation, raw)
	}
	if err := validate.Struct(restockAmount{Amount: amount}); err != nil {
		return 0, fmt.Errorf("%w: quantity %d must not be negative", ErrValidation, amount)
	}
	return amount, nil
}

// GetCost returns the unit cost.
func (s Shoe) GetCost() float64 { return s.Cost }

// GetQuantity returns the units in stock.
func (s Shoe) GetQuantity() int { return s.Quantity }

// Value is cost multiplied by quantity.
func (s Shoe) Value() float64 {
	return s.Cost * float64(s.Quantity)
}

// Row is the tabular projection used by listings: product, code, country, cost, quantity.
func (s Shoe) Row() []string {
	return []string{s.Product, s.Code, s.Country, FormatAmount(s.Cost), strconv.Itoa(s.Quantity)}
}

func (s Shoe) String() string {
	return fmt.Sprintf("Product: %s, Code: %s, Country: %s, Cost: %s, Quantity: %d",
		s.Product, s.Code, s.Country, FormatAmount(s.Cost), s.Quantity)
}

// FormatAmount renders a monetary value in its shortest exact decimal form.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
