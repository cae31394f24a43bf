package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShoe(t *testing.T) {
	tests := []struct {
		name     string
		cost     string
		quantity string
		wantErr  bool
		wantCost float64
		wantQty  int
	}{
		{name: "valid", cost: "10.5", quantity: "4", wantCost: 10.5, wantQty: 4},
		{name: "surrounding spaces", cost: " 2 ", quantity: " 7\r", wantCost: 2, wantQty: 7},
		{name: "zero quantity", cost: "1", quantity: "0", wantCost: 1, wantQty: 0},
		{name: "cost not numeric", cost: "ten", quantity: "4", wantErr: true},
		{name: "quantity not integer", cost: "10", quantity: "4.5", wantErr: true},
		{name: "negative quantity", cost: "10", quantity: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shoe, err := NewShoe("South Africa", "SKU44386", "Air Max 90", tt.cost, tt.quantity)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, shoe.GetCost())
			assert.Equal(t, tt.wantQty, shoe.GetQuantity())
			assert.Equal(t, "SKU44386", shoe.Code)
		})
	}
}

func TestParseQuantity(t *testing.T) {
	n, err := ParseQuantity("12\n")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = ParseQuantity("-3")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = ParseQuantity("lots")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestShoeRendering(t *testing.T) {
	shoe, err := NewShoe("Vietnam", "SKU90000", "Jordan 1", "2500.0", "20")
	require.NoError(t, err)

	assert.Equal(t, "Product: Jordan 1, Code: SKU90000, Country: Vietnam, Cost: 2500, Quantity: 20", shoe.String())
	assert.Equal(t, []string{"Jordan 1", "SKU90000", "Vietnam", "2500", "20"}, shoe.Row())
}

func TestShoeValue(t *testing.T) {
	shoe := Shoe{Product: "Air Force", Cost: 10.5, Quantity: 4}
	assert.Equal(t, 42.0, shoe.Value())
}
