package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/shoestock/internal/domain/models"
)

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("Italy\r\n  spaced  \nlast"), &out)

	got, err := c.Prompt("Enter the country: ")
	require.NoError(t, err)
	assert.Equal(t, "Italy", got)

	got, err = c.Prompt("Enter the code: ")
	require.NoError(t, err)
	assert.Equal(t, "  spaced  ", got, "raw text is returned untouched")

	got, err = c.Prompt("Enter the product name: ")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = c.Prompt("Enter the cost: ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "Enter the country: Enter the code: Enter the product name: Enter the cost: ", out.String())
}

func TestMenu(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out).Menu("Shoe Inventory Menu", models.MenuOptions[:2])

	assert.Equal(t, "\nShoe Inventory Menu\n1. Read Shoes Data\n2. Capture Shoes\n", out.String())
}

func TestTable(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out).Table(
		[]string{"Product", "Code", "Country", "Cost", "Quantity"},
		[][]string{
			{"Air Max 90", "SKU44386", "South Africa", "2300", "20"},
			{"Blazer", "SKU63221", "Vietnam", "1700.5", "19"},
		},
	)

	rendered := out.String()
	for _, want := range []string{"Product", "Quantity", "Air Max 90", "SKU63221", "1700.5", "South Africa"} {
		assert.Contains(t, rendered, want)
	}

	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	assert.Greater(t, len(lines), 5, "header, separators and two rows are drawn")
	assert.Less(t, strings.Index(rendered, "Air Max 90"), strings.Index(rendered, "Blazer"))
}

func TestPrintHelpers(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	c.Record(models.Shoe{Country: "UK", Code: "AB1", Product: "Boot", Cost: 1.5, Quantity: 2})
	c.Println("Shoe not found.")
	c.Printf("%s: Value = %s", "Runner", "42")

	assert.Equal(t, "Product: Boot, Code: AB1, Country: UK, Cost: 1.5, Quantity: 2\nShoe not found.\nRunner: Value = 42\n", out.String())
}
