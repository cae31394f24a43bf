package models

import "strings"

// Choice enumerates the menu entries.
type Choice string

const (
	ChoiceLoad    Choice = "1"
	ChoiceCapture Choice = "2"
	ChoiceViewAll Choice = "3"
	ChoiceRestock Choice = "4"
	ChoiceSearch  Choice = "5"
	ChoiceValue   Choice = "6"
	ChoiceHighest Choice = "7"
	ChoiceExit    Choice = "8"
	ChoiceUnknown Choice = ""
)

// MenuOption pairs a choice with the label shown to the user.
type MenuOption struct {
	Choice Choice
	Label  string
}

// MenuOptions lists the menu in display order.
var MenuOptions = []MenuOption{
	{ChoiceLoad, "Read Shoes Data"},
	{ChoiceCapture, "Capture Shoes"},
	{ChoiceViewAll, "View All Shoes"},
	{ChoiceRestock, "Re-stock Shoes"},
	{ChoiceSearch, "Search Shoe"},
	{ChoiceValue, "Calculate Value per Item"},
	{ChoiceHighest, "Highest Quantity Shoe"},
	{ChoiceExit, "Exit"},
}

// ParseChoice maps raw menu input to a Choice by exact match after trimming whitespace.
func ParseChoice(input string) Choice {
	normalized := strings.TrimSpace(input)

	for _, opt := range MenuOptions {
		if normalized == string(opt.Choice) {
			return opt.Choice
		}
	}
	return ChoiceUnknown
}
