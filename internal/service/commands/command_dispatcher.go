package commands

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/shoestock/internal/domain/models"
	repo "github.com/mamadbah2/shoestock/internal/repository/textfile"
	"github.com/mamadbah2/shoestock/internal/service/inventory"
)

const (
	menuTitle       = "Shoe Inventory Menu"
	msgEmpty        = "No shoes in inventory."
	msgChoicePrompt = "Enter your choice: "
)

// Console is the presentation surface the dispatcher drives.
type Console interface {
	Prompt(label string) (string, error)
	Menu(title string, options []models.MenuOption)
	Table(headers []string, rows [][]string)
	Record(shoe models.Shoe)
	Println(a ...any)
	Printf(format string, a ...any)
}

// Dispatcher runs the menu loop and owns the session inventory.
type Dispatcher struct {
	inv     *models.Inventory
	repo    repo.Repository
	console Console
	logger  *zap.Logger
}

// NewDispatcher constructs a menu dispatcher over an empty inventory.
func NewDispatcher(repository repo.Repository, console Console, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		inv:     models.NewInventory(),
		repo:    repository,
		console: console,
		logger:  logger,
	}
}

// Inventory exposes the session inventory.
func (d *Dispatcher) Inventory() *models.Inventory { return d.inv }

// Run shows the menu until the user exits, input runs out or ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		d.console.Menu(menuTitle, models.MenuOptions)
		raw, err := d.console.Prompt(msgChoicePrompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.logger.Info("input closed, leaving menu")
				d.console.Println()
				d.console.Println("Exiting the program.")
				return nil
			}
			return err
		}

		exit, err := d.HandleChoice(ctx, models.ParseChoice(raw))
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.logger.Info("input closed mid-action, leaving menu")
				d.console.Println()
				return nil
			}
			return err
		}
		if exit {
			return nil
		}
	}
}

// HandleChoice executes one menu action. It reports exit=true for the exit choice
// and returns an error only when input or ctx fail, never for inventory problems.
func (d *Dispatcher) HandleChoice(ctx context.Context, choice models.Choice) (bool, error) {
	d.logger.Debug("dispatching choice", zap.String("choice", string(choice)), zap.Int("records", d.inv.Len()))

	switch choice {
	case models.ChoiceLoad:
		d.load(ctx)
	case models.ChoiceCapture:
		return false, d.capture()
	case models.ChoiceViewAll:
		d.viewAll()
	case models.ChoiceRestock:
		return false, d.restock(ctx)
	case models.ChoiceSearch:
		return false, d.search()
	case models.ChoiceValue:
		d.valuePerItem()
	case models.ChoiceHighest:
		d.highest()
	case models.ChoiceExit:
		d.console.Println("Exiting the program.")
		return true, nil
	default:
		d.console.Println("Invalid choice, please try again.")
	}
	return false, nil
}

func (d *Dispatcher) load(ctx context.Context) {
	shoes, err := d.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, repo.ErrFileNotFound) {
			d.logger.Warn("inventory file missing", zap.String("path", d.repo.Path()))
			d.console.Printf("The file %s was not found.", d.repo.Path())
			return
		}
		d.logger.Error("load inventory failed", zap.Error(err))
		d.console.Printf("An error occurred: %v", err)
		return
	}

	for _, shoe := range shoes {
		inventory.Append(d.inv, shoe)
	}
	d.logger.Info("inventory loaded", zap.Int("loaded", len(shoes)), zap.Int("records", d.inv.Len()))
	d.console.Println("Shoes data read successfully!")
}

func (d *Dispatcher) capture() error {
	labels := []string{
		"Enter the country: ",
		"Enter the code: ",
		"Enter the product name: ",
		"Enter the cost: ",
		"Enter the quantity: ",
	}
	answers := make([]string, 0, len(labels))
	for _, label := range labels {
		answer, err := d.console.Prompt(label)
		if err != nil {
			return err
		}
		answers = append(answers, answer)
	}

	shoe, err := models.NewShoe(answers[0], answers[1], answers[2], answers[3], answers[4])
	if err != nil {
		d.logger.Warn("rejected captured shoe", zap.Error(err))
		d.console.Printf("Invalid shoe data: %v", err)
		return nil
	}

	inventory.Append(d.inv, shoe)
	d.logger.Info("shoe captured", zap.String("code", shoe.Code))
	d.console.Println("Shoe added successfully!")
	return nil
}

func (d *Dispatcher) viewAll() {
	rows, err := inventory.ListAll(d.inv)
	if err != nil {
		d.console.Println(msgEmpty)
		return
	}
	d.console.Table(inventory.Headers, rows)
}

func (d *Dispatcher) restock(ctx context.Context) error {
	lowest, err := inventory.FindMinQuantity(d.inv)
	if err != nil {
		d.console.Println(msgEmpty)
		return nil
	}
	d.console.Printf("The shoe with the lowest quantity is: %s", lowest)

	answer, err := d.console.Prompt("Do you want to add more to the quantity? (yes/no): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "yes") {
		return nil
	}

	raw, err := d.console.Prompt("Enter the quantity to add: ")
	if err != nil {
		return err
	}
	amount, err := models.ParseQuantity(raw)
	if err != nil {
		d.console.Printf("Invalid quantity: %v", err)
		return nil
	}
	if err := inventory.IncrementQuantity(lowest, amount); err != nil {
		d.console.Printf("Invalid quantity: %v", err)
		return nil
	}
	d.logger.Info("shoe restocked", zap.String("code", lowest.Code), zap.Int("added", amount), zap.Int("quantity", lowest.Quantity))
	d.console.Printf("Updated quantity for %s is now %d", lowest.Product, lowest.Quantity)

	if err := d.repo.Save(ctx, d.inv.Snapshot()); err != nil {
		d.logger.Error("save inventory failed", zap.String("path", d.repo.Path()), zap.Error(err))
		d.console.Printf("An error occurred: %v", err)
		return nil
	}
	d.console.Println("Inventory file updated successfully!")
	return nil
}

func (d *Dispatcher) search() error {
	code, err := d.console.Prompt("Enter the shoe code: ")
	if err != nil {
		return err
	}

	shoe, err := inventory.SearchByCode(d.inv, code)
	if err != nil {
		d.console.Println("Shoe not found.")
		return nil
	}
	d.console.Record(*shoe)
	return nil
}

func (d *Dispatcher) valuePerItem() {
	if d.inv.IsEmpty() {
		d.console.Println(msgEmpty)
		return
	}
	for _, item := range inventory.ValuePerRecord(d.inv) {
		d.console.Printf("%s: Value = %s", item.Product, models.FormatAmount(item.Value))
	}
}

func (d *Dispatcher) highest() {
	shoe, err := inventory.FindMaxQuantity(d.inv)
	if err != nil {
		d.console.Println(msgEmpty)
		return
	}
	d.console.Printf("The shoe with the highest quantity is: %s, and it's on sale!", shoe)
}
