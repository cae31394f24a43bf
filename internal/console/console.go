package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mamadbah2/shoestock/internal/domain/models"
)

// Console renders inventory output and collects raw user input.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// New wires a console over the given input and output streams.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Prompt writes label and returns the next line of input without its line ending.
// io.EOF is returned only when the input is exhausted before any text was read.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)

	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Menu prints the title and the numbered options.
func (c *Console) Menu(title string, options []models.MenuOption) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, title)
	for _, opt := range options {
		fmt.Fprintf(c.out, "%s. %s\n", opt.Choice, opt.Label)
	}
}

// Table renders rows as a bordered grid under the given headers.
func (c *Console) Table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(c.out, t.Render())
}

// Record prints a single shoe in its standard string form.
func (c *Console) Record(shoe models.Shoe) {
	fmt.Fprintln(c.out, shoe.String())
}

// Println writes a line of text.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text followed by a newline.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format+"\n", a...)
}
