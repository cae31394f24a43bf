package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/shoestock/internal/domain/models"
)

// Header is the fixed first line written to the inventory file.
const Header = "Country,Code,Product,Cost,Quantity"

const (
	defaultPath = "inventory.txt"
	fieldCount  = 5
)

var (
	// ErrFileNotFound indicates the inventory file does not exist.
	ErrFileNotFound = errors.New("inventory file not found")
	// ErrMalformedLine indicates a data line did not split into exactly five fields.
	ErrMalformedLine = errors.New("malformed inventory line")
)

// Repository defines the persistence operations supported by the flat file adapter.
type Repository interface {
	Load(ctx context.Context) ([]models.Shoe, error)
	Save(ctx context.Context, shoes []models.Shoe) error
	Path() string
}

// FileRepository implements Repository on top of a comma-delimited text file.
type FileRepository struct {
	path   string
	logger *zap.Logger
}

// NewFileRepository builds a repository bound to path.
func NewFileRepository(path string, logger *zap.Logger) *FileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		path = defaultPath
	}
	return &FileRepository{path: path, logger: logger}
}

// Path returns the backing file location.
func (r *FileRepository) Path() string { return r.path }

// Load reads every data line of the file. The header line is skipped without
// inspection. Any bad line fails the whole load.
func (r *FileRepository) Load(ctx context.Context) ([]models.Shoe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, r.path)
		}
		return nil, fmt.Errorf("open %s: %w", r.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	var shoes []models.Shoe
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		shoe, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", r.path, lineNo, err)
		}
		shoes = append(shoes, shoe)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	r.logger.Debug("inventory file loaded", zap.String("path", r.path), zap.Int("records", len(shoes)))
	return shoes, nil
}

// Save replaces the whole file with the header followed by one line per shoe.
// The write is not atomic; an interrupted save can leave a truncated file.
func (r *FileRepository) Save(ctx context.Context, shoes []models.Shoe) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create %s: %w", r.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", r.path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(Header + "\n"); err != nil {
		return fmt.Errorf("write header to %s: %w", r.path, err)
	}
	for _, shoe := range shoes {
		if _, err := w.WriteString(FormatLine(shoe) + "\n"); err != nil {
			return fmt.Errorf("write %s to %s: %w", shoe.Code, r.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", r.path, err)
	}

	r.logger.Debug("inventory file written", zap.String("path", r.path), zap.Int("records", len(shoes)))
	return nil
}

// ParseLine splits one data line into country, code, product, cost and quantity.
// Quoting is not supported, so a field containing a comma breaks the line.
func ParseLine(line string) (models.Shoe, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return models.Shoe{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedLine, fieldCount, len(fields))
	}
	return models.NewShoe(fields[0], fields[1], fields[2], fields[3], fields[4])
}

// FormatLine renders a shoe in file column order.
func FormatLine(s models.Shoe) string {
	return strings.Join([]string{
		s.Country,
		s.Code,
		s.Product,
		models.FormatAmount(s.Cost),
		strconv.Itoa(s.Quantity),
	}, ",")
}
