package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/Aellun/exam-wishes-app/internal/domain"
)

// SheetsWishRepository persiste los deseos como filas de una hoja de cálculo
// remota con columnas fijas text | author | createdAt.
type SheetsWishRepository struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	timeout       time.Duration
}

func NewSheetsWishRepository(svc *sheets.Service, spreadsheetID, sheetName string, timeout time.Duration) *SheetsWishRepository {
	if sheetName == "" {
		sheetName = "Wishes"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SheetsWishRepository{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		timeout:       timeout,
	}
}

func (r *SheetsWishRepository) dataRange() string {
	return r.sheetName + "!A:C"
}

// EnsureHeader crea la fila de cabecera si la hoja está vacía.
func (r *SheetsWishRepository) EnsureHeader(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, r.dataRange()).Context(ctx).Do()
	if err != nil {
		return wrapStoreErr(err)
	}
	if len(resp.Values) > 0 {
		return nil
	}

	header := &sheets.ValueRange{Values: [][]interface{}{{"text", "author", "createdAt"}}}
	_, err = r.svc.Spreadsheets.Values.Append(r.spreadsheetID, r.dataRange(), header).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return wrapStoreErr(err)
}

// Append escribe un deseo como nueva fila al final de la hoja.
func (r *SheetsWishRepository) Append(ctx context.Context, wish domain.Wish) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	row := &sheets.ValueRange{Values: [][]interface{}{{
		wish.Text,
		wish.Author,
		wish.CreatedAt.UTC().Format(time.RFC3339),
	}}}
	_, err := r.svc.Spreadsheets.Values.Append(r.spreadsheetID, r.dataRange(), row).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return wrapStoreErr(err)
}

// ReadAll lee todas las filas en orden de inserción. Las filas que no se
// pueden interpretar (ediciones manuales) se saltan y se devuelve su conteo.
func (r *SheetsWishRepository) ReadAll(ctx context.Context) ([]domain.Wish, int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resp, err := r.svc.Spreadsheets.Values.Get(r.spreadsheetID, r.dataRange()).Context(ctx).Do()
	if err != nil {
		return nil, 0, wrapStoreErr(err)
	}
	wishes, skipped := parseRows(resp.Values)
	return wishes, skipped, nil
}

func parseRows(values [][]interface{}) ([]domain.Wish, int) {
	wishes := make([]domain.Wish, 0, len(values))
	skipped := 0
	for i, row := range values {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		wish, ok := scanRow(row)
		if !ok {
			skipped++
			continue
		}
		wishes = append(wishes, wish)
	}
	return wishes, skipped
}

func scanRow(row []interface{}) (domain.Wish, bool) {
	if len(row) < 3 {
		return domain.Wish{}, false
	}
	text, _ := row[0].(string)
	author, _ := row[1].(string)
	rawCreated, _ := row[2].(string)

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Wish{}, false
	}
	createdAt, err := time.Parse(time.RFC3339, strings.TrimSpace(rawCreated))
	if err != nil {
		return domain.Wish{}, false
	}
	author = strings.TrimSpace(author)
	if author == "" {
		author = domain.AnonymousAuthor
	}
	return domain.Wish{Text: text, Author: author, CreatedAt: createdAt.UTC()}, true
}

func isHeaderRow(row []interface{}) bool {
	if len(row) == 0 {
		return false
	}
	first, _ := row[0].(string)
	return strings.EqualFold(strings.TrimSpace(first), "text")
}

func wrapStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrStoreTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
