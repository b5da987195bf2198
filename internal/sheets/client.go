package sheets

import (
	"context"
	"errors"
	"os"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

var ErrNoCredentials = errors.New("google credentials not configured")

// NewService construye el cliente de la API de Sheets a partir de las
// credenciales de service account (JSON en línea o ruta a fichero).
func NewService(ctx context.Context, credentialsJSON, credentialsFile string) (*gsheets.Service, error) {
	raw := []byte(credentialsJSON)
	if len(raw) == 0 && credentialsFile != "" {
		fileBytes, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, err
		}
		raw = fileBytes
	}
	if len(raw) == 0 {
		return nil, ErrNoCredentials
	}
	return gsheets.NewService(ctx,
		option.WithCredentialsJSON(raw),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
}
