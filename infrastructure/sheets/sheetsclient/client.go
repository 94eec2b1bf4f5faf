package sheetsclient

import (
	"context"
	"fmt"
	"os"

	"github.com/AI-Growify/meta-activity-tracker/internal/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client encapsula o acesso a uma única planilha do Google Sheets, que é o
// armazenamento durável do tracker.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
}

// New autentica com a service account apontada por GOOGLE_CREDENTIALS_PATH e
// cria o client da planilha configurada.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	data, err := os.ReadFile(cfg.Google.CredentialsPath)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler o arquivo de credenciais do Google")
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao interpretar as credenciais da service account")
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o serviço do Google Sheets")
	}

	return &Client{
		service:       service,
		spreadsheetID: cfg.Google.SpreadsheetID,
	}, nil
}

// SpreadsheetID retorna o ID da planilha configurada.
func (c *Client) SpreadsheetID() string {
	return c.spreadsheetID
}

// EnsureSheet garante que a aba exista e tenha o cabeçalho na primeira linha.
func (c *Client) EnsureSheet(ctx context.Context, title string, header []string) error {
	spreadsheet, err := c.service.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return errors.Wrap(err, "erro ao consultar a planilha")
	}

	exists := false
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			exists = true
			break
		}
	}

	if !exists {
		request := &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: title},
				},
			}},
		}
		if _, err := c.service.Spreadsheets.BatchUpdate(c.spreadsheetID, request).Context(ctx).Do(); err != nil {
			return errors.Wrapf(err, "erro ao criar a aba %s", title)
		}
		logrus.WithField("sheet", title).Info("Aba criada na planilha")
	}

	firstRow, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, fmt.Sprintf("%s!1:1", title)).Context(ctx).Do()
	if err != nil {
		return errors.Wrapf(err, "erro ao ler o cabeçalho da aba %s", title)
	}

	if len(firstRow.Values) == 0 || len(firstRow.Values[0]) == 0 {
		headerRow := make([]interface{}, len(header))
		for i, column := range header {
			headerRow[i] = column
		}

		valueRange := &sheets.ValueRange{Values: [][]interface{}{headerRow}}
		_, err := c.service.Spreadsheets.Values.
			Update(c.spreadsheetID, fmt.Sprintf("%s!A1", title), valueRange).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
		if err != nil {
			return errors.Wrapf(err, "erro ao gravar o cabeçalho da aba %s", title)
		}
	}

	return nil
}

// ReadDataRows lê todas as linhas de dados da aba (sem o cabeçalho).
func (c *Client) ReadDataRows(ctx context.Context, title string) ([][]interface{}, error) {
	values, err := c.service.Spreadsheets.Values.
		Get(c.spreadsheetID, fmt.Sprintf("%s!A2:ZZ", title)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler as linhas da aba %s", title)
	}

	return values.Values, nil
}

// AppendRows acrescenta linhas ao final da aba.
func (c *Client) AppendRows(ctx context.Context, title string, rows [][]interface{}) error {
	if len(rows) == 0 {
		return nil
	}

	valueRange := &sheets.ValueRange{Values: rows}
	_, err := c.service.Spreadsheets.Values.
		Append(c.spreadsheetID, fmt.Sprintf("%s!A1", title), valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return errors.Wrapf(err, "erro ao acrescentar linhas na aba %s", title)
	}

	return nil
}
