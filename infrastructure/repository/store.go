package repository

import "context"

// Store é a visão que os repositórios têm do Google Sheets: garantir a aba,
// ler linhas de dados e acrescentar linhas. Implementado por
// sheetsclient.Client.
type Store interface {
	EnsureSheet(ctx context.Context, title string, header []string) error
	ReadDataRows(ctx context.Context, title string) ([][]interface{}, error)
	AppendRows(ctx context.Context, title string, rows [][]interface{}) error
}
