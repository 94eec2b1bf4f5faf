package domain

import "fmt"

// ConfigurationError indica variável de ambiente ausente ou inválida. Aborta
// a execução antes de qualquer chamada de rede.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// UpstreamFetchError indica falha ao consultar uma API externa (Meta ou
// Airtable). A execução é marcada como falha no run-log, sem retry automático
// além do retry interno dos clients.
type UpstreamFetchError struct {
	Source string
	Err    error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("upstream fetch error (%s): %v", e.Source, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error { return e.Err }

// WriteError indica falha ao gravar na planilha de destino.
type WriteError struct {
	Sheet string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error (sheet %s): %v", e.Sheet, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
