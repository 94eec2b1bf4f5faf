package domain

import "time"

// Status possíveis de uma linha do run-log.
const (
	RunStatusInProgress = "🔄 In Progress"
	RunStatusSuccess    = "✅ Success"
	RunStatusFailed     = "❌ Failed"
)

// RunSummary é uma linha da planilha de metadados de execução
// (GitHub_Actions_Log): uma por invocação.
type RunSummary struct {
	Timestamp time.Time
	RunNumber string
	Action    string
	Details   string
	Count     int
	TimeRange string
	Status    string
}
