package tracking

import (
	"context"

	"github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/airtable"
	"github.com/AI-Growify/meta-activity-tracker/internal/domain"
)

// ActivityFetcher define a interface para buscar atividades do Meta dentro de
// uma janela de lookback.
type ActivityFetcher interface {
	// FetchActivities retorna as atividades humanas da janela, possivelmente vazia
	FetchActivities(ctx context.Context, lookbackHours int) ([]domain.ActivityEvent, error)
}

// BrandLoader define a interface para carregar o diretório de marcas.
type BrandLoader interface {
	LoadBrandDirectory(ctx context.Context) (*airtable.BrandDirectory, error)
}
