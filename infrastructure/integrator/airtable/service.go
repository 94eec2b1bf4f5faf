package airtable

import (
	"context"
	"fmt"
	"strings"

	"github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/airtable/airtableclient"
	"github.com/AI-Growify/meta-activity-tracker/internal/config"
	"github.com/AI-Growify/meta-activity-tracker/internal/domain"
	"github.com/sirupsen/logrus"
)

// Variações de nomes de coluna aceitas no Airtable. As bases não seguem um
// padrão único de cabeçalho.
var (
	brandColumns        = []string{"Brand", "Brands", "Brand Name", "brand", "brands"}
	externalIDColumns   = []string{"Account ID", "Account_ID", "External ID", "External_ID", "Meta Account ID"}
	fbManagerColumns    = []string{"FB Manager", "FB_Manager", "Facebook Manager", "fb_manager"}
	brandManagerColumns = []string{"Brand Manager", "Brand_Manager", "brand_manager"}
	teamColumns         = []string{"Current Team", "Team", "Current_Team", "team"}
)

// Comprimento mínimo dos nomes normalizados para o match por contenção.
const minContainmentLength = 5

// BrandDirectory é o diretório de marcas carregado do Airtable, indexado pelo
// nome normalizado. Imutável durante a execução.
type BrandDirectory struct {
	byNormalizedName map[string]domain.BrandRecord
}

// NewBrandDirectory indexa registros já montados. Registros com nome
// normalizado repetido são sobrescritos, ficando o último.
func NewBrandDirectory(records []domain.BrandRecord) *BrandDirectory {
	directory := &BrandDirectory{
		byNormalizedName: make(map[string]domain.BrandRecord, len(records)),
	}
	for _, record := range records {
		if record.NormalizedName == "" {
			record.NormalizedName = NormalizeBrandName(record.BrandName)
		}
		if record.NormalizedName == "" {
			continue
		}
		directory.byNormalizedName[record.NormalizedName] = record
	}
	return directory
}

// Len retorna a quantidade de marcas indexadas.
func (d *BrandDirectory) Len() int {
	return len(d.byNormalizedName)
}

// Records retorna as marcas do diretório.
func (d *BrandDirectory) Records() []domain.BrandRecord {
	records := make([]domain.BrandRecord, 0, len(d.byNormalizedName))
	for _, record := range d.byNormalizedName {
		records = append(records, record)
	}
	return records
}

// Match procura a melhor marca do diretório para um nome vindo do Meta:
// primeiro por igualdade do nome normalizado, depois por contenção em
// qualquer direção quando os dois nomes têm tamanho suficiente.
func (d *BrandDirectory) Match(brandName string) domain.BrandMatch {
	normalized := NormalizeBrandName(brandName)
	if normalized == "" {
		return domain.UnknownBrandMatch
	}

	if record, ok := d.byNormalizedName[normalized]; ok {
		return toMatch(record)
	}

	for candidate, record := range d.byNormalizedName {
		if len(normalized) < minContainmentLength || len(candidate) < minContainmentLength {
			continue
		}
		if strings.Contains(candidate, normalized) || strings.Contains(normalized, candidate) {
			return toMatch(record)
		}
	}

	return domain.UnknownBrandMatch
}

func toMatch(record domain.BrandRecord) domain.BrandMatch {
	return domain.BrandMatch{
		MatchedBrand: record.BrandName,
		FBManager:    record.FBManager,
		BrandManager: record.BrandManager,
		CurrentTeam:  record.CurrentTeam,
	}
}

// Service é o carregador do diretório de marcas.
type Service struct {
	cfg    *config.Config
	Client airtableclient.Client
}

func New(cfg *config.Config, client airtableclient.Client) *Service {
	return &Service{
		cfg:    cfg,
		Client: client,
	}
}

// LoadBrandDirectory carrega e indexa as marcas do Airtable. Registros sem
// coluna de marca reconhecível são ignorados com aviso.
func (s *Service) LoadBrandDirectory(ctx context.Context) (*BrandDirectory, error) {
	records, err := s.Client.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	directory := &BrandDirectory{
		byNormalizedName: make(map[string]domain.BrandRecord, len(records)),
	}

	skipped := 0
	for _, record := range records {
		brandRecord, ok := toBrandRecord(record)
		if !ok {
			skipped++
			continue
		}
		directory.byNormalizedName[brandRecord.NormalizedName] = brandRecord
	}

	if skipped > 0 {
		logrus.WithField("skipped", skipped).Warn("Registros do Airtable sem coluna de marca reconhecível")
	}

	logrus.WithField("brands", directory.Len()).Info("Diretório de marcas indexado")

	return directory, nil
}

// toBrandRecord converte um registro bruto do Airtable em BrandRecord,
// tolerando variações de cabeçalho.
func toBrandRecord(record airtableclient.Record) (domain.BrandRecord, bool) {
	brandName := firstField(record.Fields, brandColumns)
	if brandName == "" {
		return domain.BrandRecord{}, false
	}

	normalized := NormalizeBrandName(brandName)
	if normalized == "" {
		return domain.BrandRecord{}, false
	}

	return domain.BrandRecord{
		BrandName:      brandName,
		NormalizedName: normalized,
		ExternalID:     firstField(record.Fields, externalIDColumns),
		FBManager:      fieldOrNotAssigned(record.Fields, fbManagerColumns),
		BrandManager:   fieldOrNotAssigned(record.Fields, brandManagerColumns),
		CurrentTeam:    fieldOrNotAssigned(record.Fields, teamColumns),
	}, true
}

// firstField retorna o primeiro valor não vazio entre as colunas candidatas.
func firstField(fields map[string]any, candidates []string) string {
	for _, column := range candidates {
		if value, ok := fields[column]; ok {
			str := strings.TrimSpace(fmt.Sprintf("%v", value))
			if str != "" && str != "<nil>" {
				return str
			}
		}
	}
	return ""
}

func fieldOrNotAssigned(fields map[string]any, candidates []string) string {
	if value := firstField(fields, candidates); value != "" {
		return value
	}
	return domain.NotAssigned
}
