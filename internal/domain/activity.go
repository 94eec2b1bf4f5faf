package domain

import (
	"fmt"
	"time"
)

// KeyDelimiter separa os campos da chave de deduplicação. A chave precisa ser
// determinística: o timestamp é sempre normalizado para UTC antes da
// formatação, senão janelas sobrepostas geram duplicatas silenciosas.
const KeyDelimiter = "|"

// Níveis de hierarquia dos objetos da Graph API. Os object_types do Meta não
// correspondem aos nomes de produto: campaign_group é a campanha, campaign é
// o conjunto de anúncios e adgroup é o anúncio.
const (
	HierarchyLevelCampaign = "CAMPAIGN"
	HierarchyLevelAdSet    = "ADSET"
	HierarchyLevelAd       = "AD"
	HierarchyLevelUnknown  = "UNKNOWN"
)

// NotAvailable é o placeholder para campos de hierarquia não resolvidos.
const NotAvailable = "N/A"

// CampaignInfo agrupa os dados da campanha resolvidos para uma atividade.
type CampaignInfo struct {
	Name        string
	Status      string
	Objective   string
	BudgetType  string
	Budget      string
	BidStrategy string
}

// AdSetInfo agrupa os dados do conjunto de anúncios resolvidos para uma atividade.
type AdSetInfo struct {
	Name              string
	Status            string
	OptimizationGoal  string
	BillingEvent      string
	AgeTargeting      string
	GenderTargeting   string
	LocationTargeting string
}

// AdInfo agrupa os dados do anúncio resolvidos para uma atividade.
type AdInfo struct {
	Name        string
	Status      string
	PreviewLink string
}

// NewCampaignInfo retorna CampaignInfo com todos os campos em N/A.
func NewCampaignInfo() CampaignInfo {
	return CampaignInfo{
		Name:        NotAvailable,
		Status:      NotAvailable,
		Objective:   NotAvailable,
		BudgetType:  NotAvailable,
		Budget:      NotAvailable,
		BidStrategy: NotAvailable,
	}
}

// NewAdSetInfo retorna AdSetInfo com todos os campos em N/A.
func NewAdSetInfo() AdSetInfo {
	return AdSetInfo{
		Name:              NotAvailable,
		Status:            NotAvailable,
		OptimizationGoal:  NotAvailable,
		BillingEvent:      NotAvailable,
		AgeTargeting:      NotAvailable,
		GenderTargeting:   NotAvailable,
		LocationTargeting: NotAvailable,
	}
}

// NewAdInfo retorna AdInfo com todos os campos em N/A.
func NewAdInfo() AdInfo {
	return AdInfo{
		Name:        NotAvailable,
		Status:      NotAvailable,
		PreviewLink: NotAvailable,
	}
}

// ActivityEvent é uma atividade humana capturada da Graph API, existente
// apenas em memória durante uma execução.
type ActivityEvent struct {
	Brand           string
	BrandExternalID string
	AccountID       string
	AccountName     string

	ActorName      string
	ActivityType   string
	RawEventType   string
	Timestamp      time.Time
	HierarchyLevel string

	Campaign CampaignInfo
	AdSet    AdSetInfo
	Ad       AdInfo

	ChangedFrom string
	ChangedTo   string

	ObjectName string
	ObjectID   string
	ObjectType string

	RawFields map[string]string
}

// Valid informa se o evento tem os campos mínimos para compor a chave de
// deduplicação. Eventos inválidos são contados como pulados, nunca fatais.
func (e ActivityEvent) Valid() bool {
	return e.BrandExternalID != "" && !e.Timestamp.IsZero() && e.ActivityType != ""
}

// DedupeKey monta a chave composta de deduplicação:
// brand_external_id|timestamp RFC3339 em UTC|activity_type.
func (e ActivityEvent) DedupeKey() string {
	return fmt.Sprintf("%s%s%s%s%s",
		e.BrandExternalID,
		KeyDelimiter,
		e.Timestamp.UTC().Format(time.RFC3339),
		KeyDelimiter,
		e.ActivityType,
	)
}

// LoggedRow é a representação persistida de um ActivityEvent, acrescida do
// cruzamento com o diretório de marcas e da data de coleta.
type LoggedRow struct {
	Event     ActivityEvent
	Match     BrandMatch
	FetchDate time.Time
}

// DedupeKey delega para a chave do evento subjacente.
func (r LoggedRow) DedupeKey() string {
	return r.Event.DedupeKey()
}
