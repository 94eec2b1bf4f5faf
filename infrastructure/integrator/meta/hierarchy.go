package meta

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	metadomain "github.com/AI-Growify/meta-activity-tracker/infrastructure/integrator/meta/domain"
	"github.com/AI-Growify/meta-activity-tracker/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// hierarchy agrupa os dados resolvidos de campanha, conjunto e anúncio para
// uma atividade.
type hierarchy struct {
	Level    string
	Campaign domain.CampaignInfo
	AdSet    domain.AdSetInfo
	Ad       domain.AdInfo
}

func newHierarchy() hierarchy {
	return hierarchy{
		Level:    domain.HierarchyLevelUnknown,
		Campaign: domain.NewCampaignInfo(),
		AdSet:    domain.NewAdSetInfo(),
		Ad:       domain.NewAdInfo(),
	}
}

// buildHierarchy resolve a hierarquia completa de um objeto da atividade.
// campaign_group é campanha, campaign é conjunto de anúncios e adgroup é
// anúncio; para conjuntos e anúncios os pais também são consultados. Qualquer
// objeto inacessível degrada para N/A sem falhar a execução.
func (s *MetaIntegrator) buildHierarchy(ctx context.Context, activity metadomain.Activity) hierarchy {
	h := newHierarchy()

	switch strings.ToLower(activity.ObjectType) {
	case "campaign_group":
		h.Level = domain.HierarchyLevelCampaign
		s.fillCampaign(ctx, activity.ObjectID, &h)
		if h.Campaign.Name == domain.NotAvailable {
			h.Campaign.Name = activity.ObjectName
		}

	case "campaign":
		h.Level = domain.HierarchyLevelAdSet
		campaignID := s.fillAdSet(ctx, activity.ObjectID, &h)
		if h.AdSet.Name == domain.NotAvailable {
			h.AdSet.Name = activity.ObjectName
		}
		if campaignID != "" {
			s.fillCampaign(ctx, campaignID, &h)
		}

	case "adgroup":
		h.Level = domain.HierarchyLevelAd
		adSetID := s.fillAd(ctx, activity.ObjectID, &h)
		if h.Ad.Name == domain.NotAvailable {
			h.Ad.Name = activity.ObjectName
		}
		if adSetID != "" {
			campaignID := s.fillAdSet(ctx, adSetID, &h)
			if campaignID != "" {
				s.fillCampaign(ctx, campaignID, &h)
			}
		}

	default:
		if activity.ObjectType != "" {
			h.Level = "OTHER:" + activity.ObjectType
		}
	}

	return h
}

// fillCampaign preenche os dados da campanha em h.
func (s *MetaIntegrator) fillCampaign(ctx context.Context, campaignID string, h *hierarchy) {
	details, err := s.Client.GetCampaignDetails(ctx, campaignID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Warn("Erro ao buscar detalhes da campanha")
		return
	}
	if details == nil {
		return
	}

	h.Campaign.Name = orNA(details.Name)
	h.Campaign.Status = orNA(metadomain.EffectiveOrStatus(details.EffectiveStatus, details.Status))
	h.Campaign.Objective = orNA(details.Objective)
	h.Campaign.BidStrategy = orNA(details.BidStrategy)
	h.Campaign.BudgetType, h.Campaign.Budget = formatBudget(details.DailyBudget, details.LifetimeBudget)
}

// fillAdSet preenche os dados do conjunto de anúncios em h e retorna o ID da
// campanha pai, quando conhecido.
func (s *MetaIntegrator) fillAdSet(ctx context.Context, adSetID string, h *hierarchy) string {
	details, err := s.Client.GetAdSetDetails(ctx, adSetID)
	if err != nil {
		logrus.WithError(err).WithField("adset_id", adSetID).Warn("Erro ao buscar detalhes do conjunto de anúncios")
		return ""
	}
	if details == nil {
		return ""
	}

	h.AdSet.Name = orNA(details.Name)
	h.AdSet.Status = orNA(metadomain.EffectiveOrStatus(details.EffectiveStatus, details.Status))
	h.AdSet.OptimizationGoal = orNA(details.OptimizationGoal)
	h.AdSet.BillingEvent = orNA(details.BillingEvent)
	h.AdSet.AgeTargeting, h.AdSet.GenderTargeting, h.AdSet.LocationTargeting = extractTargeting(details.Targeting)

	return details.CampaignID
}

// fillAd preenche os dados do anúncio em h e retorna o ID do conjunto pai,
// quando conhecido.
func (s *MetaIntegrator) fillAd(ctx context.Context, adID string, h *hierarchy) string {
	details, err := s.Client.GetAdDetails(ctx, adID)
	if err != nil {
		logrus.WithError(err).WithField("ad_id", adID).Warn("Erro ao buscar detalhes do anúncio")
		return ""
	}
	if details == nil {
		return ""
	}

	h.Ad.Name = orNA(details.Name)
	h.Ad.Status = orNA(metadomain.EffectiveOrStatus(details.EffectiveStatus, details.Status))
	h.Ad.PreviewLink = orNA(details.PreviewShareableLink)

	return details.AdSetID
}

// formatBudget converte o orçamento (em centavos, string na Graph API) para o
// par (tipo, valor formatado). Orçamento diário tem precedência.
func formatBudget(dailyBudget, lifetimeBudget string) (string, string) {
	if dailyBudget != "" {
		if cents, err := strconv.ParseFloat(dailyBudget, 64); err == nil {
			return "Daily", fmt.Sprintf("$%.2f", cents/100)
		}
	}
	if lifetimeBudget != "" {
		if cents, err := strconv.ParseFloat(lifetimeBudget, 64); err == nil {
			return "Lifetime", fmt.Sprintf("$%.2f", cents/100)
		}
	}
	return domain.NotAvailable, domain.NotAvailable
}

// extractTargeting resume a segmentação de um conjunto de anúncios em
// (faixa etária, gênero, localização) legíveis.
func extractTargeting(targeting *metadomain.Targeting) (string, string, string) {
	if targeting == nil {
		return domain.NotAvailable, domain.NotAvailable, domain.NotAvailable
	}

	ageRange := "Not Set"
	if targeting.AgeMin > 0 {
		ageRange = fmt.Sprintf("%d-%d", targeting.AgeMin, targeting.AgeMax)
	}

	gender := genderLabel(targeting.Genders)

	location := "Not Set"
	geo := targeting.GeoLocations
	switch {
	case len(geo.Countries) > 0:
		shown := geo.Countries
		extra := 0
		if len(shown) > 3 {
			extra = len(shown) - 3
			shown = shown[:3]
		}
		location = strings.Join(shown, ", ")
		if extra > 0 {
			location += fmt.Sprintf(" +%d more", extra)
		}
	case len(geo.Cities) > 0:
		location = fmt.Sprintf("%d cities", len(geo.Cities))
	case len(geo.Regions) > 0:
		location = fmt.Sprintf("%d regions", len(geo.Regions))
	}

	return ageRange, gender, location
}

// genderLabel converte o vetor de gêneros da Graph API (1=masculino,
// 2=feminino, vazio=todos) para um rótulo.
func genderLabel(genders []int) string {
	if len(genders) == 0 {
		return "All"
	}

	var male, female bool
	for _, g := range genders {
		switch g {
		case 1:
			male = true
		case 2:
			female = true
		}
	}

	switch {
	case male && female:
		return "All"
	case male:
		return "Male"
	case female:
		return "Female"
	default:
		return "Not Set"
	}
}

// parseExtraData extrai os valores de mudança (de/para) do blob extra_data.
// O blob pode vir como objeto ou como string JSON; falha de parse degrada
// para N/A.
func parseExtraData(raw []byte) (string, string) {
	if len(raw) == 0 {
		return domain.NotAvailable, domain.NotAvailable
	}

	// extra_data às vezes chega como string JSON com o objeto dentro
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		raw = []byte(asString)
	}

	var extra metadomain.ExtraData
	if err := json.Unmarshal(raw, &extra); err != nil {
		return domain.NotAvailable, domain.NotAvailable
	}

	return rawValueToString(extra.OldValue), rawValueToString(extra.NewValue)
}

// rawValueToString converte um valor old/new (escalar ou objeto) para string.
func rawValueToString(raw []byte) string {
	if len(raw) == 0 {
		return domain.NotAvailable
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	return string(raw)
}

func orNA(value string) string {
	if value == "" {
		return domain.NotAvailable
	}
	return value
}
