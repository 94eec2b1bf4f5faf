package metadomain

// CampaignDetails são os campos consultados em /{campaign-id}.
type CampaignDetails struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	Objective       string `json:"objective"`
	DailyBudget     string `json:"daily_budget"`
	LifetimeBudget  string `json:"lifetime_budget"`
	BidStrategy     string `json:"bid_strategy"`
}

// GeoLocations é o bloco de segmentação geográfica de um targeting.
type GeoLocations struct {
	Countries []string         `json:"countries"`
	Cities    []map[string]any `json:"cities"`
	Regions   []map[string]any `json:"regions"`
}

// Targeting são os campos de segmentação consultados em um ad set.
type Targeting struct {
	AgeMin       int          `json:"age_min"`
	AgeMax       int          `json:"age_max"`
	Genders      []int        `json:"genders"`
	GeoLocations GeoLocations `json:"geo_locations"`
}

// AdSetDetails são os campos consultados em /{adset-id}.
type AdSetDetails struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Status           string     `json:"status"`
	EffectiveStatus  string     `json:"effective_status"`
	CampaignID       string     `json:"campaign_id"`
	OptimizationGoal string     `json:"optimization_goal"`
	BillingEvent     string     `json:"billing_event"`
	Targeting        *Targeting `json:"targeting"`
}

// AdDetails são os campos consultados em /{ad-id}.
type AdDetails struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Status               string `json:"status"`
	EffectiveStatus      string `json:"effective_status"`
	AdSetID              string `json:"adset_id"`
	PreviewShareableLink string `json:"preview_shareable_link"`
}

// EffectiveOrStatus retorna effective_status quando preenchido, senão status.
func EffectiveOrStatus(effective, status string) string {
	if effective != "" {
		return effective
	}
	return status
}
