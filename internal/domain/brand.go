package domain

// BrandRecord representa uma marca cadastrada no diretório (Airtable),
// imutável durante a execução.
type BrandRecord struct {
	BrandName      string
	NormalizedName string
	ExternalID     string
	FBManager      string
	BrandManager   string
	CurrentTeam    string
}

// NotAssigned é o valor usado quando o diretório não informa um responsável.
const NotAssigned = "Not Assigned"

// UnknownBrandMatch é o resultado de mapeamento quando nenhuma marca do
// diretório corresponde ao nome vindo do Meta.
var UnknownBrandMatch = BrandMatch{
	FBManager:    "Unknown",
	BrandManager: "Unknown",
	CurrentTeam:  "Unknown",
}

// BrandMatch é o resultado do cruzamento entre o nome da marca do Meta e o
// diretório de marcas.
type BrandMatch struct {
	MatchedBrand string
	FBManager    string
	BrandManager string
	CurrentTeam  string
}
