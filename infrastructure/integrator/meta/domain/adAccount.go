package metadomain

// AdAccount representa uma conta de anúncios retornada por /me/adaccounts.
type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
	BusinessName  string `json:"business_name"`
	Currency      string `json:"currency"`
	TimezoneName  string `json:"timezone_name"`
}

// ResponseAdAccounts é a resposta paginada do endpoint de contas.
type ResponseAdAccounts struct {
	Data   []AdAccount `json:"data"`
	Paging Paging      `json:"paging"`
}

// Brand retorna o nome de marca preferido da conta: business_name quando
// presente, senão o nome da conta.
func (a AdAccount) Brand() string {
	if a.BusinessName != "" {
		return a.BusinessName
	}
	return a.Name
}
