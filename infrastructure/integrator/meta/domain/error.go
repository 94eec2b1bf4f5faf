package metadomain

// ErrorResponse é o envelope de erro retornado pela Graph API.
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails são os campos de erro da Graph API usados na classificação.
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsTokenExpired informa se o erro indica token de acesso expirado ou
// inválido. Código 190 é o erro geral de token; os subcódigos 460, 463 e 467
// cobrem senha alterada, expiração e invalidação da sessão.
func (e *ErrorResponse) IsTokenExpired() bool {
	if e.Error.Code == 190 {
		return true
	}

	if e.Error.Type != "OAuthException" {
		return false
	}

	switch e.Error.ErrorSubcode {
	case 460, 463, 467:
		return true
	}

	return false
}
