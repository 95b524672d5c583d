package dto

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MensagemResponse confirmação simples de uma ação.
type MensagemResponse struct {
	Mensagem string `json:"mensagem"`
}
