package dto

import "time"

// OrcamentoItemRequest linha de orçamento na entrada.
type OrcamentoItemRequest struct {
	Descricao     string `json:"descricao"`
	Qtd           int    `json:"qtd"`
	PrecoUnitario string `json:"preco_unitario"` // decimal serializado
}

// SaveOrcamentoRequest entrada de criação/edição de orçamento.
// Numero vazio na criação gera ORC{YYYY}{MM}{NNN}.
type SaveOrcamentoRequest struct {
	Numero          string                 `json:"numero"`
	Data            string                 `json:"data"`
	ClienteID       string                 `json:"cliente_id"`
	EmpresaNome     string                 `json:"empresa_nome"`
	EmpresaEndereco string                 `json:"empresa_endereco"`
	EmpresaCidade   string                 `json:"empresa_cidade"`
	EmpresaTelefone string                 `json:"empresa_telefone"`
	EmpresaEmail    string                 `json:"empresa_email"`
	Observacoes     string                 `json:"observacoes"`
	Status          string                 `json:"status"` // vazio = Rascunho
	Itens           []OrcamentoItemRequest `json:"itens"`
}

// OrcamentoItemResponse linha de orçamento na saída.
type OrcamentoItemResponse struct {
	ID            string `json:"id"`
	Descricao     string `json:"descricao"`
	Qtd           int    `json:"qtd"`
	PrecoUnitario string `json:"preco_unitario"`
	PrecoTotal    string `json:"preco_total"`
}

// OrcamentoResponse saída de um orçamento.
type OrcamentoResponse struct {
	ID              string                  `json:"id"`
	Numero          string                  `json:"numero"`
	Data            string                  `json:"data"`
	ClienteID       string                  `json:"cliente_id"`
	ClienteNome     string                  `json:"cliente_nome"`
	EmpresaNome     string                  `json:"empresa_nome"`
	EmpresaEndereco string                  `json:"empresa_endereco"`
	EmpresaCidade   string                  `json:"empresa_cidade"`
	EmpresaTelefone string                  `json:"empresa_telefone"`
	EmpresaEmail    string                  `json:"empresa_email"`
	Observacoes     string                  `json:"observacoes"`
	ValorTotal      string                  `json:"valor_total"`
	Status          string                  `json:"status"`
	CriadoEm        time.Time               `json:"criado_em"`
	Itens           []OrcamentoItemResponse `json:"itens,omitempty"`
}

// GerarPDFRequest opções do PDF; o logo vem como data URI base64 (opcional).
type GerarPDFRequest struct {
	LogoBase64 string `json:"logo_base64"`
}
