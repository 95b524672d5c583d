package dto

import "time"

// VendedorResponse saída de um vendedor.
type VendedorResponse struct {
	ID       string    `json:"id"`
	Nome     string    `json:"nome"`
	Ativo    bool      `json:"ativo"`
	CriadoEm time.Time `json:"criado_em"`
}

// PeriodoResponse saída de um período.
type PeriodoResponse struct {
	ID       string    `json:"id"`
	Nome     string    `json:"nome"`
	Mes      int       `json:"mes"`
	Ano      int       `json:"ano"`
	CriadoEm time.Time `json:"criado_em"`
}

// CreatePeriodoRequest entrada de criação de período; mês/ano são sempre os correntes.
type CreatePeriodoRequest struct {
	Nome string `json:"nome"`
}

// JudicializacaoRequest entrada de criação/edição de judicialização.
type JudicializacaoRequest struct {
	PeriodoID   string `json:"periodo_id"`
	NrProcesso  string `json:"nr_processo"`
	Cliente     string `json:"cliente"`
	Advogado    string `json:"advogado"`
	Produto     string `json:"produto"`
	Qtd         int    `json:"qtd"`
	Total       string `json:"total"`
	Data        string `json:"data"`
	Status      string `json:"status"`
	Observacoes string `json:"observacoes"`
}

// JudicializacaoResponse saída de uma judicialização.
type JudicializacaoResponse struct {
	ID          string    `json:"id"`
	PeriodoID   string    `json:"periodo_id"`
	NrProcesso  string    `json:"nr_processo"`
	Cliente     string    `json:"cliente"`
	Advogado    string    `json:"advogado"`
	Produto     string    `json:"produto"`
	Qtd         int       `json:"qtd"`
	Total       string    `json:"total"`
	Data        string    `json:"data"`
	Status      string    `json:"status"`
	Observacoes string    `json:"observacoes"`
	CriadoEm    time.Time `json:"criado_em"`
}

// ControleEnvioRequest entrada de criação/edição de envio de cortesia.
type ControleEnvioRequest struct {
	PeriodoID string `json:"periodo_id"`
	Nome      string `json:"nome"`
	Produto   string `json:"produto"`
	Qtd       int    `json:"qtd"`
	Data      string `json:"data"`
	Rastreio  string `json:"rastreio"`
	Status    string `json:"status"`
}

// ControleEnvioResponse saída de um envio de cortesia.
type ControleEnvioResponse struct {
	ID        string    `json:"id"`
	PeriodoID string    `json:"periodo_id"`
	Nome      string    `json:"nome"`
	Produto   string    `json:"produto"`
	Qtd       int       `json:"qtd"`
	Data      string    `json:"data"`
	Rastreio  string    `json:"rastreio"`
	Status    string    `json:"status"`
	CriadoEm  time.Time `json:"criado_em"`
}

// ClienteRequest entrada de criação/edição de cliente.
type ClienteRequest struct {
	RazaoSocial string `json:"razao_social"`
	CNPJ        string `json:"cnpj"`
	Endereco    string `json:"endereco"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	CEP         string `json:"cep"`
	Telefone    string `json:"telefone"`
	Email       string `json:"email"`
	Contato     string `json:"contato"`
}

// ClienteResponse saída de um cliente.
type ClienteResponse struct {
	ID          string    `json:"id"`
	RazaoSocial string    `json:"razao_social"`
	CNPJ        string    `json:"cnpj"`
	Endereco    string    `json:"endereco"`
	Cidade      string    `json:"cidade"`
	Estado      string    `json:"estado"`
	CEP         string    `json:"cep"`
	Telefone    string    `json:"telefone"`
	Email       string    `json:"email"`
	Contato     string    `json:"contato"`
	Ativo       bool      `json:"ativo"`
	CriadoEm    time.Time `json:"criado_em"`
}
