package entity

import "time"

// Cliente representa um cliente de orçamento (pessoa jurídica ou física).
type Cliente struct {
	ID          string
	RazaoSocial string
	CNPJ        string
	Endereco    string
	Cidade      string
	Estado      string
	CEP         string
	Telefone    string
	Email       string
	Contato     string
	Ativo       bool
	CriadoEm    time.Time
}
