package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de orçamentos.
const (
	OrcamentoRascunho = "Rascunho"
	OrcamentoEnviado  = "Enviado"
	OrcamentoAprovado = "Aprovado"
	OrcamentoRecusado = "Recusado"
)

// OrcamentoStatusList ordem de exibição dos status de orçamento.
var OrcamentoStatusList = []string{OrcamentoRascunho, OrcamentoEnviado, OrcamentoAprovado, OrcamentoRecusado}

// IsOrcamentoStatus valida a enumeração de 4 valores.
func IsOrcamentoStatus(s string) bool {
	for _, v := range OrcamentoStatusList {
		if v == s {
			return true
		}
	}
	return false
}

// Orcamento é a cabeça de um orçamento comercial, base do PDF
// "Commercial Invoice". O bloco empresa_* é gravado junto para que o
// documento gerado não mude se os dados padrão da empresa mudarem depois.
type Orcamento struct {
	ID              string
	Numero          string // ORC{YYYY}{MM}{NNN}
	Data            string // YYYY-MM-DD
	ClienteID       string
	ClienteNome     string
	EmpresaNome     string
	EmpresaEndereco string
	EmpresaCidade   string
	EmpresaTelefone string
	EmpresaEmail    string
	Observacoes     string
	ValorTotal      decimal.Decimal
	Status          string
	CriadoPor       string
	CriadoEm        time.Time
	Itens           []OrcamentoItem
}

// OrcamentoItem é uma linha do orçamento. PrecoTotal é sempre
// qtd × preço unitário, recalculado na gravação.
type OrcamentoItem struct {
	ID            string
	OrcamentoID   string
	Descricao     string
	Qtd           int
	PrecoUnitario decimal.Decimal
	PrecoTotal    decimal.Decimal
}

// CalcularTotal recalcula os totais de linha e devolve a soma.
func (o *Orcamento) CalcularTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Itens {
		linha := o.Itens[i].PrecoUnitario.Mul(decimal.NewFromInt(int64(o.Itens[i].Qtd)))
		o.Itens[i].PrecoTotal = linha
		total = total.Add(linha)
	}
	return total
}
