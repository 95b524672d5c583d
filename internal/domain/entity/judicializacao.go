package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de judicializações (escolha livre, sem restrição de transição).
const (
	JudicOrcado    = "Orçado"
	JudicEmbarcado = "Embarcado"
	JudicEntregue  = "Entregue"
)

// JudicStatusList ordem de exibição dos status de judicialização.
var JudicStatusList = []string{JudicOrcado, JudicEmbarcado, JudicEntregue}

// IsJudicStatus valida a enumeração de 3 valores.
func IsJudicStatus(s string) bool {
	return s == JudicOrcado || s == JudicEmbarcado || s == JudicEntregue
}

// Judicializacao representa um envio por determinação judicial, rastreado
// por período com pipeline próprio, separado dos pedidos comerciais.
type Judicializacao struct {
	ID          string
	PeriodoID   string
	NrProcesso  string
	Cliente     string
	Advogado    string
	Produto     string
	Qtd         int
	Total       decimal.Decimal
	Data        string // YYYY-MM-DD
	Status      string
	Observacoes string
	CriadoPor   string
	CriadoEm    time.Time
}
