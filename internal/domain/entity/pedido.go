package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-pedidos-api/pkg/brformat"
)

// Status do pipeline de pedidos. Enumeração de escolha livre: qualquer
// status pode ser definido a partir de qualquer outro por decisão humana
// (um envio pode regredir de "Em Trânsito" para "Problema Anvisa").
const (
	StatusEmSeparacao    = "Em Separação" // estado inicial de toda reserva
	StatusEmTransito     = "Em Trânsito"
	StatusAnvisa         = "Anvisa"
	StatusProblemaAnvisa = "Problema Anvisa"
	StatusAtraso         = "Atraso"
	StatusDocRecusado    = "Doc. Recusado"
	StatusTHC            = "THC / 2000" // categoria especial com sub-status próprio
)

// Sub-status de pedidos THC / 2000.
const (
	ThcPendenteEnvio = "Pendente de Envio"
	ThcEnviado       = "Enviado"
)

// PrazoEnvioTHCDias é o prazo fixo de embarque contado da data do pedido.
const PrazoEnvioTHCDias = 16

// PedidoStatusList é a lista completa na ordem de exibição.
var PedidoStatusList = []string{
	StatusEmSeparacao,
	StatusEmTransito,
	StatusAnvisa,
	StatusProblemaAnvisa,
	StatusAtraso,
	StatusDocRecusado,
	StatusTHC,
}

// ThcStatusList sub-status válidos para pedidos THC / 2000.
var ThcStatusList = []string{ThcPendenteEnvio, ThcEnviado}

// IsPedidoStatus valida a pertinência à enumeração de 7 valores.
func IsPedidoStatus(s string) bool {
	for _, v := range PedidoStatusList {
		if v == s {
			return true
		}
	}
	return false
}

// IsThcStatus valida o sub-status THC.
func IsThcStatus(s string) bool {
	return s == ThcPendenteEnvio || s == ThcEnviado
}

// Pedido representa um pedido comercial dentro de um período.
// NrPedido é único por período (case-insensitive), garantido por índice
// único no banco; a verificação otimista da aplicação é só conveniência.
type Pedido struct {
	ID            string
	PeriodoID     string
	NrPedido      string
	Cliente       string
	Medico        string
	Vendedor      string
	Data          string // YYYY-MM-DD
	Produto       string // multi-linha
	Qtd           int
	Total         decimal.Decimal
	Rastreio      string
	Status        string
	ThcStatus     string // vazio fora de "THC / 2000"
	CriadoPor     string
	AtualizadoPor string
	CriadoEm      time.Time
	AtualizadoEm  time.Time
}

// Completo indica se o pedido tem os campos mínimos para encerrar a edição
// (regra de negócio: cliente e produto preenchidos).
func (p *Pedido) Completo() bool {
	return p.Cliente != "" && p.Produto != ""
}

// CamposFaltantes lista os campos obrigatórios ainda vazios.
func (p *Pedido) CamposFaltantes() []string {
	var faltam []string
	if p.Cliente == "" {
		faltam = append(faltam, "cliente")
	}
	if p.Produto == "" {
		faltam = append(faltam, "produto")
	}
	return faltam
}

// PrazoEnvioTHC devolve a data limite de embarque (data + 16 dias) em
// YYYY-MM-DD. Erro apenas se a data do pedido estiver corrompida.
func (p *Pedido) PrazoEnvioTHC() (string, error) {
	return brformat.AddDays(p.Data, PrazoEnvioTHCDias)
}
