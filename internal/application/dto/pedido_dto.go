package dto

import "time"

// ReservarPedidoRequest entrada da reserva: só o número; o resto nasce vazio.
type ReservarPedidoRequest struct {
	PeriodoID string `json:"periodo_id"`
	NrPedido  string `json:"nr_pedido"`
}

// UpdateCampoRequest grava um único campo do pedido (commit por blur).
type UpdateCampoRequest struct {
	Campo string `json:"campo"`
	Valor any    `json:"valor"`
}

// PedidoResponse saída de um pedido.
type PedidoResponse struct {
	ID           string    `json:"id"`
	PeriodoID    string    `json:"periodo_id"`
	NrPedido     string    `json:"nr_pedido"`
	Cliente      string    `json:"cliente"`
	Medico       string    `json:"medico"`
	Vendedor     string    `json:"vendedor"`
	Data         string    `json:"data"`
	Produto      string    `json:"produto"`
	Qtd          int       `json:"qtd"`
	Total        string    `json:"total"` // decimal serializado ("1550.20")
	Rastreio     string    `json:"rastreio"`
	Status       string    `json:"status"`
	ThcStatus    string    `json:"thc_status,omitempty"`
	PrazoTHC     string    `json:"prazo_thc,omitempty"` // data + 16 dias, só para THC / 2000
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

// EdicaoResponse estado do lease após iniciar/renovar.
type EdicaoResponse struct {
	PedidoID string    `json:"pedido_id"`
	ExpiraEm time.Time `json:"expira_em"`
}

// FinalizarEdicaoResponse resultado do encerramento da edição.
type FinalizarEdicaoResponse struct {
	Mensagem        string   `json:"mensagem"`
	CamposFaltantes []string `json:"campos_faltantes,omitempty"`
}
