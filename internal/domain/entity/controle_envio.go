package entity

import "time"

// Status de controle de envios (escolha livre, sem restrição de transição).
const (
	EnvioPendente   = "Pendente"
	EnvioEnviado    = "Enviado"
	EnvioEmTransito = "Em Trânsito"
	EnvioAnvisa     = "Anvisa"
	EnvioProblema   = "Problema"
)

// EnvioStatusList ordem de exibição dos status de envio.
var EnvioStatusList = []string{EnvioPendente, EnvioEnviado, EnvioEmTransito, EnvioAnvisa, EnvioProblema}

// IsEnvioStatus valida a enumeração de 5 valores.
func IsEnvioStatus(s string) bool {
	for _, v := range EnvioStatusList {
		if v == s {
			return true
		}
	}
	return false
}

// ControleEnvio representa um envio de cortesia (sem receita), rastreado
// por período.
type ControleEnvio struct {
	ID        string
	PeriodoID string
	Nome      string
	Produto   string
	Qtd       int
	Data      string // YYYY-MM-DD
	Rastreio  string
	Status    string
	CriadoPor string
	CriadoEm  time.Time
}
