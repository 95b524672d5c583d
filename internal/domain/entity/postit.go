package entity

import "time"

// Prioridades de post-it.
const (
	PrioridadeBaixa   = "baixa"
	PrioridadeMedia   = "media"
	PrioridadeAlta    = "alta"
	PrioridadeUrgente = "urgente"
)

// IsPrioridade valida a enumeração de prioridade.
func IsPrioridade(s string) bool {
	return s == PrioridadeBaixa || s == PrioridadeMedia || s == PrioridadeAlta || s == PrioridadeUrgente
}

// PostIt é uma nota adesiva do quadro pessoal do usuário. Posição e
// dimensões ficam persistidas para o quadro reabrir como ficou.
type PostIt struct {
	ID         string
	UsuarioID  string
	Conteudo   string
	Cor        string // hex, ex: "#fef08a"
	PosicaoX   int
	PosicaoY   int
	Largura    int
	Altura     int
	Prioridade string
	CriadoEm   time.Time
}
