package entity

import "time"

// Periodo é o recorte mensal que particiona pedidos, judicializações e
// controles de envio. Imutável depois de criado (não há operação de edição).
type Periodo struct {
	ID       string
	Nome     string // ex: "Janeiro 2025"
	Mes      int    // 1..12
	Ano      int
	CriadoEm time.Time
}
