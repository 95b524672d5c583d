package entity

import "time"

// Vendedor representa um vendedor cadastrado, usado no autocomplete da
// entrada de pedidos.
type Vendedor struct {
	ID       string
	Nome     string
	Ativo    bool
	CriadoEm time.Time
}
