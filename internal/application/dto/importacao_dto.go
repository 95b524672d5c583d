package dto

// PedidoImportado linha válida extraída do CSV de pedidos.
type PedidoImportado struct {
	NrPedido string `json:"nr_pedido"`
	Cliente  string `json:"cliente"`
	Medico   string `json:"medico"`
	Vendedor string `json:"vendedor"`
	Data     string `json:"data"` // YYYY-MM-DD
	Produto  string `json:"produto"`
	Qtd      int    `json:"qtd"`
	Total    string `json:"total"` // decimal serializado
	Rastreio string `json:"rastreio"`
	Status   string `json:"status"`
}

// PreviewImportacaoResponse resultado do parse, antes de gravar.
type PreviewImportacaoResponse struct {
	Validos []PedidoImportado `json:"validos"`
	Erros   []string          `json:"erros"`
}

// PreviewVendedoresResponse resultado do parse do CSV de vendedores.
type PreviewVendedoresResponse struct {
	Validos []string `json:"validos"` // nomes
	Erros   []string `json:"erros"`
}

// ResultadoImportacaoResponse resultado da gravação linha a linha.
type ResultadoImportacaoResponse struct {
	Importados int      `json:"importados"`
	ComErro    int      `json:"com_erro"`
	Erros      []string `json:"erros"`
}
