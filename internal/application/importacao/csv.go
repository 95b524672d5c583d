// Package importacao implementa a importação em massa de pedidos e
// vendedores via CSV. O parse nunca aborta no meio: cada linha vira um
// registro válido ou uma mensagem de erro posicional, e o chamador decide
// o que fazer com o resto.
package importacao

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/pkg/brformat"
	"github.com/jhoicas/controle-pedidos-api/pkg/textenc"
)

// Cabeçalhos esperados nos templates. Colunas extras são ignoradas e a
// ordem não importa: o parse é por nome de coluna, não por posição.
var (
	colunasPedidos    = []string{"nr_pedido", "cliente", "medico", "vendedor", "data", "produto", "qtd", "total", "rastreio", "status"}
	colunasVendedores = []string{"nome"}
)

// sniffDelimiter escolhe o delimitador pela primeira linha: planilhas
// brasileiras exportadas do Excel usam ';', as demais ','.
func sniffDelimiter(primeiraLinha string) rune {
	if strings.ContainsRune(primeiraLinha, ';') {
		return ';'
	}
	return ','
}

// normalizarCabecalho minúsculas + trim + remoção de aspas residuais.
func normalizarCabecalho(h string) string {
	h = strings.TrimSpace(strings.ToLower(h))
	return strings.Trim(h, `"`)
}

// lerRegistros decodifica o arquivo para UTF-8, descobre o delimitador e
// devolve o mapa coluna→índice junto com as linhas de dados.
func lerRegistros(r io.Reader) (map[string]int, [][]string, error) {
	utf8r, err := textenc.NewUTF8Reader(r)
	if err != nil {
		return nil, nil, err
	}

	conteudo, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, nil, err
	}
	texto := strings.ReplaceAll(string(conteudo), "\r\n", "\n")
	texto = strings.TrimSpace(texto)
	if texto == "" {
		return nil, nil, fmt.Errorf("arquivo vazio")
	}

	primeiraLinha, _, _ := strings.Cut(texto, "\n")

	reader := csv.NewReader(strings.NewReader(texto))
	reader.Comma = sniffDelimiter(primeiraLinha)
	reader.FieldsPerRecord = -1 // linhas curtas não derrubam a importação
	reader.LazyQuotes = true

	registros, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("csv malformado: %w", err)
	}
	if len(registros) == 0 {
		return nil, nil, fmt.Errorf("arquivo vazio")
	}

	indice := make(map[string]int, len(registros[0]))
	for i, h := range registros[0] {
		indice[normalizarCabecalho(h)] = i
	}
	return indice, registros[1:], nil
}

func campo(indice map[string]int, linha []string, nome string) string {
	i, ok := indice[nome]
	if !ok || i >= len(linha) {
		return ""
	}
	return strings.TrimSpace(linha[i])
}

// ParsePedidosCSV valida o CSV de pedidos linha a linha. A numeração das
// mensagens de erro conta o cabeçalho como linha 1, então a primeira linha
// de dados é a "Linha 2", igual à visão da planilha no Excel.
func ParsePedidosCSV(r io.Reader) (*dto.PreviewImportacaoResponse, error) {
	indice, linhas, err := lerRegistros(r)
	if err != nil {
		return nil, err
	}

	out := &dto.PreviewImportacaoResponse{Validos: []dto.PedidoImportado{}, Erros: []string{}}
	vistos := map[string]bool{} // nr_pedido em maiúsculas; primeiro vence

	for n, linha := range linhas {
		numLinha := n + 2

		nr := strings.ToUpper(campo(indice, linha, "nr_pedido"))
		cliente := campo(indice, linha, "cliente")
		produto := campo(indice, linha, "produto")

		if nr == "" {
			out.Erros = append(out.Erros, fmt.Sprintf("Linha %d: nr_pedido é obrigatório", numLinha))
			continue
		}
		if cliente == "" {
			out.Erros = append(out.Erros, fmt.Sprintf("Linha %d: cliente é obrigatório", numLinha))
			continue
		}
		if produto == "" {
			out.Erros = append(out.Erros, fmt.Sprintf("Linha %d: produto é obrigatório", numLinha))
			continue
		}
		if vistos[nr] {
			out.Erros = append(out.Erros, fmt.Sprintf("Linha %d: nr_pedido %s duplicado no arquivo", numLinha, nr))
			continue
		}
		vistos[nr] = true

		qtd := 1
		if s := campo(indice, linha, "qtd"); s != "" {
			if v, err := strconv.Atoi(s); err == nil && v > 0 {
				qtd = v
			}
		}

		status := campo(indice, linha, "status")
		if !entity.IsPedidoStatus(status) {
			status = entity.StatusEmSeparacao
		}

		// Produtos multi-linha chegam com "\n" literal para caber numa
		// célula só; aqui vira quebra de linha de verdade.
		produto = strings.ReplaceAll(produto, `\n`, "\n")

		out.Validos = append(out.Validos, dto.PedidoImportado{
			NrPedido: nr,
			Cliente:  cliente,
			Medico:   campo(indice, linha, "medico"),
			Vendedor: campo(indice, linha, "vendedor"),
			Data:     brformat.NormalizeDate(campo(indice, linha, "data")),
			Produto:  produto,
			Qtd:      qtd,
			Total:    brformat.ParseCurrency(campo(indice, linha, "total")).StringFixed(2),
			Rastreio: campo(indice, linha, "rastreio"),
			Status:   status,
		})
	}
	return out, nil
}

// ParseVendedoresCSV valida o CSV de vendedores (uma coluna: nome).
func ParseVendedoresCSV(r io.Reader) (*dto.PreviewVendedoresResponse, error) {
	indice, linhas, err := lerRegistros(r)
	if err != nil {
		return nil, err
	}

	out := &dto.PreviewVendedoresResponse{Validos: []string{}, Erros: []string{}}
	vistos := map[string]bool{}

	for n, linha := range linhas {
		numLinha := n + 2
		nome := campo(indice, linha, "nome")
		if nome == "" {
			out.Erros = append(out.Erros, fmt.Sprintf("Linha %d: nome é obrigatório", numLinha))
			continue
		}
		chave := strings.ToLower(nome)
		if vistos[chave] {
			out.Erros = append(out.Erros, fmt.Sprintf("Linha %d: nome %s duplicado no arquivo", numLinha, nome))
			continue
		}
		vistos[chave] = true
		out.Validos = append(out.Validos, nome)
	}
	return out, nil
}

// TemplatePedidosCSV devolve o modelo de importação de pedidos com BOM
// UTF-8, para o Excel abrir acentos corretamente.
func TemplatePedidosCSV() []byte {
	var b strings.Builder
	b.WriteString("\xEF\xBB\xBF")
	b.WriteString(strings.Join(colunasPedidos, ";"))
	b.WriteString("\n")
	b.WriteString(`PED-001;Farmácia Exemplo;Dr. Silva;Maria;15/01/2025;Óleo CBD 3000mg\nGummy 900mg;2;1.550,20;BR123456789;Em Separação`)
	b.WriteString("\n")
	return []byte(b.String())
}

// TemplateVendedoresCSV devolve o modelo de importação de vendedores.
func TemplateVendedoresCSV() []byte {
	var b strings.Builder
	b.WriteString("\xEF\xBB\xBF")
	b.WriteString(strings.Join(colunasVendedores, ";"))
	b.WriteString("\n")
	b.WriteString("Maria Souza\n")
	return []byte(b.String())
}
