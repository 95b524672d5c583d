package importacao_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-pedidos-api/internal/application/importacao"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/pkg/brformat"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParsePedidosCSV
// ──────────────────────────────────────────────────────────────────────────────

const csvPedidosValido = `nr_pedido;cliente;medico;vendedor;data;produto;qtd;total;rastreio;status
A100;Farmácia Central;Dr. Souza;Maria;15/01/2025;Óleo CBD 3000mg;2;1.550,20;BR123;Em Trânsito
B200;Drogaria Sul;;;;Gummy 900mg;;;;
`

func TestParsePedidosCSV_LinhasValidas(t *testing.T) {
	out, err := importacao.ParsePedidosCSV(strings.NewReader(csvPedidosValido))
	require.NoError(t, err)
	require.Len(t, out.Validos, 2)
	assert.Empty(t, out.Erros)

	primeiro := out.Validos[0]
	assert.Equal(t, "A100", primeiro.NrPedido)
	assert.Equal(t, "Farmácia Central", primeiro.Cliente)
	assert.Equal(t, "2025-01-15", primeiro.Data, "a data DD/MM/YYYY deve virar ISO")
	assert.Equal(t, 2, primeiro.Qtd)
	assert.Equal(t, "1550.20", primeiro.Total, "o total brasileiro deve virar decimal")
	assert.Equal(t, "Em Trânsito", primeiro.Status)

	segundo := out.Validos[1]
	assert.Equal(t, 1, segundo.Qtd, "qtd vazia cai no padrão 1")
	assert.Equal(t, entity.StatusEmSeparacao, segundo.Status, "status vazio cai em Em Separação")
	assert.Equal(t, brformat.Today(), segundo.Data, "data vazia cai no hoje")
}

func TestParsePedidosCSV_ErrosPosicionais(t *testing.T) {
	csv := "nr_pedido,cliente,produto\n" +
		",Farmácia,Óleo\n" + // sem nr_pedido
		"A100,,Óleo\n" + // sem cliente
		"B200,Farmácia,\n" // sem produto
	out, err := importacao.ParsePedidosCSV(strings.NewReader(csv))
	require.NoError(t, err, "linha ruim não aborta o parse")

	assert.Empty(t, out.Validos)
	require.Len(t, out.Erros, 3)
	assert.Equal(t, "Linha 2: nr_pedido é obrigatório", out.Erros[0])
	assert.Equal(t, "Linha 3: cliente é obrigatório", out.Erros[1])
	assert.Equal(t, "Linha 4: produto é obrigatório", out.Erros[2])
}

// Duplicata dentro do arquivo: a primeira ocorrência vence, inclusive com
// caixa diferente: o número é normalizado para maiúsculas.
func TestParsePedidosCSV_DuplicataNoArquivo_PrimeiraVence(t *testing.T) {
	csv := "nr_pedido,cliente,produto\n" +
		"a100,Farmácia Um,Óleo\n" +
		"A100,Farmácia Dois,Gummy\n"
	out, err := importacao.ParsePedidosCSV(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, out.Validos, 1)
	assert.Equal(t, "A100", out.Validos[0].NrPedido)
	assert.Equal(t, "Farmácia Um", out.Validos[0].Cliente)
	require.Len(t, out.Erros, 1)
	assert.Contains(t, out.Erros[0], "duplicado no arquivo")
}

func TestParsePedidosCSV_DelimitadorVirgula(t *testing.T) {
	csv := "nr_pedido,cliente,produto\nA100,Farmácia,Óleo\n"
	out, err := importacao.ParsePedidosCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, out.Validos, 1)
}

// O template exporta produtos multi-linha com "\n" literal; o parse devolve
// a quebra de linha real.
func TestParsePedidosCSV_ProdutoMultiLinha(t *testing.T) {
	csv := `nr_pedido;cliente;produto` + "\n" +
		`A100;Farmácia;Óleo CBD 3000mg\nGummy 900mg` + "\n"
	out, err := importacao.ParsePedidosCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, out.Validos, 1)
	assert.Equal(t, "Óleo CBD 3000mg\nGummy 900mg", out.Validos[0].Produto)
}

func TestParsePedidosCSV_StatusDesconhecido_CaiNoInicial(t *testing.T) {
	csv := "nr_pedido,cliente,produto,status\nA100,Farmácia,Óleo,Entregue\n"
	out, err := importacao.ParsePedidosCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, out.Validos, 1)
	assert.Equal(t, entity.StatusEmSeparacao, out.Validos[0].Status)
}

func TestParsePedidosCSV_ArquivoVazio(t *testing.T) {
	_, err := importacao.ParsePedidosCSV(strings.NewReader(""))
	assert.Error(t, err)
}

// O template gerado deve ser reimportável sem erros (com BOM e tudo).
func TestTemplatePedidosCSV_RoundTrip(t *testing.T) {
	tpl := importacao.TemplatePedidosCSV()
	assert.True(t, bytes.HasPrefix(tpl, []byte("\xEF\xBB\xBF")), "template leva BOM UTF-8 para o Excel")

	out, err := importacao.ParsePedidosCSV(bytes.NewReader(tpl))
	require.NoError(t, err)
	assert.NotEmpty(t, out.Validos)
	assert.Empty(t, out.Erros)
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseVendedoresCSV
// ──────────────────────────────────────────────────────────────────────────────

func TestParseVendedoresCSV_Valido(t *testing.T) {
	csv := "nome\nMaria Souza\nJoão Pedro\n"
	out, err := importacao.ParseVendedoresCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []string{"Maria Souza", "João Pedro"}, out.Validos)
	assert.Empty(t, out.Erros)
}

func TestParseVendedoresCSV_DuplicataCaseInsensitive(t *testing.T) {
	csv := "nome\nMaria Souza\nmaria souza\n"
	out, err := importacao.ParseVendedoresCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []string{"Maria Souza"}, out.Validos)
	require.Len(t, out.Erros, 1)
	assert.Contains(t, out.Erros[0], "Linha 3")
}

func TestParseVendedoresCSV_NomeVazio(t *testing.T) {
	csv := "nome\n \nJoão\n" // linha só com espaço: nome em branco
	out, err := importacao.ParseVendedoresCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, []string{"João"}, out.Validos)
	require.Len(t, out.Erros, 1)
	assert.Equal(t, "Linha 2: nome é obrigatório", out.Erros[0])
}

func TestTemplateVendedoresCSV_RoundTrip(t *testing.T) {
	out, err := importacao.ParseVendedoresCSV(bytes.NewReader(importacao.TemplateVendedoresCSV()))
	require.NoError(t, err)
	assert.Equal(t, []string{"Maria Souza"}, out.Validos)
}
