package pdf_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/internal/infrastructure/pdf"
)

// PNG 1×1 válido, para o caminho com logo.
const logoPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func orcamentoCompleto() *entity.Orcamento {
	o := &entity.Orcamento{
		ID:              "orc-0001",
		Numero:          "ORC202503001",
		Data:            "2025-03-10",
		ClienteNome:     "Farmácia Central Ltda",
		EmpresaNome:     "Carmens Medicinals",
		EmpresaEndereco: "1241 Stirling rd UNIT 101",
		EmpresaCidade:   "Dania Beach, Florida - USA, 33004",
		Observacoes:     "Entrega em até 30 dias.\nFrete por conta do cliente.",
		Status:          entity.OrcamentoRascunho,
		Itens: []entity.OrcamentoItem{
			{ID: "i1", Descricao: "Óleo CBD 3000mg", Qtd: 2, PrecoUnitario: decimal.RequireFromString("1550.20")},
			{ID: "i2", Descricao: "Gummy 900mg", Qtd: 1, PrecoUnitario: decimal.RequireFromString("350.00")},
		},
	}
	o.ValorTotal = o.CalcularTotal()
	return o
}

// O documento sai completo, do cabeçalho ao carimbo de geração do rodapé.
func TestGerar_DocumentoCompleto(t *testing.T) {
	g := pdf.NewMarotoOrcamentoGenerator()

	conteudo, err := g.Gerar(orcamentoCompleto(), "")
	require.NoError(t, err)

	require.NotEmpty(t, conteudo)
	assert.True(t, strings.HasPrefix(string(conteudo), "%PDF"),
		"a saída deve ser um PDF válido")
}

func TestGerar_ComLogo(t *testing.T) {
	g := pdf.NewMarotoOrcamentoGenerator()

	conteudo, err := g.Gerar(orcamentoCompleto(), logoPNG)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(conteudo), "%PDF"))
}

// Logo com base64 quebrado é ignorado: o PDF sai sem imagem, sem erro.
func TestGerar_LogoInvalidoIgnorado(t *testing.T) {
	g := pdf.NewMarotoOrcamentoGenerator()

	conteudo, err := g.Gerar(orcamentoCompleto(), "data:image/png;base64,###")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(conteudo), "%PDF"))
}

func TestGerar_SemObservacoes(t *testing.T) {
	g := pdf.NewMarotoOrcamentoGenerator()

	o := orcamentoCompleto()
	o.Observacoes = ""
	conteudo, err := g.Gerar(o, "")
	require.NoError(t, err)
	assert.NotEmpty(t, conteudo)
}
