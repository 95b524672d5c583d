// Package pdf implementa a geração do Commercial Invoice de orçamentos.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Logo (opcional) + Empresa  │  N° Orçamento + Data  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: cliente                                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Descrição | Preço Unit. | Total               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL GERAL                                                 │
//	│  OBSERVAÇÕES                                                 │
//	│  RODAPÉ: carimbo de geração                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/controle-pedidos-api/internal/application/orcamentos"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/pkg/brformat"
)

var _ orcamentos.GeradorPDF = (*MarotoOrcamentoGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoOrcamentoGenerator implementa orcamentos.GeradorPDF usando Maroto v2.
type MarotoOrcamentoGenerator struct{}

// NewMarotoOrcamentoGenerator constrói o gerador.
func NewMarotoOrcamentoGenerator() *MarotoOrcamentoGenerator { return &MarotoOrcamentoGenerator{} }

// Gerar gera o PDF do orçamento e devolve seus bytes.
func (g *MarotoOrcamentoGenerator) Gerar(o *entity.Orcamento, logoBase64 string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Commercial Invoice "+o.Numero, true).
		WithAuthor(o.EmpresaNome, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(o, logoBase64))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(o))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(o.Itens) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(o))

	if o.Observacoes != "" {
		m.AddRows(observacoesRows(o.Observacoes)...)
	}

	m.AddRows(rodapeRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: logo + empresa (esq) e número + data (dir).
func headerRow(o *entity.Orcamento, logoBase64 string) core.Row {
	empresaCol := col.New(7)
	top := 1.0
	if img, ext, ok := decodeLogo(logoBase64); ok {
		empresaCol.Add(image.NewFromBytes(img, ext, props.Rect{Percent: 40}))
		top = 16
	}
	contato := fmt.Sprintf("Tel: %s   |   Email: %s",
		nonEmpty(o.EmpresaTelefone, "—"), nonEmpty(o.EmpresaEmail, "—"))
	empresaCol.Add(
		text.New(o.EmpresaNome, props.Text{
			Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: top,
		}),
		text.New(o.EmpresaEndereco, props.Text{Size: 8, Top: top + 7, Color: colorGray}),
		text.New(o.EmpresaCidade, props.Text{Size: 8, Top: top + 11, Color: colorGray}),
		text.New(contato, props.Text{Size: 8, Top: top + 15, Color: colorGray}),
	)

	return row.New(34).Add(
		empresaCol,
		col.New(5).Add(
			text.New("COMMERCIAL INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(o.Numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 8,
			}),
			text.New("Data: "+brformat.FormatDateBR(o.Data), props.Text{
				Size: 8, Align: align.Right, Top: 15, Color: colorGray,
			}),
		),
	)
}

// clienteRow: bloco do destinatário.
func clienteRow(o *entity.Orcamento) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(o.ClienteNome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd", 1, align.Center),
		h("Descrição", 6, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: uma linha por item do orçamento.
func tableItemRows(itens []entity.OrcamentoItem) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, item := range itens {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", item.Qtd),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				item.Descricao,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+brformat.FormatCurrency(item.PrecoUnitario),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+brformat.FormatCurrency(item.PrecoTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total geral alinhado à direita.
func totalRow(o *entity.Orcamento) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("R$ "+brformat.FormatCurrency(o.ValorTotal), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// observacoesRows: bloco de observações, uma linha por quebra.
func observacoesRows(obs string) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("OBSERVAÇÕES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 3,
			}),
		)),
	}
	for _, linha := range strings.Split(obs, "\n") {
		rows = append(rows, row.New(4).Add(col.New(12).Add(
			text.New(linha, props.Text{Size: 8, Color: colorGray, Top: 0.5, Left: 1}),
		)))
	}
	return rows
}

// rodapeRows: régua de fechamento + carimbo de geração em São Paulo.
func rodapeRows() []core.Row {
	gerado := time.Now().In(brformat.SaoPaulo()).Format("02/01/2006 15:04")
	return []core.Row{
		line.NewRow(4, props.Line{Color: colorGray, Thickness: 0.3}),
		row.New(5).Add(col.New(12).Add(
			text.New("Documento gerado em "+gerado, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			}),
		)),
	}
}

// decodeLogo decodifica um data URI base64 (png ou jpeg). Logo inválido é
// simplesmente ignorado: o PDF sai sem imagem.
func decodeLogo(dataURI string) ([]byte, extension.Type, bool) {
	if dataURI == "" {
		return nil, "", false
	}
	ext := extension.Png
	payload := dataURI
	if strings.HasPrefix(dataURI, "data:") {
		meta, rest, ok := strings.Cut(dataURI, ",")
		if !ok {
			return nil, "", false
		}
		payload = rest
		if strings.Contains(meta, "jpeg") || strings.Contains(meta, "jpg") {
			ext = extension.Jpg
		}
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", false
	}
	return raw, ext, true
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
