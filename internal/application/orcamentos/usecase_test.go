package orcamentos_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/application/orcamentos"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/pkg/brformat"
	"github.com/jhoicas/controle-pedidos-api/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrcamentoRepo struct {
	porID map[string]*entity.Orcamento
}

func newFakeOrcamentoRepo() *fakeOrcamentoRepo {
	return &fakeOrcamentoRepo{porID: map[string]*entity.Orcamento{}}
}

func (r *fakeOrcamentoRepo) Create(o *entity.Orcamento) error {
	cp := *o
	r.porID[o.ID] = &cp
	return nil
}

func (r *fakeOrcamentoRepo) GetByID(id string) (*entity.Orcamento, error) {
	o, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrcamentoRepo) List() ([]*entity.Orcamento, error) {
	var out []*entity.Orcamento
	for _, o := range r.porID {
		cp := *o
		cp.Itens = nil
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeOrcamentoRepo) Update(o *entity.Orcamento) error {
	cp := *o
	r.porID[o.ID] = &cp
	return nil
}

func (r *fakeOrcamentoRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

func (r *fakeOrcamentoRepo) CountByMesAno(mes, ano int) (int, error) {
	return len(r.porID), nil
}

type fakeClienteRepo struct {
	porID map[string]*entity.Cliente
}

func (r *fakeClienteRepo) Create(c *entity.Cliente) error { r.porID[c.ID] = c; return nil }
func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	c, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeClienteRepo) List() ([]*entity.Cliente, error) { return nil, nil }
func (r *fakeClienteRepo) Update(c *entity.Cliente) error   { return nil }
func (r *fakeClienteRepo) Delete(id string) error           { return nil }

type fakeGeradorPDF struct {
	ultimoLogo string
}

func (g *fakeGeradorPDF) Gerar(o *entity.Orcamento, logoBase64 string) ([]byte, error) {
	g.ultimoLogo = logoBase64
	return []byte("%PDF-fake " + o.Numero), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const clienteID = "cliente-0001"

var empresaPadrao = config.EmpresaConfig{
	Nome:     "Carmens Medicinals",
	Endereco: "1241 Stirling rd UNIT 101",
	Cidade:   "Dania Beach, Florida - USA, 33004",
}

func novoUseCase() (*orcamentos.UseCase, *fakeOrcamentoRepo, *fakeGeradorPDF) {
	repo := newFakeOrcamentoRepo()
	clientes := &fakeClienteRepo{porID: map[string]*entity.Cliente{
		clienteID: {ID: clienteID, RazaoSocial: "Farmácia Central Ltda"},
	}}
	pdf := &fakeGeradorPDF{}
	return orcamentos.NewUseCase(repo, clientes, pdf, empresaPadrao), repo, pdf
}

func requestValido() dto.SaveOrcamentoRequest {
	return dto.SaveOrcamentoRequest{
		Data:      "2025-03-10",
		ClienteID: clienteID,
		Itens: []dto.OrcamentoItemRequest{
			{Descricao: "Óleo CBD 3000mg", Qtd: 2, PrecoUnitario: "1.550,20"},
			{Descricao: "Gummy 900mg", Qtd: 1, PrecoUnitario: "350,00"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NumeroSequencialMensal(t *testing.T) {
	uc, _, _ := novoUseCase()

	primeiro, err := uc.Create("u1", requestValido())
	require.NoError(t, err)
	segundo, err := uc.Create("u1", requestValido())
	require.NoError(t, err)

	_, mes, ano := brformat.PeriodoAtual()
	assert.Equal(t, fmt.Sprintf("ORC%04d%02d001", ano, mes), primeiro.Numero)
	assert.Equal(t, fmt.Sprintf("ORC%04d%02d002", ano, mes), segundo.Numero)
}

func TestCreate_TotaisRecalculados(t *testing.T) {
	uc, _, _ := novoUseCase()

	resp, err := uc.Create("u1", requestValido())
	require.NoError(t, err)

	// 2 × 1550.20 + 1 × 350.00 = 3450.40
	assert.Equal(t, "3450.40", resp.ValorTotal)
	require.Len(t, resp.Itens, 2)
	assert.Equal(t, "3100.40", resp.Itens[0].PrecoTotal)
	assert.Equal(t, "350.00", resp.Itens[1].PrecoTotal)
}

func TestCreate_DefaultsDaEmpresaEDoStatus(t *testing.T) {
	uc, _, _ := novoUseCase()

	resp, err := uc.Create("u1", requestValido())
	require.NoError(t, err)

	assert.Equal(t, empresaPadrao.Nome, resp.EmpresaNome)
	assert.Equal(t, empresaPadrao.Endereco, resp.EmpresaEndereco)
	assert.Equal(t, entity.OrcamentoRascunho, resp.Status)
	assert.Equal(t, "Farmácia Central Ltda", resp.ClienteNome,
		"o nome do cliente é resolvido e congelado no orçamento")
}

func TestCreate_ClienteInexistente(t *testing.T) {
	uc, _, _ := novoUseCase()

	in := requestValido()
	in.ClienteID = "fantasma"
	_, err := uc.Create("u1", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_SemItens(t *testing.T) {
	uc, _, _ := novoUseCase()

	in := requestValido()
	in.Itens = nil
	_, err := uc.Create("u1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ItemComQtdZero(t *testing.T) {
	uc, _, _ := novoUseCase()

	in := requestValido()
	in.Itens[0].Qtd = 0
	_, err := uc.Create("u1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_StatusInvalido(t *testing.T) {
	uc, _, _ := novoUseCase()

	in := requestValido()
	in.Status = "Pago"
	_, err := uc.Create("u1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_NumeroImutavel(t *testing.T) {
	uc, _, _ := novoUseCase()

	criado, err := uc.Create("u1", requestValido())
	require.NoError(t, err)

	in := requestValido()
	in.Numero = "ORC9999" // tentativa de troca
	atualizado, err := uc.Update(criado.ID, in)
	require.NoError(t, err)

	assert.Equal(t, criado.Numero, atualizado.Numero, "o número nunca muda depois de criado")
}

func TestUpdate_Inexistente(t *testing.T) {
	uc, _, _ := novoUseCase()

	_, err := uc.Update("fantasma", requestValido())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestGerarPDF_NomeDoArquivo(t *testing.T) {
	uc, _, pdf := novoUseCase()

	criado, err := uc.Create("u1", requestValido())
	require.NoError(t, err)

	conteudo, nome, err := uc.GerarPDF(criado.ID, dto.GerarPDFRequest{LogoBase64: "data:image/png;base64,xyz"})
	require.NoError(t, err)
	assert.Equal(t, "orcamento-"+criado.Numero+".pdf", nome)
	assert.NotEmpty(t, conteudo)
	assert.Equal(t, "data:image/png;base64,xyz", pdf.ultimoLogo, "o logo é repassado ao gerador")
}

func TestGerarPDF_Inexistente(t *testing.T) {
	uc, _, _ := novoUseCase()

	_, _, err := uc.GerarPDF("fantasma", dto.GerarPDFRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
