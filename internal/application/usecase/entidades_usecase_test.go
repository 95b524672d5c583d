package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/application/usecase"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/pkg/brformat"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakePeriodoRepo struct {
	porID map[string]*entity.Periodo
}

func (r *fakePeriodoRepo) Create(p *entity.Periodo) error {
	for _, e := range r.porID {
		if e.Mes == p.Mes && e.Ano == p.Ano {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.porID[p.ID] = &cp
	return nil
}

func (r *fakePeriodoRepo) GetByID(id string) (*entity.Periodo, error) {
	p, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePeriodoRepo) List() ([]*entity.Periodo, error) {
	var out []*entity.Periodo
	for _, p := range r.porID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeVendedorRepo struct {
	porID map[string]*entity.Vendedor
}

func (r *fakeVendedorRepo) Create(v *entity.Vendedor) error {
	cp := *v
	r.porID[v.ID] = &cp
	return nil
}

func (r *fakeVendedorRepo) GetByID(id string) (*entity.Vendedor, error) {
	v, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (r *fakeVendedorRepo) FindByNome(nome string) (*entity.Vendedor, error) {
	for _, v := range r.porID {
		if strings.EqualFold(v.Nome, nome) {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeVendedorRepo) Search(termo string, limit int) ([]*entity.Vendedor, error) {
	var out []*entity.Vendedor
	for _, v := range r.porID {
		if v.Ativo && strings.Contains(strings.ToLower(v.Nome), strings.ToLower(termo)) {
			cp := *v
			out = append(out, &cp)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *fakeVendedorRepo) List() ([]*entity.Vendedor, error) {
	var out []*entity.Vendedor
	for _, v := range r.porID {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeVendedorRepo) Update(v *entity.Vendedor) error {
	cp := *v
	r.porID[v.ID] = &cp
	return nil
}

func (r *fakeVendedorRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

type fakeJudicRepo struct {
	porID map[string]*entity.Judicializacao
}

func (r *fakeJudicRepo) Create(j *entity.Judicializacao) error {
	cp := *j
	r.porID[j.ID] = &cp
	return nil
}

func (r *fakeJudicRepo) GetByID(id string) (*entity.Judicializacao, error) {
	j, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJudicRepo) ListByPeriodo(periodoID string) ([]*entity.Judicializacao, error) {
	var out []*entity.Judicializacao
	for _, j := range r.porID {
		if j.PeriodoID == periodoID {
			cp := *j
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeJudicRepo) Update(j *entity.Judicializacao) error {
	cp := *j
	r.porID[j.ID] = &cp
	return nil
}

func (r *fakeJudicRepo) UpdateField(id, campo string, valor any) error {
	j, ok := r.porID[id]
	if ok && campo == "status" {
		j.Status = valor.(string)
	}
	return nil
}

func (r *fakeJudicRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

type fakeEnvioRepo struct {
	porID map[string]*entity.ControleEnvio
}

func (r *fakeEnvioRepo) Create(e *entity.ControleEnvio) error {
	cp := *e
	r.porID[e.ID] = &cp
	return nil
}

func (r *fakeEnvioRepo) GetByID(id string) (*entity.ControleEnvio, error) {
	e, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEnvioRepo) ListByPeriodo(periodoID string) ([]*entity.ControleEnvio, error) {
	var out []*entity.ControleEnvio
	for _, e := range r.porID {
		if e.PeriodoID == periodoID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeEnvioRepo) Update(e *entity.ControleEnvio) error {
	cp := *e
	r.porID[e.ID] = &cp
	return nil
}

func (r *fakeEnvioRepo) UpdateField(id, campo string, valor any) error {
	e, ok := r.porID[id]
	if ok && campo == "status" {
		e.Status = valor.(string)
	}
	return nil
}

func (r *fakeEnvioRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Períodos
// ──────────────────────────────────────────────────────────────────────────────

func TestPeriodoCreate_NomeVazioRecebePadrao(t *testing.T) {
	uc := usecase.NewPeriodoUseCase(&fakePeriodoRepo{porID: map[string]*entity.Periodo{}})

	resp, err := uc.Create(dto.CreatePeriodoRequest{Nome: "  "})
	require.NoError(t, err)

	nomePadrao, mes, ano := brformat.PeriodoAtual()
	assert.Equal(t, nomePadrao, resp.Nome)
	assert.Equal(t, mes, resp.Mes, "o mês é sempre o corrente, não escolhido")
	assert.Equal(t, ano, resp.Ano)
}

func TestPeriodoCreate_MesCorrenteDuplicado(t *testing.T) {
	uc := usecase.NewPeriodoUseCase(&fakePeriodoRepo{porID: map[string]*entity.Periodo{}})

	_, err := uc.Create(dto.CreatePeriodoRequest{})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreatePeriodoRequest{Nome: "Outro nome"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "só existe um período por mês")
}

func TestPeriodoGarantirAtual_Idempotente(t *testing.T) {
	repo := &fakePeriodoRepo{porID: map[string]*entity.Periodo{}}
	uc := usecase.NewPeriodoUseCase(repo)

	primeiro, err := uc.GarantirAtual()
	require.NoError(t, err)
	segundo, err := uc.GarantirAtual()
	require.NoError(t, err)

	assert.Equal(t, primeiro.ID, segundo.ID, "a segunda chamada reaproveita o período existente")
	assert.Len(t, repo.porID, 1)
}

func TestPeriodoGet_Inexistente(t *testing.T) {
	uc := usecase.NewPeriodoUseCase(&fakePeriodoRepo{porID: map[string]*entity.Periodo{}})

	_, err := uc.Get("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vendedores
// ──────────────────────────────────────────────────────────────────────────────

func novoVendedorUC() (*usecase.VendedorUseCase, *fakeVendedorRepo) {
	repo := &fakeVendedorRepo{porID: map[string]*entity.Vendedor{}}
	return usecase.NewVendedorUseCase(repo), repo
}

func TestVendedorCreate_NormalizaEValida(t *testing.T) {
	uc, _ := novoVendedorUC()

	resp, err := uc.Create("  Maria Souza  ")
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", resp.Nome)
	assert.True(t, resp.Ativo)

	_, err = uc.Create("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestVendedorCreate_DuplicadoCaseInsensitive(t *testing.T) {
	uc, _ := novoVendedorUC()

	_, err := uc.Create("Maria Souza")
	require.NoError(t, err)

	_, err = uc.Create("MARIA SOUZA")
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestVendedorToggleAtivo_SomeDoAutocomplete(t *testing.T) {
	uc, _ := novoVendedorUC()

	criado, err := uc.Create("Maria Souza")
	require.NoError(t, err)

	resp, err := uc.ToggleAtivo(criado.ID)
	require.NoError(t, err)
	assert.False(t, resp.Ativo)

	achados, err := uc.Search("maria", 10)
	require.NoError(t, err)
	assert.Empty(t, achados, "vendedor inativo não aparece na busca")
}

func TestVendedorSearch_LimiteForaDaFaixa(t *testing.T) {
	uc, repo := novoVendedorUC()
	for i := 0; i < 15; i++ {
		_, err := uc.Create("Vendedor " + string(rune('A'+i)))
		require.NoError(t, err)
	}
	require.Len(t, repo.porID, 15)

	achados, err := uc.Search("vendedor", 0)
	require.NoError(t, err)
	assert.Len(t, achados, 10, "limite inválido cai no padrão de 10")
}

func TestVendedorDelete_Inexistente(t *testing.T) {
	uc, _ := novoVendedorUC()

	err := uc.Delete("fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Judicializações
// ──────────────────────────────────────────────────────────────────────────────

func novoJudicUC() *usecase.JudicializacaoUseCase {
	return usecase.NewJudicializacaoUseCase(&fakeJudicRepo{porID: map[string]*entity.Judicializacao{}})
}

func judicValida() dto.JudicializacaoRequest {
	return dto.JudicializacaoRequest{
		PeriodoID:  "periodo-1",
		NrProcesso: "0001234-56.2025.8.26.0100",
		Cliente:    "Paciente Judicial",
		Advogado:   "Dra. Lima",
		Produto:    "Óleo CBD 6000mg",
		Total:      "2.300,00",
		Data:       "10/03/2025",
	}
}

func TestJudicCreate_Padroes(t *testing.T) {
	uc := novoJudicUC()

	resp, err := uc.Create("u1", judicValida())
	require.NoError(t, err)

	assert.Equal(t, entity.JudicOrcado, resp.Status, "status vazio começa em Orçado")
	assert.Equal(t, 1, resp.Qtd, "qtd ausente cai em 1")
	assert.Equal(t, "2300.00", resp.Total)
	assert.Equal(t, "2025-03-10", resp.Data, "data brasileira é normalizada para ISO")
}

func TestJudicCreate_Invalida(t *testing.T) {
	uc := novoJudicUC()

	semCliente := judicValida()
	semCliente.Cliente = " "
	_, err := uc.Create("u1", semCliente)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	statusRuim := judicValida()
	statusRuim.Status = "Arquivado"
	_, err = uc.Create("u1", statusRuim)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestJudicUpdate_PreservaCriacao(t *testing.T) {
	uc := novoJudicUC()

	criada, err := uc.Create("u1", judicValida())
	require.NoError(t, err)

	in := judicValida()
	in.Status = entity.JudicEmbarcado
	atualizada, err := uc.Update(criada.ID, in)
	require.NoError(t, err)

	assert.Equal(t, entity.JudicEmbarcado, atualizada.Status)
	assert.Equal(t, criada.CriadoEm, atualizada.CriadoEm, "a data de criação não muda no update")
}

func TestJudicUpdateStatus(t *testing.T) {
	uc := novoJudicUC()

	criada, err := uc.Create("u1", judicValida())
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(criada.ID, entity.JudicEntregue))
	assert.ErrorIs(t, uc.UpdateStatus(criada.ID, "Perdido"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.UpdateStatus("fantasma", entity.JudicEntregue), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Envios de cortesia
// ──────────────────────────────────────────────────────────────────────────────

func novoEnvioUC() *usecase.ControleEnvioUseCase {
	return usecase.NewControleEnvioUseCase(&fakeEnvioRepo{porID: map[string]*entity.ControleEnvio{}})
}

func TestEnvioCreate_Padroes(t *testing.T) {
	uc := novoEnvioUC()

	resp, err := uc.Create("u1", dto.ControleEnvioRequest{
		PeriodoID: "periodo-1",
		Nome:      "  Influencer Parceira  ",
		Produto:   "Gummy 900mg",
	})
	require.NoError(t, err)

	assert.Equal(t, "Influencer Parceira", resp.Nome)
	assert.Equal(t, entity.EnvioPendente, resp.Status)
	assert.Equal(t, 1, resp.Qtd)
}

func TestEnvioCreate_SemNome(t *testing.T) {
	uc := novoEnvioUC()

	_, err := uc.Create("u1", dto.ControleEnvioRequest{PeriodoID: "periodo-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEnvioUpdateStatus_EListagemPorPeriodo(t *testing.T) {
	uc := novoEnvioUC()

	criado, err := uc.Create("u1", dto.ControleEnvioRequest{PeriodoID: "periodo-1", Nome: "Parceira"})
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(criado.ID, entity.EnvioEnviado))
	assert.ErrorIs(t, uc.UpdateStatus(criado.ID, "Extraviado"), domain.ErrInvalidInput)

	lista, err := uc.ListByPeriodo("periodo-1")
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, entity.EnvioEnviado, lista[0].Status)

	vazia, err := uc.ListByPeriodo("outro-periodo")
	require.NoError(t, err)
	assert.Empty(t, vazia)
}
