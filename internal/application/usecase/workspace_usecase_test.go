package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/application/usecase"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakePostItRepo struct {
	porID map[string]*entity.PostIt
}

func (r *fakePostItRepo) Create(p *entity.PostIt) error {
	cp := *p
	r.porID[p.ID] = &cp
	return nil
}

func (r *fakePostItRepo) GetByID(id string) (*entity.PostIt, error) {
	p, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePostItRepo) ListByUsuario(usuarioID string) ([]*entity.PostIt, error) {
	var out []*entity.PostIt
	for _, p := range r.porID {
		if p.UsuarioID == usuarioID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakePostItRepo) Update(p *entity.PostIt) error {
	cp := *p
	r.porID[p.ID] = &cp
	return nil
}

func (r *fakePostItRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

type fakeTarefaRepo struct {
	listas  map[string]*entity.ListaTarefas
	tarefas map[string]*entity.Tarefa
}

func (r *fakeTarefaRepo) CreateLista(l *entity.ListaTarefas) error {
	cp := *l
	r.listas[l.ID] = &cp
	return nil
}

func (r *fakeTarefaRepo) GetListaByID(id string) (*entity.ListaTarefas, error) {
	l, ok := r.listas[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *fakeTarefaRepo) ListListasByUsuario(usuarioID string) ([]*entity.ListaTarefas, error) {
	var out []*entity.ListaTarefas
	for _, l := range r.listas {
		if l.UsuarioID == usuarioID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTarefaRepo) UpdateLista(l *entity.ListaTarefas) error {
	cp := *l
	r.listas[l.ID] = &cp
	return nil
}

func (r *fakeTarefaRepo) DeleteLista(id string) error {
	delete(r.listas, id)
	for tid, t := range r.tarefas {
		if t.ListaID == id {
			delete(r.tarefas, tid)
		}
	}
	return nil
}

func (r *fakeTarefaRepo) CreateTarefa(t *entity.Tarefa) error {
	cp := *t
	r.tarefas[t.ID] = &cp
	return nil
}

func (r *fakeTarefaRepo) GetTarefaByID(id string) (*entity.Tarefa, error) {
	t, ok := r.tarefas[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTarefaRepo) ListTarefasByUsuario(usuarioID string) ([]*entity.Tarefa, error) {
	var out []*entity.Tarefa
	for _, t := range r.tarefas {
		if t.UsuarioID == usuarioID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeTarefaRepo) MaxOrdem(listaID string) (int, error) {
	max := 0
	for _, t := range r.tarefas {
		if t.ListaID == listaID && t.Ordem > max {
			max = t.Ordem
		}
	}
	return max, nil
}

func (r *fakeTarefaRepo) UpdateTarefa(t *entity.Tarefa) error {
	cp := *t
	r.tarefas[t.ID] = &cp
	return nil
}

func (r *fakeTarefaRepo) DeleteTarefa(id string) error {
	delete(r.tarefas, id)
	return nil
}

func novoWorkspace() *usecase.WorkspaceUseCase {
	return usecase.NewWorkspaceUseCase(
		&fakePostItRepo{porID: map[string]*entity.PostIt{}},
		&fakeTarefaRepo{listas: map[string]*entity.ListaTarefas{}, tarefas: map[string]*entity.Tarefa{}},
	)
}

const (
	dona  = "usuaria-dona"
	outro = "usuario-outro"
)

// ──────────────────────────────────────────────────────────────────────────────
// Post-its
// ──────────────────────────────────────────────────────────────────────────────

func TestCreatePostIt_Padroes(t *testing.T) {
	uc := novoWorkspace()

	resp, err := uc.CreatePostIt(dona, dto.PostItRequest{Conteudo: "ligar para o despachante"})
	require.NoError(t, err)

	assert.Equal(t, "#fef08a", resp.Cor, "cor padrão amarela")
	assert.Equal(t, entity.PrioridadeMedia, resp.Prioridade)
	assert.Equal(t, 220, resp.Largura)
	assert.Equal(t, 220, resp.Altura)
	assert.GreaterOrEqual(t, resp.PosicaoX, 40, "posição inicial aleatória dentro da faixa")
	assert.LessOrEqual(t, resp.PosicaoX, 240)
}

func TestCreatePostIt_PrioridadeInvalida(t *testing.T) {
	uc := novoWorkspace()

	_, err := uc.CreatePostIt(dona, dto.PostItRequest{Prioridade: "urgentíssima"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// O mural é pessoal: nem outro colaborador nem admin enxergam ou alteram.
func TestPostIt_IsoladoPorUsuario(t *testing.T) {
	uc := novoWorkspace()

	criado, err := uc.CreatePostIt(dona, dto.PostItRequest{Conteudo: "privado"})
	require.NoError(t, err)

	lista, err := uc.ListPostIts(outro)
	require.NoError(t, err)
	assert.Empty(t, lista, "post-its de outra pessoa não aparecem")

	_, err = uc.UpdatePostIt(outro, criado.ID, dto.PostItRequest{Conteudo: "invasão"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.DeletePostIt(outro, criado.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdatePostIt_MoveEGuardaGeometria(t *testing.T) {
	uc := novoWorkspace()

	criado, err := uc.CreatePostIt(dona, dto.PostItRequest{Conteudo: "nota"})
	require.NoError(t, err)

	x, y := 300, 150
	resp, err := uc.UpdatePostIt(dona, criado.ID, dto.PostItRequest{PosicaoX: &x, PosicaoY: &y})
	require.NoError(t, err)
	assert.Equal(t, 300, resp.PosicaoX)
	assert.Equal(t, 150, resp.PosicaoY)
	assert.Equal(t, "nota", resp.Conteudo, "conteúdo não muda num update só de posição")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listas e tarefas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateTarefa_OrdemSequencial(t *testing.T) {
	uc := novoWorkspace()

	lista, err := uc.CreateLista(dona, dto.ListaTarefasRequest{Titulo: "Pendências"})
	require.NoError(t, err)

	t1, err := uc.CreateTarefa(dona, dto.TarefaRequest{ListaID: lista.ID, Texto: "primeira"})
	require.NoError(t, err)
	t2, err := uc.CreateTarefa(dona, dto.TarefaRequest{ListaID: lista.ID, Texto: "segunda"})
	require.NoError(t, err)

	assert.Equal(t, 1, t1.Ordem)
	assert.Equal(t, 2, t2.Ordem, "novas tarefas entram no fim da lista")
}

func TestCreateTarefa_EmListaDeOutro(t *testing.T) {
	uc := novoWorkspace()

	lista, err := uc.CreateLista(dona, dto.ListaTarefasRequest{Titulo: "Pendências"})
	require.NoError(t, err)

	_, err = uc.CreateTarefa(outro, dto.TarefaRequest{ListaID: lista.ID, Texto: "intrusa"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateTarefa_AlternaConclusao(t *testing.T) {
	uc := novoWorkspace()

	lista, err := uc.CreateLista(dona, dto.ListaTarefasRequest{Titulo: "Pendências"})
	require.NoError(t, err)
	tarefa, err := uc.CreateTarefa(dona, dto.TarefaRequest{ListaID: lista.ID, Texto: "enviar nota"})
	require.NoError(t, err)

	sim := true
	resp, err := uc.UpdateTarefa(dona, tarefa.ID, dto.TarefaRequest{Concluida: &sim})
	require.NoError(t, err)
	assert.True(t, resp.Concluida)
	assert.Equal(t, "enviar nota", resp.Texto)
}

func TestDeleteLista_RemoveTarefasJuntas(t *testing.T) {
	uc := novoWorkspace()

	lista, err := uc.CreateLista(dona, dto.ListaTarefasRequest{Titulo: "Pendências"})
	require.NoError(t, err)
	_, err = uc.CreateTarefa(dona, dto.TarefaRequest{ListaID: lista.ID, Texto: "x"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteLista(dona, lista.ID))

	tarefas, err := uc.ListTarefas(dona)
	require.NoError(t, err)
	assert.Empty(t, tarefas, "a remoção da lista leva as tarefas junto")
}

func TestCreateLista_TituloVazio(t *testing.T) {
	uc := novoWorkspace()

	_, err := uc.CreateLista(dona, dto.ListaTarefasRequest{Titulo: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
