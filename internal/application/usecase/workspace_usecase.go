package usecase

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/repository"
)

// Padrões de post-it novo.
const (
	corPostItPadrao = "#fef08a" // amarelo
	larguraPadrao   = 220
	alturaPadrao    = 220
)

// WorkspaceUseCase casos de uso do quadro pessoal (post-its e listas de
// tarefas). Todo item pertence a um usuário; ninguém enxerga ou altera o
// quadro de outro, nem admin.
type WorkspaceUseCase struct {
	postits repository.PostItRepository
	tarefas repository.TarefaRepository
}

// NewWorkspaceUseCase constrói o caso de uso do quadro pessoal.
func NewWorkspaceUseCase(p repository.PostItRepository, t repository.TarefaRepository) *WorkspaceUseCase {
	return &WorkspaceUseCase{postits: p, tarefas: t}
}

// CreatePostIt cria uma nota; campos vazios recebem os padrões e a posição
// nasce levemente aleatória para notas novas não empilharem no mesmo ponto.
func (uc *WorkspaceUseCase) CreatePostIt(usuarioID string, in dto.PostItRequest) (*dto.PostItResponse, error) {
	prioridade := in.Prioridade
	if prioridade == "" {
		prioridade = entity.PrioridadeMedia
	}
	if !entity.IsPrioridade(prioridade) {
		return nil, domain.ErrInvalidInput
	}
	p := &entity.PostIt{
		ID:         uuid.New().String(),
		UsuarioID:  usuarioID,
		Conteudo:   in.Conteudo,
		Cor:        defaultCor(in.Cor, corPostItPadrao),
		PosicaoX:   valorOu(in.PosicaoX, 40+rand.Intn(200)),
		PosicaoY:   valorOu(in.PosicaoY, 40+rand.Intn(120)),
		Largura:    valorOu(in.Largura, larguraPadrao),
		Altura:     valorOu(in.Altura, alturaPadrao),
		Prioridade: prioridade,
		CriadoEm:   time.Now(),
	}
	if err := uc.postits.Create(p); err != nil {
		return nil, err
	}
	return toPostItResponse(p), nil
}

// UpdatePostIt altera conteúdo, cor, prioridade e/ou geometria da nota.
func (uc *WorkspaceUseCase) UpdatePostIt(usuarioID, id string, in dto.PostItRequest) (*dto.PostItResponse, error) {
	p, err := uc.postitDoUsuario(usuarioID, id)
	if err != nil {
		return nil, err
	}
	if in.Conteudo != "" {
		p.Conteudo = in.Conteudo
	}
	if in.Cor != "" {
		p.Cor = in.Cor
	}
	if in.Prioridade != "" {
		if !entity.IsPrioridade(in.Prioridade) {
			return nil, domain.ErrInvalidInput
		}
		p.Prioridade = in.Prioridade
	}
	p.PosicaoX = valorOu(in.PosicaoX, p.PosicaoX)
	p.PosicaoY = valorOu(in.PosicaoY, p.PosicaoY)
	p.Largura = valorOu(in.Largura, p.Largura)
	p.Altura = valorOu(in.Altura, p.Altura)
	if err := uc.postits.Update(p); err != nil {
		return nil, err
	}
	return toPostItResponse(p), nil
}

// ListPostIts devolve as notas do usuário.
func (uc *WorkspaceUseCase) ListPostIts(usuarioID string) ([]dto.PostItResponse, error) {
	list, err := uc.postits.ListByUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PostItResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPostItResponse(p))
	}
	return out, nil
}

// DeletePostIt remove a nota do usuário.
func (uc *WorkspaceUseCase) DeletePostIt(usuarioID, id string) error {
	if _, err := uc.postitDoUsuario(usuarioID, id); err != nil {
		return err
	}
	return uc.postits.Delete(id)
}

func (uc *WorkspaceUseCase) postitDoUsuario(usuarioID, id string) (*entity.PostIt, error) {
	p, err := uc.postits.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.UsuarioID != usuarioID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// CreateLista cria uma lista de tarefas.
func (uc *WorkspaceUseCase) CreateLista(usuarioID string, in dto.ListaTarefasRequest) (*dto.ListaTarefasResponse, error) {
	titulo := strings.TrimSpace(in.Titulo)
	if titulo == "" {
		return nil, domain.ErrInvalidInput
	}
	l := &entity.ListaTarefas{
		ID:        uuid.New().String(),
		UsuarioID: usuarioID,
		Titulo:    titulo,
		Cor:       defaultCor(in.Cor, corPostItPadrao),
		PosicaoX:  valorOu(in.PosicaoX, 40+rand.Intn(200)),
		PosicaoY:  valorOu(in.PosicaoY, 40+rand.Intn(120)),
		CriadoEm:  time.Now(),
	}
	if err := uc.tarefas.CreateLista(l); err != nil {
		return nil, err
	}
	return toListaResponse(l), nil
}

// UpdateLista altera título, cor e/ou posição da lista.
func (uc *WorkspaceUseCase) UpdateLista(usuarioID, id string, in dto.ListaTarefasRequest) (*dto.ListaTarefasResponse, error) {
	l, err := uc.listaDoUsuario(usuarioID, id)
	if err != nil {
		return nil, err
	}
	if t := strings.TrimSpace(in.Titulo); t != "" {
		l.Titulo = t
	}
	if in.Cor != "" {
		l.Cor = in.Cor
	}
	l.PosicaoX = valorOu(in.PosicaoX, l.PosicaoX)
	l.PosicaoY = valorOu(in.PosicaoY, l.PosicaoY)
	if err := uc.tarefas.UpdateLista(l); err != nil {
		return nil, err
	}
	return toListaResponse(l), nil
}

// ListListas devolve as listas do usuário.
func (uc *WorkspaceUseCase) ListListas(usuarioID string) ([]dto.ListaTarefasResponse, error) {
	list, err := uc.tarefas.ListListasByUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ListaTarefasResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toListaResponse(l))
	}
	return out, nil
}

// DeleteLista remove a lista e todas as suas tarefas.
func (uc *WorkspaceUseCase) DeleteLista(usuarioID, id string) error {
	if _, err := uc.listaDoUsuario(usuarioID, id); err != nil {
		return err
	}
	return uc.tarefas.DeleteLista(id)
}

func (uc *WorkspaceUseCase) listaDoUsuario(usuarioID, id string) (*entity.ListaTarefas, error) {
	l, err := uc.tarefas.GetListaByID(id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if l.UsuarioID != usuarioID {
		return nil, domain.ErrForbidden
	}
	return l, nil
}

// CreateTarefa adiciona uma tarefa ao fim da lista (ordem = maior + 1).
func (uc *WorkspaceUseCase) CreateTarefa(usuarioID string, in dto.TarefaRequest) (*dto.TarefaResponse, error) {
	texto := strings.TrimSpace(in.Texto)
	if texto == "" || in.ListaID == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.listaDoUsuario(usuarioID, in.ListaID); err != nil {
		return nil, err
	}
	max, err := uc.tarefas.MaxOrdem(in.ListaID)
	if err != nil {
		return nil, err
	}
	t := &entity.Tarefa{
		ID:        uuid.New().String(),
		UsuarioID: usuarioID,
		ListaID:   in.ListaID,
		Texto:     texto,
		Ordem:     max + 1,
		CriadoEm:  time.Now(),
	}
	if err := uc.tarefas.CreateTarefa(t); err != nil {
		return nil, err
	}
	return toTarefaResponse(t), nil
}

// UpdateTarefa altera o texto e/ou alterna a conclusão.
func (uc *WorkspaceUseCase) UpdateTarefa(usuarioID, id string, in dto.TarefaRequest) (*dto.TarefaResponse, error) {
	t, err := uc.tarefaDoUsuario(usuarioID, id)
	if err != nil {
		return nil, err
	}
	if texto := strings.TrimSpace(in.Texto); texto != "" {
		t.Texto = texto
	}
	if in.Concluida != nil {
		t.Concluida = *in.Concluida
	}
	if err := uc.tarefas.UpdateTarefa(t); err != nil {
		return nil, err
	}
	return toTarefaResponse(t), nil
}

// ListTarefas devolve todas as tarefas do usuário (todas as listas).
func (uc *WorkspaceUseCase) ListTarefas(usuarioID string) ([]dto.TarefaResponse, error) {
	list, err := uc.tarefas.ListTarefasByUsuario(usuarioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TarefaResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTarefaResponse(t))
	}
	return out, nil
}

// DeleteTarefa remove uma tarefa.
func (uc *WorkspaceUseCase) DeleteTarefa(usuarioID, id string) error {
	if _, err := uc.tarefaDoUsuario(usuarioID, id); err != nil {
		return err
	}
	return uc.tarefas.DeleteTarefa(id)
}

func (uc *WorkspaceUseCase) tarefaDoUsuario(usuarioID, id string) (*entity.Tarefa, error) {
	t, err := uc.tarefas.GetTarefaByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.ErrNotFound
	}
	if t.UsuarioID != usuarioID {
		return nil, domain.ErrForbidden
	}
	return t, nil
}

func defaultCor(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func valorOu(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func toPostItResponse(p *entity.PostIt) *dto.PostItResponse {
	return &dto.PostItResponse{
		ID:         p.ID,
		Conteudo:   p.Conteudo,
		Cor:        p.Cor,
		PosicaoX:   p.PosicaoX,
		PosicaoY:   p.PosicaoY,
		Largura:    p.Largura,
		Altura:     p.Altura,
		Prioridade: p.Prioridade,
		CriadoEm:   p.CriadoEm,
	}
}

func toListaResponse(l *entity.ListaTarefas) *dto.ListaTarefasResponse {
	return &dto.ListaTarefasResponse{
		ID:       l.ID,
		Titulo:   l.Titulo,
		Cor:      l.Cor,
		PosicaoX: l.PosicaoX,
		PosicaoY: l.PosicaoY,
		CriadoEm: l.CriadoEm,
	}
}

func toTarefaResponse(t *entity.Tarefa) *dto.TarefaResponse {
	return &dto.TarefaResponse{
		ID:        t.ID,
		ListaID:   t.ListaID,
		Texto:     t.Texto,
		Concluida: t.Concluida,
		Ordem:     t.Ordem,
		CriadoEm:  t.CriadoEm,
	}
}
