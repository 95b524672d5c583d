package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/repository"
)

var _ repository.PostItRepository = (*PostItRepo)(nil)
var _ repository.TarefaRepository = (*TarefaRepo)(nil)

// PostItRepo implementação de PostItRepository (usável com pool ou tx).
type PostItRepo struct {
	q Querier
}

// NewPostItRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewPostItRepository(q Querier) *PostItRepo {
	return &PostItRepo{q: q}
}

// Create persiste uma nova nota.
func (r *PostItRepo) Create(p *entity.PostIt) error {
	query := `
		INSERT INTO postits (id, usuario_id, conteudo, cor, posicao_x, posicao_y, largura, altura, prioridade, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.UsuarioID, p.Conteudo, p.Cor, p.PosicaoX, p.PosicaoY, p.Largura, p.Altura, p.Prioridade, p.CriadoEm,
	)
	if err != nil {
		return fmt.Errorf("insert postit: %w", err)
	}
	return nil
}

// GetByID busca uma nota por ID.
func (r *PostItRepo) GetByID(id string) (*entity.PostIt, error) {
	query := `
		SELECT id, usuario_id, conteudo, cor, posicao_x, posicao_y, largura, altura, prioridade, criado_em
		FROM postits WHERE id = $1`
	var p entity.PostIt
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.UsuarioID, &p.Conteudo, &p.Cor, &p.PosicaoX, &p.PosicaoY, &p.Largura, &p.Altura, &p.Prioridade, &p.CriadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get postit: %w", err)
	}
	return &p, nil
}

// ListByUsuario lista as notas do usuário.
func (r *PostItRepo) ListByUsuario(usuarioID string) ([]*entity.PostIt, error) {
	query := `
		SELECT id, usuario_id, conteudo, cor, posicao_x, posicao_y, largura, altura, prioridade, criado_em
		FROM postits WHERE usuario_id = $1 ORDER BY criado_em`
	rows, err := r.q.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list postits: %w", err)
	}
	defer rows.Close()
	var list []*entity.PostIt
	for rows.Next() {
		var p entity.PostIt
		if err := rows.Scan(&p.ID, &p.UsuarioID, &p.Conteudo, &p.Cor, &p.PosicaoX, &p.PosicaoY, &p.Largura, &p.Altura, &p.Prioridade, &p.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan postit: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update regrava conteúdo, cor, prioridade e geometria.
func (r *PostItRepo) Update(p *entity.PostIt) error {
	query := `
		UPDATE postits SET conteudo = $2, cor = $3, posicao_x = $4, posicao_y = $5,
			largura = $6, altura = $7, prioridade = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Conteudo, p.Cor, p.PosicaoX, p.PosicaoY, p.Largura, p.Altura, p.Prioridade,
	)
	if err != nil {
		return fmt.Errorf("update postit: %w", err)
	}
	return nil
}

// Delete remove uma nota por ID.
func (r *PostItRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM postits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete postit: %w", err)
	}
	return nil
}

// TarefaRepo implementação de TarefaRepository (listas + tarefas).
type TarefaRepo struct {
	q Querier
}

// NewTarefaRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewTarefaRepository(q Querier) *TarefaRepo {
	return &TarefaRepo{q: q}
}

// CreateLista persiste uma nova lista.
func (r *TarefaRepo) CreateLista(l *entity.ListaTarefas) error {
	query := `
		INSERT INTO listas_tarefas (id, usuario_id, titulo, cor, posicao_x, posicao_y, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query, l.ID, l.UsuarioID, l.Titulo, l.Cor, l.PosicaoX, l.PosicaoY, l.CriadoEm)
	if err != nil {
		return fmt.Errorf("insert lista: %w", err)
	}
	return nil
}

// GetListaByID busca uma lista por ID.
func (r *TarefaRepo) GetListaByID(id string) (*entity.ListaTarefas, error) {
	query := `SELECT id, usuario_id, titulo, cor, posicao_x, posicao_y, criado_em FROM listas_tarefas WHERE id = $1`
	var l entity.ListaTarefas
	err := r.q.QueryRow(context.Background(), query, id).Scan(&l.ID, &l.UsuarioID, &l.Titulo, &l.Cor, &l.PosicaoX, &l.PosicaoY, &l.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lista: %w", err)
	}
	return &l, nil
}

// ListListasByUsuario lista as listas do usuário.
func (r *TarefaRepo) ListListasByUsuario(usuarioID string) ([]*entity.ListaTarefas, error) {
	query := `SELECT id, usuario_id, titulo, cor, posicao_x, posicao_y, criado_em FROM listas_tarefas WHERE usuario_id = $1 ORDER BY criado_em`
	rows, err := r.q.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list listas: %w", err)
	}
	defer rows.Close()
	var list []*entity.ListaTarefas
	for rows.Next() {
		var l entity.ListaTarefas
		if err := rows.Scan(&l.ID, &l.UsuarioID, &l.Titulo, &l.Cor, &l.PosicaoX, &l.PosicaoY, &l.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan lista: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// UpdateLista regrava título, cor e posição.
func (r *TarefaRepo) UpdateLista(l *entity.ListaTarefas) error {
	query := `UPDATE listas_tarefas SET titulo = $2, cor = $3, posicao_x = $4, posicao_y = $5 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, l.ID, l.Titulo, l.Cor, l.PosicaoX, l.PosicaoY)
	if err != nil {
		return fmt.Errorf("update lista: %w", err)
	}
	return nil
}

// DeleteLista remove a lista; as tarefas caem por ON DELETE CASCADE.
func (r *TarefaRepo) DeleteLista(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM listas_tarefas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lista: %w", err)
	}
	return nil
}

// CreateTarefa persiste uma nova tarefa.
func (r *TarefaRepo) CreateTarefa(t *entity.Tarefa) error {
	query := `
		INSERT INTO tarefas (id, usuario_id, lista_id, texto, concluida, ordem, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.UsuarioID, t.ListaID, t.Texto, t.Concluida, t.Ordem, t.CriadoEm)
	if err != nil {
		return fmt.Errorf("insert tarefa: %w", err)
	}
	return nil
}

// GetTarefaByID busca uma tarefa por ID.
func (r *TarefaRepo) GetTarefaByID(id string) (*entity.Tarefa, error) {
	query := `SELECT id, usuario_id, lista_id, texto, concluida, ordem, criado_em FROM tarefas WHERE id = $1`
	var t entity.Tarefa
	err := r.q.QueryRow(context.Background(), query, id).Scan(&t.ID, &t.UsuarioID, &t.ListaID, &t.Texto, &t.Concluida, &t.Ordem, &t.CriadoEm)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tarefa: %w", err)
	}
	return &t, nil
}

// ListTarefasByUsuario lista todas as tarefas do usuário por lista e ordem.
func (r *TarefaRepo) ListTarefasByUsuario(usuarioID string) ([]*entity.Tarefa, error) {
	query := `SELECT id, usuario_id, lista_id, texto, concluida, ordem, criado_em FROM tarefas WHERE usuario_id = $1 ORDER BY lista_id, ordem`
	rows, err := r.q.Query(context.Background(), query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list tarefas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tarefa
	for rows.Next() {
		var t entity.Tarefa
		if err := rows.Scan(&t.ID, &t.UsuarioID, &t.ListaID, &t.Texto, &t.Concluida, &t.Ordem, &t.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan tarefa: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// MaxOrdem devolve a maior ordem atual da lista (0 quando vazia).
func (r *TarefaRepo) MaxOrdem(listaID string) (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(), `SELECT COALESCE(MAX(ordem), 0) FROM tarefas WHERE lista_id = $1`, listaID).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max ordem: %w", err)
	}
	return max, nil
}

// UpdateTarefa regrava texto, conclusão e ordem.
func (r *TarefaRepo) UpdateTarefa(t *entity.Tarefa) error {
	query := `UPDATE tarefas SET texto = $2, concluida = $3, ordem = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, t.ID, t.Texto, t.Concluida, t.Ordem)
	if err != nil {
		return fmt.Errorf("update tarefa: %w", err)
	}
	return nil
}

// DeleteTarefa remove uma tarefa por ID.
func (r *TarefaRepo) DeleteTarefa(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tarefas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tarefa: %w", err)
	}
	return nil
}
