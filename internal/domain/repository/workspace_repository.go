package repository

import "github.com/jhoicas/controle-pedidos-api/internal/domain/entity"

// PostItRepository define o porto de persistência para PostIt.
type PostItRepository interface {
	Create(p *entity.PostIt) error
	GetByID(id string) (*entity.PostIt, error)
	ListByUsuario(usuarioID string) ([]*entity.PostIt, error)
	Update(p *entity.PostIt) error
	Delete(id string) error
}

// TarefaRepository define o porto de persistência para listas e tarefas.
type TarefaRepository interface {
	CreateLista(l *entity.ListaTarefas) error
	GetListaByID(id string) (*entity.ListaTarefas, error)
	ListListasByUsuario(usuarioID string) ([]*entity.ListaTarefas, error)
	UpdateLista(l *entity.ListaTarefas) error
	// DeleteLista remove a lista e todas as suas tarefas.
	DeleteLista(id string) error

	CreateTarefa(t *entity.Tarefa) error
	GetTarefaByID(id string) (*entity.Tarefa, error)
	ListTarefasByUsuario(usuarioID string) ([]*entity.Tarefa, error)
	// MaxOrdem devolve a maior ordem atual da lista (0 quando vazia).
	MaxOrdem(listaID string) (int, error)
	UpdateTarefa(t *entity.Tarefa) error
	DeleteTarefa(id string) error
}
