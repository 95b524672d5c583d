package entity

import "time"

// ListaTarefas é uma lista de tarefas do quadro pessoal.
type ListaTarefas struct {
	ID        string
	UsuarioID string
	Titulo    string
	Cor       string
	PosicaoX  int
	PosicaoY  int
	CriadoEm  time.Time
}

// Tarefa é um item de uma lista, ordenado por Ordem crescente.
type Tarefa struct {
	ID        string
	UsuarioID string
	ListaID   string
	Texto     string
	Concluida bool
	Ordem     int
	CriadoEm  time.Time
}
