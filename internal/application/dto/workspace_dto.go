package dto

import "time"

// PostItRequest entrada de criação/edição de post-it. Campos zero na
// criação recebem os padrões (cor amarela, prioridade média, posição aleatória).
type PostItRequest struct {
	Conteudo   string `json:"conteudo"`
	Cor        string `json:"cor"`
	PosicaoX   *int   `json:"posicao_x"`
	PosicaoY   *int   `json:"posicao_y"`
	Largura    *int   `json:"largura"`
	Altura     *int   `json:"altura"`
	Prioridade string `json:"prioridade"`
}

// PostItResponse saída de um post-it.
type PostItResponse struct {
	ID         string    `json:"id"`
	Conteudo   string    `json:"conteudo"`
	Cor        string    `json:"cor"`
	PosicaoX   int       `json:"posicao_x"`
	PosicaoY   int       `json:"posicao_y"`
	Largura    int       `json:"largura"`
	Altura     int       `json:"altura"`
	Prioridade string    `json:"prioridade"`
	CriadoEm   time.Time `json:"criado_em"`
}

// ListaTarefasRequest entrada de criação/edição de lista.
type ListaTarefasRequest struct {
	Titulo   string `json:"titulo"`
	Cor      string `json:"cor"`
	PosicaoX *int   `json:"posicao_x"`
	PosicaoY *int   `json:"posicao_y"`
}

// ListaTarefasResponse saída de uma lista.
type ListaTarefasResponse struct {
	ID       string    `json:"id"`
	Titulo   string    `json:"titulo"`
	Cor      string    `json:"cor"`
	PosicaoX int       `json:"posicao_x"`
	PosicaoY int       `json:"posicao_y"`
	CriadoEm time.Time `json:"criado_em"`
}

// TarefaRequest entrada de criação/edição de tarefa.
type TarefaRequest struct {
	ListaID   string `json:"lista_id"`
	Texto     string `json:"texto"`
	Concluida *bool  `json:"concluida"`
}

// TarefaResponse saída de uma tarefa.
type TarefaResponse struct {
	ID        string    `json:"id"`
	ListaID   string    `json:"lista_id"`
	Texto     string    `json:"texto"`
	Concluida bool      `json:"concluida"`
	Ordem     int       `json:"ordem"`
	CriadoEm  time.Time `json:"criado_em"`
}
