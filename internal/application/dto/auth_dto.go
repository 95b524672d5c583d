package dto

import "time"

// LoginRequest entrada de login (email + senha).
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResponse saída com token JWT e usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}

// CreateUsuarioRequest entrada para criar usuário (admin; senha em texto, hasheada no use case).
type CreateUsuarioRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Tipo  string `json:"tipo"` // admin | colaborador
}

// UpdateUsuarioRequest entrada para editar email/senha. Senha vazia mantém a atual.
type UpdateUsuarioRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UsuarioResponse saída de um usuário (nunca inclui o hash de senha).
type UsuarioResponse struct {
	ID       string    `json:"id"`
	Nome     string    `json:"nome"`
	Email    string    `json:"email"`
	Tipo     string    `json:"tipo"`
	Ativo    bool      `json:"ativo"`
	CriadoEm time.Time `json:"criado_em"`
}
