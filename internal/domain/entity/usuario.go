package entity

import "time"

// Tipos de usuário.
const (
	TipoAdmin       = "admin"
	TipoColaborador = "colaborador"
)

// Usuario representa um usuário do sistema. A senha é sempre armazenada
// como hash bcrypt; o login em texto plano do sistema legado foi descartado.
type Usuario struct {
	ID        string
	Nome      string
	Email     string // único
	SenhaHash string
	Tipo      string // admin | colaborador
	Ativo     bool
	CriadoEm  time.Time
	CriadoPor string // vazio no seed inicial
}

// IsAdmin indica se o usuário tem o perfil administrador.
func (u *Usuario) IsAdmin() bool {
	return u.Tipo == TipoAdmin
}
