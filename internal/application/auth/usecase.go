// Package auth implementa login e gestão de usuários. As senhas são
// armazenadas exclusivamente como hash bcrypt.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/repository"
	"github.com/jhoicas/controle-pedidos-api/pkg/config"
	"github.com/jhoicas/controle-pedidos-api/pkg/jwt"
)

// UseCase casos de uso de autenticação e usuários.
type UseCase struct {
	usuarios repository.UsuarioRepository
	cfg      *config.Config
}

// NewUseCase constrói o caso de uso de autenticação.
func NewUseCase(usuarios repository.UsuarioRepository, cfg *config.Config) *UseCase {
	return &UseCase{usuarios: usuarios, cfg: cfg}
}

// Login autentica por email + senha e emite o JWT. Falha indistinta
// (ErrUnauthorized) para email inexistente, senha errada e conta inativa:
// a resposta não revela qual dos três ocorreu.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}

	usuario, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !usuario.Ativo {
		return nil, domain.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Senha)) != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.cfg.JWT.Secret, usuario.ID, usuario.Nome, usuario.Tipo, uc.cfg.JWT.Issuer, uc.cfg.JWT.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: *toUsuarioResponse(usuario)}, nil
}

// CreateUsuario registra um novo usuário (operação de admin).
func (uc *UseCase) CreateUsuario(criadoPor string, in dto.CreateUsuarioRequest) (*dto.UsuarioResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	nome := strings.TrimSpace(in.Nome)
	if nome == "" || email == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.TipoColaborador
	}
	if tipo != entity.TipoAdmin && tipo != entity.TipoColaborador {
		return nil, domain.ErrInvalidInput
	}

	existente, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := &entity.Usuario{
		ID:        uuid.New().String(),
		Nome:      nome,
		Email:     email,
		SenhaHash: string(hash),
		Tipo:      tipo,
		Ativo:     true,
		CriadoEm:  time.Now(),
		CriadoPor: criadoPor,
	}
	if err := uc.usuarios.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// UpdateUsuario altera email e/ou senha. Senha vazia mantém o hash atual.
func (uc *UseCase) UpdateUsuario(id string, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	usuario, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}

	if email := strings.ToLower(strings.TrimSpace(in.Email)); email != "" && email != usuario.Email {
		outro, err := uc.usuarios.GetByEmail(email)
		if err != nil {
			return nil, err
		}
		if outro != nil && outro.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
		usuario.Email = email
	}
	if in.Senha != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.SenhaHash = string(hash)
	}

	if err := uc.usuarios.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// ToggleAtivo alterna o flag de acesso. Um admin não pode desativar a
// própria conta (evita o sistema ficar sem administrador logável).
func (uc *UseCase) ToggleAtivo(solicitanteID, id string) (*dto.UsuarioResponse, error) {
	if solicitanteID == id {
		return nil, domain.ErrForbidden
	}
	usuario, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	usuario.Ativo = !usuario.Ativo
	if err := uc.usuarios.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// ListUsuarios devolve todos os usuários cadastrados.
func (uc *UseCase) ListUsuarios() ([]dto.UsuarioResponse, error) {
	list, err := uc.usuarios.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUsuarioResponse(u))
	}
	return out, nil
}

// DeleteUsuario remove um usuário definitivamente.
func (uc *UseCase) DeleteUsuario(solicitanteID, id string) error {
	if solicitanteID == id {
		return domain.ErrForbidden
	}
	usuario, err := uc.usuarios.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return domain.ErrUserNotFound
	}
	return uc.usuarios.Delete(id)
}

// GetUsuario busca um usuário por ID (usado pelo middleware para montar o
// usuário corrente a partir do claim).
func (uc *UseCase) GetUsuario(id string) (*entity.Usuario, error) {
	usuario, err := uc.usuarios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUserNotFound
	}
	return usuario, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:       u.ID,
		Nome:     u.Nome,
		Email:    u.Email,
		Tipo:     u.Tipo,
		Ativo:    u.Ativo,
		CriadoEm: u.CriadoEm,
	}
}
