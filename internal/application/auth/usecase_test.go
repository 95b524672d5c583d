package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/controle-pedidos-api/internal/application/auth"
	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/pkg/config"
	pkgjwt "github.com/jhoicas/controle-pedidos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake do repositório de usuários
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsuarioRepo struct {
	porID map[string]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{porID: map[string]*entity.Usuario{}}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	cp := *u
	r.porID[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	u, ok := r.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.porID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) Update(u *entity.Usuario) error {
	cp := *u
	r.porID[u.ID] = &cp
	return nil
}

func (r *fakeUsuarioRepo) List() ([]*entity.Usuario, error) {
	var out []*entity.Usuario
	for _, u := range r.porID {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUsuarioRepo) Delete(id string) error {
	delete(r.porID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "segredo-de-teste"
	testSenha  = "senha-forte-123"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: testSecret, Expiration: 60, Issuer: "teste"},
	}
}

func seedUsuario(t *testing.T, repo *fakeUsuarioRepo, email string, ativo bool) *entity.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testSenha), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.Usuario{
		ID:        "u-" + email,
		Nome:      "Usuária Teste",
		Email:     email,
		SenhaHash: string(hash),
		Tipo:      entity.TipoColaborador,
		Ativo:     ativo,
		CriadoEm:  time.Now(),
	}
	require.NoError(t, repo.Create(u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredenciaisValidas(t *testing.T) {
	repo := newFakeUsuarioRepo()
	u := seedUsuario(t, repo, "ana@empresa.com", true)
	uc := auth.NewUseCase(repo, testConfig())

	resp, err := uc.Login(dto.LoginRequest{Email: "  ANA@empresa.com ", Senha: testSenha})
	require.NoError(t, err, "email com caixa e espaços deve ser normalizado")
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, u.ID, resp.Usuario.ID)

	userID, nome, tipo, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
	assert.Equal(t, u.Nome, nome)
	assert.Equal(t, entity.TipoColaborador, tipo)
}

// Falha indistinta: email inexistente, senha errada e conta inativa devolvem
// o mesmo erro, sem revelar qual dos três ocorreu.
func TestLogin_FalhaIndistinta(t *testing.T) {
	repo := newFakeUsuarioRepo()
	seedUsuario(t, repo, "ana@empresa.com", true)
	seedUsuario(t, repo, "inativa@empresa.com", false)
	uc := auth.NewUseCase(repo, testConfig())

	casos := []struct {
		nome  string
		email string
		senha string
	}{
		{"email inexistente", "ninguem@empresa.com", testSenha},
		{"senha errada", "ana@empresa.com", "senha-errada"},
		{"conta inativa", "inativa@empresa.com", testSenha},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			_, err := uc.Login(dto.LoginRequest{Email: c.email, Senha: c.senha})
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestLogin_EntradaVazia(t *testing.T) {
	uc := auth.NewUseCase(newFakeUsuarioRepo(), testConfig())

	_, err := uc.Login(dto.LoginRequest{Email: "", Senha: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gestão de usuários
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateUsuario_HashEPadraoColaborador(t *testing.T) {
	repo := newFakeUsuarioRepo()
	uc := auth.NewUseCase(repo, testConfig())

	resp, err := uc.CreateUsuario("admin-id", dto.CreateUsuarioRequest{
		Nome: "João", Email: "JOAO@empresa.com", Senha: "abc123",
	})
	require.NoError(t, err)
	assert.Equal(t, "joao@empresa.com", resp.Email)
	assert.Equal(t, entity.TipoColaborador, resp.Tipo, "tipo vazio cai em colaborador")
	assert.True(t, resp.Ativo)

	criado, _ := repo.GetByID(resp.ID)
	require.NotNil(t, criado)
	assert.NotEqual(t, "abc123", criado.SenhaHash, "a senha nunca é gravada em claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(criado.SenhaHash), []byte("abc123")))
}

func TestCreateUsuario_EmailDuplicado(t *testing.T) {
	repo := newFakeUsuarioRepo()
	seedUsuario(t, repo, "ana@empresa.com", true)
	uc := auth.NewUseCase(repo, testConfig())

	_, err := uc.CreateUsuario("admin-id", dto.CreateUsuarioRequest{
		Nome: "Outra Ana", Email: "ana@empresa.com", Senha: "x",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUsuario_TipoInvalido(t *testing.T) {
	uc := auth.NewUseCase(newFakeUsuarioRepo(), testConfig())

	_, err := uc.CreateUsuario("admin-id", dto.CreateUsuarioRequest{
		Nome: "João", Email: "joao@empresa.com", Senha: "x", Tipo: "gerente",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateUsuario_SenhaVaziaMantemHash(t *testing.T) {
	repo := newFakeUsuarioRepo()
	u := seedUsuario(t, repo, "ana@empresa.com", true)
	uc := auth.NewUseCase(repo, testConfig())

	_, err := uc.UpdateUsuario(u.ID, dto.UpdateUsuarioRequest{Email: "novo@empresa.com"})
	require.NoError(t, err)

	depois, _ := repo.GetByID(u.ID)
	assert.Equal(t, "novo@empresa.com", depois.Email)
	assert.Equal(t, u.SenhaHash, depois.SenhaHash, "sem senha nova o hash não muda")
}

func TestToggleAtivo_NaoDesativaASiMesmo(t *testing.T) {
	repo := newFakeUsuarioRepo()
	u := seedUsuario(t, repo, "admin@empresa.com", true)
	uc := auth.NewUseCase(repo, testConfig())

	_, err := uc.ToggleAtivo(u.ID, u.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestToggleAtivo_AlternaFlag(t *testing.T) {
	repo := newFakeUsuarioRepo()
	u := seedUsuario(t, repo, "ana@empresa.com", true)
	uc := auth.NewUseCase(repo, testConfig())

	resp, err := uc.ToggleAtivo("outro-admin", u.ID)
	require.NoError(t, err)
	assert.False(t, resp.Ativo)

	resp, err = uc.ToggleAtivo("outro-admin", u.ID)
	require.NoError(t, err)
	assert.True(t, resp.Ativo)
}

func TestDeleteUsuario_NaoRemoveASiMesmo(t *testing.T) {
	repo := newFakeUsuarioRepo()
	u := seedUsuario(t, repo, "admin@empresa.com", true)
	uc := auth.NewUseCase(repo, testConfig())

	err := uc.DeleteUsuario(u.ID, u.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDeleteUsuario_Inexistente(t *testing.T) {
	uc := auth.NewUseCase(newFakeUsuarioRepo(), testConfig())

	err := uc.DeleteUsuario("solicitante", "fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
