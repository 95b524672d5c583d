package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/repository"
)

// ClienteUseCase casos de uso de clientes de orçamento.
type ClienteUseCase struct {
	clientes repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso de clientes.
func NewClienteUseCase(c repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clientes: c}
}

func aplicarCliente(c *entity.Cliente, in dto.ClienteRequest) error {
	razao := strings.TrimSpace(in.RazaoSocial)
	if razao == "" {
		return domain.ErrInvalidInput
	}
	c.RazaoSocial = razao
	c.CNPJ = strings.TrimSpace(in.CNPJ)
	c.Endereco = in.Endereco
	c.Cidade = in.Cidade
	c.Estado = in.Estado
	c.CEP = in.CEP
	c.Telefone = in.Telefone
	c.Email = strings.ToLower(strings.TrimSpace(in.Email))
	c.Contato = in.Contato
	return nil
}

// Create cadastra um cliente.
func (uc *ClienteUseCase) Create(in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c := &entity.Cliente{
		ID:       uuid.New().String(),
		Ativo:    true,
		CriadoEm: time.Now(),
	}
	if err := aplicarCliente(c, in); err != nil {
		return nil, err
	}
	if err := uc.clientes.Create(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Update regrava os dados do cliente.
func (uc *ClienteUseCase) Update(id string, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	c, err := uc.clientes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if err := aplicarCliente(c, in); err != nil {
		return nil, err
	}
	if err := uc.clientes.Update(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// Get busca um cliente por ID.
func (uc *ClienteUseCase) Get(id string) (*dto.ClienteResponse, error) {
	c, err := uc.clientes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(c), nil
}

// List devolve os clientes por razão social.
func (uc *ClienteUseCase) List() ([]dto.ClienteResponse, error) {
	list, err := uc.clientes.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toClienteResponse(c))
	}
	return out, nil
}

// Delete remove o cliente. Clientes com orçamentos vinculados resultam em
// domain.ErrConflict (FK no banco).
func (uc *ClienteUseCase) Delete(id string) error {
	c, err := uc.clientes.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.clientes.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:          c.ID,
		RazaoSocial: c.RazaoSocial,
		CNPJ:        c.CNPJ,
		Endereco:    c.Endereco,
		Cidade:      c.Cidade,
		Estado:      c.Estado,
		CEP:         c.CEP,
		Telefone:    c.Telefone,
		Email:       c.Email,
		Contato:     c.Contato,
		Ativo:       c.Ativo,
		CriadoEm:    c.CriadoEm,
	}
}
