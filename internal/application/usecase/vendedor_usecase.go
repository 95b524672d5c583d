// Package usecase reúne os casos de uso de cadastros de apoio (vendedores,
// períodos, judicializações, envios de cortesia, clientes e o quadro pessoal).
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

// VendedorUseCase casos de uso de vendedores.
type VendedorUseCase struct {
	vendedores repository.VendedorRepository
}

// NewVendedorUseCase constrói o caso de uso de vendedores.
func NewVendedorUseCase(v repository.VendedorRepository) *VendedorUseCase {
	return &VendedorUseCase{vendedores: v}
}

// Create cadastra um vendedor; nome duplicado (case-insensitive) é rejeitado.
func (uc *VendedorUseCase) Create(nome string) (*dto.VendedorResponse, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.vendedores.FindByNome(nome)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	v := &entity.Vendedor{
		ID:       uuid.New().String(),
		Nome:     nome,
		Ativo:    true,
		CriadoEm: time.Now(),
	}
	if err := uc.vendedores.Create(v); err != nil {
		return nil, err
	}
	return toVendedorResponse(v), nil
}

// List devolve todos os vendedores.
func (uc *VendedorUseCase) List() ([]dto.VendedorResponse, error) {
	list, err := uc.vendedores.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendedorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVendedorResponse(v))
	}
	return out, nil
}

// Search autocomplete por substring do nome.
func (uc *VendedorUseCase) Search(termo string, limit int) ([]dto.VendedorResponse, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	list, err := uc.vendedores.Search(strings.TrimSpace(termo), limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VendedorResponse, 0, len(list))
	for _, v := range list {
		out = append(out, *toVendedorResponse(v))
	}
	return out, nil
}

// ToggleAtivo alterna a visibilidade do vendedor no autocomplete.
func (uc *VendedorUseCase) ToggleAtivo(id string) (*dto.VendedorResponse, error) {
	v, err := uc.vendedores.GetByID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	v.Ativo = !v.Ativo
	if err := uc.vendedores.Update(v); err != nil {
		return nil, err
	}
	return toVendedorResponse(v), nil
}

// Delete remove o vendedor. Pedidos antigos guardam o nome como texto, então
// a remoção não afeta o histórico.
func (uc *VendedorUseCase) Delete(id string) error {
	v, err := uc.vendedores.GetByID(id)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	return uc.vendedores.Delete(id)
}

func toVendedorResponse(v *entity.Vendedor) *dto.VendedorResponse {
	return &dto.VendedorResponse{ID: v.ID, Nome: v.Nome, Ativo: v.Ativo, CriadoEm: v.CriadoEm}
}
