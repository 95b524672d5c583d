package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/repository"
	"github.com/jhoicas/controle-pedidos-api/pkg/brformat"
)

// ControleEnvioUseCase casos de uso de envios de cortesia.
type ControleEnvioUseCase struct {
	envios repository.ControleEnvioRepository
}

// NewControleEnvioUseCase constrói o caso de uso de envios de cortesia.
func NewControleEnvioUseCase(e repository.ControleEnvioRepository) *ControleEnvioUseCase {
	return &ControleEnvioUseCase{envios: e}
}

func (uc *ControleEnvioUseCase) montar(id, criadoPor string, in dto.ControleEnvioRequest) (*entity.ControleEnvio, error) {
	if in.PeriodoID == "" || strings.TrimSpace(in.Nome) == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.EnvioPendente
	}
	if !entity.IsEnvioStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	qtd := in.Qtd
	if qtd <= 0 {
		qtd = 1
	}
	return &entity.ControleEnvio{
		ID:        id,
		PeriodoID: in.PeriodoID,
		Nome:      strings.TrimSpace(in.Nome),
		Produto:   in.Produto,
		Qtd:       qtd,
		Data:      brformat.NormalizeDate(in.Data),
		Rastreio:  strings.TrimSpace(in.Rastreio),
		Status:    status,
		CriadoPor: criadoPor,
	}, nil
}

// Create registra um envio de cortesia.
func (uc *ControleEnvioUseCase) Create(criadoPor string, in dto.ControleEnvioRequest) (*dto.ControleEnvioResponse, error) {
	e, err := uc.montar(uuid.New().String(), criadoPor, in)
	if err != nil {
		return nil, err
	}
	e.CriadoEm = time.Now()
	if err := uc.envios.Create(e); err != nil {
		return nil, err
	}
	return toControleEnvioResponse(e), nil
}

// Update regrava o envio inteiro.
func (uc *ControleEnvioUseCase) Update(id string, in dto.ControleEnvioRequest) (*dto.ControleEnvioResponse, error) {
	atual, err := uc.envios.GetByID(id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	e, err := uc.montar(id, atual.CriadoPor, in)
	if err != nil {
		return nil, err
	}
	e.CriadoEm = atual.CriadoEm
	if err := uc.envios.Update(e); err != nil {
		return nil, err
	}
	return toControleEnvioResponse(e), nil
}

// UpdateStatus troca só o status (atualização rápida na listagem).
func (uc *ControleEnvioUseCase) UpdateStatus(id, status string) error {
	if !entity.IsEnvioStatus(status) {
		return domain.ErrInvalidInput
	}
	atual, err := uc.envios.GetByID(id)
	if err != nil {
		return err
	}
	if atual == nil {
		return domain.ErrNotFound
	}
	return uc.envios.UpdateField(id, "status", status)
}

// ListByPeriodo devolve os envios do período.
func (uc *ControleEnvioUseCase) ListByPeriodo(periodoID string) ([]dto.ControleEnvioResponse, error) {
	list, err := uc.envios.ListByPeriodo(periodoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ControleEnvioResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toControleEnvioResponse(e))
	}
	return out, nil
}

// Delete remove o envio.
func (uc *ControleEnvioUseCase) Delete(id string) error {
	atual, err := uc.envios.GetByID(id)
	if err != nil {
		return err
	}
	if atual == nil {
		return domain.ErrNotFound
	}
	return uc.envios.Delete(id)
}

func toControleEnvioResponse(e *entity.ControleEnvio) *dto.ControleEnvioResponse {
	return &dto.ControleEnvioResponse{
		ID:        e.ID,
		PeriodoID: e.PeriodoID,
		Nome:      e.Nome,
		Produto:   e.Produto,
		Qtd:       e.Qtd,
		Data:      e.Data,
		Rastreio:  e.Rastreio,
		Status:    e.Status,
		CriadoEm:  e.CriadoEm,
	}
}
