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

// JudicializacaoUseCase casos de uso de envios judicializados.
type JudicializacaoUseCase struct {
	judicializacoes repository.JudicializacaoRepository
}

// NewJudicializacaoUseCase constrói o caso de uso de judicializações.
func NewJudicializacaoUseCase(j repository.JudicializacaoRepository) *JudicializacaoUseCase {
	return &JudicializacaoUseCase{judicializacoes: j}
}

func (uc *JudicializacaoUseCase) montar(id, criadoPor string, in dto.JudicializacaoRequest) (*entity.Judicializacao, error) {
	if in.PeriodoID == "" || strings.TrimSpace(in.Cliente) == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.JudicOrcado
	}
	if !entity.IsJudicStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	qtd := in.Qtd
	if qtd <= 0 {
		qtd = 1
	}
	return &entity.Judicializacao{
		ID:          id,
		PeriodoID:   in.PeriodoID,
		NrProcesso:  strings.TrimSpace(in.NrProcesso),
		Cliente:     strings.TrimSpace(in.Cliente),
		Advogado:    strings.TrimSpace(in.Advogado),
		Produto:     in.Produto,
		Qtd:         qtd,
		Total:       brformat.ParseCurrency(in.Total),
		Data:        brformat.NormalizeDate(in.Data),
		Status:      status,
		Observacoes: in.Observacoes,
		CriadoPor:   criadoPor,
	}, nil
}

// Create registra uma judicialização.
func (uc *JudicializacaoUseCase) Create(criadoPor string, in dto.JudicializacaoRequest) (*dto.JudicializacaoResponse, error) {
	j, err := uc.montar(uuid.New().String(), criadoPor, in)
	if err != nil {
		return nil, err
	}
	j.CriadoEm = time.Now()
	if err := uc.judicializacoes.Create(j); err != nil {
		return nil, err
	}
	return toJudicializacaoResponse(j), nil
}

// Update regrava a judicialização inteira.
func (uc *JudicializacaoUseCase) Update(id string, in dto.JudicializacaoRequest) (*dto.JudicializacaoResponse, error) {
	atual, err := uc.judicializacoes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	j, err := uc.montar(id, atual.CriadoPor, in)
	if err != nil {
		return nil, err
	}
	j.CriadoEm = atual.CriadoEm
	if err := uc.judicializacoes.Update(j); err != nil {
		return nil, err
	}
	return toJudicializacaoResponse(j), nil
}

// UpdateStatus troca só o status (atualização rápida na listagem).
func (uc *JudicializacaoUseCase) UpdateStatus(id, status string) error {
	if !entity.IsJudicStatus(status) {
		return domain.ErrInvalidInput
	}
	atual, err := uc.judicializacoes.GetByID(id)
	if err != nil {
		return err
	}
	if atual == nil {
		return domain.ErrNotFound
	}
	return uc.judicializacoes.UpdateField(id, "status", status)
}

// ListByPeriodo devolve as judicializações do período.
func (uc *JudicializacaoUseCase) ListByPeriodo(periodoID string) ([]dto.JudicializacaoResponse, error) {
	list, err := uc.judicializacoes.ListByPeriodo(periodoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.JudicializacaoResponse, 0, len(list))
	for _, j := range list {
		out = append(out, *toJudicializacaoResponse(j))
	}
	return out, nil
}

// Delete remove a judicialização.
func (uc *JudicializacaoUseCase) Delete(id string) error {
	atual, err := uc.judicializacoes.GetByID(id)
	if err != nil {
		return err
	}
	if atual == nil {
		return domain.ErrNotFound
	}
	return uc.judicializacoes.Delete(id)
}

func toJudicializacaoResponse(j *entity.Judicializacao) *dto.JudicializacaoResponse {
	return &dto.JudicializacaoResponse{
		ID:          j.ID,
		PeriodoID:   j.PeriodoID,
		NrProcesso:  j.NrProcesso,
		Cliente:     j.Cliente,
		Advogado:    j.Advogado,
		Produto:     j.Produto,
		Qtd:         j.Qtd,
		Total:       j.Total.StringFixed(2),
		Data:        j.Data,
		Status:      j.Status,
		Observacoes: j.Observacoes,
		CriadoEm:    j.CriadoEm,
	}
}
