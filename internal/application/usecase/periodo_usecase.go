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

// PeriodoUseCase casos de uso de períodos mensais.
type PeriodoUseCase struct {
	periodos repository.PeriodoRepository
}

// NewPeriodoUseCase constrói o caso de uso de períodos.
func NewPeriodoUseCase(p repository.PeriodoRepository) *PeriodoUseCase {
	return &PeriodoUseCase{periodos: p}
}

// Create registra um período. O mês e o ano são sempre os correntes em São
// Paulo; só o nome de exibição é livre (vazio recebe "Janeiro 2025" etc).
func (uc *PeriodoUseCase) Create(in dto.CreatePeriodoRequest) (*dto.PeriodoResponse, error) {
	nomePadrao, mes, ano := brformat.PeriodoAtual()
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		nome = nomePadrao
	}
	p := &entity.Periodo{
		ID:       uuid.New().String(),
		Nome:     nome,
		Mes:      mes,
		Ano:      ano,
		CriadoEm: time.Now(),
	}
	if err := uc.periodos.Create(p); err != nil {
		return nil, err
	}
	return toPeriodoResponse(p), nil
}

// List devolve os períodos do mais recente para o mais antigo.
func (uc *PeriodoUseCase) List() ([]dto.PeriodoResponse, error) {
	list, err := uc.periodos.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PeriodoResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toPeriodoResponse(p))
	}
	return out, nil
}

// GarantirAtual devolve o período do mês corrente, criando-o se ainda não
// existir. Chamado no start e no primeiro acesso de cada mês.
func (uc *PeriodoUseCase) GarantirAtual() (*dto.PeriodoResponse, error) {
	nome, mes, ano := brformat.PeriodoAtual()
	list, err := uc.periodos.List()
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.Mes == mes && p.Ano == ano {
			return toPeriodoResponse(p), nil
		}
	}
	p := &entity.Periodo{
		ID:       uuid.New().String(),
		Nome:     nome,
		Mes:      mes,
		Ano:      ano,
		CriadoEm: time.Now(),
	}
	if err := uc.periodos.Create(p); err != nil {
		return nil, err
	}
	return toPeriodoResponse(p), nil
}

// Get busca um período por ID.
func (uc *PeriodoUseCase) Get(id string) (*dto.PeriodoResponse, error) {
	p, err := uc.periodos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPeriodoResponse(p), nil
}

func toPeriodoResponse(p *entity.Periodo) *dto.PeriodoResponse {
	return &dto.PeriodoResponse{ID: p.ID, Nome: p.Nome, Mes: p.Mes, Ano: p.Ano, CriadoEm: p.CriadoEm}
}
