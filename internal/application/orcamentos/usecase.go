// Package orcamentos implementa o ciclo de vida de orçamentos comerciais
// e a geração do PDF "Commercial Invoice".
package orcamentos

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/repository"
	"github.com/jhoicas/controle-pedidos-api/pkg/brformat"
	"github.com/jhoicas/controle-pedidos-api/pkg/config"
)

// GeradorPDF produz o PDF de um orçamento. Implementado na infraestrutura
// (maroto); a aplicação só conhece bytes.
type GeradorPDF interface {
	Gerar(o *entity.Orcamento, logoBase64 string) ([]byte, error)
}

// UseCase casos de uso de orçamentos.
type UseCase struct {
	orcamentos repository.OrcamentoRepository
	clientes   repository.ClienteRepository
	pdf        GeradorPDF
	empresa    config.EmpresaConfig
}

// NewUseCase constrói o caso de uso de orçamentos.
func NewUseCase(o repository.OrcamentoRepository, c repository.ClienteRepository, pdf GeradorPDF, empresa config.EmpresaConfig) *UseCase {
	return &UseCase{orcamentos: o, clientes: c, pdf: pdf, empresa: empresa}
}

// proximoNumero gera ORC{YYYY}{MM}{NNN} com sequência mensal. A contagem é
// feita no banco na hora da criação; dois orçamentos criados no mesmo
// instante podem colidir no número, aceito para o volume deste sistema.
func (uc *UseCase) proximoNumero() (string, error) {
	_, mes, ano := brformat.PeriodoAtual()
	count, err := uc.orcamentos.CountByMesAno(mes, ano)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("ORC%04d%02d%03d", ano, mes, count+1), nil
}

// montar valida a entrada e materializa a entidade com os totais recalculados.
func (uc *UseCase) montar(id, criadoPor string, in dto.SaveOrcamentoRequest) (*entity.Orcamento, error) {
	if in.ClienteID == "" || len(in.Itens) == 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.OrcamentoRascunho
	}
	if !entity.IsOrcamentoStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	cliente, err := uc.clientes.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	o := &entity.Orcamento{
		ID:              id,
		Numero:          in.Numero,
		Data:            brformat.NormalizeDate(in.Data),
		ClienteID:       cliente.ID,
		ClienteNome:     cliente.RazaoSocial,
		EmpresaNome:     defaultStr(in.EmpresaNome, uc.empresa.Nome),
		EmpresaEndereco: defaultStr(in.EmpresaEndereco, uc.empresa.Endereco),
		EmpresaCidade:   defaultStr(in.EmpresaCidade, uc.empresa.Cidade),
		EmpresaTelefone: defaultStr(in.EmpresaTelefone, uc.empresa.Telefone),
		EmpresaEmail:    defaultStr(in.EmpresaEmail, uc.empresa.Email),
		Observacoes:     in.Observacoes,
		Status:          status,
		CriadoPor:       criadoPor,
	}
	for _, item := range in.Itens {
		if item.Descricao == "" || item.Qtd <= 0 {
			return nil, domain.ErrInvalidInput
		}
		o.Itens = append(o.Itens, entity.OrcamentoItem{
			ID:            uuid.New().String(),
			OrcamentoID:   id,
			Descricao:     item.Descricao,
			Qtd:           item.Qtd,
			PrecoUnitario: brformat.ParseCurrency(item.PrecoUnitario),
		})
	}
	o.ValorTotal = o.CalcularTotal()
	return o, nil
}

// Create grava um orçamento novo; número vazio recebe a sequência mensal.
func (uc *UseCase) Create(criadoPor string, in dto.SaveOrcamentoRequest) (*dto.OrcamentoResponse, error) {
	o, err := uc.montar(uuid.New().String(), criadoPor, in)
	if err != nil {
		return nil, err
	}
	if o.Numero == "" {
		numero, err := uc.proximoNumero()
		if err != nil {
			return nil, err
		}
		o.Numero = numero
	}
	o.CriadoEm = time.Now()
	if err := uc.orcamentos.Create(o); err != nil {
		return nil, err
	}
	return toOrcamentoResponse(o, true), nil
}

// Update regrava cabeça e itens. O número nunca muda depois de criado.
func (uc *UseCase) Update(id string, in dto.SaveOrcamentoRequest) (*dto.OrcamentoResponse, error) {
	atual, err := uc.orcamentos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, domain.ErrNotFound
	}
	o, err := uc.montar(id, atual.CriadoPor, in)
	if err != nil {
		return nil, err
	}
	o.Numero = atual.Numero
	o.CriadoEm = atual.CriadoEm
	if err := uc.orcamentos.Update(o); err != nil {
		return nil, err
	}
	return toOrcamentoResponse(o, true), nil
}

// Get devolve o orçamento completo, com itens.
func (uc *UseCase) Get(id string) (*dto.OrcamentoResponse, error) {
	o, err := uc.orcamentos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return toOrcamentoResponse(o, true), nil
}

// List devolve as cabeças, mais recente primeiro.
func (uc *UseCase) List() ([]dto.OrcamentoResponse, error) {
	list, err := uc.orcamentos.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrcamentoResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrcamentoResponse(o, false))
	}
	return out, nil
}

// Delete remove o orçamento e seus itens.
func (uc *UseCase) Delete(id string) error {
	o, err := uc.orcamentos.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrNotFound
	}
	return uc.orcamentos.Delete(id)
}

// GerarPDF produz o Commercial Invoice do orçamento.
func (uc *UseCase) GerarPDF(id string, in dto.GerarPDFRequest) ([]byte, string, error) {
	o, err := uc.orcamentos.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if o == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.pdf.Gerar(o, in.LogoBase64)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("orcamento-%s.pdf", o.Numero), nil
}

func defaultStr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func toOrcamentoResponse(o *entity.Orcamento, comItens bool) *dto.OrcamentoResponse {
	resp := &dto.OrcamentoResponse{
		ID:              o.ID,
		Numero:          o.Numero,
		Data:            o.Data,
		ClienteID:       o.ClienteID,
		ClienteNome:     o.ClienteNome,
		EmpresaNome:     o.EmpresaNome,
		EmpresaEndereco: o.EmpresaEndereco,
		EmpresaCidade:   o.EmpresaCidade,
		EmpresaTelefone: o.EmpresaTelefone,
		EmpresaEmail:    o.EmpresaEmail,
		Observacoes:     o.Observacoes,
		ValorTotal:      o.ValorTotal.StringFixed(2),
		Status:          o.Status,
		CriadoEm:        o.CriadoEm,
	}
	if comItens {
		for _, item := range o.Itens {
			resp.Itens = append(resp.Itens, dto.OrcamentoItemResponse{
				ID:            item.ID,
				Descricao:     item.Descricao,
				Qtd:           item.Qtd,
				PrecoUnitario: item.PrecoUnitario.StringFixed(2),
				PrecoTotal:    item.PrecoTotal.StringFixed(2),
			})
		}
	}
	return resp
}
