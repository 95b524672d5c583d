package importacao

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/controle-pedidos-api/internal/application/dto"
	"github.com/jhoicas/controle-pedidos-api/internal/application/pedidos"
	"github.com/jhoicas/controle-pedidos-api/internal/domain"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/entity"
	"github.com/jhoicas/controle-pedidos-api/internal/domain/repository"
	"github.com/jhoicas/controle-pedidos-api/pkg/brformat"
)

// UseCase casos de uso de importação CSV.
type UseCase struct {
	pedidos     repository.PedidoRepository
	vendedores  repository.VendedorRepository
	notificador pedidos.Notificador
}

// NewUseCase constrói o caso de uso de importação.
func NewUseCase(p repository.PedidoRepository, v repository.VendedorRepository, n pedidos.Notificador) *UseCase {
	return &UseCase{pedidos: p, vendedores: v, notificador: n}
}

// PreviewPedidos só valida o arquivo, sem gravar nada.
func (uc *UseCase) PreviewPedidos(r io.Reader) (*dto.PreviewImportacaoResponse, error) {
	return ParsePedidosCSV(r)
}

// PreviewVendedores só valida o arquivo, sem gravar nada.
func (uc *UseCase) PreviewVendedores(r io.Reader) (*dto.PreviewVendedoresResponse, error) {
	return ParseVendedoresCSV(r)
}

// ImportarPedidos grava as linhas válidas uma a uma no período indicado.
// Cada linha é independente: duplicada contra o banco vira aviso
// ("já existe - ignorado") e a importação segue até o fim. Os erros de
// parse do preview são repassados na resposta junto com os de gravação.
func (uc *UseCase) ImportarPedidos(ctx context.Context, usuario *entity.Usuario, periodoID string, r io.Reader) (*dto.ResultadoImportacaoResponse, error) {
	if periodoID == "" {
		return nil, domain.ErrInvalidInput
	}
	preview, err := ParsePedidosCSV(r)
	if err != nil {
		return nil, err
	}

	res := &dto.ResultadoImportacaoResponse{Erros: append([]string{}, preview.Erros...)}
	res.ComErro = len(preview.Erros)

	for _, imp := range preview.Validos {
		existente, err := uc.pedidos.FindByNumero(periodoID, imp.NrPedido)
		if err != nil {
			res.ComErro++
			res.Erros = append(res.Erros, fmt.Sprintf("Pedido %s: %v", imp.NrPedido, err))
			continue
		}
		if existente != nil {
			res.ComErro++
			res.Erros = append(res.Erros, fmt.Sprintf("Pedido %s já existe - ignorado", imp.NrPedido))
			continue
		}

		now := time.Now()
		pedido := &entity.Pedido{
			ID:           uuid.New().String(),
			PeriodoID:    periodoID,
			NrPedido:     imp.NrPedido,
			Cliente:      imp.Cliente,
			Medico:       imp.Medico,
			Vendedor:     imp.Vendedor,
			Data:         imp.Data,
			Produto:      imp.Produto,
			Qtd:          imp.Qtd,
			Total:        brformat.ParseCurrency(imp.Total),
			Rastreio:     imp.Rastreio,
			Status:       imp.Status,
			CriadoPor:    usuario.ID,
			CriadoEm:     now,
			AtualizadoEm: now,
		}
		if err := uc.pedidos.Create(pedido); err != nil {
			res.ComErro++
			if errors.Is(err, domain.ErrPedidoJaReservado) {
				// Corrida entre a pré-checagem e o insert.
				res.Erros = append(res.Erros, fmt.Sprintf("Pedido %s já existe - ignorado", imp.NrPedido))
			} else {
				res.Erros = append(res.Erros, fmt.Sprintf("Pedido %s: %v", imp.NrPedido, err))
			}
			continue
		}
		res.Importados++
	}

	if res.Importados > 0 {
		uc.notificador.PedidosAlterados(ctx, "importacao")
	}
	return res, nil
}

// ImportarVendedores grava os nomes válidos, ignorando os já cadastrados.
func (uc *UseCase) ImportarVendedores(ctx context.Context, r io.Reader) (*dto.ResultadoImportacaoResponse, error) {
	preview, err := ParseVendedoresCSV(r)
	if err != nil {
		return nil, err
	}

	res := &dto.ResultadoImportacaoResponse{Erros: append([]string{}, preview.Erros...)}
	res.ComErro = len(preview.Erros)

	for _, nome := range preview.Validos {
		existente, err := uc.vendedores.FindByNome(nome)
		if err != nil {
			res.ComErro++
			res.Erros = append(res.Erros, fmt.Sprintf("Vendedor %s: %v", nome, err))
			continue
		}
		if existente != nil {
			res.ComErro++
			res.Erros = append(res.Erros, fmt.Sprintf("Vendedor %s já existe - ignorado", nome))
			continue
		}
		vendedor := &entity.Vendedor{
			ID:       uuid.New().String(),
			Nome:     nome,
			Ativo:    true,
			CriadoEm: time.Now(),
		}
		if err := uc.vendedores.Create(vendedor); err != nil {
			res.ComErro++
			res.Erros = append(res.Erros, fmt.Sprintf("Vendedor %s: %v", nome, err))
			continue
		}
		res.Importados++
	}
	return res, nil
}
