package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")

	// Reserva e edição de pedidos.
	ErrPedidoJaExiste    = errors.New("já existe um pedido com este número no período")
	ErrPedidoJaReservado = errors.New("pedido reservado por outro usuário")
	ErrPedidoBloqueado   = errors.New("pedido em edição por outro usuário")
	ErrEdicaoEmAndamento = errors.New("finalize a edição do pedido atual primeiro")
	ErrSemLease          = errors.New("nenhuma edição em andamento para este pedido")
	ErrSemPermissao      = errors.New("sem permissão para editar este campo")
	ErrCamposIncompletos = errors.New("preencha pelo menos cliente e produto")
)
