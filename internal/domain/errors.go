package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrHasHistory        = errors.New("tiene historial de movimientos, no se puede eliminar")
	ErrMissingLossReason = errors.New("la razón de la merma es obligatoria")
	ErrMissingExpiry     = errors.New("falta la fecha de vencimiento del lote")
	ErrNoActiveLots      = errors.New("el producto gestiona lotes pero no tiene lotes físicos")
)
