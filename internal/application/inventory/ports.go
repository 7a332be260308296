package inventory

import (
	"context"

	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la secuencia
// verificar-descontar-registrar del motor FEFO sea atómica: o se aplican
// todas las deducciones y movimientos, o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		lotRepo repository.LotRepository,
		productRepo repository.ProductRepository,
	) error) error
}
