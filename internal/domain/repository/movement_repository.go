package repository

import (
	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// List busca por nombre/código de producto o tipo (search vacío = todos),
	// ordenado por fecha descendente.
	List(search string, limit, offset int) ([]*entity.Movement, error)
	// SumQuantityByTypes suma cantidades de los tipos dados para un producto
	// (stock derivado de productos sin gestión de lotes).
	SumQuantityByTypes(productID string, types []string) (decimal.Decimal, error)
	ExistsByProduct(productID string) (bool, error)
	ExistsByUser(userID string) (bool, error)
}
