package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/domain/entity"
)

// LotRepository define el puerto de persistencia para Lot.
//
// Todas las enumeraciones de lotes activos respetan el orden FEFO:
// fecha de vencimiento ascendente y, a igual vencimiento, fecha de creación
// ascendente (primero ingresado, primero consumido).
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	// ListActiveByProductForUpdate devuelve los lotes con cantidad > 0 en
	// orden FEFO, bloqueando las filas (SELECT FOR UPDATE); usar solo dentro
	// de una transacción.
	ListActiveByProductForUpdate(productID string) ([]*entity.Lot, error)
	// ListActiveByContainer devuelve los lotes activos de un contenedor en orden FEFO.
	ListActiveByContainer(containerID string) ([]*entity.Lot, error)
	// ListExpiredForUpdate devuelve bloqueados los lotes activos cuyo
	// vencimiento es anterior a before (exclusivo).
	ListExpiredForUpdate(before time.Time) ([]*entity.Lot, error)
	// UpdateQuantity fija la cantidad de un lote (solo puede decrecer).
	UpdateQuantity(lotID string, quantity decimal.Decimal) error
	// SumActiveByProduct devuelve el stock derivado de lotes del producto.
	SumActiveByProduct(productID string) (decimal.Decimal, error)
	// NextExpiry devuelve la fecha de vencimiento más próxima entre los lotes
	// activos del producto, o nil si no hay.
	NextExpiry(productID string) (*time.Time, error)
}
