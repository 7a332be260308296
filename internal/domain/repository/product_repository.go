package repository

import "github.com/cvergaraq/bodega-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	Update(product *entity.Product) error
	// List busca por nombre o código (search vacío = todos), ordenado por nombre.
	List(search string, limit, offset int) ([]*entity.Product, error)
	// Delete retorna domain.ErrHasHistory si existen movimientos del producto.
	Delete(id string) error
}
