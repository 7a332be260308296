package inventory_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/domain/entity"
	"github.com/cvergaraq/bodega-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios y del runner transaccional.
// El runner ejecuta el callback directo sobre los mismos fakes: suficiente
// para verificar la lógica de los casos de uso sin PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]*entity.Product{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(_ string, _, _ int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

type fakeLotRepo struct {
	lots []*entity.Lot
}

func (r *fakeLotRepo) Create(lot *entity.Lot) error {
	r.lots = append(r.lots, lot)
	return nil
}

func (r *fakeLotRepo) GetByID(id string) (*entity.Lot, error) {
	for _, l := range r.lots {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}

// fefoSort replica el orden de las consultas reales: vencimiento ascendente,
// creación como desempate.
func fefoSort(lots []*entity.Lot) {
	sort.SliceStable(lots, func(i, j int) bool {
		if !lots[i].ExpiryDate.Equal(lots[j].ExpiryDate) {
			return lots[i].ExpiryDate.Before(lots[j].ExpiryDate)
		}
		return lots[i].CreatedAt.Before(lots[j].CreatedAt)
	})
}

func (r *fakeLotRepo) ListActiveByProductForUpdate(productID string) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.lots {
		if l.ProductID == productID && l.Quantity.GreaterThan(decimal.Zero) {
			out = append(out, l)
		}
	}
	fefoSort(out)
	return out, nil
}

func (r *fakeLotRepo) ListActiveByContainer(containerID string) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.lots {
		if l.ContainerID == containerID && l.Quantity.GreaterThan(decimal.Zero) {
			out = append(out, l)
		}
	}
	fefoSort(out)
	return out, nil
}

func (r *fakeLotRepo) ListExpiredForUpdate(before time.Time) ([]*entity.Lot, error) {
	var out []*entity.Lot
	for _, l := range r.lots {
		if l.Quantity.GreaterThan(decimal.Zero) && l.ExpiryDate.Before(before) {
			out = append(out, l)
		}
	}
	fefoSort(out)
	return out, nil
}

func (r *fakeLotRepo) UpdateQuantity(lotID string, quantity decimal.Decimal) error {
	for _, l := range r.lots {
		if l.ID == lotID {
			l.Quantity = quantity
		}
	}
	return nil
}

func (r *fakeLotRepo) SumActiveByProduct(productID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, l := range r.lots {
		if l.ProductID == productID {
			total = total.Add(l.Quantity)
		}
	}
	return total, nil
}

func (r *fakeLotRepo) NextExpiry(productID string) (*time.Time, error) {
	var next *time.Time
	for _, l := range r.lots {
		if l.ProductID != productID || !l.Quantity.GreaterThan(decimal.Zero) {
			continue
		}
		if next == nil || l.ExpiryDate.Before(*next) {
			expiry := l.ExpiryDate
			next = &expiry
		}
	}
	return next, nil
}

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) Create(m *entity.Movement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *fakeMovementRepo) List(_ string, _, _ int) ([]*entity.Movement, error) {
	return r.movements, nil
}

func (r *fakeMovementRepo) SumQuantityByTypes(productID string, types []string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.movements {
		if m.ProductID != productID {
			continue
		}
		for _, t := range types {
			if m.Type == t {
				total = total.Add(m.Quantity)
			}
		}
	}
	return total, nil
}

func (r *fakeMovementRepo) ExistsByProduct(productID string) (bool, error) {
	for _, m := range r.movements {
		if m.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMovementRepo) ExistsByUser(userID string) (bool, error) {
	for _, m := range r.movements {
		if m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

// byType filtra los movimientos registrados por tipo.
func (r *fakeMovementRepo) byType(movType string) []*entity.Movement {
	var out []*entity.Movement
	for _, m := range r.movements {
		if m.Type == movType {
			out = append(out, m)
		}
	}
	return out
}

type fakeTxRunner struct {
	movRepo     *fakeMovementRepo
	lotRepo     *fakeLotRepo
	productRepo *fakeProductRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	lotRepo repository.LotRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(r.movRepo, r.lotRepo, r.productRepo)
}
