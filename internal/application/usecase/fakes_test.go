package usecase_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cvergaraq/bodega-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los repositorios: suficiente para verificar las reglas
// de los casos de uso CRUD sin PostgreSQL.
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

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List(_, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
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

// fakeLotRepo vacío: los casos de uso CRUD solo lo tocan vía el stock derivado.
type fakeLotRepo struct{}

func (r *fakeLotRepo) Create(*entity.Lot) error { return nil }

func (r *fakeLotRepo) GetByID(string) (*entity.Lot, error) { return nil, nil }

func (r *fakeLotRepo) ListActiveByProductForUpdate(string) ([]*entity.Lot, error) {
	return nil, nil
}

func (r *fakeLotRepo) ListActiveByContainer(string) ([]*entity.Lot, error) { return nil, nil }

func (r *fakeLotRepo) ListExpiredForUpdate(time.Time) ([]*entity.Lot, error) { return nil, nil }

func (r *fakeLotRepo) UpdateQuantity(string, decimal.Decimal) error { return nil }

func (r *fakeLotRepo) SumActiveByProduct(string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (r *fakeLotRepo) NextExpiry(string) (*time.Time, error) { return nil, nil }
