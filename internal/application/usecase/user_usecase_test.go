package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cvergaraq/bodega-api/internal/application/usecase"
	"github.com/cvergaraq/bodega-api/internal/domain"
	"github.com/cvergaraq/bodega-api/internal/domain/entity"
)

func collaborator(id, username string) *entity.User {
	return &entity.User{
		ID:        id,
		Username:  username,
		Name:      username,
		Role:      entity.RoleBodeguero,
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// Quien registró movimientos queda en el historial: el borrado se rechaza y
// el colaborador queda intacto.
func TestUserDelete_ConHistorialSeRechaza(t *testing.T) {
	movRepo := &fakeMovementRepo{movements: []*entity.Movement{
		{ID: "m-1", ProductID: "p-1", UserID: "u-1", Type: entity.MovementTypeVenta, Quantity: decimal.NewFromInt(2)},
	}}
	repo := newFakeUserRepo(collaborator("u-1", "mcastro"))
	uc := usecase.NewUserUseCase(repo, movRepo)

	err := uc.Delete("u-1", "gerente-id")
	assert.ErrorIs(t, err, domain.ErrHasHistory)

	survivor, _ := repo.GetByID("u-1")
	require.NotNil(t, survivor, "el colaborador con historial no se toca")
}

func TestUserDelete_SinHistorialElimina(t *testing.T) {
	repo := newFakeUserRepo(collaborator("u-1", "mcastro"))
	uc := usecase.NewUserUseCase(repo, &fakeMovementRepo{})

	require.NoError(t, uc.Delete("u-1", "gerente-id"))

	gone, _ := repo.GetByID("u-1")
	assert.Nil(t, gone)
}

func TestUserDelete_AutoBorradoSeRechaza(t *testing.T) {
	repo := newFakeUserRepo(collaborator("u-1", "mcastro"))
	uc := usecase.NewUserUseCase(repo, &fakeMovementRepo{})

	assert.ErrorIs(t, uc.Delete("u-1", "u-1"), domain.ErrConflict)
}

func TestUserDelete_NoExiste(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), &fakeMovementRepo{})
	assert.ErrorIs(t, uc.Delete("no-existe", "gerente-id"), domain.ErrUserNotFound)
}
