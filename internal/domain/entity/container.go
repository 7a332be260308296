package entity

import "time"

// Container representa una ubicación concreta dentro de una zona (pallet,
// estante, bin). El nombre es único dentro de su Location. Al eliminarlo,
// los lotes que lo referencian quedan "sin asignar" (la referencia se anula,
// el lote sobrevive).
type Container struct {
	ID         string
	Name       string
	LocationID string
	CreatedAt  time.Time
}
