package entity

import "time"

// Location representa una zona física de la bodega (ej. "Cámara de Frío 1").
// Contiene cero o más contenedores; al eliminarla se eliminan en cascada.
type Location struct {
	ID          string
	Name        string // único
	Description string
	CreatedAt   time.Time
}
