package auth

import "github.com/cvergaraq/bodega-api/internal/domain/entity"

// Capability es un permiso concreto dentro de la aplicación.
type Capability uint8

const (
	// CapOperarBodega registrar movimientos y consultar inventario físico.
	CapOperarBodega Capability = 1 << iota
	// CapAdministrar catálogo, zonas/contenedores, baja por vencimiento y
	// dashboard operativo.
	CapAdministrar
	// CapGerencia historial, exportaciones, dashboard de gerencia y
	// gestión de colaboradores.
	CapGerencia
)

// CapabilitySet conjunto de permisos de un rol (bitmask).
type CapabilitySet uint8

// Has indica si el conjunto incluye la capacidad dada.
func (s CapabilitySet) Has(c Capability) bool {
	return s&CapabilitySet(c) != 0
}

// CapabilitiesFor es la política de autorización completa: mapea un rol a su
// conjunto de capacidades. Se evalúa una sola vez por request (middleware);
// los handlers solo declaran la capacidad que exigen.
//
// gerente incluye lo de admin, y admin lo de bodeguero.
func CapabilitiesFor(role string) CapabilitySet {
	switch role {
	case entity.RoleBodeguero:
		return CapabilitySet(CapOperarBodega)
	case entity.RoleAdmin:
		return CapabilitySet(CapOperarBodega | CapAdministrar)
	case entity.RoleGerente:
		return CapabilitySet(CapOperarBodega | CapAdministrar | CapGerencia)
	default:
		return 0
	}
}
