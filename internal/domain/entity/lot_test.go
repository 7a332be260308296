package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cvergaraq/bodega-api/internal/domain/entity"
)

func TestAlertStatus_Clasificacion(t *testing.T) {
	today := time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)

	cases := []struct {
		name          string
		expiresInDays int
		want          string
	}{
		{"vencido ayer", -1, entity.AlertVencido},
		{"vencido hace un mes", -30, entity.AlertVencido},
		{"vence hoy", 0, entity.AlertHoy},
		{"vence mañana", 1, entity.AlertCritico},
		{"vence en 7 días (borde)", 7, entity.AlertCritico},
		{"vence en 8 días", 8, entity.AlertOK},
		{"vence en un año", 365, entity.AlertOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lot := &entity.Lot{ExpiryDate: entity.DateOnly(today).AddDate(0, 0, tc.expiresInDays)}
			assert.Equal(t, tc.want, lot.AlertStatus(today))
		})
	}
}

// La hora del día no cambia la clasificación: solo cuenta la fecha.
func TestAlertStatus_IgnoraLaHora(t *testing.T) {
	expiry := time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
	lot := &entity.Lot{ExpiryDate: expiry}

	lateSameDay := time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local)
	assert.Equal(t, entity.AlertHoy, lot.AlertStatus(lateSameDay))
}

func TestUnitMeasureLabel(t *testing.T) {
	p := &entity.Product{UnitMeasure: entity.UnitKilogramos}
	assert.Equal(t, "Kilogramos", p.UnitMeasureLabel())

	desconocida := &entity.Product{UnitMeasure: "XX"}
	assert.Equal(t, "XX", desconocida.UnitMeasureLabel(), "unidad desconocida se devuelve tal cual")
}
