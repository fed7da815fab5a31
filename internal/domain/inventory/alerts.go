package inventory

import (
	"fmt"
	"math"
	"math/bits"
)

// AlertKind clasifica una alerta de umbral.
type AlertKind string

const (
	AlertNearCapacity AlertKind = "CAPACIDADE"
	AlertNearMinimum  AlertKind = "MINIMO"
)

// Umbrales: entrada alerta desde 80% del máximo; saída alerta hasta 120% del mínimo.
const (
	nearCapacityPercent = 80
	nearMinimumPercent  = 120
)

// Alert es una anotación consultiva; nunca bloquea ni revierte un movimiento.
type Alert struct {
	Kind        AlertKind
	ProductName string
	Quantity    int64
	Bound       int64
	Percent     float64 // solo para AlertNearCapacity, con un decimal
	Message     string
}

// EvaluateEntry devuelve una alerta si candidate alcanza el 80% de maximum.
func EvaluateEntry(name string, candidate, maximum int64) *Alert {
	if maximum <= 0 {
		return nil
	}
	if cmpScaled(candidate, 100, maximum, nearCapacityPercent) < 0 {
		return nil
	}
	pct := math.Round(float64(candidate)*1000/float64(maximum)) / 10
	return &Alert{
		Kind:        AlertNearCapacity,
		ProductName: name,
		Quantity:    candidate,
		Bound:       maximum,
		Percent:     pct,
		Message:     fmt.Sprintf("ATENÇÃO: Estoque de '%s' está em %.1f%% da capacidade máxima!", name, pct),
	}
}

// EvaluateExit devuelve una alerta si candidate queda en o abajo de minimum * 1.2.
func EvaluateExit(name string, candidate, minimum int64) *Alert {
	if cmpScaled(candidate, 100, minimum, nearMinimumPercent) > 0 {
		return nil
	}
	return &Alert{
		Kind:        AlertNearMinimum,
		ProductName: name,
		Quantity:    candidate,
		Bound:       minimum,
		Message:     fmt.Sprintf("ATENÇÃO: Estoque de '%s' está próximo do mínimo! Atual: %d, Mínimo: %d", name, candidate, minimum),
	}
}

// NearMinimum aplica la misma regla de EvaluateExit sin construir la alerta.
func NearMinimum(quantity, minimum int64) bool {
	return cmpScaled(quantity, 100, minimum, nearMinimumPercent) <= 0
}

// cmpScaled compara a*x con b*y en 128 bits (x, y > 0), sin desbordar para
// cualquier int64. Devuelve -1, 0 o 1.
func cmpScaled(a, x, b, y int64) int {
	switch {
	case a < 0 && b >= 0:
		return -1
	case a >= 0 && b < 0:
		return 1
	case a < 0 && b < 0:
		return -cmpScaled(-a, x, -b, y)
	}
	ahi, alo := bits.Mul64(uint64(a), uint64(x))
	bhi, blo := bits.Mul64(uint64(b), uint64(y))
	switch {
	case ahi < bhi || (ahi == bhi && alo < blo):
		return -1
	case ahi > bhi || (ahi == bhi && alo > blo):
		return 1
	}
	return 0
}
