package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionViabilidad(t *testing.T) {
	cases := []struct {
		from ProcesoViabilidad
		to   ViabilidadTarget
		want bool
	}{
		{ProcesoPorAprobar, TargetProceso, true},
		{ProcesoPorAprobar, TargetAprobada, true},
		{ProcesoPorAprobar, TargetNoAprobada, true},
		{ProcesoPorAprobar, TargetCancelada, true},
		{ProcesoEnProceso, TargetAprobada, true},
		{ProcesoEnProceso, TargetNoAprobada, true},
		{ProcesoEnProceso, TargetCancelada, true},
		{ProcesoEnProceso, TargetProceso, false},
		{ProcesoAprobada, TargetCancelada, false},
		{ProcesoAprobada, TargetNoAprobada, false},
		{ProcesoNoAprobada, TargetAprobada, false},
		{ProcesoNoAprobada, TargetCancelada, false},
		{ProcesoViabilidad(9), TargetAprobada, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, CanTransitionViabilidad(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestViabilidadTarget_Proceso(t *testing.T) {
	assert.Equal(t, ProcesoEnProceso, TargetProceso.Proceso())
	assert.Equal(t, ProcesoAprobada, TargetAprobada.Proceso())
	assert.Equal(t, ProcesoNoAprobada, TargetNoAprobada.Proceso())
	assert.Equal(t, ProcesoNoAprobada, TargetCancelada.Proceso())
	assert.False(t, ViabilidadTarget("Completada").Valid())
}

func TestViabilidad_Eligibility(t *testing.T) {
	aprobada := Viabilidad{Proceso: ProcesoAprobada}
	assert.True(t, aprobada.EligibleForOrder())
	assert.False(t, aprobada.EligibleForPairing())

	conOrden := Viabilidad{Proceso: ProcesoAprobada, IDOrdenServicio: 7}
	assert.False(t, conOrden.EligibleForOrder())
	assert.True(t, conOrden.EligibleForPairing())

	assert.True(t, Viabilidad{Proceso: ProcesoPorAprobar}.EligibleForPairing())
	assert.True(t, Viabilidad{Proceso: ProcesoEnProceso}.EligibleForPairing())
	assert.False(t, Viabilidad{Proceso: ProcesoNoAprobada}.EligibleForPairing())
	assert.False(t, Viabilidad{Proceso: ProcesoEnProceso, Cancelada: true}.EligibleForPairing())
}
