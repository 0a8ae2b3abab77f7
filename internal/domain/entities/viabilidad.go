package entities

import "time"

// ProcesoViabilidad is the approval-process state of a viability request
// (ID_ProcesoViabilidad in the console).
//
// State 4 covers both a rejected request and an operator cancellation; the
// Cancelada flag on the record tells them apart.
type ProcesoViabilidad int

const (
	ProcesoPorAprobar ProcesoViabilidad = 1
	ProcesoEnProceso  ProcesoViabilidad = 2
	ProcesoAprobada   ProcesoViabilidad = 3
	ProcesoNoAprobada ProcesoViabilidad = 4
)

func (p ProcesoViabilidad) Valid() bool {
	return p >= ProcesoPorAprobar && p <= ProcesoNoAprobada
}

// IsTerminal reports whether no further transition is possible.
func (p ProcesoViabilidad) IsTerminal() bool {
	return p == ProcesoAprobada || p == ProcesoNoAprobada
}

func (p ProcesoViabilidad) String() string {
	switch p {
	case ProcesoPorAprobar:
		return "PorAprobar"
	case ProcesoEnProceso:
		return "Proceso"
	case ProcesoAprobada:
		return "Aprobada"
	case ProcesoNoAprobada:
		return "NoAprobada"
	}
	return "Desconocido"
}

// ViabilidadTarget names the destination of a ledger transition.
type ViabilidadTarget string

const (
	TargetProceso    ViabilidadTarget = "Proceso"
	TargetAprobada   ViabilidadTarget = "Aprobada"
	TargetNoAprobada ViabilidadTarget = "NoAprobada"
	TargetCancelada  ViabilidadTarget = "Cancelada"
)

// Proceso returns the stored state a target resolves to.
func (t ViabilidadTarget) Proceso() ProcesoViabilidad {
	switch t {
	case TargetProceso:
		return ProcesoEnProceso
	case TargetAprobada:
		return ProcesoAprobada
	case TargetNoAprobada, TargetCancelada:
		return ProcesoNoAprobada
	}
	return 0
}

func (t ViabilidadTarget) Valid() bool {
	return t.Proceso() != 0
}

var viabilidadTransitions = map[ProcesoViabilidad]map[ViabilidadTarget]bool{
	ProcesoPorAprobar: {TargetProceso: true, TargetAprobada: true, TargetNoAprobada: true, TargetCancelada: true},
	ProcesoEnProceso:  {TargetAprobada: true, TargetNoAprobada: true, TargetCancelada: true},
	ProcesoAprobada:   {},
	ProcesoNoAprobada: {},
}

// CanTransitionViabilidad reports whether the ledger allows from -> to.
func CanTransitionViabilidad(from ProcesoViabilidad, to ViabilidadTarget) bool {
	return viabilidadTransitions[from][to]
}

// Punto is one physical endpoint (A or Z) of a viability request.
type Punto struct {
	IDAreaDesarrollo int64   `json:"id_area_desarrollo"`
	IDUbicacion      int64   `json:"id_ubicacion"`
	IDModulo         int64   `json:"id_modulo"`
	Latitud          float64 `json:"latitud"`
	Longitud         float64 `json:"longitud"`
}

// Viabilidad is a feasibility request to connect two physical points.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (id_proceso_viabilidad-index): id_proceso_viabilidad
type Viabilidad struct {
	ID                int64             `json:"id_viabilidad"`
	Nombre            string            `json:"nombre"`
	NumeroDocumento   string            `json:"numero_documento"`
	Proceso           ProcesoViabilidad `json:"id_proceso_viabilidad"`
	Cancelada         bool              `json:"cancelada"`
	PuntoA            Punto             `json:"punto_a"`
	PuntoZ            Punto             `json:"punto_z"`
	IDEmpresa         int64             `json:"id_empresa"`
	IDEmpresaConexion int64             `json:"id_empresa_conexion"`
	IDTipoConexion    int64             `json:"id_tipo_conexion"`
	IDTipoEnlace      int64             `json:"id_tipo_enlace"`
	MRC               float64           `json:"mrc"`
	NRC               float64           `json:"nrc"`
	MRCCosto          float64           `json:"mrc_costo"`
	NRCCosto          float64           `json:"nrc_costo"`
	Observaciones     string            `json:"observaciones"`
	MotivoCancelacion string            `json:"motivo_cancelacion,omitempty"`
	IDOrdenServicio   int64             `json:"id_orden_servicio"`
	FechaCreacion     time.Time         `json:"fecha_creacion"`
	FechaVencimiento  time.Time         `json:"fecha_vencimiento"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// EligibleForOrder reports whether a service order may be derived from v.
func (v Viabilidad) EligibleForOrder() bool {
	return v.Proceso == ProcesoAprobada && !v.Cancelada && v.IDOrdenServicio == 0
}

// EligibleForPairing reports whether v may fill a P2P slot: pending or in
// process, or completed with a service order already issued.
func (v Viabilidad) EligibleForPairing() bool {
	if v.Cancelada {
		return false
	}
	switch v.Proceso {
	case ProcesoPorAprobar, ProcesoEnProceso:
		return true
	case ProcesoAprobada:
		return v.IDOrdenServicio != 0
	}
	return false
}

// ViabilidadFilter narrows a queue listing. Zero values mean "any".
type ViabilidadFilter struct {
	IDEmpresa         int64
	IDTipoEnlace      int64
	SinOrden          bool
	IncluirCanceladas bool
}

// ViabilidadStateChange is the write half of a ledger transition.
type ViabilidadStateChange struct {
	To        ProcesoViabilidad
	Cancelada bool
	Motivo    string
	At        time.Time
}
