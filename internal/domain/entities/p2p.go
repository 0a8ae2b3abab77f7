package entities

import "time"

// EstadoP2P is the lifecycle of a point-to-point pairing.
type EstadoP2P string

const (
	EstadoP2PProceso    EstadoP2P = "proceso"
	EstadoP2PAprobado   EstadoP2P = "aprobado"
	EstadoP2PCompletado EstadoP2P = "completado"
	EstadoP2PCancelado  EstadoP2P = "cancelado"
)

func (e EstadoP2P) Valid() bool {
	switch e {
	case EstadoP2PProceso, EstadoP2PAprobado, EstadoP2PCompletado, EstadoP2PCancelado:
		return true
	}
	return false
}

func (e EstadoP2P) IsTerminal() bool {
	return e == EstadoP2PCompletado || e == EstadoP2PCancelado
}

var p2pTransitions = map[EstadoP2P]map[EstadoP2P]bool{
	EstadoP2PProceso:    {EstadoP2PAprobado: true, EstadoP2PCancelado: true},
	EstadoP2PAprobado:   {EstadoP2PCompletado: true, EstadoP2PCancelado: true},
	EstadoP2PCompletado: {},
	EstadoP2PCancelado:  {},
}

func CanTransitionP2P(from, to EstadoP2P) bool {
	return p2pTransitions[from][to]
}

// TipoP2P is the kind of shared physical infrastructure.
type TipoP2P string

const (
	TipoP2PPoste  TipoP2P = "poste"
	TipoP2PCamara TipoP2P = "camara"
	TipoP2PDucto  TipoP2P = "ducto"
)

func (t TipoP2P) Valid() bool {
	switch t {
	case TipoP2PPoste, TipoP2PCamara, TipoP2PDucto:
		return true
	}
	return false
}

// P2P binds two viability endpoints that share infrastructure. Slots hold
// viability ids; 0 means unassigned. Display data for each slot is joined
// from the referenced viability at read time (see P2PView).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (estado-index): estado
type P2P struct {
	ID                int64      `json:"id_p2p"`
	Tipo              TipoP2P    `json:"tipo_p2p"`
	Estado            EstadoP2P  `json:"estado_p2p"`
	Punto1            int64      `json:"punto1"`
	Punto2            int64      `json:"punto2"`
	FechaCreacion     time.Time  `json:"fecha_creacion"`
	FechaAprobacion   *time.Time `json:"fecha_aprobacion,omitempty"`
	FechaCompletado   *time.Time `json:"fecha_completado,omitempty"`
	FechaCancelacion  *time.Time `json:"fecha_cancelacion,omitempty"`
	MotivoCancelacion string     `json:"motivo_cancelacion,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Slot returns the viability id held by slot 1 or 2.
func (p P2P) Slot(n int) int64 {
	switch n {
	case 1:
		return p.Punto1
	case 2:
		return p.Punto2
	}
	return 0
}

func (p P2P) BothAssigned() bool {
	return p.Punto1 != 0 && p.Punto2 != 0
}

// P2PStateChange is the write half of a pairing transition.
type P2PStateChange struct {
	From   EstadoP2P
	To     EstadoP2P
	Motivo string
	At     time.Time
}

// P2PPunto is the read-time projection of one slot.
type P2PPunto struct {
	Slot            int    `json:"slot"`
	IDViabilidad    int64  `json:"id_viabilidad"`
	Nombre          string `json:"nombre"`
	IDOrdenServicio int64  `json:"id_orden_servicio"`
}

// P2PView is a P2P record joined with the viabilities it references.
type P2PView struct {
	P2P
	Puntos [2]P2PPunto `json:"puntos"`
}

// NewP2PView joins p with the viabilities found in byID. Missing ids leave
// the slot's display fields empty.
func NewP2PView(p P2P, byID map[int64]Viabilidad) P2PView {
	view := P2PView{P2P: p}
	for i, id := range []int64{p.Punto1, p.Punto2} {
		pt := P2PPunto{Slot: i + 1, IDViabilidad: id}
		if v, ok := byID[id]; ok && id != 0 {
			pt.Nombre = v.Nombre
			pt.IDOrdenServicio = v.IDOrdenServicio
		}
		view.Puntos[i] = pt
	}
	return view
}
