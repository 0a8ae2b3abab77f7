package entities

import (
	"fmt"
	"time"
)

// EstadoOrden is the status code of a service order.
type EstadoOrden int

const (
	EstadoOrdenEnProceso  EstadoOrden = 2
	EstadoOrdenCompletado EstadoOrden = 3
	EstadoOrdenCancelada  EstadoOrden = 4
)

func (e EstadoOrden) Valid() bool {
	return e >= EstadoOrdenEnProceso && e <= EstadoOrdenCancelada
}

func (e EstadoOrden) IsTerminal() bool {
	return e == EstadoOrdenCompletado || e == EstadoOrdenCancelada
}

func (e EstadoOrden) String() string {
	switch e {
	case EstadoOrdenEnProceso:
		return "EnProceso"
	case EstadoOrdenCompletado:
		return "Completado"
	case EstadoOrdenCancelada:
		return "Cancelada"
	}
	return "Desconocido"
}

// LadoOrden holds the operative provisioning data for one side of a circuit.
type LadoOrden struct {
	IDODF     int64   `json:"id_odf"`
	Puerto    string  `json:"puerto"`
	FTP       string  `json:"ftp"`
	CID       string  `json:"cid"`
	Distancia float64 `json:"distancia"`
}

// OrdenServicio is the provisioning record derived from an approved viability.
// Endpoint and pricing fields are a snapshot taken when the order is created.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (estado-index): estado
type OrdenServicio struct {
	ID                  int64       `json:"id_orden_servicio"`
	NumeroOrden         string      `json:"numero_orden"`
	IDViabilidad        int64       `json:"id_viabilidad"`
	Estado              EstadoOrden `json:"estado"`
	PuntoA              Punto       `json:"punto_a"`
	PuntoZ              Punto       `json:"punto_z"`
	IDEmpresa           int64       `json:"id_empresa"`
	IDEmpresaConexion   int64       `json:"id_empresa_conexion"`
	IDTipoConexion      int64       `json:"id_tipo_conexion"`
	IDTipoEnlace        int64       `json:"id_tipo_enlace"`
	MRCVenta            float64     `json:"mrc_venta"`
	NRCVenta            float64     `json:"nrc_venta"`
	MRCCosto            float64     `json:"mrc_costo"`
	NRCCosto            float64     `json:"nrc_costo"`
	LadoA               LadoOrden   `json:"lado_a"`
	LadoZ               LadoOrden   `json:"lado_z"`
	DescripcionServicio string      `json:"descripcion_servicio"`
	Observaciones       string      `json:"observaciones"`
	MotivoCancelacion   string      `json:"motivo_cancelacion,omitempty"`
	FechaAprobacion     time.Time   `json:"fecha_aprobacion"`
	FechaCreacion       time.Time   `json:"fecha_creacion"`
	FechaActivacion     *time.Time  `json:"fecha_activacion,omitempty"`
	FechaCompletado     *time.Time  `json:"fecha_completado,omitempty"`
	FechaCancelacion    *time.Time  `json:"fecha_cancelacion,omitempty"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// Editable reports whether operative fields may still change.
func (o OrdenServicio) Editable() bool {
	return o.Estado == EstadoOrdenEnProceso
}

// FormatNumeroOrden renders the display number, e.g. OS-2024-000042.
func FormatNumeroOrden(id int64, at time.Time) string {
	return fmt.Sprintf("OS-%d-%06d", at.Year(), id)
}

// NewOrdenFromViabilidad snapshots v into a new EnProceso order.
func NewOrdenFromViabilidad(id int64, v Viabilidad, now time.Time) OrdenServicio {
	return OrdenServicio{
		ID:                id,
		NumeroOrden:       FormatNumeroOrden(id, now),
		IDViabilidad:      v.ID,
		Estado:            EstadoOrdenEnProceso,
		PuntoA:            v.PuntoA,
		PuntoZ:            v.PuntoZ,
		IDEmpresa:         v.IDEmpresa,
		IDEmpresaConexion: v.IDEmpresaConexion,
		IDTipoConexion:    v.IDTipoConexion,
		IDTipoEnlace:      v.IDTipoEnlace,
		MRCVenta:          v.MRC,
		NRCVenta:          v.NRC,
		MRCCosto:          v.MRCCosto,
		NRCCosto:          v.NRCCosto,
		Observaciones:     v.Observaciones,
		FechaAprobacion:   v.UpdatedAt,
		FechaCreacion:     now,
		UpdatedAt:         now,
	}
}

// LadoPatch edits one side field by field. Nil fields are left untouched.
type LadoPatch struct {
	IDODF     *int64
	Puerto    *string
	FTP       *string
	CID       *string
	Distancia *float64
}

func (l LadoOrden) Apply(p *LadoPatch) LadoOrden {
	if p == nil {
		return l
	}
	if p.IDODF != nil {
		l.IDODF = *p.IDODF
	}
	if p.Puerto != nil {
		l.Puerto = *p.Puerto
	}
	if p.FTP != nil {
		l.FTP = *p.FTP
	}
	if p.CID != nil {
		l.CID = *p.CID
	}
	if p.Distancia != nil {
		l.Distancia = *p.Distancia
	}
	return l
}

// OrdenServicioPatch lists the fields an operator may edit while the order is
// EnProceso. Nil fields are left untouched.
type OrdenServicioPatch struct {
	LadoA               *LadoPatch
	LadoZ               *LadoPatch
	MRCVenta            *float64
	NRCVenta            *float64
	MRCCosto            *float64
	NRCCosto            *float64
	DescripcionServicio *string
	Observaciones       *string
}

func (p OrdenServicioPatch) IsEmpty() bool {
	return p.LadoA == nil && p.LadoZ == nil && p.MRCVenta == nil && p.NRCVenta == nil &&
		p.MRCCosto == nil && p.NRCCosto == nil && p.DescripcionServicio == nil && p.Observaciones == nil
}

// Apply returns a copy of o with the patch applied.
func (o OrdenServicio) Apply(p OrdenServicioPatch, now time.Time) OrdenServicio {
	o.LadoA = o.LadoA.Apply(p.LadoA)
	o.LadoZ = o.LadoZ.Apply(p.LadoZ)
	if p.MRCVenta != nil {
		o.MRCVenta = *p.MRCVenta
	}
	if p.NRCVenta != nil {
		o.NRCVenta = *p.NRCVenta
	}
	if p.MRCCosto != nil {
		o.MRCCosto = *p.MRCCosto
	}
	if p.NRCCosto != nil {
		o.NRCCosto = *p.NRCCosto
	}
	if p.DescripcionServicio != nil {
		o.DescripcionServicio = *p.DescripcionServicio
	}
	if p.Observaciones != nil {
		o.Observaciones = *p.Observaciones
	}
	o.UpdatedAt = now
	return o
}

// OrdenStateChange is the write half of an order transition. The stored
// status must still be EnProceso for the change to apply.
type OrdenStateChange struct {
	To     EstadoOrden
	Motivo string
	At     time.Time
}
