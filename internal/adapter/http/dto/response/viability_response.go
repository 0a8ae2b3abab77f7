package response

import (
	"time"

	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase"
)

type PuntoResponse struct {
	IDAreaDesarrollo int64   `json:"id_area_desarrollo"`
	IDUbicacion      int64   `json:"id_ubicacion"`
	IDModulo         int64   `json:"id_modulo"`
	Latitud          float64 `json:"latitud"`
	Longitud         float64 `json:"longitud"`
}

type ViabilityResponse struct {
	ID                int64         `json:"id_viabilidad"`
	Nombre            string        `json:"nombre"`
	NumeroDocumento   string        `json:"numero_documento"`
	Proceso           int           `json:"id_proceso_viabilidad"`
	Estado            string        `json:"estado"`
	Cancelada         bool          `json:"cancelada"`
	PuntoA            PuntoResponse `json:"punto_a"`
	PuntoZ            PuntoResponse `json:"punto_z"`
	IDEmpresa         int64         `json:"id_empresa"`
	IDEmpresaConexion int64         `json:"id_empresa_conexion"`
	IDTipoConexion    int64         `json:"id_tipo_conexion"`
	IDTipoEnlace      int64         `json:"id_tipo_enlace"`
	MRC               float64       `json:"mrc"`
	NRC               float64       `json:"nrc"`
	MRCCosto          float64       `json:"mrc_costo"`
	NRCCosto          float64       `json:"nrc_costo"`
	Observaciones     string        `json:"observaciones"`
	MotivoCancelacion string        `json:"motivo_cancelacion,omitempty"`
	IDOrdenServicio   int64         `json:"id_orden_servicio"`
	FechaCreacion     time.Time     `json:"fecha_creacion"`
	FechaVencimiento  time.Time     `json:"fecha_vencimiento"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type ViabilityQueuesResponse struct {
	Proceso    []ViabilityResponse `json:"proceso"`
	PorAprobar []ViabilityResponse `json:"por_aprobar"`
	NoAprobada []ViabilityResponse `json:"no_aprobada"`
	Aprobada   []ViabilityResponse `json:"aprobada"`
}

func fromPunto(p entities.Punto) PuntoResponse {
	return PuntoResponse{
		IDAreaDesarrollo: p.IDAreaDesarrollo,
		IDUbicacion:      p.IDUbicacion,
		IDModulo:         p.IDModulo,
		Latitud:          p.Latitud,
		Longitud:         p.Longitud,
	}
}

// estadoLabel is the console label. Cancelled requests share state 4 with
// rejected ones and are shown as "Cancelada".
func estadoLabel(v entities.Viabilidad) string {
	if v.Cancelada {
		return "Cancelada"
	}
	return v.Proceso.String()
}

func FromViability(v entities.Viabilidad) ViabilityResponse {
	return ViabilityResponse{
		ID:                v.ID,
		Nombre:            v.Nombre,
		NumeroDocumento:   v.NumeroDocumento,
		Proceso:           int(v.Proceso),
		Estado:            estadoLabel(v),
		Cancelada:         v.Cancelada,
		PuntoA:            fromPunto(v.PuntoA),
		PuntoZ:            fromPunto(v.PuntoZ),
		IDEmpresa:         v.IDEmpresa,
		IDEmpresaConexion: v.IDEmpresaConexion,
		IDTipoConexion:    v.IDTipoConexion,
		IDTipoEnlace:      v.IDTipoEnlace,
		MRC:               v.MRC,
		NRC:               v.NRC,
		MRCCosto:          v.MRCCosto,
		NRCCosto:          v.NRCCosto,
		Observaciones:     v.Observaciones,
		MotivoCancelacion: v.MotivoCancelacion,
		IDOrdenServicio:   v.IDOrdenServicio,
		FechaCreacion:     v.FechaCreacion,
		FechaVencimiento:  v.FechaVencimiento,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromViabilities(list []entities.Viabilidad) []ViabilityResponse {
	out := make([]ViabilityResponse, 0, len(list))
	for _, v := range list {
		out = append(out, FromViability(v))
	}
	return out
}

func FromViabilityQueues(q usecase.ViabilityQueues) ViabilityQueuesResponse {
	return ViabilityQueuesResponse{
		Proceso:    FromViabilities(q.Proceso),
		PorAprobar: FromViabilities(q.PorAprobar),
		NoAprobada: FromViabilities(q.NoAprobada),
		Aprobada:   FromViabilities(q.Aprobada),
	}
}
