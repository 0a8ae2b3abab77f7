package request

import (
	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase"
)

// PuntoRequest is one endpoint of a viability. Coordinates are pointers so a
// missing value can be told apart from 0.
type PuntoRequest struct {
	IDAreaDesarrollo int64    `json:"id_area_desarrollo"`
	IDUbicacion      int64    `json:"id_ubicacion"`
	IDModulo         int64    `json:"id_modulo"`
	Latitud          *float64 `json:"latitud"`
	Longitud         *float64 `json:"longitud"`
}

type CreateViabilityRequest struct {
	Nombre            string       `json:"nombre"`
	NumeroDocumento   string       `json:"numero_documento"`
	PuntoA            PuntoRequest `json:"punto_a"`
	PuntoZ            PuntoRequest `json:"punto_z"`
	IDEmpresa         int64        `json:"id_empresa"`
	IDEmpresaConexion int64        `json:"id_empresa_conexion"`
	IDTipoConexion    int64        `json:"id_tipo_conexion"`
	IDTipoEnlace      int64        `json:"id_tipo_enlace"`
	MRC               float64      `json:"mrc"`
	NRC               float64      `json:"nrc"`
	MRCCosto          float64      `json:"mrc_costo"`
	NRCCosto          float64      `json:"nrc_costo"`
	Observaciones     string       `json:"observaciones"`
}

func (p PuntoRequest) toCommand() usecase.PuntoCommand {
	return usecase.PuntoCommand{
		IDAreaDesarrollo: p.IDAreaDesarrollo,
		IDUbicacion:      p.IDUbicacion,
		IDModulo:         p.IDModulo,
		Latitud:          p.Latitud,
		Longitud:         p.Longitud,
	}
}

func (r CreateViabilityRequest) ToCommand() usecase.CreateViabilityCommand {
	return usecase.CreateViabilityCommand{
		Nombre:            r.Nombre,
		NumeroDocumento:   r.NumeroDocumento,
		PuntoA:            r.PuntoA.toCommand(),
		PuntoZ:            r.PuntoZ.toCommand(),
		IDEmpresa:         r.IDEmpresa,
		IDEmpresaConexion: r.IDEmpresaConexion,
		IDTipoConexion:    r.IDTipoConexion,
		IDTipoEnlace:      r.IDTipoEnlace,
		MRC:               r.MRC,
		NRC:               r.NRC,
		MRCCosto:          r.MRCCosto,
		NRCCosto:          r.NRCCosto,
		Observaciones:     r.Observaciones,
	}
}

// TransitionViabilityRequest moves a viability to Proceso, Aprobada,
// NoAprobada or Cancelada. Motivo is required for Cancelada.
type TransitionViabilityRequest struct {
	Target string `json:"target" binding:"required"`
	Motivo string `json:"motivo"`
}

func (r TransitionViabilityRequest) ResolveTarget() entities.ViabilidadTarget {
	return entities.ViabilidadTarget(r.Target)
}

// ViabilityListQuery is bound from the query string of the listing endpoints.
type ViabilityListQuery struct {
	State             int   `form:"state"`
	Empresa           int64 `form:"empresa"`
	TipoEnlace        int64 `form:"tipo_enlace"`
	SinOrden          bool  `form:"sin_orden"`
	IncluirCanceladas bool  `form:"incluir_canceladas"`
}

func (q ViabilityListQuery) Filter() entities.ViabilidadFilter {
	return entities.ViabilidadFilter{
		IDEmpresa:         q.Empresa,
		IDTipoEnlace:      q.TipoEnlace,
		SinOrden:          q.SinOrden,
		IncluirCanceladas: q.IncluirCanceladas,
	}
}
