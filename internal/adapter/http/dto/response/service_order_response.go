package response

import (
	"time"

	"fibra_provisioning/internal/domain/entities"
)

type LadoResponse struct {
	IDODF     int64   `json:"id_odf"`
	Puerto    string  `json:"puerto"`
	FTP       string  `json:"ftp"`
	CID       string  `json:"cid"`
	Distancia float64 `json:"distancia"`
}

type ServiceOrderResponse struct {
	ID                  int64         `json:"id_orden_servicio"`
	NumeroOrden         string        `json:"numero_orden"`
	IDViabilidad        int64         `json:"id_viabilidad"`
	Estado              int           `json:"estado"`
	EstadoLabel         string        `json:"estado_label"`
	Editable            bool          `json:"editable"`
	PuntoA              PuntoResponse `json:"punto_a"`
	PuntoZ              PuntoResponse `json:"punto_z"`
	IDEmpresa           int64         `json:"id_empresa"`
	IDEmpresaConexion   int64         `json:"id_empresa_conexion"`
	IDTipoConexion      int64         `json:"id_tipo_conexion"`
	IDTipoEnlace        int64         `json:"id_tipo_enlace"`
	MRCVenta            float64       `json:"mrc_venta"`
	NRCVenta            float64       `json:"nrc_venta"`
	MRCCosto            float64       `json:"mrc_costo"`
	NRCCosto            float64       `json:"nrc_costo"`
	LadoA               LadoResponse  `json:"lado_a"`
	LadoZ               LadoResponse  `json:"lado_z"`
	DescripcionServicio string        `json:"descripcion_servicio"`
	Observaciones       string        `json:"observaciones"`
	MotivoCancelacion   string        `json:"motivo_cancelacion,omitempty"`
	FechaAprobacion     time.Time     `json:"fecha_aprobacion"`
	FechaCreacion       time.Time     `json:"fecha_creacion"`
	FechaActivacion     *time.Time    `json:"fecha_activacion,omitempty"`
	FechaCompletado     *time.Time    `json:"fecha_completado,omitempty"`
	FechaCancelacion    *time.Time    `json:"fecha_cancelacion,omitempty"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

func fromLado(l entities.LadoOrden) LadoResponse {
	return LadoResponse{IDODF: l.IDODF, Puerto: l.Puerto, FTP: l.FTP, CID: l.CID, Distancia: l.Distancia}
}

func FromServiceOrder(o entities.OrdenServicio) ServiceOrderResponse {
	return ServiceOrderResponse{
		ID:                  o.ID,
		NumeroOrden:         o.NumeroOrden,
		IDViabilidad:        o.IDViabilidad,
		Estado:              int(o.Estado),
		EstadoLabel:         o.Estado.String(),
		Editable:            o.Editable(),
		PuntoA:              fromPunto(o.PuntoA),
		PuntoZ:              fromPunto(o.PuntoZ),
		IDEmpresa:           o.IDEmpresa,
		IDEmpresaConexion:   o.IDEmpresaConexion,
		IDTipoConexion:      o.IDTipoConexion,
		IDTipoEnlace:        o.IDTipoEnlace,
		MRCVenta:            o.MRCVenta,
		NRCVenta:            o.NRCVenta,
		MRCCosto:            o.MRCCosto,
		NRCCosto:            o.NRCCosto,
		LadoA:               fromLado(o.LadoA),
		LadoZ:               fromLado(o.LadoZ),
		DescripcionServicio: o.DescripcionServicio,
		Observaciones:       o.Observaciones,
		MotivoCancelacion:   o.MotivoCancelacion,
		FechaAprobacion:     o.FechaAprobacion,
		FechaCreacion:       o.FechaCreacion,
		FechaActivacion:     o.FechaActivacion,
		FechaCompletado:     o.FechaCompletado,
		FechaCancelacion:    o.FechaCancelacion,
		UpdatedAt:           o.UpdatedAt,
	}
}

func FromServiceOrders(list []entities.OrdenServicio) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
