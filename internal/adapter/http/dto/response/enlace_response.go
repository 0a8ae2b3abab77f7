package response

import (
	"time"

	"fibra_provisioning/internal/domain/entities"
)

type SitioResponse struct {
	Punto PuntoResponse `json:"punto"`
	Lado  LadoResponse  `json:"lado"`
}

type EnlaceResponse struct {
	ID                  int64         `json:"id_enlace"`
	IDViabilidad        int64         `json:"id_viabilidad"`
	IDOrdenServicio     int64         `json:"id_orden_servicio"`
	IDCliente           int64         `json:"id_cliente"`
	IDCarrier           int64         `json:"id_carrier"`
	IDTipoConexion      int64         `json:"id_tipo_conexion"`
	IDTipoEnlace        int64         `json:"id_tipo_enlace"`
	SitioA              SitioResponse `json:"sitio_a"`
	SitioZ              SitioResponse `json:"sitio_z"`
	MRCVenta            float64       `json:"mrc_venta"`
	MRCCosto            float64       `json:"mrc_costo"`
	NRCVenta            float64       `json:"nrc_venta"`
	NRCCosto            float64       `json:"nrc_costo"`
	DescripcionServicio string        `json:"descripcion_servicio"`
	FechaActivacion     string        `json:"fecha_activacion"`
	MesFacturacion      int           `json:"mes_facturacion"`
	AnioFacturacion     int           `json:"anio_facturacion"`
	Activo              bool          `json:"activo"`
	FechaCreacion       time.Time     `json:"fecha_creacion"`
	FechaDesactivacion  *time.Time    `json:"fecha_desactivacion,omitempty"`
}

func fromSitio(s entities.SitioEnlace) SitioResponse {
	return SitioResponse{Punto: fromPunto(s.Punto), Lado: fromLado(s.Lado)}
}

func FromEnlace(e entities.Enlace) EnlaceResponse {
	return EnlaceResponse{
		ID:                  e.ID,
		IDViabilidad:        e.IDViabilidad,
		IDOrdenServicio:     e.IDOrdenServicio,
		IDCliente:           e.IDCliente,
		IDCarrier:           e.IDCarrier,
		IDTipoConexion:      e.IDTipoConexion,
		IDTipoEnlace:        e.IDTipoEnlace,
		SitioA:              fromSitio(e.SitioA),
		SitioZ:              fromSitio(e.SitioZ),
		MRCVenta:            e.MRCVenta,
		MRCCosto:            e.MRCCosto,
		NRCVenta:            e.NRCVenta,
		NRCCosto:            e.NRCCosto,
		DescripcionServicio: e.DescripcionServicio,
		FechaActivacion:     e.FechaActivacion.Format(time.DateOnly),
		MesFacturacion:      e.MesFacturacion,
		AnioFacturacion:     e.AnioFacturacion,
		Activo:              e.Estado,
		FechaCreacion:       e.FechaCreacion,
		FechaDesactivacion:  e.FechaDesactivacion,
	}
}
