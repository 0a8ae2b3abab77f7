package entities

import "time"

// SitioEnlace is the snapshot of one circuit end.
type SitioEnlace struct {
	Punto Punto     `json:"punto"`
	Lado  LadoOrden `json:"lado"`
}

// Enlace is the billable circuit produced by activating a service order.
// Every field except Estado/FechaDesactivacion is an immutable snapshot of the
// order at activation time; billing consumers read the pricing from here.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (id_orden_servicio-index): id_orden_servicio
type Enlace struct {
	ID                  int64       `json:"id_enlace"`
	IDViabilidad        int64       `json:"id_viabilidad"`
	IDOrdenServicio     int64       `json:"id_orden_servicio"`
	IDCliente           int64       `json:"id_cliente"`
	IDCarrier           int64       `json:"id_carrier"`
	IDTipoConexion      int64       `json:"id_tipo_conexion"`
	IDTipoEnlace        int64       `json:"id_tipo_enlace"`
	SitioA              SitioEnlace `json:"sitio_a"`
	SitioZ              SitioEnlace `json:"sitio_z"`
	MRCVenta            float64     `json:"mrc_venta"`
	MRCCosto            float64     `json:"mrc_costo"`
	NRCVenta            float64     `json:"nrc_venta"`
	NRCCosto            float64     `json:"nrc_costo"`
	DescripcionServicio string      `json:"descripcion_servicio"`
	FechaActivacion     time.Time   `json:"fecha_activacion"`
	MesFacturacion      int         `json:"mes_facturacion"`
	AnioFacturacion     int         `json:"anio_facturacion"`
	Estado              bool        `json:"estado"`
	FechaCreacion       time.Time   `json:"fecha_creacion"`
	FechaDesactivacion  *time.Time  `json:"fecha_desactivacion,omitempty"`
}

// NewEnlaceFromOrden builds the activation snapshot of o. The billing period
// is the calendar month of the activation date.
func NewEnlaceFromOrden(id int64, o OrdenServicio, fechaActivacion, now time.Time) Enlace {
	return Enlace{
		ID:                  id,
		IDViabilidad:        o.IDViabilidad,
		IDOrdenServicio:     o.ID,
		IDCliente:           o.IDEmpresa,
		IDCarrier:           o.IDEmpresaConexion,
		IDTipoConexion:      o.IDTipoConexion,
		IDTipoEnlace:        o.IDTipoEnlace,
		SitioA:              SitioEnlace{Punto: o.PuntoA, Lado: o.LadoA},
		SitioZ:              SitioEnlace{Punto: o.PuntoZ, Lado: o.LadoZ},
		MRCVenta:            o.MRCVenta,
		MRCCosto:            o.MRCCosto,
		NRCVenta:            o.NRCVenta,
		NRCCosto:            o.NRCCosto,
		DescripcionServicio: o.DescripcionServicio,
		FechaActivacion:     fechaActivacion,
		MesFacturacion:      int(fechaActivacion.Month()),
		AnioFacturacion:     fechaActivacion.Year(),
		Estado:              true,
		FechaCreacion:       now,
	}
}
