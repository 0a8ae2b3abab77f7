package request

import "fibra_provisioning/internal/domain/entities"

type CreateServiceOrderRequest struct {
	IDViabilidad int64 `json:"id_viabilidad" binding:"required"`
}

// LadoRequest edits one side. Omitted fields keep their stored value.
type LadoRequest struct {
	IDODF     *int64   `json:"id_odf"`
	Puerto    *string  `json:"puerto"`
	FTP       *string  `json:"ftp"`
	CID       *string  `json:"cid"`
	Distancia *float64 `json:"distancia"`
}

func (l *LadoRequest) toPatch() *entities.LadoPatch {
	if l == nil {
		return nil
	}
	return &entities.LadoPatch{
		IDODF:     l.IDODF,
		Puerto:    l.Puerto,
		FTP:       l.FTP,
		CID:       l.CID,
		Distancia: l.Distancia,
	}
}

// EditServiceOrderRequest is a partial update. Omitted fields are kept.
type EditServiceOrderRequest struct {
	LadoA               *LadoRequest `json:"lado_a"`
	LadoZ               *LadoRequest `json:"lado_z"`
	MRCVenta            *float64     `json:"mrc_venta"`
	NRCVenta            *float64     `json:"nrc_venta"`
	MRCCosto            *float64     `json:"mrc_costo"`
	NRCCosto            *float64     `json:"nrc_costo"`
	DescripcionServicio *string      `json:"descripcion_servicio"`
	Observaciones       *string      `json:"observaciones"`
}

func (r EditServiceOrderRequest) ToPatch() entities.OrdenServicioPatch {
	return entities.OrdenServicioPatch{
		LadoA:               r.LadoA.toPatch(),
		LadoZ:               r.LadoZ.toPatch(),
		MRCVenta:            r.MRCVenta,
		NRCVenta:            r.NRCVenta,
		MRCCosto:            r.MRCCosto,
		NRCCosto:            r.NRCCosto,
		DescripcionServicio: r.DescripcionServicio,
		Observaciones:       r.Observaciones,
	}
}

// ActivateRequest carries the activation date as YYYY-MM-DD.
type ActivateRequest struct {
	FechaActivacion string `json:"fecha_activacion"`
}
