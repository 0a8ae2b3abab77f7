package response

import (
	"time"

	"fibra_provisioning/internal/domain/entities"
)

type P2PPuntoResponse struct {
	Slot            int    `json:"slot"`
	IDViabilidad    int64  `json:"id_viabilidad"`
	Nombre          string `json:"nombre"`
	IDOrdenServicio int64  `json:"id_orden_servicio"`
}

type P2PResponse struct {
	ID                int64              `json:"id_p2p"`
	Tipo              string             `json:"tipo_p2p"`
	Estado            string             `json:"estado_p2p"`
	Puntos            []P2PPuntoResponse `json:"puntos"`
	FechaCreacion     time.Time          `json:"fecha_creacion"`
	FechaAprobacion   *time.Time         `json:"fecha_aprobacion,omitempty"`
	FechaCompletado   *time.Time         `json:"fecha_completado,omitempty"`
	FechaCancelacion  *time.Time         `json:"fecha_cancelacion,omitempty"`
	MotivoCancelacion string             `json:"motivo_cancelacion,omitempty"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// FromP2P maps a bare record; slot display fields stay empty.
func FromP2P(p entities.P2P) P2PResponse {
	return FromP2PView(entities.NewP2PView(p, nil))
}

func FromP2PView(v entities.P2PView) P2PResponse {
	puntos := make([]P2PPuntoResponse, 0, len(v.Puntos))
	for _, pt := range v.Puntos {
		puntos = append(puntos, P2PPuntoResponse{
			Slot:            pt.Slot,
			IDViabilidad:    pt.IDViabilidad,
			Nombre:          pt.Nombre,
			IDOrdenServicio: pt.IDOrdenServicio,
		})
	}
	return P2PResponse{
		ID:                v.ID,
		Tipo:              string(v.Tipo),
		Estado:            string(v.Estado),
		Puntos:            puntos,
		FechaCreacion:     v.FechaCreacion,
		FechaAprobacion:   v.FechaAprobacion,
		FechaCompletado:   v.FechaCompletado,
		FechaCancelacion:  v.FechaCancelacion,
		MotivoCancelacion: v.MotivoCancelacion,
		UpdatedAt:         v.UpdatedAt,
	}
}

func FromP2PViews(list []entities.P2PView) []P2PResponse {
	out := make([]P2PResponse, 0, len(list))
	for _, v := range list {
		out = append(out, FromP2PView(v))
	}
	return out
}
