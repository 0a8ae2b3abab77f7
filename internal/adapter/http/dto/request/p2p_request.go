package request

import "fibra_provisioning/internal/domain/entities"

type CreateP2PRequest struct {
	Tipo string `json:"tipo_p2p" binding:"required"`
}

func (r CreateP2PRequest) ResolveTipo() entities.TipoP2P {
	return entities.TipoP2P(r.Tipo)
}

type AssignPointRequest struct {
	IDViabilidad int64 `json:"id_viabilidad" binding:"required"`
}

// CancelRequest carries the operator's cancellation reason. Used by the
// pairing and service order cancel endpoints.
type CancelRequest struct {
	Motivo string `json:"motivo"`
}
