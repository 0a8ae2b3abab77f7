package interfaces

import (
	"context"
	"fibra_provisioning/internal/domain/entities"
)

// IViabilidadRepository abstracts DynamoDB persistence for Viabilidad.
//
// Lookups return a zero-value record (ID == 0) when nothing is stored.
// UpdateProceso writes only if the stored state still equals from and
// returns ErrConditionFailed otherwise.

type IViabilidadRepository interface {
	Create(ctx context.Context, v entities.Viabilidad) (entities.Viabilidad, error)
	GetByID(ctx context.Context, id int64) (entities.Viabilidad, error)
	GetMany(ctx context.Context, ids []int64) (map[int64]entities.Viabilidad, error)
	ListByProceso(ctx context.Context, proceso entities.ProcesoViabilidad, filter entities.ViabilidadFilter) ([]entities.Viabilidad, error)
	UpdateProceso(ctx context.Context, id int64, from entities.ProcesoViabilidad, change entities.ViabilidadStateChange) (entities.Viabilidad, error)
}
