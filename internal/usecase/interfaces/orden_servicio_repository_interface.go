package interfaces

import (
	"context"
	"fibra_provisioning/internal/domain/entities"
	"time"
)

// IOrdenServicioRepository abstracts DynamoDB persistence for OrdenServicio.
//
// CreateFromViabilidad inserts the order and attaches its id to the source
// viability in one transaction, conditioned on the viability still being
// approved, not cancelled and without an order.
//
// UpdateEstado and Update only write while the stored order is EnProceso;
// Update additionally requires the stored updated_at to equal prevUpdatedAt.
// Conditional failures surface as ErrConditionFailed.

type IOrdenServicioRepository interface {
	CreateFromViabilidad(ctx context.Context, o entities.OrdenServicio) (entities.OrdenServicio, error)
	GetByID(ctx context.Context, id int64) (entities.OrdenServicio, error)
	ListByEstado(ctx context.Context, estado entities.EstadoOrden) ([]entities.OrdenServicio, error)
	UpdateEstado(ctx context.Context, id int64, change entities.OrdenStateChange) (entities.OrdenServicio, error)
	Update(ctx context.Context, o entities.OrdenServicio, prevUpdatedAt time.Time) (entities.OrdenServicio, error)
}
