package interfaces

import (
	"context"
	"fibra_provisioning/internal/domain/entities"
)

// IP2PRepository abstracts DynamoDB persistence for P2P pairings.
//
// AssignPoint only writes while the record is in proceso and the slot is
// still 0. UpdateEstado only writes while the stored state equals change.From;
// moving to aprobado additionally requires both slots to be non-zero. Both
// return ErrConditionFailed when the condition does not hold.

type IP2PRepository interface {
	Create(ctx context.Context, p entities.P2P) (entities.P2P, error)
	GetByID(ctx context.Context, id int64) (entities.P2P, error)
	ListByEstado(ctx context.Context, estado entities.EstadoP2P) ([]entities.P2P, error)
	AssignPoint(ctx context.Context, id int64, slot int, viabilidadID int64) (entities.P2P, error)
	UpdateEstado(ctx context.Context, id int64, change entities.P2PStateChange) (entities.P2P, error)
}
