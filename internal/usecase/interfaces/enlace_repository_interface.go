package interfaces

import (
	"context"
	"time"

	"fibra_provisioning/internal/domain/entities"
)

// IEnlaceRepository abstracts DynamoDB persistence for Enlace.
//
// Activate inserts the circuit and flips the source order from EnProceso to
// Completado in a single transaction. If the order is no longer EnProceso,
// or was edited after prevUpdatedAt, nothing is written and
// ErrConditionFailed is returned.

type IEnlaceRepository interface {
	Activate(ctx context.Context, e entities.Enlace, prevUpdatedAt time.Time) (entities.Enlace, error)
	GetByID(ctx context.Context, id int64) (entities.Enlace, error)
	Deactivate(ctx context.Context, id int64) (entities.Enlace, error)
}
