package interfaces

import (
	"context"
	"fibra_provisioning/internal/domain/entities"
)

// ICatalogGateway gives the workflow read access to catalog records.
// Lookups return a zero-value record when the id is unknown.
type ICatalogGateway interface {
	GetEmpresa(ctx context.Context, id int64) (entities.Empresa, error)
	GetTipoEnlace(ctx context.Context, id int64) (entities.TipoEnlace, error)
}
