package usecase

import (
	"context"
	"fibra_provisioning/internal/usecase/interfaces"
)

// NoChargePolicy decides which link types are exempt from the recurring
// charge guard on activation: any id in the configured list, or any type the
// catalog flags as SinCargo.
type NoChargePolicy struct {
	ids     map[int64]struct{}
	catalog interfaces.ICatalogGateway
}

func NewNoChargePolicy(ids []int64, catalog interfaces.ICatalogGateway) *NoChargePolicy {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &NoChargePolicy{ids: set, catalog: catalog}
}

func (p *NoChargePolicy) IsNoCharge(ctx context.Context, tipoEnlaceID int64) (bool, error) {
	if p == nil {
		return false, nil
	}
	if _, ok := p.ids[tipoEnlaceID]; ok {
		return true, nil
	}
	if p.catalog == nil {
		return false, nil
	}
	tipo, err := p.catalog.GetTipoEnlace(ctx, tipoEnlaceID)
	if err != nil {
		return false, err
	}
	return tipo.SinCargo, nil
}
