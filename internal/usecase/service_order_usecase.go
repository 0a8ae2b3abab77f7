package usecase

import (
	"context"
	"errors"
	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase/interfaces"
	"fibra_provisioning/pkg/logger"
	"strings"
	"time"

	"go.uber.org/zap"
)

const sequenceOrdenServicio = "orden_servicio"

// IServiceOrderUseCase is the service order register.
//
// Orders are born EnProceso from an approved viability and end either
// Completado (usually through circuit activation) or Cancelada.
type IServiceOrderUseCase interface {
	CreateFromViability(ctx context.Context, viabilidadID int64) (entities.OrdenServicio, error)
	Cancel(ctx context.Context, ordenID int64, motivo string) (entities.OrdenServicio, error)
	Complete(ctx context.Context, ordenID int64) (entities.OrdenServicio, error)
	Edit(ctx context.Context, ordenID int64, patch entities.OrdenServicioPatch) (entities.OrdenServicio, error)
	GetByID(ctx context.Context, ordenID int64) (entities.OrdenServicio, error)
	ListByStatus(ctx context.Context, estado entities.EstadoOrden) ([]entities.OrdenServicio, error)
}

type ServiceOrderUseCase struct {
	repo         interfaces.IOrdenServicioRepository
	viabilidades interfaces.IViabilidadRepository
	seq          interfaces.ISequence
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IOrdenServicioRepository, viabilidades interfaces.IViabilidadRepository, seq interfaces.ISequence) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, viabilidades: viabilidades, seq: seq}
}

func (u *ServiceOrderUseCase) CreateFromViability(ctx context.Context, viabilidadID int64) (entities.OrdenServicio, error) {
	if viabilidadID <= 0 {
		return entities.OrdenServicio{}, invalid("id_viabilidad", "must be positive")
	}

	v, err := u.viabilidades.GetByID(ctx, viabilidadID)
	if err != nil {
		return entities.OrdenServicio{}, err
	}
	if v.ID == 0 {
		return entities.OrdenServicio{}, ErrViabilityNotFound
	}
	if v.IDOrdenServicio != 0 {
		return entities.OrdenServicio{}, ErrOrderAlreadyExists
	}
	if !v.EligibleForOrder() {
		return entities.OrdenServicio{}, invalidTransition(v.Proceso, "orden de servicio")
	}

	id, err := u.seq.Next(ctx, sequenceOrdenServicio)
	if err != nil {
		return entities.OrdenServicio{}, err
	}

	o := entities.NewOrdenFromViabilidad(id, v, time.Now().UTC())
	created, err := u.repo.CreateFromViabilidad(ctx, o)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.OrdenServicio{}, ErrConcurrencyConflict
		}
		return entities.OrdenServicio{}, err
	}

	logger.Info("service order created",
		zap.Int64("orden_id", created.ID),
		zap.String("numero_orden", created.NumeroOrden),
		zap.Int64("viabilidad_id", viabilidadID),
	)
	return created, nil
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, ordenID int64, motivo string) (entities.OrdenServicio, error) {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return entities.OrdenServicio{}, invalid("motivo", "is required to cancel")
	}
	return u.finish(ctx, ordenID, entities.EstadoOrdenCancelada, motivo)
}

func (u *ServiceOrderUseCase) Complete(ctx context.Context, ordenID int64) (entities.OrdenServicio, error) {
	return u.finish(ctx, ordenID, entities.EstadoOrdenCompletado, "")
}

func (u *ServiceOrderUseCase) finish(ctx context.Context, ordenID int64, to entities.EstadoOrden, motivo string) (entities.OrdenServicio, error) {
	o, err := u.GetByID(ctx, ordenID)
	if err != nil {
		return entities.OrdenServicio{}, err
	}
	if o.Estado != entities.EstadoOrdenEnProceso {
		return entities.OrdenServicio{}, ErrAlreadyTerminal
	}

	updated, err := u.repo.UpdateEstado(ctx, ordenID, entities.OrdenStateChange{
		To:     to,
		Motivo: motivo,
		At:     time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.OrdenServicio{}, ErrConcurrencyConflict
		}
		return entities.OrdenServicio{}, err
	}

	logger.Info("service order finished", zap.Int64("orden_id", ordenID), zap.Stringer("estado", to))
	return updated, nil
}

func (u *ServiceOrderUseCase) Edit(ctx context.Context, ordenID int64, patch entities.OrdenServicioPatch) (entities.OrdenServicio, error) {
	o, err := u.GetByID(ctx, ordenID)
	if err != nil {
		return entities.OrdenServicio{}, err
	}
	if !o.Editable() {
		return entities.OrdenServicio{}, ErrOrderLocked
	}

	if patch.IsEmpty() {
		return entities.OrdenServicio{}, invalid("patch", "no editable field supplied")
	}
	if err := validatePatch(patch); err != nil {
		return entities.OrdenServicio{}, err
	}

	updated, err := u.repo.Update(ctx, o.Apply(patch, time.Now().UTC()), o.UpdatedAt)
	if err != nil {
		if !errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.OrdenServicio{}, err
		}
		latest, getErr := u.GetByID(ctx, ordenID)
		if getErr == nil && !latest.Editable() {
			return entities.OrdenServicio{}, ErrOrderLocked
		}
		return entities.OrdenServicio{}, ErrConcurrencyConflict
	}
	return updated, nil
}

func validatePatch(p entities.OrdenServicioPatch) error {
	var prices []priceField
	if p.MRCVenta != nil {
		prices = append(prices, priceField{"mrc_venta", *p.MRCVenta})
	}
	if p.NRCVenta != nil {
		prices = append(prices, priceField{"nrc_venta", *p.NRCVenta})
	}
	if p.MRCCosto != nil {
		prices = append(prices, priceField{"mrc_costo", *p.MRCCosto})
	}
	if p.NRCCosto != nil {
		prices = append(prices, priceField{"nrc_costo", *p.NRCCosto})
	}
	if p.LadoA != nil && p.LadoA.Distancia != nil {
		prices = append(prices, priceField{"lado_a.distancia", *p.LadoA.Distancia})
	}
	if p.LadoZ != nil && p.LadoZ.Distancia != nil {
		prices = append(prices, priceField{"lado_z.distancia", *p.LadoZ.Distancia})
	}
	return validatePrices(prices...)
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, ordenID int64) (entities.OrdenServicio, error) {
	if ordenID <= 0 {
		return entities.OrdenServicio{}, invalid("id_orden_servicio", "must be positive")
	}
	o, err := u.repo.GetByID(ctx, ordenID)
	if err != nil {
		return entities.OrdenServicio{}, err
	}
	if o.ID == 0 {
		return entities.OrdenServicio{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) ListByStatus(ctx context.Context, estado entities.EstadoOrden) ([]entities.OrdenServicio, error) {
	if !estado.Valid() {
		return nil, invalid("estado", "unknown order status")
	}
	return u.repo.ListByEstado(ctx, estado)
}
