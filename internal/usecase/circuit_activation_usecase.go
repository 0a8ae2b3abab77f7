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

const (
	sequenceEnlace = "enlace"

	// ActivationDateLayout is the accepted format for activation dates.
	ActivationDateLayout = "2006-01-02"
)

// ICircuitActivationUseCase turns an in-process service order into a
// billable Enlace.
type ICircuitActivationUseCase interface {
	Activate(ctx context.Context, ordenID int64, fechaActivacion string) (entities.Enlace, error)
	Deactivate(ctx context.Context, enlaceID int64) (entities.Enlace, error)
	GetByID(ctx context.Context, enlaceID int64) (entities.Enlace, error)
}

type CircuitActivationUseCase struct {
	ordenes  interfaces.IOrdenServicioRepository
	enlaces  interfaces.IEnlaceRepository
	evidence interfaces.IEvidenceStore
	seq      interfaces.ISequence
	noCharge *NoChargePolicy
}

var _ ICircuitActivationUseCase = (*CircuitActivationUseCase)(nil)

func NewCircuitActivationUseCase(
	ordenes interfaces.IOrdenServicioRepository,
	enlaces interfaces.IEnlaceRepository,
	evidence interfaces.IEvidenceStore,
	seq interfaces.ISequence,
	noCharge *NoChargePolicy,
) *CircuitActivationUseCase {
	return &CircuitActivationUseCase{
		ordenes:  ordenes,
		enlaces:  enlaces,
		evidence: evidence,
		seq:      seq,
		noCharge: noCharge,
	}
}

// Activate validates the order and, in a single transaction, inserts the
// Enlace snapshot and marks the order Completado. Evidence and pricing
// failures leave no trace; the operator fixes the input and calls again.
func (u *CircuitActivationUseCase) Activate(ctx context.Context, ordenID int64, fechaActivacion string) (entities.Enlace, error) {
	if ordenID <= 0 {
		return entities.Enlace{}, invalid("id_orden_servicio", "must be positive")
	}
	if u.evidence == nil {
		return entities.Enlace{}, errors.New("evidence store not configured")
	}

	o, err := u.ordenes.GetByID(ctx, ordenID)
	if err != nil {
		return entities.Enlace{}, err
	}
	if o.ID == 0 {
		return entities.Enlace{}, ErrOrderNotFound
	}
	if o.Estado != entities.EstadoOrdenEnProceso {
		return entities.Enlace{}, ErrOrderNotActivatable
	}

	fecha, err := parseActivationDate(fechaActivacion)
	if err != nil {
		return entities.Enlace{}, err
	}

	if o.MRCVenta <= 0 {
		noCharge, err := u.noCharge.IsNoCharge(ctx, o.IDTipoEnlace)
		if err != nil {
			return entities.Enlace{}, err
		}
		if !noCharge {
			return entities.Enlace{}, ErrMissingPricing
		}
	}

	ok, err := u.evidence.HasRequiredFiles(ctx, ordenID)
	if err != nil {
		return entities.Enlace{}, err
	}
	if !ok {
		logger.Warn("activation blocked by missing evidence", zap.Int64("orden_id", ordenID))
		return entities.Enlace{}, ErrMissingEvidence
	}

	id, err := u.seq.Next(ctx, sequenceEnlace)
	if err != nil {
		return entities.Enlace{}, err
	}

	enlace := entities.NewEnlaceFromOrden(id, o, fecha, time.Now().UTC())
	created, err := u.enlaces.Activate(ctx, enlace, o.UpdatedAt)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Enlace{}, ErrConcurrencyConflict
		}
		return entities.Enlace{}, err
	}

	logger.Info("circuit activated",
		zap.Int64("enlace_id", created.ID),
		zap.Int64("orden_id", ordenID),
		zap.String("fecha_activacion", fecha.Format(ActivationDateLayout)),
		zap.Float64("mrc_venta", created.MRCVenta),
	)
	return created, nil
}

func parseActivationDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, invalid("fecha_activacion", "is required")
	}
	t, err := time.Parse(ActivationDateLayout, raw)
	if err != nil {
		return time.Time{}, invalid("fecha_activacion", "must be a valid YYYY-MM-DD date")
	}
	return t, nil
}

// Deactivate soft-disables a circuit. Deactivating twice is a no-op.
func (u *CircuitActivationUseCase) Deactivate(ctx context.Context, enlaceID int64) (entities.Enlace, error) {
	e, err := u.GetByID(ctx, enlaceID)
	if err != nil {
		return entities.Enlace{}, err
	}
	if !e.Estado {
		return e, nil
	}

	updated, err := u.enlaces.Deactivate(ctx, enlaceID)
	if err != nil {
		return entities.Enlace{}, err
	}
	if updated.ID == 0 {
		return entities.Enlace{}, ErrEnlaceNotFound
	}
	logger.Info("circuit deactivated", zap.Int64("enlace_id", enlaceID))
	return updated, nil
}

func (u *CircuitActivationUseCase) GetByID(ctx context.Context, enlaceID int64) (entities.Enlace, error) {
	if enlaceID <= 0 {
		return entities.Enlace{}, invalid("id_enlace", "must be positive")
	}
	e, err := u.enlaces.GetByID(ctx, enlaceID)
	if err != nil {
		return entities.Enlace{}, err
	}
	if e.ID == 0 {
		return entities.Enlace{}, ErrEnlaceNotFound
	}
	return e, nil
}
