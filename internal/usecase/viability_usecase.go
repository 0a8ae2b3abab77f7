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

const sequenceViabilidad = "viabilidad"

// PuntoCommand carries one endpoint as entered in the request wizard.
// Coordinates are pointers so that a missing value can be told apart from 0.
type PuntoCommand struct {
	IDAreaDesarrollo int64
	IDUbicacion      int64
	IDModulo         int64
	Latitud          *float64
	Longitud         *float64
}

type CreateViabilityCommand struct {
	Nombre            string
	NumeroDocumento   string
	PuntoA            PuntoCommand
	PuntoZ            PuntoCommand
	IDEmpresa         int64
	IDEmpresaConexion int64
	IDTipoConexion    int64
	IDTipoEnlace      int64
	MRC               float64
	NRC               float64
	MRCCosto          float64
	NRCCosto          float64
	Observaciones     string
}

// ViabilityQueues holds the four disjoint candidate queues used by the
// pairing and order wizards.
type ViabilityQueues struct {
	Proceso    []entities.Viabilidad `json:"proceso"`
	PorAprobar []entities.Viabilidad `json:"por_aprobar"`
	NoAprobada []entities.Viabilidad `json:"no_aprobada"`
	Aprobada   []entities.Viabilidad `json:"aprobada"`
}

// IViabilityUseCase is the viability ledger.
type IViabilityUseCase interface {
	CreateViability(ctx context.Context, cmd CreateViabilityCommand) (entities.Viabilidad, error)
	Transition(ctx context.Context, id int64, target entities.ViabilidadTarget, motivo string) (entities.Viabilidad, error)
	ListByProcessState(ctx context.Context, proceso entities.ProcesoViabilidad, filter entities.ViabilidadFilter) ([]entities.Viabilidad, error)
	Queues(ctx context.Context, filter entities.ViabilidadFilter) (ViabilityQueues, error)
	GetByID(ctx context.Context, id int64) (entities.Viabilidad, error)
}

type ViabilityUseCase struct {
	repo     interfaces.IViabilidadRepository
	seq      interfaces.ISequence
	catalog  interfaces.ICatalogGateway
	validity time.Duration
}

var _ IViabilityUseCase = (*ViabilityUseCase)(nil)

// NewViabilityUseCase wires the ledger. catalog may be nil, in which case
// company and link type references are not checked against the catalog.
func NewViabilityUseCase(repo interfaces.IViabilidadRepository, seq interfaces.ISequence, catalog interfaces.ICatalogGateway, validityDays int) *ViabilityUseCase {
	return &ViabilityUseCase{
		repo:     repo,
		seq:      seq,
		catalog:  catalog,
		validity: time.Duration(validityDays) * 24 * time.Hour,
	}
}

func (u *ViabilityUseCase) CreateViability(ctx context.Context, cmd CreateViabilityCommand) (entities.Viabilidad, error) {
	cmd.NumeroDocumento = strings.TrimSpace(cmd.NumeroDocumento)
	cmd.Nombre = strings.TrimSpace(cmd.Nombre)

	if err := validateCreateViability(cmd); err != nil {
		return entities.Viabilidad{}, err
	}
	if err := u.checkCatalog(ctx, cmd); err != nil {
		return entities.Viabilidad{}, err
	}

	id, err := u.seq.Next(ctx, sequenceViabilidad)
	if err != nil {
		return entities.Viabilidad{}, err
	}

	nombre := cmd.Nombre
	if nombre == "" {
		nombre = cmd.NumeroDocumento
	}

	now := time.Now().UTC()
	v := entities.Viabilidad{
		ID:                id,
		Nombre:            nombre,
		NumeroDocumento:   cmd.NumeroDocumento,
		Proceso:           entities.ProcesoPorAprobar,
		PuntoA:            toPunto(cmd.PuntoA),
		PuntoZ:            toPunto(cmd.PuntoZ),
		IDEmpresa:         cmd.IDEmpresa,
		IDEmpresaConexion: cmd.IDEmpresaConexion,
		IDTipoConexion:    cmd.IDTipoConexion,
		IDTipoEnlace:      cmd.IDTipoEnlace,
		MRC:               cmd.MRC,
		NRC:               cmd.NRC,
		MRCCosto:          cmd.MRCCosto,
		NRCCosto:          cmd.NRCCosto,
		Observaciones:     strings.TrimSpace(cmd.Observaciones),
		FechaCreacion:     now,
		FechaVencimiento:  now.Add(u.validity),
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, v)
	if err != nil {
		return entities.Viabilidad{}, err
	}
	logger.Info("viability created",
		zap.Int64("viabilidad_id", created.ID),
		zap.String("numero_documento", created.NumeroDocumento),
	)
	return created, nil
}

func validateCreateViability(cmd CreateViabilityCommand) error {
	if cmd.NumeroDocumento == "" {
		return invalid("numero_documento", "is required")
	}
	if cmd.IDTipoEnlace <= 0 {
		return invalid("id_tipo_enlace", "is required")
	}
	if cmd.IDEmpresa <= 0 {
		return invalid("id_empresa", "is required")
	}
	if err := validatePunto("punto_a", cmd.PuntoA); err != nil {
		return err
	}
	if err := validatePunto("punto_z", cmd.PuntoZ); err != nil {
		return err
	}
	return validatePrices(
		priceField{"mrc", cmd.MRC},
		priceField{"nrc", cmd.NRC},
		priceField{"mrc_costo", cmd.MRCCosto},
		priceField{"nrc_costo", cmd.NRCCosto},
	)
}

type priceField struct {
	name  string
	value float64
}

func validatePrices(fields ...priceField) error {
	for _, f := range fields {
		if f.value < 0 {
			return invalid(f.name, "must not be negative")
		}
	}
	return nil
}

func validatePunto(prefix string, p PuntoCommand) error {
	if p.IDModulo <= 0 {
		return invalid(prefix+".id_modulo", "is required")
	}
	if p.Latitud == nil {
		return invalid(prefix+".latitud", "is required")
	}
	if p.Longitud == nil {
		return invalid(prefix+".longitud", "is required")
	}
	if *p.Latitud < -90 || *p.Latitud > 90 {
		return invalid(prefix+".latitud", "must be between -90 and 90")
	}
	if *p.Longitud < -180 || *p.Longitud > 180 {
		return invalid(prefix+".longitud", "must be between -180 and 180")
	}
	return nil
}

func (u *ViabilityUseCase) checkCatalog(ctx context.Context, cmd CreateViabilityCommand) error {
	if u.catalog == nil {
		return nil
	}
	empresa, err := u.catalog.GetEmpresa(ctx, cmd.IDEmpresa)
	if err != nil {
		return err
	}
	if empresa.ID == 0 || !empresa.Activo {
		return invalid("id_empresa", "unknown or inactive company")
	}
	tipo, err := u.catalog.GetTipoEnlace(ctx, cmd.IDTipoEnlace)
	if err != nil {
		return err
	}
	if tipo.ID == 0 || !tipo.Activo {
		return invalid("id_tipo_enlace", "unknown or inactive link type")
	}
	return nil
}

func toPunto(p PuntoCommand) entities.Punto {
	out := entities.Punto{
		IDAreaDesarrollo: p.IDAreaDesarrollo,
		IDUbicacion:      p.IDUbicacion,
		IDModulo:         p.IDModulo,
	}
	if p.Latitud != nil {
		out.Latitud = *p.Latitud
	}
	if p.Longitud != nil {
		out.Longitud = *p.Longitud
	}
	return out
}

func (u *ViabilityUseCase) Transition(ctx context.Context, id int64, target entities.ViabilidadTarget, motivo string) (entities.Viabilidad, error) {
	if id <= 0 {
		return entities.Viabilidad{}, invalid("id_viabilidad", "must be positive")
	}
	if !target.Valid() {
		return entities.Viabilidad{}, invalid("target", "unknown target state")
	}
	motivo = strings.TrimSpace(motivo)
	if target == entities.TargetCancelada && motivo == "" {
		return entities.Viabilidad{}, invalid("motivo", "is required to cancel")
	}

	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Viabilidad{}, err
	}

	// Approving twice is a no-op so that retries are safe.
	if target == entities.TargetAprobada && current.Proceso == entities.ProcesoAprobada && !current.Cancelada {
		return current, nil
	}
	if !entities.CanTransitionViabilidad(current.Proceso, target) {
		return entities.Viabilidad{}, invalidTransition(current.Proceso, target)
	}

	change := entities.ViabilidadStateChange{
		To:        target.Proceso(),
		Cancelada: target == entities.TargetCancelada,
		Motivo:    motivo,
		At:        time.Now().UTC(),
	}
	updated, err := u.repo.UpdateProceso(ctx, id, current.Proceso, change)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Viabilidad{}, ErrConcurrencyConflict
		}
		return entities.Viabilidad{}, err
	}
	if updated.ID == 0 {
		return entities.Viabilidad{}, ErrViabilityNotFound
	}

	logger.Info("viability transitioned",
		zap.Int64("viabilidad_id", id),
		zap.Stringer("from", current.Proceso),
		zap.String("target", string(target)),
	)
	return updated, nil
}

func (u *ViabilityUseCase) ListByProcessState(ctx context.Context, proceso entities.ProcesoViabilidad, filter entities.ViabilidadFilter) ([]entities.Viabilidad, error) {
	if !proceso.Valid() {
		return nil, invalid("state", "unknown process state")
	}
	return u.repo.ListByProceso(ctx, proceso, filter)
}

func (u *ViabilityUseCase) Queues(ctx context.Context, filter entities.ViabilidadFilter) (ViabilityQueues, error) {
	var (
		q   ViabilityQueues
		err error
	)
	if q.Proceso, err = u.ListByProcessState(ctx, entities.ProcesoEnProceso, filter); err != nil {
		return ViabilityQueues{}, err
	}
	if q.PorAprobar, err = u.ListByProcessState(ctx, entities.ProcesoPorAprobar, filter); err != nil {
		return ViabilityQueues{}, err
	}
	if q.NoAprobada, err = u.ListByProcessState(ctx, entities.ProcesoNoAprobada, filter); err != nil {
		return ViabilityQueues{}, err
	}
	if q.Aprobada, err = u.ListByProcessState(ctx, entities.ProcesoAprobada, filter); err != nil {
		return ViabilityQueues{}, err
	}
	return q, nil
}

func (u *ViabilityUseCase) GetByID(ctx context.Context, id int64) (entities.Viabilidad, error) {
	if id <= 0 {
		return entities.Viabilidad{}, invalid("id_viabilidad", "must be positive")
	}
	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Viabilidad{}, err
	}
	if v.ID == 0 {
		return entities.Viabilidad{}, ErrViabilityNotFound
	}
	return v, nil
}
