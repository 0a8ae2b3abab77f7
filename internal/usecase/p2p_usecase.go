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

const sequenceP2P = "p2p"

// IP2PUseCase is the P2P pairing engine.
//
// Proceso -> Aprobado -> Completado, with Cancelado reachable from Proceso or
// Aprobado. Approval requires both endpoint slots to be filled.
type IP2PUseCase interface {
	CreateDraft(ctx context.Context, tipo entities.TipoP2P) (entities.P2P, error)
	AssignPoint(ctx context.Context, p2pID int64, slot int, viabilidadID int64) (entities.P2PView, error)
	Approve(ctx context.Context, p2pID int64) (entities.P2P, error)
	Complete(ctx context.Context, p2pID int64) (entities.P2P, error)
	Cancel(ctx context.Context, p2pID int64, motivo string) (entities.P2P, error)
	Get(ctx context.Context, p2pID int64) (entities.P2PView, error)
	List(ctx context.Context, estado entities.EstadoP2P) ([]entities.P2PView, error)
}

type P2PUseCase struct {
	repo         interfaces.IP2PRepository
	viabilidades interfaces.IViabilidadRepository
	seq          interfaces.ISequence
}

var _ IP2PUseCase = (*P2PUseCase)(nil)

func NewP2PUseCase(repo interfaces.IP2PRepository, viabilidades interfaces.IViabilidadRepository, seq interfaces.ISequence) *P2PUseCase {
	return &P2PUseCase{repo: repo, viabilidades: viabilidades, seq: seq}
}

func (u *P2PUseCase) CreateDraft(ctx context.Context, tipo entities.TipoP2P) (entities.P2P, error) {
	if !tipo.Valid() {
		return entities.P2P{}, invalid("tipo_p2p", "unknown infrastructure type")
	}

	id, err := u.seq.Next(ctx, sequenceP2P)
	if err != nil {
		return entities.P2P{}, err
	}

	now := time.Now().UTC()
	p := entities.P2P{
		ID:            id,
		Tipo:          tipo,
		Estado:        entities.EstadoP2PProceso,
		FechaCreacion: now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.P2P{}, err
	}
	logger.Info("p2p draft created", zap.Int64("p2p_id", created.ID), zap.String("tipo", string(tipo)))
	return created, nil
}

func (u *P2PUseCase) AssignPoint(ctx context.Context, p2pID int64, slot int, viabilidadID int64) (entities.P2PView, error) {
	if slot != 1 && slot != 2 {
		return entities.P2PView{}, invalid("slot", "must be 1 or 2")
	}
	if viabilidadID <= 0 {
		return entities.P2PView{}, invalid("id_viabilidad", "must be positive")
	}

	p, err := u.get(ctx, p2pID)
	if err != nil {
		return entities.P2PView{}, err
	}
	if err := checkAssignable(p, slot, viabilidadID); err != nil {
		return entities.P2PView{}, err
	}

	v, err := u.viabilidades.GetByID(ctx, viabilidadID)
	if err != nil {
		return entities.P2PView{}, err
	}
	if v.ID == 0 {
		return entities.P2PView{}, ErrViabilityNotFound
	}
	if !v.EligibleForPairing() {
		return entities.P2PView{}, ErrViabilityNotEligible
	}

	updated, err := u.repo.AssignPoint(ctx, p2pID, slot, viabilidadID)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.P2PView{}, u.assignConflict(ctx, p2pID, slot, viabilidadID)
		}
		return entities.P2PView{}, err
	}

	logger.Info("p2p point assigned",
		zap.Int64("p2p_id", p2pID),
		zap.Int("slot", slot),
		zap.Int64("viabilidad_id", viabilidadID),
	)
	return u.view(ctx, updated)
}

func checkAssignable(p entities.P2P, slot int, viabilidadID int64) error {
	if p.Slot(slot) != 0 {
		return ErrSlotAlreadyAssigned
	}
	if p.Estado != entities.EstadoP2PProceso {
		return invalidTransition(p.Estado, "asignar punto")
	}
	if p.Slot(3-slot) == viabilidadID {
		return invalid("id_viabilidad", "already assigned to the other slot")
	}
	return nil
}

// assignConflict explains a rejected slot write from the record as it is now.
func (u *P2PUseCase) assignConflict(ctx context.Context, p2pID int64, slot int, viabilidadID int64) error {
	current, err := u.get(ctx, p2pID)
	if err != nil {
		return err
	}
	if err := checkAssignable(current, slot, viabilidadID); err != nil {
		return err
	}
	return ErrConcurrencyConflict
}

func (u *P2PUseCase) Approve(ctx context.Context, p2pID int64) (entities.P2P, error) {
	p, err := u.get(ctx, p2pID)
	if err != nil {
		return entities.P2P{}, err
	}
	if p.Estado == entities.EstadoP2PAprobado {
		return p, nil
	}
	if p.Estado != entities.EstadoP2PProceso {
		return entities.P2P{}, invalidTransition(p.Estado, entities.EstadoP2PAprobado)
	}
	if !p.BothAssigned() {
		return entities.P2P{}, ErrIncompletePairing
	}

	updated, err := u.repo.UpdateEstado(ctx, p2pID, entities.P2PStateChange{
		From: entities.EstadoP2PProceso,
		To:   entities.EstadoP2PAprobado,
		At:   time.Now().UTC(),
	})
	if errors.Is(err, interfaces.ErrConditionFailed) {
		// A concurrent approve of the same record still counts as success.
		latest, getErr := u.get(ctx, p2pID)
		if getErr == nil && latest.Estado == entities.EstadoP2PAprobado {
			return latest, nil
		}
		return entities.P2P{}, ErrConcurrencyConflict
	}
	if err != nil {
		return entities.P2P{}, err
	}

	logger.Info("p2p approved", zap.Int64("p2p_id", p2pID))
	return updated, nil
}

func (u *P2PUseCase) Complete(ctx context.Context, p2pID int64) (entities.P2P, error) {
	p, err := u.get(ctx, p2pID)
	if err != nil {
		return entities.P2P{}, err
	}
	if p.Estado != entities.EstadoP2PAprobado {
		return entities.P2P{}, invalidTransition(p.Estado, entities.EstadoP2PCompletado)
	}
	return u.transition(ctx, p, entities.EstadoP2PCompletado, "")
}

func (u *P2PUseCase) Cancel(ctx context.Context, p2pID int64, motivo string) (entities.P2P, error) {
	p, err := u.get(ctx, p2pID)
	if err != nil {
		return entities.P2P{}, err
	}
	if p.Estado.IsTerminal() {
		return entities.P2P{}, ErrAlreadyTerminal
	}
	return u.transition(ctx, p, entities.EstadoP2PCancelado, strings.TrimSpace(motivo))
}

func (u *P2PUseCase) transition(ctx context.Context, p entities.P2P, to entities.EstadoP2P, motivo string) (entities.P2P, error) {
	if !entities.CanTransitionP2P(p.Estado, to) {
		return entities.P2P{}, invalidTransition(p.Estado, to)
	}
	updated, err := u.repo.UpdateEstado(ctx, p.ID, entities.P2PStateChange{
		From:   p.Estado,
		To:     to,
		Motivo: motivo,
		At:     time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.P2P{}, ErrConcurrencyConflict
		}
		return entities.P2P{}, err
	}
	logger.Info("p2p transitioned",
		zap.Int64("p2p_id", p.ID),
		zap.String("from", string(p.Estado)),
		zap.String("to", string(to)),
	)
	return updated, nil
}

func (u *P2PUseCase) Get(ctx context.Context, p2pID int64) (entities.P2PView, error) {
	p, err := u.get(ctx, p2pID)
	if err != nil {
		return entities.P2PView{}, err
	}
	return u.view(ctx, p)
}

func (u *P2PUseCase) List(ctx context.Context, estado entities.EstadoP2P) ([]entities.P2PView, error) {
	if !estado.Valid() {
		return nil, invalid("estado", "unknown p2p state")
	}
	records, err := u.repo.ListByEstado(ctx, estado)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []entities.P2PView{}, nil
	}

	ids := make([]int64, 0, len(records)*2)
	for _, p := range records {
		ids = appendNonZero(ids, p.Punto1, p.Punto2)
	}
	byID, err := u.lookup(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]entities.P2PView, 0, len(records))
	for _, p := range records {
		views = append(views, entities.NewP2PView(p, byID))
	}
	return views, nil
}

func (u *P2PUseCase) get(ctx context.Context, id int64) (entities.P2P, error) {
	if id <= 0 {
		return entities.P2P{}, invalid("id_p2p", "must be positive")
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.P2P{}, err
	}
	if p.ID == 0 {
		return entities.P2P{}, ErrP2PNotFound
	}
	return p, nil
}

// view joins the slot display data at read time so it never drifts from the
// source viability.
func (u *P2PUseCase) view(ctx context.Context, p entities.P2P) (entities.P2PView, error) {
	byID, err := u.lookup(ctx, appendNonZero(nil, p.Punto1, p.Punto2))
	if err != nil {
		return entities.P2PView{}, err
	}
	return entities.NewP2PView(p, byID), nil
}

func (u *P2PUseCase) lookup(ctx context.Context, ids []int64) (map[int64]entities.Viabilidad, error) {
	if len(ids) == 0 {
		return map[int64]entities.Viabilidad{}, nil
	}
	return u.viabilidades.GetMany(ctx, ids)
}

func appendNonZero(dst []int64, ids ...int64) []int64 {
	for _, id := range ids {
		if id != 0 {
			dst = append(dst, id)
		}
	}
	return dst
}
