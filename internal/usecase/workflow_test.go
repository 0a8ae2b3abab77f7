package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase/interfaces"
	mock_interfaces "fibra_provisioning/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// memStore keeps the whole workflow in memory and enforces the same write
// conditions the DynamoDB repositories do.
type memStore struct {
	seqs    map[string]int64
	viabs   map[int64]entities.Viabilidad
	p2ps    map[int64]entities.P2P
	ordenes map[int64]entities.OrdenServicio
	enlaces map[int64]entities.Enlace
}

func newMemStore() *memStore {
	return &memStore{
		seqs:    map[string]int64{},
		viabs:   map[int64]entities.Viabilidad{},
		p2ps:    map[int64]entities.P2P{},
		ordenes: map[int64]entities.OrdenServicio{},
		enlaces: map[int64]entities.Enlace{},
	}
}

func (s *memStore) Next(_ context.Context, name string) (int64, error) {
	s.seqs[name]++
	return s.seqs[name], nil
}

type memViabilidades struct{ *memStore }

func (r memViabilidades) Create(_ context.Context, v entities.Viabilidad) (entities.Viabilidad, error) {
	r.viabs[v.ID] = v
	return v, nil
}

func (r memViabilidades) GetByID(_ context.Context, id int64) (entities.Viabilidad, error) {
	return r.viabs[id], nil
}

func (r memViabilidades) GetMany(_ context.Context, ids []int64) (map[int64]entities.Viabilidad, error) {
	out := map[int64]entities.Viabilidad{}
	for _, id := range ids {
		if v, ok := r.viabs[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func (r memViabilidades) ListByProceso(_ context.Context, proceso entities.ProcesoViabilidad, _ entities.ViabilidadFilter) ([]entities.Viabilidad, error) {
	var out []entities.Viabilidad
	for _, v := range r.viabs {
		if v.Proceso == proceso {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memViabilidades) UpdateProceso(_ context.Context, id int64, from entities.ProcesoViabilidad, change entities.ViabilidadStateChange) (entities.Viabilidad, error) {
	v, ok := r.viabs[id]
	if !ok || v.Proceso != from {
		return entities.Viabilidad{}, interfaces.ErrConditionFailed
	}
	v.Proceso = change.To
	v.Cancelada = change.Cancelada
	v.UpdatedAt = change.At
	r.viabs[id] = v
	return v, nil
}

type memP2P struct{ *memStore }

func (r memP2P) Create(_ context.Context, p entities.P2P) (entities.P2P, error) {
	r.p2ps[p.ID] = p
	return p, nil
}

func (r memP2P) GetByID(_ context.Context, id int64) (entities.P2P, error) {
	return r.p2ps[id], nil
}

func (r memP2P) ListByEstado(_ context.Context, estado entities.EstadoP2P) ([]entities.P2P, error) {
	var out []entities.P2P
	for _, p := range r.p2ps {
		if p.Estado == estado {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memP2P) AssignPoint(_ context.Context, id int64, slot int, viabilidadID int64) (entities.P2P, error) {
	p, ok := r.p2ps[id]
	if !ok || p.Estado != entities.EstadoP2PProceso || p.Slot(slot) != 0 || p.Slot(3-slot) == viabilidadID {
		return entities.P2P{}, interfaces.ErrConditionFailed
	}
	if slot == 1 {
		p.Punto1 = viabilidadID
	} else {
		p.Punto2 = viabilidadID
	}
	r.p2ps[id] = p
	return p, nil
}

func (r memP2P) UpdateEstado(_ context.Context, id int64, change entities.P2PStateChange) (entities.P2P, error) {
	p, ok := r.p2ps[id]
	if !ok || p.Estado != change.From {
		return entities.P2P{}, interfaces.ErrConditionFailed
	}
	if change.To == entities.EstadoP2PAprobado && (p.Punto1 == 0 || p.Punto2 == 0 || p.Punto1 == p.Punto2) {
		return entities.P2P{}, interfaces.ErrConditionFailed
	}
	p.Estado = change.To
	p.UpdatedAt = change.At
	r.p2ps[id] = p
	return p, nil
}

type memOrdenes struct{ *memStore }

func (r memOrdenes) CreateFromViabilidad(_ context.Context, o entities.OrdenServicio) (entities.OrdenServicio, error) {
	v, ok := r.viabs[o.IDViabilidad]
	if !ok || !v.EligibleForOrder() {
		return entities.OrdenServicio{}, interfaces.ErrConditionFailed
	}
	v.IDOrdenServicio = o.ID
	r.viabs[v.ID] = v
	r.ordenes[o.ID] = o
	return o, nil
}

func (r memOrdenes) GetByID(_ context.Context, id int64) (entities.OrdenServicio, error) {
	return r.ordenes[id], nil
}

func (r memOrdenes) ListByEstado(_ context.Context, estado entities.EstadoOrden) ([]entities.OrdenServicio, error) {
	var out []entities.OrdenServicio
	for _, o := range r.ordenes {
		if o.Estado == estado {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r memOrdenes) UpdateEstado(_ context.Context, id int64, change entities.OrdenStateChange) (entities.OrdenServicio, error) {
	o, ok := r.ordenes[id]
	if !ok || o.Estado != entities.EstadoOrdenEnProceso {
		return entities.OrdenServicio{}, interfaces.ErrConditionFailed
	}
	o.Estado = change.To
	o.UpdatedAt = change.At
	r.ordenes[id] = o
	return o, nil
}

func (r memOrdenes) Update(_ context.Context, o entities.OrdenServicio, prevUpdatedAt time.Time) (entities.OrdenServicio, error) {
	stored, ok := r.ordenes[o.ID]
	if !ok || stored.Estado != entities.EstadoOrdenEnProceso || !stored.UpdatedAt.Equal(prevUpdatedAt) {
		return entities.OrdenServicio{}, interfaces.ErrConditionFailed
	}
	r.ordenes[o.ID] = o
	return o, nil
}

type memEnlaces struct{ *memStore }

func (r memEnlaces) Activate(_ context.Context, e entities.Enlace, prevUpdatedAt time.Time) (entities.Enlace, error) {
	o, ok := r.ordenes[e.IDOrdenServicio]
	if !ok || o.Estado != entities.EstadoOrdenEnProceso || !o.UpdatedAt.Equal(prevUpdatedAt) {
		return entities.Enlace{}, interfaces.ErrConditionFailed
	}
	if _, exists := r.enlaces[e.ID]; exists {
		return entities.Enlace{}, interfaces.ErrConditionFailed
	}
	o.Estado = entities.EstadoOrdenCompletado
	o.UpdatedAt = e.FechaCreacion
	r.ordenes[o.ID] = o
	r.enlaces[e.ID] = e
	return e, nil
}

func (r memEnlaces) GetByID(_ context.Context, id int64) (entities.Enlace, error) {
	return r.enlaces[id], nil
}

func (r memEnlaces) Deactivate(_ context.Context, id int64) (entities.Enlace, error) {
	e, ok := r.enlaces[id]
	if !ok {
		return entities.Enlace{}, nil
	}
	e.Estado = false
	r.enlaces[id] = e
	return e, nil
}

func newViabilityCommand(documento string, mrc float64) CreateViabilityCommand {
	lat, lng := 19.43, -99.13
	return CreateViabilityCommand{
		NumeroDocumento: documento,
		PuntoA:          PuntoCommand{IDModulo: 1, Latitud: &lat, Longitud: &lng},
		PuntoZ:          PuntoCommand{IDModulo: 2, Latitud: &lat, Longitud: &lng},
		IDEmpresa:       10,
		IDTipoEnlace:    2,
		MRC:             mrc,
	}
}

func TestWorkflow_ViabilityToActiveCircuit(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	evidence := mock_interfaces.NewMockIEvidenceStore(gomock.NewController(t))

	viabilities := NewViabilityUseCase(memViabilidades{store}, store, nil, 30)
	orders := NewServiceOrderUseCase(memOrdenes{store}, memViabilidades{store}, store)
	activation := NewCircuitActivationUseCase(memOrdenes{store}, memEnlaces{store}, evidence, store, NewNoChargePolicy(nil, nil))

	v1, err := viabilities.CreateViability(ctx, newViabilityCommand("V-0001", 50))
	if err != nil {
		t.Fatalf("create viability: %v", err)
	}
	if v1.Proceso != entities.ProcesoPorAprobar {
		t.Fatalf("expected PorAprobar, got %v", v1.Proceso)
	}

	if _, err := viabilities.Transition(ctx, v1.ID, entities.TargetAprobada, ""); err != nil {
		t.Fatalf("approve viability: %v", err)
	}

	o1, err := orders.CreateFromViability(ctx, v1.ID)
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if o1.Estado != entities.EstadoOrdenEnProceso || o1.MRCVenta != 50 {
		t.Fatalf("unexpected order: %+v", o1)
	}
	if store.viabs[v1.ID].IDOrdenServicio != o1.ID {
		t.Fatalf("viability not stamped with order %d", o1.ID)
	}

	evidence.EXPECT().HasRequiredFiles(gomock.Any(), o1.ID).Return(true, nil)
	e1, err := activation.Activate(ctx, o1.ID, "2024-03-15")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if e1.IDOrdenServicio != o1.ID || e1.IDViabilidad != v1.ID || e1.MRCVenta != 50 || !e1.Estado {
		t.Fatalf("unexpected enlace: %+v", e1)
	}
	if e1.MesFacturacion != 3 || e1.AnioFacturacion != 2024 {
		t.Fatalf("unexpected billing period %d/%d", e1.MesFacturacion, e1.AnioFacturacion)
	}

	o1, err = orders.GetByID(ctx, o1.ID)
	if err != nil {
		t.Fatalf("reload order: %v", err)
	}
	if o1.Estado != entities.EstadoOrdenCompletado {
		t.Fatalf("expected Completado, got %v", o1.Estado)
	}
	if _, err := activation.Activate(ctx, o1.ID, "2024-03-16"); !errors.Is(err, ErrOrderNotActivatable) {
		t.Fatalf("expected ErrOrderNotActivatable on second activation, got %v", err)
	}
}

func TestWorkflow_PairingNeedsBothSlots(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	viabilities := NewViabilityUseCase(memViabilidades{store}, store, nil, 30)
	pairing := NewP2PUseCase(memP2P{store}, memViabilidades{store}, store)

	v1, err := viabilities.CreateViability(ctx, newViabilityCommand("V-0001", 50))
	if err != nil {
		t.Fatalf("create v1: %v", err)
	}
	v2, err := viabilities.CreateViability(ctx, newViabilityCommand("V-0002", 80))
	if err != nil {
		t.Fatalf("create v2: %v", err)
	}

	d1, err := pairing.CreateDraft(ctx, entities.TipoP2PPoste)
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}

	if _, err := pairing.AssignPoint(ctx, d1.ID, 1, v1.ID); err != nil {
		t.Fatalf("assign slot 1: %v", err)
	}
	if _, err := pairing.Approve(ctx, d1.ID); !errors.Is(err, ErrIncompletePairing) {
		t.Fatalf("expected ErrIncompletePairing, got %v", err)
	}
	if _, err := pairing.AssignPoint(ctx, d1.ID, 2, v1.ID); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for the same viability twice, got %v", err)
	}

	view, err := pairing.AssignPoint(ctx, d1.ID, 2, v2.ID)
	if err != nil {
		t.Fatalf("assign slot 2: %v", err)
	}
	if view.Puntos[0].Nombre != "V-0001" || view.Puntos[1].Nombre != "V-0002" {
		t.Fatalf("unexpected view: %+v", view.Puntos)
	}

	approved, err := pairing.Approve(ctx, d1.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Estado != entities.EstadoP2PAprobado {
		t.Fatalf("expected Aprobado, got %s", approved.Estado)
	}
}
