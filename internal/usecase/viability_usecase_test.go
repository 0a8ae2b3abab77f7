package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase/interfaces"
	mock_interfaces "fibra_provisioning/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func f64(v float64) *float64 { return &v }

func validViabilityCommand() CreateViabilityCommand {
	return CreateViabilityCommand{
		NumeroDocumento: "DOC-100",
		PuntoA:          PuntoCommand{IDModulo: 1, Latitud: f64(19.43), Longitud: f64(-99.13)},
		PuntoZ:          PuntoCommand{IDModulo: 2, Latitud: f64(20.67), Longitud: f64(-103.35)},
		IDEmpresa:       10,
		IDTipoEnlace:    2,
		MRC:             1500,
		NRC:             300,
	}
}

func TestViabilityUseCase_CreateViability(t *testing.T) {
	t.Run("missing document number", func(t *testing.T) {
		uc := NewViabilityUseCase(nil, nil, nil, 30)
		cmd := validViabilityCommand()
		cmd.NumeroDocumento = "  "

		_, err := uc.CreateViability(context.Background(), cmd)
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "numero_documento" {
			t.Fatalf("expected numero_documento validation error, got %v", err)
		}
	})

	t.Run("missing coordinate", func(t *testing.T) {
		uc := NewViabilityUseCase(nil, nil, nil, 30)
		cmd := validViabilityCommand()
		cmd.PuntoZ.Latitud = nil

		_, err := uc.CreateViability(context.Background(), cmd)
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "punto_z.latitud" {
			t.Fatalf("expected punto_z.latitud validation error, got %v", err)
		}
	})

	t.Run("latitude out of range", func(t *testing.T) {
		uc := NewViabilityUseCase(nil, nil, nil, 30)
		cmd := validViabilityCommand()
		cmd.PuntoA.Latitud = f64(91)

		_, err := uc.CreateViability(context.Background(), cmd)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewViabilityUseCase(nil, nil, nil, 30)
		cmd := validViabilityCommand()
		cmd.NRCCosto = -1

		_, err := uc.CreateViability(context.Background(), cmd)
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "nrc_costo" {
			t.Fatalf("expected nrc_costo validation error, got %v", err)
		}
	})

	t.Run("inactive company in catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogGateway(ctrl)
		uc := NewViabilityUseCase(nil, nil, catalog, 30)

		catalog.EXPECT().GetEmpresa(gomock.Any(), int64(10)).Return(entities.Empresa{ID: 10, Activo: false}, nil)

		_, err := uc.CreateViability(context.Background(), validViabilityCommand())
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "id_empresa" {
			t.Fatalf("expected id_empresa validation error, got %v", err)
		}
	})

	t.Run("unknown link type in catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogGateway(ctrl)
		uc := NewViabilityUseCase(nil, nil, catalog, 30)

		catalog.EXPECT().GetEmpresa(gomock.Any(), int64(10)).Return(entities.Empresa{ID: 10, Activo: true}, nil)
		catalog.EXPECT().GetTipoEnlace(gomock.Any(), int64(2)).Return(entities.TipoEnlace{}, nil)

		_, err := uc.CreateViability(context.Background(), validViabilityCommand())
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "id_tipo_enlace" {
			t.Fatalf("expected id_tipo_enlace validation error, got %v", err)
		}
	})

	t.Run("sequence error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		seq := mock_interfaces.NewMockISequence(ctrl)
		uc := NewViabilityUseCase(nil, seq, nil, 30)

		seq.EXPECT().Next(gomock.Any(), "viabilidad").Return(int64(0), errors.New("counter"))

		_, err := uc.CreateViability(context.Background(), validViabilityCommand())
		if err == nil || err.Error() != "counter" {
			t.Fatalf("expected counter error, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIViabilidadRepository(ctrl)
		seq := mock_interfaces.NewMockISequence(ctrl)
		uc := NewViabilityUseCase(repo, seq, nil, 30)

		seq.EXPECT().Next(gomock.Any(), "viabilidad").Return(int64(7), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Viabilidad{})).DoAndReturn(
			func(_ context.Context, v entities.Viabilidad) (entities.Viabilidad, error) {
				if v.ID != 7 || v.Proceso != entities.ProcesoPorAprobar || v.Cancelada || v.IDOrdenServicio != 0 {
					t.Fatalf("unexpected viability: %+v", v)
				}
				if v.Nombre != "DOC-100" {
					t.Fatalf("expected nombre to default to the document number, got %q", v.Nombre)
				}
				if got := v.FechaVencimiento.Sub(v.FechaCreacion); got != 30*24*time.Hour {
					t.Fatalf("expected 30 day validity, got %v", got)
				}
				if v.PuntoA.Latitud != 19.43 || v.PuntoZ.Longitud != -103.35 {
					t.Fatalf("unexpected points: %+v %+v", v.PuntoA, v.PuntoZ)
				}
				return v, nil
			},
		)

		out, err := uc.CreateViability(context.Background(), validViabilityCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ID != 7 {
			t.Fatalf("expected id 7, got %d", out.ID)
		}
	})
}

func TestViabilityUseCase_Transition(t *testing.T) {
	t.Run("unknown target", func(t *testing.T) {
		uc := NewViabilityUseCase(nil, nil, nil, 30)
		_, err := uc.Transition(context.Background(), 1, "Archivada", "")
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("cancel requires motivo", func(t *testing.T) {
		uc := NewViabilityUseCase(nil, nil, nil, 30)
		_, err := uc.Transition(context.Background(), 1, entities.TargetCancelada, " ")
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "motivo" {
			t.Fatalf("expected motivo validation error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIViabilidadRepository(ctrl)
		uc := NewViabilityUseCase(repo, nil, nil, 30)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Viabilidad{}, nil)

		_, err := uc.Transition(context.Background(), 1, entities.TargetAprobada, "")
		if !errors.Is(err, ErrViabilityNotFound) {
			t.Fatalf("expected ErrViabilityNotFound, got %v", err)
		}
	})

	t.Run("approve from por aprobar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIViabilidadRepository(ctrl)
		uc := NewViabilityUseCase(repo, nil, nil, 30)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Viabilidad{ID: 1, Proceso: entities.ProcesoPorAprobar}, nil)
		repo.EXPECT().UpdateProceso(gomock.Any(), int64(1), entities.ProcesoPorAprobar, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, _ entities.ProcesoViabilidad, c entities.ViabilidadStateChange) (entities.Viabilidad, error) {
				if c.To != entities.ProcesoAprobada || c.Cancelada {
					t.Fatalf("unexpected change: %+v", c)
				}
				return entities.Viabilidad{ID: 1, Proceso: entities.ProcesoAprobada}, nil
			},
		)

		out, err := uc.Transition(context.Background(), 1, entities.TargetAprobada, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Proceso != entities.ProcesoAprobada {
			t.Fatalf("expected aprobada, got %v", out.Proceso)
		}
	})

	t.Run("approve twice is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIViabilidadRepository(ctrl)
		uc := NewViabilityUseCase(repo, nil, nil, 30)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Viabilidad{ID: 1, Proceso: entities.ProcesoAprobada}, nil)

		out, err := uc.Transition(context.Background(), 1, entities.TargetAprobada, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Proceso != entities.ProcesoAprobada {
			t.Fatalf("expected aprobada, got %v", out.Proceso)
		}
	})

	t.Run("cancel marks the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIViabilidadRepository(ctrl)
		uc := NewViabilityUseCase(repo, nil, nil, 30)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Viabilidad{ID: 1, Proceso: entities.ProcesoEnProceso}, nil)
		repo.EXPECT().UpdateProceso(gomock.Any(), int64(1), entities.ProcesoEnProceso, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, _ entities.ProcesoViabilidad, c entities.ViabilidadStateChange) (entities.Viabilidad, error) {
				if c.To != entities.ProcesoNoAprobada || !c.Cancelada || c.Motivo != "cliente desiste" {
					t.Fatalf("unexpected change: %+v", c)
				}
				return entities.Viabilidad{ID: 1, Proceso: entities.ProcesoNoAprobada, Cancelada: true, MotivoCancelacion: c.Motivo}, nil
			},
		)

		out, err := uc.Transition(context.Background(), 1, entities.TargetCancelada, "cliente desiste")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Cancelada {
			t.Fatalf("expected cancelled viability, got %+v", out)
		}
	})

	t.Run("terminal state rejects transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIViabilidadRepository(ctrl)
		uc := NewViabilityUseCase(repo, nil, nil, 30)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Viabilidad{ID: 1, Proceso: entities.ProcesoNoAprobada}, nil)

		_, err := uc.Transition(context.Background(), 1, entities.TargetAprobada, "")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("condition failed becomes concurrency conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIViabilidadRepository(ctrl)
		uc := NewViabilityUseCase(repo, nil, nil, 30)

		repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Viabilidad{ID: 1, Proceso: entities.ProcesoPorAprobar}, nil)
		repo.EXPECT().UpdateProceso(gomock.Any(), int64(1), entities.ProcesoPorAprobar, gomock.Any()).Return(entities.Viabilidad{}, interfaces.ErrConditionFailed)

		_, err := uc.Transition(context.Background(), 1, entities.TargetNoAprobada, "")
		if !errors.Is(err, ErrConcurrencyConflict) {
			t.Fatalf("expected ErrConcurrencyConflict, got %v", err)
		}
	})
}

func TestViabilityUseCase_Queues(t *testing.T) {
	t.Run("invalid state", func(t *testing.T) {
		uc := NewViabilityUseCase(nil, nil, nil, 30)
		_, err := uc.ListByProcessState(context.Background(), entities.ProcesoViabilidad(9), entities.ViabilidadFilter{})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("four disjoint queues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIViabilidadRepository(ctrl)
		uc := NewViabilityUseCase(repo, nil, nil, 30)

		filter := entities.ViabilidadFilter{IDEmpresa: 10}
		repo.EXPECT().ListByProceso(gomock.Any(), entities.ProcesoEnProceso, filter).Return([]entities.Viabilidad{{ID: 2}}, nil)
		repo.EXPECT().ListByProceso(gomock.Any(), entities.ProcesoPorAprobar, filter).Return([]entities.Viabilidad{{ID: 1}}, nil)
		repo.EXPECT().ListByProceso(gomock.Any(), entities.ProcesoNoAprobada, filter).Return(nil, nil)
		repo.EXPECT().ListByProceso(gomock.Any(), entities.ProcesoAprobada, filter).Return([]entities.Viabilidad{{ID: 3}, {ID: 4}}, nil)

		q, err := uc.Queues(context.Background(), filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(q.Proceso) != 1 || len(q.PorAprobar) != 1 || len(q.NoAprobada) != 0 || len(q.Aprobada) != 2 {
			t.Fatalf("unexpected queues: %+v", q)
		}
	})

	t.Run("repo error stops listing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIViabilidadRepository(ctrl)
		uc := NewViabilityUseCase(repo, nil, nil, 30)

		repo.EXPECT().ListByProceso(gomock.Any(), entities.ProcesoEnProceso, gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.Queues(context.Background(), entities.ViabilidadFilter{})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
