package handlers

import (
	"net/http"
	"testing"

	response "fibra_provisioning/internal/adapter/http/dto/response"
	"fibra_provisioning/internal/adapter/http/handlers/mocks"
	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newViabilityRouter(t *testing.T) (*gin.Engine, *mocks.MockIViabilityUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIViabilityUseCase(ctrl)
	h := NewViabilityHandler(uc)

	r := gin.New()
	r.POST("/v1/viabilities", h.CreateViability)
	r.GET("/v1/viabilities", h.ListViabilities)
	r.GET("/v1/viabilities/queues", h.GetQueues)
	r.GET("/v1/viabilities/:id", h.GetViability)
	r.PATCH("/v1/viabilities/:id/transition", h.TransitionViability)
	return r, uc
}

func TestViabilityHandler_CreateViability(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newViabilityRouter(t)

		w := performRequest(r, http.MethodPost, "/v1/viabilities", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error carries field", func(t *testing.T) {
		r, uc := newViabilityRouter(t)
		uc.EXPECT().CreateViability(gomock.Any(), gomock.Any()).
			Return(entities.Viabilidad{}, &usecase.ValidationError{Field: "numero_documento", Reason: "required"})

		w := performRequest(r, http.MethodPost, "/v1/viabilities", `{"nombre":"Torre Norte"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Field != "numero_documento" {
			t.Fatalf("expected field numero_documento, got %+v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newViabilityRouter(t)
		uc.EXPECT().CreateViability(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, cmd usecase.CreateViabilityCommand) (entities.Viabilidad, error) {
				if cmd.NumeroDocumento != "VB-001" || cmd.IDEmpresa != 10 || cmd.PuntoA.Latitud == nil {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Viabilidad{ID: 7, NumeroDocumento: cmd.NumeroDocumento, Proceso: entities.ProcesoPorAprobar}, nil
			})

		w := performRequest(r, http.MethodPost, "/v1/viabilities",
			`{"nombre":"Torre Norte","numero_documento":"VB-001","id_empresa":10,"punto_a":{"latitud":19.4,"longitud":-99.1}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res response.ViabilityResponse
		decodeBody(t, w, &res)
		if res.ID != 7 || res.Estado != "PorAprobar" {
			t.Fatalf("unexpected body: %+v", res)
		}
	})
}

func TestViabilityHandler_GetViability(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		r, _ := newViabilityRouter(t)

		w := performRequest(r, http.MethodGet, "/v1/viabilities/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newViabilityRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), int64(9)).Return(entities.Viabilidad{}, usecase.ErrViabilityNotFound)

		w := performRequest(r, http.MethodGet, "/v1/viabilities/9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newViabilityRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Viabilidad{ID: 7, Proceso: entities.ProcesoAprobada}, nil)

		w := performRequest(r, http.MethodGet, "/v1/viabilities/7", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestViabilityHandler_TransitionViability(t *testing.T) {
	t.Run("missing target", func(t *testing.T) {
		r, _ := newViabilityRouter(t)

		w := performRequest(r, http.MethodPatch, "/v1/viabilities/7/transition", `{"motivo":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("terminal state conflicts", func(t *testing.T) {
		r, uc := newViabilityRouter(t)
		uc.EXPECT().Transition(gomock.Any(), int64(7), entities.TargetProceso, "").
			Return(entities.Viabilidad{}, usecase.ErrInvalidTransition)

		w := performRequest(r, http.MethodPatch, "/v1/viabilities/7/transition", `{"target":"Proceso"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeError(t, w); body.Code != "INVALID_TRANSITION" {
			t.Fatalf("unexpected code: %+v", body)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		r, uc := newViabilityRouter(t)
		uc.EXPECT().Transition(gomock.Any(), int64(7), entities.TargetCancelada, "duplicada").
			Return(entities.Viabilidad{ID: 7, Proceso: entities.ProcesoNoAprobada, Cancelada: true, MotivoCancelacion: "duplicada"}, nil)

		w := performRequest(r, http.MethodPatch, "/v1/viabilities/7/transition", `{"target":"Cancelada","motivo":"duplicada"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res response.ViabilityResponse
		decodeBody(t, w, &res)
		if res.Estado != "Cancelada" || !res.Cancelada {
			t.Fatalf("unexpected body: %+v", res)
		}
	})
}

func TestViabilityHandler_ListViabilities(t *testing.T) {
	r, uc := newViabilityRouter(t)
	uc.EXPECT().ListByProcessState(gomock.Any(), entities.ProcesoAprobada, entities.ViabilidadFilter{IDEmpresa: 10, SinOrden: true}).
		Return([]entities.Viabilidad{{ID: 1}, {ID: 2}}, nil)

	w := performRequest(r, http.MethodGet, "/v1/viabilities?state=3&empresa=10&sin_orden=true", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []response.ViabilityResponse
	decodeBody(t, w, &res)
	if len(res) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res))
	}
}

func TestViabilityHandler_GetQueues(t *testing.T) {
	r, uc := newViabilityRouter(t)
	uc.EXPECT().Queues(gomock.Any(), entities.ViabilidadFilter{IDTipoEnlace: 2}).
		Return(usecase.ViabilityQueues{PorAprobar: []entities.Viabilidad{{ID: 3}}}, nil)

	w := performRequest(r, http.MethodGet, "/v1/viabilities/queues?tipo_enlace=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res response.ViabilityQueuesResponse
	decodeBody(t, w, &res)
	if len(res.PorAprobar) != 1 || res.Aprobada == nil {
		t.Fatalf("unexpected queues: %+v", res)
	}
}
