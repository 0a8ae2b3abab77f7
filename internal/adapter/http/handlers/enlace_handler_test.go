package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	response "fibra_provisioning/internal/adapter/http/dto/response"
	"fibra_provisioning/internal/adapter/http/handlers/mocks"
	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEnlaceRouter(t *testing.T) (*gin.Engine, *mocks.MockICircuitActivationUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICircuitActivationUseCase(ctrl)
	h := NewEnlaceHandler(uc)

	r := gin.New()
	r.POST("/v1/service-orders/:id/activate", h.ActivateServiceOrder)
	r.GET("/v1/enlaces/:id", h.GetEnlace)
	r.PATCH("/v1/enlaces/:id/deactivate", h.DeactivateEnlace)
	return r, uc
}

func TestEnlaceHandler_Activate(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"missing evidence", usecase.ErrMissingEvidence, http.StatusUnprocessableEntity, "MISSING_EVIDENCE"},
		{"missing pricing", usecase.ErrMissingPricing, http.StatusUnprocessableEntity, "MISSING_PRICING"},
		{"not activatable", usecase.ErrOrderNotActivatable, http.StatusConflict, "SERVICE_ORDER_NOT_ACTIVATABLE"},
		{"conflict", usecase.ErrConcurrencyConflict, http.StatusConflict, "CONCURRENCY_CONFLICT"},
		{"bad date", &usecase.ValidationError{Field: "fecha_activacion", Reason: "expected YYYY-MM-DD"}, http.StatusBadRequest, "INVALID_REQUEST"},
		{"evidence store down", errors.New("s3 unavailable"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, uc := newEnlaceRouter(t)
			uc.EXPECT().Activate(gomock.Any(), int64(42), "2026-03-15").Return(entities.Enlace{}, tt.err)

			w := performRequest(r, http.MethodPost, "/v1/service-orders/42/activate", `{"fecha_activacion":"2026-03-15"}`)
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
			if body := decodeError(t, w); body.Code != tt.code {
				t.Fatalf("expected %s, got %+v", tt.code, body)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		r, uc := newEnlaceRouter(t)
		uc.EXPECT().Activate(gomock.Any(), int64(42), "2026-03-15").Return(entities.Enlace{
			ID:              9,
			IDOrdenServicio: 42,
			FechaActivacion: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			MesFacturacion:  3,
			AnioFacturacion: 2026,
			Estado:          true,
		}, nil)

		w := performRequest(r, http.MethodPost, "/v1/service-orders/42/activate", `{"fecha_activacion":"2026-03-15"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var res response.EnlaceResponse
		decodeBody(t, w, &res)
		if res.ID != 9 || res.FechaActivacion != "2026-03-15" || res.MesFacturacion != 3 || !res.Activo {
			t.Fatalf("unexpected body: %+v", res)
		}
	})
}

func TestEnlaceHandler_GetAndDeactivate(t *testing.T) {
	r, uc := newEnlaceRouter(t)
	uc.EXPECT().GetByID(gomock.Any(), int64(8)).Return(entities.Enlace{}, usecase.ErrEnlaceNotFound)
	uc.EXPECT().Deactivate(gomock.Any(), int64(9)).Return(entities.Enlace{ID: 9, Estado: false}, nil)

	if w := performRequest(r, http.MethodGet, "/v1/enlaces/8", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w := performRequest(r, http.MethodPatch, "/v1/enlaces/9/deactivate", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res response.EnlaceResponse
	decodeBody(t, w, &res)
	if res.Activo {
		t.Fatalf("expected inactive enlace: %+v", res)
	}

	if w := performRequest(r, http.MethodPatch, "/v1/enlaces/0/deactivate", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
