package handlers

import (
	"net/http"

	request "fibra_provisioning/internal/adapter/http/dto/request"
	response "fibra_provisioning/internal/adapter/http/dto/response"
	"fibra_provisioning/internal/usecase"

	"github.com/gin-gonic/gin"
)

const entityEnlace = "enlace"

// EnlaceHandler exposes circuit activation.
type EnlaceHandler struct {
	usecase usecase.ICircuitActivationUseCase
}

func NewEnlaceHandler(uc usecase.ICircuitActivationUseCase) *EnlaceHandler {
	return &EnlaceHandler{usecase: uc}
}

// ActivateServiceOrder turns an in-process order into a billable Enlace.
// Requires OTDR evidence for every configured side and a recurring charge
// unless the link type is exempt.
//
// @Summary      Activate service order
// @Tags         enlaces
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "Service order ID"
// @Param        body  body      request.ActivateRequest  true  "Activation date (YYYY-MM-DD)"
// @Success      201   {object}  response.EnlaceResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /service-orders/{id}/activate [post]
func (h *EnlaceHandler) ActivateServiceOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.ActivateRequest
	if !bindJSON(c, &payload) {
		return
	}

	e, err := h.usecase.Activate(c.Request.Context(), id, payload.FechaActivacion)
	respond(c, entityEnlace, "activate", err, http.StatusCreated, response.FromEnlace(e))
}

// GetEnlace godoc
//
// @Summary      Get enlace
// @Tags         enlaces
// @Produce      json
// @Param        id   path      int  true  "Enlace ID"
// @Success      200  {object}  response.EnlaceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /enlaces/{id} [get]
func (h *EnlaceHandler) GetEnlace(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	e, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapProvisioningError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEnlace(e))
}

// DeactivateEnlace godoc
//
// @Summary      Deactivate enlace
// @Tags         enlaces
// @Produce      json
// @Param        id   path      int  true  "Enlace ID"
// @Success      200  {object}  response.EnlaceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /enlaces/{id}/deactivate [patch]
func (h *EnlaceHandler) DeactivateEnlace(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	e, err := h.usecase.Deactivate(c.Request.Context(), id)
	respond(c, entityEnlace, "deactivate", err, http.StatusOK, response.FromEnlace(e))
}
