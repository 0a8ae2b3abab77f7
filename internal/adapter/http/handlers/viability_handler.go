package handlers

import (
	"net/http"
	"strings"

	request "fibra_provisioning/internal/adapter/http/dto/request"
	response "fibra_provisioning/internal/adapter/http/dto/response"
	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase"

	"github.com/gin-gonic/gin"
)

const entityViability = "viabilidad"

// ViabilityHandler exposes the viability ledger.
type ViabilityHandler struct {
	usecase usecase.IViabilityUseCase
}

func NewViabilityHandler(uc usecase.IViabilityUseCase) *ViabilityHandler {
	return &ViabilityHandler{usecase: uc}
}

// CreateViability registers a new request in PorAprobar.
//
// @Summary      Create viability
// @Tags         viabilities
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateViabilityRequest  true  "Viability"
// @Success      201   {object}  response.ViabilityResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /viabilities [post]
func (h *ViabilityHandler) CreateViability(c *gin.Context) {
	var payload request.CreateViabilityRequest
	if !bindJSON(c, &payload) {
		return
	}

	v, err := h.usecase.CreateViability(c.Request.Context(), payload.ToCommand())
	respond(c, entityViability, "create", err, http.StatusCreated, response.FromViability(v))
}

// GetViability returns one viability by id.
//
// @Summary      Get viability
// @Tags         viabilities
// @Produce      json
// @Param        id   path      int  true  "Viability ID"
// @Success      200  {object}  response.ViabilityResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /viabilities/{id} [get]
func (h *ViabilityHandler) GetViability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	v, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapProvisioningError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromViability(v))
}

// TransitionViability moves a viability through the approval process.
//
// @Summary      Transition viability
// @Tags         viabilities
// @Accept       json
// @Produce      json
// @Param        id    path      int                                 true  "Viability ID"
// @Param        body  body      request.TransitionViabilityRequest  true  "Target state"
// @Success      200   {object}  response.ViabilityResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /viabilities/{id}/transition [patch]
func (h *ViabilityHandler) TransitionViability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.TransitionViabilityRequest
	if !bindJSON(c, &payload) {
		return
	}

	target := payload.ResolveTarget()
	action := "transition"
	if target.Valid() {
		action = "transition_" + strings.ToLower(string(target))
	}

	v, err := h.usecase.Transition(c.Request.Context(), id, target, payload.Motivo)
	respond(c, entityViability, action, err, http.StatusOK, response.FromViability(v))
}

// ListViabilities lists one process state.
//
// @Summary      List viabilities by process state
// @Tags         viabilities
// @Produce      json
// @Param        state               query     int   true   "Process state (1-4)"
// @Param        empresa             query     int   false  "Company filter"
// @Param        tipo_enlace         query     int   false  "Link type filter"
// @Param        sin_orden           query     bool  false  "Only requests without a service order"
// @Param        incluir_canceladas  query     bool  false  "Include cancelled requests"
// @Success      200                 {array}   response.ViabilityResponse
// @Failure      400                 {object}  pkg.HTTPError
// @Router       /viabilities [get]
func (h *ViabilityHandler) ListViabilities(c *gin.Context) {
	var q request.ViabilityListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	list, err := h.usecase.ListByProcessState(c.Request.Context(), entities.ProcesoViabilidad(q.State), q.Filter())
	if err != nil {
		writeError(c, mapProvisioningError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromViabilities(list))
}

// GetQueues returns the four candidate queues used by the pairing and order
// wizards.
//
// @Summary      Viability queues
// @Tags         viabilities
// @Produce      json
// @Param        empresa             query     int   false  "Company filter"
// @Param        tipo_enlace         query     int   false  "Link type filter"
// @Param        sin_orden           query     bool  false  "Only requests without a service order"
// @Param        incluir_canceladas  query     bool  false  "Include cancelled requests"
// @Success      200                 {object}  response.ViabilityQueuesResponse
// @Router       /viabilities/queues [get]
func (h *ViabilityHandler) GetQueues(c *gin.Context) {
	var q request.ViabilityListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidPayload)
		return
	}

	queues, err := h.usecase.Queues(c.Request.Context(), q.Filter())
	if err != nil {
		writeError(c, mapProvisioningError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromViabilityQueues(queues))
}
