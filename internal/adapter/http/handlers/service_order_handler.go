package handlers

import (
	"net/http"
	"strconv"

	request "fibra_provisioning/internal/adapter/http/dto/request"
	response "fibra_provisioning/internal/adapter/http/dto/response"
	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase"
	"fibra_provisioning/pkg"

	"github.com/gin-gonic/gin"
)

const entityServiceOrder = "orden_servicio"

// ServiceOrderHandler exposes the service order register.
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateServiceOrder issues the order for an approved viability.
//
// @Summary      Create service order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateServiceOrderRequest  true  "Source viability"
// @Success      201   {object}  response.ServiceOrderResponse
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /service-orders [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if !bindJSON(c, &payload) {
		return
	}

	o, err := h.usecase.CreateFromViability(c.Request.Context(), payload.IDViabilidad)
	respond(c, entityServiceOrder, "create", err, http.StatusCreated, response.FromServiceOrder(o))
}

// GetServiceOrder godoc
//
// @Summary      Get service order
// @Tags         service-orders
// @Produce      json
// @Param        id   path      int  true  "Service order ID"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	o, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapProvisioningError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(o))
}

// ListServiceOrders godoc
//
// @Summary      List service orders by status
// @Tags         service-orders
// @Produce      json
// @Param        estado  query     int  true  "2 EnProceso, 3 Completado, 4 Cancelada"
// @Success      200     {array}   response.ServiceOrderResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /service-orders [get]
func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	estado, err := strconv.Atoi(c.Query("estado"))
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid estado", http.StatusBadRequest).WithField("estado"))
		return
	}

	list, err := h.usecase.ListByStatus(c.Request.Context(), entities.EstadoOrden(estado))
	if err != nil {
		writeError(c, mapProvisioningError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(list))
}

// EditServiceOrder applies a partial update while the order is in process.
//
// @Summary      Edit service order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id    path      int                              true  "Service order ID"
// @Param        body  body      request.EditServiceOrderRequest  true  "Fields to change"
// @Success      200   {object}  response.ServiceOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /service-orders/{id} [patch]
func (h *ServiceOrderHandler) EditServiceOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.EditServiceOrderRequest
	if !bindJSON(c, &payload) {
		return
	}

	o, err := h.usecase.Edit(c.Request.Context(), id, payload.ToPatch())
	respond(c, entityServiceOrder, "edit", err, http.StatusOK, response.FromServiceOrder(o))
}

// CancelServiceOrder godoc
//
// @Summary      Cancel service order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true  "Service order ID"
// @Param        body  body      request.CancelRequest  true  "Reason"
// @Success      200   {object}  response.ServiceOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /service-orders/{id}/cancel [patch]
func (h *ServiceOrderHandler) CancelServiceOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.CancelRequest
	if !bindJSON(c, &payload) {
		return
	}

	o, err := h.usecase.Cancel(c.Request.Context(), id, payload.Motivo)
	respond(c, entityServiceOrder, "cancel", err, http.StatusOK, response.FromServiceOrder(o))
}

// CompleteServiceOrder closes an order without producing an Enlace.
//
// @Summary      Complete service order
// @Tags         service-orders
// @Produce      json
// @Param        id   path      int  true  "Service order ID"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /service-orders/{id}/complete [patch]
func (h *ServiceOrderHandler) CompleteServiceOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	o, err := h.usecase.Complete(c.Request.Context(), id)
	respond(c, entityServiceOrder, "complete", err, http.StatusOK, response.FromServiceOrder(o))
}
