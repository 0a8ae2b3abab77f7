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

const entityP2P = "p2p"

// P2PHandler exposes the pairing engine.
type P2PHandler struct {
	usecase usecase.IP2PUseCase
}

func NewP2PHandler(uc usecase.IP2PUseCase) *P2PHandler {
	return &P2PHandler{usecase: uc}
}

// CreateP2P opens an empty pairing draft.
//
// @Summary      Create P2P draft
// @Tags         p2p
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateP2PRequest  true  "P2P type"
// @Success      201   {object}  response.P2PResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /p2p [post]
func (h *P2PHandler) CreateP2P(c *gin.Context) {
	var payload request.CreateP2PRequest
	if !bindJSON(c, &payload) {
		return
	}

	p, err := h.usecase.CreateDraft(c.Request.Context(), payload.ResolveTipo())
	respond(c, entityP2P, "create", err, http.StatusCreated, response.FromP2P(p))
}

// GetP2P godoc
//
// @Summary      Get P2P
// @Tags         p2p
// @Produce      json
// @Param        id   path      int  true  "P2P ID"
// @Success      200  {object}  response.P2PResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /p2p/{id} [get]
func (h *P2PHandler) GetP2P(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.usecase.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapProvisioningError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromP2PView(view))
}

// ListP2P godoc
//
// @Summary      List P2P by state
// @Tags         p2p
// @Produce      json
// @Param        estado  query     string  true  "proceso, aprobado, completado or cancelado"
// @Success      200     {array}   response.P2PResponse
// @Failure      400     {object}  pkg.HTTPError
// @Router       /p2p [get]
func (h *P2PHandler) ListP2P(c *gin.Context) {
	views, err := h.usecase.List(c.Request.Context(), entities.EstadoP2P(c.Query("estado")))
	if err != nil {
		writeError(c, mapProvisioningError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromP2PViews(views))
}

// AssignPoint fills slot 1 or 2 with a viability.
//
// @Summary      Assign P2P point
// @Tags         p2p
// @Accept       json
// @Produce      json
// @Param        id    path      int                         true  "P2P ID"
// @Param        slot  path      int                         true  "Slot (1 or 2)"
// @Param        body  body      request.AssignPointRequest  true  "Viability"
// @Success      200   {object}  response.P2PResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /p2p/{id}/points/{slot} [put]
func (h *P2PHandler) AssignPoint(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid slot", http.StatusBadRequest).WithField("slot"))
		return
	}
	var payload request.AssignPointRequest
	if !bindJSON(c, &payload) {
		return
	}

	view, err := h.usecase.AssignPoint(c.Request.Context(), id, slot, payload.IDViabilidad)
	respond(c, entityP2P, "assign_point", err, http.StatusOK, response.FromP2PView(view))
}

// ApproveP2P godoc
//
// @Summary      Approve P2P
// @Tags         p2p
// @Produce      json
// @Param        id   path      int  true  "P2P ID"
// @Success      200  {object}  response.P2PResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /p2p/{id}/approve [patch]
func (h *P2PHandler) ApproveP2P(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.usecase.Approve(c.Request.Context(), id)
	respond(c, entityP2P, "approve", err, http.StatusOK, response.FromP2P(p))
}

// CompleteP2P godoc
//
// @Summary      Complete P2P
// @Tags         p2p
// @Produce      json
// @Param        id   path      int  true  "P2P ID"
// @Success      200  {object}  response.P2PResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /p2p/{id}/complete [patch]
func (h *P2PHandler) CompleteP2P(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.usecase.Complete(c.Request.Context(), id)
	respond(c, entityP2P, "complete", err, http.StatusOK, response.FromP2P(p))
}

// CancelP2P accepts an optional body with the reason.
//
// @Summary      Cancel P2P
// @Tags         p2p
// @Accept       json
// @Produce      json
// @Param        id    path      int                    true   "P2P ID"
// @Param        body  body      request.CancelRequest  false  "Reason"
// @Success      200   {object}  response.P2PResponse
// @Failure      409   {object}  pkg.HTTPError
// @Router       /p2p/{id}/cancel [patch]
func (h *P2PHandler) CancelP2P(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload request.CancelRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &payload) {
		return
	}

	p, err := h.usecase.Cancel(c.Request.Context(), id, payload.Motivo)
	respond(c, entityP2P, "cancel", err, http.StatusOK, response.FromP2P(p))
}
