package routes

import (
	"fibra_provisioning/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathViabilities   = "/viabilities"
	PathP2P           = "/p2p"
	PathServiceOrders = "/service-orders"
	PathEnlaces       = "/enlaces"
)

func addViabilityRoutes(rg *gin.RouterGroup, h *handlers.ViabilityHandler) {
	viabilities := rg.Group(PathViabilities)
	{
		viabilities.POST("", h.CreateViability)
		viabilities.GET("", h.ListViabilities)
		viabilities.GET("/queues", h.GetQueues)
		viabilities.GET("/:id", h.GetViability)
		viabilities.PATCH("/:id/transition", h.TransitionViability)
	}
}

func addP2PRoutes(rg *gin.RouterGroup, h *handlers.P2PHandler) {
	p2p := rg.Group(PathP2P)
	{
		p2p.POST("", h.CreateP2P)
		p2p.GET("", h.ListP2P)
		p2p.GET("/:id", h.GetP2P)
		p2p.PUT("/:id/points/:slot", h.AssignPoint)
		p2p.PATCH("/:id/approve", h.ApproveP2P)
		p2p.PATCH("/:id/complete", h.CompleteP2P)
		p2p.PATCH("/:id/cancel", h.CancelP2P)
	}
}

func addServiceOrderRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderHandler, enlaces *handlers.EnlaceHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", h.CreateServiceOrder)
		orders.GET("", h.ListServiceOrders)
		orders.GET("/:id", h.GetServiceOrder)
		orders.PATCH("/:id", h.EditServiceOrder)
		orders.PATCH("/:id/cancel", h.CancelServiceOrder)
		orders.PATCH("/:id/complete", h.CompleteServiceOrder)
		// Activation creates the Enlace; it lives under the order it consumes.
		orders.POST("/:id/activate", enlaces.ActivateServiceOrder)
	}
}

func addEnlaceRoutes(rg *gin.RouterGroup, h *handlers.EnlaceHandler) {
	enlaces := rg.Group(PathEnlaces)
	{
		enlaces.GET("/:id", h.GetEnlace)
		enlaces.PATCH("/:id/deactivate", h.DeactivateEnlace)
	}
}
