package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/routefinder/internal/pkg/models"
	"github.com/piresc/routefinder/services/routing"
	httpHandler "github.com/piresc/routefinder/services/routing/handler/http"
)

// Handler combines all handlers for the routing service
type Handler struct {
	routeHTTP *httpHandler.RouteHandler
}

// NewHandler creates a new combined handler
func NewHandler(plannerUC routing.PlannerUC, destinations []models.Destination, mapPath string) *Handler {
	return &Handler{
		routeHTTP: httpHandler.NewRouteHandler(plannerUC, destinations, mapPath),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.routeHTTP.FormPage)
	e.GET("/map", h.routeHTTP.Map)

	api := e.Group("/api")
	api.POST("/routes", h.routeHTTP.PlanRoute)
	api.GET("/destinations", h.routeHTTP.ListDestinations)
}
