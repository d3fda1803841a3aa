package route

import (
	"net/http"
	"strconv"

	"backend/internal/apperror"
	"backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	CreateRoute(c *gin.Context)
	GetRoute(c *gin.Context)
	ListMyRoutes(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Create a route
// @Description Create a multi-day route with per-day places
// @Tags Route
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param route body CreateRouteRequest true "Route payload"
// @Success 201 {object} Route
// @Failure 400 {object} ErrorResponse
// @Router /api/routes [post]
func (h *handler) CreateRoute(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	rt, err := h.service.CreateRoute(c.Request.Context(), userID, &req)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rt)
}

// @Summary Get a route
// @Description Get a route with its days and places
// @Tags Route
// @Produce json
// @Param id path int true "Route id"
// @Success 200 {object} Route
// @Failure 404 {object} ErrorResponse
// @Router /api/routes/{id} [get]
func (h *handler) GetRoute(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid route id"})
		return
	}

	rt, err := h.service.GetRoute(c.Request.Context(), id)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, rt)
}

// @Summary List own routes
// @Description List routes created by the authenticated user
// @Tags Route
// @Produce json
// @Security BearerAuth
// @Success 200 {object} RouteListResponse
// @Router /api/routes [get]
func (h *handler) ListMyRoutes(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	routes, err := h.service.ListMyRoutes(c.Request.Context(), userID)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, RouteListResponse{Routes: routes})
}
