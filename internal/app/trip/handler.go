package trip

import (
	"net/http"
	"strconv"

	"backend/internal/apperror"
	"backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	GetByBoard(c *gin.Context)
	Join(c *gin.Context)
	Leave(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Get trip by board
// @Tags Trip
// @Produce json
// @Param id path int true "Board id"
// @Success 200 {object} TripResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{id}/trip [get]
func (h *handler) GetByBoard(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board id"})
		return
	}

	resp, err := h.service.GetByBoard(c.Request.Context(), boardID)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Join a trip
// @Tags Trip
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip id"
// @Success 200 {object} TripResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/trips/{id}/join [post]
func (h *handler) Join(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	tripID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid trip id"})
		return
	}

	resp, err := h.service.Join(c.Request.Context(), userID, tripID)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Leave a trip
// @Tags Trip
// @Produce json
// @Security BearerAuth
// @Param id path int true "Trip id"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/trips/{id}/join [delete]
func (h *handler) Leave(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	tripID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid trip id"})
		return
	}

	if err := h.service.Leave(c.Request.Context(), userID, tripID); err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
