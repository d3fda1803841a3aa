package like

import (
	"net/http"
	"strconv"

	"backend/internal/apperror"
	"backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	Toggle(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Toggle a like
// @Description Like the board, or remove the like if it is already set
// @Tags Like
// @Produce json
// @Security BearerAuth
// @Param id path int true "Board id"
// @Success 200 {object} ToggleResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{id}/likes [post]
func (h *handler) Toggle(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	boardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board id"})
		return
	}

	resp, err := h.service.Toggle(c.Request.Context(), userID, boardID)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
