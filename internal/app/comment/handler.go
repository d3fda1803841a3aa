package comment

import (
	"net/http"
	"strconv"

	"backend/internal/apperror"
	"backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	CreateComment(c *gin.Context)
	ListByBoard(c *gin.Context)
	DeleteComment(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Comment on a board
// @Tags Comment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Board id"
// @Param comment body CreateCommentRequest true "Comment payload"
// @Success 201 {object} Comment
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{id}/comments [post]
func (h *handler) CreateComment(c *gin.Context) {
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

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	cm, err := h.service.CreateComment(c.Request.Context(), userID, boardID, &req)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, cm)
}

// @Summary List board comments
// @Tags Comment
// @Produce json
// @Param id path int true "Board id"
// @Success 200 {object} CommentListResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{id}/comments [get]
func (h *handler) ListByBoard(c *gin.Context) {
	boardID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board id"})
		return
	}

	comments, err := h.service.ListByBoard(c.Request.Context(), boardID)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, CommentListResponse{Comments: comments})
}

// @Summary Delete a comment
// @Tags Comment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment id"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/comments/{id} [delete]
func (h *handler) DeleteComment(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid comment id"})
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
