package board

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"backend/internal/apperror"
	"backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	ListBoards(c *gin.Context)
	GetBoard(c *gin.Context)
	MainPage(c *gin.Context)
	MyBoards(c *gin.Context)
	LikedBoards(c *gin.Context)
	ParticipatedTrips(c *gin.Context)
	CreateBoard(c *gin.Context)
	UpdateBoard(c *gin.Context)
	DeleteBoard(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// parseListQuery reads the shared listing parameters: category, the
// startDate/endDate overlap window and the sort spec.
func parseListQuery(c *gin.Context) (ListFilter, SortSpec, error) {
	var filter ListFilter

	if raw := c.Query("category"); raw != "" {
		category := Category(raw)
		if !category.Valid() {
			return filter, SortSpec{}, apperror.BadRequest("unknown category: " + raw)
		}
		filter.Category = &category
	}

	start, end := c.Query("startDate"), c.Query("endDate")
	if (start == "") != (end == "") {
		return filter, SortSpec{}, apperror.BadRequest("startDate and endDate must be given together")
	}
	if start != "" {
		from, err := time.Parse(dateLayout, start)
		if err != nil {
			return filter, SortSpec{}, apperror.BadRequest("invalid startDate: " + start)
		}
		to, err := time.Parse(dateLayout, end)
		if err != nil {
			return filter, SortSpec{}, apperror.BadRequest("invalid endDate: " + end)
		}
		if to.Before(from) {
			return filter, SortSpec{}, apperror.BadRequest("endDate is before startDate")
		}
		filter.From, filter.To = &from, &to
	}

	sort, err := ParseSortSpec(c.Query("sortBy"), c.Query("order"))
	if err != nil {
		return filter, SortSpec{}, err
	}
	return filter, sort, nil
}

func boardFiles(c *gin.Context) ([]*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	return form.File["images"], nil
}

// @Summary List boards
// @Tags Board
// @Produce json
// @Param category query string false "REVIEW, GUIDE or COMPANION"
// @Param startDate query string false "Route overlap window start (YYYY-MM-DD)"
// @Param endDate query string false "Route overlap window end (YYYY-MM-DD)"
// @Param sortBy query string false "createdAt, title or likes"
// @Param order query string false "asc or desc"
// @Success 200 {object} SummaryListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/boards [get]
func (h *handler) ListBoards(c *gin.Context) {
	filter, sort, err := parseListQuery(c)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.GetAllBoards(c.Request.Context(), filter, sort)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get a board with its route and trip
// @Tags Board
// @Produce json
// @Param id path int true "Board id"
// @Success 200 {object} Detail
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{id} [get]
func (h *handler) GetBoard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid board id"})
		return
	}

	detail, err := h.service.GetBoardDetail(c.Request.Context(), id)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary Main page board rails
// @Tags Board
// @Produce json
// @Success 200 {object} MainResponse
// @Router /api/main [get]
func (h *handler) MainPage(c *gin.Context) {
	resp, err := h.service.GetMainBoards(c.Request.Context())
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List my boards of one category
// @Tags Board
// @Produce json
// @Security BearerAuth
// @Param category query string true "REVIEW, GUIDE or COMPANION"
// @Success 200 {object} SimpleListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/users/me/boards [get]
func (h *handler) MyBoards(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	resp, err := h.service.GetBoardsByUser(c.Request.Context(), userID, Category(c.Query("category")))
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List boards I liked
// @Tags Board
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SummaryListResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/users/me/likes [get]
func (h *handler) LikedBoards(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	filter, sort, err := parseListQuery(c)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.GetLikedBoards(c.Request.Context(), userID, filter, sort)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List trips I participate in
// @Tags Board
// @Produce json
// @Security BearerAuth
// @Param category query string false "GUIDE or COMPANION"
// @Success 200 {object} ParticipatedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/users/me/trips [get]
func (h *handler) ParticipatedTrips(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	filter, sort, err := parseListQuery(c)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.service.GetParticipatedBoards(c.Request.Context(), userID, filter, sort)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Create a board
// @Tags Board
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param board formData CreateBoardRequest true "Board fields"
// @Param images formData file false "Board images, representative first"
// @Success 201 {object} map[string]uint64
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards [post]
func (h *handler) CreateBoard(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return
	}

	var req CreateBoardRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	files, err := boardFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}

	id, err := h.service.CreateBoard(c.Request.Context(), userID, req, files)
	if err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary Replace a board
// @Tags Board
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Board id"
// @Param board formData CreateBoardRequest true "Board fields"
// @Param images formData file false "Replacement images; omit to keep current"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{id} [put]
func (h *handler) UpdateBoard(c *gin.Context) {
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

	var req CreateBoardRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	files, err := boardFiles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
		return
	}

	if err := h.service.UpdateBoard(c.Request.Context(), userID, boardID, req, files); err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a board and everything attached to it
// @Tags Board
// @Produce json
// @Security BearerAuth
// @Param id path int true "Board id"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/boards/{id} [delete]
func (h *handler) DeleteBoard(c *gin.Context) {
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

	if err := h.service.DeleteBoard(c.Request.Context(), userID, boardID); err != nil {
		status, _ := apperror.StatusOf(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
