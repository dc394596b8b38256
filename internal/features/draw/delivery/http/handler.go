package http

import (
	"errors"
	"net/http"

	apperrors "draw-tool-backend/internal/common/errors"
	"draw-tool-backend/internal/common/middleware"
	"draw-tool-backend/internal/features/draw/models/dto"
	"draw-tool-backend/internal/features/draw/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	service service.Service
	logger  zerolog.Logger
}

func NewHandler(service service.Service, logger zerolog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	draws := router.Group("/draws")
	{
		draws.POST("", h.Create)
		draws.POST("/preview", h.Preview)
		draws.GET("/:id", h.Get)
		draws.GET("/:id/verify", h.Verify)
	}
}

// @Summary Create draw
// @Description Shuffle the entries with a seeded source and store the result
// @Tags draws
// @Accept json
// @Produce json
// @Param request body dto.CreateDrawRequest true "Entries, winners count and optional seed"
// @Success 201 {object} models.Draw
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /draws [post]
func (h *Handler) Create(c *gin.Context) {
	var req dto.CreateDrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.Wrapf(err, apperrors.ErrCodeBadRequest, "Invalid %s request body", c.FullPath()))
		return
	}

	draw, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, draw)
}

// @Summary Get draw
// @Tags draws
// @Produce json
// @Param id path string true "Draw ID"
// @Success 200 {object} models.Draw
// @Failure 404 {object} middleware.ErrorResponse
// @Router /draws/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	draw, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, draw)
}

// @Summary Verify draw
// @Description Replay the shuffle from the stored seed and compare orders
// @Tags draws
// @Produce json
// @Param id path string true "Draw ID"
// @Success 200 {object} models.Verification
// @Failure 404 {object} middleware.ErrorResponse
// @Router /draws/{id}/verify [get]
func (h *Handler) Verify(c *gin.Context) {
	v, err := h.service.Verify(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Preview shuffle
// @Description Shuffle the entries with the given seed without storing anything
// @Tags draws
// @Accept json
// @Produce json
// @Param request body dto.PreviewRequest true "Entries and seed"
// @Success 200 {object} dto.PreviewResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /draws/preview [post]
func (h *Handler) Preview(c *gin.Context) {
	var req dto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, apperrors.Wrapf(err, apperrors.ErrCodeBadRequest, "Invalid %s request body", c.FullPath()))
		return
	}

	resp, err := h.service.Preview(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		middleware.RespondError(c, apperrors.NewDrawNotFoundError(c.Param("id")), h.logger)
		return
	}
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.Wrap(err, apperrors.ErrCodeInternal, "Unexpected error")
	}
	middleware.RespondError(c, appErr, h.logger)
}
