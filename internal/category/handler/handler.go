package handler

import (
	"github.com/fekuna/comics-store-service/internal/category"
	"github.com/fekuna/comics-store-service/internal/category/dto"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/response"
	"github.com/gin-gonic/gin"
)

var messages = response.Messages{
	NotFound: "category.not_found",
	Deleted:  "category.deleted",
}

type CategoryHandler struct {
	uc     category.UseCase
	resp   *response.Responder
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, resp *response.Responder, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		resp:   resp,
		logger: log,
	}
}

func (h *CategoryHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/categorias", h.ListCategories)
	r.GET("/categoria/buscar/:id", h.GetCategory)
	r.POST("/categorias/agregar", h.CreateCategory)
	r.PUT("/categorias/actualizar/:id", h.UpdateCategory)
	r.DELETE("/categorias/borrar/:id", h.DeleteCategory)
}

type categoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	cats, err := h.uc.ListCategories(c.Request.Context())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, cats)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	cat, err := h.uc.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, cat)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	cat, err := h.uc.CreateCategory(c.Request.Context(), &dto.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, cat)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	cat, err := h.uc.UpdateCategory(c.Request.Context(), &dto.UpdateCategoryInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, cat)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	if err := h.uc.DeleteCategory(c.Request.Context(), id); err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.Deleted(c, messages)
}
