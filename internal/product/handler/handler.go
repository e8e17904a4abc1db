package handler

import (
	"github.com/fekuna/comics-store-service/internal/product"
	"github.com/fekuna/comics-store-service/internal/product/dto"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var messages = response.Messages{
	NotFound: "product.not_found",
	Deleted:  "product.deleted",
}

type ProductHandler struct {
	uc     product.UseCase
	resp   *response.Responder
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, resp *response.Responder, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		resp:   resp,
		logger: log,
	}
}

func (h *ProductHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/productos", h.ListProducts)
	r.GET("/productos/buscar", h.SearchProducts)
	r.GET("/productos/categoria/:id", h.ListByCategory)
	r.GET("/producto/buscar/:id", h.GetProduct)
	r.POST("/productos/agregar", h.CreateProduct)
	r.PUT("/productos/actualizar/:id", h.UpdateProduct)
	r.DELETE("/productos/borrar/:id", h.DeleteProduct)
}

// Price is a pointer so a missing field fails binding instead of reading as 0.
type productRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	CategoryID  *int64           `json:"category_id"`
}

type searchQuery struct {
	Name string `form:"nombre" binding:"required"`
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.uc.ListProducts(c.Request.Context())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, products)
}

func (h *ProductHandler) SearchProducts(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	products, err := h.uc.SearchProducts(c.Request.Context(), q.Name)
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, products)
}

func (h *ProductHandler) ListByCategory(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	products, err := h.uc.ListByCategory(c.Request.Context(), id)
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, products)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	p, err := h.uc.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, p)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	p, err := h.uc.CreateProduct(c.Request.Context(), &dto.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, p)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	p, err := h.uc.UpdateProduct(c.Request.Context(), &dto.UpdateProductInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, p)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	if err := h.uc.DeleteProduct(c.Request.Context(), id); err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.Deleted(c, messages)
}
