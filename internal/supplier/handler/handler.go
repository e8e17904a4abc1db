package handler

import (
	"github.com/fekuna/comics-store-service/internal/supplier"
	"github.com/fekuna/comics-store-service/internal/supplier/dto"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/response"
	"github.com/gin-gonic/gin"
)

var messages = response.Messages{
	NotFound: "supplier.not_found",
	Deleted:  "supplier.deleted",
}

type SupplierHandler struct {
	uc     supplier.UseCase
	resp   *response.Responder
	logger logger.ZapLogger
}

func NewSupplierHandler(uc supplier.UseCase, resp *response.Responder, log logger.ZapLogger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		resp:   resp,
		logger: log,
	}
}

func (h *SupplierHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/proveedores", h.ListSuppliers)
	r.GET("/proveedores/buscar", h.SearchSuppliers)
	r.GET("/proveedor/buscar/:id", h.GetSupplier)
	r.POST("/proveedores/agregar", h.CreateSupplier)
	r.PUT("/proveedores/actualizar/:id", h.UpdateSupplier)
	r.DELETE("/proveedores/borrar/:id", h.DeleteSupplier)
}

type supplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email" binding:"omitempty,email"`
}

func (r *supplierRequest) input() *dto.SupplierInput {
	return &dto.SupplierInput{
		Name:    r.Name,
		Contact: r.Contact,
		Phone:   r.Phone,
		Email:   r.Email,
	}
}

type searchQuery struct {
	Name string `form:"nombre" binding:"required"`
}

func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.uc.ListSuppliers(c.Request.Context())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, suppliers)
}

func (h *SupplierHandler) SearchSuppliers(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	suppliers, err := h.uc.SearchSuppliers(c.Request.Context(), q.Name)
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, suppliers)
}

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	s, err := h.uc.GetSupplier(c.Request.Context(), id)
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, s)
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	s, err := h.uc.CreateSupplier(c.Request.Context(), req.input())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, s)
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	var req supplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	s, err := h.uc.UpdateSupplier(c.Request.Context(), id, req.input())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, s)
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	if err := h.uc.DeleteSupplier(c.Request.Context(), id); err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.Deleted(c, messages)
}
