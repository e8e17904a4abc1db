package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/supplierorder"
	"github.com/fekuna/comics-store-service/internal/supplierorder/dto"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/response"
	"github.com/gin-gonic/gin"
)

var messages = response.Messages{
	NotFound: "supplierorder.not_found",
	Deleted:  "supplierorder.deleted",
}

type SupplierOrderHandler struct {
	uc     supplierorder.UseCase
	resp   *response.Responder
	logger logger.ZapLogger
}

func NewSupplierOrderHandler(uc supplierorder.UseCase, resp *response.Responder, log logger.ZapLogger) *SupplierOrderHandler {
	return &SupplierOrderHandler{
		uc:     uc,
		resp:   resp,
		logger: log,
	}
}

func (h *SupplierOrderHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/pedidos_proveedor", h.ListOrders)
	r.GET("/pedidos_proveedor/proveedor/:nombre", h.ListOrdersBySupplierName)
	r.GET("/pedido_proveedor/buscar/:id", h.GetOrder)
	r.POST("/pedidos_proveedor/agregar", h.CreateOrder)
	r.PUT("/pedidos_proveedor/actualizar/:id", h.UpdateOrder)
	r.DELETE("/pedidos_proveedor/borrar/:id", h.DeleteOrder)
}

type orderRequest struct {
	SupplierID   int64      `json:"supplier_id" binding:"required"`
	PurchaseDate *time.Time `json:"purchase_date"`
	Status       string     `json:"status"`
}

func (r *orderRequest) input() *dto.OrderInput {
	return &dto.OrderInput{
		SupplierID:   r.SupplierID,
		PurchaseDate: r.PurchaseDate,
		Status:       model.OrderStatus(r.Status),
	}
}

func (h *SupplierOrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.uc.ListOrders(c.Request.Context())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, orders)
}

func (h *SupplierOrderHandler) ListOrdersBySupplierName(c *gin.Context) {
	name := c.Param("nombre")

	orders, err := h.uc.ListOrdersBySupplierName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			h.resp.Detail(c, http.StatusNotFound, h.resp.T(c, "supplierorder.none_for_supplier", map[string]interface{}{"Name": name}))
			return
		}
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, orders)
}

func (h *SupplierOrderHandler) GetOrder(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	o, err := h.uc.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, o)
}

func (h *SupplierOrderHandler) CreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	o, err := h.uc.CreateOrder(c.Request.Context(), req.input())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, o)
}

func (h *SupplierOrderHandler) UpdateOrder(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	o, err := h.uc.UpdateOrder(c.Request.Context(), id, req.input())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, o)
}

func (h *SupplierOrderHandler) DeleteOrder(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	if err := h.uc.DeleteOrder(c.Request.Context(), id); err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.Deleted(c, messages)
}
