package handler

import (
	"github.com/fekuna/comics-store-service/internal/purchase"
	"github.com/fekuna/comics-store-service/internal/purchase/dto"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var messages = response.Messages{
	NotFound: "purchase.not_found",
	Deleted:  "purchase.deleted",
}

type PurchaseHandler struct {
	uc     purchase.UseCase
	resp   *response.Responder
	logger logger.ZapLogger
}

func NewPurchaseHandler(uc purchase.UseCase, resp *response.Responder, log logger.ZapLogger) *PurchaseHandler {
	return &PurchaseHandler{
		uc:     uc,
		resp:   resp,
		logger: log,
	}
}

func (h *PurchaseHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/detalles_compra", h.ListPurchases)
	r.GET("/detalle_compra/buscar/:id", h.GetPurchase)
	r.POST("/detalles_compra/agregar", h.CreatePurchase)
	r.PUT("/detalles_compra/actualizar/:id", h.UpdatePurchase)
	r.DELETE("/detalles_compra/borrar/:id", h.DeletePurchase)
}

// Quantity and price bounds are checked by the usecase.
type purchaseRequest struct {
	ProductID  int64            `json:"product_id" binding:"required"`
	Quantity   int              `json:"quantity"`
	UnitPrice  *decimal.Decimal `json:"unit_price" binding:"required"`
	CustomerID *int64           `json:"customer_id"`
}

func (r *purchaseRequest) input() *dto.PurchaseInput {
	return &dto.PurchaseInput{
		ProductID:  r.ProductID,
		Quantity:   r.Quantity,
		UnitPrice:  *r.UnitPrice,
		CustomerID: r.CustomerID,
	}
}

func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	details, err := h.uc.ListPurchases(c.Request.Context())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, details)
}

func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	d, err := h.uc.GetPurchase(c.Request.Context(), id)
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, d)
}

func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	d, err := h.uc.CreatePurchase(c.Request.Context(), req.input())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, d)
}

func (h *PurchaseHandler) UpdatePurchase(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	d, err := h.uc.UpdatePurchase(c.Request.Context(), id, req.input())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, d)
}

func (h *PurchaseHandler) DeletePurchase(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	if err := h.uc.DeletePurchase(c.Request.Context(), id); err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.Deleted(c, messages)
}
