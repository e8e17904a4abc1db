package handler

import (
	"time"

	"github.com/fekuna/comics-store-service/internal/customer"
	"github.com/fekuna/comics-store-service/internal/customer/dto"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/response"
	"github.com/gin-gonic/gin"
)

var messages = response.Messages{
	NotFound: "customer.not_found",
	Conflict: "customer.user_taken",
	Deleted:  "customer.deleted",
}

type CustomerHandler struct {
	uc     customer.UseCase
	resp   *response.Responder
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, resp *response.Responder, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		resp:   resp,
		logger: log,
	}
}

func (h *CustomerHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/clientes", h.ListCustomers)
	r.GET("/clientes/:id/compras", h.ListPurchases)
	r.GET("/cliente/buscar/:id", h.GetCustomer)
	r.POST("/clientes/agregar", h.CreateCustomer)
	r.PUT("/clientes/actualizar/:id", h.UpdateCustomer)
	r.DELETE("/clientes/borrar/:id", h.DeleteCustomer)
}

type customerRequest struct {
	UserID           int64      `json:"user_id" binding:"required"`
	Phone            string     `json:"phone"`
	Address          string     `json:"address"`
	RegistrationDate *time.Time `json:"registration_date"`
}

func (r *customerRequest) input() *dto.CustomerInput {
	return &dto.CustomerInput{
		UserID:           r.UserID,
		Phone:            r.Phone,
		Address:          r.Address,
		RegistrationDate: r.RegistrationDate,
	}
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.uc.ListCustomers(c.Request.Context())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, customers)
}

func (h *CustomerHandler) ListPurchases(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	details, err := h.uc.ListPurchases(c.Request.Context(), id)
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, details)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	cust, err := h.uc.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, cust)
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	cust, err := h.uc.CreateCustomer(c.Request.Context(), req.input())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, cust)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	cust, err := h.uc.UpdateCustomer(c.Request.Context(), id, req.input())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, cust)
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	if err := h.uc.DeleteCustomer(c.Request.Context(), id); err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.Deleted(c, messages)
}
