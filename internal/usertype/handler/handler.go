package handler

import (
	"github.com/fekuna/comics-store-service/internal/usertype"
	"github.com/fekuna/comics-store-service/internal/usertype/dto"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/response"
	"github.com/gin-gonic/gin"
)

var messages = response.Messages{
	NotFound: "usertype.not_found",
	Deleted:  "usertype.deleted",
}

type UserTypeHandler struct {
	uc     usertype.UseCase
	resp   *response.Responder
	logger logger.ZapLogger
}

func NewUserTypeHandler(uc usertype.UseCase, resp *response.Responder, log logger.ZapLogger) *UserTypeHandler {
	return &UserTypeHandler{uc: uc, resp: resp, logger: log}
}

func (h *UserTypeHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/tipos_usuario", h.ListUserTypes)
	r.GET("/tipo_usuario/buscar/:id", h.GetUserType)
	r.POST("/tipos_usuario/agregar", h.CreateUserType)
	r.PUT("/tipos_usuario/actualizar/:id", h.UpdateUserType)
	r.DELETE("/tipos_usuario/borrar/:id", h.DeleteUserType)
}

type userTypeRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *UserTypeHandler) ListUserTypes(c *gin.Context) {
	types, err := h.uc.ListUserTypes(c.Request.Context())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, types)
}

func (h *UserTypeHandler) GetUserType(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}
	t, err := h.uc.GetUserType(c.Request.Context(), id)
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, t)
}

func (h *UserTypeHandler) CreateUserType(c *gin.Context) {
	var req userTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}
	t, err := h.uc.CreateUserType(c.Request.Context(), &dto.UserTypeInput{Name: req.Name})
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, t)
}

func (h *UserTypeHandler) UpdateUserType(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}
	var req userTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}
	t, err := h.uc.UpdateUserType(c.Request.Context(), id, &dto.UserTypeInput{Name: req.Name})
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, t)
}

func (h *UserTypeHandler) DeleteUserType(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}
	if err := h.uc.DeleteUserType(c.Request.Context(), id); err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.Deleted(c, messages)
}
