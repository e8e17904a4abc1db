package handler

import (
	"github.com/fekuna/comics-store-service/internal/user"
	"github.com/fekuna/comics-store-service/internal/user/dto"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/fekuna/comics-store-service/pkg/response"
	"github.com/gin-gonic/gin"
)

var messages = response.Messages{
	NotFound: "user.not_found",
	Conflict: "user.email_taken",
	Deleted:  "user.deleted",
}

type UserHandler struct {
	uc     user.UseCase
	resp   *response.Responder
	logger logger.ZapLogger
}

func NewUserHandler(uc user.UseCase, resp *response.Responder, log logger.ZapLogger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		resp:   resp,
		logger: log,
	}
}

func (h *UserHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/usuarios", h.ListUsers)
	r.GET("/usuario/buscar/:id", h.GetUser)
	r.POST("/usuarios/agregar", h.CreateUser)
	r.PUT("/usuarios/actualizar/:id", h.UpdateUser)
	r.DELETE("/usuarios/borrar/:id", h.DeleteUser)
}

type userRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UserTypeID *int64 `json:"user_type_id"`
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.uc.ListUsers(c.Request.Context())
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, users)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	u, err := h.uc.GetUser(c.Request.Context(), id)
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, u)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	u, err := h.uc.CreateUser(c.Request.Context(), &dto.CreateUserInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		UserTypeID: req.UserTypeID,
	})
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, u)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	u, err := h.uc.UpdateUser(c.Request.Context(), &dto.UpdateUserInput{
		ID:         id,
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		UserTypeID: req.UserTypeID,
	})
	if err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.OK(c, u)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := response.ParseID(c, "id")
	if err != nil {
		h.resp.BadRequest(c, err)
		return
	}

	if err := h.uc.DeleteUser(c.Request.Context(), id); err != nil {
		h.resp.Error(c, err, messages)
		return
	}
	h.resp.Deleted(c, messages)
}
