// Package response writes handler outcomes as JSON and maps domain errors to
// HTTP status codes.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fekuna/comics-store-service/pkg/apperror"
	"github.com/fekuna/comics-store-service/pkg/i18n"
	"github.com/fekuna/comics-store-service/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Messages names the message ids an entity uses for its outcomes. Empty
// fields fall back to the common.* catalog entries.
type Messages struct {
	NotFound string
	Conflict string
	Deleted  string
}

type Responder struct {
	tr     *i18n.Translator
	logger logger.ZapLogger
}

func NewResponder(tr *i18n.Translator, log logger.ZapLogger) *Responder {
	return &Responder{tr: tr, logger: log}
}

func (r *Responder) T(c *gin.Context, id string, data map[string]interface{}) string {
	return r.tr.T(c.GetHeader("Accept-Language"), id, data)
}

// OK writes the payload as-is with status 200.
func (r *Responder) OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Deleted writes the delete confirmation body.
func (r *Responder) Deleted(c *gin.Context, msgs Messages) {
	c.JSON(http.StatusOK, gin.H{"message": r.T(c, msgs.Deleted, nil)})
}

// Detail writes {"detail": msg} with the given status.
func (r *Responder) Detail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": msg})
}

// BadRequest reports a binding or path parameter failure.
func (r *Responder) BadRequest(c *gin.Context, err error) {
	r.Detail(c, http.StatusBadRequest, r.T(c, "common.bad_request", map[string]interface{}{"Detail": err.Error()}))
}

// Error maps err onto a status code and a localized detail message.
func (r *Responder) Error(c *gin.Context, err error, msgs Messages) {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		r.Detail(c, http.StatusNotFound, r.T(c, orDefault(msgs.NotFound, "common.not_found"), nil))
	case errors.Is(err, apperror.ErrConflict):
		r.Detail(c, http.StatusBadRequest, r.T(c, orDefault(msgs.Conflict, "common.conflict"), nil))
	case errors.Is(err, apperror.ErrInvalidReference):
		r.Detail(c, http.StatusBadRequest, r.T(c, "common.invalid_reference", nil))
	case errors.Is(err, apperror.ErrInvalidInput):
		r.Detail(c, http.StatusBadRequest, r.T(c, "common.invalid_input", nil))
	default:
		r.logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString("request_id")),
			zap.Error(err),
		)
		r.Detail(c, http.StatusInternalServerError, r.T(c, "common.internal", nil))
	}
}

func orDefault(id, fallback string) string {
	if id == "" {
		return fallback
	}
	return id
}

// ParseID reads a positive integer path parameter.
func ParseID(c *gin.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", param)
	}
	return id, nil
}
