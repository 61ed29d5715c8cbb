package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tasktrio/internal/adapter/http/middleware"
	"tasktrio/internal/adapter/http/validation"
	"tasktrio/internal/core/domain"
	"tasktrio/internal/core/ports"
	"tasktrio/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

var validationMessages = []struct {
	err error
	key string
}{
	{domain.ErrEmptyName, apierrors.MsgNameRequired},
	{domain.ErrInvalidPriority, apierrors.MsgInvalidPriority},
	{domain.ErrInvalidStatus, apierrors.MsgInvalidStatus},
	{domain.ErrInvalidTimeSpent, apierrors.MsgInvalidTimeSpent},
	{domain.ErrInvalidEstimate, apierrors.MsgInvalidEstimate},
	{domain.ErrUnknownAssignee, apierrors.MsgUnknownAssignee},
	{domain.ErrInvalidKind, apierrors.MsgInvalidKind},
	{domain.ErrEmptyPatch, apierrors.MsgEmptyPatch},
	{validation.ErrInvalidPayload, apierrors.MsgInvalidPayload},
}

var notFoundMessages = []struct {
	err error
	key string
}{
	{domain.ErrProjectNotFound, apierrors.MsgProjectNotFound},
	{domain.ErrTaskNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrSubtaskNotFound, apierrors.MsgSubtaskNotFound},
	{domain.ErrActionItemNotFound, apierrors.MsgActionItemNotFound},
	{domain.ErrUserNotFound, apierrors.MsgUserNotFound},
}

// respondError maps a domain error to its status and translated body.
// Anything that is neither a validation nor a not-found error is logged and
// reported as a 500.
func respondError(c *gin.Context, err error, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)

	if errors.Is(err, domain.ErrValidation) {
		key := apierrors.MsgInvalidPayload
		for _, m := range validationMessages {
			if errors.Is(err, m.err) {
				key = m.key
				break
			}
		}
		c.JSON(http.StatusBadRequest, apierrors.CreateError(http.StatusBadRequest, key, lang))
		return
	}

	if errors.Is(err, domain.ErrNotFound) {
		key := apierrors.MsgResourceNotFound
		for _, m := range notFoundMessages {
			if errors.Is(err, m.err) {
				key = m.key
				break
			}
		}
		c.JSON(http.StatusNotFound, apierrors.CreateError(http.StatusNotFound, key, lang))
		return
	}

	zap.L().Error(logMsg, append(fields, zap.Error(err))...)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
	)
}

// respondPayloadError reports a rejected payload. Ids in the path are
// resolved first so an unknown target is a 404 whatever the body holds.
func respondPayloadError(c *gin.Context, svc ports.TaskTreeService, path domain.NodePath, err error, logMsg string) {
	if lookupErr := svc.Locate(c.Request.Context(), path); lookupErr != nil {
		respondError(c, lookupErr, "failed to resolve payload target", zap.String("project_id", path.ProjectID))
		return
	}
	respondError(c, err, logMsg)
}

func respondInvalidPayload(c *gin.Context) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidPayload, middleware.GetLang(c)),
	)
}

// bindPayload binds the JSON body into req and also returns the raw field
// map, so absent fields can be told apart from explicit nulls.
func bindPayload(c *gin.Context, req any) (map[string]json.RawMessage, bool) {
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		return nil, false
	}
	var raw map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&raw, binding.JSON); err != nil {
		return nil, false
	}
	return raw, true
}
