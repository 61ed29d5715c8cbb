package handlers

import (
	"net/http"
	"strings"
	"time"

	"tasktrio/internal/adapter/http/dto"
	"tasktrio/internal/adapter/http/mapper"
	"tasktrio/internal/adapter/http/middleware"
	"tasktrio/internal/core/ports"
	"tasktrio/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type TimerHandler struct {
	timerService ports.TimerService
	now          func() time.Time
}

func NewTimerHandler(timerService ports.TimerService) *TimerHandler {
	return &TimerHandler{
		timerService: timerService,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (h *TimerHandler) GetTimer(c *gin.Context) {
	info := h.timerService.Current(c.Request.Context())
	c.JSON(http.StatusOK, mapper.ToTimerItem(info, h.now()))
}

func (h *TimerHandler) StartTimer(c *gin.Context) {
	var req dto.StartTimerRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.ProjectID) == "" || strings.TrimSpace(req.ActionItemID) == "" {
		respondInvalidPayload(c)
		return
	}

	info, err := h.timerService.Start(c.Request.Context(), req.ProjectID, req.ActionItemID)
	if err != nil {
		respondError(c, err, "failed to start timer",
			zap.String("project_id", req.ProjectID), zap.String("action_item_id", req.ActionItemID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimerItem(info, h.now()))
}

// StopTimer is a no-op when idle; the response then has a null session.
func (h *TimerHandler) StopTimer(c *gin.Context) {
	session, err := h.timerService.Stop(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to stop timer")
		return
	}

	resp := dto.StopTimerResponse{
		Timer: mapper.ToTimerItem(h.timerService.Current(c.Request.Context()), h.now()),
	}
	if session != nil {
		item := mapper.ToTimerSessionItem(*session)
		resp.Session = &item
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TimerHandler) ListSessions(c *gin.Context) {
	sessions, err := h.timerService.ListSessions(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list timer sessions", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListSessions, middleware.GetLang(c)),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTimerSessionItems(sessions))
}
