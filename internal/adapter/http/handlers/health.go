package handlers

import (
	"context"
	"net/http"
	"time"

	"tasktrio/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	StatusOk             = "ok"
	StatusDown           = "down"
	healthJournalTimeout = 2 * time.Second
)

type HealthBasic struct {
	AppName           string `json:"app_name"`
	AppVersion        string `json:"app_version"`
	CurrentSystemTime string `json:"current_system_time"`
	Message           string `json:"message"`
}

type HealthServices struct {
	Journal string `json:"journal"`
}

type HealthAdvanced struct {
	AppName           string         `json:"app_name"`
	AppVersion        string         `json:"app_version"`
	CurrentSystemTime string         `json:"current_system_time"`
	Language          string         `json:"language"`
	Status            HealthServices `json:"status"`
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type AppInfo struct {
	Name    string
	Version string
}

type HealthHandler struct {
	journal Pinger
	app     AppInfo
}

func NewHealthHandler(journal Pinger, app AppInfo) *HealthHandler {
	if app.Version == "" {
		app.Version = "dev"
	}
	return &HealthHandler{journal: journal, app: app}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	statusCode := http.StatusOK
	message := StatusOk

	if !h.checkJournal(c.Request.Context()) {
		statusCode = http.StatusInternalServerError
		message = StatusDown
	}

	c.JSON(statusCode, HealthBasic{
		AppName:           h.app.Name,
		AppVersion:        h.app.Version,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Message:           message,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	journalStatus := StatusDown
	if h.checkJournal(c.Request.Context()) {
		journalStatus = StatusOk
	}

	c.JSON(http.StatusOK, HealthAdvanced{
		AppName:           h.app.Name,
		AppVersion:        h.app.Version,
		CurrentSystemTime: time.Now().Format("2006-01-02 15:04:05"),
		Language:          middleware.GetLang(c),
		Status: HealthServices{
			Journal: journalStatus,
		},
	})
}

func (h *HealthHandler) checkJournal(ctx context.Context) bool {
	if h.journal == nil {
		return false
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, healthJournalTimeout)
	defer cancel()
	return h.journal.Ping(timeoutCtx) == nil
}
