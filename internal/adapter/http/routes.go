package http

import (
	"tasktrio/internal/adapter/http/handlers"
	"tasktrio/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Users    *handlers.UserHandler
	Projects *handlers.ProjectHandler
	Tasks    *handlers.TaskHandler
	Timer    *handlers.TimerHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/users", h.Users.ListUsers)
		api.GET("/users/:userId", h.Users.GetUser)

		api.GET("/projects", h.Projects.ListProjects)
		api.POST("/projects", h.Projects.CreateProject)
		api.GET("/projects/:projectId", h.Projects.GetProject)
		api.PUT("/projects/:projectId", h.Projects.RenameProject)
		api.DELETE("/projects/:projectId", h.Projects.DeleteProject)
		api.POST("/projects/:projectId/duplicate", h.Projects.DuplicateProject)
		api.GET("/projects/:projectId/action-items", h.Projects.ListActionItems)

		tasks := api.Group("/projects/:projectId/tasks")
		tasks.POST("", h.Tasks.CreateTask)
		tasks.PATCH("/:taskId", h.Tasks.UpdateTask)
		tasks.DELETE("/:taskId", h.Tasks.DeleteTask)
		tasks.POST("/:taskId/toggle", h.Tasks.ToggleExpanded)

		tasks.POST("/:taskId/subtasks", h.Tasks.CreateSubtask)
		tasks.PATCH("/:taskId/subtasks/:subtaskId", h.Tasks.UpdateSubtask)
		tasks.DELETE("/:taskId/subtasks/:subtaskId", h.Tasks.DeleteSubtask)

		tasks.POST("/:taskId/subtasks/:subtaskId/action-items", h.Tasks.CreateActionItem)
		tasks.PATCH("/:taskId/subtasks/:subtaskId/action-items/:actionItemId", h.Tasks.UpdateActionItem)
		tasks.DELETE("/:taskId/subtasks/:subtaskId/action-items/:actionItemId", h.Tasks.DeleteActionItem)

		api.GET("/timer", h.Timer.GetTimer)
		api.POST("/timer/start", h.Timer.StartTimer)
		api.POST("/timer/stop", h.Timer.StopTimer)
		api.GET("/timer/sessions", h.Timer.ListSessions)
	}
}
