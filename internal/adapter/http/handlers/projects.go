package handlers

import (
	"net/http"

	"tasktrio/internal/adapter/http/dto"
	"tasktrio/internal/adapter/http/mapper"
	"tasktrio/internal/adapter/http/validation"
	"tasktrio/internal/core/domain"
	"tasktrio/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProjectHandler struct {
	taskService ports.TaskTreeService
}

func NewProjectHandler(taskService ports.TaskTreeService) *ProjectHandler {
	return &ProjectHandler{taskService: taskService}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.taskService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list projects")
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItems(projects))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID := c.Param("projectId")
	project, err := h.taskService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, "failed to get project", zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	project, err := h.taskService.CreateProject(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err, "failed to create project")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) RenameProject(c *gin.Context) {
	projectID := c.Param("projectId")

	var req dto.RenameProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondPayloadError(c, h.taskService, domain.NodePath{ProjectID: projectID},
			validation.ErrInvalidPayload, "malformed payload")
		return
	}

	project, err := h.taskService.RenameProject(c.Request.Context(), projectID, req.Name)
	if err != nil {
		respondError(c, err, "failed to rename project", zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) DuplicateProject(c *gin.Context) {
	projectID := c.Param("projectId")
	project, err := h.taskService.DuplicateProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, "failed to duplicate project", zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProjectItem(project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID := c.Param("projectId")
	if err := h.taskService.DeleteProject(c.Request.Context(), projectID); err != nil {
		respondError(c, err, "failed to delete project", zap.String("project_id", projectID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) ListActionItems(c *gin.Context) {
	projectID := c.Param("projectId")
	items, err := h.taskService.ListActionItems(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, err, "failed to list action items", zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToActionItemRefs(items))
}
