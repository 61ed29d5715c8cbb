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

// TaskHandler serves the task, subtask and action item levels of a project.
type TaskHandler struct {
	taskService ports.TaskTreeService
}

func NewTaskHandler(taskService ports.TaskTreeService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectID := c.Param("projectId")
	target := domain.NodePath{ProjectID: projectID}

	var req dto.CreateItemRequest
	raw, ok := bindPayload(c, &req)
	if !ok {
		respondPayloadError(c, h.taskService, target, validation.ErrInvalidPayload, "malformed payload")
		return
	}
	in, err := validation.BuildNewItemInput(req, raw)
	if err != nil {
		respondPayloadError(c, h.taskService, target, err, "invalid task payload")
		return
	}

	task, err := h.taskService.AddTask(c.Request.Context(), projectID, in)
	if err != nil {
		respondError(c, err, "failed to create task", zap.String("project_id", projectID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	projectID, taskID := c.Param("projectId"), c.Param("taskId")
	target := domain.NodePath{ProjectID: projectID, TaskID: taskID}

	var req dto.UpdateItemRequest
	raw, ok := bindPayload(c, &req)
	if !ok {
		respondPayloadError(c, h.taskService, target, validation.ErrInvalidPayload, "malformed payload")
		return
	}
	patch, err := validation.BuildTaskPatch(req, raw)
	if err != nil {
		respondPayloadError(c, h.taskService, target, err, "invalid task patch")
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), projectID, taskID, patch)
	if err != nil {
		respondError(c, err, "failed to update task",
			zap.String("project_id", projectID), zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	projectID, taskID := c.Param("projectId"), c.Param("taskId")
	if err := h.taskService.DeleteTask(c.Request.Context(), projectID, taskID); err != nil {
		respondError(c, err, "failed to delete task",
			zap.String("project_id", projectID), zap.String("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) ToggleExpanded(c *gin.Context) {
	projectID, taskID := c.Param("projectId"), c.Param("taskId")
	target := domain.NodePath{ProjectID: projectID, TaskID: taskID}

	var req dto.ToggleExpandedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondPayloadError(c, h.taskService, target, validation.ErrInvalidPayload, "malformed payload")
		return
	}
	kind, subtaskID, err := validation.BuildToggle(req)
	if err != nil {
		respondPayloadError(c, h.taskService, target, err, "invalid toggle payload")
		return
	}

	if err := h.taskService.ToggleExpanded(c.Request.Context(), projectID, taskID, kind, subtaskID); err != nil {
		respondError(c, err, "failed to toggle expanded",
			zap.String("project_id", projectID), zap.String("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) CreateSubtask(c *gin.Context) {
	projectID, taskID := c.Param("projectId"), c.Param("taskId")
	target := domain.NodePath{ProjectID: projectID, TaskID: taskID}

	var req dto.CreateItemRequest
	raw, ok := bindPayload(c, &req)
	if !ok {
		respondPayloadError(c, h.taskService, target, validation.ErrInvalidPayload, "malformed payload")
		return
	}
	in, err := validation.BuildNewItemInput(req, raw)
	if err != nil {
		respondPayloadError(c, h.taskService, target, err, "invalid subtask payload")
		return
	}

	subtask, err := h.taskService.AddSubtask(c.Request.Context(), projectID, taskID, in)
	if err != nil {
		respondError(c, err, "failed to create subtask",
			zap.String("project_id", projectID), zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSubtaskItem(subtask))
}

func (h *TaskHandler) UpdateSubtask(c *gin.Context) {
	projectID, taskID, subtaskID := c.Param("projectId"), c.Param("taskId"), c.Param("subtaskId")
	target := domain.NodePath{ProjectID: projectID, TaskID: taskID, SubtaskID: subtaskID}

	var req dto.UpdateItemRequest
	raw, ok := bindPayload(c, &req)
	if !ok {
		respondPayloadError(c, h.taskService, target, validation.ErrInvalidPayload, "malformed payload")
		return
	}
	patch, err := validation.BuildSubtaskPatch(req, raw)
	if err != nil {
		respondPayloadError(c, h.taskService, target, err, "invalid subtask patch")
		return
	}

	subtask, err := h.taskService.UpdateSubtask(c.Request.Context(), projectID, taskID, subtaskID, patch)
	if err != nil {
		respondError(c, err, "failed to update subtask", zap.String("subtask_id", subtaskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubtaskItem(subtask))
}

func (h *TaskHandler) DeleteSubtask(c *gin.Context) {
	projectID, taskID, subtaskID := c.Param("projectId"), c.Param("taskId"), c.Param("subtaskId")
	if err := h.taskService.DeleteSubtask(c.Request.Context(), projectID, taskID, subtaskID); err != nil {
		respondError(c, err, "failed to delete subtask", zap.String("subtask_id", subtaskID))
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) CreateActionItem(c *gin.Context) {
	projectID, taskID, subtaskID := c.Param("projectId"), c.Param("taskId"), c.Param("subtaskId")
	target := domain.NodePath{ProjectID: projectID, TaskID: taskID, SubtaskID: subtaskID}

	var req dto.CreateItemRequest
	raw, ok := bindPayload(c, &req)
	if !ok {
		respondPayloadError(c, h.taskService, target, validation.ErrInvalidPayload, "malformed payload")
		return
	}
	in, err := validation.BuildNewItemInput(req, raw)
	if err != nil {
		respondPayloadError(c, h.taskService, target, err, "invalid action item payload")
		return
	}

	item, err := h.taskService.AddActionItem(c.Request.Context(), projectID, taskID, subtaskID, in)
	if err != nil {
		respondError(c, err, "failed to create action item", zap.String("subtask_id", subtaskID))
		return
	}

	c.JSON(http.StatusCreated, mapper.ToActionItemItem(item))
}

func (h *TaskHandler) UpdateActionItem(c *gin.Context) {
	projectID, taskID, subtaskID := c.Param("projectId"), c.Param("taskId"), c.Param("subtaskId")
	actionItemID := c.Param("actionItemId")
	target := domain.NodePath{ProjectID: projectID, TaskID: taskID, SubtaskID: subtaskID, ActionItemID: actionItemID}

	var req dto.UpdateActionItemRequest
	raw, ok := bindPayload(c, &req)
	if !ok {
		respondPayloadError(c, h.taskService, target, validation.ErrInvalidPayload, "malformed payload")
		return
	}
	patch, err := validation.BuildActionItemPatch(req, raw)
	if err != nil {
		respondPayloadError(c, h.taskService, target, err, "invalid action item patch")
		return
	}

	item, err := h.taskService.UpdateActionItem(c.Request.Context(), projectID, taskID, subtaskID, actionItemID, patch)
	if err != nil {
		respondError(c, err, "failed to update action item", zap.String("action_item_id", actionItemID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToActionItemItem(item))
}

func (h *TaskHandler) DeleteActionItem(c *gin.Context) {
	projectID, taskID, subtaskID := c.Param("projectId"), c.Param("taskId"), c.Param("subtaskId")
	actionItemID := c.Param("actionItemId")
	if err := h.taskService.DeleteActionItem(c.Request.Context(), projectID, taskID, subtaskID, actionItemID); err != nil {
		respondError(c, err, "failed to delete action item", zap.String("action_item_id", actionItemID))
		return
	}

	c.Status(http.StatusNoContent)
}
