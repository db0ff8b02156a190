package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Ianrury/api-tash-manajement/internal/auth"
	dom "github.com/Ianrury/api-tash-manajement/internal/domain"
	"github.com/Ianrury/api-tash-manajement/internal/dto"
	"github.com/Ianrury/api-tash-manajement/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// List godoc
// @Summary      List the caller's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "Filter by status (To Do | In Progress | Done | all)"
// @Param        sort    query  string  false  "Order (deadline_asc | deadline_desc)"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized, no token or invalid token")
		return
	}

	// Unrecognized status values (and "all") mean no filter; unrecognized
	// sort values mean the default creation-time order.
	var filter dom.TaskFilter
	if st, valid := dom.ParseStatus(c.Query("status")); valid {
		filter.Status = &st
	}
	filter.Sort = dom.ParseSort(c.Query("sort"))

	list, err := h.svc.List(c.Request.Context(), user.ID, filter)
	if err != nil {
		respondInternal(c, err, "Server error while fetching tasks")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(list),
		"data":    gin.H{"tasks": tasksToResponses(list, user)},
	})
}

// GetByID godoc
// @Summary      Get one task by id
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Task ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /tasks/{id} [get]
func (h *TaskHandler) GetByID(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized, no token or invalid token")
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetByID(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Task not found")
			return
		}
		respondInternal(c, err, "Server error while fetching task")
		return
	}
	respondData(c, http.StatusOK, "", gin.H{"task": taskToResponse(t, user)})
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTaskRequest  true  "Task body"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized, no token or invalid token")
		return
	}
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}
	status, ok := parseStatusField(c, req.Status)
	if !ok {
		return
	}
	deadline := dom.OptionalTime{Set: req.Deadline.Set, Value: req.Deadline.Value}
	t, err := h.svc.Create(c.Request.Context(), user.ID, req.Title, req.Description, status, &deadline)
	if err != nil {
		if errors.Is(err, service.ErrTitleLength) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondInternal(c, err, "Server error while creating task")
		return
	}
	respondData(c, http.StatusCreated, "Task created successfully", gin.H{"task": taskToResponse(t, user)})
}

// Update godoc
// @Summary      Update a task (partial; absent fields keep their values)
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "Task ID"
// @Param        body  body  dto.UpdateTaskRequest  true  "Partial update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized, no token or invalid token")
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBinding(c, err)
		return
	}
	if req.Description.Set && req.Description.Value != nil && len(*req.Description.Value) > 1000 {
		respondError(c, http.StatusBadRequest, "description must be at most 1000 characters")
		return
	}

	patch := dom.TaskPatch{
		Title:       req.Title,
		Description: dom.OptionalString{Set: req.Description.Set, Value: req.Description.Value},
		Deadline:    dom.OptionalTime{Set: req.Deadline.Set, Value: req.Deadline.Value},
	}
	if req.Status != nil {
		status, ok := parseStatusField(c, *req.Status)
		if !ok {
			return
		}
		if status != "" {
			patch.Status = &status
		}
	}

	t, err := h.svc.Update(c.Request.Context(), user.ID, id, patch)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Task not found")
			return
		}
		if errors.Is(err, service.ErrTitleLength) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondInternal(c, err, "Server error while updating task")
		return
	}
	respondData(c, http.StatusOK, "Task updated successfully", gin.H{"task": taskToResponse(t, user)})
}

// Delete godoc
// @Summary      Delete a task permanently
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Task ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Not authorized, no token or invalid token")
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Task not found")
			return
		}
		respondInternal(c, err, "Server error while deleting task")
		return
	}
	respondData(c, http.StatusOK, "Task deleted successfully", nil)
}

// parseStatusField validates an explicit status value; empty means default.
func parseStatusField(c *gin.Context, raw string) (dom.Status, bool) {
	if strings.TrimSpace(raw) == "" {
		return "", true
	}
	status, valid := dom.ParseStatus(raw)
	if !valid {
		respondError(c, http.StatusBadRequest, "status must be one of: To Do, In Progress, Done")
		return "", false
	}
	return status, true
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		// An unparsable id cannot name any task.
		respondError(c, http.StatusNotFound, "Task not found")
		return 0, false
	}
	return id, true
}

func taskToResponse(t dom.Task, owner dom.User) dto.TaskResponse {
	return dto.TaskResponse{
		TaskID:      t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Deadline:    t.Deadline,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		Creator:     dto.UserResponse{UserID: owner.ID, Name: owner.Name, Username: owner.Username},
	}
}

func tasksToResponses(list []dom.Task, owner dom.User) []dto.TaskResponse {
	out := make([]dto.TaskResponse, len(list))
	for i := range list {
		out[i] = taskToResponse(list[i], owner)
	}
	return out
}
