package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VIT-EcoTrack/EcoTrack/internal/auth"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/common"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/task"
	"github.com/VIT-EcoTrack/EcoTrack/internal/middleware"
	"github.com/VIT-EcoTrack/EcoTrack/internal/response"
	"github.com/VIT-EcoTrack/EcoTrack/internal/storage/postgres"
)

type TaskHandler struct {
	tasks postgres.TaskRepository
}

func NewTaskHandler(tasks postgres.TaskRepository) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// ListTasks handles GET /api/tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.tasks.GetAll()
	if err != nil {
		response.Internal(c, "Failed to list tasks")
		return
	}

	response.Success(c, http.StatusOK, "", tasks)
}

type CreateTaskRequest struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description"`
	Priority     string          `json:"priority"`
	Location     common.Location `json:"location"`
	AssignedToID string          `json:"assigned_to_id"`
}

// CreateTask handles POST /api/tasks. The assigner is always the calling
// admin, never taken from the payload.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	priority := task.PriorityMedium
	if req.Priority != "" {
		p, valid := task.PriorityFromString(req.Priority)
		if !valid {
			response.BadRequest(c, "Invalid priority")
			return
		}
		priority = p
	}

	t := &task.Task{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Status:       task.StatusPending,
		Priority:     priority,
		Location:     req.Location,
		AssignedByID: caller.ID,
	}

	if req.AssignedToID != "" {
		workerID, err := uuid.Parse(req.AssignedToID)
		if err != nil {
			response.BadRequest(c, "Invalid assigned_to_id")
			return
		}
		t.AssignedToID = &workerID
	}

	if err := h.tasks.Create(t); err != nil {
		response.DomainError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Task created", t)
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateTaskStatus handles PUT /api/tasks/:id/status. Only the assigned
// worker or an admin may change a task's status.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	status, valid := task.StatusFromString(req.Status)
	if !valid {
		response.BadRequest(c, "Invalid status")
		return
	}

	t, err := h.tasks.GetByID(c.Param("id"))
	if err != nil {
		response.DomainError(c, err)
		return
	}

	if !auth.CanActOn(caller, t) {
		response.Forbidden(c, "Not authorized")
		return
	}

	if err := h.tasks.UpdateStatus(c.Param("id"), status); err != nil {
		response.DomainError(c, err)
		return
	}

	t.Status = status
	response.Success(c, http.StatusOK, "Task status updated", t)
}

// ListMyTasks handles GET /api/tasks/my-tasks
func (h *TaskHandler) ListMyTasks(c *gin.Context) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	tasks, err := h.tasks.GetByAssignee(caller.ID.String())
	if err != nil {
		response.Internal(c, "Failed to list tasks")
		return
	}

	response.Success(c, http.StatusOK, "", tasks)
}
