package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VIT-EcoTrack/EcoTrack/internal/auth"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/task"
	"github.com/VIT-EcoTrack/EcoTrack/internal/domain/user"
)

func TestCreateTaskSetsAssigner(t *testing.T) {
	repo := new(MockTaskRepository)
	handler := NewTaskHandler(repo)

	adminID := uuid.New()
	router := newTestRouter()
	router.POST("/api/tasks", asCaller(auth.CurrentUser{ID: adminID, Role: user.RoleAdmin}), handler.CreateTask)

	repo.On("Create", mock.AnythingOfType("*task.Task")).Return(nil)

	w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]any{
		"title":    "Collect bins",
		"priority": "high",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var created task.Task
	decodeData(t, w, &created)
	assert.Equal(t, adminID, created.AssignedByID)
	assert.Equal(t, task.StatusPending, created.Status)
	assert.Equal(t, task.PriorityHigh, created.Priority)
	repo.AssertExpectations(t)
}

func TestCreateTaskRejectsMissingTitle(t *testing.T) {
	repo := new(MockTaskRepository)
	handler := NewTaskHandler(repo)

	router := newTestRouter()
	router.POST("/api/tasks", asCaller(auth.CurrentUser{ID: uuid.New(), Role: user.RoleAdmin}), handler.CreateTask)

	w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]any{
		"priority": "high",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateTaskRejectsInvalidPriority(t *testing.T) {
	repo := new(MockTaskRepository)
	handler := NewTaskHandler(repo)

	router := newTestRouter()
	router.POST("/api/tasks", asCaller(auth.CurrentUser{ID: uuid.New(), Role: user.RoleAdmin}), handler.CreateTask)

	w := doJSON(t, router, http.MethodPost, "/api/tasks", map[string]any{
		"title":    "Collect bins",
		"priority": "urgent",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func newAssignedTask(workerID uuid.UUID) *task.Task {
	return &task.Task{
		ID:           uuid.New(),
		Title:        "Collect bins",
		Status:       task.StatusPending,
		Priority:     task.PriorityHigh,
		AssignedToID: &workerID,
		AssignedByID: uuid.New(),
	}
}

func TestUpdateTaskStatusByAssignedWorker(t *testing.T) {
	workerID := uuid.New()
	existing := newAssignedTask(workerID)

	repo := new(MockTaskRepository)
	repo.On("GetByID", existing.ID.String()).Return(existing, nil)
	repo.On("UpdateStatus", existing.ID.String(), task.StatusInProgress).Return(nil)

	handler := NewTaskHandler(repo)
	router := newTestRouter()
	router.PUT("/api/tasks/:id/status", asCaller(auth.CurrentUser{ID: workerID, Role: user.RoleWorker}), handler.UpdateTaskStatus)

	w := doJSON(t, router, http.MethodPut, "/api/tasks/"+existing.ID.String()+"/status", map[string]any{
		"status": "in-progress",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var updated task.Task
	decodeData(t, w, &updated)
	assert.Equal(t, task.StatusInProgress, updated.Status)
	repo.AssertExpectations(t)
}

func TestUpdateTaskStatusByUnassignedWorkerForbidden(t *testing.T) {
	existing := newAssignedTask(uuid.New())

	repo := new(MockTaskRepository)
	repo.On("GetByID", existing.ID.String()).Return(existing, nil)

	handler := NewTaskHandler(repo)
	router := newTestRouter()
	router.PUT("/api/tasks/:id/status", asCaller(auth.CurrentUser{ID: uuid.New(), Role: user.RoleWorker}), handler.UpdateTaskStatus)

	w := doJSON(t, router, http.MethodPut, "/api/tasks/"+existing.ID.String()+"/status", map[string]any{
		"status": "in-progress",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
}

func TestUpdateTaskStatusByAdmin(t *testing.T) {
	existing := newAssignedTask(uuid.New())

	repo := new(MockTaskRepository)
	repo.On("GetByID", existing.ID.String()).Return(existing, nil)
	repo.On("UpdateStatus", existing.ID.String(), task.StatusCompleted).Return(nil)

	handler := NewTaskHandler(repo)
	router := newTestRouter()
	router.PUT("/api/tasks/:id/status", asCaller(auth.CurrentUser{ID: uuid.New(), Role: user.RoleAdmin}), handler.UpdateTaskStatus)

	w := doJSON(t, router, http.MethodPut, "/api/tasks/"+existing.ID.String()+"/status", map[string]any{
		"status": "completed",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestUpdateTaskStatusUnknownTask(t *testing.T) {
	repo := new(MockTaskRepository)
	id := uuid.New().String()
	repo.On("GetByID", id).Return(nil, notFoundErr("task"))

	handler := NewTaskHandler(repo)
	router := newTestRouter()
	router.PUT("/api/tasks/:id/status", asCaller(auth.CurrentUser{ID: uuid.New(), Role: user.RoleAdmin}), handler.UpdateTaskStatus)

	w := doJSON(t, router, http.MethodPut, "/api/tasks/"+id+"/status", map[string]any{
		"status": "completed",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateTaskStatusInvalidValue(t *testing.T) {
	repo := new(MockTaskRepository)
	handler := NewTaskHandler(repo)
	router := newTestRouter()
	router.PUT("/api/tasks/:id/status", asCaller(auth.CurrentUser{ID: uuid.New(), Role: user.RoleAdmin}), handler.UpdateTaskStatus)

	w := doJSON(t, router, http.MethodPut, "/api/tasks/"+uuid.New().String()+"/status", map[string]any{
		"status": "paused",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestListMyTasksFiltersByAssignee(t *testing.T) {
	workerID := uuid.New()
	mine := []*task.Task{newAssignedTask(workerID), newAssignedTask(workerID)}

	repo := new(MockTaskRepository)
	repo.On("GetByAssignee", workerID.String()).Return(mine, nil)

	handler := NewTaskHandler(repo)
	router := newTestRouter()
	router.GET("/api/tasks/my-tasks", asCaller(auth.CurrentUser{ID: workerID, Role: user.RoleWorker}), handler.ListMyTasks)

	w := doJSON(t, router, http.MethodGet, "/api/tasks/my-tasks", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var tasks []task.Task
	decodeData(t, w, &tasks)
	assert.Len(t, tasks, 2)
	repo.AssertExpectations(t)
}
