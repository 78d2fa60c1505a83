package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taskkeeper/go-task-keeper/internal/logger"
	"github.com/taskkeeper/go-task-keeper/internal/service"
	"github.com/taskkeeper/go-task-keeper/internal/store"
	"github.com/taskkeeper/go-task-keeper/internal/utils"
	"github.com/taskkeeper/go-task-keeper/models"
)

// ownerID extracts the authenticated owner from the request context.
// The auth middleware always sets it; a miss means the route was wired
// without the middleware, which is answered with 401.
func (h *Handler) ownerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return 0, false
	}
	return ownerID, true
}

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	var task models.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	task.OwnerID = ownerID

	created, err := h.services.TaskService.CreateTask(ctx, task)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid task data provided")
			writeError(w, "Task name and due date are required", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task creation")
			writeInternalError(w)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.TaskResponse{
		Message: "Task created successfully",
		Task:    created,
	}, http.StatusCreated)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	tasks, cached, err := h.services.TaskService.ListTasks(ctx, ownerID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during task listing")
		writeInternalError(w)
		return
	}

	message := "Tasks retrieved successfully"
	if cached {
		message = "Tasks retrieved successfully (from cache)"
	}

	_, _ = utils.WriteJSON(w, models.CachedTaskListResponse{
		Message: message,
		Tasks:   tasks,
		Cached:  cached,
	}, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	taskID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// an unparseable id can never match a stored task
		writeError(w, "Task not found", http.StatusNotFound)
		return
	}

	task, cached, err := h.services.TaskService.GetTask(ctx, ownerID, taskID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoTaskWasFound):
			writeError(w, "Task not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task lookup")
			writeInternalError(w)
			return
		}
	}

	message := "Task retrieved successfully"
	if cached {
		message = "Task retrieved successfully (from cache)"
	}

	_, _ = utils.WriteJSON(w, models.CachedTaskResponse{
		Message: message,
		Task:    task,
		Cached:  cached,
	}, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	var update models.TaskUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.OwnerID = ownerID

	updated, err := h.services.TaskService.UpdateTask(ctx, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "Task ID is required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoTaskWasFound):
			writeError(w, "Task not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task update")
			writeInternalError(w)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.TaskResponse{
		Message: "Task updated successfully",
		Task:    updated,
	}, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	var body struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	deleted, err := h.services.TaskService.DeleteTask(ctx, ownerID, body.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeError(w, "Task ID is required", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoTaskWasFound):
			writeError(w, "Task not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during task deletion")
			writeInternalError(w)
			return
		}
	}

	_, _ = utils.WriteJSON(w, models.TaskResponse{
		Message: "Task deleted successfully",
		Task:    deleted,
	}, http.StatusOK)
}
