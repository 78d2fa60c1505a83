package http

import (
	"net/http"

	"github.com/taskkeeper/go-task-keeper/internal/utils"
	"github.com/taskkeeper/go-task-keeper/models"
)

// clearCache drops the caller's whole cache namespace. The operation always
// reports success; a failed delete is logged by the service and the entries
// are left to expire.
func (h *Handler) clearCache(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	h.services.TaskService.ClearCache(r.Context(), ownerID)

	_, _ = utils.WriteJSON(w, models.MessageResponse{
		Message: "Cache cleared successfully for user",
	}, http.StatusOK)
}
