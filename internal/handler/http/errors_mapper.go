package http

import (
	"net/http"

	"github.com/taskkeeper/go-task-keeper/internal/utils"
	"github.com/taskkeeper/go-task-keeper/models"
)

// writeError sends the JSON error envelope every endpoint uses for failures.
// The message is the only detail exposed to the client; internals stay in
// the logs.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, statusCode)
}

// writeInternalError sends the generic 500 envelope with no internal detail.
func writeInternalError(w http.ResponseWriter) {
	writeError(w, "Internal server error", http.StatusInternalServerError)
}
