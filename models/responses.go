package models

// Response envelopes for the HTTP API. Every response, success or failure,
// carries at least a Message field.

// MessageResponse is the minimal envelope used for errors and for operations
// that return no payload (e.g. clear-cache).
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by signup and login: the freshly issued bearer
// token plus the public view of the account.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// TaskResponse wraps a single task returned by a mutation (create, update,
// delete).
type TaskResponse struct {
	Message string `json:"message"`
	Task    Task   `json:"task"`
}

// CachedTaskResponse wraps a single task returned by a read path.
// Cached reports whether the payload was served from the cache snapshot
// rather than the store.
type CachedTaskResponse struct {
	Message string `json:"message"`
	Task    Task   `json:"task"`
	Cached  bool   `json:"cached"`
}

// CachedTaskListResponse wraps the owner's task list returned by the list
// read path, newest first.
type CachedTaskListResponse struct {
	Message string `json:"message"`
	Tasks   []Task `json:"tasks"`
	Cached  bool   `json:"cached"`
}
