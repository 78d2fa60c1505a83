package models

import "time"

// Task is a single task record owned by exactly one user.
// OwnerID is set once at creation and never reassigned.
type Task struct {
	// TaskID is the store-assigned unique identifier of the task.
	TaskID int64 `json:"id"`

	// Name is the required, non-empty task title.
	Name string `json:"taskName"`

	// Description is optional free-form text; defaults to empty.
	Description string `json:"description"`

	// DueDate is the required date the task is due.
	DueDate Date `json:"dueDate"`

	// OwnerID references the owning user. Every read and mutation is
	// scoped to this identifier.
	OwnerID int64 `json:"userId"`

	// CreatedAt is server-assigned at creation time.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskUpdate represents a partial update of a single task.
// Only non-nil fields are applied (partial update support).
type TaskUpdate struct {
	// ID is the unique identifier of the task to update. Required.
	ID int64 `json:"id"`

	// OwnerID is the authenticated caller. Populated from the verified
	// token, never from the request body; the update only matches rows
	// owned by this user.
	OwnerID int64 `json:"-"`

	// Name replaces the task title when non-nil.
	Name *string `json:"taskName,omitempty"`

	// Description replaces the description when non-nil.
	Description *string `json:"description,omitempty"`

	// DueDate replaces the due date when non-nil.
	DueDate *Date `json:"dueDate,omitempty"`
}

// Empty reports whether the update carries no field changes at all.
func (u TaskUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.DueDate == nil
}
