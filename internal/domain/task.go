package domain

import "strconv"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task is the unit of shared work. Timestamps are milliseconds since epoch,
// matching the wire format consumed by live viewers. An empty AssignedTo
// means the task is unassigned.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	AssignedTo  string     `json:"assignedTo"`
	CreatedAt   int64      `json:"createdAt"`
	UpdatedAt   int64      `json:"updatedAt"`
}

// Fields flattens the task into the string field map stored in the
// primary hash record.
func (t *Task) Fields() map[string]interface{} {
	return map[string]interface{}{
		"id":          t.ID,
		"title":       t.Title,
		"description": t.Description,
		"status":      string(t.Status),
		"assignedTo":  t.AssignedTo,
		"createdAt":   strconv.FormatInt(t.CreatedAt, 10),
		"updatedAt":   strconv.FormatInt(t.UpdatedAt, 10),
	}
}

// TaskFromFields rebuilds a task from a stored field map, coercing the
// timestamp fields back to integers. An unparseable timestamp comes back
// as zero rather than failing the read.
func TaskFromFields(fields map[string]string) *Task {
	createdAt, _ := strconv.ParseInt(fields["createdAt"], 10, 64)
	updatedAt, _ := strconv.ParseInt(fields["updatedAt"], 10, 64)
	return &Task{
		ID:          fields["id"],
		Title:       fields["title"],
		Description: fields["description"],
		Status:      TaskStatus(fields["status"]),
		AssignedTo:  fields["assignedTo"],
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
