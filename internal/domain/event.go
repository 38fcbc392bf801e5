package domain

// TaskUpdatesChannel is the pub/sub topic every mutation is announced on.
// The websocket hub subscribes here and rebroadcasts to live viewers.
const TaskUpdatesChannel = "task-updates"

const (
	EventTaskCreated = "task-created"
	EventTaskUpdated = "task-updated"
	EventTaskDeleted = "task-deleted"
)

// TaskChanges carries the full previous and new snapshots of an updated task.
type TaskChanges struct {
	From *Task `json:"from"`
	To   *Task `json:"to"`
}

// TaskEvent is the JSON message published on TaskUpdatesChannel.
// Task is set for created/updated events, Changes only for updated ones.
type TaskEvent struct {
	Type    string       `json:"type"`
	TaskID  string       `json:"taskId"`
	Task    *Task        `json:"task,omitempty"`
	Changes *TaskChanges `json:"changes,omitempty"`
}
