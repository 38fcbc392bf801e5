package services

import "errors"

// Task errors
var (
	ErrTaskNotFound      = errors.New("task: not found")
	ErrTaskTitleRequired = errors.New("task: title is required")
	ErrTaskInvalidStatus = errors.New("task: invalid status")
)
