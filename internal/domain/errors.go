package domain

import "errors"

// Domain-level errors
var (
	ErrQueueNotFound      = errors.New("queue not found")
	ErrQueueAlreadyExists = errors.New("queue already exists")
	ErrMessageNotFound    = errors.New("message not found")
	ErrQueueFull          = errors.New("queue is full")
	ErrInvalidMessage     = errors.New("invalid message")
	ErrStorage            = errors.New("storage error")
	ErrInternal           = errors.New("internal error")
)
