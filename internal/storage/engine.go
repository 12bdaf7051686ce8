package storage

import (
	"context"

	"github.com/sutharpankaj1/flowq/internal/domain"
)

// Engine defines the interface for queue and message storage.
// This abstraction allows swapping backends (in-memory, durable, etc.)
// without changing callers; the broker talks to storage only through it.
//
// Implementations must make each call atomic with respect to concurrent
// calls on the same queue, and must not let operations on different
// queues block one another.
type Engine interface {
	// CreateQueue registers a new queue.
	// Returns domain.ErrQueueAlreadyExists if the name is taken.
	CreateQueue(ctx context.Context, queue *domain.Queue) (*domain.Queue, error)

	// GetQueue returns a queue by name, or nil if it does not exist
	GetQueue(ctx context.Context, name string) (*domain.Queue, error)

	// ListQueues returns all queues in unspecified order
	ListQueues(ctx context.Context) ([]*domain.Queue, error)

	// DeleteQueue removes a queue and drops all its messages.
	// Returns domain.ErrQueueNotFound if the queue does not exist.
	DeleteQueue(ctx context.Context, name string) error

	// GetQueueStats returns a point-in-time snapshot of queue counters
	GetQueueStats(ctx context.Context, name string) (*domain.QueueStats, error)

	// PurgeQueue removes all pending and in-flight messages from a queue
	// and returns how many were removed
	PurgeQueue(ctx context.Context, name string) (uint64, error)

	// PushMessage appends a message to the tail of a queue's pending list.
	// Returns domain.ErrQueueFull when the queue's max_messages cap is hit.
	PushMessage(ctx context.Context, queueName string, msg *domain.Message) (domain.MessageID, error)

	// PopMessage removes the next non-expired pending message, marks it
	// delivered, moves it in-flight and returns a copy. Returns nil when
	// the queue has no deliverable message.
	PopMessage(ctx context.Context, queueName string) (*domain.Message, error)

	// PopMessages pops up to max messages, stopping early when the queue
	// runs out. A short result is not an error.
	PopMessages(ctx context.Context, queueName string, max int) ([]*domain.Message, error)

	// PeekMessage returns a copy of the head pending message without
	// mutating any state, or nil if the queue is empty
	PeekMessage(ctx context.Context, queueName string) (*domain.Message, error)

	// AckMessage discards an in-flight message.
	// Returns domain.ErrMessageNotFound if the id is not in flight.
	AckMessage(ctx context.Context, queueName string, id domain.MessageID) error

	// NackMessage returns an in-flight message to the head of the pending
	// list, or marks it failed once its retry limit is reached.
	// Returns domain.ErrMessageNotFound if the id is not in flight.
	NackMessage(ctx context.Context, queueName string, id domain.MessageID) error

	// GetMessage returns a copy of a message by id, searching in-flight
	// then pending, or nil if it is not tracked
	GetMessage(ctx context.Context, queueName string, id domain.MessageID) (*domain.Message, error)

	// CleanupExpired removes expired pending messages across all queues
	// and returns the total removed. In-flight messages are never swept.
	CleanupExpired(ctx context.Context) (uint64, error)
}
