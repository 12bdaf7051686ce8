package domain

import (
	"time"

	"github.com/google/uuid"
)

// QueueID uniquely identifies a queue
type QueueID struct {
	uuid.UUID
}

// NewQueueID creates a new random queue ID
func NewQueueID() QueueID {
	return QueueID{uuid.New()}
}

// Default queue configuration values
const (
	DefaultVisibilityTimeoutSecs = 30
	DefaultMaxRetries            = 5
	DefaultDedupWindowSecs       = 300
)

// QueueConfig holds the tunables for a queue.
//
// VisibilityTimeoutSecs, DeadLetterQueue, DedupEnabled, DedupWindowSecs and
// MaxSizeBytes are accepted and stored but have no enforcement path in the
// in-memory engine; they are part of the queue's declared configuration
// surface only.
type QueueConfig struct {
	// MaxMessages caps the number of pending messages (0 = unlimited)
	MaxMessages uint64 `json:"max_messages"`

	// MaxSizeBytes caps the total queue size in bytes (0 = unlimited)
	MaxSizeBytes uint64 `json:"max_size_bytes"`

	// MessageTTLSecs is the default TTL for messages (0 = no expiry).
	// Not applied automatically; producers opt in per message.
	MessageTTLSecs uint64 `json:"message_ttl_secs"`

	// VisibilityTimeoutSecs is how long a delivered message stays hidden
	VisibilityTimeoutSecs uint64 `json:"visibility_timeout_secs"`

	// MaxRetries is the delivery attempt ceiling before a nack marks
	// the message failed
	MaxRetries uint32 `json:"max_retries"`

	// DeadLetterQueue names a queue for terminally failed messages
	DeadLetterQueue string `json:"dead_letter_queue,omitempty"`

	// DedupEnabled turns on deduplication
	DedupEnabled bool `json:"dedup_enabled"`

	// DedupWindowSecs is the deduplication window
	DedupWindowSecs uint64 `json:"dedup_window_secs"`
}

// DefaultQueueConfig returns a config with the standard defaults
func DefaultQueueConfig() QueueConfig {
	return QueueConfig{
		VisibilityTimeoutSecs: DefaultVisibilityTimeoutSecs,
		MaxRetries:            DefaultMaxRetries,
		DedupWindowSecs:       DefaultDedupWindowSecs,
	}
}

// Queue holds queue metadata. The name is the unique lookup key.
type Queue struct {
	ID        QueueID     `json:"id"`
	Name      string      `json:"name"`
	Config    QueueConfig `json:"config"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewQueue creates a queue with the default configuration
func NewQueue(name string) *Queue {
	return NewQueueWithConfig(name, DefaultQueueConfig())
}

// NewQueueWithConfig creates a queue with a custom configuration
func NewQueueWithConfig(name string, config QueueConfig) *Queue {
	now := time.Now().UTC()
	return &Queue{
		ID:        NewQueueID(),
		Name:      name,
		Config:    config,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// QueueStats is a point-in-time snapshot of a queue, derived on demand.
// ConsumerCount, PublishRate and ConsumeRate are not tracked by the
// in-memory engine and always report zero.
type QueueStats struct {
	// MessageCount is pending + in-flight
	MessageCount uint64 `json:"message_count"`

	// PendingCount is the number of messages awaiting delivery
	PendingCount uint64 `json:"pending_count"`

	// InFlightCount is the number of delivered, unacknowledged messages
	InFlightCount uint64 `json:"in_flight_count"`

	// SizeBytes is the total body size of pending messages
	SizeBytes uint64 `json:"size_bytes"`

	// ConsumerCount is the number of active consumers
	ConsumerCount uint64 `json:"consumer_count"`

	// PublishRate is recent messages published per second
	PublishRate float64 `json:"publish_rate"`

	// ConsumeRate is recent messages consumed per second
	ConsumeRate float64 `json:"consume_rate"`
}
