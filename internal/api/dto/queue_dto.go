package dto

import "github.com/sutharpankaj1/flowq/internal/domain"

// CreateQueueRequest represents a queue creation request
type CreateQueueRequest struct {
	// Name of the queue to create
	Name string `json:"name" binding:"required" example:"orders"`

	// Optional queue configuration; defaults apply when omitted
	Config *domain.QueueConfig `json:"config,omitempty"`
}

// QueueResponse represents a queue in API responses
type QueueResponse struct {
	ID        string             `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string             `json:"name" example:"orders"`
	Config    domain.QueueConfig `json:"config"`
	CreatedAt string             `json:"created_at" example:"2025-01-18T12:34:56Z"`
	UpdatedAt string             `json:"updated_at" example:"2025-01-18T12:34:56Z"`
}

// QueueListResponse wraps a list of queues
type QueueListResponse struct {
	Queues []QueueResponse `json:"queues"`
	Total  int             `json:"total" example:"3"`
}

// StatsResponse represents queue statistics
type StatsResponse struct {
	MessageCount  uint64  `json:"message_count" example:"12"`
	PendingCount  uint64  `json:"pending_count" example:"10"`
	InFlightCount uint64  `json:"in_flight_count" example:"2"`
	SizeBytes     uint64  `json:"size_bytes" example:"4096"`
	ConsumerCount uint64  `json:"consumer_count" example:"0"`
	PublishRate   float64 `json:"publish_rate" example:"0"`
	ConsumeRate   float64 `json:"consume_rate" example:"0"`
}

// PurgeResponse reports how many messages a purge removed
type PurgeResponse struct {
	Purged uint64 `json:"purged" example:"12"`
}
