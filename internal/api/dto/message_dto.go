package dto

// PublishRequest represents a message publish request
type PublishRequest struct {
	// Body is the message payload
	Body string `json:"body" binding:"required" example:"{\"order_id\": 42}"`

	// ContentType describes the body encoding
	ContentType string `json:"content_type,omitempty" example:"application/json"`

	// Priority is 1-10, clamped; defaults to 5
	Priority *int `json:"priority,omitempty" example:"5"`

	// Attributes carries custom key/value metadata
	Attributes map[string]string `json:"attributes,omitempty"`

	// TTLSecs sets an expiry this many seconds from now (0 = no expiry)
	TTLSecs uint64 `json:"ttl_secs,omitempty" example:"3600"`

	// DedupID is an optional deduplication key
	DedupID string `json:"dedup_id,omitempty"`
}

// PublishResponse carries the id of the published message
type PublishResponse struct {
	MessageID string `json:"message_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// MessageResponse represents a message in API responses
type MessageResponse struct {
	ID            string            `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Body          string            `json:"body" example:"{\"order_id\": 42}"`
	ContentType   string            `json:"content_type,omitempty" example:"application/json"`
	Priority      int               `json:"priority" example:"5"`
	Status        string            `json:"status" example:"delivered"`
	DeliveryCount uint32            `json:"delivery_count" example:"1"`
	Attributes    map[string]string `json:"attributes,omitempty"`
	CreatedAt     string            `json:"created_at" example:"2025-01-18T12:34:56Z"`
	ExpiresAt     string            `json:"expires_at,omitempty" example:"2025-01-18T13:34:56Z"`
}

// AckRequest identifies the message to ack or nack
type AckRequest struct {
	MessageID string `json:"message_id" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
}
