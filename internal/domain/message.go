package domain

import (
	"time"

	"github.com/google/uuid"
)

// MessageID uniquely identifies a message
type MessageID struct {
	uuid.UUID
}

// NewMessageID creates a new random message ID
func NewMessageID() MessageID {
	return MessageID{uuid.New()}
}

// ParseMessageID parses a message ID from its string form
func ParseMessageID(s string) (MessageID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return MessageID{}, ErrInvalidMessage
	}
	return MessageID{id}, nil
}

// MessageStatus represents the lifecycle state of a message
type MessageStatus string

const (
	// StatusPending means the message is waiting to be consumed
	StatusPending MessageStatus = "pending"

	// StatusDelivered means the message was handed to a consumer and awaits ack
	StatusDelivered MessageStatus = "delivered"

	// StatusAcked means the message was acknowledged (terminal)
	StatusAcked MessageStatus = "acked"

	// StatusFailed means the message exceeded its retry limit (terminal)
	StatusFailed MessageStatus = "failed"
)

// DefaultPriority is assigned to messages that don't specify one
const DefaultPriority = 5

// Message represents a message flowing through a queue.
// The body and attributes are immutable after creation; status and
// delivery count are owned by the storage engine.
type Message struct {
	// ID is a unique identifier for this message
	ID MessageID `json:"id"`

	// Body contains the raw message payload
	Body []byte `json:"body"`

	// ContentType describes the body encoding (e.g., "application/json")
	ContentType string `json:"content_type,omitempty"`

	// Attributes carries custom key/value metadata
	Attributes map[string]string `json:"attributes,omitempty"`

	// Priority is 1-10, higher = more important. Stored for consumers;
	// delivery order is strictly FIFO regardless of priority.
	Priority int `json:"priority"`

	// Status is the current lifecycle state
	Status MessageStatus `json:"status"`

	// DeliveryCount is the number of times the message was delivered
	DeliveryCount uint32 `json:"delivery_count"`

	// CreatedAt is when the message was created
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt, when set, is the instant after which the message is discarded
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// DedupID is an optional deduplication key
	DedupID string `json:"dedup_id,omitempty"`
}

// NewMessage creates a pending message with the given body and defaults
func NewMessage(body []byte) *Message {
	return &Message{
		ID:         NewMessageID(),
		Body:       body,
		Attributes: make(map[string]string),
		Priority:   DefaultPriority,
		Status:     StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
}

// WithContentType sets the content type (fluent API)
func (m *Message) WithContentType(ct string) *Message {
	m.ContentType = ct
	return m
}

// WithPriority sets the priority, clamped to [1, 10] (fluent API)
func (m *Message) WithPriority(p int) *Message {
	if p < 1 {
		p = 1
	}
	if p > 10 {
		p = 10
	}
	m.Priority = p
	return m
}

// WithAttribute adds an attribute to the message (fluent API)
func (m *Message) WithAttribute(key, value string) *Message {
	m.Attributes[key] = value
	return m
}

// WithExpiry sets the expiration time (fluent API)
func (m *Message) WithExpiry(expiresAt time.Time) *Message {
	m.ExpiresAt = &expiresAt
	return m
}

// WithDedupID sets the deduplication ID (fluent API)
func (m *Message) WithDedupID(id string) *Message {
	m.DedupID = id
	return m
}

// IsExpired reports whether the message's expiry is strictly in the past
func (m *Message) IsExpired() bool {
	return m.ExpiredAt(time.Now())
}

// ExpiredAt reports whether the message is expired relative to the given instant
func (m *Message) ExpiredAt(now time.Time) bool {
	return m.ExpiresAt != nil && now.After(*m.ExpiresAt)
}

// BodyString returns the body as a string
func (m *Message) BodyString() string {
	return string(m.Body)
}

// Clone returns a deep copy of the message.
// The engine hands clones to callers so internal state can't be mutated
// from outside.
func (m *Message) Clone() *Message {
	c := *m
	c.Body = append([]byte(nil), m.Body...)
	c.Attributes = make(map[string]string, len(m.Attributes))
	for k, v := range m.Attributes {
		c.Attributes[k] = v
	}
	if m.ExpiresAt != nil {
		exp := *m.ExpiresAt
		c.ExpiresAt = &exp
	}
	return &c
}
