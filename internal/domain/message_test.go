package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage_Defaults(t *testing.T) {
	msg := NewMessage([]byte("Hello, World!"))

	assert.Equal(t, "Hello, World!", msg.BodyString())
	assert.Equal(t, DefaultPriority, msg.Priority)
	assert.Equal(t, StatusPending, msg.Status)
	assert.Equal(t, uint32(0), msg.DeliveryCount)
	assert.Nil(t, msg.ExpiresAt)
	assert.NotZero(t, msg.CreatedAt)
}

func TestNewMessage_UniqueIDs(t *testing.T) {
	a := NewMessage([]byte("a"))
	b := NewMessage([]byte("b"))

	assert.NotEqual(t, a.ID, b.ID)
}

func TestMessage_Builder(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	msg := NewMessage([]byte("test")).
		WithPriority(8).
		WithContentType("text/plain").
		WithAttribute("key", "value").
		WithExpiry(exp).
		WithDedupID("dedup-1")

	assert.Equal(t, 8, msg.Priority)
	assert.Equal(t, "text/plain", msg.ContentType)
	assert.Equal(t, "value", msg.Attributes["key"])
	require.NotNil(t, msg.ExpiresAt)
	assert.Equal(t, exp, *msg.ExpiresAt)
	assert.Equal(t, "dedup-1", msg.DedupID)
}

func TestMessage_PriorityClamped(t *testing.T) {
	assert.Equal(t, 1, NewMessage(nil).WithPriority(0).Priority)
	assert.Equal(t, 1, NewMessage(nil).WithPriority(-5).Priority)
	assert.Equal(t, 10, NewMessage(nil).WithPriority(11).Priority)
	assert.Equal(t, 10, NewMessage(nil).WithPriority(100).Priority)
	assert.Equal(t, 7, NewMessage(nil).WithPriority(7).Priority)
}

func TestMessage_IsExpired(t *testing.T) {
	msg := NewMessage([]byte("test"))
	assert.False(t, msg.IsExpired(), "message without expiry never expires")

	msg.WithExpiry(time.Now().Add(-time.Second))
	assert.True(t, msg.IsExpired())

	msg.WithExpiry(time.Now().Add(time.Hour))
	assert.False(t, msg.IsExpired())
}

func TestMessage_ExpiredAt_Boundary(t *testing.T) {
	exp := time.Now()
	msg := NewMessage([]byte("test")).WithExpiry(exp)

	// Expiry is strict: a message is expired only after its deadline
	assert.False(t, msg.ExpiredAt(exp))
	assert.True(t, msg.ExpiredAt(exp.Add(time.Nanosecond)))
	assert.False(t, msg.ExpiredAt(exp.Add(-time.Nanosecond)))
}

func TestMessage_Clone_Independent(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	msg := NewMessage([]byte("body")).
		WithAttribute("k", "v").
		WithExpiry(exp)

	clone := msg.Clone()
	require.Equal(t, msg.ID, clone.ID)
	require.Equal(t, msg.BodyString(), clone.BodyString())

	// Mutating the clone must not leak into the original
	clone.Body[0] = 'X'
	clone.Attributes["k"] = "changed"
	*clone.ExpiresAt = exp.Add(time.Hour)

	assert.Equal(t, "body", msg.BodyString())
	assert.Equal(t, "v", msg.Attributes["k"])
	assert.Equal(t, exp, *msg.ExpiresAt)
}

func TestParseMessageID(t *testing.T) {
	id := NewMessageID()

	parsed, err := ParseMessageID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseMessageID("not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidMessage)
}
