package broker

import (
	"context"
	"log/slog"

	"github.com/sutharpankaj1/flowq/internal/domain"
	"github.com/sutharpankaj1/flowq/internal/storage"
)

// Broker is the central coordinator for queue and message operations.
// It owns no state of its own: every call delegates to the storage
// engine, which is the single owner of queue and message state.
type Broker struct {
	storage storage.Engine
	logger  *slog.Logger

	maintenanceStop chan struct{}
}

// New creates a broker backed by the given storage engine
func New(engine storage.Engine, logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "broker")
	logger.Info("Initializing broker")

	return &Broker{
		storage: engine,
		logger:  logger,
	}
}

// Storage returns the underlying storage engine
func (b *Broker) Storage() storage.Engine {
	return b.storage
}

// CreateQueue creates a queue with the default configuration
func (b *Broker) CreateQueue(ctx context.Context, name string) (*domain.Queue, error) {
	return b.storage.CreateQueue(ctx, domain.NewQueue(name))
}

// CreateQueueWithConfig creates a queue with a custom configuration
func (b *Broker) CreateQueueWithConfig(ctx context.Context, name string, config domain.QueueConfig) (*domain.Queue, error) {
	return b.storage.CreateQueue(ctx, domain.NewQueueWithConfig(name, config))
}

// GetQueue returns a queue by name, or nil if it does not exist
func (b *Broker) GetQueue(ctx context.Context, name string) (*domain.Queue, error) {
	return b.storage.GetQueue(ctx, name)
}

// ListQueues returns all queues
func (b *Broker) ListQueues(ctx context.Context) ([]*domain.Queue, error) {
	return b.storage.ListQueues(ctx)
}

// DeleteQueue removes a queue and all its messages
func (b *Broker) DeleteQueue(ctx context.Context, name string) error {
	return b.storage.DeleteQueue(ctx, name)
}

// GetQueueStats returns queue statistics
func (b *Broker) GetQueueStats(ctx context.Context, name string) (*domain.QueueStats, error) {
	return b.storage.GetQueueStats(ctx, name)
}

// PurgeQueue removes all messages from a queue
func (b *Broker) PurgeQueue(ctx context.Context, name string) (uint64, error) {
	return b.storage.PurgeQueue(ctx, name)
}

// Publish pushes a message onto a queue
func (b *Broker) Publish(ctx context.Context, queueName string, msg *domain.Message) (domain.MessageID, error) {
	return b.storage.PushMessage(ctx, queueName, msg)
}

// PublishBytes pushes a new message with the given body onto a queue
func (b *Broker) PublishBytes(ctx context.Context, queueName string, body []byte) (domain.MessageID, error) {
	return b.Publish(ctx, queueName, domain.NewMessage(body))
}

// Receive pops a single message from a queue
func (b *Broker) Receive(ctx context.Context, queueName string) (*domain.Message, error) {
	return b.storage.PopMessage(ctx, queueName)
}

// ReceiveBatch pops up to max messages from a queue
func (b *Broker) ReceiveBatch(ctx context.Context, queueName string, max int) ([]*domain.Message, error) {
	return b.storage.PopMessages(ctx, queueName, max)
}

// Peek returns the next message without removing it
func (b *Broker) Peek(ctx context.Context, queueName string) (*domain.Message, error) {
	return b.storage.PeekMessage(ctx, queueName)
}

// Ack acknowledges a delivered message
func (b *Broker) Ack(ctx context.Context, queueName string, id domain.MessageID) error {
	return b.storage.AckMessage(ctx, queueName, id)
}

// Nack returns a delivered message for retry
func (b *Broker) Nack(ctx context.Context, queueName string, id domain.MessageID) error {
	return b.storage.NackMessage(ctx, queueName, id)
}

// GetMessage returns a tracked message by id
func (b *Broker) GetMessage(ctx context.Context, queueName string, id domain.MessageID) (*domain.Message, error) {
	return b.storage.GetMessage(ctx, queueName, id)
}
