package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"github.com/sutharpankaj1/flowq/internal/broker"
	"github.com/sutharpankaj1/flowq/internal/domain"
	"github.com/sutharpankaj1/flowq/internal/storage"
)

// MockEngine implements storage.Engine for testing
type MockEngine struct {
	CreateQueueFunc    func(ctx context.Context, queue *domain.Queue) (*domain.Queue, error)
	GetQueueFunc       func(ctx context.Context, name string) (*domain.Queue, error)
	ListQueuesFunc     func(ctx context.Context) ([]*domain.Queue, error)
	DeleteQueueFunc    func(ctx context.Context, name string) error
	GetQueueStatsFunc  func(ctx context.Context, name string) (*domain.QueueStats, error)
	PurgeQueueFunc     func(ctx context.Context, name string) (uint64, error)
	PushMessageFunc    func(ctx context.Context, queueName string, msg *domain.Message) (domain.MessageID, error)
	PopMessageFunc     func(ctx context.Context, queueName string) (*domain.Message, error)
	PopMessagesFunc    func(ctx context.Context, queueName string, max int) ([]*domain.Message, error)
	PeekMessageFunc    func(ctx context.Context, queueName string) (*domain.Message, error)
	AckMessageFunc     func(ctx context.Context, queueName string, id domain.MessageID) error
	NackMessageFunc    func(ctx context.Context, queueName string, id domain.MessageID) error
	GetMessageFunc     func(ctx context.Context, queueName string, id domain.MessageID) (*domain.Message, error)
	CleanupExpiredFunc func(ctx context.Context) (uint64, error)
}

func (m *MockEngine) CreateQueue(ctx context.Context, queue *domain.Queue) (*domain.Queue, error) {
	if m.CreateQueueFunc != nil {
		return m.CreateQueueFunc(ctx, queue)
	}
	return queue, nil
}

func (m *MockEngine) GetQueue(ctx context.Context, name string) (*domain.Queue, error) {
	if m.GetQueueFunc != nil {
		return m.GetQueueFunc(ctx, name)
	}
	return nil, nil
}

func (m *MockEngine) ListQueues(ctx context.Context) ([]*domain.Queue, error) {
	if m.ListQueuesFunc != nil {
		return m.ListQueuesFunc(ctx)
	}
	return nil, nil
}

func (m *MockEngine) DeleteQueue(ctx context.Context, name string) error {
	if m.DeleteQueueFunc != nil {
		return m.DeleteQueueFunc(ctx, name)
	}
	return nil
}

func (m *MockEngine) GetQueueStats(ctx context.Context, name string) (*domain.QueueStats, error) {
	if m.GetQueueStatsFunc != nil {
		return m.GetQueueStatsFunc(ctx, name)
	}
	return nil, domain.ErrQueueNotFound
}

func (m *MockEngine) PurgeQueue(ctx context.Context, name string) (uint64, error) {
	if m.PurgeQueueFunc != nil {
		return m.PurgeQueueFunc(ctx, name)
	}
	return 0, domain.ErrQueueNotFound
}

func (m *MockEngine) PushMessage(ctx context.Context, queueName string, msg *domain.Message) (domain.MessageID, error) {
	if m.PushMessageFunc != nil {
		return m.PushMessageFunc(ctx, queueName, msg)
	}
	return msg.ID, nil
}

func (m *MockEngine) PopMessage(ctx context.Context, queueName string) (*domain.Message, error) {
	if m.PopMessageFunc != nil {
		return m.PopMessageFunc(ctx, queueName)
	}
	return nil, nil
}

func (m *MockEngine) PopMessages(ctx context.Context, queueName string, max int) ([]*domain.Message, error) {
	if m.PopMessagesFunc != nil {
		return m.PopMessagesFunc(ctx, queueName, max)
	}
	return nil, nil
}

func (m *MockEngine) PeekMessage(ctx context.Context, queueName string) (*domain.Message, error) {
	if m.PeekMessageFunc != nil {
		return m.PeekMessageFunc(ctx, queueName)
	}
	return nil, nil
}

func (m *MockEngine) AckMessage(ctx context.Context, queueName string, id domain.MessageID) error {
	if m.AckMessageFunc != nil {
		return m.AckMessageFunc(ctx, queueName, id)
	}
	return domain.ErrMessageNotFound
}

func (m *MockEngine) NackMessage(ctx context.Context, queueName string, id domain.MessageID) error {
	if m.NackMessageFunc != nil {
		return m.NackMessageFunc(ctx, queueName, id)
	}
	return domain.ErrMessageNotFound
}

func (m *MockEngine) GetMessage(ctx context.Context, queueName string, id domain.MessageID) (*domain.Message, error) {
	if m.GetMessageFunc != nil {
		return m.GetMessageFunc(ctx, queueName, id)
	}
	return nil, nil
}

func (m *MockEngine) CleanupExpired(ctx context.Context) (uint64, error) {
	if m.CleanupExpiredFunc != nil {
		return m.CleanupExpiredFunc(ctx)
	}
	return 0, nil
}

var _ storage.Engine = (*MockEngine)(nil)

func newTestBroker(engine storage.Engine) *broker.Broker {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return broker.New(engine, logger)
}

func setupGinTest() (*gin.Engine, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	w := httptest.NewRecorder()
	return router, w
}
