package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sutharpankaj1/flowq/internal/domain"
	"github.com/sutharpankaj1/flowq/internal/storage"
)

// queueState is the runtime state for a single queue: its metadata, the
// FIFO pending list and the in-flight set. A message id lives in at most
// one of pending/inflight; once acked or failed it is in neither.
type queueState struct {
	mu       sync.Mutex
	queue    *domain.Queue
	pending  []*domain.Message
	inflight map[domain.MessageID]*domain.Message
}

func newQueueState(queue *domain.Queue) *queueState {
	return &queueState{
		queue:    queue,
		inflight: make(map[domain.MessageID]*domain.Message),
	}
}

// Engine is the in-memory storage backend. Fast and non-persistent: all
// data is lost when the process exits.
//
// The registry lock only guards the name -> state map; every message
// operation locks a single queueState, so queues never contend with each
// other.
type Engine struct {
	mu     sync.RWMutex
	queues map[string]*queueState
	logger *slog.Logger
}

var _ storage.Engine = (*Engine)(nil)

// NewEngine creates a new in-memory storage engine
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "memory_engine")
	logger.Info("Initializing in-memory storage")

	return &Engine{
		queues: make(map[string]*queueState),
		logger: logger,
	}
}

// getState looks up a queue's state by name
func (e *Engine) getState(name string) (*queueState, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	state, exists := e.queues[name]
	if !exists {
		return nil, domain.ErrQueueNotFound
	}
	return state, nil
}

// CreateQueue registers a new queue
func (e *Engine) CreateQueue(ctx context.Context, queue *domain.Queue) (*domain.Queue, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.queues[queue.Name]; exists {
		return nil, domain.ErrQueueAlreadyExists
	}

	e.queues[queue.Name] = newQueueState(queue)
	e.logger.Info("Queue created", "queue", queue.Name, "queue_id", queue.ID.String())

	snapshot := *queue
	return &snapshot, nil
}

// GetQueue returns a queue by name, or nil if it does not exist
func (e *Engine) GetQueue(ctx context.Context, name string) (*domain.Queue, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	state, exists := e.queues[name]
	if !exists {
		return nil, nil
	}
	snapshot := *state.queue
	return &snapshot, nil
}

// ListQueues returns all queues in unspecified order
func (e *Engine) ListQueues(ctx context.Context) ([]*domain.Queue, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	queues := make([]*domain.Queue, 0, len(e.queues))
	for _, state := range e.queues {
		snapshot := *state.queue
		queues = append(queues, &snapshot)
	}
	return queues, nil
}

// DeleteQueue removes a queue and drops all its messages
func (e *Engine) DeleteQueue(ctx context.Context, name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.queues[name]; !exists {
		return domain.ErrQueueNotFound
	}

	delete(e.queues, name)
	e.logger.Info("Queue deleted", "queue", name)
	return nil
}

// GetQueueStats returns a point-in-time snapshot of queue counters
func (e *Engine) GetQueueStats(ctx context.Context, name string) (*domain.QueueStats, error) {
	state, err := e.getState(name)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	var sizeBytes uint64
	for _, msg := range state.pending {
		sizeBytes += uint64(len(msg.Body))
	}

	pendingCount := uint64(len(state.pending))
	inflightCount := uint64(len(state.inflight))

	return &domain.QueueStats{
		MessageCount:  pendingCount + inflightCount,
		PendingCount:  pendingCount,
		InFlightCount: inflightCount,
		SizeBytes:     sizeBytes,
	}, nil
}

// PurgeQueue drops all pending and in-flight messages from a queue
func (e *Engine) PurgeQueue(ctx context.Context, name string) (uint64, error) {
	state, err := e.getState(name)
	if err != nil {
		return 0, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	count := uint64(len(state.pending)) + uint64(len(state.inflight))
	state.pending = nil
	state.inflight = make(map[domain.MessageID]*domain.Message)

	e.logger.Info("Queue purged", "queue", name, "count", count)
	return count, nil
}

// PushMessage appends a message to the tail of the pending list
func (e *Engine) PushMessage(ctx context.Context, queueName string, msg *domain.Message) (domain.MessageID, error) {
	state, err := e.getState(queueName)
	if err != nil {
		return domain.MessageID{}, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	// The cap counts pending only; in-flight messages don't reserve space
	max := state.queue.Config.MaxMessages
	if max > 0 && uint64(len(state.pending)) >= max {
		return domain.MessageID{}, domain.ErrQueueFull
	}

	state.pending = append(state.pending, msg)

	e.logger.Debug("Message pushed", "queue", queueName, "message_id", msg.ID.String())
	return msg.ID, nil
}

// PopMessage delivers the next pending message.
//
// Expiry is lazy: expired messages at the head are dropped here rather
// than waiting for the cleanup sweep, and are never returned.
func (e *Engine) PopMessage(ctx context.Context, queueName string) (*domain.Message, error) {
	state, err := e.getState(queueName)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	now := time.Now()
	for len(state.pending) > 0 {
		msg := state.pending[0]
		state.pending = state.pending[1:]

		if msg.ExpiredAt(now) {
			e.logger.Debug("Skipping expired message",
				"queue", queueName,
				"message_id", msg.ID.String(),
			)
			continue
		}

		msg.Status = domain.StatusDelivered
		msg.DeliveryCount++
		state.inflight[msg.ID] = msg

		e.logger.Debug("Message popped",
			"queue", queueName,
			"message_id", msg.ID.String(),
			"delivery_count", msg.DeliveryCount,
		)
		return msg.Clone(), nil
	}

	return nil, nil
}

// PopMessages pops up to max messages, stopping when the queue runs dry
func (e *Engine) PopMessages(ctx context.Context, queueName string, max int) ([]*domain.Message, error) {
	messages := make([]*domain.Message, 0, max)

	for i := 0; i < max; i++ {
		msg, err := e.PopMessage(ctx, queueName)
		if err != nil {
			return nil, err
		}
		if msg == nil {
			break
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// PeekMessage returns a copy of the head pending message without mutating state
func (e *Engine) PeekMessage(ctx context.Context, queueName string) (*domain.Message, error) {
	state, err := e.getState(queueName)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if len(state.pending) == 0 {
		return nil, nil
	}
	return state.pending[0].Clone(), nil
}

// AckMessage discards an in-flight message for good
func (e *Engine) AckMessage(ctx context.Context, queueName string, id domain.MessageID) error {
	state, err := e.getState(queueName)
	if err != nil {
		return err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if _, exists := state.inflight[id]; !exists {
		return domain.ErrMessageNotFound
	}

	delete(state.inflight, id)
	e.logger.Debug("Message acknowledged", "queue", queueName, "message_id", id.String())
	return nil
}

// NackMessage returns an in-flight message for redelivery, or marks it
// failed once its delivery count has reached the queue's retry limit.
//
// Requeued messages go to the head of the pending list so they retry
// ahead of newer messages; under a sustained nack storm this can starve
// the rest of the queue.
func (e *Engine) NackMessage(ctx context.Context, queueName string, id domain.MessageID) error {
	state, err := e.getState(queueName)
	if err != nil {
		return err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	msg, exists := state.inflight[id]
	if !exists {
		return domain.ErrMessageNotFound
	}
	delete(state.inflight, id)

	if msg.DeliveryCount >= state.queue.Config.MaxRetries {
		msg.Status = domain.StatusFailed
		e.logger.Debug("Message exceeded max retries, marking as failed",
			"queue", queueName,
			"message_id", id.String(),
			"delivery_count", msg.DeliveryCount,
		)
		return nil
	}

	msg.Status = domain.StatusPending
	state.pending = append([]*domain.Message{msg}, state.pending...)

	e.logger.Debug("Message returned to queue",
		"queue", queueName,
		"message_id", id.String(),
		"delivery_count", msg.DeliveryCount,
	)
	return nil
}

// GetMessage returns a copy of a tracked message, in-flight first then pending
func (e *Engine) GetMessage(ctx context.Context, queueName string, id domain.MessageID) (*domain.Message, error) {
	state, err := e.getState(queueName)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	if msg, exists := state.inflight[id]; exists {
		return msg.Clone(), nil
	}
	for _, msg := range state.pending {
		if msg.ID == id {
			return msg.Clone(), nil
		}
	}
	return nil, nil
}

// CleanupExpired sweeps expired pending messages from every queue.
// One timestamp is captured for the whole sweep so all queues agree on
// "now". In-flight messages are left alone.
func (e *Engine) CleanupExpired(ctx context.Context) (uint64, error) {
	e.mu.RLock()
	states := make([]*queueState, 0, len(e.queues))
	for _, state := range e.queues {
		states = append(states, state)
	}
	e.mu.RUnlock()

	now := time.Now()
	var total uint64

	for _, state := range states {
		state.mu.Lock()
		kept := state.pending[:0]
		for _, msg := range state.pending {
			if msg.ExpiredAt(now) {
				total++
				continue
			}
			kept = append(kept, msg)
		}
		// zero trailing slots so dropped messages can be collected
		for i := len(kept); i < len(state.pending); i++ {
			state.pending[i] = nil
		}
		state.pending = kept
		state.mu.Unlock()
	}

	if total > 0 {
		e.logger.Debug("Cleaned up expired messages", "count", total)
	}
	return total, nil
}
