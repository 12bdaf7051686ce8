package dto

import (
	"github.com/sutharpankaj1/flowq/internal/domain"
	"github.com/sutharpankaj1/flowq/pkg/utils"
)

// ToQueueResponse converts a domain queue to its API representation
func ToQueueResponse(q *domain.Queue) QueueResponse {
	return QueueResponse{
		ID:        q.ID.String(),
		Name:      q.Name,
		Config:    q.Config,
		CreatedAt: utils.FormatTimestamp(q.CreatedAt),
		UpdatedAt: utils.FormatTimestamp(q.UpdatedAt),
	}
}

// ToQueueListResponse converts a list of domain queues
func ToQueueListResponse(queues []*domain.Queue) QueueListResponse {
	out := make([]QueueResponse, 0, len(queues))
	for _, q := range queues {
		out = append(out, ToQueueResponse(q))
	}
	return QueueListResponse{
		Queues: out,
		Total:  len(out),
	}
}

// ToStatsResponse converts domain queue stats
func ToStatsResponse(s *domain.QueueStats) StatsResponse {
	return StatsResponse{
		MessageCount:  s.MessageCount,
		PendingCount:  s.PendingCount,
		InFlightCount: s.InFlightCount,
		SizeBytes:     s.SizeBytes,
		ConsumerCount: s.ConsumerCount,
		PublishRate:   s.PublishRate,
		ConsumeRate:   s.ConsumeRate,
	}
}

// ToMessageResponse converts a domain message to its API representation
func ToMessageResponse(m *domain.Message) MessageResponse {
	resp := MessageResponse{
		ID:            m.ID.String(),
		Body:          m.BodyString(),
		ContentType:   m.ContentType,
		Priority:      m.Priority,
		Status:        string(m.Status),
		DeliveryCount: m.DeliveryCount,
		Attributes:    m.Attributes,
		CreatedAt:     utils.FormatTimestamp(m.CreatedAt),
	}
	if m.ExpiresAt != nil {
		resp.ExpiresAt = utils.FormatTimestamp(*m.ExpiresAt)
	}
	return resp
}

// ToMessageListResponse converts a batch of domain messages
func ToMessageListResponse(messages []*domain.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, ToMessageResponse(m))
	}
	return out
}

// ToDomainMessage builds a domain message from a publish request
func ToDomainMessage(req *PublishRequest) *domain.Message {
	msg := domain.NewMessage([]byte(req.Body))

	if req.ContentType != "" {
		msg.WithContentType(req.ContentType)
	}
	if req.Priority != nil {
		msg.WithPriority(*req.Priority)
	}
	for k, v := range req.Attributes {
		msg.WithAttribute(k, v)
	}
	if req.TTLSecs > 0 {
		msg.WithExpiry(utils.NowUTC().Add(utils.SecondsToDuration(req.TTLSecs)))
	}
	if req.DedupID != "" {
		msg.WithDedupID(req.DedupID)
	}
	return msg
}
