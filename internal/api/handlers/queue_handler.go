package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sutharpankaj1/flowq/internal/api/dto"
	"github.com/sutharpankaj1/flowq/internal/broker"
	"github.com/sutharpankaj1/flowq/internal/domain"
)

// QueueHandler handles queue management API requests
type QueueHandler struct {
	broker *broker.Broker
}

// NewQueueHandler creates a new queue handler
func NewQueueHandler(b *broker.Broker) *QueueHandler {
	return &QueueHandler{
		broker: b,
	}
}

// ListQueues godoc
// @Summary List all queues
// @Description Get all queues known to the broker
// @Tags queues
// @Accept json
// @Produce json
// @Success 200 {object} dto.QueueListResponse
// @Router /api/v1/queues [get]
func (h *QueueHandler) ListQueues(c *gin.Context) {
	queues, err := h.broker.ListQueues(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQueueListResponse(queues))
}

// CreateQueue godoc
// @Summary Create a queue
// @Description Create a new queue, optionally with a custom configuration
// @Tags queues
// @Accept json
// @Produce json
// @Param request body dto.CreateQueueRequest true "Queue to create"
// @Success 201 {object} dto.QueueResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/v1/queues [post]
func (h *QueueHandler) CreateQueue(c *gin.Context) {
	var req dto.CreateQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	var queue *domain.Queue
	var err error
	if req.Config != nil {
		queue, err = h.broker.CreateQueueWithConfig(c.Request.Context(), req.Name, *req.Config)
	} else {
		queue, err = h.broker.CreateQueue(c.Request.Context(), req.Name)
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQueueResponse(queue))
}

// GetQueue godoc
// @Summary Get a queue
// @Description Get a queue's metadata and configuration by name
// @Tags queues
// @Accept json
// @Produce json
// @Param name path string true "Queue name" example("orders")
// @Success 200 {object} dto.QueueResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/queues/{name} [get]
func (h *QueueHandler) GetQueue(c *gin.Context) {
	name := c.Param("name")

	queue, err := h.broker.GetQueue(c.Request.Context(), name)
	if err != nil {
		writeError(c, err)
		return
	}
	if queue == nil {
		writeError(c, domain.ErrQueueNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.ToQueueResponse(queue))
}

// DeleteQueue godoc
// @Summary Delete a queue
// @Description Delete a queue and drop all its messages
// @Tags queues
// @Accept json
// @Produce json
// @Param name path string true "Queue name"
// @Success 204 "Queue deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/queues/{name} [delete]
func (h *QueueHandler) DeleteQueue(c *gin.Context) {
	name := c.Param("name")

	if err := h.broker.DeleteQueue(c.Request.Context(), name); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetQueueStats godoc
// @Summary Get queue statistics
// @Description Get a point-in-time snapshot of a queue's counters
// @Tags queues
// @Accept json
// @Produce json
// @Param name path string true "Queue name"
// @Success 200 {object} dto.StatsResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/queues/{name}/stats [get]
func (h *QueueHandler) GetQueueStats(c *gin.Context) {
	name := c.Param("name")

	stats, err := h.broker.GetQueueStats(c.Request.Context(), name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// PurgeQueue godoc
// @Summary Purge a queue
// @Description Remove all pending and in-flight messages from a queue
// @Tags queues
// @Accept json
// @Produce json
// @Param name path string true "Queue name"
// @Success 200 {object} dto.PurgeResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/queues/{name}/purge [post]
func (h *QueueHandler) PurgeQueue(c *gin.Context) {
	name := c.Param("name")

	purged, err := h.broker.PurgeQueue(c.Request.Context(), name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PurgeResponse{Purged: purged})
}
