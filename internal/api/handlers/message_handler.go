package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sutharpankaj1/flowq/internal/api/dto"
	"github.com/sutharpankaj1/flowq/internal/broker"
	"github.com/sutharpankaj1/flowq/internal/domain"
)

// MessageHandler handles message operation API requests
type MessageHandler struct {
	broker *broker.Broker
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(b *broker.Broker) *MessageHandler {
	return &MessageHandler{
		broker: b,
	}
}

// PublishMessage godoc
// @Summary Publish a message
// @Description Publish a message to the tail of a queue
// @Tags messages
// @Accept json
// @Produce json
// @Param name path string true "Queue name"
// @Param request body dto.PublishRequest true "Message to publish"
// @Success 201 {object} dto.PublishResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/v1/queues/{name}/messages [post]
func (h *MessageHandler) PublishMessage(c *gin.Context) {
	name := c.Param("name")

	var req dto.PublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	msg := dto.ToDomainMessage(&req)
	msgID, err := h.broker.Publish(c.Request.Context(), name, msg)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PublishResponse{MessageID: msgID.String()})
}

// ReceiveMessages godoc
// @Summary Receive messages
// @Description Pop up to max messages from a queue; popped messages move in-flight until acked or nacked
// @Tags messages
// @Accept json
// @Produce json
// @Param name path string true "Queue name"
// @Param max query int false "Maximum messages to receive" default(1)
// @Success 200 {array} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/queues/{name}/messages [get]
func (h *MessageHandler) ReceiveMessages(c *gin.Context) {
	name := c.Param("name")

	max := 1
	if raw := c.Query("max"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeBadRequest(c, "max must be a positive integer")
			return
		}
		max = parsed
	}

	messages, err := h.broker.ReceiveBatch(c.Request.Context(), name, max)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageListResponse(messages))
}

// PeekMessage godoc
// @Summary Peek at the next message
// @Description Look at the head of the queue without delivering it
// @Tags messages
// @Accept json
// @Produce json
// @Param name path string true "Queue name"
// @Success 200 {object} dto.MessageResponse
// @Success 204 "Queue is empty"
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/queues/{name}/messages/peek [get]
func (h *MessageHandler) PeekMessage(c *gin.Context) {
	name := c.Param("name")

	msg, err := h.broker.Peek(c.Request.Context(), name)
	if err != nil {
		writeError(c, err)
		return
	}
	if msg == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponse(msg))
}

// GetMessage godoc
// @Summary Get a message by id
// @Description Fetch a tracked (pending or in-flight) message without changing its state
// @Tags messages
// @Accept json
// @Produce json
// @Param name path string true "Queue name"
// @Param id path string true "Message ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/queues/{name}/messages/{id} [get]
func (h *MessageHandler) GetMessage(c *gin.Context) {
	name := c.Param("name")

	id, err := domain.ParseMessageID(c.Param("id"))
	if err != nil {
		writeBadRequest(c, "invalid message id")
		return
	}

	msg, err := h.broker.GetMessage(c.Request.Context(), name, id)
	if err != nil {
		writeError(c, err)
		return
	}
	if msg == nil {
		writeError(c, domain.ErrMessageNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponse(msg))
}

// AckMessage godoc
// @Summary Acknowledge a message
// @Description Mark an in-flight message as processed and discard it
// @Tags messages
// @Accept json
// @Produce json
// @Param name path string true "Queue name"
// @Param request body dto.AckRequest true "Message to acknowledge"
// @Success 204 "Message acknowledged"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/queues/{name}/messages/ack [post]
func (h *MessageHandler) AckMessage(c *gin.Context) {
	name := c.Param("name")

	var req dto.AckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	id, err := domain.ParseMessageID(req.MessageID)
	if err != nil {
		writeBadRequest(c, "invalid message id")
		return
	}

	if err := h.broker.Ack(c.Request.Context(), name, id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// NackMessage godoc
// @Summary Negative-acknowledge a message
// @Description Return an in-flight message to the queue for retry, or mark it failed once its retry limit is reached
// @Tags messages
// @Accept json
// @Produce json
// @Param name path string true "Queue name"
// @Param request body dto.AckRequest true "Message to nack"
// @Success 204 "Message returned to queue or failed"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/queues/{name}/messages/nack [post]
func (h *MessageHandler) NackMessage(c *gin.Context) {
	name := c.Param("name")

	var req dto.AckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	id, err := domain.ParseMessageID(req.MessageID)
	if err != nil {
		writeBadRequest(c, "invalid message id")
		return
	}

	if err := h.broker.Nack(c.Request.Context(), name, id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
