package dto

import "time"

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"queue not found"`
	Code      string    `json:"code" example:"QUEUE_NOT_FOUND"`
	Timestamp time.Time `json:"timestamp" example:"2025-01-18T12:34:56Z"`
}
