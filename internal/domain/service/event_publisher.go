package service

import (
	"context"
	"time"
)

// SessionEventType names a transition of the authentication lifecycle.
type SessionEventType string

const (
	SessionEventInitialized SessionEventType = "initialized"
	SessionEventLogin       SessionEventType = "login"
	SessionEventLoginDenied SessionEventType = "login_denied"
	SessionEventLogout      SessionEventType = "logout"
	SessionEventCleared     SessionEventType = "cleared"
)

// SessionEvent is an audit record of one lifecycle transition
type SessionEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	EventID    string           `json:"event_id" validate:"required,uuid"`
	Type       SessionEventType `json:"type" validate:"required,oneof=initialized login login_denied logout cleared"`
	Portal     string           `json:"portal" validate:"required,oneof=PUBLIC SELLER ADMIN"`
	UserID     string           `json:"user_id,omitempty"`
	Role       string           `json:"role,omitempty"`
	OccurredAt time.Time        `json:"occurred_at" validate:"required"`
}

// SessionEventPublisher defines the interface for publishing session events to a message queue
type SessionEventPublisher interface {
	// PublishSessionEvent publishes one lifecycle transition
	PublishSessionEvent(ctx context.Context, event *SessionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
