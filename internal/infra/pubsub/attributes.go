package pubsub

import "github.com/ACIL0001/Mazad-click-backoffice-sub000/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.SessionEvent) map[string]string {
	attributes := map[string]string{
		"event_id": event.EventID,
		"type":     string(event.Type),
		"portal":   event.Portal,
	}
	if event.UserID != "" {
		attributes["user_id"] = event.UserID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
