package services

import (
	"log"
	"sync"
	"time"
)

// Enrollment event types
const (
	EventEnrollmentInitiated = "ENROLLMENT_INITIATED"
	EventEnrollmentPaid      = "ENROLLMENT_PAID"
	EventEnrollmentFailed    = "ENROLLMENT_FAILED"
	EventEnrollmentGranted   = "ENROLLMENT_GRANTED"
	EventEnrollmentRevoked   = "ENROLLMENT_REVOKED"
)

// EnrollmentEvent is published on every state transition. Screens that used to
// rely on shared cache invalidation subscribe to these instead.
type EnrollmentEvent struct {
	Type         string    `json:"type"`
	EnrollmentID uint      `json:"enrollment_id"`
	UserID       uint      `json:"user_id"`
	BatchID      uint      `json:"batch_id"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

type enrollmentEventHub struct {
	mu   sync.RWMutex
	subs []chan EnrollmentEvent
}

var eventHub = &enrollmentEventHub{}

// SubscribeEnrollmentEvents returns a channel receiving every enrollment
// transition. Slow subscribers drop events rather than block the payment path.
func SubscribeEnrollmentEvents() <-chan EnrollmentEvent {
	ch := make(chan EnrollmentEvent, 64)

	eventHub.mu.Lock()
	eventHub.subs = append(eventHub.subs, ch)
	eventHub.mu.Unlock()

	return ch
}

func publishEnrollmentEvent(eventType string, enrollmentID, userID, batchID uint, status string) {
	event := EnrollmentEvent{
		Type:         eventType,
		EnrollmentID: enrollmentID,
		UserID:       userID,
		BatchID:      batchID,
		Status:       status,
		Timestamp:    time.Now(),
	}

	eventHub.mu.RLock()
	defer eventHub.mu.RUnlock()

	for _, ch := range eventHub.subs {
		select {
		case ch <- event:
		default:
			// subscriber backlog full, drop
		}
	}
}

// StartEnrollmentEventLogger subscribes an audit logger to the event hub.
// Called once from main.
func StartEnrollmentEventLogger() {
	events := SubscribeEnrollmentEvents()
	go func() {
		for event := range events {
			log.Printf("[ENROLLMENT-EVENT] %s enrollment=%d user=%d batch=%d status=%s",
				event.Type, event.EnrollmentID, event.UserID, event.BatchID, event.Status)
		}
	}()
}
