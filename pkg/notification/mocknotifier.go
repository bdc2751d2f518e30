package notification

import (
	"sync"

	"github.com/google/uuid"
)

// SentNotification records one delivery through the mock
type SentNotification struct {
	ID   uuid.UUID
	Data NotificationData
}

// MockNotifier records notifications instead of delivering them
type MockNotifier struct {
	mu   sync.Mutex
	sent []SentNotification
}

func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Send(notification NotificationData) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sent = append(m.sent, SentNotification{
		ID:   uuid.New(),
		Data: notification,
	})
	return nil
}

// Sent returns a copy of everything recorded so far
func (m *MockNotifier) Sent() []SentNotification {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]SentNotification, len(m.sent))
	copy(out, m.sent)
	return out
}
