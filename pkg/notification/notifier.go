package notification

// NotificationData carries a single outbound notification
type NotificationData struct {
	To      string            // Recipient identifier (e.g., email address)
	Subject string            // Optional subject line
	Body    string            // The content to send
	Data    map[string]string // Additional metadata
}

// Notifier is the narrow delivery contract this service consumes; the
// transport behind it is a collaborator concern.
type Notifier interface {
	Send(notification NotificationData) error
}
