package models

// Contact message statuses.
const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"
)

// ContactMessage is a message submitted through the public contact form. It
// is stored first and relayed to staff best-effort afterwards.
type ContactMessage struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Subscriber is a newsletter subscription keyed by email; repeated
// subscriptions of the same email are idempotent.
type Subscriber struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	SubscribedAt string `json:"subscribedAt"`
	Active       bool   `json:"active"`
}
