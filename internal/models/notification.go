// internal/models/notification.go
package models

// ContactSubmission is an inquiry posted through the contact form.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}

// Notification is what a sender delivers to the clinic.
type Notification struct {
	To      string `json:"to"`
	ReplyTo string `json:"replyTo,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
