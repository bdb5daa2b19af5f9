package service

import "context"

// Email is one outbound transactional message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Mailer defines the interface for sending transactional email.
type Mailer interface {
	// Send delivers a single email. Implementations should not retry;
	// callers decide whether delivery failure is fatal.
	Send(ctx context.Context, email Email) error
}
