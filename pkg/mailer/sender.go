package mailer

import "context"

// Sender defines the minimal interface that mail transports must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers one email message.
	// The Email must have From, To, Subject, and HTML already set.
	// Returns an error if delivery of this one message fails.
	Send(ctx context.Context, email *Email) error
}

// SendCloser is a Sender bound to a connection that must be released when
// the batch is done. Close must be safe to call more than once and on a
// transport that never connected.
type SendCloser interface {
	Sender
	Close() error
}
