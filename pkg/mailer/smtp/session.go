// Package smtp implements mailer.SendCloser over an authenticated SMTP
// submission connection. One Session holds one encrypted, authenticated
// connection for the duration of a campaign; each Send submits exactly one
// message and a failed Send leaves the session usable for the next one.
package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	netsmtp "net/smtp"
	"sync"

	"github.com/mailfleet/mailfleet/pkg/mailer"
)

// Session is an open, authenticated connection to a submission endpoint.
type Session struct {
	client *netsmtp.Client

	mu     sync.Mutex
	closed bool
}

var _ mailer.SendCloser = (*Session)(nil)

// Dial establishes the encrypted connection and authenticates. By default
// it speaks implicit TLS (port 465 style); with cfg.StartTLS it dials in
// plaintext and upgrades before authenticating. Any failure here — endpoint
// unreachable, TLS handshake, rejected credentials — is returned before a
// single message has been attempted.
func Dial(cfg Config) (*Session, error) {
	tlsCfg := &tls.Config{ServerName: cfg.Host}

	var client *netsmtp.Client
	if cfg.StartTLS {
		c, err := netsmtp.Dial(cfg.Addr())
		if err != nil {
			return nil, fmt.Errorf("smtp: dial %s: %w", cfg.Addr(), err)
		}
		if err := c.StartTLS(tlsCfg); err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("smtp: starttls with %s: %w", cfg.Host, err)
		}
		client = c
	} else {
		conn, err := tls.Dial("tcp", cfg.Addr(), tlsCfg)
		if err != nil {
			return nil, fmt.Errorf("smtp: dial %s: %w", cfg.Addr(), err)
		}
		c, err := netsmtp.NewClient(conn, cfg.Host)
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("smtp: handshake with %s: %w", cfg.Host, err)
		}
		client = c
	}

	auth := netsmtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	if err := client.Auth(auth); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("smtp: auth as %s: %w", cfg.Username, err)
	}

	return &Session{client: client}, nil
}

// Send submits one message. The envelope recipient list is to + cc + bcc;
// bcc addresses never appear in the message headers. An error is scoped to
// this message only: the transaction is reset and the session stays open.
func (s *Session) Send(ctx context.Context, email *mailer.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(email.To) == 0 {
		return mailer.ErrNoRecipient
	}
	if email.Subject == "" {
		return mailer.ErrNoSubject
	}
	if email.HTML == "" {
		return mailer.ErrNoContent
	}

	if err := s.client.Mail(email.From); err != nil {
		return s.reset(fmt.Errorf("%w: sender %s rejected: %v", mailer.ErrSendFailed, email.From, err))
	}
	for _, rcpt := range email.EnvelopeRecipients() {
		if err := s.client.Rcpt(rcpt); err != nil {
			return s.reset(fmt.Errorf("%w: recipient %s rejected: %v", mailer.ErrSendFailed, rcpt, err))
		}
	}

	w, err := s.client.Data()
	if err != nil {
		return s.reset(fmt.Errorf("%w: data command: %v", mailer.ErrSendFailed, err))
	}
	if _, err := w.Write(BuildMessage(email)); err != nil {
		_ = w.Close()
		return s.reset(fmt.Errorf("%w: writing message: %v", mailer.ErrSendFailed, err))
	}
	if err := w.Close(); err != nil {
		return s.reset(fmt.Errorf("%w: finishing message: %v", mailer.ErrSendFailed, err))
	}

	return nil
}

// reset aborts the current mail transaction so the next Send starts clean.
func (s *Session) reset(cause error) error {
	_ = s.client.Reset()
	return cause
}

// Close terminates the connection gracefully. Safe to call multiple times
// and on a nil session.
func (s *Session) Close() error {
	if s == nil || s.client == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.client.Quit(); err != nil {
		return s.client.Close()
	}
	return nil
}
