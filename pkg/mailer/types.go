package mailer

import "fmt"

// FormatAddress formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func FormatAddress(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared message ready for submission.
//
// CC addresses appear in the Cc header and receive the message. BCC
// addresses receive the message through the envelope recipient list but
// never appear in any header; transports must keep it that way.
type Email struct {
	Headers map[string]string // Custom headers
	Subject string            // Subject line (transports encode for non-ASCII)
	HTML    string            // HTML body content
	Text    string            // Plain text alternative
	From    string            // Sender address
	To      []string          // Recipients (at least one required)
	CC      []string          // Carbon copy recipients
	BCC     []string          // Blind carbon copy recipients
}

// EnvelopeRecipients returns the full delivery list: to, cc, and bcc in
// that order. This is what the transport actually delivers to, independent
// of the visible headers.
func (e *Email) EnvelopeRecipients() []string {
	out := make([]string, 0, len(e.To)+len(e.CC)+len(e.BCC))
	out = append(out, e.To...)
	out = append(out, e.CC...)
	out = append(out, e.BCC...)
	return out
}
