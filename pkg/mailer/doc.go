// Package mailer defines the transport-agnostic email types used by the
// campaign dispatcher.
//
// The package separates message preparation from delivery: an Email is a
// fully-prepared message, and a Sender (or SendCloser, for connection-bound
// transports) delivers it. The one transport shipped with this module is
// the authenticated SMTP session in the smtp subpackage.
//
// # Usage
//
//	sess, err := smtp.Dial(smtp.Config{
//		Host:     "smtp.example.com",
//		Port:     465,
//		Username: "outreach@example.com",
//		Password: os.Getenv("SMTP_PASSWORD"),
//	})
//	if err != nil {
//		return err
//	}
//	defer sess.Close()
//
//	err = sess.Send(ctx, &mailer.Email{
//		From:    "outreach@example.com",
//		To:      []string{"user@example.com"},
//		Subject: "Hello",
//		HTML:    "<html><body>Hi<br></body></html>",
//	})
//
// # Headers vs envelope
//
// EnvelopeRecipients returns to + cc + bcc, the addresses the transport
// actually delivers to. Only To and CC ever appear in headers; BCC stays
// invisible.
//
// # Custom transports
//
// Implement Sender to plug in another delivery mechanism:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) error {
//		// deliver using your transport
//		return nil
//	}
package mailer
