// Package mailfleet dispatches personalized bulk email campaigns.
//
// A campaign is a roster of recipients, a shared template, and one
// authenticated SMTP session. The dispatcher renders the template per
// recipient, submits each message over the shared session, and records one
// outcome per recipient in input order. A failure sending to one recipient
// never aborts the rest of the run; only configuration errors and the
// initial connection failure are fatal.
//
// Basic usage:
//
//	d := mailfleet.New(
//		mailfleet.WithLogger(log),
//		mailfleet.WithProgress(func(done, total int, last mailfleet.Outcome) {
//			fmt.Printf("%d/%d %s: %s\n", done, total, last.Label, last.Status)
//		}),
//	)
//
//	results, err := d.Run(ctx, mailfleet.Config{
//		SenderAddress: "outreach@example.com",
//		Password:      os.Getenv("SMTP_PASSWORD"),
//		SMTPHost:      "smtp.example.com",
//		SMTPPort:      mailfleet.DefaultSMTPPort,
//		Subject:       "Store opening invitation",
//		Template:      tmpl,
//	}, recipients)
//
// Run returns the ordered Results log even on a connection failure (a
// single synthetic failed entry), so reporting always has something to
// show. Sends are paced by a token bucket (one send per 500ms by default)
// to stay under submission endpoint throttling.
//
// Supporting packages: pkg/emailaddr validates addresses and parses CC/BCC
// free text, pkg/markup renders the template dialect to HTML, pkg/mailer
// and pkg/mailer/smtp carry the messages, pkg/roster loads recipient tables
// from XLSX or CSV files.
package mailfleet
