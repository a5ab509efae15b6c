package mailfleet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/mailfleet/mailfleet/pkg/logger"
	"github.com/mailfleet/mailfleet/pkg/mailer"
	"github.com/mailfleet/mailfleet/pkg/mailer/smtp"
	"github.com/mailfleet/mailfleet/pkg/markup"
)

// DefaultSendInterval is the minimum spacing between two sends. It is the
// entire backpressure mechanism: submission endpoints throttle senders that
// burst, so the dispatcher never does.
const DefaultSendInterval = 500 * time.Millisecond

// DialFunc opens the mail session for one campaign run.
type DialFunc func(ctx context.Context, cfg Config) (mailer.SendCloser, error)

// ProgressFunc is invoked after every send attempt with the cumulative
// count, the total, and the outcome just recorded. done/total is the
// fractional progress of the run.
type ProgressFunc func(done, total int, last Outcome)

// Dispatcher runs campaigns: one authenticated session per run, recipients
// processed strictly in input order, one outcome recorded per attempt.
// A Dispatcher is stateless across runs and safe to reuse.
type Dispatcher struct {
	dial       DialFunc
	limiter    *rate.Limiter
	log        *slog.Logger
	progress   ProgressFunc
	bodyFilter func(string) string
}

// New creates a Dispatcher. By default it dials a TLS SMTP session from the
// campaign config, paces sends at DefaultSendInterval, and logs nowhere.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		dial:    smtpDial,
		limiter: rate.NewLimiter(rate.Every(DefaultSendInterval), 1),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func smtpDial(_ context.Context, cfg Config) (mailer.SendCloser, error) {
	return smtp.Dial(smtp.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SenderAddress,
		Password: cfg.Password,
		StartTLS: cfg.StartTLS,
	})
}

// Run dispatches one campaign and returns the ordered outcome log.
//
// Failure semantics:
//   - invalid config or empty recipient list: error before any network
//     activity, nil Results;
//   - session open failure: one synthetic failed outcome, wrapped
//     ErrConnectionFailed, no recipient processed;
//   - per-recipient send failure: recorded as a failed outcome, the run
//     continues — one bad recipient never blocks the rest;
//   - context cancellation: honored between recipients only, after the
//     in-flight outcome is recorded, so the log has no gaps.
//
// The session is released on every exit path past a successful dial.
func (d *Dispatcher) Run(ctx context.Context, cfg Config, recipients []Recipient) (Results, error) {
	if len(recipients) == 0 {
		return nil, fmt.Errorf("%w: recipient list is empty", ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ctx = logger.WithRunID(ctx, uuid.NewString())

	d.log.InfoContext(ctx, "opening mail session",
		slog.String("host", cfg.SMTPHost),
		slog.Int("port", cfg.SMTPPort),
		slog.String("sender", cfg.SenderAddress))

	sess, err := d.dial(ctx, cfg)
	if err != nil {
		d.log.ErrorContext(ctx, "mail session failed", slog.Any("error", err))
		synthetic := Results{{
			Label:   "N/A",
			Address: "N/A",
			Status:  StatusFailed,
			Detail:  fmt.Sprintf("SMTP Error: %v", err),
		}}
		return synthetic, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	defer func() { _ = sess.Close() }()

	total := len(recipients)
	results := make(Results, 0, total)

	d.log.InfoContext(ctx, "dispatch started", slog.Int("recipients", total))

	for i, rcpt := range recipients {
		// The first Wait consumes the limiter's initial token and returns
		// immediately; every later one enforces the minimum spacing.
		if err := d.limiter.Wait(ctx); err != nil {
			d.log.WarnContext(ctx, "dispatch stopped",
				slog.Int("attempted", i),
				slog.Int("total", total),
				slog.Any("error", err))
			return results, err
		}

		rendered := markup.Render(cfg.Template, rcpt.DisplayName)
		if d.bodyFilter != nil {
			rendered.HTML = d.bodyFilter(rendered.HTML)
		}
		email := &mailer.Email{
			From:    cfg.SenderAddress,
			To:      []string{rcpt.Address},
			CC:      cfg.CC,
			BCC:     cfg.BCC,
			Subject: cfg.Subject,
			HTML:    rendered.HTML,
			Text:    rendered.Text,
		}

		outcome := Outcome{Label: rcpt.Label(), Address: rcpt.Address}
		if err := sess.Send(ctx, email); err != nil {
			outcome.Status = StatusFailed
			outcome.Detail = err.Error()
			d.log.WarnContext(ctx, "send failed",
				slog.String("recipient", rcpt.Address),
				slog.Any("error", err))
		} else {
			outcome.Status = StatusSuccess
			outcome.Detail = "Email sent successfully"
			d.log.InfoContext(ctx, "send succeeded", slog.String("recipient", rcpt.Address))
		}
		results = append(results, outcome)

		if d.progress != nil {
			d.progress(i+1, total, outcome)
		}
	}

	d.log.InfoContext(ctx, "dispatch completed",
		slog.Int("succeeded", results.Succeeded()),
		slog.Int("failed", results.Failed()))

	return results, nil
}
