package mailfleet

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mailfleet/mailfleet/pkg/mailer"
)

// MockSession is a mock implementation of the mailer.SendCloser interface.
type MockSession struct {
	mock.Mock
}

func (m *MockSession) Send(ctx context.Context, email *mailer.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockSession) Close() error {
	args := m.Called()
	return args.Error(0)
}

func dialTo(sess mailer.SendCloser) DialFunc {
	return func(context.Context, Config) (mailer.SendCloser, error) {
		return sess, nil
	}
}

func validConfig() Config {
	return Config{
		SenderAddress: "sender@example.com",
		Password:      "app-password",
		SMTPHost:      "smtp.example.com",
		SMTPPort:      DefaultSMTPPort,
		Subject:       "Store opening invitation",
		Template:      "Dear {company_name},\nhello.",
	}
}

func threeRecipients() []Recipient {
	return []Recipient{
		{DisplayName: "Acme", Address: "a@x.com"},
		{DisplayName: "BadCo", Address: "b@y.org"},
		{DisplayName: "Globex", Address: "c@z.net"},
	}
}

func TestRun_AllSucceed(t *testing.T) {
	t.Parallel()

	sess := &MockSession{}
	sess.On("Send", mock.Anything, mock.Anything).Return(nil).Times(3)
	sess.On("Close").Return(nil).Once()

	d := New(WithDialFunc(dialTo(sess)), WithSendInterval(time.Millisecond))

	results, err := d.Run(context.Background(), validConfig(), threeRecipients())
	require.NoError(t, err)

	require.Len(t, results, 3)
	for _, o := range results {
		require.Equal(t, StatusSuccess, o.Status)
		require.Equal(t, "Email sent successfully", o.Detail)
	}
	sess.AssertExpectations(t)
}

func TestRun_OneFailureDoesNotAbortTheRest(t *testing.T) {
	t.Parallel()

	sess := &MockSession{}
	sess.On("Send", mock.Anything, mock.MatchedBy(func(e *mailer.Email) bool {
		return e.To[0] == "b@y.org"
	})).Return(errors.New("550 mailbox unavailable")).Once()
	sess.On("Send", mock.Anything, mock.Anything).Return(nil).Times(2)
	sess.On("Close").Return(nil).Once()

	d := New(WithDialFunc(dialTo(sess)), WithSendInterval(time.Millisecond))

	results, err := d.Run(context.Background(), validConfig(), threeRecipients())
	require.NoError(t, err)

	require.Len(t, results, 3)
	require.Equal(t, StatusSuccess, results[0].Status)
	require.Equal(t, StatusFailed, results[1].Status)
	require.Contains(t, results[1].Detail, "550 mailbox unavailable")
	require.Equal(t, StatusSuccess, results[2].Status)

	// Outcomes keep input order and identify the recipient.
	require.Equal(t, []string{"a@x.com", "b@y.org", "c@z.net"},
		[]string{results[0].Address, results[1].Address, results[2].Address})
	require.Equal(t, "BadCo", results[1].Label)

	sess.AssertExpectations(t)
	sess.AssertNumberOfCalls(t, "Close", 1)
}

func TestRun_ConnectionFailure(t *testing.T) {
	t.Parallel()

	sess := &MockSession{}
	dial := func(context.Context, Config) (mailer.SendCloser, error) {
		return nil, errors.New("tls: handshake failure")
	}

	d := New(WithDialFunc(dial), WithSendInterval(time.Millisecond))

	results, err := d.Run(context.Background(), validConfig(), threeRecipients())
	require.ErrorIs(t, err, ErrConnectionFailed)

	require.Len(t, results, 1)
	require.Equal(t, "N/A", results[0].Label)
	require.Equal(t, "N/A", results[0].Address)
	require.Equal(t, StatusFailed, results[0].Status)
	require.Contains(t, results[0].Detail, "SMTP Error")
	require.Contains(t, results[0].Detail, "handshake failure")

	sess.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestRun_EmptyRecipientsFailsFast(t *testing.T) {
	t.Parallel()

	dialed := false
	dial := func(context.Context, Config) (mailer.SendCloser, error) {
		dialed = true
		return nil, errors.New("should not happen")
	}

	d := New(WithDialFunc(dial))

	results, err := d.Run(context.Background(), validConfig(), nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Nil(t, results)
	require.False(t, dialed, "no connection may be attempted on config errors")
}

func TestRun_InvalidConfigFailsFast(t *testing.T) {
	t.Parallel()

	dialed := false
	dial := func(context.Context, Config) (mailer.SendCloser, error) {
		dialed = true
		return nil, errors.New("should not happen")
	}

	cfg := validConfig()
	cfg.SenderAddress = "not-an-address"

	d := New(WithDialFunc(dial))

	results, err := d.Run(context.Background(), cfg, threeRecipients())
	require.ErrorIs(t, err, ErrInvalidConfig)
	require.Nil(t, results)
	require.False(t, dialed)
}

func TestRun_RendersPerRecipient(t *testing.T) {
	t.Parallel()

	var sent []*mailer.Email
	sess := &MockSession{}
	sess.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = append(sent, args.Get(1).(*mailer.Email))
	}).Return(nil)
	sess.On("Close").Return(nil)

	cfg := validConfig()
	cfg.CC = []string{"cc@example.com"}
	cfg.BCC = []string{"bcc@example.com"}

	d := New(WithDialFunc(dialTo(sess)), WithSendInterval(time.Millisecond))

	_, err := d.Run(context.Background(), cfg, threeRecipients())
	require.NoError(t, err)

	require.Len(t, sent, 3)
	require.Contains(t, sent[0].HTML, "Dear Acme,")
	require.Contains(t, sent[2].HTML, "Dear Globex,")
	for _, e := range sent {
		require.Equal(t, "sender@example.com", e.From)
		require.Len(t, e.To, 1)
		require.Equal(t, []string{"cc@example.com"}, e.CC)
		require.Equal(t, []string{"bcc@example.com"}, e.BCC)
		require.Equal(t, cfg.Subject, e.Subject)
		require.NotEmpty(t, e.Text)
	}
}

func TestRun_ReportsProgressAfterEveryAttempt(t *testing.T) {
	t.Parallel()

	sess := &MockSession{}
	sess.On("Send", mock.Anything, mock.Anything).Return(nil)
	sess.On("Close").Return(nil)

	var done []int
	var totals []int
	d := New(
		WithDialFunc(dialTo(sess)),
		WithSendInterval(time.Millisecond),
		WithProgress(func(d, t int, _ Outcome) {
			done = append(done, d)
			totals = append(totals, t)
		}),
	)

	_, err := d.Run(context.Background(), validConfig(), threeRecipients())
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3}, done)
	require.Equal(t, []int{3, 3, 3}, totals)
}

func TestRun_CancellationKeepsRecordedOutcomes(t *testing.T) {
	t.Parallel()

	sess := &MockSession{}
	sess.On("Send", mock.Anything, mock.Anything).Return(nil)
	sess.On("Close").Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())

	d := New(
		WithDialFunc(dialTo(sess)),
		WithSendInterval(time.Millisecond),
		WithProgress(func(done, _ int, _ Outcome) {
			if done == 1 {
				cancel() // stop after the first recipient
			}
		}),
	)

	results, err := d.Run(ctx, validConfig(), threeRecipients())
	require.ErrorIs(t, err, context.Canceled)

	// The in-flight outcome was recorded before the stop was honored.
	require.Len(t, results, 1)
	require.Equal(t, StatusSuccess, results[0].Status)
	sess.AssertNumberOfCalls(t, "Send", 1)
	sess.AssertExpectations(t)
}

func TestRun_LabelFallsBackToAddress(t *testing.T) {
	t.Parallel()

	sess := &MockSession{}
	sess.On("Send", mock.Anything, mock.Anything).Return(nil)
	sess.On("Close").Return(nil)

	d := New(WithDialFunc(dialTo(sess)), WithSendInterval(time.Millisecond))

	results, err := d.Run(context.Background(), validConfig(), []Recipient{
		{Address: "anon@x.com"},
	})
	require.NoError(t, err)
	require.Equal(t, "anon@x.com", results[0].Label)
}

func TestRun_EnforcesMinimumSpacing(t *testing.T) {
	t.Parallel()

	sess := &MockSession{}
	sess.On("Send", mock.Anything, mock.Anything).Return(nil)
	sess.On("Close").Return(nil)

	interval := 50 * time.Millisecond
	d := New(WithDialFunc(dialTo(sess)), WithSendInterval(interval))

	start := time.Now()
	_, err := d.Run(context.Background(), validConfig(), threeRecipients())
	require.NoError(t, err)

	// Three sends mean at least two full gaps.
	require.GreaterOrEqual(t, time.Since(start), 2*interval)
}
