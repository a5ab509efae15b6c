package mailfleet

import (
	"fmt"
	"strings"

	"github.com/mailfleet/mailfleet/pkg/emailaddr"
)

// DefaultSMTPPort is the implicit-TLS submission port.
const DefaultSMTPPort = 465

// Config describes one campaign: the submission endpoint, the sender
// identity, and the message shared by every recipient. Read-only for the
// duration of a run.
type Config struct {
	SenderAddress string   // From address, also the AUTH username
	Password      string   // submission credential
	SMTPHost      string   // submission server hostname
	SMTPPort      int      // [1,65535], DefaultSMTPPort when built from file config
	StartTLS      bool     // upgrade a plaintext dial instead of implicit TLS
	Subject       string   // shared subject line
	CC            []string // carbon copy, each entry a valid address
	BCC           []string // blind carbon copy, each entry a valid address
	Template      string   // message template with {company_name} placeholders
}

// Validate checks the invariants the dispatcher relies on. All violations
// are collected into one ErrInvalidConfig so the operator can fix the whole
// configuration in a single pass.
func (c Config) Validate() error {
	var problems []string

	if !emailaddr.IsValid(c.SenderAddress) {
		problems = append(problems, fmt.Sprintf("sender address %q is not a valid email address", c.SenderAddress))
	}
	if c.Password == "" {
		problems = append(problems, "credential is empty")
	}
	if c.SMTPHost == "" {
		problems = append(problems, "smtp host is empty")
	}
	if c.SMTPPort < 1 || c.SMTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("smtp port %d is out of range [1,65535]", c.SMTPPort))
	}
	if strings.TrimSpace(c.Subject) == "" {
		problems = append(problems, "subject is empty")
	}
	if strings.TrimSpace(c.Template) == "" {
		problems = append(problems, "template is empty")
	}
	for _, addr := range c.CC {
		if !emailaddr.IsValid(addr) {
			problems = append(problems, fmt.Sprintf("cc address %q is not a valid email address", addr))
		}
	}
	for _, addr := range c.BCC {
		if !emailaddr.IsValid(addr) {
			problems = append(problems, fmt.Sprintf("bcc address %q is not a valid email address", addr))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
