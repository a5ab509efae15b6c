// Package config loads the campaign file consumed by the mailfleet CLI.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mailfleet/mailfleet"
	"github.com/mailfleet/mailfleet/pkg/emailaddr"
)

// PasswordEnv overrides the credential from the campaign file, so the
// password never has to be written to disk.
const PasswordEnv = "MAILFLEET_SMTP_PASSWORD"

// Campaign is the on-disk campaign description.
type Campaign struct {
	Sender       string `yaml:"sender"`
	Password     string `yaml:"password,omitempty"` // prefer PasswordEnv
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	StartTLS     bool   `yaml:"starttls"`
	Subject      string `yaml:"subject"`
	CC           string `yaml:"cc"`  // comma-separated free text
	BCC          string `yaml:"bcc"` // comma-separated free text
	Template     string `yaml:"template"`      // inline template text
	TemplateFile string `yaml:"template_file"` // or a path to it; inline wins
	SendInterval string `yaml:"send_interval"` // e.g. "500ms", "2s"
}

// Load reads and decodes a campaign file and applies defaults and the
// environment credential override.
func Load(path string) (*Campaign, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading campaign file %s: %w", path, err)
	}

	var c Campaign
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parsing campaign file %s: %w", path, err)
	}

	if c.SMTPPort == 0 {
		c.SMTPPort = mailfleet.DefaultSMTPPort
	}
	if env := os.Getenv(PasswordEnv); env != "" {
		c.Password = env
	}

	return &c, nil
}

// ResolveTemplate returns the template text: inline template first,
// template_file second.
func (c *Campaign) ResolveTemplate() (string, error) {
	if c.Template != "" {
		return c.Template, nil
	}
	if c.TemplateFile == "" {
		return "", fmt.Errorf("campaign has neither template nor template_file")
	}
	raw, err := os.ReadFile(c.TemplateFile)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", c.TemplateFile, err)
	}
	return string(raw), nil
}

// Interval parses send_interval, defaulting to the dispatcher's pacing.
func (c *Campaign) Interval() (time.Duration, error) {
	if c.SendInterval == "" {
		return mailfleet.DefaultSendInterval, nil
	}
	d, err := time.ParseDuration(c.SendInterval)
	if err != nil {
		return 0, fmt.Errorf("parsing send_interval %q: %w", c.SendInterval, err)
	}
	return d, nil
}

// CampaignConfig builds the dispatcher configuration. The CC and BCC free
// text is parsed and partitioned; invalid tokens are returned so the CLI
// can surface them to the operator — they are excluded from the send but
// never fatal.
func (c *Campaign) CampaignConfig(template string) (mailfleet.Config, []string) {
	cc, badCC := emailaddr.ParseList(c.CC)
	bcc, badBCC := emailaddr.ParseList(c.BCC)

	return mailfleet.Config{
		SenderAddress: c.Sender,
		Password:      c.Password,
		SMTPHost:      c.SMTPHost,
		SMTPPort:      c.SMTPPort,
		StartTLS:      c.StartTLS,
		Subject:       c.Subject,
		CC:            cc,
		BCC:           bcc,
		Template:      template,
	}, append(badCC, badBCC...)
}
