package smtp

import (
	"encoding/base64"
	"mime"
	"strings"

	"github.com/mailfleet/mailfleet/pkg/mailer"
)

// base64LineLength is the maximum encoded line length allowed by RFC 2045.
const base64LineLength = 76

// BuildMessage serializes an email into wire format: RFC 5322 headers, a
// Q-encoded subject so non-ASCII text round-trips, and a single-part HTML
// body in base64. Bcc recipients are deliberately absent from the headers;
// they travel only in the envelope.
func BuildMessage(email *mailer.Email) []byte {
	var b strings.Builder

	header := func(name, value string) {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\r\n")
	}

	header("From", email.From)
	header("To", strings.Join(email.To, ", "))
	if len(email.CC) > 0 {
		header("Cc", strings.Join(email.CC, ", "))
	}
	header("Subject", mime.QEncoding.Encode("utf-8", email.Subject))
	header("MIME-Version", "1.0")
	header("Content-Type", `text/html; charset="utf-8"`)
	header("Content-Transfer-Encoding", "base64")
	for name, value := range email.Headers {
		header(name, value)
	}

	b.WriteString("\r\n")
	b.WriteString(encodeBody(email.HTML))

	return []byte(b.String())
}

func encodeBody(body string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(body))

	var b strings.Builder
	for len(encoded) > base64LineLength {
		b.WriteString(encoded[:base64LineLength])
		b.WriteString("\r\n")
		encoded = encoded[base64LineLength:]
	}
	b.WriteString(encoded)
	b.WriteString("\r\n")
	return b.String()
}
