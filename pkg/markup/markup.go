// Package markup renders a campaign template for one recipient.
//
// Templates are plain business letters with a tiny markup dialect on top:
// **bold**, __underline__, and "- " bullet lines. The dialect is a closed,
// non-recursive subset so that hand-authored letters convert predictably;
// anything outside it (including unclosed delimiters) passes through
// untouched. Template text is operator-authored and therefore trusted: no
// HTML escaping is applied here. Deployments that feed untrusted text into
// templates should pass the rendered body through pkg/sanitizer.
package markup

import (
	"regexp"
	"strings"
)

// CompanyPlaceholder is the token replaced with the recipient's display
// name during rendering.
const CompanyPlaceholder = "{company_name}"

var (
	boldPattern      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	underlinePattern = regexp.MustCompile(`__(.+?)__`)
)

// Result holds both renderings of one template: the HTML document sent as
// the message body and the plain-text form (substituted template, markup
// left as written) kept as the human-readable alternative.
type Result struct {
	HTML string
	Text string
}

// Render substitutes the company placeholder and converts the markup
// dialect to an HTML document. companyName may be empty (recipient rows
// without a display name); the placeholder then renders as nothing rather
// than a "None"-style artifact. Render is a pure function: identical inputs
// produce byte-identical output.
func Render(template, companyName string) Result {
	text := strings.ReplaceAll(template, CompanyPlaceholder, companyName)
	return Result{
		HTML: toHTML(text),
		Text: text,
	}
}

// toHTML applies the two inline passes (bold first, underline second,
// each lazy and independent) and then structures the text line by line:
// contiguous "- " lines form one flat <ul>, non-empty lines end with <br>,
// empty lines become a bare <br>.
func toHTML(text string) string {
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = underlinePattern.ReplaceAllString(text, "<u>$1</u>")

	var b strings.Builder
	b.WriteString("<html><body>\n")

	inList := false
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "- ") {
			if !inList {
				b.WriteString("<ul>\n")
				inList = true
			}
			b.WriteString("<li>")
			b.WriteString(trimmed[2:])
			b.WriteString("</li>\n")
			continue
		}

		// First non-bullet line closes the open list block.
		if inList {
			b.WriteString("</ul>\n")
			inList = false
		}

		if trimmed == "" {
			b.WriteString("<br>\n")
			continue
		}
		b.WriteString(line)
		b.WriteString("<br>\n")
	}
	if inList {
		b.WriteString("</ul>\n")
	}

	b.WriteString("</body></html>")
	return b.String()
}
