package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mailfleet/mailfleet/pkg/sanitizer"
)

func TestEmailBody_KeepsRenderedVocabulary(t *testing.T) {
	t.Parallel()

	in := "<html><body>hello<br><strong>b</strong> <u>u</u><ul><li>item</li></ul></body></html>"
	out := sanitizer.EmailBody(in)

	require.Contains(t, out, "<strong>b</strong>")
	require.Contains(t, out, "<u>u</u>")
	require.Contains(t, out, "<li>item</li>")
	require.Contains(t, out, "<br>")
}

func TestEmailBody_StripsScripts(t *testing.T) {
	t.Parallel()

	in := `<html><body>hi<script>alert("x")</script><img src=x onerror=alert(1)></body></html>`
	out := sanitizer.EmailBody(in)

	require.NotContains(t, out, "<script>")
	require.NotContains(t, out, "onerror")
	require.NotContains(t, out, "<img")
	require.Contains(t, out, "hi")
}

func TestEmailBody_StripsJavascriptLinks(t *testing.T) {
	t.Parallel()

	out := sanitizer.EmailBody(`<a href="javascript:alert(1)">x</a><a href="https://example.com">ok</a>`)

	require.NotContains(t, out, "javascript:")
	require.Contains(t, out, `https://example.com`)
}

func TestEmailBodyCustom_NilPolicyIsNoop(t *testing.T) {
	t.Parallel()

	in := "<script>raw</script>"
	require.Equal(t, in, sanitizer.EmailBodyCustom(in, nil))
}
