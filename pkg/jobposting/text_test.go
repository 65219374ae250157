package jobposting

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestHTMLToText(t *testing.T) {
	doc := `<!doctype html>
<html>
<head><title> Backend Engineer | Acme </title><style>body { color: red }</style></head>
<body>
  <nav>Home</nav>
  <h1>Backend   Engineer</h1>
  <script>track("view")</script>
  <noscript>enable js</noscript>
  <p>Python,
     AWS and Docker</p>
</body>
</html>`

	text, title := HTMLToText(doc)

	assert.Equal(t, "Backend Engineer | Acme", title)
	assert.Contains(t, text, "Backend Engineer Python, AWS and Docker")
	assert.NotContains(t, text, "track(")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "enable js")
	assert.NotContains(t, text, "\n")
}

func TestHTMLToText_NoTitle(t *testing.T) {
	text, title := HTMLToText("<p>just text</p>")
	assert.Equal(t, "", title)
	assert.Equal(t, "just text", text)
}

func TestHTMLToText_InvalidUTF8Replaced(t *testing.T) {
	text, _ := HTMLToText("<p>Caf\xe9 ok</p>")
	assert.True(t, utf8.ValidString(text))
	assert.Equal(t, "Caf\uFFFD ok", text)
}
