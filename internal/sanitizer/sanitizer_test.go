package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		description string
		in          string
		want        string
	}{
		{
			"Should unwrap script and keep allowed tags",
			"<script>alert(1)</script><b>ok</b>",
			"alert(1)<b>ok</b>",
		},
		{
			"Should keep every allowed tag",
			"<b>b</b><i>i</i><u>u</u><a href=\"https://example.com\">a</a><code>c</code><pre>p</pre><tg-spoiler>s</tg-spoiler>",
			"<b>b</b><i>i</i><u>u</u><a href=\"https://example.com\">a</a><code>c</code><pre>p</pre><tg-spoiler>s</tg-spoiler>",
		},
		{
			"Should unwrap nested unknown tags",
			"<div><span>Main <b>idea</b></span></div>",
			"Main <b>idea</b>",
		},
		{
			"Should turn lists into bullet lines",
			"<b>Key points</b>\n<ul>\n  <li>first</li>\n  <li><i>second</i></li>\n</ul>\nDone",
			"<b>Key points</b>\n\n• first\n• <i>second</i>\n\nDone",
		},
		{
			"Should drop unknown attributes",
			"<a href=\"https://example.com\" target=\"_blank\" onclick=\"x()\">link</a><b class=\"big\">bold</b>",
			"<a href=\"https://example.com\">link</a><b>bold</b>",
		},
		{
			"Should drop comments",
			"before<!-- hidden -->after",
			"beforeafter",
		},
		{
			"Should escape bare ampersands",
			"Tom & Jerry",
			"Tom &amp; Jerry",
		},
		{
			"Should keep plain text untouched",
			"Just text.",
			"Just text.",
		},
		{
			"Should keep blank lines inside pre blocks",
			"a\n\n\n\nb<pre>c\n\n\n\nd</pre>",
			"a\n\nb<pre>c\n\n\n\nd</pre>",
		},
		{
			"Should unwrap headings onto their own line",
			"<h2>Title</h2>Body",
			"Title\nBody",
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got, err := Sanitize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"<b>bold</b> and <i>italic</i>",
		"<a href=\"https://example.com/?a=1&amp;b=2\">link</a>",
		"<pre><code class=\"language-go\">fmt.Println(&#34;hi&#34;)</code></pre>",
		"<tg-spoiler>secret</tg-spoiler> <u>under</u>",
		"<b>Main idea</b>\n\n• one\n• two",
		"Tom &amp; Jerry",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once, err := Sanitize(in)
			require.NoError(t, err)
			twice, err := Sanitize(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}
}

func TestSanitizeStripsEverythingUnknown(t *testing.T) {
	in := "<html><body><h1>Head</h1><p>Para <em>em</em> <strong>st</strong></p><ol><li>x</li></ol><iframe src=\"x\"></iframe></body></html>"

	got, err := Sanitize(in)
	require.NoError(t, err)

	for _, tag := range []string{"<html", "<body", "<h1", "<p", "<em", "<strong", "<ol", "<li", "<iframe"} {
		assert.NotContains(t, got, tag)
	}
	assert.Contains(t, got, "Head")
	assert.Contains(t, got, "Para em st")
	assert.Contains(t, got, "• x")
}
