// Package sanitizer reduces model output to the HTML subset Telegram renders.
package sanitizer

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// AllowedTags are the formatting tags Telegram accepts in HTML parse mode.
var AllowedTags = map[string]bool{
	"b":          true,
	"i":          true,
	"u":          true,
	"a":          true,
	"code":       true,
	"pre":        true,
	"tg-spoiler": true,
}

var allowedAttrs = map[string]string{
	"a":    "href",
	"code": "class",
}

// Unwrapped block elements keep the text on separate lines.
var (
	lineBefore = map[string]bool{"ul": true, "ol": true}
	lineAfter  = map[string]bool{
		"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
		"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
		"blockquote": true, "tr": true,
	}
	// Whitespace between these elements' children is layout only.
	layoutOnly = map[string]bool{"ul": true, "ol": true, "table": true, "tbody": true, "thead": true, "tr": true}

	reBlankLines = regexp.MustCompile(`\n{3,}`)
	rePre        = regexp.MustCompile(`(?s)<pre\b[^>]*>.*?</pre>`)
)

// Sanitize unwraps every element outside AllowedTags, keeping its text.
func Sanitize(text string) (string, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}

	nodes, err := html.ParseFragment(strings.NewReader(text), body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}

	clean(body)

	var buf bytes.Buffer
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("render html: %w", err)
		}
	}

	return strings.TrimSpace(collapseBlankLines(buf.String())), nil
}

// collapseBlankLines squeezes runs of blank lines to one, leaving pre blocks untouched.
func collapseBlankLines(s string) string {
	var b strings.Builder
	last := 0
	for _, loc := range rePre.FindAllStringIndex(s, -1) {
		b.WriteString(reBlankLines.ReplaceAllString(s[last:loc[0]], "\n\n"))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(reBlankLines.ReplaceAllString(s[last:], "\n\n"))
	return b.String()
}

func clean(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling

		switch c.Type {
		case html.CommentNode, html.DoctypeNode:
			n.RemoveChild(c)
		case html.TextNode:
			if n.Type == html.ElementNode && layoutOnly[n.Data] && strings.TrimSpace(c.Data) == "" {
				n.RemoveChild(c)
			}
		case html.ElementNode:
			clean(c)
			if AllowedTags[c.Data] {
				c.Attr = filterAttrs(c)
			} else {
				unwrap(n, c)
			}
		}

		c = next
	}
}

// unwrap replaces c with its children.
func unwrap(parent, c *html.Node) {
	if lineBefore[c.Data] {
		parent.InsertBefore(textNode("\n"), c)
	}
	if c.Data == "li" {
		parent.InsertBefore(textNode("• "), c)
	}

	for gc := c.FirstChild; gc != nil; {
		next := gc.NextSibling
		c.RemoveChild(gc)
		parent.InsertBefore(gc, c)
		gc = next
	}

	if lineAfter[c.Data] {
		parent.InsertBefore(textNode("\n"), c)
	}
	parent.RemoveChild(c)
}

func filterAttrs(n *html.Node) []html.Attribute {
	keep, ok := allowedAttrs[n.Data]
	if !ok {
		return nil
	}

	var attrs []html.Attribute
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == keep {
			attrs = append(attrs, a)
		}
	}
	return attrs
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
