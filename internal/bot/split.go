package bot

import (
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"
	"golang.org/x/net/html"
)

// maxMessageLength is Telegram's limit for one text message.
const maxMessageLength = 4096

var reEntity = regexp.MustCompile(`^&(?:#[0-9]+|#[xX][0-9a-fA-F]+|[a-zA-Z][a-zA-Z0-9]*);`)

// piece is the smallest unit a message may be cut around: a whole tag,
// a whole character reference, or a single rune of text.
type piece struct {
	raw     string
	size    int
	open    string // tag name for a start tag
	close   string // tag name for an end tag
	newline bool
}

// openTag is an element still open at some point of the message.
type openTag struct {
	name string
	raw  string
}

// splitMessage breaks HTML text into chunks of at most limit runes, preferring
// line boundaries. Elements cut by a chunk boundary are closed at the end of
// the chunk and reopened at the start of the next one.
func splitMessage(text string, limit int) []string {
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	pieces := tokenize(text)

	var chunks []string
	var stack []openTag
	for i := 0; i < len(pieces); {
		prefix := openingTags(stack)
		size := utf8.RuneCountInString(prefix)
		current := stack
		start := i

		breakAt, breakStack := -1, []openTag(nil)
		for i < len(pieces) {
			p := pieces[i]
			next := apply(current, p)
			if i > start && size+p.size+utf8.RuneCountInString(closingTags(next)) > limit {
				break
			}
			size += p.size
			current = next
			i++
			if p.newline {
				breakAt, breakStack = i, current
			}
		}

		// Cut at the last line break unless the overflow itself starts a new line.
		if i < len(pieces) && !pieces[i].newline && breakAt > start {
			i, current = breakAt, breakStack
		}

		body := pieces[start:i]
		if hasText(body) {
			chunk := prefix + strings.Join(lo.Map(body, func(p piece, _ int) string { return p.raw }), "") + closingTags(current)
			chunks = append(chunks, strings.TrimSpace(chunk))
		}
		stack = current
	}

	return chunks
}

func tokenize(text string) []piece {
	var pieces []piece
	z := html.NewTokenizer(strings.NewReader(text))

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() != io.EOF {
				// Unparsable tail: keep it as plain runes.
				pieces = append(pieces, textPieces(string(z.Raw()))...)
			}
			return pieces
		}

		raw := string(z.Raw())
		switch tt {
		case html.TextToken:
			pieces = append(pieces, textPieces(raw)...)
		case html.StartTagToken:
			name, _ := z.TagName()
			pieces = append(pieces, piece{raw: raw, size: utf8.RuneCountInString(raw), open: string(name)})
		case html.EndTagToken:
			name, _ := z.TagName()
			pieces = append(pieces, piece{raw: raw, size: utf8.RuneCountInString(raw), close: string(name)})
		default:
			pieces = append(pieces, piece{raw: raw, size: utf8.RuneCountInString(raw)})
		}
	}
}

func textPieces(raw string) []piece {
	var pieces []piece
	for len(raw) > 0 {
		if raw[0] == '&' {
			if m := reEntity.FindString(raw); m != "" {
				pieces = append(pieces, piece{raw: m, size: len(m)})
				raw = raw[len(m):]
				continue
			}
		}
		r, n := utf8.DecodeRuneInString(raw)
		pieces = append(pieces, piece{raw: raw[:n], size: 1, newline: r == '\n'})
		raw = raw[n:]
	}
	return pieces
}

// apply returns the open elements after p. The input slice is never modified.
func apply(stack []openTag, p piece) []openTag {
	switch {
	case p.open != "":
		return append(stack[:len(stack):len(stack)], openTag{name: p.open, raw: p.raw})
	case p.close != "":
		for j := len(stack) - 1; j >= 0; j-- {
			if stack[j].name == p.close {
				return stack[:j]
			}
		}
	}
	return stack
}

func openingTags(stack []openTag) string {
	var b strings.Builder
	for _, t := range stack {
		b.WriteString(t.raw)
	}
	return b.String()
}

func closingTags(stack []openTag) string {
	var b strings.Builder
	for j := len(stack) - 1; j >= 0; j-- {
		b.WriteString("</" + stack[j].name + ">")
	}
	return b.String()
}

func hasText(pieces []piece) bool {
	return lo.ContainsBy(pieces, func(p piece) bool {
		return p.open == "" && p.close == "" && strings.TrimSpace(p.raw) != ""
	})
}
