package summarizer

import (
	"fmt"
	"strings"

	"github.com/abadojack/whatlanggo"
)

const fallbackLanguage = "the same language as the text"

const summaryPrompt = `Please summarize the following text into a concise and well-structured format, emphasizing the key points and maintaining a logical flow. Organize the summary like a brief outline or structured notes, highlighting:
1. The main idea or purpose of the text.
2. The key arguments, points, or topics discussed.
3. Any significant conclusions, implications, or outcomes.

Do not wrap the answer in a code block and do not start it with ` + "```html" + `.

Use only the following HTML tags to format the text:
- <b> for bold
- <i> for italic
- <u> for underline
- <a> for hyperlinks
- <code> for inline code
- <pre> for preformatted blocks
- <tg-spoiler> for hidden text

- Use <b>bold</b> for the main idea or headings.
- Use <i>italic</i> for significant conclusions or emphasis.
- Organize key points as a bulleted list using <ul><li>...</li></ul>.

Ensure the summary is in %s.

Text:
---
%s
---`

// detectLanguage returns the English name of the dominant language of text.
// Short or mixed text may be misclassified.
func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	name := info.Lang.String()
	if name == "" {
		return fallbackLanguage
	}
	return name
}

func buildPrompt(transcript, language string) string {
	return fmt.Sprintf(summaryPrompt, language, transcript)
}

// stripFences removes a markdown code fence wrapped around the whole answer.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
