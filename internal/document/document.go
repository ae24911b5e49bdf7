// Package document exports a summary and its transcript as a .docx file.
package document

import (
	"html"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13

	// sentencesPerParagraph groups transcript sentences so the document stays readable.
	sentencesPerParagraph = 5
)

var (
	reBold     = regexp.MustCompile(`(?s)<b>(.+?)</b>`)
	reTag      = regexp.MustCompile(`<[^>]+>`)
	reSentence = regexp.MustCompile(`[^.!?…]+[.!?…]+["')\]]*\s*`)
)

// Write renders title, the sanitized summary and the transcript into a docx at path.
func Write(path, title, summaryHTML, transcript string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)

	if strings.TrimSpace(summaryHTML) != "" {
		addStyledRun(doc.AddParagraph(""), "Summary", true, 15)
		for _, line := range strings.Split(summaryHTML, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			addRichText(doc.AddParagraph(""), strings.TrimSpace(line))
		}
	}

	addStyledRun(doc.AddParagraph(""), "Transcript", true, 15)
	for _, para := range paragraphs(transcript) {
		p := doc.AddParagraph("")
		p.AddText(para).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(path)
}

// paragraphs splits running transcript text into groups of sentences.
func paragraphs(transcript string) []string {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil
	}

	var sentences []string
	end := 0
	for _, loc := range reSentence.FindAllStringIndex(transcript, -1) {
		sentences = append(sentences, transcript[loc[0]:loc[1]])
		end = loc[1]
	}
	if rest := strings.TrimSpace(transcript[end:]); rest != "" {
		sentences = append(sentences, rest)
	}

	var out []string
	for i := 0; i < len(sentences); i += sentencesPerParagraph {
		end := min(i+sentencesPerParagraph, len(sentences))
		out = append(out, strings.TrimSpace(strings.Join(sentences[i:end], "")))
	}
	return out
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(plainText(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText keeps <b> runs bold and flattens every other tag.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if clean := plainText(part); clean != "" {
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			clean := plainText(matches[i][1])
			p.AddText(clean).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func plainText(s string) string {
	return html.UnescapeString(reTag.ReplaceAllString(s, ""))
}
