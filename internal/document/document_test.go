package document

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParagraphs(t *testing.T) {
	assert.Nil(t, paragraphs("   "))

	text := "One. Two! Three? Four. Five. Six. Seven"
	got := paragraphs(text)
	require.Len(t, got, 2)
	assert.Equal(t, "One. Two! Three? Four. Five.", got[0])
	assert.Equal(t, "Six. Seven", got[1])

	assert.Equal(t, []string{"no punctuation at all"}, paragraphs("no punctuation at all"))
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Tom & Jerry link", plainText("<i>Tom &amp; Jerry</i> <a href=\"x\">link</a>"))
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.docx")

	err := Write(path, "Never Gonna Give You Up", "<b>Main idea</b>: a song.\n• <i>loyalty</i>", "We're no strangers to love. You know the rules.")
	require.NoError(t, err)

	body := readDocumentXML(t, path)
	for _, want := range []string{"Never Gonna Give You Up", "Main idea", "loyalty", "Transcript", "You know the rules."} {
		assert.Contains(t, body, want)
	}
}

func readDocumentXML(t *testing.T, path string) string {
	t.Helper()

	info, err := os.Stat(path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := zip.NewReader(f, info.Size())
	require.NoError(t, err)

	for _, zf := range zr.File {
		if zf.Name != "word/document.xml" {
			continue
		}
		rc, err := zf.Open()
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		return strings.ReplaceAll(string(data), "&#39;", "'")
	}

	t.Fatal("word/document.xml not found")
	return ""
}
