package utils

import (
	"bytes"
	"html"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var lessonMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// MarkdownToHTML renders lesson markdown to HTML. On a rendering error
// it falls back to HTML-escaped plain text so the lesson stays readable.
func MarkdownToHTML(markdown string) string {
	var buf bytes.Buffer
	if err := lessonMarkdown.Convert([]byte(markdown), &buf); err != nil {
		log.Printf("[MARKDOWN] render failed, falling back to plain text: %v", err)
		return "<pre>" + html.EscapeString(markdown) + "</pre>"
	}
	return buf.String()
}
