package utils

import (
	"testing"
	"time"

	"lms/config"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownToHTML_RendersGFM(t *testing.T) {
	html := MarkdownToHTML("# Heading\n\nSome **bold** text.\n\n- item one\n- item two")

	assert.Contains(t, html, "<h1>Heading</h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.Contains(t, html, "<li>item one</li>")
}

func TestMarkdownToHTML_PlainTextPassesThrough(t *testing.T) {
	html := MarkdownToHTML("just a sentence")

	assert.Contains(t, html, "just a sentence")
}

func TestRenderCertificatePDF(t *testing.T) {
	config.LoadConfig()

	data, err := RenderCertificatePDF("Jane Doe", `has successfully completed the training module "Phishing Awareness"`, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}
