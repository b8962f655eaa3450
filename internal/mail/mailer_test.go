package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMessage_RendersAllFields(t *testing.T) {
	msg, err := ContactMessage("farm@example.com", "owner@example.com",
		"Fatou Sow", "fatou@example.com", "70 123 45 67", "Do you deliver on weekends?")
	require.NoError(t, err)

	assert.Equal(t, "farm@example.com", msg.From)
	assert.Equal(t, "owner@example.com", msg.To)
	assert.Equal(t, "New contact message - Fatou Sow", msg.Subject)

	for _, field := range []string{"Fatou Sow", "fatou@example.com", "70 123 45 67", "Do you deliver on weekends?"} {
		assert.Contains(t, msg.HTML, field)
	}
	assert.Contains(t, msg.HTML, "New contact message received")
	assert.Contains(t, msg.HTML, "Push'Agri Farm")
}

func TestContactMessage_EscapesHTML(t *testing.T) {
	msg, err := ContactMessage("f@e.com", "o@e.com",
		"<script>alert(1)</script>", "x@y.z", "1", "<img src=x onerror=alert(2)>")
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	assert.NotContains(t, msg.HTML, "<img src=x")
}
