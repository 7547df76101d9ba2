package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessage_StripsHeaderInjection(t *testing.T) {
	msg := string(buildMessage("no-reply@boolbnb.local", Email{
		To:      "owner@example.com",
		Subject: "Hello\r\nBcc: victim@example.com",
		Body:    "line one\nline two",
	}))

	head, body, ok := strings.Cut(msg, "\r\n\r\n")
	require.True(t, ok)
	assert.Contains(t, head, "Subject: Hello Bcc: victim@example.com")
	assert.NotContains(t, head, "\r\nBcc:")
	assert.Contains(t, head, "To: owner@example.com")
	assert.Equal(t, "line one\nline two", body)
}

func TestDevConsoleMailer(t *testing.T) {
	var buf bytes.Buffer
	m := NewDevConsoleMailer(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, m.Send(context.Background(), Email{To: "a@b.com", Subject: "Hi", Body: "secret"}))
	assert.Contains(t, buf.String(), `"to":"a@b.com"`)
	assert.NotContains(t, buf.String(), "secret", "bodies are not logged")
}
