package mailer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func TestBuildMessage(t *testing.T) {
	msg, err := buildMessage("noreply@restaurant.test", "Restaurant", Email{
		To:      "guest@example.com",
		Subject: "Booking confirmed",
		Body:    "See you at 18:00",
	})

	require.NoError(t, err)
	recipients, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"guest@example.com"}, recipients)
	assert.Equal(t, []string{"Booking confirmed"}, msg.GetGenHeader(mail.HeaderSubject))
}

func TestBuildMessage_Invalid(t *testing.T) {
	_, err := buildMessage("noreply@restaurant.test", "", Email{To: "not-an-address", Subject: "x"})
	assert.ErrorIs(t, err, ErrInvalidMessage)

	_, err = buildMessage("noreply@restaurant.test", "", Email{To: "guest@example.com"})
	assert.ErrorIs(t, err, ErrInvalidMessage)
}

func TestLogSender(t *testing.T) {
	logger := &recordingLogger{}
	sender := NewLogSender(logger)

	require.NoError(t, sender.Send(context.Background(), Email{To: "guest@example.com", Subject: "Reminder"}))
	assert.Len(t, logger.lines, 1)

	assert.ErrorIs(t, sender.Send(context.Background(), Email{}), ErrInvalidMessage)
}
