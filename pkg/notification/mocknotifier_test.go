package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockNotifierRecordsSends(t *testing.T) {
	mock := NewMockNotifier()

	require.NoError(t, mock.Send(NotificationData{
		To:      "a@x.com",
		Subject: "Welcome",
		Body:    "Your account is ready",
	}))
	require.NoError(t, mock.Send(NotificationData{
		To:   "b@x.com",
		Data: map[string]string{"accountId": "2"},
	}))

	sent := mock.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "a@x.com", sent[0].Data.To)
	assert.Equal(t, "Welcome", sent[0].Data.Subject)
	assert.Equal(t, "b@x.com", sent[1].Data.To)
	assert.NotEqual(t, sent[0].ID, sent[1].ID)

	// returned slice is a copy
	sent[0].Data.To = "mutated"
	assert.Equal(t, "a@x.com", mock.Sent()[0].Data.To)
}
