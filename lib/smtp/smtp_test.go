package smtp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendEMail(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		require.Nil(t, Connect("", "", "", "", true))
		require.False(t, Enabled())
		require.Nil(t, Instance.SendEMail("admin@example.com", "rec@example.com", "hello", "test"))
	})
	t.Run("port is checked", func(t *testing.T) {
		require.NotNil(t, Connect("user", "pass", "smtp.example.com", "smtp", true))
		require.Nil(t, Connect("user", "pass", "smtp.example.com", "465", true))
		require.True(t, Enabled())
	})
	t.Run("message layout", func(t *testing.T) {
		msg := buildMessage("admin@example.com", "rec@example.com", "Requirement assigned", "Backend Engineer")
		require.Contains(t, msg, "To: rec@example.com\r\n")
		require.Contains(t, msg, "Subject: ATS - Requirement assigned\r\n")
		require.Contains(t, msg, "Backend Engineer")
		require.Contains(t, msg, "Sent by: admin@example.com")
	})
}
