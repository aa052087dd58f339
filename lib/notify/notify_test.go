package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNotify(t *testing.T) {
	t.Run(`posts event envelope to webhook`, func(t *testing.T) {
		received := make(chan event, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			var e event
			_ = json.Unmarshal(body, &e)
			received <- e
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		provider := NewInstance(srv.URL, time.Second, nil)
		provider.Notify(EventRecruiterDecision, map[string]string{"decision": "REJECT"})

		select {
		case e := <-received:
			require.Equal(t, EventRecruiterDecision, e.Event)
			payload, ok := e.Payload.(map[string]interface{})
			require.True(t, ok)
			require.Equal(t, "REJECT", payload["decision"])
		case <-time.After(3 * time.Second):
			t.Fatal("webhook was not called")
		}
	})
	t.Run(`unreachable webhook does not block`, func(t *testing.T) {
		provider := NewInstance("http://127.0.0.1:1/unreachable", 100*time.Millisecond, nil)
		start := time.Now()
		provider.Notify(EventScreeningCompleted, nil)
		require.Less(t, time.Since(start), 50*time.Millisecond)
	})
	t.Run(`empty webhook url is a no-op`, func(t *testing.T) {
		provider := NewInstance("", 0, nil)
		provider.Notify(EventCandidateAssigned, nil)
	})
}
