package wsclient

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

const (
	// the hub pings every PingPeriod, a peer silent for longer than pongWait is dropped
	PingPeriod     = 30 * time.Second
	pongWait       = PingPeriod + 10*time.Second
	maxInboundSize = 4096
)

type WsClient struct {
	conn   *websocket.Conn
	userID string
}

func NewClient(userID string, c *websocket.Conn) *WsClient {
	return &WsClient{
		conn:   c,
		userID: userID,
	}
}

// Dispatch reads until the peer goes away or stops answering pings.
// The channel is server-to-client only, inbound payloads are dropped.
func (c *WsClient) Dispatch() {
	if c.conn == nil {
		return
	}
	logger := log.WithField("user_id", c.userID)
	c.conn.SetReadLimit(maxInboundSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				logger.WithError(err).Warn("ws connection lost")
			}
			return
		}
		logger.WithField("size", len(data)).Debug("ws inbound message ignored")
	}
}
