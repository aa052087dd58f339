package wsmodels

type ServerMessage struct {
	ToUserID string      `json:"-"`    // empty for broadcast
	Time     string      `json:"time"` // event time
	Code     string      `json:"code"` // event code
	Msg      string      `json:"msg"`  // human readable text
	Payload  interface{} `json:"payload,omitempty"`
}
