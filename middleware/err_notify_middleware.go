package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type serverError struct {
	Code      int       `json:"code"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	RequestID string    `json:"request_id,omitempty"`
	Error     string    `json:"error"`
	Time      time.Time `json:"time"`
}

// ErrNotify posts every 5xx response to addr in the background.
func ErrNotify(addr string, timeout time.Duration) fiber.Handler {
	client := &http.Client{Timeout: timeout}
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			// let the app error handler write the response first
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				return hErr
			}
			err = nil
		}
		if c.Response().StatusCode() < fiber.StatusInternalServerError {
			return err
		}
		event := serverError{
			Code:   c.Response().StatusCode(),
			Method: c.Method(),
			Path:   c.Path(),
			Error:  errorMessage(c.Response().Body()),
			Time:   time.Now(),
		}
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			event.Path = r.Path
		}
		if requestID, ok := c.Locals("requestid").(string); ok {
			event.RequestID = requestID
		}
		go sendServerError(client, addr, event)
		return err
	}
}

func errorMessage(body []byte) string {
	var data struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &data); err != nil || data.Message == "" {
		return string(body)
	}
	return data.Message
}

func sendServerError(client *http.Client, addr string, event serverError) {
	logger := log.WithField("path", event.Path)
	payload, err := json.Marshal(event)
	if err != nil {
		logger.WithError(err).Warn("error notification not encoded")
		return
	}
	resp, err := client.Post(addr, fiber.MIMEApplicationJSON, bytes.NewReader(payload))
	if err != nil {
		logger.WithError(err).Warn("error notification not sent")
		return
	}
	_ = resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		logger.WithField("status", resp.StatusCode).Warn("error notification rejected")
	}
}
