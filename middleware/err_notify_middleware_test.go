package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apimodels "ats-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestErrNotify(t *testing.T) {
	received := make(chan serverError, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var event serverError
		_ = json.NewDecoder(r.Body).Decode(&event)
		received <- event
	}))
	defer srv.Close()

	app := fiber.New()
	app.Use(ErrNotify(srv.URL, time.Second))
	app.Get("/fail/:id", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("database is down"))
	})
	app.Get("/missing", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("not found"))
	})

	t.Run("server error is posted", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/fail/42", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		select {
		case event := <-received:
			require.Equal(t, 500, event.Code)
			require.Equal(t, "/fail/:id", event.Path)
			require.Equal(t, "database is down", event.Error)
		case <-time.After(2 * time.Second):
			t.Fatal("notification not received")
		}
	})
	t.Run("client error is not posted", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
		require.Nil(t, err)
		require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		select {
		case <-received:
			t.Fatal("unexpected notification")
		case <-time.After(200 * time.Millisecond):
		}
	})
}
