package helpers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postEnvelope(t *testing.T, body string) (int, *EventEnvelope) {
	t.Helper()

	var captured *EventEnvelope
	app := fiber.New()
	app.Post("/events", func(c *fiber.Ctx) error {
		env, err := ParseEnvelope(c)
		if err != nil {
			return err
		}
		captured = env
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode, captured
}

func TestParseEnvelope(t *testing.T) {
	code, env := postEnvelope(t, `{"eventType":"USER_CREATED","data":{"userId":"u1"}}`)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env)
	assert.Equal(t, "USER_CREATED", env.EventType)
	assert.JSONEq(t, `{"userId":"u1"}`, string(env.Data))
}

func TestParseEnvelopeRejectsBadPayload(t *testing.T) {
	code, _ := postEnvelope(t, `bukan json`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = postEnvelope(t, `{"data":{"x":1}}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = postEnvelope(t, `{"eventType":"USER_CREATED"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}
