package notification_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"glow/config"
	"glow/internal/domains/notification"

	"github.com/stretchr/testify/assert"
)

type fakeDoer struct {
	calls   int
	lastReq *http.Request
	resp    *http.Response
	err     error
}

func (f *fakeDoer) Do(req *http.Request) (*http.Response, error) {
	f.calls++
	f.lastReq = req

	return f.resp, f.err
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func mcpConfig(enabled bool, serverURL, apiKey string) *config.Config {
	cfg := &config.Config{}
	cfg.MCP.Enabled = enabled
	cfg.MCP.ServerURL = serverURL
	cfg.MCP.APIKey = apiKey

	return cfg
}

func TestDispatch_InertWhenNotConfigured(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
	}{
		{
			name: "disabled flag",
			cfg:  mcpConfig(false, "https://mcp.example.com", "secret"),
		},
		{
			name: "missing server url",
			cfg:  mcpConfig(true, "", "secret"),
		},
		{
			name: "missing api key",
			cfg:  mcpConfig(true, "https://mcp.example.com", ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := &fakeDoer{}
			dispatcher := notification.New(tt.cfg, doer)

			result := dispatcher.Dispatch(t.Context(), notification.EventBookingCreated, map[string]any{"bookingId": "BK-X-1"})

			assert.False(t, result.Success)
			assert.Equal(t, "MCP integration not enabled", result.Message)
			assert.Zero(t, doer.calls, "inert dispatcher must perform no network call")
		})
	}
}

func TestDispatch_SendsExpectedRequest(t *testing.T) {
	doer := &fakeDoer{resp: jsonResponse(http.StatusOK, `{"received":true}`)}
	dispatcher := notification.New(mcpConfig(true, "https://mcp.example.com", "secret"), doer)

	result := dispatcher.Dispatch(t.Context(), notification.EventCalendarEventCreated, map[string]any{"eventId": "event_1"})

	assert.True(t, result.Success)
	assert.Equal(t, map[string]any{"received": true}, result.Data)
	assert.Equal(t, 1, doer.calls)

	req := doer.lastReq
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "https://mcp.example.com/api/booking-events", req.URL.String())
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "Bearer secret", req.Header.Get("Authorization"))

	var event notification.Event
	assert.NoError(t, json.NewDecoder(req.Body).Decode(&event))
	assert.Equal(t, notification.EventCalendarEventCreated, event.EventType)
	assert.NotEmpty(t, event.Timestamp)
	assert.Equal(t, map[string]any{"eventId": "event_1"}, event.Data)
}

func TestDispatch_TransportErrorBecomesFailureResult(t *testing.T) {
	doer := &fakeDoer{err: errors.New("connection refused")}
	dispatcher := notification.New(mcpConfig(true, "https://mcp.example.com", "secret"), doer)

	assert.NotPanics(t, func() {
		result := dispatcher.Dispatch(t.Context(), notification.EventEmailSent, nil)

		assert.False(t, result.Success)
		assert.Equal(t, "connection refused", result.Message)
	})
}

func TestDispatch_NonSuccessStatusStillSucceeds(t *testing.T) {
	// The status code is not inspected: a parseable body counts as delivered.
	doer := &fakeDoer{resp: jsonResponse(http.StatusInternalServerError, `{"error":"sink down"}`)}
	dispatcher := notification.New(mcpConfig(true, "https://mcp.example.com", "secret"), doer)

	result := dispatcher.Dispatch(t.Context(), notification.EventAvailabilityCheck, map[string]any{"date": "2025-06-01"})

	assert.True(t, result.Success)
	assert.Equal(t, map[string]any{"error": "sink down"}, result.Data)
}

func TestDispatch_UnparseableBodyBecomesFailureResult(t *testing.T) {
	doer := &fakeDoer{resp: jsonResponse(http.StatusOK, "not json")}
	dispatcher := notification.New(mcpConfig(true, "https://mcp.example.com", "secret"), doer)

	result := dispatcher.Dispatch(t.Context(), notification.EventBookingCreated, nil)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
}

func TestDispatch_UnmarshalablePayloadBecomesFailureResult(t *testing.T) {
	doer := &fakeDoer{resp: jsonResponse(http.StatusOK, `{}`)}
	dispatcher := notification.New(mcpConfig(true, "https://mcp.example.com", "secret"), doer)

	result := dispatcher.Dispatch(t.Context(), notification.EventBookingCreated, map[string]any{"bad": make(chan int)})

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
	assert.Zero(t, doer.calls, "serialization failure must short-circuit before the network")
}
