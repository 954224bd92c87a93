package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"glow/config"
	"glow/shared/constant"
	"glow/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	eventsPath = "/api/booking-events"

	disabledMessage = "MCP integration not enabled"
)

type EventType string

const (
	EventBookingCreated       EventType = "booking_created"
	EventEmailSent            EventType = "email_sent"
	EventCalendarEventCreated EventType = "calendar_event_created"
	EventAvailabilityCheck    EventType = "availability_check"
)

// Event is the wire envelope sent to the MCP server. Events are fire-once:
// never retried, never persisted.
type Event struct {
	EventType EventType `json:"eventType"`
	Timestamp string    `json:"timestamp"`
	Data      any       `json:"data"`
}

// Result is the dispatcher's only failure channel. Dispatch never returns
// an error and never panics past the call boundary; callers must inspect
// Success.
type Result struct {
	Success bool
	Data    map[string]any
	Message string
}

// Doer abstracts the HTTP transport so tests can count and fail calls.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, eventType EventType, payload any) Result
}

type mcpDispatcher struct {
	enabled   bool
	serverURL string
	apiKey    string
	client    Doer
}

func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

func New(cfg *config.Config, client Doer) Dispatcher {
	dispatcher := &mcpDispatcher{
		enabled:   cfg.MCP.Enabled,
		serverURL: cfg.MCP.ServerURL,
		apiKey:    cfg.MCP.APIKey,
		client:    client,
	}

	log.Info().Bool("enabled", dispatcher.active()).Msg("MCP integration initialized")

	return dispatcher
}

// active reports whether all three configuration values are present. An
// inactive dispatcher performs no I/O at all.
func (d *mcpDispatcher) active() bool {
	return d.enabled && d.serverURL != "" && d.apiKey != ""
}

func (d *mcpDispatcher) Dispatch(ctx context.Context, eventType EventType, payload any) Result {
	if !d.active() {
		log.Debug().Str("eventType", string(eventType)).Msg("MCP integration disabled or not configured, skipping notification")

		return Result{Success: false, Message: disabledMessage}
	}

	event := Event{
		EventType: eventType,
		Timestamp: timezone.Now().Format(constant.TimestampFormat),
		Data:      payload,
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("eventType", string(eventType)).Msg("failed to marshal notification event")

		return Result{Success: false, Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.serverURL+eventsPath, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Str("eventType", string(eventType)).Msg("failed to build notification request")

		return Result{Success: false, Message: err.Error()}
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAuthorization, fmt.Sprintf("Bearer %s", d.apiKey))

	resp, err := d.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("eventType", string(eventType)).Msg("failed to send notification")

		return Result{Success: false, Message: err.Error()}
	}
	defer resp.Body.Close() //nolint:errcheck

	// The response status code is deliberately not inspected: any response
	// whose body parses as JSON counts as delivered, matching the sink's
	// observed contract.
	var data map[string]any
	if err = json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Error().Err(err).Str("eventType", string(eventType)).Msg("failed to parse notification response")

		return Result{Success: false, Message: err.Error()}
	}

	log.Info().Str("eventType", string(eventType)).Msg("notification sent")

	return Result{Success: true, Data: data}
}
