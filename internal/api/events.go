package api

import (
	"context"
	"net/http"

	"github.com/community-pulse/cli/types"
)

// ListEvents returns the approved events visible to everyone. The call
// is anonymous even when a session is held.
func (c *Client) ListEvents(ctx context.Context) ([]types.Event, error) {
	var events []types.Event
	if err := c.do(ctx, http.MethodGet, "/events/", "", nil, &events, msgFetchEventsFailed); err != nil {
		return nil, err
	}
	return events, nil
}

// ListAllEvents returns every event regardless of moderation status.
// The endpoint is admin-only; the server rejects non-admin tokens.
func (c *Client) ListAllEvents(ctx context.Context) ([]types.Event, error) {
	var events []types.Event
	if err := c.do(ctx, http.MethodGet, "/events/all/", c.bearer(ctx), nil, &events, msgFetchAdminFailed); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent fetches a single event. The stored token is attached when
// present so the viewer-relative is_registered field is populated;
// anonymous callers get the event with is_registered false.
func (c *Client) GetEvent(ctx context.Context, id string) (types.Event, error) {
	var event types.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+id+"/", c.bearer(ctx), nil, &event, msgFetchEventFailed); err != nil {
		return types.Event{}, err
	}
	return event, nil
}

// CreateEvent submits a new event for moderation. Datetime fields must
// already be serialized to ISO-8601 by the caller.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (types.Event, error) {
	var event types.Event
	if err := c.do(ctx, http.MethodPost, "/events/", c.bearer(ctx), req, &event, msgCreateEventFailed); err != nil {
		return types.Event{}, err
	}
	return event, nil
}

// RegisterForEvent registers the current viewer for an event. A repeat
// registration is rejected by the server and surfaces as a normal error.
func (c *Client) RegisterForEvent(ctx context.Context, id string) (RegistrationConfirmation, error) {
	var confirmation RegistrationConfirmation
	if err := c.do(ctx, http.MethodPost, "/events/"+id+"/register/", c.bearer(ctx), emptyBody{}, &confirmation, msgRegisterFailed); err != nil {
		return RegistrationConfirmation{}, err
	}
	return confirmation, nil
}

// ApproveEvent transitions a pending event to approved.
func (c *Client) ApproveEvent(ctx context.Context, id string) (types.Event, error) {
	return c.moderate(ctx, id, "approve", msgApproveEventFailed)
}

// RejectEvent transitions a pending event to rejected.
func (c *Client) RejectEvent(ctx context.Context, id string) (types.Event, error) {
	return c.moderate(ctx, id, "reject", msgRejectEventFailed)
}

// FlagEvent marks an event for moderator attention.
func (c *Client) FlagEvent(ctx context.Context, id string) (types.Event, error) {
	return c.moderate(ctx, id, "flag", msgFlagEventFailed)
}

// UnflagEvent clears the moderation flag.
func (c *Client) UnflagEvent(ctx context.Context, id string) (types.Event, error) {
	return c.moderate(ctx, id, "unflag", msgUnflagEventFailed)
}

// moderate issues one of the admin moderation calls. The client does not
// guard against re-moderating a terminal event; the server decides.
func (c *Client) moderate(ctx context.Context, id, action, fallback string) (types.Event, error) {
	var event types.Event
	path := "/admin/events/" + id + "/" + action + "/"
	if err := c.do(ctx, http.MethodPost, path, c.bearer(ctx), emptyBody{}, &event, fallback); err != nil {
		return types.Event{}, err
	}
	return event, nil
}

// emptyBody renders as {}, matching the empty JSON object the original
// client posts on body-less actions.
type emptyBody struct{}

type CreateEventRequest struct {
	Name                      string   `json:"name"`
	Description               string   `json:"description,omitempty"`
	ShortDescription          string   `json:"short_description,omitempty"`
	Category                  string   `json:"category,omitempty"`
	Location                  string   `json:"location,omitempty"`
	BannerURL                 string   `json:"banner_url,omitempty"`
	StartDatetime             string   `json:"start_datetime"`
	EndDatetime               string   `json:"end_datetime"`
	RegistrationStartDatetime string   `json:"registration_start_datetime"`
	RegistrationEndDatetime   string   `json:"registration_end_datetime"`
	OrganizerPhone            string   `json:"organizer_phone,omitempty"`
	OrganizerEmail            string   `json:"organizer_email,omitempty"`
	Photos                    []string `json:"photos,omitempty"`
}

// RegistrationConfirmation acknowledges a successful event registration.
type RegistrationConfirmation struct {
	// Message is the server's human-readable acknowledgement.
	Message string `json:"message"`

	// Event is the event as seen by the now-registered viewer, when the
	// server includes it in the response.
	Event *types.Event `json:"event,omitempty"`
}
