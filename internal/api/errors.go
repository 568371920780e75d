package api

import (
	"encoding/json"
	"io"
	"strings"
)

// Error is the single failure shape surfaced by every client operation.
// Message carries the server's detail text when one was provided,
// otherwise the operation's static fallback. It is meant for display;
// callers never branch on it.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Per-operation fallback messages, used when the server response has no
// usable detail field.
const (
	msgSignupFailed       = "Signup failed"
	msgLoginFailed        = "Login failed"
	msgCurrentUserFailed  = "Failed to get user data"
	msgFetchEventsFailed  = "Failed to fetch events"
	msgFetchAdminFailed   = "Failed to fetch admin events"
	msgFetchEventFailed   = "Failed to fetch event details"
	msgCreateEventFailed  = "Failed to create event"
	msgRegisterFailed     = "Failed to register for event"
	msgApproveEventFailed = "Failed to approve event"
	msgRejectEventFailed  = "Failed to reject event"
	msgFlagEventFailed    = "Failed to flag event"
	msgUnflagEventFailed  = "Failed to unflag event"
)

// decodeError extracts the server's detail message from an error body.
// The service renders validation failures as a detail array; only a
// string detail is shown verbatim, anything else takes the fallback.
func decodeError(r io.Reader, fallback string) *Error {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err == nil && len(payload.Detail) > 0 {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil && strings.TrimSpace(detail) != "" {
			return &Error{Message: detail}
		}
	}
	return &Error{Message: fallback}
}
