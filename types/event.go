package types

// Event status values reported by the service. The client only observes
// transitions: pending moves to approved or rejected on the server, and
// neither is reversible from this side.
const (
	EventStatusPending  = "pending"
	EventStatusApproved = "approved"
	EventStatusRejected = "rejected"
)

// Event represents a community event. Events are owned entirely by the
// remote service; the client never persists them beyond the current
// invocation.
//
// All datetime fields are ISO-8601 strings and are passed through
// unparsed: the server decides their precision and timezone rendering.
type Event struct {
	// ID is the unique identifier of the event.
	ID int `json:"id"`

	// Name is the event's display title.
	Name string `json:"name"`

	// Description is the full event description.
	Description string `json:"description"`

	// ShortDescription is a one-line summary used in listings.
	ShortDescription string `json:"short_description"`

	// Category is a free-form label (e.g., "sports matches").
	Category string `json:"category"`

	// Location is the venue or address of the event.
	Location string `json:"location"`

	// BannerURL points at the event's banner image.
	BannerURL string `json:"banner_url"`

	// Photos are additional image URLs attached at submission time.
	Photos []string `json:"photos,omitempty"`

	// StartDatetime is when the event begins.
	StartDatetime string `json:"start_datetime"`

	// EndDatetime is when the event ends.
	EndDatetime string `json:"end_datetime"`

	// RegistrationStartDatetime is when registration opens.
	RegistrationStartDatetime string `json:"registration_start_datetime"`

	// RegistrationEndDatetime is when registration closes.
	RegistrationEndDatetime string `json:"registration_end_datetime"`

	// OrganizerPhone is the submitting organizer's contact number.
	OrganizerPhone string `json:"organizer_phone"`

	// OrganizerEmail is the submitting organizer's contact address.
	OrganizerEmail string `json:"organizer_email"`

	// Status is the moderation state: pending, approved, or rejected.
	Status string `json:"status"`

	// Flag marks the event for moderator attention. It toggles
	// independently of Status.
	Flag bool `json:"flag"`

	// IsRegistered reports whether the requesting viewer is registered
	// for this event. It is viewer-relative: anonymous requests always
	// see false.
	IsRegistered bool `json:"is_registered"`
}
