package types

// User represents an account profile in the Community Pulse service.
// It is a snapshot taken from the server at login time and is not
// re-validated until the next login.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id"`

	// Username is the unique login name chosen by the user.
	Username string `json:"username"`

	// Email is the user's email address.
	Email string `json:"email"`

	// PhoneNumber is the user's contact phone number.
	PhoneNumber string `json:"phone_number"`

	// IsAdmin indicates whether the user may invoke moderation
	// operations (approve, reject, flag). The server is the authority;
	// this flag only gates what the client offers to call.
	IsAdmin bool `json:"is_admin"`
}
