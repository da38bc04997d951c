package tui

import "github.com/Anjaratiana11/restaurant-mobile/models"

// NavigateTo switches the root model to another page of the auth flow.
// An optional Payload is replayed as a message on the target page.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the async login command. A nil Err finishes the
// auth flow.
type LoginResult struct {
	Err     error
	Session models.Session
}

// SignupResult is produced by the async signup command. Signup persists the
// issued token just like login, so a nil Err finishes the auth flow too.
type SignupResult struct {
	Err     error
	Session models.Session
}
