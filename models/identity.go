package models

// CredentialsRequest is the JSON body sent to the identity provider for both
// sign-up and sign-in. ReturnSecureToken must be true so that a long-lived
// idToken is issued.
type CredentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// SignUpResponse is the identity provider success payload, shared by the
// sign-up and sign-in endpoints (the provider uses the same shape for both).
type SignUpResponse struct {
	IDToken      string `json:"idToken"`
	Email        string `json:"email"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
}

// IdentityError is the structured error envelope the identity provider returns
// with non-2xx statuses: {"error": {"message": "EMAIL_EXISTS", ...}}.
type IdentityError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
