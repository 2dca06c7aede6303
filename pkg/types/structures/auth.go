package structures

// AuthUser is the identity provider's user record, passed through as-is.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthSession is the identity provider's session payload for a successful
// signup or signin.
type AuthSession struct {
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	RefreshToken string   `json:"refresh_token,omitempty"`
	User         AuthUser `json:"user"`
}

// AuthError is the identity provider's error payload.
type AuthError struct {
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
	Message          string `json:"msg,omitempty"`
}
