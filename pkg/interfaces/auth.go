package _interface

import structure "github.com/sorumat/sorumat-go/pkg/types/structures"

// IdentityService delegates account management to the external identity
// provider. Only the request/response contract is owned here.
type IdentityService interface {
	// Signup creates an account. The int is the provider's HTTP status.
	Signup(email, password string) (*structure.AuthSession, int, error)

	// Signin exchanges credentials for a session.
	Signin(email, password string) (*structure.AuthSession, int, error)
}
