package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the subset of an identity-provider token the API relies on.
// Roles are never read from here; they are resolved from the database.
type Claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
