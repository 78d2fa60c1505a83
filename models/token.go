package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every issued bearer token.
// Besides the registered claims (iss, sub, iat, exp) it embeds the owner's
// email, so verification alone yields the full caller identity and no store
// lookup is needed per request.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the owner's email at issuance time. Informational only;
	// authorization decisions use the subject (owner id).
	Email string `json:"email,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in HTTP headers or response bodies.
//
// UserID and Email are parsed copies of the "sub" and "email" claims,
// populated during generation or validation so callers never touch the raw
// claim set.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON; only the compact string form leaves the process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Email is the owner email extracted from the "email" claim.
	Email string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
